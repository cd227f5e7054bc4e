package blobstore

import (
	"context"
	"errors"
	"io"
)

// ErrInvalidKey is returned for keys that would escape the bucket
var ErrInvalidKey = errors.New("invalid object key")

// BlobStore stores uploaded note files under caller-chosen keys in one bucket
type BlobStore interface {
	// Upload writes body under key
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error

	// Download returns the bytes stored under key
	Download(ctx context.Context, key string) ([]byte, error)
}
