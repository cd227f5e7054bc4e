package blobstore

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/notehub/notehub/internal/pkg/logger"
	storage "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps objects in a hosted storage bucket
type SupabaseStore struct {
	client *storage.Client
	bucket string
}

// NewSupabaseStore creates a store for bucket on the project at baseURL
func NewSupabaseStore(baseURL, apiKey, bucket string) *SupabaseStore {
	client := storage.NewClient(strings.TrimRight(baseURL, "/")+"/storage/v1", apiKey, nil)
	return &SupabaseStore{client: client, bucket: bucket}
}

// Upload writes body under key; an existing object is not replaced
func (s *SupabaseStore) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkKey(key); err != nil {
		return err
	}

	upsert := false
	options := storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	}

	if _, err := s.client.UploadFile(s.bucket, key, body, options); err != nil {
		return fmt.Errorf("upload %s/%s: %w", s.bucket, key, err)
	}

	logger.Debug().Str("bucket", s.bucket).Str("key", key).Msg("Object uploaded")
	return nil
}

// Download returns the bytes stored under key
func (s *SupabaseStore) Download(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}

	data, err := s.client.DownloadFile(s.bucket, key)
	if err != nil {
		return nil, fmt.Errorf("download %s/%s: %w", s.bucket, key, err)
	}
	return data, nil
}
