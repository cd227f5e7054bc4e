package blobstore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/notehub/notehub/internal/pkg/logger"
)

// LocalStore keeps objects as files below basePath/bucket. Used for development
// and tests.
type LocalStore struct {
	root string
}

// NewLocalStore creates a LocalStore, ensuring its directory exists
func NewLocalStore(basePath, bucket string) (*LocalStore, error) {
	root := filepath.Join(basePath, bucket)
	if err := os.MkdirAll(root, 0o755); err != nil {
		logger.Error().Err(err).Str("path", root).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", root, err)
	}
	logger.Info().Str("path", root).Msg("Local storage directory ensured")

	return &LocalStore{root: root}, nil
}

func checkKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || path.Clean(key) != key || strings.HasPrefix(key, "..") {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func (s *LocalStore) pathFor(key string) (string, error) {
	if err := checkKey(key); err != nil {
		return "", err
	}
	return filepath.Join(s.root, filepath.FromSlash(key)), nil
}

// Upload writes body under key. An existing object is not replaced.
func (s *LocalStore) Upload(ctx context.Context, key string, body io.Reader, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dstPath, err := s.pathFor(key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("failed to create object directory: %w", err)
	}

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create object %s: %w", key, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, body); err != nil {
		_ = os.Remove(dstPath)
		return fmt.Errorf("failed to write object %s: %w", key, err)
	}

	logger.Debug().Str("key", key).Str("path", dstPath).Msg("Object saved")
	return nil
}

// Download returns the bytes stored under key
func (s *LocalStore) Download(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	srcPath, err := s.pathFor(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", key, err)
	}
	return data, nil
}
