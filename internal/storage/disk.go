// Package storage persists opaque blobs on the local disk and maps
// storage keys to publicly fetchable URLs, the moral equivalent of a
// framework "public disk".
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/asirianni/LatinAd/internal/logger"
)

// FileStorage stores blobs under a root directory. Keys are
// slash-separated relative paths; they never escape the root.
type FileStorage struct {
	root    string // Filesystem directory holding all blobs
	baseURL string // Public URL prefix the root is served under
}

// NewFileStorage creates a FileStorage rooted at dir, served at baseURL.
func NewFileStorage(dir, baseURL string) *FileStorage {
	return &FileStorage{
		root:    dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Dir returns the root directory, for wiring a static file server.
func (s *FileStorage) Dir() string {
	return s.root
}

func (s *FileStorage) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(key))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, clean), nil
}

// Save writes data under key, creating parent directories as needed.
func (s *FileStorage) Save(ctx context.Context, key string, data []byte) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create blob directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	return nil
}

// Remove deletes the blobs under the given keys. Deleting an absent key
// is not an error; other failures are collected and returned.
func (s *FileStorage) Remove(ctx context.Context, keys ...string) error {
	var errs []error
	for _, key := range keys {
		if key == "" {
			continue
		}
		path, err := s.path(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logger.Log.Errorw("failed to remove blob", "key", key, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Exists reports whether a blob is present under key.
func (s *FileStorage) Exists(ctx context.Context, key string) bool {
	path, err := s.path(key)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// URL maps a storage key to its public URL. Empty keys map to "".
func (s *FileStorage) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimLeft(key, "/")
}
