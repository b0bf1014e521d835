// Package storage holds uploaded file blobs on disk, addressed by content
// hash. Two uploads of the same bytes share a single blob; the files table
// tracks how many records still point at each one.
package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create file store root: %w", err)
	}
	return &FileStore{root: root}, nil
}

// Save streams r to disk and returns the content hash and byte count. When a
// blob with the same hash already exists the temporary copy is discarded.
func (s *FileStore) Save(r io.Reader) (string, int64, error) {
	tmp, err := os.CreateTemp(s.root, "upload-*")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	hasher := sha256.New()
	size, err := io.Copy(io.MultiWriter(tmp, hasher), r)
	if err != nil {
		tmp.Close()
		return "", 0, fmt.Errorf("failed to write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close temporary file: %w", err)
	}

	hash := hex.EncodeToString(hasher.Sum(nil))
	dest := s.path(hash)

	if _, err := os.Stat(dest); err == nil {
		return hash, size, nil
	}

	if err := os.Rename(tmp.Name(), dest); err != nil {
		return "", 0, fmt.Errorf("failed to store blob: %w", err)
	}
	return hash, size, nil
}

// Open returns the blob for hash.
func (s *FileStore) Open(hash string) (*os.File, error) {
	f, err := os.Open(s.path(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to open blob %s: %w", hash, err)
	}
	return f, nil
}

// Remove deletes the blob. Callers check the reference count first; removing
// an already-absent blob is not an error.
func (s *FileStore) Remove(hash string) error {
	err := os.Remove(s.path(hash))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove blob %s: %w", hash, err)
	}
	return nil
}

func (s *FileStore) path(hash string) string {
	return filepath.Join(s.root, hash)
}
