package store

import (
	"fmt"
	"os"
	"path/filepath"

	"certkit.dev/certkit/internal/domain"
)

// FileStore persists issued artifacts as files under a base directory.
type FileStore struct {
	basePath string
}

// NewFileStore creates a store rooted at basePath, creating it if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("could not create output directory: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Save writes data under name and returns the full path. Private key
// material gets restrictive permissions.
func (s *FileStore) Save(name string, data []byte) (string, error) {
	path := filepath.Join(s.basePath, name)
	mode := os.FileMode(0644)
	switch filepath.Ext(name) {
	case ".key", ".age":
		mode = 0600
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return "", fmt.Errorf("could not write %s: %w", name, err)
	}
	return path, nil
}

// Load reads a previously saved artifact.
func (s *FileStore) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrCertNotFound
		}
		return nil, err
	}
	return data, nil
}
