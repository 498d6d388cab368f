package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

//go:generate mockgen -source=filestore.go -destination=mock.go -package=filestore

// Store is the external file storage contract. Keys are opaque; callers
// keep their own mapping from files to keys.
type Store interface {
	Save(key string, r io.Reader) error
	Delete(key string) error
}

// DiskStore keeps files under a single root directory.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(key string, r io.Reader) error {
	f, err := os.Create(filepath.Join(s.root, key))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

func (s *DiskStore) Delete(key string) error {
	err := os.Remove(filepath.Join(s.root, key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
