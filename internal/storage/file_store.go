package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/pizzaa/pizza-store/internal/models"
)

// FileStore keeps the menu in a single JSON document on disk, shaped as a
// one-key object so the on-disk layout matches the key-value contract.
type FileStore struct {
	path string
}

// NewFileStore creates the parent directory if needed.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create store directory: %v", ErrStoreUnavailable, err)
		}
	}
	return &FileStore{path: path}, nil
}

// Load returns the persisted menu, or an empty menu when the store file does
// not exist yet.
func (s *FileStore) Load(ctx context.Context) (models.Menu, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Menu{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStoreUnavailable, s.path, err)
	}

	var doc map[string]models.Menu
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrStoreUnavailable, s.path, err)
	}
	m := doc[MenuKey]
	if m == nil {
		m = models.Menu{}
	}
	return m, nil
}

// Save writes the full menu to a temp file and renames it over the store, so
// a crash mid-write never leaves a torn document.
func (s *FileStore) Save(ctx context.Context, m models.Menu) error {
	data, err := json.Marshal(map[string]models.Menu{MenuKey: m})
	if err != nil {
		return fmt.Errorf("encode menu: %w", err)
	}

	tmp := s.path + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStoreUnavailable, tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replace %s: %v", ErrStoreUnavailable, s.path, err)
	}
	return nil
}
