package recordstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore keeps each collection in its own JSON file under basePath,
// standing in for the browser local storage the portal originally wrote
// to. One file per key, whole file replaced on every write.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates a file-backed store rooted at cfg.BasePath.
func NewLocalStore(cfg Config) (*LocalStore, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "./data"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	return &LocalStore{basePath: cfg.BasePath}, nil
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// Read loads and decodes the collection stored under key.
func (s *LocalStore) Read(ctx context.Context, key string, out interface{}) error {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read collection %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		// Corrupt stored text is a configuration error, not something
		// to recover from by dropping user data.
		return fmt.Errorf("corrupt collection %s: %w", key, err)
	}

	return nil
}

// Write replaces the collection under key. The encoding goes to a
// temporary file first and is renamed into place, so a reader never
// observes a half-written collection.
func (s *LocalStore) Write(ctx context.Context, key string, records interface{}) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(s.basePath, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace collection %s: %w", key, err)
	}

	return nil
}

// Delete removes the collection file for key.
func (s *LocalStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}
	return nil
}
