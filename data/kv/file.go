package kv

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileStore writes each key to its own JSON file inside dir. Writes go to a
// temp file first and are renamed into place so a crash never leaves a
// half-written value behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	path := s.pathFor(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}
	return data, nil
}

func (s *FileStore) Set(ctx context.Context, key string, value []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	path := s.pathFor(key)
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace state file %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, key string) error {
	path := s.pathFor(key)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove state file %s: %w", path, err)
	}
	return nil
}

// keys are escaped so "a/b" can never climb out of dir
func (s *FileStore) pathFor(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}
