package mapping

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore keeps one JSON file per mapping under a directory. Good
// enough for a single-node deployment without redis.
type FileStore struct {
	Dir string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(dir string) *FileStore {
	return &FileStore{Dir: dir}
}

func (fs *FileStore) Get(_ context.Context, key string) (*Mapping, error) {
	data, err := os.ReadFile(fs.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read mapping %s: %w", key, err)
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode mapping %s: %w", key, err)
	}
	return &m, nil
}

func (fs *FileStore) Set(_ context.Context, key string, m Mapping) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode mapping %s: %w", key, err)
	}

	path := fs.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (fs *FileStore) Available() bool {
	return true
}

// Keys contain ":" which is not filesystem-friendly everywhere.
func (fs *FileStore) path(key string) string {
	return filepath.Join(fs.Dir, strings.ReplaceAll(key, ":", "_")+".json")
}
