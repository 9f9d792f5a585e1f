package draft

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/integradaneuropsicologia/ETDAH-II/internal/domain"
)

var (
	_ domain.DraftStore = (*FileStore)(nil)
	_ domain.DraftStore = (*RedisStore)(nil)
)

// FileStore is a file-based implementation of domain.DraftStore. Each draft
// is one JSON file in dir. Drafts older than ttl are treated as absent.
type FileStore struct {
	dir string
	ttl time.Duration
}

// NewFileStore creates a store rooted at dir. A zero ttl keeps drafts forever.
func NewFileStore(dir string, ttl time.Duration) *FileStore {
	return &FileStore{dir: dir, ttl: ttl}
}

// Load reads a draft from disk. Returns (nil, nil) if no draft exists.
func (s *FileStore) Load(_ context.Context, key string) (*domain.Draft, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no draft is not an error
		}
		return nil, err
	}

	var d domain.Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if s.stale(d) {
		return nil, nil
	}
	return &d, nil
}

// Save writes a draft to disk, creating the directory as needed.
func (s *FileStore) Save(_ context.Context, key string, d domain.Draft) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(key), data, 0644)
}

// Clear removes the draft file for key.
func (s *FileStore) Clear(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) stale(d domain.Draft) bool {
	if s.ttl <= 0 || d.SavedAt == "" {
		return false
	}
	saved, err := time.Parse(time.RFC3339, d.SavedAt)
	if err != nil {
		return false
	}
	return time.Since(saved) > s.ttl
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, fileSafe(key)+".json")
}

// fileSafe keeps keys from escaping the draft directory.
func fileSafe(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, key)
}
