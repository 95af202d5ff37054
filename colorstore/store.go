// SPDX-License-Identifier: MIT

// Package colorstore - byte stores.
//
// Purpose:
//   - Minimal Load/Save surface over opaque record bytes. FileStore is the
//     production store (one file per key); MemStore backs tests and
//     process-local caching. Neither store does any cross-process locking:
//     single-writer-per-key is the caller's discipline.

package colorstore

import (
	"fmt"
	"hash/fnv"
	"os"
	"path/filepath"
	"strings"
)

// Store persists opaque record bytes under identity keys.
// Load returns ErrCacheMiss when no record exists for the key.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// ---------- MemStore ----------

// MemStore is an in-memory Store. Not safe for concurrent use.
type MemStore struct {
	m map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{m: make(map[string][]byte)}
}

// Load returns a copy of the stored bytes or ErrCacheMiss.
func (s *MemStore) Load(key string) ([]byte, error) {
	data, ok := s.m[key]
	if !ok {
		return nil, ErrCacheMiss
	}
	out := make([]byte, len(data))
	copy(out, data)

	return out, nil
}

// Save stores a copy of data under key (last write wins).
func (s *MemStore) Save(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.m[key] = cp

	return nil
}

// ---------- FileStore ----------

// FileStore keeps one file per key under a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates (if needed) the directory and returns the store.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, ErrEmptyKey
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("colorstore: create %q: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

// path maps a key to a filename: a sanitized readable prefix plus an FNV
// hash of the raw key, so distinct keys never collide after sanitizing.
func (s *FileStore) path(key string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key)) // fnv's Write never fails

	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, key)

	return filepath.Join(s.dir, fmt.Sprintf("%s-%08x.json", sanitized, h.Sum32()))
}

// Load reads the record bytes for key; a missing file is ErrCacheMiss.
func (s *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrCacheMiss
		}

		return nil, fmt.Errorf("colorstore: load %q: %w", key, err)
	}

	return data, nil
}

// Save writes the record bytes for key (last write wins).
func (s *FileStore) Save(key string, data []byte) error {
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("colorstore: save %q: %w", key, err)
	}

	return nil
}
