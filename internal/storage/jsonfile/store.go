// Package jsonfile persists a collection of records as a single JSON array
// in one file. Each store exclusively owns its file.
//
// A missing file is not an error: the first Read creates it containing "[]"
// and returns an empty slice. A file that exists but does not parse IS an
// error — the store never fabricates an empty collection out of corruption.
//
// Writes go through a temp file in the same directory followed by a rename,
// so a crash mid-write leaves either the old or the new content, never half
// of each. A per-store mutex serializes read-modify-write cycles between
// concurrent handlers; use Update for anything that depends on the current
// contents.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

type Store[T any] struct {
	mu   sync.Mutex
	path string
}

// NewStore returns a store over the JSON array file at path. The file is
// created lazily on first access.
func NewStore[T any](path string) *Store[T] {
	return &Store[T]{path: path}
}

// Path returns the backing file path.
func (s *Store[T]) Path() string {
	return s.path
}

// Read returns the full collection. An absent file is initialized to an
// empty array; a corrupt file fails loudly.
func (s *Store[T]) Read() ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// Write replaces the full collection.
func (s *Store[T]) Write(records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(records)
}

// Update runs fn over the current collection and persists whatever it
// returns, all under the store lock. Returning an error from fn aborts the
// update and leaves the file untouched.
func (s *Store[T]) Update(fn func(records []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.read()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if err != nil {
		return err
	}
	return s.write(updated)
}

func (s *Store[T]) read() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := s.write([]T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %q: %w", s.path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("jsonfile: parse %q: %w", s.path, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (s *Store[T]) write(records []T) error {
	// Indented output to keep the files hand-inspectable, same shape the
	// frontend tooling already expects.
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonfile: marshal %q: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("jsonfile: temp file for %q: %w", s.path, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonfile: write %q: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonfile: close temp for %q: %w", s.path, err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("jsonfile: replace %q: %w", s.path, err)
	}
	return nil
}
