package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

type jsonFileStore struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewJSONFileStore keeps each document in <dir>/<name>.json.
func NewJSONFileStore(dir string) RecordStore {
	return &jsonFileStore{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *jsonFileStore) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *jsonFileStore) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *jsonFileStore) Read(ctx context.Context, name string) ([]json.RawMessage, error) {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return s.read(ctx, name)
}

func (s *jsonFileStore) Write(ctx context.Context, name string, records []json.RawMessage) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()
	return s.write(ctx, name, records)
}

func (s *jsonFileStore) Update(ctx context.Context, name string, fn func([]json.RawMessage) ([]json.RawMessage, error)) error {
	l := s.lock(name)
	l.Lock()
	defer l.Unlock()

	records, err := s.read(ctx, name)
	if err != nil {
		return err
	}
	records, err = fn(records)
	if err != nil {
		return err
	}
	return s.write(ctx, name, records)
}

func (s *jsonFileStore) read(ctx context.Context, name string) ([]json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	body, err := os.ReadFile(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return decodeDocument(name, body)
}

// write replaces the document through a temp file so readers never see a partial file.
func (s *jsonFileStore) write(ctx context.Context, name string, records []json.RawMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := encodeDocument(name, records)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	tmpName := tmp.Name()
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if _, err := tmp.Write(body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := os.Rename(tmpName, s.path(name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
