// Package memory is an in-process kv.Store, used by tests and by clients run
// with an ephemeral profile.
package memory

import (
	"context"
	"sync"

	"linkedink/internal/storage/kv"
)

type Store struct {
	mu      sync.Mutex
	entries map[string]kv.Entry
	seq     int64
}

func New() *Store {
	return &Store{entries: make(map[string]kv.Entry)}
}

func (s *Store) Get(_ context.Context, key string) (kv.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return kv.Entry{}, kv.ErrNotFound
	}
	return kv.Entry{Value: clone(e.Value), Version: e.Version}, nil
}

func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.write(key, value)
	return nil
}

func (s *Store) PutAll(_ context.Context, values map[string][]byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range values {
		s.write(k, v)
	}
	return nil
}

func (s *Store) CompareAndSwap(_ context.Context, key string, version int64, value []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries[key].Version != version {
		return 0, kv.ErrVersionConflict
	}
	return s.write(key, value), nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) write(key string, value []byte) int64 {
	s.seq++
	s.entries[key] = kv.Entry{Value: clone(value), Version: s.seq}
	return s.seq
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
