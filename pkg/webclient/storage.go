// Package webclient mirrors the storefront's browser-side state layer: a
// local session/cart cache keyed on a small persistence port, plus an API
// client that keeps the cached user snapshot consistent with the server.
//
// The server is always the source of truth for profile state. The cart is the
// one exception: it lives only in local storage and is never synchronized.
package webclient

import "sync"

// Storage is the persistence port the mirror and cart write through. In a
// browser this is localStorage; tests and non-browser hosts inject their own.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// MemoryStorage is an in-process Storage, safe for concurrent use.
type MemoryStorage struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{m: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}
