// Package cache holds rendered pages for a fixed time window.
package cache

import (
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type Entry struct {
	Status      int
	ContentType string
	Body        []byte
	expires     time.Time
}

// Store is a keyed page cache. Now is replaceable so tests can advance
// time instead of sleeping.
type Store struct {
	entries cmap.ConcurrentMap[string, Entry]
	Now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		entries: cmap.New[Entry](),
		Now:     time.Now,
	}
}

// Get returns the stored entry if it has not expired yet.
func (s *Store) Get(key string) (Entry, bool) {
	entry, ok := s.entries.Get(key)
	if !ok {
		return Entry{}, false
	}
	if s.Now().After(entry.expires) {
		s.entries.Remove(key)
		return Entry{}, false
	}
	return entry, true
}

func (s *Store) Set(key string, entry Entry, ttl time.Duration) {
	entry.expires = s.Now().Add(ttl)
	s.entries.Set(key, entry)
}

// Clear drops the entry; the next request recomputes and re-caches.
func (s *Store) Clear(key string) {
	s.entries.Remove(key)
}
