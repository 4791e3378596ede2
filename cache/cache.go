// Package cache holds the two small in-memory caches the service runs with:
// a TTL cache in front of the lookup collections (payment types, delivery
// types, worker types, states, permissions), and a bounded page cache for
// list endpoints. Staleness of a few minutes is accepted; write sites call
// Invalidate / Bump explicitly.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	lookupTTL = 5 * time.Minute
	pageTTL   = 2 * time.Minute

	// At most 5 cached pages, evicted oldest-first.
	maxPages = 5
)

type Store struct {
	lookups *expirable.LRU[string, interface{}]
	pages   *expirable.LRU[string, interface{}]

	mu   sync.Mutex
	gens map[string]uint64
}

func New() *Store {
	return &Store{
		lookups: expirable.NewLRU[string, interface{}](0, nil, lookupTTL),
		pages:   expirable.NewLRU[string, interface{}](maxPages, nil, pageTTL),
		gens:    make(map[string]uint64),
	}
}

func (s *Store) Get(key string) (interface{}, bool) {
	return s.lookups.Get(key)
}

func (s *Store) Set(key string, value interface{}) {
	s.lookups.Add(key, value)
}

func (s *Store) Invalidate(key string) {
	s.lookups.Remove(key)
}

// PageKey builds a page-cache key bound to the collection's current write
// generation; bumping the generation orphans every cached page of that
// collection without scanning the LRU.
func (s *Store) PageKey(collection, cursor string) string {
	s.mu.Lock()
	gen := s.gens[collection]
	s.mu.Unlock()
	return fmt.Sprintf("%s:%d:%s", collection, gen, cursor)
}

func (s *Store) GetPage(key string) (interface{}, bool) {
	return s.pages.Get(key)
}

func (s *Store) SetPage(key string, value interface{}) {
	s.pages.Add(key, value)
}

// Bump invalidates all cached pages of a collection. Called after any write
// to it.
func (s *Store) Bump(collection string) {
	s.mu.Lock()
	s.gens[collection]++
	s.mu.Unlock()
}

// Shared is the process-wide instance used by the controllers.
var Shared = New()
