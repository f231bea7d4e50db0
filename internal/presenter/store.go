package presenter

import (
	"sync"
	"time"
)

type entry struct {
	page     *Page
	lastSeen time.Time
}

// Store keeps one Page per session id. Pages idle for longer than ttl are
// evicted unless a search is in flight.
type Store struct {
	analyzer Analyzer
	ttl      time.Duration
	now      func() time.Time

	mu    sync.Mutex
	pages map[string]*entry
}

// NewStore creates a Store whose pages use analyzer
func NewStore(analyzer Analyzer, ttl time.Duration) *Store {
	return &Store{
		analyzer: analyzer,
		ttl:      ttl,
		now:      time.Now,
		pages:    make(map[string]*entry),
	}
}

// Get returns the page for id, creating it if needed
func (s *Store) Get(id string) *Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	e, ok := s.pages[id]
	if !ok {
		e = &entry{page: NewPage(s.analyzer)}
		s.pages[id] = e
	}
	e.lastSeen = now
	return e.page
}

// Len returns the number of live pages
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

func (s *Store) sweepLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for id, e := range s.pages {
		if now.Sub(e.lastSeen) > s.ttl && !e.page.Busy() {
			delete(s.pages, id)
		}
	}
}
