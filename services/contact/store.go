package contact

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an untouched visitor form is kept
const DefaultSessionTTL = 2 * time.Hour

type storeEntry struct {
	form     *Form
	lastSeen time.Time
}

// Store keeps one Form per visitor id
type Store struct {
	mu         sync.Mutex
	forms      map[string]*storeEntry
	ttl        time.Duration
	resetDelay time.Duration
	now        func() time.Time
}

// NewStore creates a store whose forms revert success banners after
// resetDelay and are dropped after ttl without activity.
func NewStore(resetDelay, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Store{
		forms:      make(map[string]*storeEntry),
		ttl:        ttl,
		resetDelay: resetDelay,
		now:        time.Now,
	}
}

// Get returns the visitor's form, creating it on first use
func (s *Store) Get(visitorID string) *Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.forms[visitorID]
	if !ok {
		entry = &storeEntry{form: NewForm(s.resetDelay)}
		s.forms[visitorID] = entry
	}
	entry.lastSeen = s.now()
	return entry.form
}

// Lookup returns the visitor's form without creating one
func (s *Store) Lookup(visitorID string) (*Form, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.forms[visitorID]
	if !ok {
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.form, true
}

// Len returns the number of tracked visitors
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

// Sweep closes and removes forms idle for longer than the TTL. Forms with a
// submission in flight are kept. It returns the number removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, entry := range s.forms {
		if entry.lastSeen.After(cutoff) || entry.form.Snapshot().Submitting {
			continue
		}
		entry.form.Close()
		delete(s.forms, id)
		removed++
	}
	return removed
}

// Close closes and forgets every form
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.forms {
		entry.form.Close()
		delete(s.forms, id)
	}
}
