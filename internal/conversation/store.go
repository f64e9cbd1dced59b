package conversation

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps one Context per session ID. A session expires once it has not
// been touched for the TTL; the least recently used ones are evicted past the
// size limit.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, *Context]
	window   int
}

// NewStore creates a store holding at most maxSessions contexts for ttl each.
func NewStore(maxSessions int, ttl time.Duration, window int) *Store {
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL * time.Minute
	}
	return &Store{
		sessions: expirable.NewLRU[string, *Context](maxSessions, nil, ttl),
		window:   window,
	}
}

// Get returns the context of sessionID, creating an empty one on first use.
// Every call restarts the session's TTL.
func (s *Store) Get(sessionID string) *Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.sessions.Get(sessionID); ok {
		// expirable.LRU.Get keeps the original deadline; Add resets it.
		s.sessions.Add(sessionID, c)
		return c
	}
	c := NewContext(s.window)
	s.sessions.Add(sessionID, c)
	return c
}

// Peek returns the context of sessionID without creating it.
func (s *Store) Peek(sessionID string) (*Context, bool) {
	return s.sessions.Peek(sessionID)
}

// Reset clears the history of sessionID, creating the session if needed.
func (s *Store) Reset(sessionID string) *Context {
	c := s.Get(sessionID)
	c.Reset()
	return c
}

// Delete drops sessionID entirely.
func (s *Store) Delete(sessionID string) {
	s.sessions.Remove(sessionID)
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
