package plans

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Session owns one user's plan store. Operations on a session run one at a time.
type Session struct {
	ID      string
	Created time.Time

	mu    sync.Mutex
	store *Store
}

// Do runs fn with exclusive access to the session's store.
func (s *Session) Do(fn func(*Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.store)
}

// Sessions is a bounded registry of sessions. When full, the least recently
// used session is evicted and its plans are discarded.
type Sessions struct {
	mu     sync.Mutex
	cache  *lru.Cache[string, *Session]
	logger *slog.Logger
}

// NewSessions creates a registry holding at most capacity sessions.
func NewSessions(capacity int, logger *slog.Logger) (*Sessions, error) {
	logger = logger.With("system", "sessions")

	cache, err := lru.NewWithEvict(capacity, func(id string, _ *Session) {
		logger.Info("session evicted", "session", id)
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}

	return &Sessions{
		cache:  cache,
		logger: logger,
	}, nil
}

// Open returns the session for id, creating a new one when id is empty or unknown.
// The boolean reports whether a session was created.
func (s *Sessions) Open(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" {
		if sess, ok := s.cache.Get(id); ok {
			return sess, false
		}
	}

	sess := &Session{
		ID:      uuid.NewString(),
		Created: time.Now(),
		store:   NewStore(),
	}
	s.cache.Add(sess.ID, sess)
	s.logger.Info("session opened", "session", sess.ID)

	return sess, true
}

// Get returns the session for id.
func (s *Sessions) Get(id string) (*Session, error) {
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	return sess, nil
}

// End discards the session and all of its plans.
func (s *Sessions) End(id string) bool {
	return s.cache.Remove(id)
}

func (s *Sessions) Len() int {
	return s.cache.Len()
}

// Purge ends every session. It is registered as a shutdown hook so plan
// images are released before the process exits.
func (s *Sessions) Purge() {
	n := s.cache.Len()
	s.cache.Purge()
	s.logger.Info("sessions purged", "count", n)
}
