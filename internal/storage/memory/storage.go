package memory

import (
	"context"
	"sync"
	"time"

	"github.com/statdle/statdle/internal/dependencies/clock"
	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/storage"
)

// Config holds expiry settings for the in-memory store
type Config struct {
	// SessionTTL is how long a session lives after its last access
	SessionTTL time.Duration

	// MinAge prevents a session from being expired before it has existed
	// this long, regardless of last access
	MinAge time.Duration
}

// DefaultConfig returns the expiry defaults (72h TTL, 2h minimum age)
func DefaultConfig() Config {
	return Config{
		SessionTTL: 72 * time.Hour,
		MinAge:     2 * time.Hour,
	}
}

// Storage is an in-memory implementation of the session store.
//
// The map itself is guarded by an RWMutex; each session additionally has its
// own mutex so that guess evaluation on one session never contends with
// traffic on another, and so the expiry sweep cannot race an in-flight
// mutation. Expired sessions are rejected lazily on access and physically
// removed by PurgeExpired.
type Storage struct {
	cfg   Config
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[model.SessionID]*entry
}

type entry struct {
	mu   sync.Mutex
	sess *model.Session
}

// New creates a new in-memory storage instance
func New(cfg Config, clk clock.Clock) *Storage {
	return &Storage{
		cfg:      cfg,
		clock:    clk,
		sessions: make(map[model.SessionID]*entry),
	}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &entry{sess: session.Clone()}
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.clock.Now()
	if s.expired(e.sess, now) {
		return nil, model.ErrSessionNotFound
	}

	e.sess.LastAccessed = now
	return e.sess.Clone(), nil
}

func (s *Storage) UpdateSession(ctx context.Context, id model.SessionID, fn func(*model.Session) error) (*model.Session, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := s.clock.Now()
	if s.expired(e.sess, now) {
		return nil, model.ErrSessionNotFound
	}

	// fn works on a clone; the stored session only changes if fn succeeds
	updated := e.sess.Clone()
	if err := fn(updated); err != nil {
		return nil, err
	}

	updated.LastAccessed = now
	e.sess = updated
	return updated.Clone(), nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *Storage) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		// Holding the entry lock here coordinates with in-flight updates:
		// a session mid-mutation is never yanked out from under its caller.
		e.mu.Lock()
		if s.expired(e.sess, now) {
			delete(s.sessions, id)
			removed++
		}
		e.mu.Unlock()
	}
	return removed, nil
}

// Len returns the number of live entries, expired or not (for tests)
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Storage) lookup(id model.SessionID) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return e, nil
}

func (s *Storage) expired(sess *model.Session, now time.Time) bool {
	if now.Sub(sess.LastAccessed) <= s.cfg.SessionTTL {
		return false
	}
	// Never expire very young sessions, even with a stale last-access time
	return now.Sub(sess.CreatedAt) > s.cfg.MinAge
}
