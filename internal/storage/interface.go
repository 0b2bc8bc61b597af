package storage

import (
	"context"
	"time"

	"github.com/statdle/statdle/internal/model"
)

// Store defines the interface for session persistence.
//
// Implementations must serialize operations on a single session: two
// concurrent UpdateSession calls for the same id must observe each other's
// writes, and a mutation callback that returns an error must leave the
// stored state untouched. Operations on different sessions should not
// contend on a single global lock.
type Store interface {
	// SaveSession stores a new session
	SaveSession(ctx context.Context, session *model.Session) error

	// GetSession retrieves a session by id, refreshing its last-accessed
	// time. Returns model.ErrSessionNotFound for unknown or expired ids.
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)

	// UpdateSession applies fn to the session atomically. fn receives a
	// clone of the stored session; the clone is committed only if fn
	// returns nil. Returns the committed session state.
	UpdateSession(ctx context.Context, id model.SessionID, fn func(*model.Session) error) (*model.Session, error)

	// DeleteSession removes a session if present
	DeleteSession(ctx context.Context, id model.SessionID) error

	// PurgeExpired removes sessions that have outlived their TTL as of now,
	// returning how many were removed. Backends with server-side expiry may
	// make this a no-op.
	PurgeExpired(ctx context.Context, now time.Time) (int, error)
}
