package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/storage"
)

// updateRetries bounds the optimistic-concurrency retry loop in UpdateSession
const updateRetries = 5

// errUpdateContention is returned when UpdateSession loses the WATCH race
// more times than updateRetries allows
var errUpdateContention = errors.New("session update contention")

// Storage is a Redis-backed implementation of the session store.
// Expiry is delegated to Redis key TTLs, refreshed on every access, so
// PurgeExpired has nothing to do. Single-session atomicity comes from
// WATCH-based optimistic transactions.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.SessionTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	key := sessionKey(id)

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}

	// Refresh the TTL so active sessions stay alive
	_ = s.client.Expire(ctx, key, s.cfg.SessionTTL).Err()

	return &session, nil
}

func (s *Storage) UpdateSession(ctx context.Context, id model.SessionID, fn func(*model.Session) error) (*model.Session, error) {
	key := sessionKey(id)

	var updated *model.Session
	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrSessionNotFound
			}
			return err
		}

		var session model.Session
		if err := json.Unmarshal(data, &session); err != nil {
			return err
		}

		if err := fn(&session); err != nil {
			return err
		}

		out, err := json.Marshal(&session)
		if err != nil {
			return err
		}

		// Committed only if the key is unchanged since the WATCH
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, s.cfg.SessionTTL)
			return nil
		})
		if err != nil {
			return err
		}

		updated = &session
		return nil
	}

	for i := 0; i < updateRetries; i++ {
		err := s.client.Watch(ctx, txn, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue // another writer got there first, retry
		}
		return nil, err
	}
	return nil, errUpdateContention
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id)).Err()
}

// PurgeExpired is a no-op: Redis expires session keys server-side
func (s *Storage) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}
