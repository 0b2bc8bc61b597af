package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/statdle/statdle/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.SessionTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) newSession(id string) *model.Session {
	now := time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)
	return &model.Session{
		ID:           model.SessionID(id),
		AnswerID:     42,
		Mode:         model.ModeUnlimited,
		Hints:        make(map[model.Hint]bool),
		Outcome:      model.OutcomeInProgress,
		CreatedAt:    now,
		LastAccessed: now,
	}
}

func (s *StorageSuite) TestSaveAndGetSession() {
	sess := s.newSession("session-1")

	err := s.storage.SaveSession(s.ctx, sess)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(sess.ID, retrieved.ID)
	s.Equal(sess.AnswerID, retrieved.AnswerID)
	s.Equal(model.ModeUnlimited, retrieved.Mode)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestSaveSetsTTL() {
	sess := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	ttl := s.mini.TTL(sessionKey("session-1"))
	s.Equal(time.Hour, ttl)
}

func (s *StorageSuite) TestSessionExpires() {
	sess := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	s.mini.FastForward(time.Hour + time.Minute)

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetRefreshesTTL() {
	sess := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	s.mini.FastForward(30 * time.Minute)
	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)

	// The TTL is back to the full hour after the access
	s.Equal(time.Hour, s.mini.TTL(sessionKey("session-1")))
}

func (s *StorageSuite) TestUpdateSessionCommitsChanges() {
	sess := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	updated, err := s.storage.UpdateSession(s.ctx, "session-1", func(sess *model.Session) error {
		sess.Guesses = append(sess.Guesses, model.Guess{Name: "Joe Montana", Correct: true})
		sess.Outcome = model.OutcomeWon
		return nil
	})
	s.Require().NoError(err)
	s.Equal(model.OutcomeWon, updated.Outcome)

	stored, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.OutcomeWon, stored.Outcome)
	s.Equal(1, stored.GuessCount())
}

func (s *StorageSuite) TestUpdateSessionRollsBackOnError() {
	sess := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	boom := errors.New("boom")
	_, err := s.storage.UpdateSession(s.ctx, "session-1", func(sess *model.Session) error {
		sess.Outcome = model.OutcomeWon
		return boom
	})
	s.ErrorIs(err, boom)

	stored, err := s.storage.GetSession(s.ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(model.OutcomeInProgress, stored.Outcome)
}

func (s *StorageSuite) TestUpdateSessionNotFound() {
	_, err := s.storage.UpdateSession(s.ctx, "nonexistent", func(sess *model.Session) error {
		return nil
	})
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	sess := s.newSession("session-1")
	s.Require().NoError(s.storage.SaveSession(s.ctx, sess))

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "session-1"))

	_, err := s.storage.GetSession(s.ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestPurgeExpiredIsNoOp() {
	removed, err := s.storage.PurgeExpired(s.ctx, time.Now())
	s.Require().NoError(err)
	s.Equal(0, removed)
}
