package game

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/statdle/statdle/internal/catalog"
	"github.com/statdle/statdle/internal/dependencies/mocks"
	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/services/daily"
	"github.com/statdle/statdle/internal/storage/memory"
	"github.com/statdle/statdle/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	catalog    *catalog.Catalog
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.clock = mocks.NewMockClock(time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.storage = memory.New(memory.DefaultConfig(), s.clock)
	s.catalog = catalog.New(testutil.NopLogger())
	s.Require().NoError(s.catalog.LoadPlayers(testPool()))

	s.controller = NewController(s.storage, s.catalog, s.clock, s.random, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func testPool() []*model.PlayerRecord {
	return []*model.PlayerRecord{
		poolPlayer(1, "Joe Montana", []int{1979, 1984}, "SFO", "KAN"),
		poolPlayer(2, "Steve Young", []int{1985, 1994}, "TAM", "SFO"),
		poolPlayer(3, "Dan Marino", []int{1983, 1999}, "MIA"),
		poolPlayer(4, "Peyton Manning", []int{1998, 2013}, "IND", "DEN"),
		poolPlayer(5, "Drake Maye", []int{2024}, "NWE"),
	}
}

func poolPlayer(id int64, name string, years []int, teams ...string) *model.PlayerRecord {
	p := &model.PlayerRecord{
		ID:       model.PlayerID(id),
		Name:     name,
		PfrID:    fmt.Sprintf("pfr%d", id),
		Position: model.PositionQB,
	}
	for i, y := range years {
		team := teams[0]
		if i >= len(years)/2 && len(teams) > 1 {
			team = teams[1]
		}
		p.Seasons = append(p.Seasons, model.Season{Year: y, Team: team})
	}
	return p
}

// Start tests

func (s *ControllerSuite) TestStartDailyCreatesSession() {
	result, err := s.controller.StartDaily(s.ctx)
	s.Require().NoError(err)

	s.NotEmpty(result.Session.ID)
	s.Equal(model.ModeDaily, result.Session.Mode)
	s.Equal(model.OutcomeInProgress, result.Session.Outcome)
	s.Equal(result.Answer.ID, result.Session.AnswerID)
	s.Equal(s.clock.Now(), result.Session.CreatedAt)

	stored, err := s.storage.GetSession(s.ctx, result.Session.ID)
	s.Require().NoError(err)
	s.Equal(result.Session.AnswerID, stored.AnswerID)
}

func (s *ControllerSuite) TestStartDailyIsDeterministicPerDate() {
	first, err := s.controller.StartDaily(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.StartDaily(s.ctx)
	s.Require().NoError(err)

	s.NotEqual(first.Session.ID, second.Session.ID)
	s.Equal(first.Answer.ID, second.Answer.ID)

	// The schedule is exactly the deterministic pick for the date
	expected, err := daily.PickForDate(s.clock.Now(), "", s.catalog.All())
	s.Require().NoError(err)
	s.Equal(expected.ID, first.Answer.ID)
}

func (s *ControllerSuite) TestStartUnlimitedUsesRandomPick() {
	s.random.QueueIntn(3)

	result, err := s.controller.StartUnlimited(s.ctx)
	s.Require().NoError(err)

	s.Equal(model.ModeUnlimited, result.Session.Mode)
	s.Equal(model.PlayerID(4), result.Answer.ID)
}

func (s *ControllerSuite) TestStartUnlimitedEmptyPool() {
	empty := catalog.New(testutil.NopLogger())
	s.Require().NoError(empty.LoadPlayers(nil))
	controller := NewController(s.storage, empty, s.clock, s.random, DefaultConfig(), testutil.NopLogger())

	_, err := controller.StartUnlimited(s.ctx)
	s.ErrorIs(err, model.ErrEmptyPool)
}

// Guess tests

func (s *ControllerSuite) startWithAnswer(idx int) *StartResult {
	s.random.QueueIntn(idx)
	result, err := s.controller.StartUnlimited(s.ctx)
	s.Require().NoError(err)
	return result
}

func (s *ControllerSuite) TestGuessCorrectWinsSession() {
	started := s.startWithAnswer(0) // Joe Montana

	result, err := s.controller.Guess(s.ctx, started.Session.ID, "Joe Montana")
	s.Require().NoError(err)

	s.True(result.Guess.Correct)
	s.Equal("pfr1", result.Guess.PfrID)
	s.Equal(model.OutcomeWon, result.Session.Outcome)
	s.Equal(1, result.Session.GuessCount())
}

func (s *ControllerSuite) TestGuessNameMatchIsCaseInsensitive() {
	started := s.startWithAnswer(0)

	result, err := s.controller.Guess(s.ctx, started.Session.ID, "  joe   MONTANA ")
	s.Require().NoError(err)
	s.True(result.Guess.Correct)
}

func (s *ControllerSuite) TestGuessIncorrectFeedback() {
	started := s.startWithAnswer(0) // Montana: start 1979, SFO/KAN

	// Young: start 1985 (far), shares SFO
	result, err := s.controller.Guess(s.ctx, started.Session.ID, "Steve Young")
	s.Require().NoError(err)

	s.False(result.Guess.Correct)
	s.Equal("pfr2", result.Guess.PfrID)
	s.Equal(model.EraFar, result.Guess.Era)
	s.True(result.Guess.TeamsOverlap)
	s.Equal(model.OutcomeInProgress, result.Session.Outcome)
}

func (s *ControllerSuite) TestGuessUnknownPlayerLeavesSessionUntouched() {
	started := s.startWithAnswer(0)

	_, err := s.controller.Guess(s.ctx, started.Session.ID, "Nobody Atall")
	s.ErrorIs(err, model.ErrPlayerNotFound)

	stored, err := s.storage.GetSession(s.ctx, started.Session.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.GuessCount())
}

func (s *ControllerSuite) TestGuessUnknownSession() {
	_, err := s.controller.Guess(s.ctx, "no-such-session", "Joe Montana")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ControllerSuite) TestGuessAfterWinIsRejected() {
	started := s.startWithAnswer(0)

	_, err := s.controller.Guess(s.ctx, started.Session.ID, "Joe Montana")
	s.Require().NoError(err)

	_, err = s.controller.Guess(s.ctx, started.Session.ID, "Steve Young")
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ControllerSuite) TestGuessCapEnforced() {
	cfg := Config{MaxGuesses: 3}
	controller := NewController(s.storage, s.catalog, s.clock, s.random, cfg, testutil.NopLogger())

	s.random.QueueIntn(0)
	started, err := controller.StartUnlimited(s.ctx)
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err := controller.Guess(s.ctx, started.Session.ID, "Dan Marino")
		s.Require().NoError(err)
	}

	_, err = controller.Guess(s.ctx, started.Session.ID, "Dan Marino")
	s.ErrorIs(err, model.ErrGuessLimitReached)

	stored, err := s.storage.GetSession(s.ctx, started.Session.ID)
	s.Require().NoError(err)
	s.Equal(3, stored.GuessCount())
	s.Equal(model.OutcomeInProgress, stored.Outcome)
}

func (s *ControllerSuite) TestConcurrentGuessesNeverExceedCap() {
	started := s.startWithAnswer(0)

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = s.controller.Guess(s.ctx, started.Session.ID, "Dan Marino")
		}()
	}
	wg.Wait()

	stored, err := s.storage.GetSession(s.ctx, started.Session.ID)
	s.Require().NoError(err)
	s.Equal(DefaultConfig().MaxGuesses, stored.GuessCount())
}

// Reveal tests

func (s *ControllerSuite) TestRevealEndsInProgressSession() {
	started := s.startWithAnswer(2) // Dan Marino

	answer, session, err := s.controller.Reveal(s.ctx, started.Session.ID)
	s.Require().NoError(err)

	s.Equal("Dan Marino", answer.Name)
	s.Equal(model.OutcomeLost, session.Outcome)
}

func (s *ControllerSuite) TestRevealAfterWinKeepsOutcome() {
	started := s.startWithAnswer(0)

	_, err := s.controller.Guess(s.ctx, started.Session.ID, "Joe Montana")
	s.Require().NoError(err)

	answer, session, err := s.controller.Reveal(s.ctx, started.Session.ID)
	s.Require().NoError(err)

	s.Equal("Joe Montana", answer.Name)
	s.Equal(model.OutcomeWon, session.Outcome)
}

func (s *ControllerSuite) TestRevealUnknownSession() {
	_, _, err := s.controller.Reveal(s.ctx, "no-such-session")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

// Hint tests

func (s *ControllerSuite) TestRevealHintRecordsFlag() {
	started := s.startWithAnswer(0)

	session, err := s.controller.RevealHint(s.ctx, started.Session.ID, model.HintTeams)
	s.Require().NoError(err)
	s.True(session.Hints[model.HintTeams])

	// Idempotent
	session, err = s.controller.RevealHint(s.ctx, started.Session.ID, model.HintTeams)
	s.Require().NoError(err)
	s.True(session.Hints[model.HintTeams])
	s.Len(session.Hints, 1)
}

func (s *ControllerSuite) TestRevealHintInvalidCategory() {
	started := s.startWithAnswer(0)

	_, err := s.controller.RevealHint(s.ctx, started.Session.ID, "career_earnings")
	s.ErrorIs(err, model.ErrInvalidHint)
}
