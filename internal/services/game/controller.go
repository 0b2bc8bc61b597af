package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/statdle/statdle/internal/catalog"
	"github.com/statdle/statdle/internal/dependencies/clock"
	"github.com/statdle/statdle/internal/dependencies/random"
	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/services/daily"
	"github.com/statdle/statdle/internal/storage"
)

// Config holds gameplay settings
type Config struct {
	// MaxGuesses is the guess cap per session
	MaxGuesses int

	// DailySalt keys the daily answer schedule; changing it reshuffles
	// which player each date maps to
	DailySalt string
}

// DefaultConfig returns the standard gameplay settings
func DefaultConfig() Config {
	return Config{
		MaxGuesses: 8,
	}
}

// StartResult pairs a new session with its chosen answer so the transport
// layer can serve the obfuscated stats without a second lookup
type StartResult struct {
	Session *model.Session
	Answer  *model.PlayerRecord
}

// GuessResult is the evaluation of one guess plus the session state after it
type GuessResult struct {
	Guess   model.Guess
	Session *model.Session
}

// Controller manages session lifecycle and guess evaluation
type Controller struct {
	store   storage.Store
	catalog catalog.CatalogInterface
	clock   clock.Clock
	random  random.Random
	cfg     Config
	logger  *slog.Logger
}

// NewController creates a new game controller
func NewController(
	store storage.Store,
	cat catalog.CatalogInterface,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		store:   store,
		catalog: cat,
		clock:   clk,
		random:  rnd,
		cfg:     cfg,
		logger:  logger,
	}
}

// StartDaily creates a session whose answer is the deterministic pick for
// the current UTC date. Every daily session created on the same date gets
// the same answer.
func (c *Controller) StartDaily(ctx context.Context) (*StartResult, error) {
	answer, err := daily.PickForDate(c.clock.Now(), c.cfg.DailySalt, c.catalog.All())
	if err != nil {
		return nil, err
	}
	return c.start(ctx, model.ModeDaily, answer)
}

// StartUnlimited creates a session with a uniformly random answer
func (c *Controller) StartUnlimited(ctx context.Context) (*StartResult, error) {
	pool := c.catalog.All()
	if len(pool) == 0 {
		return nil, model.ErrEmptyPool
	}
	answer := pool[c.random.Intn(len(pool))]
	return c.start(ctx, model.ModeUnlimited, answer)
}

func (c *Controller) start(ctx context.Context, mode model.GameMode, answer *model.PlayerRecord) (*StartResult, error) {
	now := c.clock.Now()
	session := &model.Session{
		ID:           model.SessionID(uuid.NewString()),
		AnswerID:     answer.ID,
		Mode:         mode,
		Hints:        make(map[model.Hint]bool),
		Outcome:      model.OutcomeInProgress,
		CreatedAt:    now,
		LastAccessed: now,
	}

	if err := c.store.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(session.ID)),
		slog.String("mode", string(mode)),
		slog.String("position", string(answer.Position)),
	)

	return &StartResult{Session: session, Answer: answer}, nil
}

// GetSession retrieves a session by id
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.store.GetSession(ctx, id)
}

// Guess evaluates a guessed name against the session's answer and records
// the outcome. Names that resolve to no catalog player are rejected with
// model.ErrPlayerNotFound; the session is not mutated in that case, nor
// when the session is terminal or the guess cap has been reached.
func (c *Controller) Guess(ctx context.Context, id model.SessionID, name string) (*GuessResult, error) {
	var result model.Guess

	session, err := c.store.UpdateSession(ctx, id, func(s *model.Session) error {
		if s.Terminal() {
			return model.ErrGameOver
		}
		if s.GuessCount() >= c.cfg.MaxGuesses {
			return model.ErrGuessLimitReached
		}

		guessed, err := c.catalog.FindByName(name)
		if err != nil {
			return err
		}

		answer, err := c.catalog.ByID(s.AnswerID)
		if err != nil {
			// A session pointing at a player the catalog doesn't know is
			// corrupted state, not a user error
			return fmt.Errorf("resolving session answer %d: %w", s.AnswerID, err)
		}

		result = Evaluate(guessed, answer, c.clock.Now())
		s.Guesses = append(s.Guesses, result)
		if result.Correct {
			s.Outcome = model.OutcomeWon
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("guess evaluated",
		slog.String("session_id", string(id)),
		slog.Bool("correct", result.Correct),
		slog.Int("guess_count", session.GuessCount()),
	)

	return &GuessResult{Guess: result, Session: session}, nil
}

// Reveal discloses the session's answer. An in-progress session becomes
// terminal/lost; a session that was already won or lost keeps its outcome,
// and the answer is returned either way.
func (c *Controller) Reveal(ctx context.Context, id model.SessionID) (*model.PlayerRecord, *model.Session, error) {
	session, err := c.store.UpdateSession(ctx, id, func(s *model.Session) error {
		if !s.Terminal() {
			s.Outcome = model.OutcomeLost
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	answer, err := c.catalog.ByID(session.AnswerID)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving session answer %d: %w", session.AnswerID, err)
	}

	c.logger.Info("session revealed",
		slog.String("session_id", string(id)),
		slog.String("outcome", string(session.Outcome)),
	)

	return answer, session, nil
}

// RevealHint records that the client has revealed an informational hint.
// Recording is idempotent: revealing the same hint twice is not an error.
func (c *Controller) RevealHint(ctx context.Context, id model.SessionID, hint model.Hint) (*model.Session, error) {
	if !hint.Valid() {
		return nil, model.ErrInvalidHint
	}

	return c.store.UpdateSession(ctx, id, func(s *model.Session) error {
		if s.Hints == nil {
			s.Hints = make(map[model.Hint]bool)
		}
		s.Hints[hint] = true
		return nil
	})
}

// Interface for dependency injection
type ControllerInterface interface {
	StartDaily(ctx context.Context) (*StartResult, error)
	StartUnlimited(ctx context.Context) (*StartResult, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	Guess(ctx context.Context, id model.SessionID, name string) (*GuessResult, error)
	Reveal(ctx context.Context, id model.SessionID) (*model.PlayerRecord, *model.Session, error)
	RevealHint(ctx context.Context, id model.SessionID, hint model.Hint) (*model.Session, error)
}

var _ ControllerInterface = (*Controller)(nil)
