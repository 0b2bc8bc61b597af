package factory

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/statdle/statdle/internal/catalog"
	"github.com/statdle/statdle/internal/dependencies/clock"
	"github.com/statdle/statdle/internal/dependencies/random"
	"github.com/statdle/statdle/internal/services/autocomplete"
	"github.com/statdle/statdle/internal/services/game"
	"github.com/statdle/statdle/internal/services/sweep"
	"github.com/statdle/statdle/internal/storage"
	"github.com/statdle/statdle/internal/storage/memory"
	redisstorage "github.com/statdle/statdle/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Reference data
	Catalog      *catalog.Catalog
	Autocomplete *autocomplete.Service

	// Services
	GameController *game.Controller
	Sweeper        *sweep.Sweeper
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the session store backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// MemoryConfig holds in-memory store settings (optional)
	MemoryConfig *memory.Config
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// GameConfig holds gameplay settings (optional)
	// If zero value, defaults to game.DefaultConfig()
	GameConfig game.Config
	// SweepInterval is how often expired sessions are purged (optional)
	SweepInterval time.Duration
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()
	rnd := random.New()

	// Create the session store based on type
	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		memCfg := memory.DefaultConfig()
		if cfg.MemoryConfig != nil {
			memCfg = *cfg.MemoryConfig
		}
		store = memory.New(memCfg, clk)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	gameCfg := cfg.GameConfig
	if gameCfg.MaxGuesses == 0 {
		gameCfg = game.DefaultConfig()
	}

	sweepInterval := cfg.SweepInterval
	if sweepInterval == 0 {
		sweepInterval = 5 * time.Minute
	}

	return newWithDependencies(store, clk, rnd, gameCfg, sweepInterval, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Store,
	clk clock.Clock,
	rnd random.Random,
	gameCfg game.Config,
	sweepInterval time.Duration,
	logger *slog.Logger,
) *App {
	cat := catalog.New(logger)
	ac := autocomplete.New()
	gameController := game.NewController(store, cat, clk, rnd, gameCfg, logger)
	sweeper := sweep.New(store, clk, sweepInterval, logger)

	return &App{
		Store:          store,
		Clock:          clk,
		Random:         rnd,
		Catalog:        cat,
		Autocomplete:   ac,
		GameController: gameController,
		Sweeper:        sweeper,
	}
}

// IndexCatalog rebuilds the autocomplete index from the loaded catalog.
// Call after every catalog load.
func (a *App) IndexCatalog() {
	a.Autocomplete.BuildIndex(a.Catalog.Names())
}
