package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/statdle/statdle/internal/api"
	"github.com/statdle/statdle/internal/config"
	"github.com/statdle/statdle/internal/factory"
	"github.com/statdle/statdle/internal/services/game"
	"github.com/statdle/statdle/internal/storage/memory"
	redisstorage "github.com/statdle/statdle/internal/storage/redis"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config
	memCfg := memory.Config{
		SessionTTL: cfg.Session.TTL,
		MinAge:     cfg.Session.MinAge,
	}
	factoryCfg := factory.Config{
		Logger:       logger,
		StorageType:  cfg.Storage.Type,
		MemoryConfig: &memCfg,
		GameConfig: game.Config{
			MaxGuesses: cfg.Game.MaxGuesses,
			DailySalt:  cfg.Game.DailySalt,
		},
		SweepInterval: cfg.Session.SweepInterval,
	}

	if cfg.Storage.Type == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		redisCfg.SessionTTL = cfg.Session.TTL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the player catalog
	loadCtx, loadCancel := context.WithTimeout(context.Background(), time.Minute)
	if err := app.Catalog.LoadFromSQLite(loadCtx, cfg.Catalog.DBPath); err != nil {
		loadCancel()
		logger.Error("failed to load player catalog",
			slog.String("path", cfg.Catalog.DBPath),
			slog.String("error", err.Error()))
		os.Exit(1)
	}
	loadCancel()
	app.IndexCatalog()
	logger.Info("catalog loaded", slog.Int("players", app.Catalog.Count()))

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		Autocomplete:   app.Autocomplete,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Purge expired sessions in the background
	go app.Sweeper.Run(ctx)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
