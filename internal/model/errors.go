package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound   = errors.New("session not found or expired")
	ErrGameOver          = errors.New("game is already over")
	ErrGuessLimitReached = errors.New("guess limit reached")
	ErrInvalidHint       = errors.New("invalid hint category")

	// Catalog errors
	ErrPlayerNotFound   = errors.New("player not found")
	ErrCatalogNotLoaded = errors.New("player catalog not loaded")
	ErrEmptyPool        = errors.New("no playable players found")
)
