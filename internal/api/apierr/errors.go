package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/statdle/statdle/internal/model"
)

// ErrorResponse is the wire shape of every non-2xx response. The front-end
// keys its session-recovery path off a 404 whose detail mentions expiry, so
// the detail strings here are part of the API contract.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// httpError combines an HTTP status code with a detail message
type httpError struct {
	status int
	detail string
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.detail
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: he.detail})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, "Session not found or expired. Please start a new game."}
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, "Player not found"}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, "Game is already over. Please start a new game."}
	case errors.Is(err, model.ErrGuessLimitReached):
		return &httpError{http.StatusConflict, "Guess limit reached. Reveal the answer to finish the game."}
	case errors.Is(err, model.ErrInvalidHint):
		return &httpError{http.StatusBadRequest, "Invalid hint category"}
	case errors.Is(err, model.ErrEmptyPool), errors.Is(err, model.ErrCatalogNotLoaded):
		return &httpError{http.StatusInternalServerError, "No playable players found"}
	default:
		return &httpError{http.StatusInternalServerError, "Internal server error"}
	}
}

// NewBadRequestError creates a 400 error with the given detail
func NewBadRequestError(detail string) error {
	return &httpError{http.StatusBadRequest, detail}
}

// NewInternalError creates a 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Internal server error"}
}
