package handler

import (
	"encoding/json"
	"net/http"

	"github.com/statdle/statdle/internal/api/apierr"
	"github.com/statdle/statdle/internal/api/request"
	"github.com/statdle/statdle/internal/api/response"
	"github.com/statdle/statdle/internal/model"
	"github.com/statdle/statdle/internal/services/game"
)

// GameHandler handles session lifecycle endpoints
type GameHandler struct {
	controller game.ControllerInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller game.ControllerInterface) *GameHandler {
	return &GameHandler{controller: controller}
}

// Daily handles GET /daily_qb
func (h *GameHandler) Daily(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.StartDaily(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewGameFromModel(result.Session, result.Answer))
}

// Random handles GET /random_qb
func (h *GameHandler) Random(w http.ResponseWriter, r *http.Request) {
	result, err := h.controller.StartUnlimited(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.NewGameFromModel(result.Session, result.Answer))
}

// Guess handles POST /guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewBadRequestError("Invalid request body"))
		return
	}

	if req.SessionID == "" {
		apierr.WriteError(w, apierr.NewBadRequestError("Missing session_id"))
		return
	}
	if req.Guess == "" {
		apierr.WriteError(w, apierr.NewBadRequestError("Missing guess"))
		return
	}

	result, err := h.controller.Guess(r.Context(), model.SessionID(req.SessionID), req.Guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GuessFromModel(result.Guess))
}

// Reveal handles POST /reveal
func (h *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	var req request.RevealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewBadRequestError("Invalid request body"))
		return
	}

	if req.SessionID == "" {
		apierr.WriteError(w, apierr.NewBadRequestError("Missing session_id"))
		return
	}

	answer, _, err := h.controller.Reveal(r.Context(), model.SessionID(req.SessionID))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RevealFromModel(answer))
}

// Hint handles POST /hint
func (h *GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	var req request.HintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewBadRequestError("Invalid request body"))
		return
	}

	if req.SessionID == "" {
		apierr.WriteError(w, apierr.NewBadRequestError("Missing session_id"))
		return
	}
	if req.Hint == "" {
		apierr.WriteError(w, apierr.NewBadRequestError("Missing hint"))
		return
	}

	session, err := h.controller.RevealHint(r.Context(), model.SessionID(req.SessionID), model.Hint(req.Hint))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HintFromModel(session))
}
