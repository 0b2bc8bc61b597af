package handler

import (
	"net/http"

	"github.com/statdle/statdle/internal/api/response"
	"github.com/statdle/statdle/internal/services/autocomplete"
)

// CatalogHandler handles catalog lookup endpoints
type CatalogHandler struct {
	autocomplete *autocomplete.Service
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(ac *autocomplete.Service) *CatalogHandler {
	return &CatalogHandler{autocomplete: ac}
}

// Autocomplete handles GET /autocomplete?q=
func (h *CatalogHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	players := h.autocomplete.Suggest(q, autocomplete.DefaultLimit)
	response.JSON(w, http.StatusOK, response.AutocompleteResponse{Players: players})
}
