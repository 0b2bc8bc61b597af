package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/statdle/statdle/internal/api/handler"
	"github.com/statdle/statdle/internal/api/middleware"
	"github.com/statdle/statdle/internal/api/response"
	"github.com/statdle/statdle/internal/services/autocomplete"
	"github.com/statdle/statdle/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	GameController game.ControllerInterface
	Autocomplete   *autocomplete.Service
	AllowedOrigins []string
}

// NewRouter creates the API router with all routes configured.
// Routes live at the root path; the front-end calls them directly.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController)
	catalogHandler := handler.NewCatalogHandler(cfg.Autocomplete)

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	r.HandleFunc("/", rootHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	r.HandleFunc("/daily_qb", gameHandler.Daily).Methods(http.MethodGet)
	r.HandleFunc("/random_qb", gameHandler.Random).Methods(http.MethodGet)
	r.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost)
	r.HandleFunc("/reveal", gameHandler.Reveal).Methods(http.MethodPost)
	r.HandleFunc("/hint", gameHandler.Hint).Methods(http.MethodPost)
	r.HandleFunc("/autocomplete", catalogHandler.Autocomplete).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})

	return c.Handler(r)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.RootResponse{Status: "API running"})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
	})
}
