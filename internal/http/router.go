package http

import (
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"football-stats-service/internal/http/handlers"
)

// NewRouter registers the service routes on a chi router. Routes are
// method-scoped, so chi answers 405 for wrong methods and 404 for unknown
// paths without extra handling.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	r := chi.NewRouter()
	r.Get("/", handler.Index)
	r.Get("/health", handler.Health)
	r.Get("/player/{player_id}", handler.PlayerStats)
	r.Get("/topscorers/{league_id}", handler.TopScorers)
	return r
}
