package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"football-stats-service/internal/app/stats"
	"football-stats-service/internal/domain"
	"football-stats-service/internal/logging"
	"football-stats-service/internal/providers"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the stats service.
type Handler struct {
	svc     *stats.Service
	logger  *slog.Logger
	version string
	now     nowFunc
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *stats.Service, logger *slog.Logger, version string) *Handler {
	return &Handler{
		svc:     svc,
		logger:  logger,
		version: version,
		now:     time.Now,
	}
}

// Index serves static service metadata.
func (h *Handler) Index(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := domain.IndexResponse{
		Message: "Football Stats API",
		Version: h.version,
		Endpoints: []string{
			"/",
			"/health",
			"/player/{player_id}",
			"/topscorers/{league_id}",
		},
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// Health reports liveness only. It deliberately checks nothing upstream, so
// it stays green even when the upstream API or credentials are broken.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := domain.HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

// PlayerStats proxies a player statistics query upstream.
func (h *Handler) PlayerStats(w nethttp.ResponseWriter, r *nethttp.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "player_id"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", h.logger)
		return
	}

	season, ok := h.seasonParam(w, r)
	if !ok {
		return
	}

	body, err := h.svc.PlayerStats(r.Context(), domain.PlayerQuery{PlayerID: playerID, Season: season})
	if err != nil {
		h.upstreamFailure(w, r, err)
		return
	}
	writeRaw(w, nethttp.StatusOK, body, h.logger)
}

// TopScorers proxies a league top scorers query upstream.
func (h *Handler) TopScorers(w nethttp.ResponseWriter, r *nethttp.Request) {
	leagueID, err := strconv.Atoi(chi.URLParam(r, "league_id"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid league id", h.logger)
		return
	}

	season, ok := h.seasonParam(w, r)
	if !ok {
		return
	}

	body, err := h.svc.TopScorers(r.Context(), domain.TopScorersQuery{LeagueID: leagueID, Season: season})
	if err != nil {
		h.upstreamFailure(w, r, err)
		return
	}
	writeRaw(w, nethttp.StatusOK, body, h.logger)
}

// seasonParam reads the optional season query parameter. Zero means "use the
// default"; the query types fill it in during normalization.
func (h *Handler) seasonParam(w nethttp.ResponseWriter, r *nethttp.Request) (int, bool) {
	raw := r.URL.Query().Get("season")
	if raw == "" {
		return 0, true
	}
	season, err := strconv.Atoi(raw)
	if err != nil || season <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid season", h.logger)
		return 0, false
	}
	return season, true
}

// upstreamFailure translates provider errors into client responses. Upstream
// errors keep their original status code and message; anything else (network
// failure, cancelled context) becomes a 502.
func (h *Handler) upstreamFailure(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	logger := loggerFromContext(r, h.logger)

	if upErr, ok := providers.AsUpstreamError(err); ok {
		msg := upErr.Message
		if msg == "" {
			msg = "upstream request failed"
		}
		logging.Warn(logger, "upstream error", "status", upErr.StatusCode, logging.FieldProvider, upErr.Provider)
		writeError(w, r, upErr.StatusCode, msg, h.logger)
		return
	}

	logging.Error(logger, "upstream request failed", err)
	writeError(w, r, nethttp.StatusBadGateway, "upstream unavailable", h.logger)
}
