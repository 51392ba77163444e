package rest

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fortuna/rosetta/internal/metrics"
	"github.com/fortuna/rosetta/internal/service"
	"github.com/fortuna/rosetta/internal/store"
)

const (
	serviceName    = "rosetta"
	serviceVersion = "1.0.0"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	catalog  store.Catalog
	resolver *service.Resolver
}

// NewHandler creates a new handler
func NewHandler(catalog store.Catalog) *Handler {
	return &Handler{
		catalog:  catalog,
		resolver: service.NewResolver(catalog),
	}
}

// Root handles the service banner
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "online",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// HealthCheck reports process liveness and catalog store reachability
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.HealthCheck(r.Context()); err != nil {
		metrics.StoreHealthy.Set(0)
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	metrics.StoreHealthy.Set(1)
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
	})
}

// GetCacheEntry resolves a market/team/player query to its canonical catalog
// entry. Validation of required parameter combinations happens here, at the
// boundary; the resolver itself accepts any combination.
func (h *Handler) GetCacheEntry(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	market := params.Get("market")
	team := params.Get("team")
	player := params.Get("player")
	sport := params.Get("sport")

	if market == "" && team == "" && player == "" {
		respondError(w, http.StatusBadRequest,
			"At least one parameter (market, team, or player) must be provided", nil)
		return
	}

	// Sport disambiguates team-only lookups; a combined team+player query
	// can still fall through to the player path without it.
	if team != "" && player == "" && sport == "" {
		respondError(w, http.StatusBadRequest,
			"Sport parameter is required when searching by team only", nil)
		return
	}

	echo := map[string]interface{}{
		"market": orNull(market),
		"team":   orNull(team),
		"player": orNull(player),
		"sport":  orNull(sport),
	}

	start := time.Now()
	result, err := h.resolver.Resolve(r.Context(), service.Query{
		Market: market,
		Team:   team,
		Player: player,
		Sport:  sport,
	})
	metrics.ResolutionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues("error").Inc()
		respondError(w, http.StatusInternalServerError, "Error retrieving cache entry", err)
		return
	}

	if result == nil {
		metrics.ResolutionsTotal.WithLabelValues("none").Inc()
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"found":   false,
			"message": "No cache entry found",
			"query":   echo,
		})
		return
	}

	metrics.ResolutionsTotal.WithLabelValues(result.Type).Inc()
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"found": true,
		"data":  result,
		"query": echo,
	})
}

// ListTeams returns the full team catalog
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.catalog.ListTeams(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}

// ListPlayers returns the full player catalog
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.catalog.ListPlayers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// ListMarkets returns the full market catalog
func (h *Handler) ListMarkets(w http.ResponseWriter, r *http.Request) {
	markets, err := h.catalog.ListMarkets(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch markets", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"markets": markets,
		"count":   len(markets),
	})
}

// orNull maps an absent query parameter to JSON null in the query echo
func orNull(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
