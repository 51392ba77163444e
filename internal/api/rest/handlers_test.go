package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fortuna/rosetta/internal/store"
	"github.com/fortuna/rosetta/internal/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// downCatalog simulates an unreachable store behind the same contract.
type downCatalog struct{}

var errStoreDown = errors.New("store unavailable: connection refused")

func (downCatalog) ResolveTeams(ctx context.Context, team, sport string) ([]store.TeamMatch, error) {
	return nil, errStoreDown
}
func (downCatalog) ResolvePlayer(ctx context.Context, name string) (*store.PlayerMatch, error) {
	return nil, errStoreDown
}
func (downCatalog) ResolveMarket(ctx context.Context, name string) (*store.MarketMatch, error) {
	return nil, errStoreDown
}
func (downCatalog) ListTeams(ctx context.Context) ([]store.TeamSummary, error)     { return nil, errStoreDown }
func (downCatalog) ListPlayers(ctx context.Context) ([]store.PlayerSummary, error) { return nil, errStoreDown }
func (downCatalog) ListMarkets(ctx context.Context) ([]store.Market, error)        { return nil, errStoreDown }
func (downCatalog) HealthCheck(ctx context.Context) error                          { return errStoreDown }
func (downCatalog) Close() error                                                   { return nil }

// countingCatalog counts resolution calls so tests can assert the boundary
// rejected a request before the core was consulted.
type countingCatalog struct {
	store.Catalog
	resolveCalls int
}

func (c *countingCatalog) ResolveTeams(ctx context.Context, team, sport string) ([]store.TeamMatch, error) {
	c.resolveCalls++
	return c.Catalog.ResolveTeams(ctx, team, sport)
}

func (c *countingCatalog) ResolvePlayer(ctx context.Context, name string) (*store.PlayerMatch, error) {
	c.resolveCalls++
	return c.Catalog.ResolvePlayer(ctx, name)
}

func (c *countingCatalog) ResolveMarket(ctx context.Context, name string) (*store.MarketMatch, error) {
	c.resolveCalls++
	return c.Catalog.ResolveMarket(ctx, name)
}

func get(t *testing.T, catalog store.Catalog, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	srv := NewServer(0, catalog, false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	srv.Router().ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "Response should be JSON")
	return rec, body
}

func TestCache_RequiresAtLeastOneParameter(t *testing.T) {
	catalog := &countingCatalog{Catalog: memstore.New()}
	rec, body := get(t, catalog, "/cache")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "At least one parameter (market, team, or player) must be provided", body["error"])
	assert.Equal(t, 0, catalog.resolveCalls, "Validation failures must never reach the catalog")
}

func TestCache_TeamOnlyRequiresSport(t *testing.T) {
	catalog := &countingCatalog{Catalog: memstore.New()}
	rec, body := get(t, catalog, "/cache?team=Lakers")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Sport parameter is required when searching by team only", body["error"])
	assert.Equal(t, 0, catalog.resolveCalls, "Validation failures must never reach the catalog")
}

func TestCache_TeamWithPlayerDoesNotRequireSport(t *testing.T) {
	// A combined team+player query may fall through to the player path, so
	// the boundary does not demand sport here.
	rec, body := get(t, memstore.New(), "/cache?team=No+Such+Team&player=LeBron+James")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "player", data["type"])
}

func TestCache_TeamLookup(t *testing.T) {
	rec, body := get(t, memstore.New(), "/cache?team=Lakers&sport=Basketball")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["found"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "team", data["type"])
	assert.Equal(t, "Lakers", data["query"])
	assert.Equal(t, float64(1), data["team_count"])

	teams := data["teams"].([]interface{})
	require.Len(t, teams, 1)
	team := teams[0].(map[string]interface{})
	assert.Equal(t, "Los Angeles Lakers", team["name"])
	assert.Equal(t, float64(3), team["player_count"])
	assert.Len(t, team["players"].([]interface{}), 3)

	query := body["query"].(map[string]interface{})
	assert.Equal(t, "Lakers", query["team"])
	assert.Equal(t, "Basketball", query["sport"])
	assert.Nil(t, query["market"], "Absent parameters echo as null")
	assert.Nil(t, query["player"])
}

func TestCache_TeamAbbreviationLookup(t *testing.T) {
	rec, body := get(t, memstore.New(), "/cache?team=LAL&sport=Basketball")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	teams := data["teams"].([]interface{})
	require.Len(t, teams, 1)
	assert.Equal(t, "Los Angeles Lakers", teams[0].(map[string]interface{})["name"])
}

func TestCache_PlayerLookup(t *testing.T) {
	rec, body := get(t, memstore.New(), "/cache?player=LeBron+James")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "player", data["type"])

	player := data["player"].(map[string]interface{})
	assert.Equal(t, "LeBron James", player["name"])
	assert.Equal(t, "Los Angeles Lakers", player["team"])
}

func TestCache_MarketLookup(t *testing.T) {
	rec, body := get(t, memstore.New(), "/cache?market=moneyline")

	assert.Equal(t, http.StatusOK, rec.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "market", data["type"])

	market := data["market"].(map[string]interface{})
	assert.Equal(t, "Moneyline", market["name"])
	assert.Len(t, market["sports"].([]interface{}), 3)
}

func TestCache_NotFound(t *testing.T) {
	rec, body := get(t, memstore.New(), "/cache?team=Nonexistent+Team&sport=Basketball")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, false, body["found"])
	assert.Equal(t, "No cache entry found", body["message"])

	query := body["query"].(map[string]interface{})
	assert.Equal(t, "Nonexistent Team", query["team"])
}

func TestCache_StoreFailure(t *testing.T) {
	rec, body := get(t, downCatalog{}, "/cache?market=moneyline")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Error retrieving cache entry", body["error"])
	assert.Contains(t, body["details"], "store unavailable")
}

func TestRootAndHealth(t *testing.T) {
	rec, body := get(t, memstore.New(), "/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "online", body["status"])

	rec, body = get(t, memstore.New(), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "healthy", body["status"])
}

func TestHealth_StoreDown(t *testing.T) {
	rec, body := get(t, downCatalog{}, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "unhealthy", body["status"])
}

func TestListEndpoints(t *testing.T) {
	rec, body := get(t, memstore.New(), "/api/v1/teams")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(5), body["count"])

	rec, body = get(t, memstore.New(), "/api/v1/players")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, body["players"])

	rec, body = get(t, memstore.New(), "/api/v1/markets")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(4), body["count"])
}

func TestListEndpoints_StoreFailure(t *testing.T) {
	rec, body := get(t, downCatalog{}, "/api/v1/teams")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to fetch teams", body["error"])
}
