// Package repository implements the SQL-backed catalog over the reference
// schema (sports, leagues, teams, players, markets, market_sports). Every
// resolution checks out one pooled connection for its duration and releases
// it on all exit paths.
package repository

import (
	"context"
	"database/sql"

	"github.com/fortuna/rosetta/internal/store"
)

// Catalog composes the per-entity repositories into the store.Catalog
// contract.
type Catalog struct {
	db      *store.Database
	teams   *TeamRepository
	players *PlayerRepository
	markets *MarketRepository
}

var _ store.Catalog = (*Catalog)(nil)

// NewCatalog creates the SQL-backed catalog over an open database
func NewCatalog(db *store.Database) *Catalog {
	return &Catalog{
		db:      db,
		teams:   NewTeamRepository(db),
		players: NewPlayerRepository(db),
		markets: NewMarketRepository(db),
	}
}

// ResolveTeams implements store.Catalog
func (c *Catalog) ResolveTeams(ctx context.Context, team, sport string) ([]store.TeamMatch, error) {
	return c.teams.Resolve(ctx, team, sport)
}

// ResolvePlayer implements store.Catalog
func (c *Catalog) ResolvePlayer(ctx context.Context, name string) (*store.PlayerMatch, error) {
	return c.players.Resolve(ctx, name)
}

// ResolveMarket implements store.Catalog
func (c *Catalog) ResolveMarket(ctx context.Context, name string) (*store.MarketMatch, error) {
	return c.markets.Resolve(ctx, name)
}

// ListTeams implements store.Catalog
func (c *Catalog) ListTeams(ctx context.Context) ([]store.TeamSummary, error) {
	return c.teams.List(ctx)
}

// ListPlayers implements store.Catalog
func (c *Catalog) ListPlayers(ctx context.Context) ([]store.PlayerSummary, error) {
	return c.players.List(ctx)
}

// ListMarkets implements store.Catalog
func (c *Catalog) ListMarkets(ctx context.Context) ([]store.Market, error) {
	return c.markets.List(ctx)
}

// HealthCheck implements store.Catalog
func (c *Catalog) HealthCheck(ctx context.Context) error {
	return c.db.HealthCheck(ctx)
}

// Close implements store.Catalog
func (c *Catalog) Close() error {
	return c.db.Close()
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func nullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	n := int(ni.Int64)
	return &n
}
