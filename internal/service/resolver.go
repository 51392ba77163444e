// Package service holds the resolution dispatcher: the business rules that
// turn a raw query into a typed resolution against the catalog.
package service

import (
	"context"

	"github.com/fortuna/rosetta/internal/normalize"
	"github.com/fortuna/rosetta/internal/store"
)

// Resolution type tags
const (
	TypeTeam   = "team"
	TypePlayer = "player"
	TypeMarket = "market"
)

// Query carries the raw, caller-supplied lookup strings. Empty means absent.
type Query struct {
	Market string
	Team   string
	Player string
	Sport  string
}

// Resolution is the typed result envelope. Type selects which variant is
// populated; Query echoes the original string the caller supplied for the
// matched entity.
type Resolution struct {
	Type  string `json:"type"`
	Query string `json:"query"`

	// Team variant: every team that matched, with rosters
	Teams     []store.TeamMatch `json:"teams,omitempty"`
	TeamCount int               `json:"team_count,omitempty"`

	// Player variant
	Player *store.PlayerMatch `json:"player,omitempty"`

	// Market variant
	Market *store.MarketMatch `json:"market,omitempty"`
}

// Resolver dispatches lookups against the catalog in priority order.
type Resolver struct {
	catalog store.Catalog
}

// NewResolver creates a resolver over the given catalog backend
func NewResolver(catalog store.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve applies the priority rule: team beats player beats market, short-
// circuiting on the first path that yields a match. A supplied team that
// matches wins even when player or market would also have matched. Returns
// (nil, nil) when no path matched; a non-nil error is always a store
// failure, never "not found".
//
// Sport is passed through to team resolution when present; requiring sport
// for team lookups is the API boundary's rule, not this one's, so callers
// without sport context remain supported here.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Resolution, error) {
	if team := normalize.Key(q.Team); team != "" {
		matches, err := r.catalog.ResolveTeams(ctx, team, normalize.Key(q.Sport))
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return &Resolution{
				Type:      TypeTeam,
				Query:     q.Team,
				Teams:     matches,
				TeamCount: len(matches),
			}, nil
		}
	}

	if player := normalize.Key(q.Player); player != "" {
		match, err := r.catalog.ResolvePlayer(ctx, player)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return &Resolution{
				Type:   TypePlayer,
				Query:  q.Player,
				Player: match,
			}, nil
		}
	}

	if market := normalize.Key(q.Market); market != "" {
		match, err := r.catalog.ResolveMarket(ctx, market)
		if err != nil {
			return nil, err
		}
		if match != nil {
			return &Resolution{
				Type:   TypeMarket,
				Query:  q.Market,
				Market: match,
			}, nil
		}
	}

	return nil, nil
}
