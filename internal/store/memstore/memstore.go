// Package memstore is the fallback catalog: a static in-memory reference
// dataset behind the same store.Catalog contract as the SQL backend. It is
// selected at startup when no persistent store is configured and serves the
// identical resolution semantics, including the sport constraint on team
// lookups.
package memstore

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	"github.com/fortuna/rosetta/internal/normalize"
	"github.com/fortuna/rosetta/internal/store"
)

// Store is the in-memory catalog
type Store struct {
	sports       map[int]store.Sport
	leagues      map[int]store.League
	teams        []store.Team
	players      []store.Player
	markets      []store.Market
	marketSports map[int][]int // market id -> sport ids
}

var _ store.Catalog = (*Store)(nil)

// New creates the in-memory catalog over the built-in reference dataset
func New() *Store {
	s := &Store{
		sports:       make(map[int]store.Sport),
		leagues:      make(map[int]store.League),
		marketSports: make(map[int][]int),
	}
	s.load()
	return s
}

// ResolveTeams implements store.Catalog
func (s *Store) ResolveTeams(ctx context.Context, team, sport string) ([]store.TeamMatch, error) {
	if team == "" {
		return nil, nil
	}

	var matches []store.TeamMatch
	for _, t := range s.teams {
		if !teamMatches(t, team) {
			continue
		}
		if sport != "" && normalize.Key(s.sportName(t.SportID)) != sport {
			continue
		}

		roster := s.roster(t.ID)
		matches = append(matches, store.TeamMatch{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			City:         t.City,
			Mascot:       t.Mascot,
			Nickname:     t.Nickname,
			League:       s.leagueRef(t.LeagueID),
			Sport:        s.sportRef(t.SportID),
			Roster:       roster,
			PlayerCount:  len(roster),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Name != matches[j].Name {
			return matches[i].Name < matches[j].Name
		}
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

// ResolvePlayer implements store.Catalog
func (s *Store) ResolvePlayer(ctx context.Context, name string) (*store.PlayerMatch, error) {
	if name == "" {
		return nil, nil
	}

	for _, p := range s.players {
		if normalize.Key(p.Name) != name &&
			normalize.Key(p.FirstName+" "+p.LastName) != name {
			continue
		}

		m := &store.PlayerMatch{
			ID:        p.ID,
			Name:      p.Name,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Position:  nullString(p.Position),
			Number:    nullInt(p.Number),
			League:    s.leagueRef(p.LeagueID),
			Sport:     s.sportRef(p.SportID),
		}
		if p.TeamID.Valid {
			if t := s.teamByID(int(p.TeamID.Int64)); t != nil {
				teamName := t.Name
				m.Team = &teamName
			}
		}
		return m, nil
	}
	return nil, nil
}

// ResolveMarket implements store.Catalog
func (s *Store) ResolveMarket(ctx context.Context, name string) (*store.MarketMatch, error) {
	if name == "" {
		return nil, nil
	}

	for _, m := range s.markets {
		if normalize.Key(m.Name) != name {
			continue
		}

		sports := []string{}
		for _, sportID := range s.marketSports[m.ID] {
			sports = append(sports, s.sports[sportID].Name)
		}
		return &store.MarketMatch{
			ID:           m.ID,
			Name:         m.Name,
			MarketTypeID: m.MarketTypeID,
			Sports:       sports,
		}, nil
	}
	return nil, nil
}

// ListTeams implements store.Catalog
func (s *Store) ListTeams(ctx context.Context) ([]store.TeamSummary, error) {
	var teams []store.TeamSummary
	for _, t := range s.teams {
		teams = append(teams, store.TeamSummary{
			ID:           t.ID,
			Name:         t.Name,
			Abbreviation: t.Abbreviation,
			League:       s.leagueRef(t.LeagueID),
			Sport:        s.sportRef(t.SportID),
		})
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

// ListPlayers implements store.Catalog
func (s *Store) ListPlayers(ctx context.Context) ([]store.PlayerSummary, error) {
	var players []store.PlayerSummary
	for _, p := range s.players {
		summary := store.PlayerSummary{
			ID:       p.ID,
			Name:     p.Name,
			Position: nullString(p.Position),
			League:   s.leagueRef(p.LeagueID),
			Sport:    s.sportRef(p.SportID),
		}
		if p.TeamID.Valid {
			if t := s.teamByID(int(p.TeamID.Int64)); t != nil {
				teamName := t.Name
				summary.Team = &teamName
			}
		}
		players = append(players, summary)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

// ListMarkets implements store.Catalog
func (s *Store) ListMarkets(ctx context.Context) ([]store.Market, error) {
	markets := make([]store.Market, len(s.markets))
	copy(markets, s.markets)
	sort.Slice(markets, func(i, j int) bool { return markets[i].Name < markets[j].Name })
	return markets, nil
}

// HealthCheck implements store.Catalog; the static dataset is always live
func (s *Store) HealthCheck(ctx context.Context) error {
	return nil
}

// Close implements store.Catalog
func (s *Store) Close() error {
	return nil
}

// teamMatches applies the team matching rule: substring on name or nickname,
// exact on abbreviation
func teamMatches(t store.Team, key string) bool {
	return strings.Contains(normalize.Key(t.Name), key) ||
		strings.Contains(normalize.Key(t.Nickname), key) ||
		normalize.Key(t.Abbreviation) == key
}

// roster returns all players on a team, ordered ascending by player name
func (s *Store) roster(teamID int) []store.RosterPlayer {
	roster := []store.RosterPlayer{}
	for _, p := range s.players {
		if !p.TeamID.Valid || int(p.TeamID.Int64) != teamID {
			continue
		}
		roster = append(roster, store.RosterPlayer{
			ID:        p.ID,
			Name:      p.Name,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Position:  nullString(p.Position),
			Number:    nullInt(p.Number),
			Age:       nullInt(p.Age),
			Height:    nullString(p.Height),
			Weight:    nullInt(p.Weight),
		})
	}
	sort.Slice(roster, func(i, j int) bool { return roster[i].Name < roster[j].Name })
	return roster
}

func (s *Store) teamByID(id int) *store.Team {
	for i := range s.teams {
		if s.teams[i].ID == id {
			return &s.teams[i]
		}
	}
	return nil
}

func (s *Store) sportName(id sql.NullInt64) string {
	if !id.Valid {
		return ""
	}
	return s.sports[int(id.Int64)].Name
}

func (s *Store) sportRef(id sql.NullInt64) *string {
	if !id.Valid {
		return nil
	}
	sport, ok := s.sports[int(id.Int64)]
	if !ok {
		return nil
	}
	name := sport.Name
	return &name
}

func (s *Store) leagueRef(id sql.NullInt64) *string {
	if !id.Valid {
		return nil
	}
	league, ok := s.leagues[int(id.Int64)]
	if !ok {
		return nil
	}
	name := league.Name
	return &name
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
