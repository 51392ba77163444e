package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/rosetta/internal/store"
)

// PlayerRepository handles player resolution and listing
type PlayerRepository struct {
	db *store.Database
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *store.Database) *PlayerRepository {
	return &PlayerRepository{db: db}
}

const resolvePlayerQuery = `
	SELECT p.id, p.name, p.first_name, p.last_name, p.position, p.number,
		t.name AS team_name, l.name AS league_name, s.name AS sport_name
	FROM players p
	LEFT JOIN teams t ON p.team_id = t.id
	LEFT JOIN leagues l ON p.league_id = l.id
	LEFT JOIN sports s ON p.sport_id = s.id
	WHERE LOWER(p.name) = ? OR LOWER(p.first_name || ' ' || p.last_name) = ?
	LIMIT 1
`

// Resolve returns the first player whose name, or first+last concatenation,
// equals the key exactly. Substring matches are out of contract for players.
// Duplicate names resolve to a store-defined row; no tie-break order is
// imposed. Keys must already be normalized; the empty key matches nothing.
func (r *PlayerRepository) Resolve(ctx context.Context, name string) (*store.PlayerMatch, error) {
	if name == "" {
		return nil, nil
	}

	conn, err := r.db.DB().Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store connection: %w", err)
	}
	defer conn.Close()

	var m store.PlayerMatch
	var position sql.NullString
	var number sql.NullInt64
	var team, league, sport sql.NullString
	err = conn.QueryRowContext(ctx, r.db.Rebind(resolvePlayerQuery), name, name).Scan(
		&m.ID, &m.Name, &m.FirstName, &m.LastName, &position, &number,
		&team, &league, &sport,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying player: %w", err)
	}

	m.Position = nullString(position)
	m.Number = nullInt(number)
	m.Team = nullString(team)
	m.League = nullString(league)
	m.Sport = nullString(sport)
	return &m, nil
}

// List returns the bulk player listing with denormalized display names
func (r *PlayerRepository) List(ctx context.Context) ([]store.PlayerSummary, error) {
	query := `
		SELECT p.id, p.name, p.position,
			t.name AS team_name, l.name AS league_name, s.name AS sport_name
		FROM players p
		LEFT JOIN teams t ON p.team_id = t.id
		LEFT JOIN leagues l ON p.league_id = l.id
		LEFT JOIN sports s ON p.sport_id = s.id
		ORDER BY p.name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}
	defer rows.Close()

	var players []store.PlayerSummary
	for rows.Next() {
		var p store.PlayerSummary
		var position, team, league, sport sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &position, &team, &league, &sport); err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		p.Position = nullString(position)
		p.Team = nullString(team)
		p.League = nullString(league)
		p.Sport = nullString(sport)
		players = append(players, p)
	}

	return players, rows.Err()
}
