package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fortuna/rosetta/internal/store"
)

// TeamRepository handles team resolution and listing
type TeamRepository struct {
	db *store.Database
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *store.Database) *TeamRepository {
	return &TeamRepository{db: db}
}

const resolveTeamsQuery = `
	SELECT t.id, t.name, t.abbreviation, t.city, t.mascot, t.nickname,
		l.name AS league_name, s.name AS sport_name
	FROM teams t
	LEFT JOIN leagues l ON t.league_id = l.id
	LEFT JOIN sports s ON t.sport_id = s.id
	WHERE (LOWER(t.name) LIKE ? ESCAPE '\' OR LOWER(t.nickname) LIKE ? ESCAPE '\' OR LOWER(t.abbreviation) = ?)
	ORDER BY t.name, t.id
`

const resolveTeamsBySportQuery = `
	SELECT t.id, t.name, t.abbreviation, t.city, t.mascot, t.nickname,
		l.name AS league_name, s.name AS sport_name
	FROM teams t
	LEFT JOIN leagues l ON t.league_id = l.id
	LEFT JOIN sports s ON t.sport_id = s.id
	WHERE (LOWER(t.name) LIKE ? ESCAPE '\' OR LOWER(t.nickname) LIKE ? ESCAPE '\' OR LOWER(t.abbreviation) = ?)
		AND LOWER(s.name) = ?
	ORDER BY t.name, t.id
`

const rosterQuery = `
	SELECT p.id, p.name, p.first_name, p.last_name, p.position,
		p.number, p.age, p.height, p.weight
	FROM players p
	WHERE p.team_id = ?
	ORDER BY p.name
`

// Resolve returns every team whose name or nickname contains the key, or
// whose abbreviation equals it, each with its full roster attached. A
// non-empty sport is an additional exact constraint on the team's sport
// name. Keys must already be normalized; the empty key matches nothing.
func (r *TeamRepository) Resolve(ctx context.Context, team, sport string) ([]store.TeamMatch, error) {
	if team == "" {
		return nil, nil
	}

	conn, err := r.db.DB().Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store connection: %w", err)
	}
	defer conn.Close()

	pattern := "%" + escapeLike(team) + "%"
	query := r.db.Rebind(resolveTeamsQuery)
	args := []interface{}{pattern, pattern, team}
	if sport != "" {
		query = r.db.Rebind(resolveTeamsBySportQuery)
		args = append(args, sport)
	}

	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}

	matches, err := scanTeamMatches(rows)
	if err != nil {
		return nil, err
	}

	// Eager one-to-many roster expansion for every matched team. The outer
	// rows are fully drained before reusing the checked-out connection.
	for i := range matches {
		roster, err := r.roster(ctx, conn, matches[i].ID)
		if err != nil {
			return nil, err
		}
		matches[i].Roster = roster
		matches[i].PlayerCount = len(roster)
	}

	return matches, nil
}

// roster returns all players on a team, ordered ascending by player name
func (r *TeamRepository) roster(ctx context.Context, conn *sql.Conn, teamID int) ([]store.RosterPlayer, error) {
	rows, err := conn.QueryContext(ctx, r.db.Rebind(rosterQuery), teamID)
	if err != nil {
		return nil, fmt.Errorf("querying roster: %w", err)
	}
	defer rows.Close()

	roster := []store.RosterPlayer{}
	for rows.Next() {
		var p store.RosterPlayer
		var position, height sql.NullString
		var number, age, weight sql.NullInt64
		err := rows.Scan(
			&p.ID, &p.Name, &p.FirstName, &p.LastName, &position,
			&number, &age, &height, &weight,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning roster player: %w", err)
		}
		p.Position = nullString(position)
		p.Number = nullInt(number)
		p.Age = nullInt(age)
		p.Height = nullString(height)
		p.Weight = nullInt(weight)
		roster = append(roster, p)
	}

	return roster, rows.Err()
}

// List returns the bulk team listing with denormalized display names
func (r *TeamRepository) List(ctx context.Context) ([]store.TeamSummary, error) {
	query := `
		SELECT t.id, t.name, t.abbreviation, l.name AS league_name, s.name AS sport_name
		FROM teams t
		LEFT JOIN leagues l ON t.league_id = l.id
		LEFT JOIN sports s ON t.sport_id = s.id
		ORDER BY t.name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer rows.Close()

	var teams []store.TeamSummary
	for rows.Next() {
		var t store.TeamSummary
		var league, sport sql.NullString
		if err := rows.Scan(&t.ID, &t.Name, &t.Abbreviation, &league, &sport); err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		t.League = nullString(league)
		t.Sport = nullString(sport)
		teams = append(teams, t)
	}

	return teams, rows.Err()
}

// likeEscaper neutralizes LIKE metacharacters so the team key matches as a
// literal substring, the same containment rule the memory backend applies.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(key string) string {
	return likeEscaper.Replace(key)
}

// scanTeamMatches drains and closes the team resolution rows
func scanTeamMatches(rows *sql.Rows) ([]store.TeamMatch, error) {
	defer rows.Close()

	var matches []store.TeamMatch
	for rows.Next() {
		var m store.TeamMatch
		var league, sport sql.NullString
		err := rows.Scan(
			&m.ID, &m.Name, &m.Abbreviation, &m.City, &m.Mascot, &m.Nickname,
			&league, &sport,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		m.League = nullString(league)
		m.Sport = nullString(sport)
		matches = append(matches, m)
	}

	return matches, rows.Err()
}
