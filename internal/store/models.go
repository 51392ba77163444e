package store

import "database/sql"

// Sport is a row in the sports reference table
type Sport struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// League is a row in the leagues reference table
type League struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// Team is a franchise row. League and sport references are optional; a team
// row loaded from a partial feed may carry neither.
type Team struct {
	ID           int           `json:"id" db:"id"`
	Name         string        `json:"name" db:"name"`
	Abbreviation string        `json:"abbreviation" db:"abbreviation"`
	City         string        `json:"city" db:"city"`
	Mascot       string        `json:"mascot" db:"mascot"`
	Nickname     string        `json:"nickname" db:"nickname"`
	LeagueID     sql.NullInt64 `json:"league_id,omitempty" db:"league_id"`
	SportID      sql.NullInt64 `json:"sport_id,omitempty" db:"sport_id"`
}

// Player is a roster row. A player belongs to at most one team and may carry
// its own league/sport references independent of the team's.
type Player struct {
	ID        int            `json:"id" db:"id"`
	Name      string         `json:"name" db:"name"`
	FirstName string         `json:"first_name" db:"first_name"`
	LastName  string         `json:"last_name" db:"last_name"`
	Position  sql.NullString `json:"position,omitempty" db:"position"`
	Number    sql.NullInt64  `json:"number,omitempty" db:"number"`
	Age       sql.NullInt64  `json:"age,omitempty" db:"age"`
	Height    sql.NullString `json:"height,omitempty" db:"height"`
	Weight    sql.NullInt64  `json:"weight,omitempty" db:"weight"`
	TeamID    sql.NullInt64  `json:"team_id,omitempty" db:"team_id"`
	LeagueID  sql.NullInt64  `json:"league_id,omitempty" db:"league_id"`
	SportID   sql.NullInt64  `json:"sport_id,omitempty" db:"sport_id"`
}

// Market is a betting market row (moneyline, spread, total, ...). Sports are
// linked through the market_sports join table.
type Market struct {
	ID           int    `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	MarketTypeID int    `json:"market_type_id" db:"market_type_id"`
}

// RosterPlayer is the per-player projection attached to a resolved team.
type RosterPlayer struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  *string `json:"position"`
	Number    *int    `json:"number"`
	Age       *int    `json:"age"`
	Height    *string `json:"height"`
	Weight    *int    `json:"weight"`
}

// TeamMatch is one resolved team with denormalized display names and its
// full roster, ordered ascending by player name.
type TeamMatch struct {
	ID           int            `json:"id"`
	Name         string         `json:"name"`
	Abbreviation string         `json:"abbreviation"`
	City         string         `json:"city"`
	Mascot       string         `json:"mascot"`
	Nickname     string         `json:"nickname"`
	League       *string        `json:"league"`
	Sport        *string        `json:"sport"`
	Roster       []RosterPlayer `json:"players"`
	PlayerCount  int            `json:"player_count"`
}

// PlayerMatch is a resolved player with denormalized display names. Team,
// league and sport are nil when the player carries no such reference.
type PlayerMatch struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Position  *string `json:"position"`
	Number    *int    `json:"number"`
	Team      *string `json:"team"`
	League    *string `json:"league"`
	Sport     *string `json:"sport"`
}

// MarketMatch is a resolved market with the names of its linked sports.
// Sports is empty when no sports are linked, which is not an error.
type MarketMatch struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	MarketTypeID int      `json:"market_type_id"`
	Sports       []string `json:"sports"`
}

// TeamSummary is the bulk-listing projection for teams.
type TeamSummary struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Abbreviation string  `json:"abbreviation"`
	League       *string `json:"league"`
	Sport        *string `json:"sport"`
}

// PlayerSummary is the bulk-listing projection for players.
type PlayerSummary struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Position *string `json:"position"`
	Team     *string `json:"team"`
	League   *string `json:"league"`
	Sport    *string `json:"sport"`
}
