package memstore

import (
	"database/sql"

	"github.com/fortuna/rosetta/internal/store"
)

// load populates the built-in reference dataset. The set mirrors the shape
// of the persistent catalog: a handful of teams per sport with rosters, and
// the standard markets linked to the sports they trade on.
func (s *Store) load() {
	for _, sport := range []store.Sport{
		{ID: 1, Name: "Basketball"},
		{ID: 2, Name: "Football"},
		{ID: 3, Name: "Baseball"},
	} {
		s.sports[sport.ID] = sport
	}

	for _, league := range []store.League{
		{ID: 1, Name: "NBA"},
		{ID: 2, Name: "NFL"},
		{ID: 3, Name: "MLB"},
	} {
		s.leagues[league.ID] = league
	}

	s.teams = []store.Team{
		{ID: 1, Name: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Mascot: "Lakers", Nickname: "Lakers", LeagueID: ref(1), SportID: ref(1)},
		{ID: 2, Name: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Mascot: "Celtics", Nickname: "Celtics", LeagueID: ref(1), SportID: ref(1)},
		{ID: 3, Name: "Golden State Warriors", Abbreviation: "GSW", City: "San Francisco", Mascot: "Warriors", Nickname: "Warriors", LeagueID: ref(1), SportID: ref(1)},
		{ID: 4, Name: "Kansas City Chiefs", Abbreviation: "KC", City: "Kansas City", Mascot: "Chiefs", Nickname: "Chiefs", LeagueID: ref(2), SportID: ref(2)},
		{ID: 5, Name: "Philadelphia Eagles", Abbreviation: "PHI", City: "Philadelphia", Mascot: "Eagles", Nickname: "Eagles", LeagueID: ref(2), SportID: ref(2)},
	}

	s.players = []store.Player{
		{ID: 1, Name: "LeBron James", FirstName: "LeBron", LastName: "James", Position: str("SF"), Number: ref(23), Age: ref(40), Height: str("6-9"), Weight: ref(250), TeamID: ref(1), LeagueID: ref(1), SportID: ref(1)},
		{ID: 2, Name: "Anthony Davis", FirstName: "Anthony", LastName: "Davis", Position: str("PF"), Number: ref(3), Age: ref(32), Height: str("6-10"), Weight: ref(253), TeamID: ref(1), LeagueID: ref(1), SportID: ref(1)},
		{ID: 3, Name: "Austin Reaves", FirstName: "Austin", LastName: "Reaves", Position: str("SG"), Number: ref(15), Age: ref(27), Height: str("6-5"), Weight: ref(197), TeamID: ref(1), LeagueID: ref(1), SportID: ref(1)},
		{ID: 4, Name: "Jayson Tatum", FirstName: "Jayson", LastName: "Tatum", Position: str("SF"), Number: ref(0), Age: ref(27), Height: str("6-8"), Weight: ref(210), TeamID: ref(2), LeagueID: ref(1), SportID: ref(1)},
		{ID: 5, Name: "Stephen Curry", FirstName: "Stephen", LastName: "Curry", Position: str("PG"), Number: ref(30), Age: ref(37), Height: str("6-2"), Weight: ref(185), TeamID: ref(3), LeagueID: ref(1), SportID: ref(1)},
		{ID: 6, Name: "Patrick Mahomes", FirstName: "Patrick", LastName: "Mahomes", Position: str("QB"), Number: ref(15), Age: ref(29), Height: str("6-2"), Weight: ref(225), TeamID: ref(4), LeagueID: ref(2), SportID: ref(2)},
		{ID: 7, Name: "Jalen Hurts", FirstName: "Jalen", LastName: "Hurts", Position: str("QB"), Number: ref(1), Age: ref(27), Height: str("6-1"), Weight: ref(223), TeamID: ref(5), LeagueID: ref(2), SportID: ref(2)},
		// Free agent: no team reference
		{ID: 8, Name: "Carmelo Anthony", FirstName: "Carmelo", LastName: "Anthony", Position: str("PF"), LeagueID: ref(1), SportID: ref(1)},
	}

	s.markets = []store.Market{
		{ID: 1, Name: "Moneyline", MarketTypeID: 1},
		{ID: 2, Name: "Spread", MarketTypeID: 2},
		{ID: 3, Name: "Total", MarketTypeID: 3},
		{ID: 4, Name: "First Inning Runs", MarketTypeID: 4},
	}

	s.marketSports = map[int][]int{
		1: {1, 2, 3},
		2: {1, 2},
		3: {1, 2, 3},
		// market 4 intentionally linked to baseball only
		4: {3},
	}
}

func ref(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: true}
}

func str(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}
