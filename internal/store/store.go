package store

import "context"

// Catalog is the resolution contract over the entity reference data. Two
// implementations exist: the SQL-backed catalog in internal/store/repository
// and the static in-memory catalog in internal/store/memstore, selected at
// startup.
//
// All key arguments must already be in normalize.Key form (lowercase,
// trimmed). The empty key matches nothing. An empty result is returned as
// a nil/empty value with a nil error; a non-nil error always means the store
// itself failed, never "not found".
type Catalog interface {
	// ResolveTeams returns every team whose normalized name or nickname
	// contains the key as a substring, or whose normalized abbreviation
	// equals it exactly, ordered ascending by team name. Each match carries
	// its full roster. When sport is non-empty the team's sport name must
	// additionally equal it.
	ResolveTeams(ctx context.Context, team, sport string) ([]TeamMatch, error)

	// ResolvePlayer returns the first player whose normalized name, or
	// normalized "first last" concatenation, equals the key. Ties between
	// duplicate names are store-defined: no secondary order is imposed, so
	// which duplicate wins is deliberately unspecified.
	ResolvePlayer(ctx context.Context, name string) (*PlayerMatch, error)

	// ResolveMarket returns the market whose normalized name equals the key,
	// with the names of its linked sports.
	ResolveMarket(ctx context.Context, name string) (*MarketMatch, error)

	// Bulk listings for administrative use. Unpaginated; the catalogs are
	// reference data, not transactional tables.
	ListTeams(ctx context.Context) ([]TeamSummary, error)
	ListPlayers(ctx context.Context) ([]PlayerSummary, error)
	ListMarkets(ctx context.Context) ([]Market, error)

	// HealthCheck reports whether the backing store is reachable.
	HealthCheck(ctx context.Context) error

	// Close releases the backing store. Safe to call once at shutdown.
	Close() error
}
