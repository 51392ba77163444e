package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fortuna/rosetta/internal/store"
)

// MarketRepository handles market resolution and listing
type MarketRepository struct {
	db *store.Database
}

// NewMarketRepository creates a new market repository
func NewMarketRepository(db *store.Database) *MarketRepository {
	return &MarketRepository{db: db}
}

const resolveMarketQuery = `
	SELECT m.id, m.name, m.market_type_id
	FROM markets m
	WHERE LOWER(m.name) = ?
	LIMIT 1
`

const marketSportsQuery = `
	SELECT s.name
	FROM market_sports ms
	JOIN sports s ON ms.sport_id = s.id
	WHERE ms.market_id = ?
`

// Resolve returns the market whose name equals the key exactly, with the
// names of its linked sports. A market with no linked sports resolves with
// an empty sports list. Keys must already be normalized; the empty key
// matches nothing.
func (r *MarketRepository) Resolve(ctx context.Context, name string) (*store.MarketMatch, error) {
	if name == "" {
		return nil, nil
	}

	conn, err := r.db.DB().Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring store connection: %w", err)
	}
	defer conn.Close()

	var m store.MarketMatch
	err = conn.QueryRowContext(ctx, r.db.Rebind(resolveMarketQuery), name).Scan(
		&m.ID, &m.Name, &m.MarketTypeID,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying market: %w", err)
	}

	rows, err := conn.QueryContext(ctx, r.db.Rebind(marketSportsQuery), m.ID)
	if err != nil {
		return nil, fmt.Errorf("querying market sports: %w", err)
	}
	defer rows.Close()

	m.Sports = []string{}
	for rows.Next() {
		var sport string
		if err := rows.Scan(&sport); err != nil {
			return nil, fmt.Errorf("scanning market sport: %w", err)
		}
		m.Sports = append(m.Sports, sport)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &m, nil
}

// List returns all markets
func (r *MarketRepository) List(ctx context.Context) ([]store.Market, error) {
	query := `
		SELECT m.id, m.name, m.market_type_id
		FROM markets m
		ORDER BY m.name
	`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying markets: %w", err)
	}
	defer rows.Close()

	var markets []store.Market
	for rows.Next() {
		var m store.Market
		if err := rows.Scan(&m.ID, &m.Name, &m.MarketTypeID); err != nil {
			return nil, fmt.Errorf("scanning market: %w", err)
		}
		markets = append(markets, m)
	}

	return markets, rows.Err()
}
