package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/corray333/cargo-manager/internal/dal/postgres"
	"github.com/corray333/cargo-manager/internal/service/models/currency"
)

// RateRepository reads the currency_rates table. Rates are CNY-anchored; CNY
// itself is never stored.
type RateRepository struct {
	conn postgres.Querier
}

func NewRateRepository(conn postgres.Querier) *RateRepository {
	return &RateRepository{
		conn: conn,
	}
}

// GetRates returns the stored rate snapshot.
func (r *RateRepository) GetRates(ctx context.Context) (currency.Rates, error) {
	query, args, err := sq.Select("currency_code", "rate").
		From("currency_rates").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currency rates: %w", err)
	}
	defer rows.Close()

	rates := currency.Rates{}
	for rows.Next() {
		var code string
		var rate float64
		if err := rows.Scan(&code, &rate); err != nil {
			return nil, fmt.Errorf("failed to scan currency rate: %w", err)
		}
		rates[currency.Currency(code)] = rate
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rates, nil
}
