package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	"github.com/SscSPs/currency_calculator/internal/models"
	"github.com/SscSPs/currency_calculator/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxQuoteRepository stores the latest USD based rates.
type PgxQuoteRepository struct {
	BaseRepository
}

func newPgxQuoteRepository(pool *pgxpool.Pool) *PgxQuoteRepository {
	return &PgxQuoteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.QuoteStore = (*PgxQuoteRepository)(nil)

// SaveQuotes replaces the stored quote list.
func (r *PgxQuoteRepository) SaveQuotes(ctx context.Context, quotes []domain.Quote) error {
	batch := &pgx.Batch{}
	for _, q := range quotes {
		m := mapping.ToModelQuote(q)
		batch.Queue(`
			INSERT INTO quotes (quote_id, rate)
			VALUES ($1, $2)
			ON CONFLICT (quote_id) DO UPDATE SET rate = EXCLUDED.rate;`,
			m.QuoteID, m.Rate,
		)
	}

	if err := r.replaceAll(ctx, "quotes", batch); err != nil {
		return fmt.Errorf("failed to save quotes: %w", err)
	}
	return nil
}

// GetQuotes retrieves the stored quote list ordered by ID.
func (r *PgxQuoteRepository) GetQuotes(ctx context.Context) ([]domain.Quote, error) {
	query := `
		SELECT quote_id, rate
		FROM quotes
		ORDER BY quote_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	defer rows.Close()

	var modelQuotes []models.Quote
	for rows.Next() {
		var m models.Quote
		if err := rows.Scan(&m.QuoteID, &m.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}
		modelQuotes = append(modelQuotes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote rows: %w", err)
	}

	return mapping.ToDomainQuoteSlice(modelQuotes), nil
}
