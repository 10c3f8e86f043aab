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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for the local currency snapshot.
func newPgxCurrencyRepository(pool *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyStore = (*PgxCurrencyRepository)(nil)

// SaveCurrencies replaces the stored currency list.
func (r *PgxCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) error {
	batch := &pgx.Batch{}
	for _, c := range currencies {
		m := mapping.ToModelCurrency(c)
		batch.Queue(`
			INSERT INTO currencies (currency_id, full_name)
			VALUES ($1, $2)
			ON CONFLICT (currency_id) DO UPDATE SET full_name = EXCLUDED.full_name;`,
			m.CurrencyID, m.FullName,
		)
	}

	if err := r.replaceAll(ctx, "currencies", batch); err != nil {
		return fmt.Errorf("failed to save currencies: %w", err)
	}
	return nil
}

// GetCurrencies retrieves the stored currency list ordered by ID.
func (r *PgxCurrencyRepository) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, full_name
		FROM currencies
		ORDER BY currency_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	var modelCurrencies []models.Currency
	for rows.Next() {
		var m models.Currency
		if err := rows.Scan(&m.CurrencyID, &m.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan currency row: %w", err)
		}
		modelCurrencies = append(modelCurrencies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rows: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
