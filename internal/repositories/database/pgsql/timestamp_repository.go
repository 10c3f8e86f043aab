package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	"github.com/SscSPs/currency_calculator/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTimestampRepository persists the last successful fetch time per cache key.
type PgxTimestampRepository struct {
	BaseRepository
}

// NewPgxTimestampRepository creates a timestamp store backed by cache_timestamps.
func NewPgxTimestampRepository(pool *pgxpool.Pool) *PgxTimestampRepository {
	return &PgxTimestampRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TimestampStore = (*PgxTimestampRepository)(nil)

// GetTimestamp returns 0 for a key that was never written.
func (r *PgxTimestampRepository) GetTimestamp(ctx context.Context, key domain.CacheKey) (int64, error) {
	var m models.CacheTimestamp
	err := r.Pool.QueryRow(ctx,
		`SELECT cache_key, fetched_at FROM cache_timestamps WHERE cache_key = $1;`,
		key.String(),
	).Scan(&m.CacheKey, &m.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read timestamp %s: %w", key, err)
	}
	return m.FetchedAt, nil
}

// SetTimestamp upserts the timestamp for key.
func (r *PgxTimestampRepository) SetTimestamp(ctx context.Context, key domain.CacheKey, epochSeconds int64) error {
	m := models.CacheTimestamp{CacheKey: key.String(), FetchedAt: epochSeconds}
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO cache_timestamps (cache_key, fetched_at)
		VALUES ($1, $2)
		ON CONFLICT (cache_key) DO UPDATE SET fetched_at = EXCLUDED.fetched_at;`,
		m.CacheKey, m.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to write timestamp %s: %w", key, err)
	}
	return nil
}
