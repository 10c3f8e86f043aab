package pgsql

import (
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LocalStore joins the currency and quote tables into one portsrepo.LocalStore.
type LocalStore struct {
	*PgxCurrencyRepository
	*PgxQuoteRepository
}

var _ portsrepo.LocalStore = (*LocalStore)(nil)

// NewLocalStore creates the Postgres backed local store.
func NewLocalStore(dbPool *pgxpool.Pool) *LocalStore {
	return &LocalStore{
		PgxCurrencyRepository: newPgxCurrencyRepository(dbPool),
		PgxQuoteRepository:    newPgxQuoteRepository(dbPool),
	}
}
