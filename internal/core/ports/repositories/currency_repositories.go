package repositories

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// CurrencyReader defines read operations for the locally stored currency snapshot.
type CurrencyReader interface {
	// GetCurrencies retrieves the last saved currency list, ordered by ID.
	GetCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the locally stored currency snapshot.
type CurrencyWriter interface {
	// SaveCurrencies replaces the stored currency list with the given one.
	SaveCurrencies(ctx context.Context, currencies []domain.Currency) error
}

// CurrencyStore combines the local currency read and write operations.
type CurrencyStore interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepository is the cache repository callers use to obtain currencies.
type CurrencyRepository interface {
	GetCurrencies(ctx context.Context) ([]domain.Currency, error)
}
