package repositories

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// RemoteSource reads currencies and latest rates from the third-party rates API.
type RemoteSource interface {
	FetchCurrencies(ctx context.Context) ([]domain.Currency, error)
	FetchQuotes(ctx context.Context) ([]domain.Quote, error)
}

// LocalStore is the durable store holding the last successful remote snapshot.
// Every save is a full replace.
type LocalStore interface {
	CurrencyStore
	QuoteStore
}

// TimestampStore records the epoch seconds of the last successful remote
// fetch, one entry per cache domain. A key that was never set reads as 0.
type TimestampStore interface {
	GetTimestamp(ctx context.Context, key domain.CacheKey) (int64, error)
	SetTimestamp(ctx context.Context, key domain.CacheKey, epochSeconds int64) error
}
