package repositories

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// QuoteReader defines read operations for the locally stored quote snapshot.
type QuoteReader interface {
	// GetQuotes retrieves the last saved quote list, ordered by ID.
	GetQuotes(ctx context.Context) ([]domain.Quote, error)
}

// QuoteWriter defines write operations for the locally stored quote snapshot.
type QuoteWriter interface {
	// SaveQuotes replaces the stored quote list with the given one.
	SaveQuotes(ctx context.Context, quotes []domain.Quote) error
}

// QuoteStore combines the local quote read and write operations.
type QuoteStore interface {
	QuoteReader
	QuoteWriter
}

// QuoteRepository is the cache repository callers use to obtain quotes.
type QuoteRepository interface {
	GetQuotes(ctx context.Context) ([]domain.Quote, error)
}
