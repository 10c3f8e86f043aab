package services

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// CurrencySvc defines read operations for currency data
type CurrencySvc interface {
	// GetCurrencies retrieves all supported currencies.
	GetCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// QuoteReaderSvc defines read operations for exchange rate data
type QuoteReaderSvc interface {
	// GetQuotes retrieves the latest rates relative to the API base currency.
	GetQuotes(ctx context.Context) ([]domain.Quote, error)
}

// QuoteCalculatorSvc converts an amount into every supported currency.
type QuoteCalculatorSvc interface {
	// CalculateQuotes returns amount expressed in every currency, relative to base.
	// An unparsable amount or a nil base yields an empty result and no error.
	CalculateQuotes(ctx context.Context, amount string, base *domain.Currency) ([]domain.Quote, error)
}

// QuoteSvcFacade combines all quote-related service interfaces
type QuoteSvcFacade interface {
	QuoteReaderSvc
	QuoteCalculatorSvc
}
