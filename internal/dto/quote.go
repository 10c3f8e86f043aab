package dto

import (
	"strings"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertQuotesRequest holds the query parameters of a conversion.
// Amount is validated by the conversion itself: a non-numeric amount yields
// an empty result rather than a 400.
type ConvertQuotesRequest struct {
	Amount string `form:"amount"`
	Base   string `form:"base" binding:"required,alpha,min=3,max=16"`
}

// BaseID returns the base currency code normalized to upper case.
func (r ConvertQuotesRequest) BaseID() string {
	return strings.ToUpper(strings.TrimSpace(r.Base))
}

// QuoteResponse is one rate or converted amount. Rate is encoded as a decimal string.
type QuoteResponse struct {
	ID   string          `json:"id" example:"JPY"`
	Rate decimal.Decimal `json:"rate" swaggertype:"string" example:"150.55"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q domain.Quote) QuoteResponse {
	return QuoteResponse{ID: q.ID, Rate: q.Rate}
}

// ToListQuoteResponse converts a slice of domain quotes to DTOs.
func ToListQuoteResponse(quotes []domain.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = ToQuoteResponse(q)
	}
	return out
}
