package mapping

import (
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/SscSPs/currency_calculator/internal/models"
)

// ToModelQuote converts a domain Quote to a model Quote
func ToModelQuote(d domain.Quote) models.Quote {
	return models.Quote{
		QuoteID: d.ID,
		Rate:    d.Rate,
	}
}

// ToDomainQuote converts a model Quote to a domain Quote
func ToDomainQuote(m models.Quote) domain.Quote {
	return domain.Quote{
		ID:   m.QuoteID,
		Rate: m.Rate,
	}
}

// ToDomainQuoteSlice converts a slice of model Quotes to a slice of domain Quotes
func ToDomainQuoteSlice(ms []models.Quote) []domain.Quote {
	ds := make([]domain.Quote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainQuote(m)
	}
	return ds
}
