package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Quote is the exchange rate of one currency relative to the API base currency (USD).
type Quote struct {
	ID   string          `json:"id"`
	Rate decimal.Decimal `json:"rate"`
}

// Equal reports whether both quotes have the same ID and numerically equal rates.
func (q Quote) Equal(other Quote) bool {
	return q.ID == other.ID && q.Rate.Equal(other.Rate)
}

// SortQuotes orders quotes ascending by ID in place.
func SortQuotes(quotes []Quote) {
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].ID < quotes[j].ID })
}

// FindQuote returns the quote with the given ID, if present.
func FindQuote(quotes []Quote, id string) (Quote, bool) {
	for _, q := range quotes {
		if q.ID == id {
			return q, true
		}
	}
	return Quote{}, false
}
