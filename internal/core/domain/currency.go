package domain

import "sort"

// Currency represents a supported currency as published by the rates API.
type Currency struct {
	ID       string `json:"id"`       // ISO-like code, unique (e.g., "USD")
	FullName string `json:"fullName"` // e.g., "United States Dollar"
}

// SortCurrencies orders currencies ascending by ID in place.
func SortCurrencies(currencies []Currency) {
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].ID < currencies[j].ID })
}

// FindCurrency returns the currency with the given ID, if present.
func FindCurrency(currencies []Currency, id string) (Currency, bool) {
	for _, c := range currencies {
		if c.ID == id {
			return c, true
		}
	}
	return Currency{}, false
}
