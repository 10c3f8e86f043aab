package dto

import (
	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID       string `json:"id" example:"JPY"`
	FullName string `json:"fullName" example:"Japanese Yen"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:       curr.ID,
		FullName: curr.FullName,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		out[i] = ToCurrencyResponse(c)
	}
	return out
}
