package services

import (
	"strings"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// conversionPrecision is the number of decimal places kept when dividing two rates.
const conversionPrecision int32 = 16

// Bounds on an accepted amount. Exponent notation parses cheaply but every
// digit is expanded when a result is rendered, so oversized values are treated
// like any other invalid input.
const (
	maxAmountLength   = 64
	maxAmountDigits   = 40
	maxAmountExponent = 32
)

// ParseAmount parses a user-entered amount. It reports false for anything that
// is not a decimal number within the accepted size.
func ParseAmount(amount string) (decimal.Decimal, bool) {
	amount = strings.TrimSpace(amount)
	if len(amount) > maxAmountLength {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, false
	}
	exp := value.Exponent()
	if value.NumDigits() > maxAmountDigits || exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Decimal{}, false
	}
	return value, true
}

// ConvertQuotes expresses amount, given in the base currency, in every currency
// of the rate table. All rates are relative to the same API base, so
// converted = amount * (rate / baseRate).
//
// An amount rejected by ParseAmount, or a nil base, is not an error: the
// result is simply empty until the input becomes valid. The output is sorted by
// currency ID.
func ConvertQuotes(amount string, base *domain.Currency, quotes []domain.Quote) ([]domain.Quote, error) {
	if base == nil {
		return []domain.Quote{}, nil
	}
	value, ok := ParseAmount(amount)
	if !ok {
		return []domain.Quote{}, nil
	}

	baseQuote, ok := domain.FindQuote(quotes, base.ID)
	if !ok || baseQuote.Rate.IsZero() {
		return nil, &apperrors.RateUnavailableError{CurrencyID: base.ID}
	}

	converted := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		converted = append(converted, domain.Quote{
			ID:   q.ID,
			Rate: value.Mul(q.Rate.DivRound(baseQuote.Rate, conversionPrecision)),
		})
	}
	domain.SortQuotes(converted)
	return converted, nil
}
