package services_test

import (
	"strings"
	"testing"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleQuotes() []domain.Quote {
	return []domain.Quote{
		{ID: "TWD", Rate: decimal.RequireFromString("30.11")},
		{ID: "JPY", Rate: decimal.RequireFromString("150.55")},
	}
}

func assertQuotes(t *testing.T, want map[string]string, got []domain.Quote) {
	t.Helper()
	require.Len(t, got, len(want))
	for _, q := range got {
		expected, ok := want[q.ID]
		require.True(t, ok, "unexpected quote %s", q.ID)
		assert.True(t, decimal.RequireFromString(expected).Equal(q.Rate), "%s: want %s got %s", q.ID, expected, q.Rate)
	}
}

func TestConvertQuotes(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		base   *domain.Currency
		want   map[string]string
		order  []string
	}{
		{
			name:   "base JPY",
			amount: "100",
			base:   &domain.Currency{ID: "JPY", FullName: "Japanese Yen"},
			want:   map[string]string{"JPY": "100", "TWD": "20"},
			order:  []string{"JPY", "TWD"},
		},
		{
			name:   "base TWD",
			amount: "100",
			base:   &domain.Currency{ID: "TWD", FullName: "New Taiwan Dollar"},
			want:   map[string]string{"JPY": "500", "TWD": "100"},
			order:  []string{"JPY", "TWD"},
		},
		{
			name:   "fractional amount with surrounding spaces",
			amount: " 12.5 ",
			base:   &domain.Currency{ID: "TWD"},
			want:   map[string]string{"JPY": "62.5", "TWD": "12.5"},
			order:  []string{"JPY", "TWD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.ConvertQuotes(tt.amount, tt.base, sampleQuotes())

			require.NoError(t, err)
			assertQuotes(t, tt.want, got)
			ids := make([]string, len(got))
			for i, q := range got {
				ids[i] = q.ID
			}
			assert.Equal(t, tt.order, ids)
		})
	}
}

func TestConvertQuotes_BaseConvertsToExactAmount(t *testing.T) {
	quotes := []domain.Quote{
		{ID: "AED", Rate: decimal.RequireFromString("3.673005")},
		{ID: "AFN", Rate: decimal.RequireFromString("72.495777")},
		{ID: "USD", Rate: decimal.NewFromInt(1)},
	}

	got, err := services.ConvertQuotes("1234.5678", &domain.Currency{ID: "AFN"}, quotes)

	require.NoError(t, err)
	base, ok := domain.FindQuote(got, "AFN")
	require.True(t, ok)
	assert.True(t, decimal.RequireFromString("1234.5678").Equal(base.Rate))
}

func TestConvertQuotes_InvalidInputIsEmptyNotError(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		base   *domain.Currency
	}{
		{name: "non numeric amount", amount: "invalid", base: &domain.Currency{ID: "JPY"}},
		{name: "empty amount", amount: "", base: &domain.Currency{ID: "JPY"}},
		{name: "nil base", amount: "100", base: nil},
		{name: "huge exponent", amount: "1e100000000", base: &domain.Currency{ID: "JPY"}},
		{name: "tiny exponent", amount: "1e-100000000", base: &domain.Currency{ID: "JPY"}},
		{name: "too many digits", amount: strings.Repeat("9", 41), base: &domain.Currency{ID: "JPY"}},
		{name: "overlong input", amount: "1" + strings.Repeat("0", 100), base: &domain.Currency{ID: "JPY"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.ConvertQuotes(tt.amount, tt.base, sampleQuotes())

			assert.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestConvertQuotes_UnmatchedBase(t *testing.T) {
	got, err := services.ConvertQuotes("100", &domain.Currency{ID: "EUR"}, sampleQuotes())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrRateUnavailableForBaseCurrency)
	var rateErr *apperrors.RateUnavailableError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, "EUR", rateErr.CurrencyID)
}

func TestConvertQuotes_ZeroBaseRateIsUnavailable(t *testing.T) {
	quotes := []domain.Quote{{ID: "XXX", Rate: decimal.Zero}, {ID: "JPY", Rate: decimal.NewFromInt(150)}}

	_, err := services.ConvertQuotes("1", &domain.Currency{ID: "XXX"}, quotes)

	assert.ErrorIs(t, err, apperrors.ErrRateUnavailableForBaseCurrency)
}

func TestConvertQuotes_OutputSortedRegardlessOfInputOrder(t *testing.T) {
	quotes := []domain.Quote{
		{ID: "ZAR", Rate: decimal.RequireFromString("18.9")},
		{ID: "AUD", Rate: decimal.RequireFromString("1.57")},
		{ID: "USD", Rate: decimal.NewFromInt(1)},
		{ID: "EUR", Rate: decimal.RequireFromString("0.88")},
	}

	got, err := services.ConvertQuotes("10", &domain.Currency{ID: "USD"}, quotes)

	require.NoError(t, err)
	ids := make([]string, len(got))
	for i, q := range got {
		ids[i] = q.ID
	}
	assert.Equal(t, []string{"AUD", "EUR", "USD", "ZAR"}, ids)
	assert.Equal(t, "ZAR", quotes[0].ID, "input must not be reordered")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   string
		ok     bool
	}{
		{amount: "100", want: "100", ok: true},
		{amount: " 12.5 ", want: "12.5", ok: true},
		{amount: "1e32", want: "1e32", ok: true},
		{amount: "-3", want: "-3", ok: true},
		{amount: strings.Repeat("9", 40), want: strings.Repeat("9", 40), ok: true},
		{amount: "1e33", ok: false},
		{amount: "1e-33", ok: false},
		{amount: "1e3000000", ok: false},
		{amount: strings.Repeat("9", 41), ok: false},
		{amount: "abc", ok: false},
		{amount: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			got, ok := services.ParseAmount(tt.amount)

			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "want %s got %s", tt.want, got)
			}
		})
	}
}
