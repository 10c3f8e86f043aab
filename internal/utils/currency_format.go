package utils

import (
	"fmt"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimals shown for converted amounts.
const DisplayPrecision = 4

// FormatWithPrecision formats an amount with the given precision
// Example: amount 12.34567 with precision 4 returns "12.3457"
// Example: amount 12.5 with precision 4 returns "12.5"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

// FormatQuote renders one converted amount as "<ID> <amount>".
func FormatQuote(q domain.Quote, precision int) string {
	return fmt.Sprintf("%-5s %s", q.ID, FormatWithPrecision(q.Rate, precision))
}
