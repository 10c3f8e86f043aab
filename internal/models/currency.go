package models

import "github.com/shopspring/decimal"

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary Key (e.g., "USD")
	FullName   string `json:"fullName"`   // e.g., "United States Dollar"
}

// Quote is a row of the quotes table. Rate is units of QuoteID per one USD.
type Quote struct {
	QuoteID string          `json:"quoteID"` // Primary Key (e.g., "JPY")
	Rate    decimal.Decimal `json:"rate"`    // NUMERIC, scanned without float rounding
}

// CacheTimestamp is a row of the cache_timestamps table.
type CacheTimestamp struct {
	CacheKey  string `json:"cacheKey"`  // Primary Key
	FetchedAt int64  `json:"fetchedAt"` // epoch seconds
}
