package domain

// CacheKey identifies one cache domain in the timestamp store.
type CacheKey int

const (
	CacheKeyCurrencies CacheKey = iota
	CacheKeyQuotes
)

// String returns the persistence key for the cache domain.
func (k CacheKey) String() string {
	switch k {
	case CacheKeyCurrencies:
		return "lastCurrenciesFetchTimestamp"
	case CacheKeyQuotes:
		return "lastQuotesFetchTimestamp"
	default:
		return "unknown"
	}
}
