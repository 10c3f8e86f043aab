package cached

import (
	"context"
	"time"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
)

const (
	// DefaultCurrenciesTTL limits currency list refreshes; names rarely change.
	DefaultCurrenciesTTL = 2 * time.Hour
	// DefaultQuotesTTL matches the free-tier refresh interval of the rates API.
	DefaultQuotesTTL = 30 * time.Minute
)

// CurrenciesRepository serves the currency list with a 2 hour cache.
type CurrenciesRepository struct {
	*Repository[domain.Currency]
}

// NewCurrenciesRepository creates the currencies cache repository.
func NewCurrenciesRepository(
	remote portsrepo.RemoteSource,
	store portsrepo.CurrencyStore,
	timestamps portsrepo.TimestampStore,
	opts ...Option,
) *CurrenciesRepository {
	return &CurrenciesRepository{
		Repository: New[domain.Currency](
			"currencies",
			domain.CacheKeyCurrencies,
			remote.FetchCurrencies,
			store.GetCurrencies,
			store.SaveCurrencies,
			timestamps,
			DefaultCurrenciesTTL,
			opts...,
		),
	}
}

// GetCurrencies implements portsrepo.CurrencyRepository.
func (r *CurrenciesRepository) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	return r.Get(ctx)
}

// QuotesRepository serves the latest rates with a 30 minute cache.
type QuotesRepository struct {
	*Repository[domain.Quote]
}

// NewQuotesRepository creates the quotes cache repository.
func NewQuotesRepository(
	remote portsrepo.RemoteSource,
	store portsrepo.QuoteStore,
	timestamps portsrepo.TimestampStore,
	opts ...Option,
) *QuotesRepository {
	return &QuotesRepository{
		Repository: New[domain.Quote](
			"quotes",
			domain.CacheKeyQuotes,
			remote.FetchQuotes,
			store.GetQuotes,
			store.SaveQuotes,
			timestamps,
			DefaultQuotesTTL,
			opts...,
		),
	}
}

// GetQuotes implements portsrepo.QuoteRepository.
func (r *QuotesRepository) GetQuotes(ctx context.Context) ([]domain.Quote, error) {
	return r.Get(ctx)
}

// NewRepositoryProvider wires both cache repositories over the same adapters.
// Each repository keeps its own lock, so the two domains never block each other.
func NewRepositoryProvider(
	remote portsrepo.RemoteSource,
	store portsrepo.LocalStore,
	timestamps portsrepo.TimestampStore,
	currencyOpts []Option,
	quoteOpts []Option,
) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo: NewCurrenciesRepository(remote, store, timestamps, currencyOpts...),
		QuoteRepo:    NewQuotesRepository(remote, store, timestamps, quoteOpts...),
	}
}

var (
	_ portsrepo.CurrencyRepository = (*CurrenciesRepository)(nil)
	_ portsrepo.QuoteRepository    = (*QuotesRepository)(nil)
)
