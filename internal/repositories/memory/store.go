// Package memory provides a process-local LocalStore and TimestampStore,
// used when no database is configured and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
)

// Store keeps the last saved snapshots and fetch timestamps in memory.
// Slices are copied on the way in and out so callers cannot alias the state.
type Store struct {
	mu         sync.RWMutex
	currencies []domain.Currency
	quotes     []domain.Quote
	timestamps map[domain.CacheKey]int64
}

var (
	_ portsrepo.LocalStore     = (*Store)(nil)
	_ portsrepo.TimestampStore = (*Store)(nil)
)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{timestamps: make(map[domain.CacheKey]int64)}
}

// GetCurrencies returns the stored currencies ordered by ID.
func (s *Store) GetCurrencies(_ context.Context) ([]domain.Currency, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out, nil
}

// SaveCurrencies replaces the stored currencies.
func (s *Store) SaveCurrencies(_ context.Context, currencies []domain.Currency) error {
	snapshot := make([]domain.Currency, len(currencies))
	copy(snapshot, currencies)
	domain.SortCurrencies(snapshot)

	s.mu.Lock()
	s.currencies = snapshot
	s.mu.Unlock()
	return nil
}

// GetQuotes returns the stored quotes ordered by ID.
func (s *Store) GetQuotes(_ context.Context) ([]domain.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Quote, len(s.quotes))
	copy(out, s.quotes)
	return out, nil
}

// SaveQuotes replaces the stored quotes.
func (s *Store) SaveQuotes(_ context.Context, quotes []domain.Quote) error {
	snapshot := make([]domain.Quote, len(quotes))
	copy(snapshot, quotes)
	domain.SortQuotes(snapshot)

	s.mu.Lock()
	s.quotes = snapshot
	s.mu.Unlock()
	return nil
}

// GetTimestamp returns 0 for a key that was never set.
func (s *Store) GetTimestamp(_ context.Context, key domain.CacheKey) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timestamps[key], nil
}

// SetTimestamp records the fetch time for key.
func (s *Store) SetTimestamp(_ context.Context, key domain.CacheKey, epochSeconds int64) error {
	s.mu.Lock()
	s.timestamps[key] = epochSeconds
	s.mu.Unlock()
	return nil
}
