// Package calculator holds the interactive state of a conversion session:
// loaded currencies and rates, the entered amount, the selected base
// currency and the last computed result.
package calculator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

// Option configures a Session.
type Option func(*Session)

// WithDebounce sets the delay between the last input and the recomputation.
func WithDebounce(delay time.Duration) Option {
	return func(s *Session) { s.debounce = delay }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session is safe for concurrent use.
type Session struct {
	currencySvc portssvc.CurrencySvc
	quoteSvc    portssvc.QuoteSvcFacade
	debounce    time.Duration
	debouncer   *Debouncer
	logger      *slog.Logger

	// loadMu serializes Load so concurrent callers fetch at most once.
	loadMu sync.Mutex

	mu         sync.RWMutex
	currencies []domain.Currency
	quotes     []domain.Quote
	display    []domain.Quote
	selected   *domain.Currency
	amount     string
	err        error
	ready      bool
	generation uint64
	onUpdate   func()
}

// NewSession creates an empty, not yet loaded Session.
func NewSession(currencySvc portssvc.CurrencySvc, quoteSvc portssvc.QuoteSvcFacade, opts ...Option) *Session {
	s := &Session{
		currencySvc: currencySvc,
		quoteSvc:    quoteSvc,
		debounce:    DefaultDebounce,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.debouncer = NewDebouncer(s.debounce)
	return s
}

// OnUpdate registers fn to be called after every state change.
func (s *Session) OnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// Load fetches currencies and quotes in parallel. Once the session is ready
// further calls do nothing. Concurrent calls are serialized; a call that waited
// on a successful one returns without fetching again.
//
// Currencies fetched before a failure are kept and the first one is selected,
// so the user can still pick a base once the rates come back.
func (s *Session) Load(ctx context.Context) error {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.Ready() {
		return nil
	}

	var currencies []domain.Currency
	var quotes []domain.Quote
	var g errgroup.Group
	g.Go(func() error {
		c, err := s.currencySvc.GetCurrencies(ctx)
		if err != nil {
			return err
		}
		currencies = c
		return nil
	})
	g.Go(func() error {
		q, err := s.quoteSvc.GetQuotes(ctx)
		if err != nil {
			return err
		}
		quotes = q
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	if len(currencies) > 0 {
		s.currencies = currencies
		if s.selected == nil {
			first := currencies[0]
			s.selected = &first
		}
	}
	if err != nil {
		s.err = err
	} else {
		s.quotes = quotes
		s.ready = len(currencies) > 0 && len(quotes) > 0
		s.err = nil
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Error("Failed to load calculator data", slog.String("error", err.Error()))
		s.notify()
		return err
	}

	s.logger.Debug("Calculator data loaded",
		slog.Int("currencies", len(currencies)), slog.Int("quotes", len(quotes)))
	s.notify()
	s.schedule()
	return nil
}

// SetAmount records the entered amount and schedules a recomputation.
func (s *Session) SetAmount(amount string) {
	s.mu.Lock()
	s.amount = amount
	s.mu.Unlock()
	s.schedule()
}

// SelectCurrency changes the base currency and schedules a recomputation.
func (s *Session) SelectCurrency(id string) error {
	s.mu.Lock()
	c, ok := domain.FindCurrency(s.currencies, id)
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, id)
	}
	s.selected = &c
	s.mu.Unlock()
	s.schedule()
	return nil
}

// Close stops any pending recomputation.
func (s *Session) Close() {
	s.debouncer.Stop()
}

// Ready reports whether both currencies and quotes were loaded.
func (s *Session) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Currencies returns the loaded currencies.
func (s *Session) Currencies() []domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Currency, len(s.currencies))
	copy(out, s.currencies)
	return out
}

// SelectedCurrency returns the current base currency, or nil.
func (s *Session) SelectedCurrency() *domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	c := *s.selected
	return &c
}

// Amount returns the last entered amount.
func (s *Session) Amount() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.amount
}

// DisplayQuotes returns the result of the latest completed recomputation.
func (s *Session) DisplayQuotes() []domain.Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Quote, len(s.display))
	copy(out, s.display)
	return out
}

// Err returns the last load or calculation error.
func (s *Session) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// ClearError forgets the last error. It does not notify.
func (s *Session) ClearError() {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
}

// schedule bumps the generation so only the latest computation may publish.
func (s *Session) schedule() {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	amount := s.amount
	var base *domain.Currency
	if s.selected != nil {
		c := *s.selected
		base = &c
	}
	s.mu.Unlock()

	s.debouncer.Trigger(func(ctx context.Context) {
		quotes, err := s.quoteSvc.CalculateQuotes(ctx, amount, base)

		s.mu.Lock()
		if gen != s.generation {
			s.mu.Unlock()
			return
		}
		if err != nil {
			s.err = err
		} else {
			s.display = quotes
		}
		s.mu.Unlock()

		if err != nil {
			s.logger.Warn("Failed to calculate quotes",
				slog.String("amount", amount), slog.String("error", err.Error()))
		}
		s.notify()
	})
}

func (s *Session) notify() {
	s.mu.RLock()
	fn := s.onUpdate
	s.mu.RUnlock()
	if fn != nil {
		fn()
	}
}
