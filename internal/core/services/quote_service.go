package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
)

// QuoteService provides the latest rates and client-side conversions.
// The free tier of the rates API cannot switch its base currency, so every
// conversion is re-derived from the USD-based table instead of a new remote call.
type QuoteService struct {
	BaseService
	quoteRepo portsrepo.QuoteRepository
}

// NewQuoteService creates a new QuoteService.
func NewQuoteService(quoteRepo portsrepo.QuoteRepository) *QuoteService {
	return &QuoteService{quoteRepo: quoteRepo}
}

func (s *QuoteService) GetQuotes(ctx context.Context) ([]domain.Quote, error) {
	quotes, err := s.quoteRepo.GetQuotes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get quotes from repository")
		return nil, fmt.Errorf("failed to get quotes in service: %w", err)
	}
	return quotes, nil
}

func (s *QuoteService) CalculateQuotes(ctx context.Context, amount string, base *domain.Currency) ([]domain.Quote, error) {
	// Invalid input never reaches the repository.
	if base == nil {
		return []domain.Quote{}, nil
	}
	if _, ok := ParseAmount(amount); !ok {
		s.LogDebug(ctx, "Ignoring invalid amount", slog.String("amount", amount))
		return []domain.Quote{}, nil
	}

	quotes, err := s.quoteRepo.GetQuotes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get quotes for calculation")
		return nil, fmt.Errorf("failed to get quotes in service: %w", err)
	}

	converted, err := ConvertQuotes(amount, base, quotes)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate quotes in service: %w", err)
	}
	return converted, nil
}

var _ portssvc.QuoteSvcFacade = (*QuoteService)(nil)
