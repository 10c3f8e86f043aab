package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
)

// CurrencyService retrieves the supported currencies from the currencies cache repository.
type CurrencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

func (s *CurrencyService) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.GetCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to get currencies from repository")
		return nil, fmt.Errorf("failed to get currencies in service: %w", err)
	}
	s.LogDebug(ctx, "Currencies retrieved", slog.Int("count", len(currencies)))
	return currencies, nil
}

var _ portssvc.CurrencySvc = (*CurrencyService)(nil)
