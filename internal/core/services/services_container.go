package services

import (
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(repos.CurrencyRepo),
		Quote:    NewQuoteService(repos.QuoteRepo),
	}
}
