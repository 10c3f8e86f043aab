package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock QuoteRepository ---
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) GetQuotes(ctx context.Context) ([]domain.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quote), args.Error(1)
}

// --- Test Suite ---
type QuoteServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockRepo *MockQuoteRepository
	service  portssvc.QuoteSvcFacade
}

func (suite *QuoteServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.mockRepo = new(MockQuoteRepository)
	suite.service = services.NewQuoteService(suite.mockRepo)
}

func (suite *QuoteServiceTestSuite) TestGetQuotes_Success() {
	suite.mockRepo.On("GetQuotes", suite.ctx).Return(sampleQuotes(), nil).Once()

	quotes, err := suite.service.GetQuotes(suite.ctx)

	suite.Require().NoError(err)
	suite.Len(quotes, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *QuoteServiceTestSuite) TestGetQuotes_NoData() {
	suite.mockRepo.On("GetQuotes", suite.ctx).Return(nil, apperrors.NewNoDataError("quotes")).Once()

	quotes, err := suite.service.GetQuotes(suite.ctx)

	suite.Require().Error(err)
	suite.Nil(quotes)
	suite.ErrorIs(err, apperrors.ErrNoDataAvailable)
}

func (suite *QuoteServiceTestSuite) TestCalculateQuotes_Success() {
	suite.mockRepo.On("GetQuotes", suite.ctx).Return(sampleQuotes(), nil).Once()

	quotes, err := suite.service.CalculateQuotes(suite.ctx, "100", &domain.Currency{ID: "JPY", FullName: "Japanese Yen"})

	suite.Require().NoError(err)
	suite.Require().Len(quotes, 2)
	suite.Equal("JPY", quotes[0].ID)
	suite.True(decimal.NewFromInt(100).Equal(quotes[0].Rate))
	suite.Equal("TWD", quotes[1].ID)
	suite.True(decimal.NewFromInt(20).Equal(quotes[1].Rate))
}

func (suite *QuoteServiceTestSuite) TestCalculateQuotes_InvalidInputSkipsRepository() {
	quotes, err := suite.service.CalculateQuotes(suite.ctx, "invalid", &domain.Currency{ID: "JPY"})
	suite.Require().NoError(err)
	suite.Empty(quotes)

	quotes, err = suite.service.CalculateQuotes(suite.ctx, "1e100000000", &domain.Currency{ID: "JPY"})
	suite.Require().NoError(err)
	suite.Empty(quotes)

	quotes, err = suite.service.CalculateQuotes(suite.ctx, "100", nil)
	suite.Require().NoError(err)
	suite.Empty(quotes)

	suite.mockRepo.AssertNotCalled(suite.T(), "GetQuotes", mock.Anything)
}

func (suite *QuoteServiceTestSuite) TestCalculateQuotes_RateUnavailable() {
	suite.mockRepo.On("GetQuotes", suite.ctx).Return(sampleQuotes(), nil).Once()

	quotes, err := suite.service.CalculateQuotes(suite.ctx, "100", &domain.Currency{ID: "EUR"})

	suite.Require().Error(err)
	suite.Nil(quotes)
	suite.ErrorIs(err, apperrors.ErrRateUnavailableForBaseCurrency)
	suite.Contains(err.Error(), "the exchange rate for EUR is not available")
}

func (suite *QuoteServiceTestSuite) TestCalculateQuotes_RepositoryError() {
	suite.mockRepo.On("GetQuotes", suite.ctx).Return(nil, apperrors.NewNoDataError("quotes")).Once()

	_, err := suite.service.CalculateQuotes(suite.ctx, "1", &domain.Currency{ID: "JPY"})

	suite.ErrorIs(err, apperrors.ErrNoDataAvailable)
}

func TestQuoteServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuoteServiceTestSuite))
}

func TestNewServiceContainer(t *testing.T) {
	container := services.NewServiceContainer(portsrepo.RepositoryProvider{
		CurrencyRepo: new(MockCurrencyRepository),
		QuoteRepo:    new(MockQuoteRepository),
	})

	if container.Currency == nil || container.Quote == nil {
		t.Fatal("expected both services to be wired")
	}
}
