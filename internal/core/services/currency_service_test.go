package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) GetCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvc
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{
		{ID: "JPY", FullName: "Japanese Yen"},
		{ID: "USD", FullName: "United States Dollar"},
	}
	suite.mockRepo.On("GetCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.GetCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencies_PropagatesRepositoryError() {
	ctx := context.Background()
	repoErr := apperrors.NewLocalFetchError("currencies", errors.New("boom"))
	suite.mockRepo.On("GetCurrencies", ctx).Return(nil, repoErr).Once()

	currencies, err := suite.service.GetCurrencies(ctx)

	suite.Require().Error(err)
	suite.Nil(currencies)
	suite.ErrorIs(err, apperrors.ErrLocalFetchFailed)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
