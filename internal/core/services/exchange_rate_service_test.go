package services_test

import (
	"context"
	"testing"

	"github.com/changifyhq/changify-backend/internal/apperrors"
	"github.com/changifyhq/changify-backend/internal/core/domain"
	portssvc "github.com/changifyhq/changify-backend/internal/core/ports/services"
	"github.com/changifyhq/changify-backend/internal/core/services"
	"github.com/changifyhq/changify-backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRatePair(ctx context.Context, forward, reverse domain.ExchangeRate) error {
	args := m.Called(ctx, forward, reverse)
	return args.Error(0)
}

// --- Test Suite ---
type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockExchangeRateRepository
	mockCurrencies *MockCurrencyReader
	mockRoles      *MockRoleResolver
	service        portssvc.ExchangeRateSvcFacade

	adminID string
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.mockCurrencies = new(MockCurrencyReader)
	suite.mockRoles = new(MockRoleResolver)
	suite.service = services.NewExchangeRateService(suite.mockRepo, suite.mockCurrencies, suite.mockRoles)
	suite.adminID = uuid.NewString()
	suite.mockRoles.On("ResolveRole", mock.Anything, suite.adminID).Return(domain.RoleAdmin, nil).Maybe()
}

func (suite *ExchangeRateServiceTestSuite) enabledCurrency(code string) {
	suite.mockCurrencies.On("GetCurrencyByCode", mock.Anything, code).
		Return(&domain.Currency{CurrencyCode: code, Enabled: true}, nil)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_WritesInversePair() {
	ctx := context.Background()
	req := dto.SetExchangeRateRequest{
		FromCurrencyCode: "USDT",
		ToCurrencyCode:   "UAH",
		Rate:             decimal.RequireFromString("41.70"),
	}
	suite.enabledCurrency("USDT")
	suite.enabledCurrency("UAH")

	suite.mockRepo.On("SaveExchangeRatePair", ctx,
		mock.MatchedBy(func(fwd domain.ExchangeRate) bool {
			return fwd.FromCurrencyCode == "USDT" && fwd.ToCurrencyCode == "UAH" &&
				fwd.Rate.Equal(req.Rate) && fwd.UpdatedBy == suite.adminID
		}),
		mock.MatchedBy(func(rev domain.ExchangeRate) bool {
			expected := decimal.NewFromInt(1).DivRound(req.Rate, 12)
			return rev.FromCurrencyCode == "UAH" && rev.ToCurrencyCode == "USDT" && rev.Rate.Equal(expected)
		}),
	).Return(nil).Once()

	rate, err := suite.service.SetExchangeRate(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(rate)
	suite.Equal("USDT", rate.FromCurrencyCode)
	suite.True(rate.Rate.Equal(req.Rate))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_ManagerForbidden() {
	ctx := context.Background()
	managerID := uuid.NewString()
	suite.mockRoles.On("ResolveRole", mock.Anything, managerID).Return(domain.RoleManager, nil).Once()

	rate, err := suite.service.SetExchangeRate(ctx, dto.SetExchangeRateRequest{
		FromCurrencyCode: "USDT",
		ToCurrencyCode:   "UAH",
		Rate:             decimal.NewFromInt(40),
	}, managerID)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveExchangeRatePair", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_NonPositiveRejected() {
	ctx := context.Background()

	for _, raw := range []string{"0", "-1.5"} {
		rate, err := suite.service.SetExchangeRate(ctx, dto.SetExchangeRateRequest{
			FromCurrencyCode: "USDT",
			ToCurrencyCode:   "UAH",
			Rate:             decimal.RequireFromString(raw),
		}, suite.adminID)

		suite.Require().Error(err, "rate %s", raw)
		suite.Nil(rate)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_SamePairRejected() {
	ctx := context.Background()

	rate, err := suite.service.SetExchangeRate(ctx, dto.SetExchangeRateRequest{
		FromCurrencyCode: "USDT",
		ToCurrencyCode:   "usdt",
		Rate:             decimal.NewFromInt(1),
	}, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_UnknownCurrencyRejected() {
	ctx := context.Background()
	suite.mockCurrencies.On("GetCurrencyByCode", mock.Anything, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.SetExchangeRate(ctx, dto.SetExchangeRateRequest{
		FromCurrencyCode: "XXX",
		ToCurrencyCode:   "UAH",
		Rate:             decimal.NewFromInt(40),
	}, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestSetExchangeRate_DisabledCurrencyRejected() {
	ctx := context.Background()
	suite.mockCurrencies.On("GetCurrencyByCode", mock.Anything, "USDT").
		Return(&domain.Currency{CurrencyCode: "USDT", Enabled: false}, nil).Once()

	rate, err := suite.service.SetExchangeRate(ctx, dto.SetExchangeRateRequest{
		FromCurrencyCode: "USDT",
		ToCurrencyCode:   "UAH",
		Rate:             decimal.NewFromInt(40),
	}, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_UnsupportedPair() {
	ctx := context.Background()
	suite.mockRepo.On("FindExchangeRate", ctx, "USDT", "EUR").Return(nil, apperrors.ErrNotFound).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "usdt", "eur")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Success() {
	ctx := context.Background()
	expected := &domain.ExchangeRate{FromCurrencyCode: "USDT", ToCurrencyCode: "UAH", Rate: decimal.RequireFromString("41.70")}
	suite.mockRepo.On("FindExchangeRate", ctx, "USDT", "UAH").Return(expected, nil).Once()

	rate, err := suite.service.GetExchangeRate(ctx, "USDT", "UAH")

	suite.Require().NoError(err)
	suite.Equal(expected, rate)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListExchangeRates", ctx).Return(nil, assert.AnError).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().Error(err)
	suite.Nil(rates)
	suite.ErrorIs(err, assert.AnError)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
