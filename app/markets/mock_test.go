package markets

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/prognos/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAll(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Market), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockRepository) GetOdds(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Market), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, market *models.Market) error {
	args := m.Called(ctx, market)
	return args.Error(0)
}

func testMarket(marketType models.MarketType) models.Market {
	return models.Market{
		ID:               uuid.New(),
		Title:            "Will X happen?",
		Description:      "desc",
		Category:         "Tech",
		MarketType:       marketType,
		Status:           models.MarketStatusOpen,
		CloseTime:        time.Now().Add(48 * time.Hour),
		InitialLiquidity: decimal.NewFromInt(50),
		MinStake:         decimal.NewFromInt(1),
		MaxStake:         decimal.NewFromInt(100),
		CreatorFee:       decimal.NewFromInt(2),
		ResolverType:     models.ResolverOracle,
		ResolverBond:     decimal.NewFromInt(100),
		YesOdds:          decimal.NewFromInt(65),
		NoOdds:           decimal.NewFromInt(35),
		TotalPoolAmount:  decimal.NewFromInt(50),
	}
}

func testDraft() models.MarketDraft {
	closeAt := time.Now().Add(72 * time.Hour)
	d := models.NewMarketDraft()
	d.Title = "Will X happen?"
	d.Category = "Tech"
	d.Description = "desc"
	d.CloseDate = &closeAt
	d.MarketType = models.MarketTypeYesNo
	d.InitialLiquidity = 50
	d.MinStake = 1
	d.MaxStake = 100
	d.ResolverType = models.ResolverOracle
	d.AgreedToTerms = true
	return d
}
