package markets

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/models"
)

// Repository defines the interface for market data access
type Repository interface {
	GetAll(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error)
	// GetOdds loads only the columns needed to price a stake.
	GetOdds(ctx context.Context, id uuid.UUID) (*models.Market, error)
	Create(ctx context.Context, market *models.Market) error
}

// Service defines the interface for market business logic
type Service interface {
	GetMarkets(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error)
	GetMarketByID(ctx context.Context, id uuid.UUID) (*MarketResponse, error)
	GetCategories() *CategoriesResponse
}
