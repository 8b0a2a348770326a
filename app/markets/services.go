package markets

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

// service implements the Service interface
type service struct {
	repo   Repository
	config *Config
	log    logger.Logger
}

// NewService creates a new market service
func NewService(repo Repository, config *Config, log logger.Logger) Service {
	return &service{
		repo:   repo,
		config: config,
		log:    log,
	}
}

// GetMarkets returns paginated markets with filters
func (s *service) GetMarkets(ctx context.Context, filters *MarketFilters) (*MarketListResponse, error) {
	if filters == nil {
		filters = &MarketFilters{}
	}
	s.normalizePagination(filters)

	markets, total, err := s.repo.GetAll(ctx, filters)
	if err != nil {
		s.log.Error(err, map[string]interface{}{"op": "list markets", "page": filters.Page})
		return nil, fmt.Errorf("failed to fetch markets: %w", err)
	}

	return &MarketListResponse{
		Markets: ToMarketResponseList(markets),
		Total:   total,
		Page:    filters.Page,
		PerPage: filters.PerPage,
	}, nil
}

// GetMarketByID returns a single market
func (s *service) GetMarketByID(ctx context.Context, id uuid.UUID) (*MarketResponse, error) {
	market, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch market: %w", err)
	}

	return ToMarketResponse(market), nil
}

func (s *service) GetCategories() *CategoriesResponse {
	return &CategoriesResponse{
		Categories:    append([]string(nil), models.Categories...),
		MarketTypes:   append([]models.MarketType(nil), models.MarketTypes...),
		ResolverTypes: append([]models.ResolverType(nil), models.ResolverTypes...),
	}
}

func (s *service) normalizePagination(filters *MarketFilters) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	switch {
	case filters.PerPage < 1:
		filters.PerPage = s.config.DefaultPageSize
	case filters.PerPage > s.config.MaxPageSize:
		filters.PerPage = s.config.MaxPageSize
	}
}
