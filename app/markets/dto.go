package markets

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/joefazee/prognos/models"
)

// MarketFilters represents filters for market queries
// @Description Filters for searching and filtering markets
type MarketFilters struct {
	Category   string               `form:"category" validate:"omitempty,max=50"`
	Status     *models.MarketStatus `form:"status" validate:"omitempty,oneof=open closed resolved"`
	MarketType *models.MarketType   `form:"market_type" validate:"omitempty,oneof=yes-no multiple scalar"`
	Search     string               `form:"search" validate:"omitempty,max=100"`
	SortBy     string               `form:"sort_by" validate:"omitempty,oneof=created_at close_time total_pool_amount title"`
	SortOrder  string               `form:"sort_order" validate:"omitempty,oneof=asc desc"`
	Page       int                  `form:"page" validate:"gte=0"`
	PerPage    int                  `form:"per_page" validate:"gte=0"`
}

// MarketResponse represents a market as shown to traders
// @Description Market information with its current odds
type MarketResponse struct {
	ID               uuid.UUID           `json:"id"`
	Title            string              `json:"title"`
	Description      string              `json:"description"`
	Category         string              `json:"category"`
	MarketType       models.MarketType   `json:"market_type"`
	Status           models.MarketStatus `json:"status"`
	IsOpen           bool                `json:"is_open"`
	CloseTime        time.Time           `json:"close_time"`
	Outcomes         []string            `json:"outcomes"`
	ScalarMin        *decimal.Decimal    `json:"scalar_min,omitempty"`
	ScalarMax        *decimal.Decimal    `json:"scalar_max,omitempty"`
	ScalarUnit       string              `json:"scalar_unit,omitempty"`
	YesOdds          decimal.Decimal     `json:"yes_odds"`
	NoOdds           decimal.Decimal     `json:"no_odds"`
	InitialLiquidity decimal.Decimal     `json:"initial_liquidity"`
	MinStake         decimal.Decimal     `json:"min_stake"`
	MaxStake         decimal.Decimal     `json:"max_stake"`
	CreatorFee       decimal.Decimal     `json:"creator_fee"`
	ResolverType     models.ResolverType `json:"resolver_type"`
	ResolverAddress  string              `json:"resolver_address,omitempty"`
	ResolverBond     decimal.Decimal     `json:"resolver_bond"`
	TotalPoolAmount  decimal.Decimal     `json:"total_pool_amount"`
	CreatedAt        time.Time           `json:"created_at"`
}

// MarketListResponse represents a paginated list of markets
type MarketListResponse struct {
	Markets []MarketResponse `json:"markets"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// CategoriesResponse lists the values accepted by the wizard
// @Description Selectable market categories, types and resolvers
type CategoriesResponse struct {
	Categories    []string              `json:"categories"`
	MarketTypes   []models.MarketType   `json:"market_types"`
	ResolverTypes []models.ResolverType `json:"resolver_types"`
}

// ToMarketResponse converts a market model to its response
func ToMarketResponse(market *models.Market) *MarketResponse {
	resp := &MarketResponse{
		ID:               market.ID,
		Title:            market.Title,
		Description:      market.Description,
		Category:         market.Category,
		MarketType:       market.MarketType,
		Status:           market.Status,
		IsOpen:           market.IsOpen(),
		CloseTime:        market.CloseTime,
		Outcomes:         market.Outcomes(),
		YesOdds:          market.YesOdds,
		NoOdds:           market.NoOdds,
		InitialLiquidity: market.InitialLiquidity,
		MinStake:         market.MinStake,
		MaxStake:         market.MaxStake,
		CreatorFee:       market.CreatorFee,
		ResolverType:     market.ResolverType,
		ResolverAddress:  market.ResolverAddress,
		ResolverBond:     market.ResolverBond,
		TotalPoolAmount:  market.TotalPoolAmount,
		CreatedAt:        market.CreatedAt,
	}

	if market.MarketType == models.MarketTypeScalar {
		lo, hi := market.ScalarMin, market.ScalarMax
		resp.ScalarMin = &lo
		resp.ScalarMax = &hi
		resp.ScalarUnit = market.ScalarUnit
	}

	return resp
}

// ToMarketResponseList converts markets to responses
func ToMarketResponseList(markets []models.Market) []MarketResponse {
	responses := make([]MarketResponse, len(markets))
	for i := range markets {
		responses[i] = *ToMarketResponse(&markets[i])
	}
	return responses
}
