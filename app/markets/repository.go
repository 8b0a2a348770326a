package markets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/joefazee/prognos/models"
)

var oddsColumns = []string{"id", "market_type", "status", "close_time", "yes_odds", "no_odds"}

// repository implements the Repository interface using GORM
type repository struct {
	db *gorm.DB
}

// NewRepository creates a new market repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

// GetAll returns markets with filters and pagination
func (r *repository) GetAll(ctx context.Context, filters *MarketFilters) ([]models.Market, int64, error) {
	var markets []models.Market
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Market{})
	query = r.applyFilters(query, filters)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = r.applySorting(query, filters)
	query = r.applyPagination(query, filters)

	err := query.Find(&markets).Error
	return markets, total, err
}

// GetByID returns a market by ID
func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&market).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &market, nil
}

func (r *repository) GetOdds(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	var market models.Market
	err := r.db.WithContext(ctx).
		Select(oddsColumns).
		Where("id = ?", id).
		First(&market).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &market, nil
}

// Create creates a new market
func (r *repository) Create(ctx context.Context, market *models.Market) error {
	return r.db.WithContext(ctx).Create(market).Error
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrRecordNotFound
	}
	return err
}

// applyFilters applies search and filter criteria to the query
func (r *repository) applyFilters(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	if filters == nil {
		return query
	}

	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	if filters.Status != nil {
		query = query.Where("status = ?", *filters.Status)
	}

	if filters.MarketType != nil {
		query = query.Where("market_type = ?", *filters.MarketType)
	}

	if filters.Search != "" {
		searchTerm := "%" + strings.ToLower(filters.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	return query
}

// applySorting applies sorting to the query
func (r *repository) applySorting(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	sortBy, sortOrder := "created_at", "desc"
	if filters != nil {
		if filters.SortBy != "" {
			sortBy = filters.SortBy
		}
		if filters.SortOrder != "" {
			sortOrder = filters.SortOrder
		}
	}

	// Only whitelisted columns reach the ORDER BY clause
	validSortFields := map[string]bool{
		"created_at":        true,
		"close_time":        true,
		"total_pool_amount": true,
		"title":             true,
	}

	if !validSortFields[sortBy] {
		sortBy = "created_at"
	}

	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = "desc"
	}

	return query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))
}

// applyPagination applies pagination to the query. Page and PerPage are
// normalized by the service before they get here.
func (r *repository) applyPagination(query *gorm.DB, filters *MarketFilters) *gorm.DB {
	if filters == nil || filters.PerPage < 1 {
		return query
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * filters.PerPage
	return query.Offset(offset).Limit(filters.PerPage)
}
