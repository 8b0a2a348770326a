package markets

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/models"
)

// Handler handles HTTP requests for markets
type Handler struct {
	service   Service
	validator *validator.Validate
}

// NewHandler creates a new market handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:   service,
		validator: api.NewValidator(),
	}
}

// parseUUIDFromParam extracts and validates UUID from path parameter
func (h *Handler) parseUUIDFromParam(c *gin.Context, paramName string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(paramName))
	if err != nil {
		api.BadRequestResponse(c, "Invalid "+paramName+" format")
		return uuid.Nil, false
	}
	return id, true
}

// GetMarkets godoc
// @Summary List prediction markets
// @Description Get a paginated list of prediction markets with optional filters
// @Tags markets
// @Accept json
// @Produce json
// @Param category query string false "Filter by category"
// @Param status query string false "Filter by market status" Enums(open,closed,resolved)
// @Param market_type query string false "Filter by market type" Enums(yes-no,multiple,scalar)
// @Param search query string false "Search in title and description"
// @Param sort_by query string false "Sort field" Enums(created_at,close_time,total_pool_amount,title) default(created_at)
// @Param sort_order query string false "Sort direction" Enums(asc,desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} api.Response{data=[]MarketResponse,meta=api.PaginationMeta}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets [get]
func (h *Handler) GetMarkets(c *gin.Context) {
	var filters MarketFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.validator.Struct(&filters); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	result, err := h.service.GetMarkets(c.Request.Context(), &filters)
	if err != nil {
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to fetch markets")
		return
	}

	meta := api.NewPaginationMeta(result.Page, result.PerPage, result.Total)
	if len(result.Markets) == 0 {
		api.PaginatedResponse(c, "No markets found", []MarketResponse{}, meta)
		return
	}

	api.PaginatedResponse(c, "Markets retrieved successfully", result.Markets, meta)
}

// GetMarketByID godoc
// @Summary Get market details
// @Description Get a prediction market with its outcomes and current odds
// @Tags markets
// @Accept json
// @Produce json
// @Param id path string true "Market ID"
// @Success 200 {object} api.Response{data=MarketResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id} [get]
func (h *Handler) GetMarketByID(c *gin.Context) {
	id, ok := h.parseUUIDFromParam(c, "id")
	if !ok {
		return
	}

	market, err := h.service.GetMarketByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Market")
			return
		}
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to fetch market")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Market retrieved successfully", market)
}

// GetCategories godoc
// @Summary List market categories
// @Description Categories, market types and resolver types accepted when creating a market
// @Tags markets
// @Produce json
// @Success 200 {object} api.Response{data=CategoriesResponse}
// @Router /api/v1/markets/categories [get]
func (h *Handler) GetCategories(c *gin.Context) {
	api.SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", h.service.GetCategories())
}
