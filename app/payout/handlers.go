package payout

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/models"
)

// Handler handles HTTP requests for payout quotes
type Handler struct {
	service   Service
	streamer  *Streamer
	validator *validator.Validate
}

// NewHandler creates a new payout handler
func NewHandler(service Service, streamer *Streamer) *Handler {
	return &Handler{
		service:   service,
		streamer:  streamer,
		validator: api.NewValidator(),
	}
}

// Quote godoc
// @Summary Quote a payout
// @Description Calculate the payout breakdown for a stake at the given odds
// @Tags payout
// @Accept json
// @Produce json
// @Param request body QuoteRequest true "Stake and odds"
// @Success 200 {object} api.Response{data=QuoteResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/payout/quote [post]
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	quote, err := h.service.Quote(&req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Quote calculated successfully", quote)
}

// QuoteMarket godoc
// @Summary Quote a payout at live odds
// @Description Calculate the payout breakdown for a stake at the market's current odds
// @Tags payout
// @Accept json
// @Produce json
// @Param id path string true "Market ID"
// @Param request body MarketQuoteRequest true "Stake and side"
// @Success 200 {object} api.Response{data=QuoteResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Failure 422 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/quote [post]
func (h *Handler) QuoteMarket(c *gin.Context) {
	marketID, ok := h.marketID(c)
	if !ok {
		return
	}

	var req MarketQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	quote, err := h.service.QuoteMarket(c.Request.Context(), marketID, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Quote calculated successfully", quote)
}

// QuickQuotes godoc
// @Summary Quote the quick stake amounts
// @Description Price each preset stake amount at the market's current odds
// @Tags payout
// @Produce json
// @Param id path string true "Market ID"
// @Param side query string true "YES or NO"
// @Success 200 {object} api.Response{data=QuickQuotesResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/quote/quick [get]
func (h *Handler) QuickQuotes(c *gin.Context) {
	marketID, ok := h.marketID(c)
	if !ok {
		return
	}

	side, err := models.ParseSide(c.Query("side"))
	if err != nil {
		api.ValidationErrorResponse(c, map[string]string{"side": "Value must be one of YES NO"})
		return
	}

	quotes, err := h.service.QuickQuotes(c.Request.Context(), marketID, side)
	if err != nil {
		h.handleError(c, err)
		return
	}

	api.ListResponse(c, "Quick quotes calculated successfully", quotes, len(quotes.Quotes))
}

// Stream godoc
// @Summary Stream live quotes
// @Description Websocket pushing a new quote whenever the market's odds move
// @Tags payout
// @Param id path string true "Market ID"
// @Param side query string true "YES or NO"
// @Param stake query number true "Stake amount"
// @Success 101
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/markets/{id}/quote/stream [get]
func (h *Handler) Stream(c *gin.Context) {
	marketID, ok := h.marketID(c)
	if !ok {
		return
	}

	var req MarketQuoteRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, api.FormatValidationErrors(err))
		return
	}

	h.streamer.Serve(c.Writer, c.Request, marketID, req)
}

func (h *Handler) marketID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid market ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var calcErr *models.CalculationError

	switch {
	case errors.As(err, &calcErr):
		api.ErrorResponse(c, http.StatusBadRequest, "CALCULATION_ERROR", "Unable to calculate payout",
			map[string]string{calcErr.Field: calcErr.Err.Error()})
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Market")
	case errors.Is(err, models.ErrMarketNotOpen), errors.Is(err, models.ErrMarketNotBinary):
		api.ErrorResponse(c, http.StatusConflict, "MARKET_NOT_QUOTABLE", err.Error(), nil)
	default:
		_ = c.Error(err)
		api.InternalErrorResponse(c, "Failed to calculate quote")
	}
}
