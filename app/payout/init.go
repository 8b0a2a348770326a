package payout

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/models"
)

// Dependencies represent the dependencies needed for the payout module
type Dependencies struct {
	Source    OddsSource
	OddsCache cache.Cache[models.MarketOdds]
	Config    *Config
	Logger    logger.Logger
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}
	if deps.OddsCache == nil {
		deps.OddsCache = cache.NewMemoryCache[models.MarketOdds]()
	}

	provider := NewOddsProvider(deps.Source, deps.OddsCache, deps.Config.OddsCacheTTL, deps.Logger)
	engine := NewEngine(deps.Config)
	srvs := NewService(engine, provider, deps.Config, deps.Logger)
	handler := NewHandler(srvs, NewStreamer(srvs, deps.Config.StreamInterval, deps.Logger))

	r.POST("/payout/quote", handler.Quote)

	quoteGroup := r.Group("/markets/:id/quote")
	quoteGroup.POST("", handler.QuoteMarket)
	quoteGroup.GET("/quick", handler.QuickQuotes)
	quoteGroup.GET("/stream", handler.Stream)
}
