package markets

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/joefazee/prognos/internal/logger"
)

// Dependencies represents the dependencies needed for the markets module
type Dependencies struct {
	DB         *gorm.DB
	Repository Repository
	Config     *Config
	Logger     logger.Logger
}

// Init initializes the markets module and mounts routes
func Init(r *gin.RouterGroup, deps Dependencies) {
	config := deps.Config
	if config == nil {
		config = GetDefaultConfig()
	}

	if err := config.Validate(); err != nil {
		panic("Invalid markets configuration: " + err.Error())
	}

	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}

	repo := deps.Repository
	if repo == nil {
		repo = NewRepository(deps.DB)
	}

	srvs := NewService(repo, config, deps.Logger)
	handler := NewHandler(srvs)

	marketsGroup := r.Group("/markets")
	marketsGroup.GET("", handler.GetMarkets)
	marketsGroup.GET("/categories", handler.GetCategories)
	marketsGroup.GET("/:id", handler.GetMarketByID)
}
