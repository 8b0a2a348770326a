package wizard

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/internal/security"
	"github.com/joefazee/prognos/models"
)

// Dependencies represent the dependencies needed for the wizard module
type Dependencies struct {
	Submitter  Submitter
	DraftCache cache.Cache[models.MarketDraft]
	Sessions   cache.Cache[*Session]
	TokenMaker security.Maker
	TokenTTL   time.Duration
	Config     *Config
	Logger     logger.Logger
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}
	if deps.Logger == nil {
		deps.Logger = logger.NewNullLogger()
	}
	if deps.DraftCache == nil {
		deps.DraftCache = cache.NewMemoryCache[models.MarketDraft]()
	}
	if deps.Sessions == nil {
		deps.Sessions = cache.NewMemoryCache[*Session]()
	}
	if deps.TokenTTL <= 0 {
		deps.TokenTTL = deps.Config.SessionTTL
	}

	drafts := NewDraftStore(deps.DraftCache, deps.Config.DraftTTL)
	srvs := NewService(deps.Sessions, drafts, deps.Submitter, deps.TokenMaker, deps.TokenTTL, deps.Config, deps.Logger)
	handler := NewHandler(srvs)

	wizardGroup := r.Group("/wizard")
	wizardGroup.POST("/sessions", handler.StartSession)
	wizardGroup.GET("/drafts/:id", RequireDraftToken(srvs), handler.GetDraft)

	sessionGroup := wizardGroup.Group("/sessions/:id", RequireSessionToken(srvs))
	sessionGroup.GET("", handler.GetSession)
	sessionGroup.DELETE("", handler.DiscardSession)
	sessionGroup.PATCH("/draft", handler.EditDraft)
	sessionGroup.POST("/draft", handler.SaveDraft)
	sessionGroup.POST("/options", handler.AddOption)
	sessionGroup.DELETE("/options/:index", handler.RemoveOption)
	sessionGroup.POST("/next", handler.Next)
	sessionGroup.POST("/previous", handler.Previous)
	sessionGroup.POST("/submit", handler.Submit)
}
