package main

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/prognos/app"
	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/app/markets"
	"github.com/joefazee/prognos/app/payout"
	"github.com/joefazee/prognos/app/wizard"
	"github.com/joefazee/prognos/internal/cache"
	"github.com/joefazee/prognos/internal/deps"
	"github.com/joefazee/prognos/internal/router"
	"github.com/joefazee/prognos/models"
)

const marketsRepositoryKey = "markets"

func mountHealth(r *gin.RouterGroup, _ *deps.Container) {
	r.GET("/healthz", api.HealthCheck)
}

// mountMarkets must run before payout and wizard, which read its repository.
func mountMarkets(cfg *app.Config) router.MountFunc {
	return func(r *gin.RouterGroup, c *deps.Container) {
		repo := markets.NewRepository(c.DB)
		c.RegisterRepository(marketsRepositoryKey, repo)

		markets.Init(r, markets.Dependencies{
			Repository: repo,
			Config:     &cfg.Markets,
			Logger:     c.Logger,
		})
	}
}

func mountPayout(cfg *app.Config) router.MountFunc {
	return func(r *gin.RouterGroup, c *deps.Container) {
		repo := c.GetRepository(marketsRepositoryKey).(markets.Repository)

		payout.Init(r, payout.Dependencies{
			Source:    markets.NewOddsSource(repo),
			OddsCache: deps.NewCache[models.MarketOdds](c, "odds:"),
			Config:    &cfg.Payout,
			Logger:    c.Logger,
		})
	}
}

func mountWizard(cfg *app.Config) router.MountFunc {
	return func(r *gin.RouterGroup, c *deps.Container) {
		repo := c.GetRepository(marketsRepositoryKey).(markets.Repository)

		wizard.Init(r, wizard.Dependencies{
			Submitter:  markets.NewSubmitter(repo, c.Sanitizer, &cfg.Markets, c.Logger),
			DraftCache: deps.NewCache[models.MarketDraft](c, "draft:"),
			// Sessions own goroutines and locks, so they stay in process
			Sessions:   cache.NewMemoryCache[*wizard.Session](),
			TokenMaker: c.TokenMaker,
			TokenTTL:   cfg.Security.SessionTokenTTL,
			Config:     &cfg.Wizard,
			Logger:     c.Logger,
		})
	}
}
