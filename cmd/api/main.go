package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/joefazee/prognos/app"
	"github.com/joefazee/prognos/app/api"
	"github.com/joefazee/prognos/app/database"
	apiDoc "github.com/joefazee/prognos/app/doc"
	_ "github.com/joefazee/prognos/docs"
	"github.com/joefazee/prognos/internal/deps"
	"github.com/joefazee/prognos/internal/logger"
	"github.com/joefazee/prognos/internal/router"
	"github.com/joefazee/prognos/internal/sanitizer"
	"github.com/joefazee/prognos/internal/security"
)

const shutdownTimeout = 15 * time.Second

// @title Prognos API
// @version 1.0
// @description Payout quotes and the market creation wizard for the Prognos prediction market.
// @x-logo {"url": "https://go.dev/images/go-logo-white.svg", "altText": "Go API Logo"}

// @contact.name API Support Team

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey SessionToken
// @in header
// @name X-Session-Token
// @description Token returned when the wizard session was started.

// @securityDefinitions.apikey DraftToken
// @in header
// @name X-Draft-Token
// @description Token returned when the draft was saved.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := app.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.ParseLevel(cfg.LogLevel), logger.Fields{
		"service": "prognos-api",
		"env":     cfg.Env,
	})

	db, err := database.New(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := database.Migrate(&cfg.DB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		appLogger.Info("migrations applied", nil)
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.Security.SessionTokenKey)
	if err != nil {
		return fmt.Errorf("failed to create token maker: %w", err)
	}

	container, err := deps.NewContainer(db, tokenMaker, sanitizer.NewHTMLStripper(), appLogger, cfg.Cache)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer container.Close()

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), api.RequestLogger(appLogger), api.CorsMiddleware())

	router.NewMounter(container, "/api/v1").
		Public(r).
		Mount(
			mountHealth,
			mountMarkets(cfg),
			mountPayout(cfg),
			mountWizard(cfg),
		)

	apiDoc.Init(r, cfg.Env)
	if cfg.IsDevelopment() {
		pprof.Register(r)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("starting Prognos API server", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
