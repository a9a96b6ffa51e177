// Package main News Minter API
// @title News Minter API
// @version 1.0
// @description Ingests news article URLs, extracts structured fields and files records under constellation addresses
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/news-minter/docs"
	"github.com/DjordjeVuckovic/news-minter/internal/crawler"
	"github.com/DjordjeVuckovic/news-minter/internal/ingest"
	"github.com/DjordjeVuckovic/news-minter/internal/router"
	"github.com/DjordjeVuckovic/news-minter/internal/server"
	"github.com/DjordjeVuckovic/news-minter/internal/storage/factory"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store, healthChecker, closeStore, err := factory.NewStore(context.Background(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create store", "error", err)
		os.Exit(1)
		return
	}

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Minter API is running")
	})

	pipeline := ingest.NewPipeline(store, crawler.New(cfg.CrawlerConfig))

	newsRouter := router.NewNewsRouter(s.Echo, store, pipeline)
	newsRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	closeStore()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
