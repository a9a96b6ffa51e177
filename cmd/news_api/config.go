package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-minter/internal/crawler"
	"github.com/DjordjeVuckovic/news-minter/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-minter/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsMinterConfig struct {
	StorageConfig factory.StorageConfig
	CrawlerConfig crawler.Config
}

func (as *AppConfig) Load() (*NewsMinterConfig, error) {

	err := env.LoadDotEnv(as.ENV, "cmd/news_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	crawlerCfg, err := crawler.LoadConfigFile(os.Getenv("CRAWLER_CONFIG"))
	if err != nil {
		slog.Error("Failed to load crawler configuration", "error", err)
		return nil, err
	}

	return &NewsMinterConfig{
		StorageConfig: *storageCfg,
		CrawlerConfig: *crawlerCfg,
	}, nil
}
