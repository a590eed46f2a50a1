package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/phone-rent/internal/config/env"
)

var cfg *config

type config struct {
	Catalog Catalog
	Pricing Pricing
	Logger  Logger
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	catalogCfg, err := envconfig.NewCatalogConfig()
	if err != nil {
		return fmt.Errorf("%s Catalog: %w", op, err)
	}

	pricingCfg, err := envconfig.NewPricingConfig()
	if err != nil {
		return fmt.Errorf("%s Pricing: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	cfg = &config{
		Catalog: catalogCfg,
		Pricing: pricingCfg,
		Logger:  loggerCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
