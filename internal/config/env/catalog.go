package envconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/phone-rent/internal/model"
)

type catalogEnv struct {
	DataSourceURL   string        `env:"CATALOG_DATA_SOURCE_URL" envDefault:"data/phones.csv"`
	FetchTimeout    time.Duration `env:"CATALOG_FETCH_TIMEOUT" envDefault:"10s"`
	CompareCapacity int           `env:"CATALOG_COMPARE_CAPACITY" envDefault:"3"`
	DefaultTerm     int           `env:"CATALOG_DEFAULT_TERM" envDefault:"12"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if strings.TrimSpace(raw.DataSourceURL) == "" {
		return nil, fmt.Errorf("CATALOG_DATA_SOURCE_URL: %w: must be non-empty", model.ErrInvalidArgument)
	}
	if raw.FetchTimeout <= 0 {
		return nil, fmt.Errorf("CATALOG_FETCH_TIMEOUT: %w: must be positive", model.ErrInvalidArgument)
	}
	if raw.CompareCapacity < model.MinCompareCapacity || raw.CompareCapacity > model.MaxCompareCapacity {
		return nil, fmt.Errorf("CATALOG_COMPARE_CAPACITY: %w: %d not in [%d,%d]",
			model.ErrInvalidCapacity, raw.CompareCapacity, model.MinCompareCapacity, model.MaxCompareCapacity)
	}
	if !model.ValidTerm(raw.DefaultTerm) {
		return nil, fmt.Errorf("CATALOG_DEFAULT_TERM: %w: %d not in [%d,%d]",
			model.ErrInvalidTerm, raw.DefaultTerm, model.MinTerm, model.MaxTerm)
	}

	return &catalog{raw: raw}, nil
}

func (cfg *catalog) DataSourceURL() string       { return cfg.raw.DataSourceURL }
func (cfg *catalog) FetchTimeout() time.Duration { return cfg.raw.FetchTimeout }
func (cfg *catalog) CompareCapacity() int        { return cfg.raw.CompareCapacity }
func (cfg *catalog) DefaultTerm() int            { return cfg.raw.DefaultTerm }
