package envconfig

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/you-humble/phone-rent/internal/model"
)

type pricingEnv struct {
	CurrencySymbol  string  `env:"PRICING_CURRENCY_SYMBOL" envDefault:"฿"`
	MarginOverride  string  `env:"PRICING_MARGIN_OVERRIDE_PCT"`
	DepositOverride string  `env:"PRICING_DEPOSIT_OVERRIDE_PCT"`
	TaxPct          float64 `env:"PRICING_TAX_PCT" envDefault:"0"`
}

type pricing struct {
	raw             pricingEnv
	marginOverride  *float64
	depositOverride *float64
}

func NewPricingConfig() (*pricing, error) {
	var raw pricingEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	if raw.TaxPct < 0 || math.IsNaN(raw.TaxPct) || math.IsInf(raw.TaxPct, 0) {
		return nil, fmt.Errorf("PRICING_TAX_PCT: %w: must be a non-negative number", model.ErrInvalidArgument)
	}

	margin, err := parseOverride(raw.MarginOverride)
	if err != nil {
		return nil, fmt.Errorf("PRICING_MARGIN_OVERRIDE_PCT: %w", err)
	}

	deposit, err := parseOverride(raw.DepositOverride)
	if err != nil {
		return nil, fmt.Errorf("PRICING_DEPOSIT_OVERRIDE_PCT: %w", err)
	}

	return &pricing{raw: raw, marginOverride: margin, depositOverride: deposit}, nil
}

func (cfg *pricing) CurrencySymbol() string    { return cfg.raw.CurrencySymbol }
func (cfg *pricing) MarginOverride() *float64  { return cfg.marginOverride }
func (cfg *pricing) DepositOverride() *float64 { return cfg.depositOverride }
func (cfg *pricing) TaxPct() float64           { return cfg.raw.TaxPct }

// parseOverride maps an empty value to nil.
func parseOverride(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.Join(model.ErrInvalidArgument, fmt.Errorf("%q is not a number", s))
	}
	return &v, nil
}
