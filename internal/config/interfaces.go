package config

import "time"

type Catalog interface {
	DataSourceURL() string
	FetchTimeout() time.Duration
	CompareCapacity() int
	DefaultTerm() int
}

type Pricing interface {
	CurrencySymbol() string
	// nil when items keep their own margin.
	MarginOverride() *float64
	// nil when items keep their own deposit.
	DepositOverride() *float64
	TaxPct() float64
}

type Logger interface {
	Level() string
	AsJSON() bool
}
