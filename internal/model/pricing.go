package model

const (
	MinTerm = 6
	MaxTerm = 24

	DefaultTerm            = 12
	DefaultCompareCapacity = 3
	MinCompareCapacity     = 2
	MaxCompareCapacity     = 5
)

// Settings are session-wide pricing parameters.
type Settings struct {
	CurrencySymbol string
	// When set, replaces Item.MarginPct for every quote.
	MarginOverride *float64
	// When set, replaces Item.DepositPct for every quote.
	DepositOverride *float64
	TaxPct          float64
}

type Quote struct {
	Inflow    float64
	Deposit   float64
	Remaining float64
	Monthly   float64
}

func ValidTerm(term int) bool { return term >= MinTerm && term <= MaxTerm }
