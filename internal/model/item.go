package model

const DefaultRentDuration = 12

// RawField is one header/value pair of a tabular row.
type RawField struct {
	Name  string
	Value string
}

// RawRow keeps the fields of a row in header order.
type RawRow []RawField

type Item struct {
	Brand string
	Model string
	// Memory size in gigabytes.
	MemoryGB float64
	Color    string
	// Battery health in percent.
	BatteryPct float64
	// Base cost the rent is priced from.
	BuyingPrice float64
	// Informational only; the quote uses the term chosen by the user.
	RentDurationDefault float64
	// Per-item margin in percent, replaced by Settings.MarginOverride when set.
	MarginPct float64
	// Per-item deposit in percent, replaced by Settings.DepositOverride when set.
	DepositPct float64
	// Image reference or a generated placeholder.
	ImageRef string
}

// ItemKey identifies an item. Two rows that agree on all six fields are
// the same entity as far as lookups are concerned.
type ItemKey struct {
	Brand       string
	Model       string
	MemoryGB    float64
	Color       string
	BatteryPct  float64
	BuyingPrice float64
}

func (i Item) Key() ItemKey {
	return ItemKey{
		Brand:       i.Brand,
		Model:       i.Model,
		MemoryGB:    i.MemoryGB,
		Color:       i.Color,
		BatteryPct:  i.BatteryPct,
		BuyingPrice: i.BuyingPrice,
	}
}
