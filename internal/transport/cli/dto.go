package cli

import (
	"github.com/samber/lo"

	"github.com/you-humble/phone-rent/internal/converter"
	"github.com/you-humble/phone-rent/internal/model"
	"github.com/you-humble/phone-rent/internal/money"
)

type quoteDTO struct {
	Inflow        float64 `json:"inflow" yaml:"inflow"`
	Deposit       float64 `json:"deposit" yaml:"deposit"`
	Remaining     float64 `json:"remaining" yaml:"remaining"`
	Monthly       float64 `json:"monthly" yaml:"monthly"`
	DepositText   string  `json:"deposit_text" yaml:"deposit_text"`
	RemainingText string  `json:"remaining_text" yaml:"remaining_text"`
	MonthlyText   string  `json:"monthly_text" yaml:"monthly_text"`
}

type itemDTO struct {
	Key          string  `json:"key" yaml:"key"`
	Brand        string  `json:"brand" yaml:"brand"`
	Model        string  `json:"model" yaml:"model"`
	MemoryGB     float64 `json:"memory_gb" yaml:"memory_gb"`
	Color        string  `json:"color" yaml:"color"`
	BatteryPct   float64 `json:"battery_pct" yaml:"battery_pct"`
	BuyingPrice  float64 `json:"buying_price" yaml:"buying_price"`
	RentDuration float64 `json:"rent_duration" yaml:"rent_duration"`
	MarginPct    float64 `json:"margin_pct" yaml:"margin_pct"`
	DepositPct   float64 `json:"deposit_pct" yaml:"deposit_pct"`
	Image        string  `json:"image" yaml:"image"`
}

type rowDTO struct {
	Row       int      `json:"row,omitempty" yaml:"row,omitempty"`
	Item      itemDTO  `json:"item" yaml:"item"`
	Quote     quoteDTO `json:"quote" yaml:"quote"`
	InCompare bool     `json:"in_compare" yaml:"in_compare"`
}

type homeDTO struct {
	Term   int      `json:"term" yaml:"term"`
	Ticker []rowDTO `json:"ticker" yaml:"ticker"`
}

type resultsDTO struct {
	Query         string    `json:"query" yaml:"query"`
	Term          int       `json:"term" yaml:"term"`
	Count         int       `json:"count" yaml:"count"`
	Rows          []rowDTO  `json:"rows" yaml:"rows"`
	MemoryOptions []float64 `json:"memory_options" yaml:"memory_options"`
	ColorOptions  []string  `json:"color_options" yaml:"color_options"`
	CompareCount  int       `json:"compare_count" yaml:"compare_count"`
}

type detailDTO struct {
	Term  int      `json:"term" yaml:"term"`
	Item  itemDTO  `json:"item" yaml:"item"`
	Quote quoteDTO `json:"quote" yaml:"quote"`
}

type compareDTO struct {
	Term     int         `json:"term" yaml:"term"`
	Capacity int         `json:"capacity" yaml:"capacity"`
	Items    []detailDTO `json:"items" yaml:"items"`
}

type settingsDTO struct {
	CurrencySymbol     string   `json:"currency_symbol" yaml:"currency_symbol"`
	MarginOverridePct  *float64 `json:"margin_override_pct" yaml:"margin_override_pct"`
	DepositOverridePct *float64 `json:"deposit_override_pct" yaml:"deposit_override_pct"`
	TaxPct             float64  `json:"tax_pct" yaml:"tax_pct"`
}

func itemToDTO(key model.ItemKey, it model.Item) itemDTO {
	return itemDTO{
		Key:          converter.EncodeKey(key),
		Brand:        it.Brand,
		Model:        it.Model,
		MemoryGB:     it.MemoryGB,
		Color:        it.Color,
		BatteryPct:   it.BatteryPct,
		BuyingPrice:  it.BuyingPrice,
		RentDuration: it.RentDurationDefault,
		MarginPct:    it.MarginPct,
		DepositPct:   it.DepositPct,
		Image:        it.ImageRef,
	}
}

func quoteToDTO(q model.Quote, f *money.Formatter) quoteDTO {
	return quoteDTO{
		Inflow:        q.Inflow,
		Deposit:       q.Deposit,
		Remaining:     q.Remaining,
		Monthly:       q.Monthly,
		DepositText:   f.Format(q.Deposit),
		RemainingText: f.Format(q.Remaining),
		MonthlyText:   f.Format(q.Monthly),
	}
}

func rowsToDTO(rows []model.ResultRow, f *money.Formatter, numbered bool) []rowDTO {
	return lo.Map(rows, func(r model.ResultRow, i int) rowDTO {
		out := rowDTO{
			Item:      itemToDTO(r.Key, r.Item),
			Quote:     quoteToDTO(r.Quote, f),
			InCompare: r.InCompare,
		}
		if numbered {
			out.Row = i + 1
		}
		return out
	})
}

func homeToDTO(v model.HomeView, f *money.Formatter) homeDTO {
	return homeDTO{Term: v.Term, Ticker: rowsToDTO(v.Ticker, f, false)}
}

func resultsToDTO(v model.ResultsView, f *money.Formatter) resultsDTO {
	return resultsDTO{
		Query:         v.Query,
		Term:          v.Term,
		Count:         len(v.Rows),
		Rows:          rowsToDTO(v.Rows, f, true),
		MemoryOptions: lo.Ternary(v.MemoryOptions == nil, []float64{}, v.MemoryOptions),
		ColorOptions:  lo.Ternary(v.ColorOptions == nil, []string{}, v.ColorOptions),
		CompareCount:  v.CompareCount,
	}
}

func detailToDTO(v model.DetailView, f *money.Formatter) detailDTO {
	return detailDTO{Term: v.Term, Item: itemToDTO(v.Key, v.Item), Quote: quoteToDTO(v.Quote, f)}
}

func compareToDTO(v model.CompareView, f *money.Formatter) compareDTO {
	return compareDTO{
		Term:     v.Term,
		Capacity: v.Capacity,
		Items: lo.Map(v.Columns, func(c model.CompareColumn, _ int) detailDTO {
			return detailDTO{Term: v.Term, Item: itemToDTO(c.Key, c.Item), Quote: quoteToDTO(c.Quote, f)}
		}),
	}
}

func settingsToDTO(s model.Settings) settingsDTO {
	return settingsDTO{
		CurrencySymbol:     s.CurrencySymbol,
		MarginOverridePct:  s.MarginOverride,
		DepositOverridePct: s.DepositOverride,
		TaxPct:             s.TaxPct,
	}
}
