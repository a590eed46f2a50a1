package service

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/phone-rent/internal/model"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	terms := []string{"Apple", "Galaxy S22", "128 GB", "256 GB", "Pixel 7", "Samsung", "Snow", "iPhone 13 Pro"}

	many := make([]string, 0, 12)
	for _, c := range "LKJIHGFEDCBA" {
		many = append(many, fmt.Sprintf("Case %c", c))
	}

	tests := []struct {
		name    string
		terms   []string
		partial string
		want    []string
	}{
		{name: "blank input", terms: terms, partial: "   ", want: []string{}},
		{name: "empty input", terms: terms, partial: "", want: []string{}},
		{name: "no match", terms: terms, partial: "nokia", want: []string{}},
		{name: "case insensitive", terms: terms, partial: "PIX", want: []string{"Pixel 7"}},
		{name: "substring anywhere", terms: terms, partial: "gb", want: []string{"128 GB", "256 GB"}},
		{name: "alphabetical", terms: terms, partial: "s", want: []string{"Galaxy S22", "Samsung", "Snow"}},
		{
			name:    "capped at 8 after sorting",
			terms:   many,
			partial: "case",
			want:    []string{"Case A", "Case B", "Case C", "Case D", "Case E", "Case F", "Case G", "Case H"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Suggest(tt.terms, tt.partial)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatches(t *testing.T) {
	t.Parallel()

	item := model.Item{Brand: "Apple", Model: "iPhone Pro", MemoryGB: 256, Color: "Graphite"}

	tests := []struct {
		query string
		want  bool
	}{
		{query: "pro 256", want: true},
		{query: "256 pro", want: true},
		{query: "APPLE   graphite", want: true},
		{query: "256gb", want: true},
		{query: "", want: true},
		{query: "  \t ", want: true},
		{query: "pro 128", want: false},
		{query: "samsung", want: false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.query), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Matches(item, tt.query))
		})
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	items := []model.Item{
		{Brand: "Apple", Model: "iPhone 13", MemoryGB: 256, Color: "Blue", BatteryPct: 80},
		{Brand: "Apple", Model: "iPhone 13", MemoryGB: 128, Color: "Black", BatteryPct: 79.9},
		{Brand: "Apple", Model: "iPhone 14", MemoryGB: 128, Color: "Red", BatteryPct: 95},
		{Brand: "Google", Model: "Pixel 7", MemoryGB: 0, Color: "", BatteryPct: 90},
		{Brand: "Google", Model: "Pixel 8", MemoryGB: 512, Color: "Blue", BatteryPct: 99},
	}

	type testCase struct {
		name   string
		params model.ResultsQuery
		assert func(t *testing.T, res model.FilterResult)
	}

	tests := []testCase{
		{
			name:   "battery threshold is inclusive",
			params: model.ResultsQuery{MinBattery: 80},
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Len(t, res.Items, 4)
				for _, it := range res.Items {
					assert.GreaterOrEqual(t, it.BatteryPct, 80.0)
				}
			},
		},
		{
			name:   "options skip zero memory and empty color, sorted",
			params: model.ResultsQuery{},
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Equal(t, []float64{128, 256, 512}, res.MemoryOptions)
				assert.Equal(t, []string{"Black", "Blue", "Red"}, res.ColorOptions)
			},
		},
		{
			name:   "options come from query and battery only",
			params: model.ResultsQuery{Query: "apple", MinBattery: 80, MemoryGB: lo.ToPtr(128.0)},
			assert: func(t *testing.T, res model.FilterResult) {
				require.Len(t, res.Items, 1)
				assert.Equal(t, "iPhone 14", res.Items[0].Model)
				assert.Equal(t, []float64{128, 256}, res.MemoryOptions)
				assert.Equal(t, []string{"Blue", "Red"}, res.ColorOptions)
			},
		},
		{
			name:   "exact color filter",
			params: model.ResultsQuery{Color: "Blue"},
			assert: func(t *testing.T, res model.FilterResult) {
				require.Len(t, res.Items, 2)
				assert.Equal(t, "iPhone 13", res.Items[0].Model)
				assert.Equal(t, "Pixel 8", res.Items[1].Model)
			},
		},
		{
			name:   "nothing matches",
			params: model.ResultsQuery{Query: "nokia"},
			assert: func(t *testing.T, res model.FilterResult) {
				assert.Empty(t, res.Items)
				assert.Empty(t, res.MemoryOptions)
				assert.Empty(t, res.ColorOptions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.assert(t, Filter(items, tt.params))
		})
	}
}

func TestSortByMonthly(t *testing.T) {
	t.Parallel()

	rows := make([]model.ResultRow, 0, 6)
	for i, m := range []float64{30, 10, 20, 10, 30, 10} {
		rows = append(rows, model.ResultRow{
			Item:  model.Item{Brand: gofakeit.Company(), Model: fmt.Sprint(i)},
			Quote: model.Quote{Monthly: m},
		})
	}

	SortByMonthly(rows)

	got := lo.Map(rows, func(r model.ResultRow, _ int) string { return r.Item.Model })
	assert.Equal(t, []string{"1", "3", "5", "2", "0", "4"}, got)
}
