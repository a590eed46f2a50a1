package service

import (
	"slices"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/phone-rent/internal/converter"
	"github.com/you-humble/phone-rent/internal/model"
)

const maxSuggestions = 8

// Suggest returns up to maxSuggestions terms containing partial,
// case-insensitively, in sorted order.
func Suggest(terms []string, partial string) []string {
	needle := strings.ToLower(strings.TrimSpace(partial))
	if needle == "" {
		return []string{}
	}

	sorted := slices.Clone(terms)
	slices.Sort(sorted)

	out := make([]string, 0, maxSuggestions)
	for _, term := range sorted {
		if strings.Contains(strings.ToLower(term), needle) {
			out = append(out, term)
			if len(out) == maxSuggestions {
				break
			}
		}
	}
	return out
}

// Matches reports whether every whitespace token of query occurs in the
// item's search text. A blank query matches everything.
func Matches(item model.Item, query string) bool {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return true
	}

	haystack := strings.ToLower(searchText(item))
	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}

func searchText(item model.Item) string {
	return item.Brand + " " + item.Model + " " + converter.FormatNumber(item.MemoryGB) + "GB " + item.Color
}

// Filter applies the text query and the battery threshold, derives the
// memory and color options from that subset, then narrows it by the exact
// memory and color filters. Options therefore do not shrink when a memory
// or color is picked.
func Filter(items []model.Item, params model.ResultsQuery) model.FilterResult {
	base := lo.Filter(items, func(it model.Item, _ int) bool {
		return it.BatteryPct >= params.MinBattery && Matches(it, params.Query)
	})

	memOpts := lo.Uniq(lo.FilterMap(base, func(it model.Item, _ int) (float64, bool) {
		return it.MemoryGB, it.MemoryGB != 0
	}))
	slices.Sort(memOpts)

	colorOpts := lo.Uniq(lo.FilterMap(base, func(it model.Item, _ int) (string, bool) {
		return it.Color, it.Color != ""
	}))
	slices.Sort(colorOpts)

	out := lo.Filter(base, func(it model.Item, _ int) bool {
		if params.MemoryGB != nil && it.MemoryGB != *params.MemoryGB {
			return false
		}
		if params.Color != "" && it.Color != params.Color {
			return false
		}
		return true
	})

	return model.FilterResult{
		Items:         out,
		MemoryOptions: memOpts,
		ColorOptions:  colorOpts,
	}
}

// SortByMonthly orders rows by monthly payment, cheapest first. Ties keep
// their catalog order.
func SortByMonthly(rows []model.ResultRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Quote.Monthly < rows[j].Quote.Monthly
	})
}
