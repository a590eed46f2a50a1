package repository

import (
	"slices"

	"github.com/samber/lo"

	"github.com/you-humble/phone-rent/internal/converter"
	"github.com/you-humble/phone-rent/internal/model"
)

// repository is the in-memory catalog. It is replaced wholesale on every
// load and never patched.
type repository struct {
	items       []model.Item
	byKey       map[model.ItemKey]model.Item
	suggestions []string
}

func NewCatalogRepository() *repository {
	return &repository{byKey: map[model.ItemKey]model.Item{}}
}

// Replace swaps in items and rebuilds the key map and suggestion terms.
// When two rows share a key, lookups resolve to the first one.
func (r *repository) Replace(items []model.Item) {
	r.items = slices.Clone(items)
	r.byKey = make(map[model.ItemKey]model.Item, len(items))
	for _, it := range r.items {
		k := it.Key()
		if _, ok := r.byKey[k]; !ok {
			r.byKey[k] = it
		}
	}
	r.suggestions = buildSuggestions(r.items)
}

func (r *repository) List() []model.Item {
	return slices.Clone(r.items)
}

func (r *repository) ItemByKey(key model.ItemKey) (model.Item, error) {
	it, ok := r.byKey[key]
	if !ok {
		return model.Item{}, model.ErrItemNotFound
	}
	return it, nil
}

func (r *repository) Suggestions() []string {
	return slices.Clone(r.suggestions)
}

func (r *repository) Len() int { return len(r.items) }

func buildSuggestions(items []model.Item) []string {
	terms := make([]string, 0, len(items)*4)
	for _, it := range items {
		if it.Brand != "" {
			terms = append(terms, it.Brand)
		}
		if it.Model != "" {
			terms = append(terms, it.Model)
		}
		if it.MemoryGB != 0 {
			terms = append(terms, converter.FormatNumber(it.MemoryGB)+" GB")
		}
		if it.Color != "" {
			terms = append(terms, it.Color)
		}
	}

	terms = lo.Uniq(terms)
	slices.Sort(terms)
	return terms
}
