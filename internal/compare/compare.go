// Package compare holds the bounded selection of items picked for
// side-by-side comparison.
package compare

import (
	"fmt"

	"github.com/you-humble/phone-rent/internal/model"
)

// Set keeps insertion order and rejects duplicates. It has no removal;
// a new session starts with a new Set.
type Set struct {
	capacity int
	keys     []model.ItemKey
	index    map[model.ItemKey]struct{}
}

func New(capacity int) (*Set, error) {
	const op = "compare.New"

	if capacity < model.MinCompareCapacity || capacity > model.MaxCompareCapacity {
		return nil, fmt.Errorf("%s: %w: %d not in [%d,%d]",
			op, model.ErrInvalidCapacity, capacity,
			model.MinCompareCapacity, model.MaxCompareCapacity,
		)
	}

	return &Set{
		capacity: capacity,
		keys:     make([]model.ItemKey, 0, capacity),
		index:    make(map[model.ItemKey]struct{}, capacity),
	}, nil
}

// Add appends key. Adding a key that is already present is a no-op.
// Adding a new key to a full set fails with model.ErrCapacityExceeded and
// leaves the set untouched.
func (s *Set) Add(key model.ItemKey) error {
	if _, ok := s.index[key]; ok {
		return nil
	}
	if len(s.keys) >= s.capacity {
		return fmt.Errorf("compare.Add: %w: limit %d", model.ErrCapacityExceeded, s.capacity)
	}

	s.keys = append(s.keys, key)
	s.index[key] = struct{}{}
	return nil
}

// List returns a copy of the keys in insertion order, never more than the
// capacity.
func (s *Set) List() []model.ItemKey {
	n := min(len(s.keys), s.capacity)
	out := make([]model.ItemKey, n)
	copy(out, s.keys[:n])
	return out
}

func (s *Set) Contains(key model.ItemKey) bool {
	_, ok := s.index[key]
	return ok
}

func (s *Set) Count() int { return len(s.keys) }

func (s *Set) Capacity() int { return s.capacity }
