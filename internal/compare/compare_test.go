package compare

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/phone-rent/internal/model"
)

func fakeKey() model.ItemKey {
	return model.ItemKey{
		Brand:       gofakeit.Company(),
		Model:       gofakeit.ProductName() + " " + gofakeit.UUID(),
		MemoryGB:    float64(gofakeit.IntRange(64, 512)),
		Color:       gofakeit.Color(),
		BatteryPct:  float64(gofakeit.IntRange(70, 100)),
		BuyingPrice: gofakeit.Price(5000, 40000),
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, c := range []int{2, 3, 5} {
		s, err := New(c)
		require.NoError(t, err)
		assert.Equal(t, c, s.Capacity())
		assert.Zero(t, s.Count())
	}

	for _, c := range []int{-1, 0, 1, 6} {
		s, err := New(c)
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrInvalidCapacity)
		assert.Nil(t, s)
	}
}

func TestSetAdd(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		setup  func(t *testing.T, s *Set) []model.ItemKey
		assert func(t *testing.T, s *Set, keys []model.ItemKey)
	}

	tests := []testCase{
		{
			name: "duplicate add is a no-op",
			setup: func(t *testing.T, s *Set) []model.ItemKey {
				k := fakeKey()
				require.NoError(t, s.Add(k))
				require.NoError(t, s.Add(k))
				return []model.ItemKey{k}
			},
			assert: func(t *testing.T, s *Set, keys []model.ItemKey) {
				assert.Equal(t, 1, s.Count())
				assert.Equal(t, keys, s.List())
			},
		},
		{
			name: "fourth distinct key fails and leaves the set unchanged",
			setup: func(t *testing.T, s *Set) []model.ItemKey {
				keys := []model.ItemKey{fakeKey(), fakeKey(), fakeKey()}
				for _, k := range keys {
					require.NoError(t, s.Add(k))
				}

				err := s.Add(fakeKey())
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrCapacityExceeded)
				return keys
			},
			assert: func(t *testing.T, s *Set, keys []model.ItemKey) {
				assert.Equal(t, 3, s.Count())
				assert.Equal(t, keys, s.List())
			},
		},
		{
			name: "re-adding a present key on a full set still succeeds",
			setup: func(t *testing.T, s *Set) []model.ItemKey {
				keys := []model.ItemKey{fakeKey(), fakeKey(), fakeKey()}
				for _, k := range keys {
					require.NoError(t, s.Add(k))
				}
				require.NoError(t, s.Add(keys[1]))
				return keys
			},
			assert: func(t *testing.T, s *Set, keys []model.ItemKey) {
				assert.Equal(t, keys, s.List())
				assert.True(t, s.Contains(keys[2]))
			},
		},
		{
			name: "keys are compared by value",
			setup: func(t *testing.T, s *Set) []model.ItemKey {
				k := model.ItemKey{Brand: "Apple", Model: "iPhone 12", MemoryGB: 128, BatteryPct: 88, BuyingPrice: 12000}
				same := k
				require.NoError(t, s.Add(k))
				require.NoError(t, s.Add(same))
				return []model.ItemKey{k}
			},
			assert: func(t *testing.T, s *Set, keys []model.ItemKey) {
				assert.Equal(t, 1, s.Count())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := New(model.DefaultCompareCapacity)
			require.NoError(t, err)

			keys := tt.setup(t, s)
			tt.assert(t, s, keys)
		})
	}
}

func TestListIsACopy(t *testing.T) {
	t.Parallel()

	s, err := New(2)
	require.NoError(t, err)
	k := fakeKey()
	require.NoError(t, s.Add(k))

	got := s.List()
	got[0].Brand = "mutated"

	assert.Equal(t, k, s.List()[0])
}

func TestListIsCappedToCapacity(t *testing.T) {
	t.Parallel()

	s, err := New(2)
	require.NoError(t, err)

	// Over-full state; List must still stop at the capacity.
	s.keys = append(s.keys, fakeKey(), fakeKey(), fakeKey())

	assert.Len(t, s.List(), 2)
}
