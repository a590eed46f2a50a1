package converter

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/phone-rent/internal/model"
)

func TestKeyRoundTrip(t *testing.T) {
	t.Parallel()

	keys := []model.ItemKey{
		{Brand: "Apple", Model: "iPhone 13 Pro", MemoryGB: 256, Color: "Graphite", BatteryPct: 91, BuyingPrice: 24000},
		{Brand: "A||B", Model: "x|y", MemoryGB: 0.5, Color: "%20 +", BatteryPct: 0, BuyingPrice: 1234.56},
		{},
		{
			Brand:       gofakeit.Company(),
			Model:       gofakeit.ProductName(),
			MemoryGB:    float64(gofakeit.IntRange(16, 1024)),
			Color:       gofakeit.Color(),
			BatteryPct:  gofakeit.Float64Range(60, 100),
			BuyingPrice: gofakeit.Price(5000, 50000),
		},
	}

	for _, k := range keys {
		token := EncodeKey(k)
		assert.NotContains(t, token, " ")

		got, err := DecodeKey(token)
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
}

func TestKeySeparatorInFieldsDoesNotCollide(t *testing.T) {
	t.Parallel()

	a := model.ItemKey{Brand: "A|", Model: "B"}
	b := model.ItemKey{Brand: "A", Model: "|B"}

	assert.NotEqual(t, EncodeKey(a), EncodeKey(b))
}

func TestDecodeKeyErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "too few fields", token: "Apple|iPhone|128"},
		{name: "non numeric memory", token: "Apple|iPhone|lots|Red|90|1000"},
		{name: "bad escape", token: "Apple|%zz|128|Red|90|1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := DecodeKey(tt.token)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidKey)
		})
	}
}
