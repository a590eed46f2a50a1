package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	f := NewFormatter("฿")

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "zero", in: 0, want: "฿0"},
		{name: "small", in: 73.33, want: "฿73"},
		{name: "half rounds up", in: 78.5, want: "฿79"},
		{name: "just below half", in: 78.4833, want: "฿78"},
		{name: "thousands", in: 1100, want: "฿1,100"},
		{name: "millions", in: 1234567.49, want: "฿1,234,567"},
		{name: "negative half rounds toward zero", in: -2.5, want: "฿-2"},
		{name: "NaN", in: math.NaN(), want: "฿0"},
		{name: "+Inf", in: math.Inf(1), want: "฿0"},
		{name: "-Inf", in: math.Inf(-1), want: "฿0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, f.Format(tt.in))
		})
	}
}

func TestFormatSymbol(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "$1,000", NewFormatter("$").Format(999.5))
	assert.Equal(t, "1,000", NewFormatter("").Format(1000))
	assert.Equal(t, "$", NewFormatter("$").Symbol())
}
