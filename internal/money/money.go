// Package money renders amounts as whole, comma-grouped currency strings.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter is safe for reuse; the currency symbol is fixed at creation.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

func NewFormatter(symbol string) *Formatter {
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Format rounds half up and never shows decimals. NaN and infinities are
// rendered as zero.
func (f *Formatter) Format(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	r := math.Floor(n + 0.5)

	if r >= math.MinInt64 && r < math.MaxInt64 {
		return f.symbol + f.printer.Sprintf("%d", int64(r))
	}
	return f.symbol + f.printer.Sprintf("%.0f", r)
}

func (f *Formatter) Symbol() string { return f.symbol }
