package converter

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/phone-rent/internal/model"
)

const placeholderSVG = `<svg xmlns='http://www.w3.org/2000/svg' width='640' height='360'>` +
	`<rect width='100%' height='100%' fill='#eef2f7'/>` +
	`<text x='40' y='70' font-size='40' fill='#90caf9' font-family='system-ui, sans-serif'>phone</text></svg>`

// PlaceholderImage is used for rows without an image reference.
var PlaceholderImage = "data:image/svg+xml;utf8," + url.PathEscape(placeholderSVG)

type alias struct {
	exact []string
	norm  []string
}

var (
	brandAlias        = alias{exact: []string{"Brand"}, norm: []string{"brand"}}
	modelAlias        = alias{exact: []string{"Model"}, norm: []string{"model"}}
	memoryAlias       = alias{exact: []string{"Memory"}, norm: []string{"memory"}}
	colorAlias        = alias{exact: []string{"Color"}, norm: []string{"color"}}
	batteryAlias      = alias{exact: []string{"Battery %", "Battery%"}, norm: []string{"battery", "batterypct"}}
	buyingPriceAlias  = alias{exact: []string{"Buying Price", "BuyingPrice"}, norm: []string{"buyingprice"}}
	rentDurationAlias = alias{exact: []string{"Rent Duration"}, norm: []string{"rentduration"}}
	marginAlias       = alias{exact: []string{"Margin"}, norm: []string{"margin"}}
	depositAlias      = alias{exact: []string{"Deposit"}, norm: []string{"deposit"}}
	imageAlias        = alias{exact: []string{"image"}, norm: []string{"image"}}
)

// fieldIndex resolves row values by exact header first and by normalized
// header second. On duplicates the last header in row order wins.
type fieldIndex struct {
	exact map[string]string
	norm  map[string]string
}

func newFieldIndex(row model.RawRow) fieldIndex {
	ix := fieldIndex{
		exact: make(map[string]string, len(row)),
		norm:  make(map[string]string, len(row)),
	}
	for _, f := range row {
		ix.exact[f.Name] = f.Value
		ix.norm[NormalizeHeader(f.Name)] = f.Value
	}
	return ix
}

func (ix fieldIndex) lookup(a alias) (string, bool) {
	for _, h := range a.exact {
		if v, ok := ix.exact[h]; ok {
			return v, true
		}
	}
	for _, h := range a.norm {
		if v, ok := ix.norm[h]; ok {
			return v, true
		}
	}
	return "", false
}

func (ix fieldIndex) text(a alias) string {
	v, _ := ix.lookup(a)
	return v
}

func (ix fieldIndex) number(a alias) float64 {
	v, _ := ix.lookup(a)
	return ParseNumber(v)
}

// ItemFromRow never fails: missing or malformed values fall back to empty
// strings, zero, or the documented defaults.
func ItemFromRow(row model.RawRow) model.Item {
	ix := newFieldIndex(row)

	item := model.Item{
		Brand:               ix.text(brandAlias),
		Model:               ix.text(modelAlias),
		MemoryGB:            ix.number(memoryAlias),
		Color:               ix.text(colorAlias),
		BatteryPct:          ix.number(batteryAlias),
		BuyingPrice:         ix.number(buyingPriceAlias),
		RentDurationDefault: model.DefaultRentDuration,
		MarginPct:           ix.number(marginAlias),
		DepositPct:          ix.number(depositAlias),
		ImageRef:            PlaceholderImage,
	}

	if v, ok := ix.lookup(rentDurationAlias); ok && strings.TrimSpace(v) != "" {
		item.RentDurationDefault = ParseNumber(v)
	}
	if v := ix.text(imageAlias); v != "" {
		item.ImageRef = v
	}

	return item
}

func ItemsFromRows(rows []model.RawRow) []model.Item {
	return lo.Map(rows, func(r model.RawRow, _ int) model.Item {
		return ItemFromRow(r)
	})
}

// ParseNumber keeps digits, dots and minus signs and parses the rest.
// Anything unparseable or non-finite is 0.
func ParseNumber(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	if cleaned == "" {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// NormalizeHeader lower-cases s and drops everything but a-z and 0-9.
func NormalizeHeader(s string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, strings.ToLower(s))
}

// FormatNumber prints the shortest decimal form, e.g. 256 or 0.5.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
