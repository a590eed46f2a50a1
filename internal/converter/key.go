package converter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/you-humble/phone-rent/internal/model"
)

const keySep = "|"

// EncodeKey renders a key as a single shell-safe token. Every field is
// query-escaped, so a field can never contain the separator.
func EncodeKey(k model.ItemKey) string {
	parts := []string{
		k.Brand,
		k.Model,
		FormatNumber(k.MemoryGB),
		k.Color,
		FormatNumber(k.BatteryPct),
		FormatNumber(k.BuyingPrice),
	}
	for i := range parts {
		parts[i] = url.QueryEscape(parts[i])
	}
	return strings.Join(parts, keySep)
}

func DecodeKey(token string) (model.ItemKey, error) {
	const op = "converter.DecodeKey"

	parts := strings.Split(strings.TrimSpace(token), keySep)
	if len(parts) != 6 {
		return model.ItemKey{}, fmt.Errorf("%s: %w: want 6 fields, got %d", op, model.ErrInvalidKey, len(parts))
	}

	fields := make([]string, len(parts))
	for i, p := range parts {
		v, err := url.QueryUnescape(p)
		if err != nil {
			return model.ItemKey{}, fmt.Errorf("%s: %w: %w", op, model.ErrInvalidKey, err)
		}
		fields[i] = v
	}

	nums := make([]float64, 0, 3)
	for _, i := range []int{2, 4, 5} {
		n, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return model.ItemKey{}, fmt.Errorf("%s: %w: field %d: %w", op, model.ErrInvalidKey, i, err)
		}
		nums = append(nums, n)
	}

	return model.ItemKey{
		Brand:       fields[0],
		Model:       fields[1],
		MemoryGB:    nums[0],
		Color:       fields[3],
		BatteryPct:  nums[1],
		BuyingPrice: nums[2],
	}, nil
}
