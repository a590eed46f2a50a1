package tabular

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/you-humble/phone-rent/internal/model"
)

var lineSplit = regexp.MustCompile(`\r?\n`)

// ParseCSV splits text naively on commas; quoted fields containing commas
// are not supported. The first line names the fields, later lines are
// positional and missing cells become "".
func ParseCSV(text string) ([]model.RawRow, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("tabular.ParseCSV: %w: no header line", model.ErrMalformedTable)
	}

	lines := lineSplit.Split(text, -1)
	headers := splitTrim(lines[0])

	rows := make([]model.RawRow, 0, len(lines)-1)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		cells := splitTrim(line)
		row := make(model.RawRow, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			row[i] = model.RawField{Name: h, Value: v}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func splitTrim(line string) []string {
	parts := strings.Split(line, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
