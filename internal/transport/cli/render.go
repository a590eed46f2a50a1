package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/you-humble/phone-rent/internal/converter"
	"github.com/you-humble/phone-rent/internal/model"
	"github.com/you-humble/phone-rent/internal/money"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", usageErrorf("Unknown output format %q; use table, json or yaml.", s)
	}
}

type renderer interface {
	home(w io.Writer, v model.HomeView, s model.Settings) error
	suggestions(w io.Writer, terms []string) error
	results(w io.Writer, v model.ResultsView, s model.Settings) error
	detail(w io.Writer, v model.DetailView, s model.Settings) error
	compare(w io.Writer, v model.CompareView, s model.Settings) error
	settings(w io.Writer, s model.Settings) error
	help(w io.Writer, commands []command) error
}

func newRenderer(f Format) renderer {
	switch f {
	case FormatJSON:
		return encodedRenderer{encode: encodeJSON}
	case FormatYAML:
		return encodedRenderer{encode: encodeYAML}
	default:
		return tableRenderer{}
	}
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
}

// tableRenderer prints human readable tables.
type tableRenderer struct{}

func (tableRenderer) home(w io.Writer, v model.HomeView, s model.Settings) error {
	f := money.NewFormatter(s.CurrencySymbol)

	if _, err := fmt.Fprintf(w, "Rent a phone for %d months.\n\n", v.Term); err != nil {
		return err
	}
	if len(v.Ticker) == 0 {
		_, err := fmt.Fprintln(w, "No phones available.")
		return err
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "BRAND\tMODEL\tMEMORY\tCOLOR\tPER MONTH\n")
	for _, r := range v.Ticker {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			r.Item.Brand, r.Item.Model, memoryText(r.Item.MemoryGB), r.Item.Color, f.Format(r.Quote.Monthly))
	}
	return tw.Flush()
}

func (tableRenderer) suggestions(w io.Writer, terms []string) error {
	for _, t := range terms {
		if _, err := fmt.Fprintln(w, t); err != nil {
			return err
		}
	}
	return nil
}

func (tableRenderer) results(w io.Writer, v model.ResultsView, s model.Settings) error {
	f := money.NewFormatter(s.CurrencySymbol)

	if _, err := fmt.Fprintf(w, "%d result(s), %d-month term\n", len(v.Rows), v.Term); err != nil {
		return err
	}

	if len(v.Rows) > 0 {
		tw := newTabWriter(w)
		fmt.Fprintf(tw, "#\tBRAND\tMODEL\tMEMORY\tCOLOR\tBATTERY\tDEPOSIT\tPER MONTH\tCOMPARE\tKEY\n")
		for i, r := range v.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s%%\t%s\t%s\t%s\t%s\n",
				i+1, r.Item.Brand, r.Item.Model, memoryText(r.Item.MemoryGB), r.Item.Color,
				converter.FormatNumber(r.Item.BatteryPct), f.Format(r.Quote.Deposit), f.Format(r.Quote.Monthly),
				lo.Ternary(r.InCompare, "yes", ""), converter.EncodeKey(r.Key))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	mem := lo.Map(v.MemoryOptions, func(m float64, _ int) string { return memoryText(m) })
	if _, err := fmt.Fprintf(w, "\nMemory: %s\nColors: %s\n", joinOrDash(mem), joinOrDash(v.ColorOptions)); err != nil {
		return err
	}

	if v.CompareCount > 0 {
		_, err := fmt.Fprintf(w, "Compare (%d): run compare to see them side by side.\n", v.CompareCount)
		return err
	}
	return nil
}

func (tableRenderer) detail(w io.Writer, v model.DetailView, s model.Settings) error {
	f := money.NewFormatter(s.CurrencySymbol)
	it := v.Item

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Brand\t%s\n", it.Brand)
	fmt.Fprintf(tw, "Model\t%s\n", it.Model)
	fmt.Fprintf(tw, "Memory\t%s\n", memoryText(it.MemoryGB))
	fmt.Fprintf(tw, "Color\t%s\n", it.Color)
	fmt.Fprintf(tw, "Battery\t%s%%\n", converter.FormatNumber(it.BatteryPct))
	fmt.Fprintf(tw, "Term\t%d months\n", v.Term)
	fmt.Fprintf(tw, "Deposit\t%s\n", f.Format(v.Quote.Deposit))
	fmt.Fprintf(tw, "Remaining\t%s\n", f.Format(v.Quote.Remaining))
	fmt.Fprintf(tw, "Per month\t%s\n", f.Format(v.Quote.Monthly))
	fmt.Fprintf(tw, "Image\t%s\n", imageText(it.ImageRef))
	fmt.Fprintf(tw, "Key\t%s\n", converter.EncodeKey(v.Key))
	return tw.Flush()
}

// compare prints one column per item.
func (tableRenderer) compare(w io.Writer, v model.CompareView, s model.Settings) error {
	if len(v.Columns) == 0 {
		_, err := fmt.Fprintf(w, "Nothing to compare yet. Add up to %d items with add.\n", v.Capacity)
		return err
	}

	f := money.NewFormatter(s.CurrencySymbol)
	cell := func(label string, fn func(c model.CompareColumn) string) string {
		return label + "\t" + strings.Join(lo.Map(v.Columns, func(c model.CompareColumn, _ int) string {
			return fn(c)
		}), "\t") + "\n"
	}

	tw := newTabWriter(w)
	fmt.Fprint(tw, cell("", func(c model.CompareColumn) string { return c.Item.Brand + " " + c.Item.Model }))
	fmt.Fprint(tw, cell("Memory", func(c model.CompareColumn) string { return memoryText(c.Item.MemoryGB) }))
	fmt.Fprint(tw, cell("Color", func(c model.CompareColumn) string { return c.Item.Color }))
	fmt.Fprint(tw, cell("Battery", func(c model.CompareColumn) string {
		return converter.FormatNumber(c.Item.BatteryPct) + "%"
	}))
	fmt.Fprint(tw, cell("Deposit", func(c model.CompareColumn) string { return f.Format(c.Quote.Deposit) }))
	fmt.Fprint(tw, cell("Remaining", func(c model.CompareColumn) string { return f.Format(c.Quote.Remaining) }))
	fmt.Fprint(tw, cell(fmt.Sprintf("Per month (%d)", v.Term), func(c model.CompareColumn) string {
		return f.Format(c.Quote.Monthly)
	}))
	return tw.Flush()
}

func (tableRenderer) settings(w io.Writer, s model.Settings) error {
	pct := func(p *float64) string {
		if p == nil {
			return "per item"
		}
		return converter.FormatNumber(*p) + "%"
	}

	tw := newTabWriter(w)
	fmt.Fprintf(tw, "Currency\t%s\n", s.CurrencySymbol)
	fmt.Fprintf(tw, "Margin\t%s\n", pct(s.MarginOverride))
	fmt.Fprintf(tw, "Deposit\t%s\n", pct(s.DepositOverride))
	fmt.Fprintf(tw, "Tax\t%s%%\n", converter.FormatNumber(s.TaxPct))
	return tw.Flush()
}

func (tableRenderer) help(w io.Writer, commands []command) error {
	tw := newTabWriter(w)
	for _, c := range commands {
		fmt.Fprintf(tw, "%s\t%s\n", c.usage, c.summary)
	}
	return tw.Flush()
}

func memoryText(gb float64) string {
	if gb == 0 {
		return "-"
	}
	return converter.FormatNumber(gb) + " GB"
}

func imageText(ref string) string {
	if ref == converter.PlaceholderImage {
		return "(placeholder)"
	}
	return ref
}

func joinOrDash(v []string) string {
	if len(v) == 0 {
		return "-"
	}
	return strings.Join(v, ", ")
}

// encodedRenderer serializes views as documents.
type encodedRenderer struct {
	encode func(w io.Writer, v any) error
}

func (r encodedRenderer) home(w io.Writer, v model.HomeView, s model.Settings) error {
	return r.encode(w, homeToDTO(v, money.NewFormatter(s.CurrencySymbol)))
}

func (r encodedRenderer) suggestions(w io.Writer, terms []string) error {
	return r.encode(w, lo.Ternary(terms == nil, []string{}, terms))
}

func (r encodedRenderer) results(w io.Writer, v model.ResultsView, s model.Settings) error {
	return r.encode(w, resultsToDTO(v, money.NewFormatter(s.CurrencySymbol)))
}

func (r encodedRenderer) detail(w io.Writer, v model.DetailView, s model.Settings) error {
	return r.encode(w, detailToDTO(v, money.NewFormatter(s.CurrencySymbol)))
}

func (r encodedRenderer) compare(w io.Writer, v model.CompareView, s model.Settings) error {
	return r.encode(w, compareToDTO(v, money.NewFormatter(s.CurrencySymbol)))
}

func (r encodedRenderer) settings(w io.Writer, s model.Settings) error {
	return r.encode(w, settingsToDTO(s))
}

func (encodedRenderer) help(w io.Writer, commands []command) error {
	return tableRenderer{}.help(w, commands)
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func encodeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
