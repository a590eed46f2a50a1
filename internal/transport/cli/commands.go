package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/pflag"

	"github.com/you-humble/phone-rent/internal/converter"
	"github.com/you-humble/phone-rent/internal/model"
)

const defaultMinBattery = 80

type command struct {
	name    string
	alias   string
	usage   string
	summary string
	run     func(ctx context.Context, args []string) error
}

func (h *handler) commandTable() []command {
	return []command{
		{name: "home", usage: "home [--term N]", summary: "Show the current term and a sample of the catalog", run: h.home},
		{name: "suggest", usage: "suggest <partial>", summary: "Suggest search terms", run: h.suggest},
		{
			name:    "results",
			usage:   "results [--q TEXT] [--term N] [--memory GB] [--color C] [--battery-min P] [TEXT...]",
			summary: "Search the catalog, cheapest monthly payment first",
			run:     h.results,
		},
		{name: "detail", usage: "detail <key|#row>", summary: "Show one item with its quote", run: h.detail},
		{name: "add", usage: "add <key|#row>...", summary: "Add items to the comparison", run: h.add},
		{name: "compare", usage: "compare", summary: "Show the compared items side by side", run: h.compare},
		{name: "term", usage: "term [N]", summary: "Show or set the rental term in months", run: h.term},
		{
			name:    "set",
			usage:   "set [currency <sym> | margin <pct|off> | deposit <pct|off> | tax <pct>]",
			summary: "Show or change pricing settings",
			run:     h.set,
		},
		{name: "reload", usage: "reload", summary: "Load the catalog again", run: h.reload},
		{name: "help", usage: "help", summary: "List commands", run: h.help},
		{name: "quit", alias: "exit", usage: "quit", summary: "Leave the shell", run: h.quit},
	}
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseFlags(fs *pflag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return usageErrorf("%s: %v", fs.Name(), err)
	}
	return nil
}

func (h *handler) home(ctx context.Context, args []string) error {
	fs := newFlagSet("home")
	term := fs.Int("term", 0, "rental term in months")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if fs.Changed("term") {
		if err := h.svc.SetTerm(*term); err != nil {
			return err
		}
	}

	return h.render.home(h.out, h.svc.Home(ctx), h.settings())
}

func (h *handler) suggest(ctx context.Context, args []string) error {
	return h.render.suggestions(h.out, h.svc.Suggest(ctx, strings.Join(args, " ")))
}

func (h *handler) results(ctx context.Context, args []string) error {
	fs := newFlagSet("results")
	query := fs.String("q", "", "search text")
	term := fs.Int("term", 0, "rental term in months")
	memory := fs.Float64("memory", 0, "exact memory in GB")
	color := fs.String("color", "", "exact color")
	minBattery := fs.Float64("battery-min", defaultMinBattery, "minimum battery health in percent")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if fs.Changed("term") {
		if err := h.svc.SetTerm(*term); err != nil {
			return err
		}
	}

	q := model.ResultsQuery{
		Query:      strings.TrimSpace(strings.Join(append([]string{*query}, fs.Args()...), " ")),
		Color:      *color,
		MinBattery: *minBattery,
	}
	if fs.Changed("memory") {
		q.MemoryGB = lo.ToPtr(*memory)
	}

	view := h.svc.Results(ctx, q)
	h.lastRows = lo.Map(view.Rows, func(r model.ResultRow, _ int) model.ItemKey { return r.Key })

	if !view.Available {
		return model.ErrDataUnavailable
	}
	return h.render.results(h.out, view, h.settings())
}

func (h *handler) detail(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageErrorf("usage: detail <key|#row>")
	}

	key, err := h.resolve(args[0])
	if err != nil {
		return err
	}

	dv, err := h.svc.Detail(ctx, key)
	if err != nil {
		return err
	}
	return h.render.detail(h.out, *dv, h.settings())
}

func (h *handler) add(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageErrorf("usage: add <key|#row>...")
	}

	for _, ref := range args {
		key, err := h.resolve(ref)
		if err != nil {
			return err
		}
		if err := h.svc.AddToCompare(ctx, key); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(h.out, "%d item(s) selected for comparison.\n", h.svc.CompareCount())
	return err
}

func (h *handler) compare(ctx context.Context, _ []string) error {
	return h.render.compare(h.out, h.svc.Compare(ctx), h.settings())
}

func (h *handler) term(_ context.Context, args []string) error {
	switch len(args) {
	case 0:
	case 1:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: %q", model.ErrInvalidTerm, args[0])
		}
		if err := h.svc.SetTerm(n); err != nil {
			return err
		}
	default:
		return usageErrorf("usage: term [N]")
	}

	_, err := fmt.Fprintf(h.out, "Term: %d months\n", h.svc.Term())
	return err
}

func (h *handler) set(_ context.Context, args []string) error {
	if len(args) == 0 {
		return h.render.settings(h.out, h.settings())
	}
	if len(args) != 2 {
		return usageErrorf("usage: set currency <sym> | margin <pct|off> | deposit <pct|off> | tax <pct>")
	}

	value := args[1]
	switch strings.ToLower(args[0]) {
	case "currency":
		h.svc.SetCurrency(value)
	case "margin":
		pct, err := parseOverride(value)
		if err != nil {
			return err
		}
		if err := h.svc.SetMarginOverride(pct); err != nil {
			return err
		}
	case "deposit":
		pct, err := parseOverride(value)
		if err != nil {
			return err
		}
		if err := h.svc.SetDepositOverride(pct); err != nil {
			return err
		}
	case "tax":
		pct, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return usageErrorf("Tax must be a number, got %q.", value)
		}
		if err := h.svc.SetTaxPct(pct); err != nil {
			return usageErrorf("Tax must be zero or more.")
		}
	default:
		return usageErrorf("Unknown setting %q.", args[0])
	}

	return h.render.settings(h.out, h.settings())
}

func (h *handler) reload(ctx context.Context, _ []string) error {
	h.lastRows = nil
	if err := h.svc.Load(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(h.out, "Catalog reloaded.")
	return err
}

func (h *handler) help(_ context.Context, _ []string) error {
	return h.render.help(h.out, h.commands)
}

func (h *handler) quit(_ context.Context, _ []string) error { return ErrQuit }

// resolve accepts either an encoded key or #N, a 1-based row of the last
// results listing.
func (h *handler) resolve(ref string) (model.ItemKey, error) {
	if n, ok := strings.CutPrefix(ref, "#"); ok {
		i, err := strconv.Atoi(n)
		if err != nil || i < 1 || i > len(h.lastRows) {
			return model.ItemKey{}, fmt.Errorf("cli.resolve: %w: no row %s", model.ErrItemNotFound, ref)
		}
		return h.lastRows[i-1], nil
	}
	return converter.DecodeKey(ref)
}

func (h *handler) settings() model.Settings { return h.svc.Settings() }

func parseOverride(s string) (*float64, error) {
	if strings.EqualFold(s, "off") || strings.EqualFold(s, "none") {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, usageErrorf("Expected a percentage or off, got %q.", s)
	}
	return &v, nil
}
