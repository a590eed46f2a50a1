package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/you-humble/phone-rent/internal/compare"
	"github.com/you-humble/phone-rent/internal/converter"
	"github.com/you-humble/phone-rent/internal/model"
	"github.com/you-humble/phone-rent/internal/pricing"
	"github.com/you-humble/phone-rent/platform/logger"
)

const tickerSize = 10

type CatalogLoader interface {
	Load(ctx context.Context) ([]model.RawRow, error)
}

type CatalogRepository interface {
	Replace(items []model.Item)
	List() []model.Item
	ItemByKey(key model.ItemKey) (model.Item, error)
	Suggestions() []string
	Len() int
}

// service owns the state of one browsing session: the loaded catalog,
// the chosen term, pricing settings and the compare selection.
type service struct {
	loader   CatalogLoader
	repo     CatalogRepository
	compare  *compare.Set
	settings model.Settings
	term     int

	loaded  bool
	loadErr error
}

func NewCatalogService(
	loader CatalogLoader,
	repo CatalogRepository,
	compareSet *compare.Set,
	settings model.Settings,
	term int,
) *service {
	if !model.ValidTerm(term) {
		term = model.DefaultTerm
	}
	return &service{
		loader:   loader,
		repo:     repo,
		compare:  compareSet,
		settings: cloneSettings(settings),
		term:     term,
	}
}

// Load fetches and normalizes the catalog. A failed load leaves the
// catalog empty; the error is kept for LoadErr.
func (s *service) Load(ctx context.Context) error {
	const op = "catalog.service.Load"

	rows, err := s.loader.Load(ctx)
	if err != nil {
		logger.Error(ctx, "catalog load failed", logger.ErrorF(err))
		s.repo.Replace(nil)
		s.loaded, s.loadErr = true, err
		return fmt.Errorf("%s: %w", op, err)
	}

	s.repo.Replace(converter.ItemsFromRows(rows))
	s.loaded, s.loadErr = true, nil

	logger.Info(ctx, "catalog ready", logger.Int("items", s.repo.Len()))
	return nil
}

// Available reports whether a load has completed successfully.
func (s *service) Available() bool { return s.loaded && s.loadErr == nil }

func (s *service) LoadErr() error { return s.loadErr }

func (s *service) Home(_ context.Context) model.HomeView {
	items := lo.Take(s.repo.List(), tickerSize)
	return model.HomeView{
		Term:   s.term,
		Ticker: s.rows(items),
	}
}

func (s *service) Suggest(_ context.Context, partial string) []string {
	return Suggest(s.repo.Suggestions(), partial)
}

func (s *service) Results(ctx context.Context, q model.ResultsQuery) model.ResultsView {
	res := Filter(s.repo.List(), q)

	rows := s.rows(res.Items)
	SortByMonthly(rows)

	logger.Debug(ctx, "results",
		logger.String("query", q.Query),
		logger.Float64("min_battery", q.MinBattery),
		logger.Int("rows", len(rows)),
	)

	return model.ResultsView{
		Query:         q.Query,
		Term:          s.term,
		Rows:          rows,
		MemoryOptions: res.MemoryOptions,
		ColorOptions:  res.ColorOptions,
		CompareCount:  s.compare.Count(),
		Available:     s.Available(),
	}
}

func (s *service) Detail(ctx context.Context, key model.ItemKey) (*model.DetailView, error) {
	const op = "catalog.service.Detail"

	it, err := s.repo.ItemByKey(key)
	if err != nil {
		logger.Warn(ctx, "detail for unknown item", logger.String("key", converter.EncodeKey(key)))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.DetailView{
		Key:   key,
		Item:  it,
		Quote: pricing.Quote(it, s.term, s.settings),
		Term:  s.term,
	}, nil
}

func (s *service) AddToCompare(ctx context.Context, key model.ItemKey) error {
	const op = "catalog.service.AddToCompare"
	log := logger.With(logger.String("key", converter.EncodeKey(key)))

	if _, err := s.repo.ItemByKey(key); err != nil {
		log.Warn(ctx, "compare add for unknown item")
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.compare.Add(key); err != nil {
		log.Warn(ctx, "compare add rejected", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Debug(ctx, "compare add", logger.Int("count", s.compare.Count()))
	return nil
}

// Compare resolves the selection against the current catalog. Keys that
// no longer resolve are left out.
func (s *service) Compare(_ context.Context) model.CompareView {
	cols := lo.FilterMap(s.compare.List(), func(key model.ItemKey, _ int) (model.CompareColumn, bool) {
		it, err := s.repo.ItemByKey(key)
		if err != nil {
			return model.CompareColumn{}, false
		}
		return model.CompareColumn{
			Key:   key,
			Item:  it,
			Quote: pricing.Quote(it, s.term, s.settings),
		}, true
	})

	return model.CompareView{
		Term:     s.term,
		Capacity: s.compare.Capacity(),
		Columns:  cols,
	}
}

func (s *service) CompareCount() int { return s.compare.Count() }

func (s *service) Term() int { return s.term }

// SetTerm keeps the previous term when term is outside the allowed range.
func (s *service) SetTerm(term int) error {
	if !model.ValidTerm(term) {
		return fmt.Errorf("catalog.service.SetTerm: %w: %d not in [%d,%d]",
			model.ErrInvalidTerm, term, model.MinTerm, model.MaxTerm)
	}
	s.term = term
	return nil
}

func (s *service) Settings() model.Settings { return cloneSettings(s.settings) }

func (s *service) SetCurrency(symbol string) { s.settings.CurrencySymbol = symbol }

// SetMarginOverride replaces every item margin; nil restores per-item margins.
func (s *service) SetMarginOverride(pct *float64) error {
	const op = "catalog.service.SetMarginOverride"

	if err := validPct(pct); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.settings.MarginOverride = clonePtr(pct)
	return nil
}

// SetDepositOverride replaces every item deposit; nil restores per-item deposits.
func (s *service) SetDepositOverride(pct *float64) error {
	const op = "catalog.service.SetDepositOverride"

	if err := validPct(pct); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.settings.DepositOverride = clonePtr(pct)
	return nil
}

func (s *service) SetTaxPct(pct float64) error {
	const op = "catalog.service.SetTaxPct"

	if pct < 0 || math.IsNaN(pct) || math.IsInf(pct, 0) {
		return fmt.Errorf("%s: %w", op, errors.Join(model.ErrInvalidArgument, errors.New("tax must be a non-negative number")))
	}
	s.settings.TaxPct = pct
	return nil
}

func (s *service) rows(items []model.Item) []model.ResultRow {
	return lo.Map(items, func(it model.Item, _ int) model.ResultRow {
		k := it.Key()
		return model.ResultRow{
			Key:       k,
			Item:      it,
			Quote:     pricing.Quote(it, s.term, s.settings),
			InCompare: s.compare.Contains(k),
		}
	})
}

func validPct(pct *float64) error {
	if pct == nil {
		return nil
	}
	if math.IsNaN(*pct) || math.IsInf(*pct, 0) {
		return errors.Join(model.ErrInvalidArgument, errors.New("percent must be a finite number"))
	}
	return nil
}

func clonePtr(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return lo.ToPtr(*p)
}

func cloneSettings(s model.Settings) model.Settings {
	s.MarginOverride = clonePtr(s.MarginOverride)
	s.DepositOverride = clonePtr(s.DepositOverride)
	return s
}
