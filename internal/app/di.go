package app

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/you-humble/phone-rent/internal/client/tabular"
	"github.com/you-humble/phone-rent/internal/compare"
	"github.com/you-humble/phone-rent/internal/config"
	"github.com/you-humble/phone-rent/internal/model"
	repository "github.com/you-humble/phone-rent/internal/repository/catalog"
	service "github.com/you-humble/phone-rent/internal/service/catalog"
	"github.com/you-humble/phone-rent/internal/transport/cli"
	"github.com/you-humble/phone-rent/platform/closer"
	"github.com/you-humble/phone-rent/platform/logger"
)

type CatalogService interface {
	cli.CatalogService
	LoadErr() error
}

type CatalogHandler interface {
	Execute(ctx context.Context, args []string) error
	Shell(ctx context.Context, in io.Reader, prompt string) error
	Message(ctx context.Context, err error) string
}

type di struct {
	httpClient *http.Client
	loader     service.CatalogLoader
	repository service.CatalogRepository
	compareSet *compare.Set

	service CatalogService
	handler CatalogHandler

	out    io.Writer
	format string
}

func NewDI(out io.Writer, format string) *di { return &di{out: out, format: format} }

func (d *di) HTTPClient(_ context.Context) *http.Client {
	if d.httpClient == nil {
		d.httpClient = &http.Client{Timeout: config.C().Catalog.FetchTimeout()}
		closer.AddNamed("HTTP client", func(context.Context) error {
			d.httpClient.CloseIdleConnections()
			return nil
		})
	}

	return d.httpClient
}

func (d *di) CatalogLoader(ctx context.Context) service.CatalogLoader {
	if d.loader == nil {
		primary := tabular.NewSource(config.C().Catalog.DataSourceURL(), d.HTTPClient(ctx))
		d.loader = tabular.NewLoader(primary, tabular.Embedded(), logger.L())
	}

	return d.loader
}

func (d *di) CatalogRepository(_ context.Context) service.CatalogRepository {
	if d.repository == nil {
		d.repository = repository.NewCatalogRepository()
	}

	return d.repository
}

func (d *di) CompareSet(_ context.Context) *compare.Set {
	if d.compareSet == nil {
		set, err := compare.New(config.C().Catalog.CompareCapacity())
		if err != nil {
			panic(fmt.Sprintf("failed to create compare set: %v\n", err))
		}
		d.compareSet = set
	}

	return d.compareSet
}

func (d *di) CatalogService(ctx context.Context) CatalogService {
	if d.service == nil {
		pricing := config.C().Pricing
		d.service = service.NewCatalogService(
			d.CatalogLoader(ctx),
			d.CatalogRepository(ctx),
			d.CompareSet(ctx),
			model.Settings{
				CurrencySymbol:  pricing.CurrencySymbol(),
				MarginOverride:  pricing.MarginOverride(),
				DepositOverride: pricing.DepositOverride(),
				TaxPct:          pricing.TaxPct(),
			},
			config.C().Catalog.DefaultTerm(),
		)
	}

	return d.service
}

func (d *di) CatalogHandler(ctx context.Context) CatalogHandler {
	if d.handler == nil {
		h, err := cli.NewCatalogHandler(d.CatalogService(ctx), d.out, d.format)
		if err != nil {
			panic(fmt.Sprintf("failed to create catalog handler: %v\n", err))
		}
		d.handler = h
	}

	return d.handler
}
