package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/you-humble/phone-rent/internal/config"
	"github.com/you-humble/phone-rent/internal/transport/cli"
	"github.com/you-humble/phone-rent/platform/closer"
	"github.com/you-humble/phone-rent/platform/logger"
)

const prompt = "phonerent> "

type Options struct {
	// Output format: table, json or yaml.
	Format string
	// Command to run once; empty starts the interactive shell.
	Args []string

	In  io.Reader
	Out io.Writer
	// Where user-facing error messages go in one-shot mode.
	Err io.Writer
}

type app struct {
	opts      Options
	di        *di
	sessionID string
}

func New(ctx context.Context, opts Options) (*app, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}

	a := &app{opts: opts}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

// Run executes the requested command, or the shell when there is none.
// The catalog is loaded before any command runs.
func (a *app) Run(ctx context.Context) error {
	return a.run(logger.WithSessionID(ctx, a.sessionID))
}

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initSession,
		a.initDI,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	if err := logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	); err != nil {
		return err
	}

	closer.AddNamed("Logger", func(context.Context) error {
		_ = logger.Sync()
		return nil
	})
	return nil
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	return nil
}

func (a *app) initSession(_ context.Context) error {
	a.sessionID = uuid.NewString()
	return nil
}

func (a *app) initDI(_ context.Context) error {
	if _, err := cli.ParseFormat(a.opts.Format); err != nil {
		return err
	}

	a.di = NewDI(a.opts.Out, a.opts.Format)
	return nil
}

func (a *app) run(ctx context.Context) error {
	svc := a.di.CatalogService(ctx)
	handler := a.di.CatalogHandler(ctx)

	logger.Info(ctx, "📦 loading catalog", logger.String("source", config.C().Catalog.DataSourceURL()))
	if err := svc.Load(ctx); err != nil {
		// The session still starts; views report the catalog as unavailable.
		logger.Warn(ctx, "catalog unavailable", logger.ErrorF(err))
	}

	if len(a.opts.Args) > 0 {
		err := handler.Execute(ctx, a.opts.Args)
		if err != nil && !errors.Is(err, cli.ErrQuit) {
			_, _ = io.WriteString(a.opts.Err, handler.Message(ctx, err)+"\n")
			return err
		}
		return nil
	}

	logger.Info(ctx, "🚀 shell started")
	return handler.Shell(ctx, a.opts.In, prompt)
}
