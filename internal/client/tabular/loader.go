package tabular

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/you-humble/phone-rent/internal/model"
	"github.com/you-humble/phone-rent/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...logger.Field)
	Warn(ctx context.Context, msg string, fields ...logger.Field)
}

type loader struct {
	primary  Source
	fallback Source
	log      Logger
}

// NewLoader reads primary and, if that fails for any reason, fallback.
// fallback may be nil.
func NewLoader(primary, fallback Source, log Logger) *loader {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &loader{primary: primary, fallback: fallback, log: log}
}

// Load makes one attempt at the primary source and at most one at the
// fallback. No retries.
func (l *loader) Load(ctx context.Context) ([]model.RawRow, error) {
	const op = "tabular.Load"

	rows, primaryErr := readAndParse(ctx, l.primary)
	if primaryErr == nil {
		l.log.Info(ctx, "catalog loaded from primary source", logger.Int("rows", len(rows)))
		return rows, nil
	}

	l.log.Warn(ctx, "primary source failed, trying embedded fallback", logger.ErrorF(primaryErr))

	if l.fallback == nil {
		return nil, fmt.Errorf("%s: %w: no fallback source: %w", op, model.ErrDataUnavailable, primaryErr)
	}

	text, err := l.fallback.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrDataUnavailable, errors.Join(primaryErr, err))
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%s: %w: fallback is empty: %w", op, model.ErrDataUnavailable, primaryErr)
	}

	rows, err = ParseCSV(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, model.ErrDataUnavailable, errors.Join(primaryErr, err))
	}

	l.log.Info(ctx, "catalog loaded from fallback source", logger.Int("rows", len(rows)))
	return rows, nil
}

func readAndParse(ctx context.Context, src Source) ([]model.RawRow, error) {
	if src == nil {
		return nil, errors.New("no primary source")
	}
	text, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	return ParseCSV(text)
}
