package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type namedFunc struct {
	name string
	fn   func(ctx context.Context) error
}

type closer struct {
	mu     sync.Mutex
	funcs  []namedFunc
	logger Logger
}

var global = New()

func New() *closer { return &closer{} }

func SetLogger(l Logger) { global.SetLogger(l) }

func AddNamed(name string, fn func(ctx context.Context) error) { global.AddNamed(name, fn) }

func CloseAll(ctx context.Context) error { return global.CloseAll(ctx) }

func (c *closer) SetLogger(l Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = l
}

func (c *closer) AddNamed(name string, fn func(ctx context.Context) error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.funcs = append(c.funcs, namedFunc{name: name, fn: fn})
}

// CloseAll runs the registered functions in reverse order of registration.
// Every function runs even if an earlier one fails; the errors are joined.
func (c *closer) CloseAll(ctx context.Context) error {
	c.mu.Lock()
	funcs := c.funcs
	c.funcs = nil
	log := c.logger
	c.mu.Unlock()

	var errs []error
	for i := len(funcs) - 1; i >= 0; i-- {
		f := funcs[i]
		if err := f.fn(ctx); err != nil {
			if log != nil {
				log.Error(ctx, "close failed", zap.String("name", f.name), zap.Error(err))
			}
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		if log != nil {
			log.Info(ctx, "closed", zap.String("name", f.name))
		}
	}

	return errors.Join(errs...)
}
