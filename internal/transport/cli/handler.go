package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/you-humble/phone-rent/internal/model"
	"github.com/you-humble/phone-rent/platform/logger"
)

// ErrQuit is returned by Execute for the quit and exit commands.
var ErrQuit = errors.New("quit")

type CatalogService interface {
	Load(ctx context.Context) error
	Available() bool
	Home(ctx context.Context) model.HomeView
	Suggest(ctx context.Context, partial string) []string
	Results(ctx context.Context, q model.ResultsQuery) model.ResultsView
	Detail(ctx context.Context, key model.ItemKey) (*model.DetailView, error)
	AddToCompare(ctx context.Context, key model.ItemKey) error
	Compare(ctx context.Context) model.CompareView
	CompareCount() int
	Term() int
	SetTerm(term int) error
	Settings() model.Settings
	SetCurrency(symbol string)
	SetMarginOverride(pct *float64) error
	SetDepositOverride(pct *float64) error
	SetTaxPct(pct float64) error
}

type handler struct {
	svc      CatalogService
	out      io.Writer
	render   renderer
	commands []command

	// Keys of the most recent results listing, addressed as #1, #2, ...
	lastRows []model.ItemKey
}

func NewCatalogHandler(svc CatalogService, out io.Writer, format string) (*handler, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	h := &handler{svc: svc, out: out, render: newRenderer(f)}
	h.commands = h.commandTable()
	return h, nil
}

// Execute runs one command. args[0] is the command name.
func (h *handler) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	for _, c := range h.commands {
		if c.name == name || c.alias == name {
			logger.Debug(ctx, "command", logger.String("name", c.name), logger.Strings("args", args[1:]))
			return c.run(ctx, args[1:])
		}
	}

	return usageErrorf("Unknown command %q. Type help for the list of commands.", args[0])
}

// Shell reads commands line by line until in is exhausted, ctx is done or
// the user quits. Command errors are reported and do not end the session.
func (h *handler) Shell(ctx context.Context, in io.Reader, prompt string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, scanErr := scanLines(ctx, in)

	for {
		if prompt != "" {
			_, _ = fmt.Fprint(h.out, prompt)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			line = l
		}

		err := h.Execute(ctx, strings.Fields(line))
		switch {
		case err == nil:
		case errors.Is(err, ErrQuit):
			return nil
		default:
			logger.Debug(ctx, "command failed", logger.ErrorF(err))
			_, _ = fmt.Fprintln(h.out, h.Message(ctx, err))
		}
	}
}

// scanLines feeds the lines of in to a channel until in ends or ctx is done.
func scanLines(ctx context.Context, in io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- sc.Err()
	}()

	return lines, errc
}

// Message turns a command error into the text shown to the user.
func (h *handler) Message(ctx context.Context, err error) string {
	var ue *usageError

	switch {
	case errors.Is(err, model.ErrItemNotFound), errors.Is(err, model.ErrInvalidKey):
		return "Item not found."
	case errors.Is(err, model.ErrCapacityExceeded):
		return fmt.Sprintf("You can compare at most %d items.", h.svc.Compare(ctx).Capacity)
	case errors.Is(err, model.ErrDataUnavailable):
		return "Catalog data is unavailable."
	case errors.Is(err, model.ErrInvalidTerm):
		return fmt.Sprintf("Term must be between %d and %d months.", model.MinTerm, model.MaxTerm)
	case errors.As(err, &ue):
		return ue.msg
	case errors.Is(err, model.ErrInvalidArgument):
		return "Invalid value."
	default:
		return "Error: " + err.Error()
	}
}

// usageError carries a message meant for the user verbatim.
type usageError struct {
	msg string
}

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func (e *usageError) Error() string { return e.msg }

func (e *usageError) Is(target error) bool { return target == model.ErrInvalidArgument }
