package reporter

import (
	"sync"

	"github.com/pluglang/plugcompile/token"
)

// ErrorReporter is responsible for reporting the given diagnostic. If the
// reporter returns a non-nil error, the handler latches it and drops all
// subsequent diagnostics; returning nil keeps the handler open so that as
// many diagnostics as possible are collected. The lexer's token stream is
// unaffected either way.
type ErrorReporter func(err ErrorWithPos) error

// Reporter receives diagnostics from a Handler.
type Reporter interface {
	Error(ErrorWithPos) error
}

// NewReporter wraps a function as a Reporter.
func NewReporter(errs ErrorReporter) Reporter {
	return reporterFunc{errs: errs}
}

type reporterFunc struct {
	errs ErrorReporter
}

func (r reporterFunc) Error(err ErrorWithPos) error {
	if r.errs == nil {
		return err
	}
	return r.errs(err)
}

// Handler delivers diagnostics to a Reporter and aggregates the outcome. It
// is safe for concurrent use, though a single lexer invocation only ever
// reports from one goroutine.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported int
	err          error
}

// NewHandler creates a new Handler. If rep is nil, the handler latches on
// the first diagnostic it receives.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleError delivers the given diagnostic to the reporter. Once the
// reporter has returned a non-nil error, subsequent diagnostics are dropped
// and that same error is returned.
func (h *Handler) HandleError(err ErrorWithPos) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported++
	h.err = h.reporter.Error(err)
	return h.err
}

// HandleErrorf formats a positioned diagnostic and delivers it as
// HandleError does.
func (h *Handler) HandleErrorf(pos token.SourcePos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// Error returns the outcome of handling: nil if no diagnostics were
// reported, the reporter's error if it aborted, or ErrInvalidSource if
// diagnostics were reported but the reporter swallowed them all.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported > 0 && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}

// ReporterError returns the error returned by the configured reporter, if it
// ever aborted, and nil otherwise.
func (h *Handler) ReporterError() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.err
}

// ErrorCount returns the number of diagnostics delivered to the reporter so
// far. Diagnostics dropped after the reporter aborted are not counted.
func (h *Handler) ErrorCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.errsReported
}
