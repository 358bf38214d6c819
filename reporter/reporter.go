// Package reporter contains the types used for reporting errors from the
// MiniC lowering stage. A Handler is passed into the stage's entry points
// and collects the first error encountered; a caller-supplied Reporter can
// observe errors as they happen.
package reporter

import (
	"sync"

	"github.com/minic-lang/minic/ast"
)

// ErrorReporter is responsible for reporting the given error. The error it
// returns (usually the one it was given) is what aborts the lowering; if
// it returns nil the lowering of the current compilation unit still stops,
// since a fatal condition leaves nothing to build, but the batch-level
// result becomes the ErrInvalidSource sentinel.
type ErrorReporter func(err ErrorWithPos) error

// Reporter receives errors as the lowering encounters them.
type Reporter interface {
	Error(ErrorWithPos) error
}

// NewReporter wraps a reporting function as a Reporter. A nil function
// yields a reporter that fails on the first error.
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

// Handler wraps a Reporter and tracks whether any error has been reported.
// One Handler may be shared by concurrent lowerings of independent
// compilation units; the first error reported wins.
type Handler struct {
	reporter Reporter

	mu           sync.Mutex
	errsReported bool
	err          error
}

// NewHandler creates a Handler for the given Reporter. A nil Reporter
// means lowering fails on the first error encountered.
func NewHandler(rep Reporter) *Handler {
	if rep == nil {
		rep = NewReporter(nil)
	}
	return &Handler{reporter: rep}
}

// HandleErrorf reports a formatted error at the given position. It returns
// the error that should abort the lowering, or nil if the reporter chose
// to swallow it.
func (h *Handler) HandleErrorf(pos ast.SourcePos, format string, args ...any) error {
	return h.HandleError(Errorf(pos, format, args...))
}

// HandleError routes err through the reporter, recording that an error was
// reported. If an error was already recorded, that earlier error is
// returned unchanged.
func (h *Handler) HandleError(err ErrorWithPos) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.err != nil {
		return h.err
	}
	h.errsReported = true
	h.err = h.reporter.Error(err)
	return h.err
}

// Error returns the error that should be surfaced to the caller once
// lowering finishes. If errors were reported but the reporter swallowed
// them all, ErrInvalidSource is returned so a failed lowering can never
// masquerade as a successful one.
func (h *Handler) Error() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.errsReported && h.err == nil {
		return ErrInvalidSource
	}
	return h.err
}
