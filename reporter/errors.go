package reporter

import (
	"errors"
	"fmt"

	"github.com/minic-lang/minic/ast"
)

// ErrInvalidSource is a sentinel error returned when lowering fails but
// the configured ErrorReporter swallowed every reported error.
var ErrInvalidSource = errors.New("lowering failed: invalid MiniC source")

// ErrorWithPos is an error about a MiniC compilation unit that includes
// the location that caused it.
//
// The value of Error() contains both the position and the underlying
// error. The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() ast.SourcePos
	Unwrap() error
}

// Error attaches a position to err.
func Error(pos ast.SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a formatted error at the given position.
func Errorf(pos ast.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        ast.SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithSourcePos) GetPosition() ast.SourcePos {
	return e.pos
}

func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
