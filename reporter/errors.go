// Package reporter contains the types used for routing lexical diagnostics
// to the calling program. The lexer itself is total and never fails;
// everything it cannot classify is surfaced both as an Error token in the
// stream and, when a handler is supplied, as an ErrorWithPos delivered here.
package reporter

import (
	"errors"
	"fmt"

	"github.com/pluglang/plugcompile/token"
)

// ErrInvalidSource is a sentinel error returned by Handler.Error when
// diagnostics were reported but the configured ErrorReporter swallowed all
// of them by returning nil.
var ErrInvalidSource = errors.New("lex failed: invalid plug source")

// ErrUnrecognizedByte is the underlying error of every diagnostic the lexer
// produces: a byte no lexical rule could classify. Use errors.Is to detect
// it regardless of the wrapping position and byte-value context.
var ErrUnrecognizedByte = errors.New("unrecognized byte")

// ErrorWithPos is an error about a Plug source file that carries the
// location in the file that caused it.
//
// The value of Error() contains both the position and the underlying
// message. The value of Unwrap() is only the underlying error.
type ErrorWithPos interface {
	error
	Position() token.SourcePos
	Unwrap() error
}

// Error wraps err with a source position.
func Error(pos token.SourcePos, err error) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: err}
}

// Errorf formats a new positioned error. The format specifier supports %w.
func Errorf(pos token.SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithPos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithPos struct {
	underlying error
	pos        token.SourcePos
}

func (e errorWithPos) Error() string {
	return fmt.Sprintf("%s: %v", e.pos, e.underlying)
}

func (e errorWithPos) Position() token.SourcePos {
	return e.pos
}

func (e errorWithPos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithPos{}
