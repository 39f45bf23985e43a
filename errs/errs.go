// Package errs defines the closed set of error kinds the interpreter can
// raise. Every statement that fails aborts with exactly one of these kinds,
// reported through the REPL's write_line collaborator as a single
// "Error: <message>" line.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the closed set of error categories a statement can fail with.
type Kind int

const (
	Lex Kind = iota
	Parse
	Name
	Type
	Shape
	Domain
	Unsupported
)

func (k Kind) String() string {
	switch k {
	case Lex:
		return "LexError"
	case Parse:
		return "ParseError"
	case Name:
		return "NameError"
	case Type:
		return "TypeError"
	case Shape:
		return "ShapeError"
	case Domain:
		return "DomainError"
	case Unsupported:
		return "UnsupportedError"
	}
	return "Error"
}

// Error is the interpreter's error type: a kind plus a message, optionally
// wrapping a lower-level cause. It satisfies the standard error interface
// so it can be raised with panic and recovered at the statement boundary,
// following the teacher's value.Error/value.Errorf pattern.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an Error of the given kind.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind around a lower-level cause,
// using github.com/pkg/errors so the cause carries a stack trace distinct
// from the one panic/recover would otherwise discard.
func Wrap(cause error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Cause: errors.WithStack(cause)}
}

// Raise panics with a new Error of the given kind. Evaluation code calls
// this instead of returning (err, ok) pairs through every recursive call;
// the panic is recovered once, at the statement boundary in package repl,
// exactly where the teacher's run.Run recovers value.Error.
func Raise(kind Kind, format string, args ...interface{}) {
	panic(New(kind, format, args...))
}

// RaiseWrap panics with an Error of the given kind wrapping cause.
func RaiseWrap(cause error, kind Kind, format string, args ...interface{}) {
	panic(Wrap(cause, kind, format, args...))
}
