package errors

import "fmt"

// Error is the concrete error value raised throughout the interpreter.
// It is never used to carry control-flow signals (see package signal).
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Loc     Location
}

func (e *Error) Error() string {
	if e.Loc.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Kind, e.Message)
}

// WithLocation returns a copy of e with Loc set, unless e already carries a
// location — matching §6's "if absent when caught at a statement boundary,
// populate from the current AST node before re-raising".
func (e *Error) WithLocation(loc Location) *Error {
	if !e.Loc.IsZero() {
		return e
	}
	cp := *e
	cp.Loc = loc
	return &cp
}

func newf(kind Kind, code, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewInterpreterException builds a generic InterpreterException.
func NewInterpreterException(code, format string, args ...any) *Error {
	return newf(KindInterpreter, code, format, args...)
}

// NewInvalidCode builds an InvalidCode error.
func NewInvalidCode(code, format string, args ...any) *Error {
	return newf(KindInvalidCode, code, format, args...)
}

// NewInvalidArguments builds an InvalidArguments error.
func NewInvalidArguments(code, format string, args ...any) *Error {
	return newf(KindInvalidArguments, code, format, args...)
}

// As extracts the *Error from err by a direct type assertion, since this
// package owns the only error type the interpreter raises. It does not
// unwrap: an *Error wrapped inside another error is not found.
func As(err error) (*Error, bool) {
	e, ok := err.(*Error)
	return e, ok
}

// Is reports whether err is an *Error of the given Kind.
func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// WithLocationIfMissing annotates err with loc if err is an *Error without
// one; non-*Error values are returned unchanged (the evaluator only ever
// raises *Error, but this keeps the statement boundary re-raise path total).
func WithLocationIfMissing(err error, loc Location) error {
	if err == nil {
		return nil
	}
	if e, ok := As(err); ok {
		return e.WithLocation(loc)
	}
	return err
}
