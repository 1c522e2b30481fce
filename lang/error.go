package lang

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// Errors returned by this package derive from one of these and can be tested
// with [errors.Is].
var (
	ErrParse             = NewError("parse error")
	ErrReadInput         = NewError("failed to read input")
	ErrInvalidName       = NewError("invalid name")
	ErrUnsupportedType   = NewError("unsupported type")
	ErrUndefinedConstant = NewError("undefined constant reference")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	base  *Error      // Sentinel this error derives from
	msg   string      // Base message
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
//
// Attributes are appended as "key=value" pairs so that the message printed by
// a command-line front end names the offending identifier, type, or
// reference.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg
		if detail := e.detail(); detail != "" {
			msg += " (" + detail + ")"
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) detail() string {
	part := make([]string, 0, len(e.attrs))

	for _, a := range e.attrs {
		part = append(part, a.Key+"="+a.Value.String())
	}

	return strings.Join(part, ", ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether e derives from target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

// Attr returns the value of the attribute with the given key.
func (e *Error) Attr(key string) (slog.Value, bool) {
	for _, a := range e.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}

	return slog.Value{}, false
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		base:  e.root(),
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		base:  e.root(),
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

func (e *Error) root() *Error {
	if e.base != nil {
		return e.base
	}

	return e
}

// invalidName returns an [ErrInvalidName] naming the offending identifier.
func invalidName(name string) *Error {
	return ErrInvalidName.With(slog.String("name", name))
}

// unsupportedType returns an [ErrUnsupportedType] naming the offending type.
func unsupportedType(typ string) *Error {
	return ErrUnsupportedType.With(slog.String("type", typ))
}

// undefinedConstant returns an [ErrUndefinedConstant] naming the reference.
func undefinedConstant(ref string) *Error {
	return ErrUndefinedConstant.With(slog.String("reference", ref))
}
