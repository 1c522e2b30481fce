package cmd

import (
	"log/slog"
	"strings"
)

// Error represents a CLI command error with structured logging support.
type Error struct {
	base  *Error
	msg   string
	err   error
	attrs []slog.Attr
}

func NewError(msg string) *Error {
	return &Error{msg: msg}
}

func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg> (<attrs>): <err>" // base and wrapped error both set
	//   2. "<msg> (<attrs>)"        // wrapped error is nil
	//   3. "<err>"                  // base error message is empty
	//   4. ""                       // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		msg := e.msg

		if len(e.attrs) > 0 {
			kv := make([]string, 0, len(e.attrs))
			for _, a := range e.attrs {
				kv = append(kv, a.Key+"="+a.Value.String())
			}

			msg += " (" + strings.Join(kv, ", ") + ")"
		}

		part = append(part, msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether e derives from target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e == t || (e.base != nil && e.base == t)
}

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

var (
	ErrOpenInput     = NewError("open input")
	ErrWriteOutput   = NewError("write output")
	ErrInvalidFormat = NewError("invalid format")
	ErrWriteConfig   = NewError("write configuration file")
	ErrFileExists    = NewError("file exists (use --force to overwrite)")
)
