// Package errors is the error toolkit of the infrastructure layer. Matching
// goes through the standard library; every constructor records a stack trace
// through pkg/errors so that 5xx logs point at the failing call site.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// Join keeps every non-nil error reachable for Is and As.
func Join(errs ...error) error {
	return stderrors.Join(errs...)
}

// New returns a stack-annotated error.
func New(text string) error {
	return pkgerrors.New(text)
}

// Wrap annotates err with message and a stack trace. It returns nil for a nil err.
func Wrap(err error, message string) error {
	return pkgerrors.Wrap(err, message)
}

// Wrapf is Wrap with a format specifier.
func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with a stack trace only.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}
