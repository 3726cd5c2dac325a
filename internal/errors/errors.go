// Package errors is the error toolkit for adapters and workers: pkg/errors
// stack traces, Join, and a transient marker that tells a queue consumer a
// failure is worth redelivering.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

func New(text string) error     { return stderrors.New(text) }
func Is(err, target error) bool { return stderrors.Is(err, target) }

// Join keeps every joined error matchable with Is.
func Join(errs ...error) error { return stderrors.Join(errs...) }

func Wrap(err error, message string) error { return pkgerrors.Wrap(err, message) }

func Wrapf(err error, format string, args ...any) error {
	return pkgerrors.Wrapf(err, format, args...)
}

func WithStack(err error) error { return pkgerrors.WithStack(err) }

type transientError struct {
	err error
}

func (e *transientError) Error() string { return "transient: " + e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

// Transient marks err as temporary. Nil stays nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}

	return &transientError{err: err}
}

// IsTransient reports whether any error in err's chain was marked Transient.
func IsTransient(err error) bool {
	var t *transientError

	return stderrors.As(err, &t)
}
