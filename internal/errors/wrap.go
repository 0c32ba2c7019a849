package errors

import "github.com/cockroachdb/errors"

// New returns an error with the supplied message and a stack trace.
func New(msg string) error {
	return errors.NewWithDepth(1, msg)
}

// Newf formats an error message and records a stack trace.
func Newf(format string, args ...any) error {
	return errors.NewWithDepthf(1, format, args...)
}

// Wrap annotates err with msg. A nil err yields nil.
func Wrap(err error, msg string) error {
	return errors.WrapWithDepth(1, err, msg)
}

// Wrapf annotates err with a formatted message. A nil err yields nil.
func Wrapf(err error, format string, args ...any) error {
	return errors.WrapWithDepthf(1, err, format, args...)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join combines errs into a single error, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Mark wraps err so that Is(err, reference) holds without changing its message.
func Mark(err, reference error) error {
	return errors.Mark(err, reference)
}
