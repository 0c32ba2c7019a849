// Package errors provides error handling conventions for the mcpreg CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. Wrapping helpers delegate to
// github.com/cockroachdb/errors so every wrapped error carries a stack.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrIntegrationNotFound) {
//	    // render the fallback view
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown integration, bad flag, configuration)
//   - ExitSystem (2): System-related error (I/O, listener, clipboard)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional suggestion:
//
//	err := errors.NewUserError(errors.ErrUnknownTab, "Valid tabs: overview, tools, api")
//	os.Exit(errors.ExitCode(err))
package errors
