// Package logging provides structured logging for mcpreg using slog.
//
// Terminal output goes through [Handler], a compact colorized text handler
// that respects NO_COLOR and TERM=dumb. JSON output uses the standard
// library handler. [MultiHandler] combines the two when --log-file is set.
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("listening", "addr", ":8080")
//
// The web server logs each request with a "status" attribute; the text
// handler colors it by class (2xx green, 4xx yellow, 5xx red).
//
// For tests, use [ForTest] to route output through t.Log.
package logging
