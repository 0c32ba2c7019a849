package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/mcpreg/internal/client"
	"github.com/thoreinstein/mcpreg/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a schema version other than CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidAddr indicates an empty listen address.
	ErrInvalidAddr = errors.New("invalid listen address")

	// ErrNegativeTimeout indicates a negative server timeout.
	ErrNegativeTimeout = errors.New("timeout must not be negative")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, &FieldError{Field: "version", Value: fmt.Sprint(cfg.Version), Err: ErrUnsupportedVersion})
	}

	if strings.TrimSpace(cfg.Server.Addr) == "" {
		errs = append(errs, &FieldError{Field: "server.addr", Err: ErrInvalidAddr})
	}
	if cfg.Server.ReadTimeout < 0 {
		errs = append(errs, &FieldError{Field: "server.read_timeout", Value: cfg.Server.ReadTimeout.String(), Err: ErrNegativeTimeout})
	}
	if cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, &FieldError{Field: "server.shutdown_timeout", Value: cfg.Server.ShutdownTimeout.String(), Err: ErrNegativeTimeout})
	}

	if cfg.DefaultClient != "" {
		if _, ok := client.Lookup(cfg.DefaultClient); !ok {
			errs = append(errs, &FieldError{Field: "default_client", Value: cfg.DefaultClient, Err: errors.ErrUnknownClient})
		}
	}

	if err := validatePath(cfg.CatalogFile); err != nil {
		errs = append(errs, &FieldError{Field: "catalog_file", Value: cfg.CatalogFile, Err: err})
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}
	return nil
}

// FieldError reports an invalid value for a configuration key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
