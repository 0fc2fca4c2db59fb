package pathway

import (
	"errors"
	"fmt"
)

// Error conventions:
//
//   - Sentinel errors (errors.New) for well-known, stable conditions that
//     callers check with errors.Is().
//   - Structured error types for context-rich errors that carry additional
//     fields. Each type implements Error() and Is(), plus Unwrap() when it
//     wraps another error.
//   - fmt.Errorf with %w for ad-hoc wrapping.

// Common sentinel errors.
var (
	// ErrFrozen is returned by registration calls after the router has
	// been frozen by Service or Freeze.
	ErrFrozen = errors.New("router is frozen")
)

// ConfigurationError reports an invalid route registration: a malformed
// pattern, a non-terminal wildcard, a duplicate parameter name, or a
// duplicate pattern. It is surfaced synchronously at registration and the
// offending route is never added.
type ConfigurationError struct {
	Method  string
	Pattern string
	Reason  string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Method != "" {
		return fmt.Sprintf("invalid route %s %q: %s", e.Method, e.Pattern, e.Reason)
	}
	return fmt.Sprintf("invalid route pattern %q: %s", e.Pattern, e.Reason)
}

// Is checks if the error matches the target.
func (e *ConfigurationError) Is(target error) bool {
	_, ok := target.(*ConfigurationError)
	return ok
}

// newConfigurationError creates a ConfigurationError for a pattern.
func newConfigurationError(pattern, reason string) *ConfigurationError {
	return &ConfigurationError{Pattern: pattern, Reason: reason}
}
