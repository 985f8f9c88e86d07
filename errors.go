package rnav

import (
	"errors"
	"fmt"
)

// Sentinel errors for recognized navigation outcomes.
var (
	// ErrNavigationCanceled indicates a navigation was deliberately denied
	// (requested key not admitted by the guarded resolver). This is flow
	// control, not an infrastructure failure: the host aborts activation of
	// the target view and runs the recovery policy.
	ErrNavigationCanceled = errors.New("navigation canceled")
)

// IsCanceled reports whether an error is the recognized admission-denial
// signal, as opposed to a generic resolution fault.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrNavigationCanceled)
}

// ConfigError reports a startup misconfiguration (e.g. no fallback route).
// These are fatal at construction or Ready time, never at navigation time.
type ConfigError struct {
	Field string // configuration field at fault
	Err   error  // underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rnav config: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("rnav config: %s", e.Field)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// IsConfigError checks if an error is a configuration error.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
