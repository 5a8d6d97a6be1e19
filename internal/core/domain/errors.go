package domain

import "fmt"

// ValidationError signals malformed input to a builder method or a violated
// publication invariant. Not retried automatically.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

// NewValidationError builds a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ConfigurationError signals missing setup: credentials, builder
// preconditions, unreadable catalog data. Fatal to the current operation.
type ConfigurationError struct {
	Reason string
	Cause  error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration: %s: %v", e.Reason, e.Cause)
	}
	return "configuration: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error { return e.Cause }

// NewConfigurationError builds a ConfigurationError without a cause.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

// GenerationError signals a failed generation backend call or backend output
// violating the delimiter/emptiness contract. Platform is empty when the
// error is raised below the use-case boundary.
type GenerationError struct {
	Platform Platform
	Reason   string
	Cause    error
}

func (e *GenerationError) Error() string {
	msg := "generation"
	if e.Platform != "" {
		msg += " (" + string(e.Platform) + ")"
	}
	msg += ": " + e.Reason
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// ContentTooLongError is returned when the bounded regeneration loop could
// not produce content within the platform ceiling.
type ContentTooLongError struct {
	Platform Platform
	Length   int
	Limit    int
	Attempts int
}

func (e *ContentTooLongError) Error() string {
	return fmt.Sprintf("content too long for %s: %d chars over a %d limit after %d attempts",
		e.Platform, e.Length, e.Limit, e.Attempts)
}

// PostError signals a failure while publishing to one platform's API.
type PostError struct {
	Platform Platform
	Reason   string
	Cause    error
}

func (e *PostError) Error() string {
	msg := fmt.Sprintf("post (%s): %s", e.Platform, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *PostError) Unwrap() error { return e.Cause }
