// Package errors defines the typed errors surfaced by atomkit. None of them
// are fatal: parse and validation errors abort loading a theme file, and
// rule errors become helper text under an input field.
package errors

import (
	"fmt"
)

// ParseError represents a theme file parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures theme configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuleError is a user-visible input rule violation. Its message is rendered
// verbatim as helper text under the offending field, so it is phrased for
// end users rather than developers.
type RuleError struct {
	Message string
}

// NewRuleError constructs a RuleError with a formatted user-facing message.
func NewRuleError(format string, args ...any) error {
	return &RuleError{Message: fmt.Sprintf(format, args...)}
}

func (e *RuleError) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

// ThemeNotFoundError reports a request for a theme name that is neither
// built in nor present on disk.
type ThemeNotFoundError struct {
	Name string
}

// NewThemeNotFoundError constructs a ThemeNotFoundError.
func NewThemeNotFoundError(name string) error {
	return &ThemeNotFoundError{Name: name}
}

func (e *ThemeNotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("theme not found: %s", e.Name)
}
