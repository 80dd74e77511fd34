// Package errors provides a structured error type hierarchy for the freq CLI.
//
// This package defines base error types for common error conditions, wrapped
// error types that add contextual information, and helper functions for error
// wrapping and type checking.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - file or resource not found
//   - ErrInvalid - validation failed
//   - ErrUnknownFormat - history file format could not be classified
//   - ErrIO - file I/O error
//   - ErrCanceled - user canceled operation
//
// Wrapped error types (add context):
//   - ParseError{Path, Format, Err} - history parsing errors
//   - ExprError{Expr, Err} - date-range expression errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	// Use sentinel errors directly
//	return errors.ErrNotFound
//
//	// Wrap with context using Wrap
//	return errors.Wrap(err, "loadAliases")
//
//	// Use structured error types
//	return &errors.ExprError{Expr: "yesterweek", Err: errors.ErrInvalid}
//
//	// Check error types
//	if errors.IsInvalid(err) {
//	    // handle validation failure
//	}
package errors

import (
	"errors"
	"fmt"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a file or resource was not found.
	ErrNotFound = baseError("not found")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")

	// ErrUnknownFormat indicates a history file whose format could not be
	// classified; callers must not guess a parser for such files.
	ErrUnknownFormat = baseError("unknown history format")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrCanceled indicates the user canceled an operation.
	ErrCanceled = baseError("canceled")
)

// baseError is a string that implements error.
type baseError string

func (e baseError) Error() string { return string(e) }

// ParseError represents an error that occurred while reading or parsing a
// history file. Per-line corruption is never a ParseError; only file-level
// failures (unreadable file, unknown format) surface here.
type ParseError struct {
	// Path is the history file being parsed.
	Path string
	// Format is the detected or requested history format (optional).
	Format string
	// Err is the underlying error.
	Err error
}

func (e *ParseError) Error() string {
	if e.Format != "" {
		return fmt.Sprintf("parse %s (%s): %s", e.Path, e.Format, e.Err)
	}
	return fmt.Sprintf("parse %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ExprError represents an invalid date-range expression supplied by the user.
type ExprError struct {
	// Expr is the expression that failed to parse.
	Expr string
	// Err is the underlying error.
	Err error
}

func (e *ExprError) Error() string {
	return fmt.Sprintf("date expression %q: %s", e.Expr, e.Err)
}

func (e *ExprError) Unwrap() error { return e.Err }

// ConfigError represents an error related to configuration.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Wrap adds context to an error by wrapping it with an operation name.
// The returned error implements Unwrap() allowing errors.Is and errors.As
// to work with the wrapped error.
func Wrap(err error, op string) error {
	return &wrappedError{op: op, err: err}
}

// wrappedError is an error with an operation context.
type wrappedError struct {
	op  string
	err error
}

func (e *wrappedError) Error() string { return fmt.Sprintf("%s: %s", e.op, e.err) }
func (e *wrappedError) Unwrap() error { return e.err }

// IsNotFound reports whether err is or wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalid reports whether err is or wraps ErrInvalid.
func IsInvalid(err error) bool {
	return errors.Is(err, ErrInvalid)
}

// IsUnknownFormat reports whether err is or wraps ErrUnknownFormat.
func IsUnknownFormat(err error) bool {
	return errors.Is(err, ErrUnknownFormat)
}

// IsIO reports whether err is or wraps ErrIO.
func IsIO(err error) bool {
	return errors.Is(err, ErrIO)
}

// IsCanceled reports whether err is or wraps ErrCanceled.
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// AsParseError reports whether err can be typed as a *ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// AsExprError reports whether err can be typed as a *ExprError.
func AsExprError(err error) (*ExprError, bool) {
	var ee *ExprError
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// AsConfigError reports whether err can be typed as a *ConfigError.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
