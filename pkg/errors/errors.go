package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors, fatal before any scanning begins
	ErrUsage       ErrorCode = "USAGE"
	ErrPathMissing ErrorCode = "PATH_MISSING"
	ErrNoPatterns  ErrorCode = "NO_PATTERNS"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Per-file errors, never fatal to a run
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCopy   ErrorCode = "FILE_COPY"

	// Output errors
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"
)

// Exit codes reported by the CLI. Zero matches is not an error and exits 0.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitPathMissing = 2
	ExitNoPatterns  = 3
)

// HarvestError represents a structured error with code and details
type HarvestError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HarvestError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

// Unwrap implements the errors.Unwrap interface
func (e *HarvestError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HarvestError) Is(target error) bool {
	var targetErr *HarvestError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HarvestError with the given code and message
func New(code ErrorCode, message string) *HarvestError {
	return &HarvestError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HarvestError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HarvestError {
	return &HarvestError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HarvestError
func Wrap(err error, code ErrorCode, message string) *HarvestError {
	if err == nil {
		return nil
	}
	return &HarvestError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HarvestError {
	if err == nil {
		return nil
	}
	return &HarvestError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error and returns it for chaining
func (e *HarvestError) WithDetail(key string, value interface{}) *HarvestError {
	e.Details[key] = value
	return e
}

// CodeOf returns the error code of err, or ErrUnknown for plain errors
func CodeOf(err error) ErrorCode {
	var he *HarvestError
	if errors.As(err, &he) {
		return he.Code
	}
	return ErrUnknown
}

// ExitCode maps an error to the process exit code the CLI reports.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	switch CodeOf(err) {
	case ErrPathMissing:
		return ExitPathMissing
	case ErrNoPatterns:
		return ExitNoPatterns
	default:
		return ExitUsage
	}
}
