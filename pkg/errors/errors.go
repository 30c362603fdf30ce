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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Help record errors
	ErrMissingField ErrorCode = "MISSING_FIELD"
	ErrInvalidField ErrorCode = "INVALID_FIELD"

	// Store errors
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrRecordDecode    ErrorCode = "RECORD_DECODE"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Editor errors
	ErrEditorNotSet   ErrorCode = "EDITOR_NOT_SET"
	ErrEditorNotFound ErrorCode = "EDITOR_NOT_FOUND"
	ErrEditorFailed   ErrorCode = "EDITOR_FAILED"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// HelpexError represents a structured error with code and details
type HelpexError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HelpexError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HelpexError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a HelpexError with the same code
func (e *HelpexError) Is(target error) bool {
	var targetErr *HelpexError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HelpexError with the given code and message
func New(code ErrorCode, message string) *HelpexError {
	return &HelpexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HelpexError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HelpexError {
	return &HelpexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HelpexError
func Wrap(err error, code ErrorCode, message string) *HelpexError {
	if err == nil {
		return nil
	}
	return &HelpexError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HelpexError {
	if err == nil {
		return nil
	}
	return &HelpexError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HelpexError) WithDetail(key string, value interface{}) *HelpexError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var helpexErr *HelpexError
	if errors.As(err, &helpexErr) {
		return helpexErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HelpexError
func GetErrorCode(err error) ErrorCode {
	var helpexErr *HelpexError
	if errors.As(err, &helpexErr) {
		return helpexErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HelpexError
func GetErrorDetails(err error) map[string]interface{} {
	var helpexErr *HelpexError
	if errors.As(err, &helpexErr) {
		return helpexErr.Details
	}
	return nil
}

// DetailString returns the string detail stored under key, or "" when the
// error carries no such detail.
func DetailString(err error, key string) string {
	details := GetErrorDetails(err)
	if details == nil {
		return ""
	}
	s, _ := details[key].(string)
	return s
}
