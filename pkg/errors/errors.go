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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnsupported  ErrorCode = "UNSUPPORTED"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigValid    ErrorCode = "CONFIG_INVALID"
	ErrMetadataParse  ErrorCode = "METADATA_PARSE"
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"

	// Bundle errors
	ErrBundleNotFound ErrorCode = "BUNDLE_NOT_FOUND"
	ErrBundleRead     ErrorCode = "BUNDLE_READ"

	// Overwrite policy errors
	ErrConflict         ErrorCode = "CONFLICT"
	ErrOverwriteRefused ErrorCode = "OVERWRITE_REFUSED"

	// FileSystem errors
	ErrFileRead    ErrorCode = "FILE_READ"
	ErrFileWrite   ErrorCode = "FILE_WRITE"
	ErrFileRemove  ErrorCode = "FILE_REMOVE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
	ErrPathInvalid ErrorCode = "PATH_INVALID"
)

// StampError represents a structured error with code and details
type StampError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StampError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StampError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *StampError) Is(target error) bool {
	var targetErr *StampError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StampError with the given code and message
func New(code ErrorCode, message string) *StampError {
	return &StampError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StampError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StampError {
	return &StampError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StampError
func Wrap(err error, code ErrorCode, message string) *StampError {
	if err == nil {
		return nil
	}
	return &StampError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StampError {
	if err == nil {
		return nil
	}
	return &StampError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StampError) WithDetail(key string, value interface{}) *StampError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *StampError) WithDetails(details map[string]interface{}) *StampError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithPath records the filesystem path an error is about.
// I/O failures always carry it so the user can find the offending entry.
func (e *StampError) WithPath(path string) *StampError {
	return e.WithDetail("path", path)
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stampErr *StampError
	if errors.As(err, &stampErr) {
		return stampErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StampError
func GetErrorCode(err error) ErrorCode {
	var stampErr *StampError
	if errors.As(err, &stampErr) {
		return stampErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StampError
func GetErrorDetails(err error) map[string]interface{} {
	var stampErr *StampError
	if errors.As(err, &stampErr) {
		return stampErr.Details
	}
	return nil
}
