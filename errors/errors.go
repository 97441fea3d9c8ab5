package errors

import (
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// UnknownCommand creates a new AppError for a command name missing from the registry.
func UnknownCommand(name string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("Command not found: %s", name),
		Details: map[string]any{"command": name},
	}
}

// Usage creates a new AppError for a malformed invocation.
func Usage(reason string) *AppError {
	return &AppError{Code: ErrCodeUsage, Message: reason}
}

// MissingDependency creates a new AppError for a command whose required
// capability is unavailable.
func MissingDependency(capability, command string) *AppError {
	return &AppError{
		Code:    ErrCodeMissingDependency,
		Message: fmt.Sprintf("%s needed to run '%s'", capability, command),
		Details: map[string]any{"capability": capability, "command": command},
	}
}

// ParseError creates a new AppError for a line that is not a number.
// line is 1-based; source is the file name or "-" for standard input.
func ParseError(source string, line int, text string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("could not convert %q to a number (%s:%d)", text, source, line),
		Details: map[string]any{"source": source, "line": line, "text": text},
		Cause:   cause,
	}
}

// EmptyInput creates a new AppError for an aggregate that received no values.
func EmptyInput(operation string) *AppError {
	return &AppError{
		Code: ErrCodeEmptyInput, Message: fmt.Sprintf("%s() arg is an empty sequence", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InvalidInput creates a new AppError for an out-of-range argument or setting.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: details,
	}
}

// NonFiniteRange creates a new AppError for a sample whose range is not
// finite, either because it holds inf or nan or because hi-lo overflows.
func NonFiniteRange(operation string, lo, hi float64) *AppError {
	return &AppError{
		Code:    ErrCodeRange,
		Message: fmt.Sprintf("%s() autodetected range of [%g, %g] is not finite", operation, lo, hi),
		Details: map[string]any{"operation": operation},
	}
}

// Validation creates a new AppError for struct validation errors.
func Validation(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Message: message}
}

// ReadFailed creates a new AppError for a source that could not be opened or read.
func ReadFailed(source string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeIO, Message: fmt.Sprintf("cannot read %s", source),
		Details: map[string]any{"source": source}, Cause: cause,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "an unexpected error occurred",
		Cause: cause,
	}
}
