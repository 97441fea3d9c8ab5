package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Dispatch errors
const (
	// ErrCodeUnknownCommand indicates the command name is not registered.
	ErrCodeUnknownCommand ErrorCode = "UNKNOWN_COMMAND"
	// ErrCodeUsage indicates the invocation itself is malformed (e.g. no command).
	ErrCodeUsage ErrorCode = "USAGE"
	// ErrCodeMissingDependency indicates a command needs a capability that is
	// not available in this runtime.
	ErrCodeMissingDependency ErrorCode = "MISSING_DEPENDENCY"
)

// Input errors
const (
	// ErrCodeParse indicates a data line could not be converted to a number.
	ErrCodeParse ErrorCode = "PARSE_ERROR"
	// ErrCodeEmptyInput indicates an aggregate received no values.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"
	// ErrCodeInvalidInput indicates an argument or setting is out of range.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeRange indicates the data spans a range that cannot be binned.
	ErrCodeRange ErrorCode = "RANGE_ERROR"
)

// Runtime errors
const (
	// ErrCodeIO indicates a source could not be opened or read.
	ErrCodeIO ErrorCode = "IO_ERROR"
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var usageCodes = map[ErrorCode]bool{
	ErrCodeUnknownCommand: true,
	ErrCodeUsage:          true,
	ErrCodeInvalidInput:   true,
}

// ShowsUsage returns true if errors with this code should be reported
// together with the usage text.
func ShowsUsage(code ErrorCode) bool {
	return usageCodes[code]
}
