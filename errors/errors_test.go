package errors

import (
	stderrors "errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeParse, "bad line")
	if err.Code != ErrCodeParse {
		t.Errorf("expected code %s, got %s", ErrCodeParse, err.Code)
	}
	if err.Message != "bad line" {
		t.Errorf("expected message 'bad line', got %q", err.Message)
	}
}

func TestAppError_UnknownCommand_Success(t *testing.T) {
	err := UnknownCommand("frobnicate")
	if err.Code != ErrCodeUnknownCommand {
		t.Errorf("expected UNKNOWN_COMMAND, got %s", err.Code)
	}
	if !strings.Contains(err.Message, "Command not found: frobnicate") {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Details["command"] != "frobnicate" {
		t.Errorf("expected command=frobnicate, got %v", err.Details["command"])
	}
}

func TestAppError_ParseError_Success(t *testing.T) {
	cause := fmt.Errorf("invalid syntax")
	err := ParseError("data.txt", 3, "abc", cause)
	if err.Code != ErrCodeParse {
		t.Errorf("expected PARSE_ERROR, got %s", err.Code)
	}
	if err.Details["line"] != 3 {
		t.Errorf("expected line=3, got %v", err.Details["line"])
	}
	if !strings.Contains(err.Message, "data.txt:3") {
		t.Errorf("expected position in message, got %q", err.Message)
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected cause to be reachable through Unwrap")
	}
}

func TestAppError_MissingDependency_Success(t *testing.T) {
	err := MissingDependency("statistics backend", "median")
	if err.Code != ErrCodeMissingDependency {
		t.Errorf("expected MISSING_DEPENDENCY, got %s", err.Code)
	}
	if err.Message != "statistics backend needed to run 'median'" {
		t.Errorf("unexpected message %q", err.Message)
	}
}

func TestAppError_InvalidInput_EmptyField(t *testing.T) {
	err := InvalidInput("", "bad")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_NonFiniteRange(t *testing.T) {
	err := NonFiniteRange("hist", 1, math.Inf(1))
	if err.Message != "hist() autodetected range of [1, +Inf] is not finite" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if ShowsUsage(err.Code) {
		t.Error("a data range error must not print usage")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := Usage("missing command").WithDetail("argc", 1)
	if err.Details["argc"] != 1 {
		t.Errorf("expected argc=1, got %v", err.Details["argc"])
	}
}

func TestAppError_Error_Format(t *testing.T) {
	err := EmptyInput("min")
	if got := err.Error(); got != "EMPTY_INPUT: min() arg is an empty sequence" {
		t.Errorf("unexpected format %q", got)
	}
	withCause := ReadFailed("x.gz", fmt.Errorf("gzip: invalid header"))
	if !strings.Contains(withCause.Error(), "(cause: gzip: invalid header)") {
		t.Errorf("expected cause in message, got %q", withCause.Error())
	}
}

func TestAppError_Constructors_Table(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code ErrorCode
	}{
		{"UnknownCommand", UnknownCommand("x"), ErrCodeUnknownCommand},
		{"Usage", Usage("no command"), ErrCodeUsage},
		{"MissingDependency", MissingDependency("stats", "hist"), ErrCodeMissingDependency},
		{"ParseError", ParseError("-", 1, "x", nil), ErrCodeParse},
		{"EmptyInput", EmptyInput("max"), ErrCodeEmptyInput},
		{"InvalidInput", InvalidInput("bin_count", "must be positive"), ErrCodeInvalidInput},
		{"NonFiniteRange", NonFiniteRange("hist", math.NaN(), math.NaN()), ErrCodeRange},
		{"Validation", Validation("hist.bins: is required"), ErrCodeInvalidInput},
		{"ReadFailed", ReadFailed("a.txt", nil), ErrCodeIO},
		{"Internal", Internal(nil), ErrCodeInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Code != tc.code {
				t.Errorf("expected %s, got %s", tc.code, tc.err.Code)
			}
		})
	}
}

func TestErrorCode_ShowsUsage_Table(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeUnknownCommand, true},
		{ErrCodeUsage, true},
		{ErrCodeInvalidInput, true},
		{ErrCodeParse, false},
		{ErrCodeEmptyInput, false},
		{ErrCodeRange, false},
		{ErrCodeMissingDependency, false},
		{ErrCodeIO, false},
		{ErrCodeInternal, false},
	}
	for _, tc := range tests {
		if got := ShowsUsage(tc.code); got != tc.want {
			t.Errorf("ShowsUsage(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestAppError_AsAppError_Success(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", EmptyInput("max"))
	got, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to succeed for wrapped AppError")
	}
	if got.Code != ErrCodeEmptyInput {
		t.Errorf("expected EMPTY_INPUT, got %s", got.Code)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to return false for non-AppError")
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", UnknownCommand("nope"))
	if !IsCode(err, ErrCodeUnknownCommand) {
		t.Error("expected IsCode to match wrapped code")
	}
	if IsCode(err, ErrCodeParse) {
		t.Error("expected IsCode to reject other codes")
	}
	if IsCode(fmt.Errorf("plain"), ErrCodeInternal) {
		t.Error("expected IsCode to reject plain errors")
	}
}

func TestWrap_NilReturnsNil(t *testing.T) {
	if Wrap(nil) != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrap_AppErrorPassthrough(t *testing.T) {
	orig := EmptyInput("min")
	if got := Wrap(orig); got != orig {
		t.Error("Wrap should return the original AppError unchanged")
	}
}

func TestWrap_PlainError(t *testing.T) {
	plain := fmt.Errorf("something broke")
	got := Wrap(plain)
	if got.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", got.Code)
	}
	if got.Cause != plain {
		t.Error("expected cause to be the original error")
	}
}
