package tools

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
)

// Error codes for MCP tool responses.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFetchError   = "FETCH_ERROR"
	ErrCodeTimeout      = "TIMEOUT"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// WrapFetchError converts a transport failure into a coded error,
// distinguishing timeouts from other fetch problems.
func WrapFetchError(err error) error {
	if err == nil {
		return nil
	}

	var coded *CodedError

	var netErr net.Error
	switch {
	case errors.As(err, &netErr) && netErr.Timeout():
		coded = &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	case strings.Contains(err.Error(), "context deadline exceeded"):
		coded = &CodedError{Code: ErrCodeTimeout, Message: "request timed out", Cause: err}
	default:
		coded = &CodedError{Code: ErrCodeFetchError, Message: err.Error(), Cause: err}
	}

	slog.Warn("fetch error",
		slog.String("code", coded.Code),
		slog.String("message", coded.Message),
	)

	return coded
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// ErrInputTooLarge creates an invalid input error for an oversized document.
func ErrInputTooLarge(got, limit int) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("input is %d bytes, which exceeds the %d byte limit", got, limit),
	}
}
