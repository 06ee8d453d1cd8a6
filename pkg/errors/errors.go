// Package errors provides coded errors for the CLI and the HTTP API.
//
// The core packages return plain typed errors (see package floor). At the
// boundaries those are turned into an [*Error] carrying a machine-readable
// [Code] with [Classify], which the server maps to status codes and the CLI
// to messages.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidInput, "empty hall id at position %d", i)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    // ...
//	}
//
//	coded := errors.Classify(routeErr) // UNREACHABLE, UNKNOWN_HALL, ...
package errors

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/hallway/pkg/floor"
)

// Code is a machine-readable error code.
type Code string

const (
	// Input errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPlan   Code = "INVALID_PLAN"

	// Routing errors
	ErrCodeUnknownHall Code = "UNKNOWN_HALL"
	ErrCodeUnreachable Code = "UNREACHABLE"
	ErrCodeNotFound    Code = "NOT_FOUND"

	ErrCodeTimeout  Code = "TIMEOUT"
	ErrCodeCanceled Code = "CANCELED"
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is an error with a code and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain has the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode returns the code of the first *Error in err's chain, or "".
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix. Classified
// errors carry the core error's text as their message.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Classify attaches a code to err based on the core error it wraps. Errors
// that already carry a code are returned unchanged; nil stays nil.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var coded *Error
	if errors.As(err, &coded) {
		return err
	}

	var (
		inconsistent *floor.InconsistentGraphError
		overlapping  *floor.OverlappingNodesError
		unknown      *floor.UnknownNodeError
		unreachable  *floor.UnreachableError
	)
	code := ErrCodeInternal
	switch {
	case errors.As(err, &inconsistent), errors.As(err, &overlapping),
		errors.Is(err, floor.ErrEmptyID), errors.Is(err, floor.ErrDuplicateNode):
		code = ErrCodeInvalidPlan
	case errors.As(err, &unknown):
		code = ErrCodeUnknownHall
	case errors.As(err, &unreachable):
		code = ErrCodeUnreachable
	case errors.Is(err, floor.ErrUnknownFloor):
		code = ErrCodeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		code = ErrCodeTimeout
	case errors.Is(err, context.Canceled):
		code = ErrCodeCanceled
	}
	return &Error{Code: code, Message: err.Error(), Cause: err}
}
