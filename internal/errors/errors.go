package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Codes group failures for exit handling and --json output.
const (
	ErrConfig = "CONFIG"
	ErrRender = "RENDER"
	ErrExec   = "EXEC"
)

const failMark = "✗"

// Error is a failure the CLI can explain to the user. It prints as
//
//	✗ <message>
//
//	  <cause>
//
//	  <suggestion>
//
// with the cause and suggestion lines omitted when empty.
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates an Error without a cause.
func New(code, message, suggestion string) *Error {
	return &Error{Code: code, Message: message, Suggestion: suggestion}
}

// WrapWithCode attaches err as the cause of a new Error.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	e := New(code, message, suggestion)
	e.Cause = err
	return e
}

// Wrap adds context to err. A structured cause keeps its code and
// suggestion; anything else is filed under ErrExec.
func Wrap(err error, message string) *Error {
	code, suggestion := ErrExec, ""
	var inner *Error
	if errors.As(err, &inner) {
		code, suggestion = inner.Code, inner.Suggestion
	}
	return WrapWithCode(err, code, message, suggestion)
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", failMark, e.Message)

	var cause string
	if e.Cause != nil {
		cause = e.Cause.Error()
	}
	for _, detail := range []string{cause, e.Suggestion} {
		if detail != "" {
			fmt.Fprintf(&b, "\n  %s\n", detail)
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first Error in err's chain, or "" if
// there is none.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}
