// Package failure defines the error kinds the converter reports to users.
//
// Errors of these kinds are expected: they describe bad invocations, bad input
// files or infeasible chart settings, and are reported as plain messages.
// Anything else reaching the top level is treated as an internal failure.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds.
var (
	ErrUsage     = errors.New("usage error")
	ErrInputFile = errors.New("input file error")
	ErrParse     = errors.New("parse error")
	ErrLayout    = errors.New("layout error")
	ErrConfig    = errors.New("config error")
)

// Error is a user-facing error. Details holds every individual problem when
// more than one was found (parse and layout errors collect them all).
type Error struct {
	Kind    error
	Msg     string
	Details []string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if len(e.Details) > 0 {
		return strings.Join(e.Details, "; ")
	}
	return e.Kind.Error()
}

func (e *Error) Unwrap() error { return e.Kind }

// New returns an Error of the given kind with a formatted message.
func New(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Collect returns nil when details is empty, otherwise an Error carrying all
// of them under msg.
func Collect(kind error, msg string, details []string) error {
	if len(details) == 0 {
		return nil
	}
	return &Error{Kind: kind, Msg: msg, Details: details}
}

// IsKnown reports whether err is (or wraps) a user-facing Error.
func IsKnown(err error) bool {
	var fe *Error
	return errors.As(err, &fe)
}
