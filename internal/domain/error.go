package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure so callers can react to the kind of
// error without parsing rendered messages.
type ErrorCode string

const (
	CodeConfiguration   ErrorCode = "CONFIGURATION"
	CodeUnauthenticated ErrorCode = "UNAUTHENTICATED"
	CodeUpstream        ErrorCode = "UPSTREAM"
	CodeTransport       ErrorCode = "TRANSPORT"
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeInternal        ErrorCode = "INTERNAL"
)

// Error is the tagged error carried across package boundaries. Tool
// handlers render it as plain text for the MCP caller; tests assert on
// the code.
type Error struct {
	Code    ErrorCode
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	switch {
	case e.Op == "" && msg == "":
		return string(e.Code)
	case e.Op == "":
		return msg
	case msg == "":
		return fmt.Sprintf("%s: %s", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// E builds a tagged error. An empty message falls back to the cause's
// message.
func E(code ErrorCode, op, msg string, cause error) *Error {
	if msg == "" && cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Code:    code,
		Op:      op,
		Message: msg,
		Cause:   cause,
	}
}

// Wrap tags err with code unless it already carries a tag.
func Wrap(code ErrorCode, op string, err error) *Error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}
	return E(code, op, "", err)
}

// CodeFrom extracts the code from a tagged error.
func CodeFrom(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var tagged *Error
	if errors.As(err, &tagged) && tagged.Code != "" {
		return tagged.Code, true
	}
	return "", false
}
