package conf

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes configuration errors.
type ErrorCode string

const (
	// CodeSyntax indicates a malformed filter expression or value token.
	CodeSyntax ErrorCode = "SYNTAX"

	// CodeReference indicates an unresolved output name or an exhausted
	// capacity bound.
	CodeReference ErrorCode = "REFERENCE"

	// CodeStructural indicates a wrong first-output or first-context name.
	CodeStructural ErrorCode = "STRUCTURAL"

	// CodeIO indicates the configuration source could not be read.
	CodeIO ErrorCode = "IO"
)

// Error is a configuration error with enough context to locate the faulty
// line: the group it occurred in, the key, and the offending value.
//
// Out-of-range sizes and rotation counts are deliberately NOT errors: they
// are logged and clamped in place so a bad limit never takes the daemon's
// logging down with it.
type Error struct {
	Code    ErrorCode
	Group   string
	Key     string
	Value   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Group != "" {
		loc := e.Group
		if e.Key != "" {
			loc += "." + e.Key
		}
		msg = fmt.Sprintf("[%s] %s: %s", e.Code, loc, e.Message)
	}
	if e.Value != "" {
		msg += fmt.Sprintf(" (value %q)", e.Value)
	}
	return msg
}

// IsSyntax reports whether err is a configuration syntax error.
// Uses errors.As to handle wrapped errors.
func IsSyntax(err error) bool {
	return hasCode(err, CodeSyntax)
}

// IsReference reports whether err is an unresolved-reference or capacity
// error.
func IsReference(err error) bool {
	return hasCode(err, CodeReference)
}

// IsStructural reports whether err is a structural error (wrong mandatory
// first output or first context).
func IsStructural(err error) bool {
	return hasCode(err, CodeStructural)
}

// IsIO reports whether err is a configuration-source read error.
func IsIO(err error) bool {
	return hasCode(err, CodeIO)
}

func hasCode(err error, code ErrorCode) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

func syntaxError(group, key, value, message string) *Error {
	return &Error{Code: CodeSyntax, Group: group, Key: key, Value: value, Message: message}
}

func referenceError(group, key, value, message string) *Error {
	return &Error{Code: CodeReference, Group: group, Key: key, Value: value, Message: message}
}

func structuralError(group, message string) *Error {
	return &Error{Code: CodeStructural, Group: group, Message: message}
}
