package scope

import (
	"errors"
	"fmt"
	"io/fs"
)

// Code identifies a class of gateway failure.
type Code string

const (
	CodeAccessDenied        Code = "access_denied"
	CodeNotFound            Code = "not_found"
	CodeNotAFile            Code = "not_a_file"
	CodeNotADirectory       Code = "not_a_directory"
	CodeDisallowedExtension Code = "disallowed_extension"
	CodePermissionDenied    Code = "permission_denied"
	CodeIOError             Code = "io_error"
)

// Error is a classified failure carrying the taxonomy code and a
// human-readable reason. It is returned as a structured result across the
// service boundary, never thrown as an unstructured fault.
type Error struct {
	Code   Code
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// Errorf builds a classified error.
func Errorf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// Classify maps an OS-level error onto the gateway taxonomy.
func Classify(err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Errorf(CodeNotFound, "%v", err)
	case errors.Is(err, fs.ErrPermission):
		return Errorf(CodePermissionDenied, "%v", err)
	default:
		return Errorf(CodeIOError, "%v", err)
	}
}

// CodeOf extracts the failure code from an error, defaulting to io_error for
// anything outside the taxonomy.
func CodeOf(err error) Code {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Code
	}
	return CodeIOError
}
