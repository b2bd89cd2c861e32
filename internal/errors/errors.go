// Package errors defines stable error codes for all bndx failure modes.
// Internal packages return these; the CLI layer is the only place that
// renders them and chooses a process exit code.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure mode with a stable string value
type ErrorCode string

const (
	// WorkspaceNotFound indicates the bnd workspace root is missing or not a directory
	WorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"
	// EclipseWorkspaceNotFound indicates the eclipse workspace is missing or not a directory
	EclipseWorkspaceNotFound ErrorCode = "ECLIPSE_WORKSPACE_NOT_FOUND"
	// ProjectsMetadataUnreadable indicates the eclipse .projects metadata dir is missing or unreadable
	ProjectsMetadataUnreadable ErrorCode = "PROJECTS_METADATA_UNREADABLE"
	// ProjectNotFound indicates a queried project has no bnd descriptor
	ProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"
	// DescriptorUnreadable indicates an I/O failure reading a bnd.bnd or bnd.overrides file
	DescriptorUnreadable ErrorCode = "DESCRIPTOR_UNREADABLE"
	// BadPattern indicates a glob pattern that cannot be compiled
	BadPattern ErrorCode = "BAD_PATTERN"
)

// Error is a coded bndx error
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	cause   error
}

// New creates a coded error
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a coded error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a coded error around an underlying cause
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// CodeOf extracts the error code from err, or empty string if err carries none
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries the given code
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}
