package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrRemoteCallFailed is the sentinel wrapped by RemoteError.
var ErrRemoteCallFailed = errors.New("remote call failed")

// RemoteError reports a failed call to an upstream service. Message carries the
// human readable text supplied by the upstream, when it supplied one.
type RemoteError struct {
	Operation  string
	StatusCode int
	Message    string
	Cause      error
}

// NewRemoteError creates a RemoteError for a response the upstream answered with an error status.
func NewRemoteError(operation string, statusCode int, message string) *RemoteError {
	return &RemoteError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
	}
}

// NewRemoteErrorWithCause creates a RemoteError for a call that never produced a response.
func NewRemoteErrorWithCause(operation string, cause error) *RemoteError {
	return &RemoteError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *RemoteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrRemoteCallFailed, e.Operation, e.Cause)
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s returned %d: %s", ErrRemoteCallFailed, e.Operation, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s returned %d", ErrRemoteCallFailed, e.Operation, e.StatusCode)
}

func (e *RemoteError) Unwrap() error {
	return ErrRemoteCallFailed
}

// ServerMessage returns the upstream-supplied message carried by err, or "" if there is none.
func ServerMessage(err error) string {
	var remote *RemoteError
	if errors.As(err, &remote) {
		return remote.Message
	}
	return ""
}

// IsAuthorization reports whether err is an upstream 401 or 403 answer.
func IsAuthorization(err error) bool {
	var remote *RemoteError
	if !errors.As(err, &remote) {
		return false
	}
	return remote.StatusCode == http.StatusUnauthorized || remote.StatusCode == http.StatusForbidden
}
