package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds reported by repository operations. Match them with errors.Is.
var (
	// ErrAuthentication indicates the credentials were missing, malformed or rejected
	ErrAuthentication = errors.New("storage: authentication failed")

	// ErrResourceNotFound indicates the requested key does not exist in the container
	ErrResourceNotFound = errors.New("storage: resource not found")

	// ErrTransferFailed indicates an upload, download or metadata call failed
	ErrTransferFailed = errors.New("storage: transfer failed")

	// ErrStorageList indicates a prefix listing could not be fetched
	ErrStorageList = errors.New("storage: listing failed")

	// ErrNotConnected indicates the connection was already closed
	ErrNotConnected = errors.New("storage: not connected")

	// ErrInvalidPath indicates a local path or key could not be mapped
	ErrInvalidPath = errors.New("storage: invalid path")
)

// Error carries the kind of a failed repository operation along with the
// container and key involved. The SDK error that caused it stays reachable
// through Unwrap.
type Error struct {
	Kind      error  // One of the Err* kinds above
	Op        string // Operation that failed
	Container string // Container the operation was bound to
	Key       string // Remote key or local path involved
	Err       error  // Underlying error
}

// Error returns the string representation of the error
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	if e.Key != "" {
		fmt.Fprintf(&b, " %q", e.Key)
	}
	if e.Container != "" {
		fmt.Fprintf(&b, " in container %q", e.Container)
	}
	if e.Kind != nil {
		fmt.Fprintf(&b, ": %v", e.Kind)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error
func (e *Error) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

// NewError creates a new storage error of the given kind
func NewError(kind error, op, container, key string, err error) error {
	return &Error{
		Kind:      kind,
		Op:        op,
		Container: container,
		Key:       key,
		Err:       err,
	}
}

// IsAuthentication checks if an error is an authentication error
func IsAuthentication(err error) bool {
	return errors.Is(err, ErrAuthentication)
}

// IsResourceNotFound checks if an error is a resource not found error
func IsResourceNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}

// IsTransferFailed checks if an error is a transfer error
func IsTransferFailed(err error) bool {
	return errors.Is(err, ErrTransferFailed)
}

// IsStorageList checks if an error is a listing error
func IsStorageList(err error) bool {
	return errors.Is(err, ErrStorageList)
}

// IsNotConnected checks if an error was caused by using a closed connection
func IsNotConnected(err error) bool {
	return errors.Is(err, ErrNotConnected)
}

// IsInvalidPath checks if an error is an invalid path error
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}
