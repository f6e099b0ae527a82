package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured means neither the remote store nor the local fallback
	// store is usable. This is a deployment problem, not a transient failure,
	// and callers must present it as such.
	ErrNotConfigured = errors.New("no storage backend is configured")

	// ErrClassExists is returned when a class id that is already in the
	// catalog is written again. There is no update-by-id path; records are
	// replaced by delete + create.
	ErrClassExists = errors.New("a class with this id already exists")

	// ErrAdminProtected is returned when a caller tries to revoke the
	// administrator email from the roster.
	ErrAdminProtected = errors.New("the administrator email cannot be revoked")
)

// RemoteError wraps a failure of the remote store. Every remote failure is
// terminal for its call; there are no retries.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
