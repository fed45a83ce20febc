package fileserver

import "errors"

// Error categories for the file operations. Each operation handles its
// errors locally and converts them to a status report; none of these is
// ever fatal to the process.
var (
	// ErrNotFound covers both an unopenable resolved path and a name
	// missing from the registry.
	ErrNotFound = errors.New("does not exist")

	// ErrPermissionDenied is the access control refusal.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIO wraps failures reported by the underlying filesystem calls.
	ErrIO = errors.New("i/o failure")
)
