package filesystem

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAccessible occurs when the metadata of a path cannot be
	// retrieved, e.g. because it does not exist or permission was denied.
	ErrNotAccessible = errors.New("path is not accessible")

	// ErrDirectoryOpenFailed occurs when the entries of a directory cannot be
	// listed.
	ErrDirectoryOpenFailed = errors.New("directory cannot be opened")
)

const (
	// OpMetadata is the [PathError] operation of a metadata retrieval.
	OpMetadata = "metadata"

	// OpOpenDir is the [PathError] operation of a directory listing.
	OpOpenDir = "opendir"
)

// PathError records a failed filesystem operation for a path. It matches
// [ErrNotAccessible] or [ErrDirectoryOpenFailed] (depending on the operation)
// when inspected with [errors.Is] and unwraps to the underlying system error.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	switch e.Op {
	case OpOpenDir:
		return fmt.Sprintf("unable to open directory %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("error getting file info for %s: %v", e.Path, e.Err)
	}
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Is(target error) bool {
	switch target {
	case ErrNotAccessible:
		return e.Op == OpMetadata
	case ErrDirectoryOpenFailed:
		return e.Op == OpOpenDir
	default:
		return false
	}
}
