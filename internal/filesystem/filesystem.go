// Package filesystem implements the retrieval of filesystem metadata and the
// traversal of directory trees. All operations are read-only and synchronous.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	ReadDir(name string) ([]os.DirEntry, error)
}

type unixProvider interface {
	Lstat(path string, stat *unix.Stat_t) error
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
