// Package format turns raw metadata fields into their display strings. All
// functions are total and return freshly allocated strings.
package format

import "github.com/desertwitch/inodeinfo/internal/schema"

// TypeLabel returns the descriptive label of a [schema.EntryType].
func TypeLabel(t schema.EntryType) string {
	switch t {
	case schema.Directory:
		return "directory"
	case schema.RegularFile:
		return "regular file"
	case schema.Symlink:
		return "symbolic link"
	case schema.CharDevice:
		return "character device"
	case schema.BlockDevice:
		return "block device"
	case schema.FIFO:
		return "FIFO"
	case schema.Socket:
		return "socket"
	default:
		return "unknown"
	}
}
