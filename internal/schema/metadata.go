package schema

import "golang.org/x/sys/unix"

// EntryType is the classification of a filesystem entry, as derived from the
// type bits of its mode.
type EntryType int

const (
	Unknown EntryType = iota
	Directory
	RegularFile
	Symlink
	CharDevice
	BlockDevice
	FIFO
	Socket
)

// EntryTypeFromMode classifies a raw (Unix) mode by its [unix.S_IFMT] bits.
// Exactly one case can match; anything else is [Unknown].
func EntryTypeFromMode(mode uint32) EntryType {
	switch mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return Directory
	case unix.S_IFREG:
		return RegularFile
	case unix.S_IFLNK:
		return Symlink
	case unix.S_IFCHR:
		return CharDevice
	case unix.S_IFBLK:
		return BlockDevice
	case unix.S_IFIFO:
		return FIFO
	case unix.S_IFSOCK:
		return Socket
	default:
		return Unknown
	}
}

// Metadata is a snapshot of a filesystem entry's metadata at the time it was
// read. It is never modified after creation.
type Metadata struct {
	Path       string
	Inode      uint64
	Type       EntryType
	Perms      uint32
	Links      uint64
	UID        uint32
	GID        uint32
	Size       int64
	AccessedAt int64
	ModifiedAt int64
	ChangedAt  int64
}

// IsDir reports whether the [Metadata] describes a directory.
func (m *Metadata) IsDir() bool {
	return m.Type == Directory
}
