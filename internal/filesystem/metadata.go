package filesystem

import (
	"github.com/desertwitch/inodeinfo/internal/schema"
	"golang.org/x/sys/unix"
)

const (
	unixBasePerms = 0o777
)

// GetMetadata returns a freshly read [schema.Metadata] for a path. Symbolic
// links are described themselves, their targets are never followed. Any
// failure is returned as a [PathError] matching [ErrNotAccessible].
func (f *Handler) GetMetadata(path string) (*schema.Metadata, error) {
	var stat unix.Stat_t

	if err := f.unixHandler.Lstat(path, &stat); err != nil {
		return nil, &PathError{Op: OpMetadata, Path: path, Err: err}
	}

	metadata := &schema.Metadata{
		Path:       path,
		Inode:      stat.Ino,
		Type:       schema.EntryTypeFromMode(stat.Mode),
		Perms:      stat.Mode & unixBasePerms,
		Links:      uint64(stat.Nlink), //nolint:unconvert
		UID:        stat.Uid,
		GID:        stat.Gid,
		Size:       stat.Size,
		AccessedAt: int64(stat.Atim.Sec), //nolint:unconvert
		ModifiedAt: int64(stat.Mtim.Sec), //nolint:unconvert
		ChangedAt:  int64(stat.Ctim.Sec), //nolint:unconvert
	}

	return metadata, nil
}
