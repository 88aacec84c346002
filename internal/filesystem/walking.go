package filesystem

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/desertwitch/inodeinfo/internal/schema"
)

// EmitFunc receives the [schema.Metadata] of every entry that was read during
// a walk. Any returned error aborts the walk.
type EmitFunc func(m *schema.Metadata) error

// WalkStats summarizes a completed walk.
type WalkStats struct {
	Visited uint64
	Skipped uint64
	Bytes   uint64
}

// Walk emits the metadata of every entry of a directory, excluding the
// directory itself. With [schema.RenderOptions.Recursive] set, the walk
// descends depth-first into each subdirectory right after emitting it.
//
// Only a failure to list the given directory itself is returned (as a
// [PathError] matching [ErrDirectoryOpenFailed]). Entries whose metadata
// cannot be read and nested directories that cannot be listed are logged and
// skipped. An error returned by emit aborts the walk and is returned.
func (f *Handler) Walk(dir string, opts schema.RenderOptions, emit EmitFunc) (WalkStats, error) {
	var stats WalkStats

	names, err := f.listDir(dir)
	if err != nil {
		return stats, err
	}

	if err := f.walkEntries(dir, names, opts, emit, &stats); err != nil {
		return stats, err
	}

	return stats, nil
}

func (f *Handler) walkDir(dir string, opts schema.RenderOptions, emit EmitFunc, stats *WalkStats) error {
	names, err := f.listDir(dir)
	if err != nil {
		slog.Warn("Failure listing directory during walking of directory tree (was skipped)",
			"path", dir,
			"err", err,
		)
		stats.Skipped++

		return nil
	}

	return f.walkEntries(dir, names, opts, emit, stats)
}

func (f *Handler) walkEntries(dir string, names []string, opts schema.RenderOptions, emit EmitFunc, stats *WalkStats) error {
	for _, name := range names {
		path := joinPath(dir, name)

		metadata, err := f.GetMetadata(path)
		if err != nil {
			slog.Warn("Failure for path during walking of directory tree (was skipped)",
				"path", path,
				"err", err,
			)
			stats.Skipped++

			continue
		}

		if err := emit(metadata); err != nil {
			return fmt.Errorf("(fs-walk) failed to emit %s: %w", path, err)
		}

		stats.Visited++
		if metadata.Type == schema.RegularFile && metadata.Size > 0 {
			stats.Bytes += uint64(metadata.Size)
		}

		if opts.Recursive && metadata.IsDir() {
			if err := f.walkDir(path, opts, emit, stats); err != nil {
				return err
			}
		}
	}

	return nil
}

// listDir returns the entry names of a directory, without the "." and ".."
// pseudo-entries, in the order the listing primitive yields them.
func (f *Handler) listDir(dir string) ([]string, error) {
	entries, err := f.osHandler.ReadDir(dir)
	if err != nil {
		return nil, &PathError{Op: OpOpenDir, Path: dir, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if name := e.Name(); name != "." && name != ".." {
			names = append(names, name)
		}
	}

	return names, nil
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}

	return dir + "/" + name
}
