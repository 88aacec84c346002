package format

import "github.com/desertwitch/inodeinfo/internal/schema"

const permChars = "rwxrwxrwx"

func typeGlyph(t schema.EntryType) byte {
	switch t {
	case schema.Directory:
		return 'd'
	case schema.Symlink:
		return 'l'
	case schema.RegularFile:
		return '-'
	case schema.CharDevice:
		return 'c'
	case schema.BlockDevice:
		return 'b'
	case schema.FIFO:
		return 'p'
	case schema.Socket:
		return 's'
	default:
		return '?'
	}
}

// Permissions returns the 10-character "ls -l" style permission string, such
// as "drwxr-xr-x". Bits outside of the base permissions are ignored.
func Permissions(t schema.EntryType, perms uint32) string {
	buf := make([]byte, 0, len(permChars)+1)
	buf = append(buf, typeGlyph(t))

	for i := 0; i < len(permChars); i++ {
		if perms&(1<<uint(len(permChars)-1-i)) != 0 {
			buf = append(buf, permChars[i])
		} else {
			buf = append(buf, '-')
		}
	}

	return string(buf)
}
