package render

import (
	"fmt"
	"io"
)

func encodeText(w io.Writer, doc document, color bool) {
	label := func(s string) string {
		if color {
			return labelStyle.Render(s)
		}

		return s
	}

	fmt.Fprintf(w, "%s %s:\n", label("Information for"), doc.FilePath)
	fmt.Fprintf(w, "%s %d\n", label("File Inode:"), doc.Inode.Number)
	fmt.Fprintf(w, "%s %s\n", label("File Type:"), doc.Inode.Type)
	fmt.Fprintf(w, "%s %s\n", label("Permissions:"), doc.Inode.Permissions)
	fmt.Fprintf(w, "%s %d\n", label("Number of Hard Links:"), doc.Inode.LinkCount)
	fmt.Fprintf(w, "%s %d\n", label("Owner UID:"), doc.Inode.UID)
	fmt.Fprintf(w, "%s %d\n", label("Group GID:"), doc.Inode.GID)
	fmt.Fprintf(w, "%s %s\n", label("File Size:"), doc.Inode.Size)
	fmt.Fprintf(w, "%s %s\n", label("Last Access Time:"), doc.Inode.AccessTime)
	fmt.Fprintf(w, "%s %s\n", label("Last Modification Time:"), doc.Inode.ModificationTime)
	fmt.Fprintf(w, "%s %s\n", label("Last Status Change Time:"), doc.Inode.StatusChangeTime)
}
