package format

import (
	"fmt"
	"strconv"
)

const (
	kibibyte = 1 << 10
	mebibyte = 1 << 20
	gibibyte = 1 << 30
)

// Size returns the byte count as a decimal integer or, when human is set,
// scaled to the largest fitting binary unit ("1.50 KB", "2.00 GB") with
// counts below one KB rendered as "N bytes".
func Size(size int64, human bool) string {
	if !human {
		return strconv.FormatInt(size, 10)
	}

	switch {
	case size >= gibibyte:
		return fmt.Sprintf("%.2f GB", float64(size)/gibibyte)
	case size >= mebibyte:
		return fmt.Sprintf("%.2f MB", float64(size)/mebibyte)
	case size >= kibibyte:
		return fmt.Sprintf("%.2f KB", float64(size)/kibibyte)
	default:
		return strconv.FormatInt(size, 10) + " bytes"
	}
}
