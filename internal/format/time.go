package format

import (
	"strconv"
	"time"
)

// TimeLayout is the layout of human-readable timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// Time returns the seconds since epoch as a decimal integer or, when human is
// set, as a calendar time in the local time zone (see [TimeLayout]).
func Time(sec int64, human bool) string {
	if !human {
		return strconv.FormatInt(sec, 10)
	}

	return time.Unix(sec, 0).In(time.Local).Format(TimeLayout)
}
