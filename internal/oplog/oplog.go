// Package oplog appends completed operations to a plain-text log file, one
// line per operation in the form "[Mon Jan  2 15:04:05 2006] description".
package oplog

import (
	"fmt"
	"os"
	"time"
)

const logFilePerms = 0o644

// Append appends a line for the operation to the log file, creating the file
// if it does not exist.
func Append(logFile string, operation string) error {
	return appendAt(logFile, operation, time.Now())
}

func appendAt(logFile string, operation string, at time.Time) error {
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerms)
	if err != nil {
		return fmt.Errorf("(oplog) failed to open log file %s: %w", logFile, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", at.Format(time.ANSIC), operation); err != nil {
		return fmt.Errorf("(oplog) failed to write log file %s: %w", logFile, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("(oplog) failed to close log file %s: %w", logFile, err)
	}

	return nil
}
