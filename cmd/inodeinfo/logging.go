package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var logLevel = new(slog.LevelVar)

// setupLogging installs the default logger. Diagnostics go to stderr only, as
// stdout is reserved for the rendered output.
func setupLogging(w io.Writer) {
	logLevel.Set(slog.LevelInfo)

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setLogLevel(name string) error {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return fmt.Errorf("(logging) invalid log level %q: %w", name, err)
	}
	logLevel.Set(level)

	return nil
}
