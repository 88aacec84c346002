package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/inodeinfo/internal/configuration"
	"github.com/desertwitch/inodeinfo/internal/filesystem"
	"github.com/desertwitch/inodeinfo/internal/oplog"
	"github.com/desertwitch/inodeinfo/internal/render"
	"github.com/desertwitch/inodeinfo/internal/schema"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

const completedOperation = "Completed operation"

type App struct {
	fsHandler     *filesystem.Handler
	configHandler *configuration.Handler
	stdout        io.Writer
}

func NewApp(fsHandler *filesystem.Handler, configHandler *configuration.Handler, stdout io.Writer) *App {
	return &App{
		fsHandler:     fsHandler,
		configHandler: configHandler,
		stdout:        stdout,
	}
}

// resolveSettings merges the configuration file defaults into the options.
// Flags given on the command line always take precedence.
func (app *App) resolveSettings(cmd *cobra.Command, o *cliOptions) error {
	configFile := o.configFile
	if configFile == "" {
		configFile = os.Getenv(configuration.EnvConfigFile)
	}

	var files []string
	if configFile != "" {
		files = append(files, configFile)
	}

	settings, err := app.configHandler.ReadSettings(files...)
	if err != nil {
		return fmt.Errorf("(app-config) %w", err)
	}

	flags := cmd.Flags()
	if !flags.Changed("format") && settings.Format != "" {
		o.format = settings.Format
	}
	if !flags.Changed("human") && settings.Human {
		o.human = true
	}
	if !flags.Changed("recursive") && settings.Recursive {
		o.recursive = true
	}
	if !flags.Changed("color") && settings.Color {
		o.color = true
	}
	if !flags.Changed("log") && settings.LogFile != "" {
		o.logFile = settings.LogFile
	}

	switch {
	case o.verbose:
		logLevel.Set(slog.LevelDebug)
	case settings.LogLevel != "":
		if err := setLogLevel(settings.LogLevel); err != nil {
			return fmt.Errorf("(app-config) %w", err)
		}
	}

	return nil
}

func (app *App) Launch(o cliOptions) error {
	encoding, err := schema.ParseEncoding(o.format)
	if err != nil {
		return fmt.Errorf("(app) %w", err)
	}

	opts := schema.RenderOptions{
		Encoding:      encoding,
		HumanReadable: o.human,
		Recursive:     o.recursive,
		Color:         o.color,
	}
	renderer := render.NewRenderer(app.stdout, opts)

	if o.filePath != "" {
		if err := app.inspectFile(o.filePath, renderer); err != nil {
			return fmt.Errorf("(app) %w", err)
		}
	} else {
		if err := app.inspectDirectory(o.dirPath, opts, renderer); err != nil {
			return fmt.Errorf("(app) %w", err)
		}
	}

	if o.logFile != "" {
		if err := oplog.Append(o.logFile, completedOperation); err != nil {
			return fmt.Errorf("(app) %w", err)
		}
	}

	return nil
}

func (app *App) inspectFile(path string, renderer *render.Renderer) error {
	metadata, err := app.fsHandler.GetMetadata(path)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return renderer.Render(metadata) //nolint:wrapcheck
}

func (app *App) inspectDirectory(path string, opts schema.RenderOptions, renderer *render.Renderer) error {
	stats, err := app.fsHandler.Walk(path, opts, renderer.Render)
	if err != nil {
		return err //nolint:wrapcheck
	}

	slog.Debug("Traversal of directory tree completed.",
		"path", path,
		"recursive", opts.Recursive,
		"visited", humanize.Comma(int64(stats.Visited)),
		"skipped", humanize.Comma(int64(stats.Skipped)),
		"size", humanize.IBytes(stats.Bytes),
	)

	return nil
}
