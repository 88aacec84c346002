package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/desertwitch/inodeinfo/internal/configuration"
	"github.com/desertwitch/inodeinfo/internal/filesystem"
	"github.com/desertwitch/inodeinfo/internal/schema"
	"github.com/spf13/cobra"
)

const (
	exitSuccess = 0
	exitFailure = 1
)

//nolint:gochecknoglobals
var Version string

type cliOptions struct {
	filePath   string
	dirPath    string
	format     string
	logFile    string
	configFile string
	human      bool
	recursive  bool
	color      bool
	verbose    bool
}

func newRootCommand(app *App, stderr io.Writer) *cobra.Command {
	var o cliOptions

	cmd := &cobra.Command{
		Use:   "inodeinfo (-i <file_path> | -a <directory_path>) [flags]",
		Short: "Display detailed inode information for files and directories",
		Long: "inodeinfo reports the inode number, type, permissions, ownership, size and\n" +
			"timestamps of a single file, or of every entry within a directory.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if o.filePath == "" && o.dirPath == "" {
				fmt.Fprint(stderr, cmd.UsageString())

				return ErrNoTarget
			}

			if o.filePath != "" && o.dirPath != "" {
				fmt.Fprint(stderr, cmd.UsageString())

				return ErrConflictingTargets
			}

			if err := app.resolveSettings(cmd, &o); err != nil {
				return err
			}

			return app.Launch(o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.filePath, "inode", "i", "", "display detailed inode information for the specified file")
	flags.StringVarP(&o.dirPath, "all", "a", "", "display inode information for all files within the specified directory")
	flags.BoolVarP(&o.recursive, "recursive", "r", false, "recursive listing")
	flags.BoolVarP(&o.human, "human", "h", false, "output sizes and dates in a human-readable form")
	flags.StringVarP(&o.format, "format", "f", "text", "specify the output format (text, json or yaml)")
	flags.StringVarP(&o.logFile, "log", "l", "", "log operations to the specified file")
	flags.StringVarP(&o.configFile, "config", "c", "", "read defaults from the specified configuration file")
	flags.BoolVar(&o.color, "color", false, "style the labels of the text format")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolP("help", "?", false, "display this help and exit")

	return cmd
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	setupLogging(stderr)

	fsHandler := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})
	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	app := NewApp(fsHandler, configHandler, stdout)

	cmd := newRootCommand(app, stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, ErrNoTarget) {
			slog.Error("Operation failed.",
				"err", err,
			)
		}

		return exitFailure
	}

	return exitSuccess
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
