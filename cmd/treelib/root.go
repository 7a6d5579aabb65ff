// Root command for the treelib CLI.
// Implements: global flags, config loading, logging and exit codes.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/treelib/internal/paths"
	"github.com/mesh-intelligence/treelib/pkg/treelib"
	"github.com/mesh-intelligence/treelib/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	verbose   bool
}

var flags rootFlags

// appConfig is loaded by PersistentPreRunE so all subcommands can use it.
var appConfig = types.DefaultConfig()

// logger writes diagnostics to stderr. Replaced by PersistentPreRunE.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

// newRootCmd creates the top-level "treelib" command with global flags and
// all subcommands registered.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "treelib",
		Short:   "Build, inspect and render labelled trees",
		Long:    "treelib loads tree documents (JSONL, JSON or YAML), renders them as text\nand answers lookups by node identifier.",
		Version: treelib.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			// Skip config for version.
			if cmd.Name() == versionCmdName {
				return nil
			}

			configDir, err := paths.ResolveConfigDir(flags.configDir)
			if err != nil {
				return sysError(fmt.Errorf("resolve config dir: %w", err))
			}
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			appConfig = cfg
			logger.Debug("config loaded", "dir", configDir, "line_style", cfg.LineStyle, "max_lines", cfg.MaxLines)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newShowCmd())
	root.AddCommand(newFindCmd())
	root.AddCommand(newChildrenCmd())
	root.AddCommand(newParentCmd())
	root.AddCommand(newAncestorsCmd())
	root.AddCommand(newExportCmd())

	return root
}

// execute runs the root command with the given arguments and output streams
// and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "treelib:", err)
		return exitCode(err)
	}
	return exitSuccess
}

// systemError marks failures of the environment (file system, encoding)
// rather than of the user's input.
type systemError struct{ err error }

func (e *systemError) Error() string { return e.err.Error() }
func (e *systemError) Unwrap() error { return e.err }

func sysError(err error) error {
	if err == nil {
		return nil
	}
	return &systemError{err: err}
}

// exitCode maps an error to exitSysError for system failures and
// exitUserError for everything else.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *systemError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
