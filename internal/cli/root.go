// Package cli implements the phonebook command-line interface: a thin,
// non-interactive driver over the address book and its store backends.
package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makzui/phone-book/pkg/types"
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
	dataDir   string
	jsonMode  bool
}

// app carries the state shared by the commands of one root command.
type app struct {
	flags rootFlags
	cfg   types.Config
	log   *zap.Logger
	now   func() time.Time
}

// NewRootCmd creates the top-level "phonebook" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{now: time.Now})
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "phonebook",
		Short: "A contact address book",
		Long:  "Phonebook keeps contacts with their phone numbers and birthdays\nin a JSON file or a SQLite database.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.log != nil {
				_ = a.log.Sync()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/phonebook)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/phonebook)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newPhoneCmd(a))
	root.AddCommand(newBirthdayCmd(a))
	root.AddCommand(newBirthdaysCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newSearchCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newImportCmd(a))

	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.flags.configDir, a.flags.dataDir)
	if err != nil {
		return &sysError{fmt.Errorf("load config: %w", err)}
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return &sysError{fmt.Errorf("build logger: %w", err)}
	}
	a.cfg = cfg
	a.log = log
	a.log.Debug("config loaded",
		zap.String("backend", cfg.Backend),
		zap.String("data_dir", cfg.DataDir))
	return nil
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// sysError marks failures of the environment (files, database) as opposed
// to bad input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
