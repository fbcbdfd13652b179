package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makzui/phone-book/internal/paths"
	"github.com/Makzui/phone-book/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize phonebook storage",
		Long:  "Create the configuration and data directories, write a default\nconfig.yaml if none exists, then initialize the storage backend.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(a.flags.configDir)
			if err != nil {
				return &sysError{fmt.Errorf("resolve config dir: %w", err)}
			}
			path, written, err := writeConfigIfMissing(configDir, a.cfg.DataDir)
			if err != nil {
				return &sysError{err}
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			}

			// A load-save cycle creates the backend's files and leaves
			// existing contacts unchanged.
			if err := a.withBook(true, func(*types.AddressBook) error { return nil }); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Phonebook initialized successfully")
			return nil
		},
	}
}
