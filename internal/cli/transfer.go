package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makzui/phone-book/pkg/types"
)

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write all contacts to a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(false, func(book *types.AddressBook) error {
				if err := book.Save(args[0]); err != nil {
					return &sysError{fmt.Errorf("export: %w", err)}
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %d contacts to %s\n", book.Len(), args[0])
				return nil
			})
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Add contacts from a JSON file",
		Long: `Import reads a JSON array of {"name", "phones", "birthday"} objects and
adds every contact, replacing contacts with the same name. Nothing is
imported if any entry is malformed or invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *types.AddressBook) error {
				before := book.Len()
				if err := book.Load(args[0]); err != nil {
					if errors.Is(err, fs.ErrNotExist) || isDataError(err) {
						return fmt.Errorf("import: %w", err)
					}
					return &sysError{fmt.Errorf("import: %w", err)}
				}
				a.log.Debug("imported", zap.String("file", args[0]), zap.Int("contacts", book.Len()))
				fmt.Fprintf(cmd.OutOrStdout(), "Imported %s: %d contacts (%d new)\n", args[0], book.Len(), book.Len()-before)
				return nil
			})
		},
	}
}
