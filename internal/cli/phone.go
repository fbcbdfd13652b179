package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makzui/phone-book/pkg/types"
)

func newPhoneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Manage a contact's phone numbers",
	}
	cmd.AddCommand(newPhoneAddCmd(a))
	cmd.AddCommand(newPhoneRemoveCmd(a))
	cmd.AddCommand(newPhoneEditCmd(a))
	return cmd
}

func newPhoneAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <phone>",
		Short: "Append a phone number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *types.AddressBook) error {
				r, err := findRecord(book, args[0])
				if err != nil {
					return err
				}
				if err := r.AddPhone(args[1]); err != nil {
					return err
				}
				return a.printMessage(cmd, r, "Phone added.")
			})
		},
	}
}

func newPhoneRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name> <phone>",
		Short: "Remove the first matching phone number",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *types.AddressBook) error {
				r, err := findRecord(book, args[0])
				if err != nil {
					return err
				}
				if _, ok := r.FindPhone(args[1]); !ok {
					return fmt.Errorf("phone %q: %w", args[1], types.ErrNotFound)
				}
				r.RemovePhone(args[1])
				return a.printMessage(cmd, r, "Phone removed.")
			})
		},
	}
}

func newPhoneEditCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <name> <old-phone> <new-phone>",
		Short: "Replace a phone number in place",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *types.AddressBook) error {
				r, err := findRecord(book, args[0])
				if err != nil {
					return err
				}
				if err := r.EditPhone(args[1], args[2]); err != nil {
					return err
				}
				return a.printMessage(cmd, r, "Phone updated.")
			})
		},
	}
}
