package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makzui/phone-book/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var (
		phones   []string
		birthday string
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a contact or extend an existing one",
		Long: `Add creates a contact with the given name. If the contact already exists,
the phones are appended to it and the birthday, when given, replaces the
stored one.

Example:
  phonebook add "John Smith" --phone 1234567890
  phonebook add "Jane Doe" --phone 5555555555 --phone 0987654321 --birthday 1990-05-21`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return a.withBook(true, func(book *types.AddressBook) error {
				r, exists := book.Find(name)
				if !exists {
					var err error
					if r, err = types.NewRecord(name); err != nil {
						return err
					}
				}
				// Check phones up front so a bad one leaves an existing
				// contact untouched.
				for _, p := range phones {
					if err := types.Validate(types.KindPhone, p); err != nil {
						return err
					}
				}
				if birthday != "" {
					if err := r.SetBirthday(birthday); err != nil {
						return err
					}
				}
				for _, p := range phones {
					if err := r.AddPhone(p); err != nil {
						return err
					}
				}

				msg := "Contact updated."
				if !exists {
					book.Add(r)
					msg = "Contact added."
				}
				return a.printMessage(cmd, r, msg)
			})
		},
	}
	cmd.Flags().StringArrayVar(&phones, "phone", nil, "phone number, 10 digits (repeatable)")
	cmd.Flags().StringVar(&birthday, "birthday", "", "birthday in YYYY-MM-DD form")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Display a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(false, func(book *types.AddressBook) error {
				r, err := findRecord(book, args[0])
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return printJSON(cmd, newRecordView(r, a.now()))
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, r)
				if bd, ok := r.Birthday(); ok {
					days, _ := r.DaysToBirthday(a.now())
					fmt.Fprintf(out, "Birthday: %s (in %d days)\n", bd, days)
				}
				return nil
			})
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(true, func(book *types.AddressBook) error {
				r, err := findRecord(book, args[0])
				if err != nil {
					return err
				}
				book.Delete(args[0])
				return a.printMessage(cmd, r, "Contact deleted.")
			})
		},
	}
}

func newBirthdayCmd(a *app) *cobra.Command {
	var clearBirthday bool
	cmd := &cobra.Command{
		Use:   "birthday <name> [date]",
		Short: "Show or set a contact's birthday",
		Long: `Birthday prints the contact's birthday and the days left until it.
With a date argument (YYYY-MM-DD) it sets the birthday; --clear removes it.

Example:
  phonebook birthday "John Smith"
  phonebook birthday "John Smith" 1990-05-21
  phonebook birthday "John Smith" --clear`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clearBirthday && len(args) == 2 {
				return fmt.Errorf("--clear does not take a date")
			}
			set := len(args) == 2 || clearBirthday
			return a.withBook(set, func(book *types.AddressBook) error {
				r, err := findRecord(book, args[0])
				if err != nil {
					return err
				}
				switch {
				case clearBirthday:
					if err := r.SetBirthday(""); err != nil {
						return err
					}
					return a.printMessage(cmd, r, "Birthday cleared.")
				case len(args) == 2:
					if err := r.SetBirthday(args[1]); err != nil {
						return err
					}
					return a.printMessage(cmd, r, "Birthday updated.")
				}

				if a.flags.jsonMode {
					return printJSON(cmd, newRecordView(r, a.now()))
				}
				bd, ok := r.Birthday()
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%s has no birthday recorded.\n", r.Name())
					return nil
				}
				days, _ := r.DaysToBirthday(a.now())
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (in %d days)\n", r.Name(), bd, days)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&clearBirthday, "clear", false, "remove the stored birthday")
	return cmd
}
