package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Makzui/phone-book/pkg/types"
)

func newListCmd(a *app) *cobra.Command {
	var chunk int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts page by page",
		Long: `List prints every contact in the order they were added, grouped into
pages of --chunk contacts. With --json the output is an array of pages.

Example:
  phonebook list
  phonebook list --chunk 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if chunk < 1 {
				return fmt.Errorf("--chunk must be positive, got %d", chunk)
			}
			return a.withBook(false, func(book *types.AddressBook) error {
				if a.flags.jsonMode {
					pages := [][]recordView{}
					for page := range book.Iterate(chunk) {
						pages = append(pages, recordViews(page, a.now()))
					}
					return printJSON(cmd, pages)
				}

				out := cmd.OutOrStdout()
				if book.Len() == 0 {
					fmt.Fprintln(out, "No contacts found.")
					return nil
				}
				n := 0
				for page := range book.Iterate(chunk) {
					n++
					fmt.Fprintf(out, "Page %d:\n", n)
					for _, r := range page {
						fmt.Fprintf(out, "  %s\n", r)
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&chunk, "chunk", 10, "contacts per page")
	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var name, phone string
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Find contacts by name or phone substring",
		Long: `Search lists contacts whose name contains --name (ignoring case) or
whose phone numbers contain --phone.

Example:
  phonebook search --name jo
  phonebook search --phone 555`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withBook(false, func(book *types.AddressBook) error {
				var found []*types.Record
				if cmd.Flags().Changed("name") {
					found = book.SearchByName(name)
				} else {
					found = book.SearchByPhone(phone)
				}
				return a.printRecords(cmd, found)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "name substring, case-insensitive")
	cmd.Flags().StringVar(&phone, "phone", "", "phone substring")
	cmd.MarkFlagsOneRequired("name", "phone")
	cmd.MarkFlagsMutuallyExclusive("name", "phone")
	return cmd
}

func newBirthdaysCmd(a *app) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "List birthdays coming up soon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 0 {
				return fmt.Errorf("--days must not be negative, got %d", days)
			}
			return a.withBook(false, func(book *types.AddressBook) error {
				upcoming := book.UpcomingBirthdays(a.now(), days)
				if a.flags.jsonMode {
					views := make([]recordView, 0, len(upcoming))
					for _, u := range upcoming {
						views = append(views, newRecordView(u.Record, a.now()))
					}
					return printJSON(cmd, views)
				}

				out := cmd.OutOrStdout()
				if len(upcoming) == 0 {
					fmt.Fprintf(out, "No birthdays in the next %d days.\n", days)
					return nil
				}
				for _, u := range upcoming {
					bd, _ := u.Record.Birthday()
					fmt.Fprintf(out, "%s: %s (in %d days)\n", u.Record.Name(), bd, u.Days)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", 7, "look-ahead window in days")
	return cmd
}
