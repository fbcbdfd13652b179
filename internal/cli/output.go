package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Makzui/phone-book/pkg/types"
)

// recordView is the --json rendering of a contact.
type recordView struct {
	Name           string   `json:"name"`
	Phones         []string `json:"phones"`
	Birthday       *string  `json:"birthday"`
	DaysToBirthday *int     `json:"days_to_birthday,omitempty"`
}

func newRecordView(r *types.Record, today time.Time) recordView {
	v := recordView{Name: r.Name(), Phones: r.Phones()}
	if bd, ok := r.Birthday(); ok {
		v.Birthday = &bd
	}
	if days, ok := r.DaysToBirthday(today); ok {
		v.DaysToBirthday = &days
	}
	return v
}

func recordViews(records []*types.Record, today time.Time) []recordView {
	out := make([]recordView, 0, len(records))
	for _, r := range records {
		out = append(out, newRecordView(r, today))
	}
	return out
}

// printJSON writes v as indented JSON to the command output.
func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// printRecords writes one line per record, or a JSON array in --json mode.
func (a *app) printRecords(cmd *cobra.Command, records []*types.Record) error {
	if a.flags.jsonMode {
		return printJSON(cmd, recordViews(records, a.now()))
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No contacts found.")
		return nil
	}
	for _, r := range records {
		fmt.Fprintln(cmd.OutOrStdout(), r)
	}
	return nil
}

// printMessage writes a status line; in --json mode it writes the record
// the message is about.
func (a *app) printMessage(cmd *cobra.Command, r *types.Record, msg string) error {
	if a.flags.jsonMode {
		return printJSON(cmd, newRecordView(r, a.now()))
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

// findRecord returns the named record or an ErrNotFound error.
func findRecord(book *types.AddressBook, name string) (*types.Record, error) {
	r, ok := book.Find(name)
	if !ok {
		return nil, fmt.Errorf("contact %q: %w", name, types.ErrNotFound)
	}
	return r, nil
}
