package types

import (
	"iter"
	"slices"
	"sort"
	"strings"
	"time"
)

// AddressBook owns a set of records keyed by name. Iteration follows the
// order in which names were first added; replacing a record keeps its slot.
// An AddressBook is not safe for concurrent use.
type AddressBook struct {
	order   []string
	records map[string]*Record
}

// NewAddressBook returns an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts r keyed by its name, replacing any record with the same name.
func (b *AddressBook) Add(r *Record) {
	name := r.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = r
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Deleting a missing name is
// a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Records returns the records in book order. The slice is a fresh snapshot;
// the records themselves are shared with the book.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Iterate yields the records in consecutive chunks of chunkSize; the last
// chunk may be shorter. The record list is captured when Iterate is called,
// so adding or deleting records while ranging does not change what is
// yielded. A chunkSize below 1 is treated as 1.
func (b *AddressBook) Iterate(chunkSize int) iter.Seq[[]*Record] {
	if chunkSize < 1 {
		chunkSize = 1
	}
	return slices.Chunk(b.Records(), chunkSize)
}

// SearchByName returns records whose name contains substr, ignoring case.
func (b *AddressBook) SearchByName(substr string) []*Record {
	needle := strings.ToLower(substr)
	return b.filter(func(r *Record) bool {
		return strings.Contains(strings.ToLower(r.Name()), needle)
	})
}

// SearchByPhone returns records with at least one phone containing substr.
func (b *AddressBook) SearchByPhone(substr string) []*Record {
	return b.filter(func(r *Record) bool {
		return slices.ContainsFunc(r.phones, func(p Field) bool {
			return strings.Contains(p.Value(), substr)
		})
	})
}

func (b *AddressBook) filter(match func(*Record) bool) []*Record {
	var out []*Record
	for _, name := range b.order {
		if r := b.records[name]; match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Birthday pairs a record with the days left until its next birthday.
type Birthday struct {
	Record *Record
	Days   int
}

// UpcomingBirthdays returns the records whose next birthday is at most
// within days away from today, soonest first. Ties keep book order.
func (b *AddressBook) UpcomingBirthdays(today time.Time, within int) []Birthday {
	var out []Birthday
	for _, name := range b.order {
		r := b.records[name]
		if days, ok := r.DaysToBirthday(today); ok && days <= within {
			out = append(out, Birthday{Record: r, Days: days})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
