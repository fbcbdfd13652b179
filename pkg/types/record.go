package types

import (
	"fmt"
	"strings"
	"time"
)

// Record holds one contact: a name, an ordered list of phones and an
// optional birthday.
type Record struct {
	name     Field
	phones   []Field
	birthday Field
}

// NewRecord creates a record with the given name and, optionally, a
// birthday in YYYY-MM-DD form.
// Returns ErrInvalidValue if the name is blank or the birthday is not a
// calendar date.
func NewRecord(name string, birthday ...string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	var bd string
	if len(birthday) > 0 {
		bd = birthday[0]
	}
	b, err := NewBirthday(bd)
	if err != nil {
		return nil, err
	}
	return &Record{name: n, birthday: b}, nil
}

// Name returns the contact name.
func (r *Record) Name() string { return r.name.Value() }

// Phones returns a copy of the phone numbers in stored order.
func (r *Record) Phones() []string {
	out := make([]string, len(r.phones))
	for i, p := range r.phones {
		out[i] = p.Value()
	}
	return out
}

// Birthday returns the stored birthday text and whether one is recorded.
func (r *Record) Birthday() (string, bool) {
	if r.birthday.IsZero() {
		return "", false
	}
	return r.birthday.Value(), true
}

// SetBirthday replaces the birthday. An empty value clears it.
func (r *Record) SetBirthday(value string) error {
	return r.birthday.Set(value)
}

// AddPhone appends a phone number.
// Returns ErrInvalidValue if phone is not exactly 10 digits.
func (r *Record) AddPhone(phone string) error {
	p, err := NewPhone(phone)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the first phone equal to phone. It is a no-op when
// the record has no such phone.
func (r *Record) RemovePhone(phone string) {
	if i := r.phoneIndex(phone); i >= 0 {
		r.phones = append(r.phones[:i], r.phones[i+1:]...)
	}
}

// EditPhone replaces the first phone equal to oldPhone with newPhone,
// keeping its position.
// Returns ErrInvalidValue if newPhone is malformed (checked first) and
// ErrNotFound if the record has no phone equal to oldPhone.
func (r *Record) EditPhone(oldPhone, newPhone string) error {
	if err := Validate(KindPhone, newPhone); err != nil {
		return err
	}
	i := r.phoneIndex(oldPhone)
	if i < 0 {
		return fmt.Errorf("phone %q: %w", oldPhone, ErrNotFound)
	}
	return r.phones[i].Set(newPhone)
}

// FindPhone returns the first phone equal to phone.
func (r *Record) FindPhone(phone string) (Field, bool) {
	if i := r.phoneIndex(phone); i >= 0 {
		return r.phones[i], true
	}
	return Field{}, false
}

func (r *Record) phoneIndex(phone string) int {
	for i, p := range r.phones {
		if p.Value() == phone {
			return i
		}
	}
	return -1
}

// DaysToBirthday returns the number of days from today to the next
// occurrence of the birthday, 0 when today is the birthday. The time of day
// and location of today are ignored; only its calendar date counts.
// A Feb 29 birthday falls on Feb 28 in non-leap years.
// Returns false if no birthday is recorded.
func (r *Record) DaysToBirthday(today time.Time) (int, bool) {
	bd, ok := r.birthday.Date()
	if !ok {
		return 0, false
	}
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	next := anniversary(bd, start.Year())
	if next.Before(start) {
		next = anniversary(bd, start.Year()+1)
	}
	return int(next.Sub(start).Hours() / 24), true
}

// anniversary returns the birthday's month and day in the given year.
func anniversary(bd time.Time, year int) time.Time {
	month, day := bd.Month(), bd.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// String renders the record as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name.Value(), strings.Join(r.Phones(), "; "))
}
