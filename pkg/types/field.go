package types

import (
	"fmt"
	"strings"
	"time"
)

// FieldKind selects the validity predicate of a Field.
type FieldKind int

// Field kinds. The set is closed.
const (
	KindName FieldKind = iota
	KindPhone
	KindBirthday
)

// BirthdayLayout is the date format accepted for birthdays.
const BirthdayLayout = "2006-01-02"

// phoneLength is the exact number of digits in a phone number.
const phoneLength = 10

// String returns the kind name used in error messages.
func (k FieldKind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	case KindBirthday:
		return "birthday"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Field is a text value that always satisfies the predicate of its kind.
// Build fields with NewField or the kind-specific constructors. The zero
// Field is an empty KindName field, which is not a valid name; treat it as
// unset.
type Field struct {
	kind  FieldKind
	value string
}

// NewField validates value against the predicate for kind.
// Returns ErrInvalidValue if the predicate rejects it.
func NewField(kind FieldKind, value string) (Field, error) {
	if err := Validate(kind, value); err != nil {
		return Field{}, err
	}
	return Field{kind: kind, value: value}, nil
}

// NewName returns a name field.
func NewName(value string) (Field, error) { return NewField(KindName, value) }

// NewPhone returns a phone field.
func NewPhone(value string) (Field, error) { return NewField(KindPhone, value) }

// NewBirthday returns a birthday field. An empty value is an absent birthday.
func NewBirthday(value string) (Field, error) { return NewField(KindBirthday, value) }

// Set replaces the value. On error the field keeps its previous value.
func (f *Field) Set(value string) error {
	if err := Validate(f.kind, value); err != nil {
		return err
	}
	f.value = value
	return nil
}

// Kind returns the field kind.
func (f Field) Kind() FieldKind { return f.kind }

// Value returns the stored text.
func (f Field) Value() string { return f.value }

// IsZero reports whether the field holds no value (an absent birthday).
func (f Field) IsZero() bool { return f.value == "" }

// String renders the stored value.
func (f Field) String() string { return f.value }

// Date parses a birthday field. Returns false for other kinds and for an
// absent birthday.
func (f Field) Date() (time.Time, bool) {
	if f.kind != KindBirthday || f.value == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(BirthdayLayout, f.value)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Validate applies the predicate for kind to value.
func Validate(kind FieldKind, value string) error {
	var ok bool
	switch kind {
	case KindName:
		ok = strings.TrimSpace(value) != ""
	case KindPhone:
		ok = isPhone(value)
	case KindBirthday:
		ok = isBirthday(value)
	}
	if !ok {
		return fmt.Errorf("%s %q: %w", kind, value, ErrInvalidValue)
	}
	return nil
}

func isPhone(value string) bool {
	if len(value) != phoneLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}

// isBirthday accepts the empty string (no birthday recorded) or a real
// calendar date. time.Parse rejects out-of-range days such as 2024-02-30.
func isBirthday(value string) bool {
	if value == "" {
		return true
	}
	_, err := time.Parse(BirthdayLayout, value)
	return err == nil
}
