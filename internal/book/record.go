// Package book implements the in-process contact store: single contact
// records and the insertion-ordered address book that owns them.
package book

import (
	"fmt"
	"strings"

	"github.com/smileynet/rolodex/internal/field"
)

// Sentinel errors for caller-checkable record mutations. These reuse
// field.ValidationError so the dispatch boundary treats field and record
// failures uniformly.
const (
	ErrDuplicatePhone = field.ValidationError("This phone number is already added.")
	ErrPhoneNotFound  = field.ValidationError("Phone number not found.")
	// EditPhone's variant carries no trailing period; both spellings are
	// long-standing user-visible output and are kept as is.
	ErrEditPhoneNotFound = field.ValidationError("Phone number not found")
	ErrBirthdaySet       = field.ValidationError("Birthday is already set and cannot be changed.")
)

// NoPhones is the listing placeholder for a record without phone numbers.
const NoPhones = "No phone numbers"

// Record is one contact: a name, an ordered set of unique phones, and an
// optional write-once birthday.
type Record struct {
	name     field.Name
	phones   []field.Phone
	birthday field.Birthday
}

// NewRecord creates a Record for the given name.
func NewRecord(name string) (*Record, error) {
	n, err := field.NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact's name value.
func (r *Record) Name() string { return r.name.String() }

// AddPhone validates number and appends it, preserving insertion order.
// Adding a number that is already present is an error.
func (r *Record) AddPhone(number string) error {
	if _, ok := r.FindPhone(number); ok {
		return ErrDuplicatePhone
	}
	p, err := field.NewPhone(number)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the phone matching number.
func (r *Record) RemovePhone(number string) error {
	for i, p := range r.phones {
		if p.String() == number {
			r.phones = append(r.phones[:i], r.phones[i+1:]...)
			return nil
		}
	}
	return ErrPhoneNotFound
}

// EditPhone replaces the phone equal to oldNumber with a validated
// replacement, keeping its position in the list.
func (r *Record) EditPhone(oldNumber, newNumber string) error {
	for i, p := range r.phones {
		if p.String() == oldNumber {
			np, err := field.NewPhone(newNumber)
			if err != nil {
				return err
			}
			r.phones[i] = np
			return nil
		}
	}
	return ErrEditPhoneNotFound
}

// FindPhone returns the phone equal to number, if present.
func (r *Record) FindPhone(number string) (field.Phone, bool) {
	for _, p := range r.phones {
		if p.String() == number {
			return p, true
		}
	}
	return field.Phone{}, false
}

// PhoneCount returns the number of stored phones.
func (r *Record) PhoneCount() int { return len(r.phones) }

// Phones returns the semicolon-joined phone listing, or the NoPhones
// placeholder for an empty record.
func (r *Record) Phones() string {
	if len(r.phones) == 0 {
		return NoPhones
	}
	vals := make([]string, len(r.phones))
	for i, p := range r.phones {
		vals[i] = p.String()
	}
	return strings.Join(vals, "; ")
}

// AddBirthday validates value and stores it. A birthday can be set once.
func (r *Record) AddBirthday(value string) error {
	if !r.birthday.IsZero() {
		return ErrBirthdaySet
	}
	b, err := field.NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

// Birthday returns the stored birthday; check IsZero before use.
func (r *Record) Birthday() field.Birthday { return r.birthday }

// ShowBirthday returns the formatted birthday or "Birthday not set".
func (r *Record) ShowBirthday() string {
	if r.birthday.IsZero() {
		return "Birthday not set"
	}
	return r.birthday.String()
}

// String renders the record's one-line summary.
func (r *Record) String() string {
	phones := make([]string, len(r.phones))
	for i, p := range r.phones {
		phones[i] = p.String()
	}
	birthday := "Not set"
	if !r.birthday.IsZero() {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, strings.Join(phones, "; "), birthday)
}
