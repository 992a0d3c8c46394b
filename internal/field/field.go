// Package field implements the validated values a contact record is built
// from: a non-empty name, a ten-digit phone number, and a birthday that
// cannot lie in the future.
package field

import (
	"regexp"
	"strings"
	"time"
)

// ValidationError reports a rejected field value or record mutation.
// The error text is the user-facing message.
type ValidationError string

// Error returns the user-facing message.
func (e ValidationError) Error() string { return string(e) }

// Sentinel errors for caller-checkable validation failures.
const (
	ErrEmptyName      = ValidationError("Name cannot be empty")
	ErrPhoneFormat    = ValidationError("Phone number must be 10 digits")
	ErrDateFormat     = ValidationError("Invalid date format. Use DD.MM.YYYY")
	ErrFutureBirthday = ValidationError("Birthday cannot be in the future")
)

// DateLayout is the wire format for birthdays.
const DateLayout = "02.01.2006"

// now is the clock seam for "today" checks; tests override it.
var now = time.Now

var phonePattern = regexp.MustCompile(`^\d{10}$`)

// Name is a contact's non-empty display name.
type Name struct {
	value string
}

// NewName validates v as a contact name. Whitespace-only names are
// rejected; the stored value keeps its original spelling.
func NewName(v string) (Name, error) {
	if strings.TrimSpace(v) == "" {
		return Name{}, ErrEmptyName
	}
	return Name{value: v}, nil
}

// String returns the name as entered.
func (n Name) String() string { return n.value }

// Phone is a ten-digit phone number.
type Phone struct {
	value string
}

// NewPhone validates v as exactly ten ASCII digits, no separators.
func NewPhone(v string) (Phone, error) {
	if !phonePattern.MatchString(v) {
		return Phone{}, ErrPhoneFormat
	}
	return Phone{value: v}, nil
}

// String returns the digit string.
func (p Phone) String() string { return p.value }

// Birthday is a calendar date, never in the future.
type Birthday struct {
	date time.Time
}

// NewBirthday parses v as DD.MM.YYYY and rejects dates after today.
// The comparison is date-only; a birthday today is valid.
func NewBirthday(v string) (Birthday, error) {
	return newBirthdayAt(v, now())
}

// newBirthdayAt is NewBirthday with an explicit "today" for tests.
func newBirthdayAt(v string, today time.Time) (Birthday, error) {
	d, err := time.Parse(DateLayout, v)
	if err != nil {
		return Birthday{}, ErrDateFormat
	}
	if d.After(dateOnly(today)) {
		return Birthday{}, ErrFutureBirthday
	}
	return Birthday{date: d}, nil
}

// Date returns the birthday at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// IsZero reports whether the birthday is unset.
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// String formats the birthday as DD.MM.YYYY.
func (b Birthday) String() string { return b.date.Format(DateLayout) }

// dateOnly truncates t to midnight UTC so comparisons against parsed
// dates ignore the time component.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
