// Package command parses input lines and dispatches them against an
// address book, translating domain errors into one-line replies so the
// session loop never has to handle a fault.
package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/book"
	"github.com/smileynet/rolodex/internal/field"
)

// UsageError reports a command invoked with too few arguments.
// The error text is the user-facing message.
type UsageError string

// Error returns the user-facing message.
func (e UsageError) Error() string { return string(e) }

// Usage errors per command.
const (
	ErrAddUsage         = UsageError("Give me name and phone please.")
	ErrChangeUsage      = UsageError("Name, old phone, and new phone are required.")
	ErrNameRequired     = UsageError("Name is required.")
	ErrAddBirthdayUsage = UsageError("Name and birthday are required.")
)

// Fixed replies.
const (
	ReplyGreeting     = "How can I help you?"
	ReplyFarewell     = "Good bye!"
	ReplyInvalid      = "Invalid command."
	ReplyNotFound     = "Contact not found."
	ReplyAdded        = "Contact added."
	ReplyUpdated      = "Contact updated."
	ReplyPhoneUpdated = "Phone number updated."
	ReplyBirthdaySet  = "Birthday added."
	ReplyNoUpcoming   = "No upcoming birthdays."
)

// Parse splits an input line into a lowercased command verb and its
// arguments. A blank line yields an empty verb and no arguments.
func Parse(line string) (cmd string, args []string) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return "", nil
	}
	return strings.ToLower(tokens[0]), tokens[1:]
}

// Dispatcher routes parsed commands to handlers over a single address book.
type Dispatcher struct {
	book   *book.AddressBook
	window int // upcoming-birthday window in days
	now    func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithWindow sets the upcoming-birthday window in days.
func WithWindow(days int) Option {
	return func(d *Dispatcher) { d.window = days }
}

// WithClock sets the time source used for birthday scheduling.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// NewDispatcher creates a Dispatcher over b with a 7-day upcoming window.
func NewDispatcher(b *book.AddressBook, opts ...Option) *Dispatcher {
	d := &Dispatcher{book: b, window: 7, now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch executes one parsed command and returns the reply to print.
// quit reports that the session should end. Unknown verbs, including the
// empty verb from a blank line, get the invalid-command reply. Handler
// errors never escape: they are rendered into the reply at this boundary.
func (d *Dispatcher) Dispatch(cmd string, args []string) (reply string, quit bool) {
	switch cmd {
	case "close", "exit":
		return ReplyFarewell, true
	case "hello":
		return ReplyGreeting, false
	case "add":
		return d.reply(d.addContact(args))
	case "change":
		return d.reply(d.changeContact(args))
	case "phone":
		return d.reply(d.showPhone(args))
	case "all":
		return d.book.ListAll(), false
	case "add-birthday":
		return d.reply(d.addBirthday(args))
	case "show-birthday":
		return d.reply(d.showBirthday(args))
	case "birthdays":
		return d.birthdays(), false
	default:
		return ReplyInvalid, false
	}
}

// reply converts a handler result into the printed line. Validation and
// usage errors become "Error: ..." replies; anything else is unexpected
// but must not kill the loop.
func (d *Dispatcher) reply(msg string, err error) (string, bool) {
	if err == nil {
		return msg, false
	}
	var ve field.ValidationError
	var ue UsageError
	if errors.As(err, &ve) || errors.As(err, &ue) {
		return fmt.Sprintf("Error: %s", err), false
	}
	return fmt.Sprintf("Unexpected error: %s", err), false
}

// addContact creates or updates a contact and adds a phone to it.
func (d *Dispatcher) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrAddUsage
	}
	name, phone := args[0], args[1]

	record, ok := d.book.Find(name)
	msg := ReplyUpdated
	if !ok {
		var err error
		record, err = book.NewRecord(name)
		if err != nil {
			return "", err
		}
		d.book.Add(record)
		msg = ReplyAdded
	}
	if err := record.AddPhone(phone); err != nil {
		return "", err
	}
	return msg, nil
}

func (d *Dispatcher) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrChangeUsage
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	record, ok := d.book.Find(name)
	if !ok {
		return ReplyNotFound, nil
	}
	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}
	return ReplyPhoneUpdated, nil
}

func (d *Dispatcher) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNameRequired
	}
	name := args[0]

	record, ok := d.book.Find(name)
	if !ok {
		return ReplyNotFound, nil
	}
	return fmt.Sprintf("%s's phone numbers: %s", name, record.Phones()), nil
}

func (d *Dispatcher) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrAddBirthdayUsage
	}
	name, date := args[0], args[1]

	record, ok := d.book.Find(name)
	if !ok {
		return ReplyNotFound, nil
	}
	if err := record.AddBirthday(date); err != nil {
		return "", err
	}
	return ReplyBirthdaySet, nil
}

func (d *Dispatcher) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNameRequired
	}
	name := args[0]

	record, ok := d.book.Find(name)
	if !ok {
		return ReplyNotFound, nil
	}
	return fmt.Sprintf("%s's birthday: %s", name, record.ShowBirthday()), nil
}

func (d *Dispatcher) birthdays() string {
	greetings := d.book.Upcoming(d.now(), d.window)
	if len(greetings) == 0 {
		return ReplyNoUpcoming
	}
	lines := make([]string, len(greetings))
	for i, g := range greetings {
		lines[i] = fmt.Sprintf("%s: %s", g.Name, g.Date)
	}
	return strings.Join(lines, "\n")
}
