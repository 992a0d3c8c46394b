package book

import (
	"fmt"
	"strings"
	"time"

	"github.com/smileynet/rolodex/internal/field"
)

// NoContacts is the listing placeholder for an empty book.
const NoContacts = "No contacts in the address book."

// AddressBook maps contact names to records, iterating in insertion order
// so listings and birthday reports are deterministic.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New creates an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// Add inserts record keyed by its name, replacing any existing entry.
// A replaced entry keeps its original position in iteration order.
func (b *AddressBook) Add(record *Record) {
	name := record.Name()
	if _, ok := b.records[name]; !ok {
		b.order = append(b.order, name)
	}
	b.records[name] = record
}

// Find returns the record for name. Exact, case-sensitive match.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the entry for name; absent names are a no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}
	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.order) }

// Greeting is one upcoming-birthday entry: whose birthday, and on which
// date to congratulate them.
type Greeting struct {
	Name string
	Date string // DD.MM.YYYY
}

// Upcoming returns the contacts whose next birthday occurrence falls
// within windowDays of today, inclusive on both ends. Occurrences landing
// on a weekend shift the congratulation date to the following Monday.
// Results follow book iteration order.
func (b *AddressBook) Upcoming(today time.Time, windowDays int) []Greeting {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	horizon := today.AddDate(0, 0, windowDays)

	var out []Greeting
	for _, name := range b.order {
		r := b.records[name]
		if r.Birthday().IsZero() {
			continue
		}

		bd := r.Birthday().Date()
		occurrence := time.Date(today.Year(), bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		if occurrence.Before(today) {
			occurrence = time.Date(today.Year()+1, bd.Month(), bd.Day(), 0, 0, 0, 0, time.UTC)
		}
		if occurrence.After(horizon) {
			continue
		}

		congrats := occurrence
		switch occurrence.Weekday() {
		case time.Saturday:
			congrats = occurrence.AddDate(0, 0, 2)
		case time.Sunday:
			congrats = occurrence.AddDate(0, 0, 1)
		}

		out = append(out, Greeting{
			Name: name,
			Date: congrats.Format(field.DateLayout),
		})
	}
	return out
}

// ListAll renders the "{name}: {phones}" listing, one contact per line,
// or the NoContacts placeholder.
func (b *AddressBook) ListAll() string {
	if len(b.order) == 0 {
		return NoContacts
	}
	lines := make([]string, len(b.order))
	for i, name := range b.order {
		lines[i] = fmt.Sprintf("%s: %s", name, b.records[name].Phones())
	}
	return strings.Join(lines, "\n")
}
