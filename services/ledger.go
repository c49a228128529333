package services

import (
	"strings"

	"serenity-backend/models"
)

// BookingLedger is the ordered collection of active bookings. It grows
// without bound; the fixed-capacity array of the legacy system was an
// implementation artifact, not a domain rule.
type BookingLedger struct {
	bookings []*models.Booking
	nextID   uint
}

func NewBookingLedger() *BookingLedger {
	return &BookingLedger{nextID: 1}
}

// Append adds the booking at the end of the ledger and assigns its ID.
func (l *BookingLedger) Append(b *models.Booking) {
	b.ID = l.nextID
	l.nextID++
	l.bookings = append(l.bookings, b)
}

// FindByCustomerName returns the first booking whose customer full name
// matches, ignoring case. Exact full-name match only, no substrings.
func (l *BookingLedger) FindByCustomerName(name string) (*models.Booking, bool) {
	for _, b := range l.bookings {
		if strings.EqualFold(b.Customer.FullName, name) {
			return b, true
		}
	}
	return nil, false
}

// Remove deletes the booking by identity, preserving the order of the
// rest. The caller is responsible for releasing the rooms it referenced.
func (l *BookingLedger) Remove(target *models.Booking) bool {
	for i, b := range l.bookings {
		if b == target {
			l.bookings = append(l.bookings[:i], l.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// All returns the active bookings in ledger order.
func (l *BookingLedger) All() []*models.Booking {
	out := make([]*models.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *BookingLedger) Len() int {
	return len(l.bookings)
}
