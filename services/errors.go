// Package services holds the reservation core: the room inventory, the
// booking ledger and the service that orchestrates them. The sentinel
// errors below let the HTTP layer map failures to status codes without
// matching on strings.
package services

import (
	"errors"
	"fmt"
)

var (
	// ErrBookingNotFound is returned when no active booking matches the
	// customer name. Handlers translate this into a 404.
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRoomNotFound is returned by room lookups for numbers the
	// inventory has never seen.
	ErrRoomNotFound = errors.New("room not found")

	// ErrDuplicateRoom signals an attempt to add a room number that is
	// already in the inventory. Handlers translate this into a 409.
	ErrDuplicateRoom = errors.New("room number already exists")

	// ErrInvalidRoomNumber rejects non-positive room numbers.
	ErrInvalidRoomNumber = errors.New("room number must be a positive integer")

	// ErrNoRoomsSelected aborts a booking whose selection resolved to
	// nothing bookable. The operation has no side effects in that case.
	ErrNoRoomsSelected = errors.New("no valid rooms selected")
)

// ValidationError reports which customer field failed entry validation.
// Validation fails fast: the first bad field is the one reported.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
