package models

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// Booking links one customer to the rooms they hold. Rooms are referenced
// by number only; the inventory stays the single owner of every Room, so
// cancellation always resolves numbers back through it instead of trusting
// a stale copy.
type Booking struct {
	ID            uint     `json:"id"`
	ReferenceCode string   `json:"referenceCode"`
	Customer      Customer `json:"customer"`
	RoomNumbers   []int    `json:"roomNumbers"`
	TotalAmount   float64  `json:"totalAmount"`
}

// BookingRecord is the persisted shape of a Booking: one row per booking
// with the customer fields flattened in and the room numbers packed as a
// JSON array, mirroring the legacy bookings table.
type BookingRecord struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReferenceCode string         `gorm:"column:reference_code;size:64;uniqueIndex" json:"referenceCode"`
	Customer      Customer       `gorm:"embedded" json:"customer"`
	Rooms         datatypes.JSON `gorm:"column:rooms" json:"rooms"`
	TotalAmount   float64        `gorm:"column:total_amount" json:"totalAmount"`
}

func (BookingRecord) TableName() string { return "bookings" }

// NewBookingRecord converts a ledger booking into its row form.
func NewBookingRecord(b *Booking) (BookingRecord, error) {
	rooms, err := json.Marshal(b.RoomNumbers)
	if err != nil {
		return BookingRecord{}, err
	}
	return BookingRecord{
		ReferenceCode: b.ReferenceCode,
		Customer:      b.Customer,
		Rooms:         datatypes.JSON(rooms),
		TotalAmount:   b.TotalAmount,
	}, nil
}
