package services

import "serenity-backend/models"

// RoomInventory owns every Room record for its lifetime. Listings preserve
// insertion order. The inventory does no locking of its own; the
// ReservationService serializes all access to it.
type RoomInventory struct {
	rooms    []models.Room
	byNumber map[int]int // room number -> index into rooms
}

func NewRoomInventory() *RoomInventory {
	return &RoomInventory{byNumber: make(map[int]int)}
}

// Seed creates count rooms numbered upward from 101. Every room number
// divisible by 3 is a Suite, every remaining even number a Double, the
// rest are Singles. Listings and tests depend on this rule staying put.
func (inv *RoomInventory) Seed(count int) {
	for i := 0; i < count; i++ {
		number := 101 + i
		roomType := models.RoomSingle
		switch {
		case number%3 == 0:
			roomType = models.RoomSuite
		case number%2 == 0:
			roomType = models.RoomDouble
		}
		// Numbers are consecutive from 101, so Add cannot fail here.
		_ = inv.Add(models.NewRoom(number, roomType))
	}
}

// Add appends a room, rejecting non-positive and duplicate numbers.
func (inv *RoomInventory) Add(room models.Room) error {
	if room.RoomNumber <= 0 {
		return ErrInvalidRoomNumber
	}
	if _, ok := inv.byNumber[room.RoomNumber]; ok {
		return ErrDuplicateRoom
	}
	inv.byNumber[room.RoomNumber] = len(inv.rooms)
	inv.rooms = append(inv.rooms, room)
	return nil
}

// FindByNumber returns a copy of the room with that number.
func (inv *RoomInventory) FindByNumber(number int) (models.Room, bool) {
	i, ok := inv.byNumber[number]
	if !ok {
		return models.Room{}, false
	}
	return inv.rooms[i], true
}

// SetAvailability flips the flag on the inventory's own record, never on a
// copy. Only the ReservationService calls this. Returns false when the
// number is unknown.
func (inv *RoomInventory) SetAvailability(number int, available bool) bool {
	i, ok := inv.byNumber[number]
	if !ok {
		return false
	}
	inv.rooms[i].Available = available
	return true
}

// ListAvailable returns the available rooms in insertion order.
func (inv *RoomInventory) ListAvailable() []models.Room {
	out := make([]models.Room, 0, len(inv.rooms))
	for _, room := range inv.rooms {
		if room.Available {
			out = append(out, room)
		}
	}
	return out
}

// ListAll returns every room in insertion order.
func (inv *RoomInventory) ListAll() []models.Room {
	out := make([]models.Room, len(inv.rooms))
	copy(out, inv.rooms)
	return out
}

func (inv *RoomInventory) Len() int {
	return len(inv.rooms)
}
