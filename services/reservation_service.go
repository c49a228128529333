package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"serenity-backend/models"
	"serenity-backend/utils"
)

// SelectionStop is the sentinel room number that terminates a selection
// list; numbers after it are ignored.
const SelectionStop = 0

// SkippedRoom reports one requested room number the booking left out and
// why.
type SkippedRoom struct {
	RoomNumber int    `json:"roomNumber"`
	Reason     string `json:"reason"`
}

// BookingResult is what a successful booking reports back: the ledger
// entry, the amount charged and any room numbers that were skipped.
type BookingResult struct {
	Booking     *models.Booking `json:"booking"`
	TotalAmount float64         `json:"totalAmount"`
	Skipped     []SkippedRoom   `json:"skipped,omitempty"`
}

// ReservationService orchestrates the inventory and the ledger. A single
// mutex serializes every operation: each one reads room availability and
// then mutates it, and interleaving two such sequences can double-book a
// room. All operations run to completion before returning.
type ReservationService struct {
	mu        sync.Mutex
	inventory *RoomInventory
	ledger    *BookingLedger
	store     Store              // nil in pure in-memory mode
	cache     *AvailabilityCache // nil disables caching
}

func NewReservationService(inventory *RoomInventory, ledger *BookingLedger, store Store, cache *AvailabilityCache) *ReservationService {
	return &ReservationService{
		inventory: inventory,
		ledger:    ledger,
		store:     store,
		cache:     cache,
	}
}

// LoadOrSeed fills the inventory from the store when it has rooms,
// otherwise seeds the deterministic room set (and persists it when a
// store is wired).
func (s *ReservationService) LoadOrSeed(count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.store != nil {
		rooms, err := s.store.LoadRooms()
		if err != nil {
			return fmt.Errorf("initialize inventory: %w", err)
		}
		if len(rooms) > 0 {
			for _, room := range rooms {
				if err := s.inventory.Add(room); err != nil {
					return fmt.Errorf("initialize inventory: room %d: %w", room.RoomNumber, err)
				}
			}
			return nil
		}
	}

	s.inventory.Seed(count)
	if s.store != nil {
		for _, room := range s.inventory.ListAll() {
			if err := s.store.SaveRoom(room); err != nil {
				log.Printf("warning: failed to persist seeded room %d: %v", room.RoomNumber, err)
			}
		}
	}
	return nil
}

func validateCustomer(c models.Customer) *ValidationError {
	if !utils.IsValidName(c.FullName) {
		return &ValidationError{Field: "name", Reason: "use two or more capitalized words, e.g. John Doe"}
	}
	if !utils.IsValidContact(c.Contact) {
		return &ValidationError{Field: "contact", Reason: "use exactly 10 digits"}
	}
	if !utils.IsValidAddress(c.Address) {
		return &ValidationError{Field: "address", Reason: "use at least 10 characters including letters and numbers"}
	}
	if !utils.IsValidEmail(c.Email) {
		return &ValidationError{Field: "email", Reason: "use a valid address ending in com, in, edu, org or net"}
	}
	return nil
}

// BookRooms validates the customer fields, then walks the selected room
// numbers in order. Numbers that do not resolve to an available room are
// skipped rather than aborting the whole booking; the sentinel 0 stops
// the walk early. When nothing bookable remains the booking aborts with
// no side effects. Otherwise every selected room is marked unavailable,
// one booking spanning all of them is appended to the ledger and the
// total charge is reported.
func (s *ReservationService) BookRooms(ctx context.Context, customer models.Customer, roomNumbers []int) (*BookingResult, error) {
	if verr := validateCustomer(customer); verr != nil {
		return nil, verr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var selected []int
	var skipped []SkippedRoom
	var total float64
	seen := make(map[int]bool)
	for _, number := range roomNumbers {
		if number == SelectionStop {
			break
		}
		if seen[number] {
			skipped = append(skipped, SkippedRoom{RoomNumber: number, Reason: "already selected"})
			continue
		}
		seen[number] = true

		room, ok := s.inventory.FindByNumber(number)
		if !ok || !room.Available {
			skipped = append(skipped, SkippedRoom{RoomNumber: number, Reason: "room unavailable or does not exist"})
			continue
		}
		selected = append(selected, number)
		total += room.Price
	}

	if len(selected) == 0 {
		return nil, ErrNoRoomsSelected
	}

	for _, number := range selected {
		s.inventory.SetAvailability(number, false)
	}

	booking := &models.Booking{
		ReferenceCode: uuid.NewString(),
		Customer:      customer,
		RoomNumbers:   selected,
		TotalAmount:   total,
	}
	s.ledger.Append(booking)

	s.persistRoomStatus(selected, false)
	if s.store != nil {
		if err := s.store.SaveBooking(booking); err != nil {
			log.Printf("warning: failed to persist booking %s: %v", booking.ReferenceCode, err)
		}
	}
	s.cache.Invalidate(ctx)

	return &BookingResult{Booking: booking, TotalAmount: total, Skipped: skipped}, nil
}

// CancelBooking releases every room held by the first booking matching
// the customer name (case-insensitive) and removes it from the ledger.
// When no booking matches, nothing changes.
func (s *ReservationService) CancelBooking(ctx context.Context, customerName string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.ledger.FindByCustomerName(customerName)
	if !ok {
		return nil, ErrBookingNotFound
	}

	for _, number := range booking.RoomNumbers {
		if !s.inventory.SetAvailability(number, true) {
			log.Printf("warning: booking %s references unknown room %d", booking.ReferenceCode, number)
		}
	}
	s.ledger.Remove(booking)

	s.persistRoomStatus(booking.RoomNumbers, true)
	if s.store != nil {
		if err := s.store.DeleteBooking(booking.ReferenceCode); err != nil {
			log.Printf("warning: failed to delete persisted booking %s: %v", booking.ReferenceCode, err)
		}
	}
	s.cache.Invalidate(ctx)

	return booking, nil
}

// SearchBooking is the read-only counterpart of CancelBooking's lookup.
func (s *ReservationService) SearchBooking(customerName string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.ledger.FindByCustomerName(customerName)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// ListBookings returns the active bookings in ledger order.
func (s *ReservationService) ListBookings() []*models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.All()
}

// ListAvailableRooms serves from the cache when warm, otherwise scans the
// inventory and refills it.
func (s *ReservationService) ListAvailableRooms(ctx context.Context) []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rooms, ok := s.cache.Get(ctx); ok {
		return rooms
	}
	rooms := s.inventory.ListAvailable()
	s.cache.Set(ctx, rooms)
	return rooms
}

// ListAllRooms returns every room regardless of availability.
func (s *ReservationService) ListAllRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.ListAll()
}

// FindRoom looks up one room by number.
func (s *ReservationService) FindRoom(number int) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.inventory.FindByNumber(number)
	if !ok {
		return models.Room{}, ErrRoomNotFound
	}
	return room, nil
}

// AddRoom appends a new room to the inventory. Duplicate or non-positive
// numbers are rejected before anything changes.
func (s *ReservationService) AddRoom(ctx context.Context, number int, roomType string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := models.NewRoom(number, roomType)
	if err := s.inventory.Add(room); err != nil {
		return models.Room{}, err
	}

	if s.store != nil {
		if err := s.store.SaveRoom(room); err != nil {
			log.Printf("warning: failed to persist room %d: %v", room.RoomNumber, err)
		}
	}
	s.cache.Invalidate(ctx)

	return room, nil
}

func (s *ReservationService) persistRoomStatus(numbers []int, available bool) {
	if s.store == nil {
		return
	}
	for _, number := range numbers {
		if err := s.store.SaveRoomStatus(number, available); err != nil {
			log.Printf("warning: failed to persist room %d status: %v", number, err)
		}
	}
}
