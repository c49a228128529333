package services

import (
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"serenity-backend/models"
)

// Store is the optional persistence adapter. A nil Store leaves the core
// running purely in memory. Every mutating call mirrors a change that has
// already been applied to the in-memory state, which stays authoritative:
// a store failure is reported but never rolls the ledger back.
type Store interface {
	LoadRooms() ([]models.Room, error)
	SaveRoom(room models.Room) error
	SaveRoomStatus(roomNumber int, available bool) error
	SaveBooking(b *models.Booking) error
	DeleteBooking(referenceCode string) error
}

// GormStore persists to the legacy MySQL schema: one row per room and one
// row per booking with the room numbers packed as JSON.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) LoadRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}
	return rooms, nil
}

func (s *GormStore) SaveRoom(room models.Room) error {
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicateRoom
		}
		return fmt.Errorf("save room %d: %w", room.RoomNumber, err)
	}
	return nil
}

func (s *GormStore) SaveRoomStatus(roomNumber int, available bool) error {
	err := s.DB.Model(&models.Room{}).
		Where("room_number = ?", roomNumber).
		Update("available", available).Error
	if err != nil {
		return fmt.Errorf("save room %d status: %w", roomNumber, err)
	}
	return nil
}

func (s *GormStore) SaveBooking(b *models.Booking) error {
	record, err := models.NewBookingRecord(b)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", b.ReferenceCode, err)
	}
	if err := s.DB.Create(&record).Error; err != nil {
		return fmt.Errorf("save booking %s: %w", b.ReferenceCode, err)
	}
	return nil
}

func (s *GormStore) DeleteBooking(referenceCode string) error {
	err := s.DB.Where("reference_code = ?", referenceCode).
		Delete(&models.BookingRecord{}).Error
	if err != nil {
		return fmt.Errorf("delete booking %s: %w", referenceCode, err)
	}
	return nil
}

func isDuplicateErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	// SQLite wording, for drivers used in local setups.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
