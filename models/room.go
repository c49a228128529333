package models

// Room type names as stored in the rooms table. Anything else is treated
// as Unknown and priced at zero.
const (
	RoomSingle  = "Single"
	RoomDouble  = "Double"
	RoomSuite   = "Suite"
	RoomUnknown = "Unknown"
)

// PriceFor maps a room type to its nightly rate.
func PriceFor(roomType string) float64 {
	switch roomType {
	case RoomSingle:
		return 1000
	case RoomDouble:
		return 1700
	case RoomSuite:
		return 3000
	default:
		return 0
	}
}

// Room is identified by its number, which never changes once the room is
// in the inventory. Only the reservation service flips Available.
type Room struct {
	RoomNumber int     `json:"roomNumber" gorm:"column:room_number;primaryKey;autoIncrement:false"`
	Type       string  `json:"type" gorm:"column:type;type:varchar(50)"`
	Price      float64 `json:"price" gorm:"column:price"`
	Available  bool    `json:"available" gorm:"column:available"`
}

// NewRoom builds an available room with the price derived from its type.
// Unrecognized types are normalized to Unknown.
func NewRoom(number int, roomType string) Room {
	switch roomType {
	case RoomSingle, RoomDouble, RoomSuite:
	default:
		roomType = RoomUnknown
	}
	return Room{
		RoomNumber: number,
		Type:       roomType,
		Price:      PriceFor(roomType),
		Available:  true,
	}
}
