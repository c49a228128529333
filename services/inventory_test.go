package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity-backend/models"
	"serenity-backend/services"
)

func TestSeedIsDeterministic(t *testing.T) {
	inv := services.NewRoomInventory()
	inv.Seed(15)

	require.Equal(t, 15, inv.Len())

	// numbers divisible by 3 are Suites, remaining evens Doubles, rest Singles
	expected := map[int]string{
		101: models.RoomSingle,
		102: models.RoomSuite,
		103: models.RoomSingle,
		104: models.RoomDouble,
		105: models.RoomSuite,
		106: models.RoomDouble,
		107: models.RoomSingle,
		108: models.RoomSuite,
		109: models.RoomSingle,
		110: models.RoomDouble,
		111: models.RoomSuite,
		112: models.RoomDouble,
		113: models.RoomSingle,
		114: models.RoomSuite,
		115: models.RoomSingle,
	}

	for number, roomType := range expected {
		room, ok := inv.FindByNumber(number)
		require.True(t, ok, "room %d missing", number)
		assert.Equal(t, roomType, room.Type, "room %d", number)
		assert.Equal(t, models.PriceFor(roomType), room.Price, "room %d", number)
		assert.True(t, room.Available, "room %d should start available", number)
	}
}

func TestAddRejectsDuplicatesAndBadNumbers(t *testing.T) {
	inv := services.NewRoomInventory()

	require.NoError(t, inv.Add(models.NewRoom(201, models.RoomSingle)))
	assert.ErrorIs(t, inv.Add(models.NewRoom(201, models.RoomSuite)), services.ErrDuplicateRoom)
	assert.ErrorIs(t, inv.Add(models.NewRoom(0, models.RoomSingle)), services.ErrInvalidRoomNumber)
	assert.ErrorIs(t, inv.Add(models.NewRoom(-5, models.RoomSingle)), services.ErrInvalidRoomNumber)

	assert.Equal(t, 1, inv.Len())
}

func TestNewRoomNormalizesUnknownType(t *testing.T) {
	room := models.NewRoom(300, "Penthouse")
	assert.Equal(t, models.RoomUnknown, room.Type)
	assert.Equal(t, 0.0, room.Price)
}

func TestListAvailablePreservesInsertionOrder(t *testing.T) {
	inv := services.NewRoomInventory()
	require.NoError(t, inv.Add(models.NewRoom(105, models.RoomSuite)))
	require.NoError(t, inv.Add(models.NewRoom(101, models.RoomSingle)))
	require.NoError(t, inv.Add(models.NewRoom(103, models.RoomDouble)))

	require.True(t, inv.SetAvailability(101, false))

	available := inv.ListAvailable()
	require.Len(t, available, 2)
	assert.Equal(t, 105, available[0].RoomNumber)
	assert.Equal(t, 103, available[1].RoomNumber)

	// flipping back restores the listing
	require.True(t, inv.SetAvailability(101, true))
	assert.Len(t, inv.ListAvailable(), 3)

	assert.False(t, inv.SetAvailability(999, false))
}

func TestFindByNumberReturnsCopy(t *testing.T) {
	inv := services.NewRoomInventory()
	require.NoError(t, inv.Add(models.NewRoom(101, models.RoomSingle)))

	room, ok := inv.FindByNumber(101)
	require.True(t, ok)
	room.Available = false

	again, _ := inv.FindByNumber(101)
	assert.True(t, again.Available, "mutating a lookup result must not touch the inventory")
}
