package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity-backend/models"
	"serenity-backend/services"
)

func newCachedService(t *testing.T, ttl time.Duration) (*services.ReservationService, redismock.ClientMock) {
	t.Helper()
	client, mockRedis := redismock.NewClientMock()
	inv := services.NewRoomInventory()
	require.NoError(t, inv.Add(models.NewRoom(101, models.RoomSingle)))
	require.NoError(t, inv.Add(models.NewRoom(102, models.RoomDouble)))
	cache := services.NewAvailabilityCache(client, ttl)
	return services.NewReservationService(inv, services.NewBookingLedger(), nil, cache), mockRedis
}

func TestListAvailableRoomsFillsAndHitsCache(t *testing.T) {
	ctx := context.Background()
	svc, mockRedis := newCachedService(t, 30*time.Second)

	expected := []models.Room{
		models.NewRoom(101, models.RoomSingle),
		models.NewRoom(102, models.RoomDouble),
	}
	raw, err := json.Marshal(expected)
	require.NoError(t, err)

	// miss: scan the inventory, then fill the cache
	mockRedis.ExpectGet(services.AvailableRoomsKey).RedisNil()
	mockRedis.ExpectSet(services.AvailableRoomsKey, raw, 30*time.Second).SetVal("OK")

	rooms := svc.ListAvailableRooms(ctx)
	assert.Equal(t, expected, rooms)

	// hit: served straight from the cache
	mockRedis.ExpectGet(services.AvailableRoomsKey).SetVal(string(raw))

	rooms = svc.ListAvailableRooms(ctx)
	assert.Equal(t, expected, rooms)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestBookingInvalidatesAvailabilityCache(t *testing.T) {
	ctx := context.Background()
	svc, mockRedis := newCachedService(t, 30*time.Second)

	mockRedis.ExpectDel(services.AvailableRoomsKey).SetVal(1)

	_, err := svc.BookRooms(ctx, johnDoe, []int{101})
	require.NoError(t, err)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestCancellationInvalidatesAvailabilityCache(t *testing.T) {
	ctx := context.Background()
	svc, mockRedis := newCachedService(t, 30*time.Second)

	mockRedis.ExpectDel(services.AvailableRoomsKey).SetVal(1)
	mockRedis.ExpectDel(services.AvailableRoomsKey).SetVal(1)

	_, err := svc.BookRooms(ctx, johnDoe, []int{101})
	require.NoError(t, err)
	_, err = svc.CancelBooking(ctx, "john doe")
	require.NoError(t, err)

	assert.NoError(t, mockRedis.ExpectationsWereMet())
}

func TestRedisOutageFallsBackToInventory(t *testing.T) {
	ctx := context.Background()
	svc, mockRedis := newCachedService(t, 30*time.Second)

	expected := []models.Room{
		models.NewRoom(101, models.RoomSingle),
		models.NewRoom(102, models.RoomDouble),
	}
	raw, err := json.Marshal(expected)
	require.NoError(t, err)

	// both the read and the refill fail; the listing still comes back
	mockRedis.ExpectGet(services.AvailableRoomsKey).SetErr(assert.AnError)
	mockRedis.ExpectSet(services.AvailableRoomsKey, raw, 30*time.Second).SetErr(assert.AnError)

	rooms := svc.ListAvailableRooms(ctx)
	assert.Len(t, rooms, 2)
}
