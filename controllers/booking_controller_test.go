package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serenity-backend/controllers"
	"serenity-backend/models"
	"serenity-backend/routes"
	"serenity-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	inv := services.NewRoomInventory()
	require.NoError(t, inv.Add(models.NewRoom(101, models.RoomSingle)))
	require.NoError(t, inv.Add(models.NewRoom(102, models.RoomDouble)))
	require.NoError(t, inv.Add(models.NewRoom(103, models.RoomSuite)))

	svc := services.NewReservationService(inv, services.NewBookingLedger(), nil, nil)
	return routes.SetupRouter(controllers.NewRoomController(svc), controllers.NewBookingController(svc))
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func bookingPayload(roomNumbers ...int) map[string]interface{} {
	return map[string]interface{}{
		"fullName":    "John Doe",
		"contact":     "9876543210",
		"address":     "123 Main St",
		"email":       "j@x.com",
		"roomNumbers": roomNumbers,
	}
}

func TestBookSearchCancelOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	// book rooms 101 and 102
	w := doJSON(router, http.MethodPost, "/api/bookings", bookingPayload(101, 102))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)
	var result services.BookingResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 2700.0, result.TotalAmount)
	assert.Equal(t, []int{101, 102}, result.Booking.RoomNumbers)

	// both rooms gone from the availability listing
	w = doJSON(router, http.MethodGet, "/api/rooms/available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var available []models.Room
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &available))
	require.Len(t, available, 1)
	assert.Equal(t, 103, available[0].RoomNumber)

	// search is case-insensitive
	w = doJSON(router, http.MethodGet, "/api/bookings/search?customer=JOHN%20DOE", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// cancel releases everything
	w = doJSON(router, http.MethodDelete, "/api/bookings/john%20doe", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(router, http.MethodGet, "/api/rooms/available", nil)
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &available))
	assert.Len(t, available, 3)

	// second cancel finds nothing
	w = doJSON(router, http.MethodDelete, "/api/bookings/john%20doe", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBookingRejectsInvalidFields(t *testing.T) {
	router := newTestRouter(t)

	payload := bookingPayload(101)
	payload["fullName"] = "john doe"

	w := doJSON(router, http.MethodPost, "/api/bookings", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	env := decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Contains(t, env.Error, "invalid name")
}

func TestCreateBookingWithNoBookableRooms(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/bookings", bookingPayload(999))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// nothing changed
	w = doJSON(router, http.MethodGet, "/api/bookings", nil)
	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &bookings))
	assert.Empty(t, bookings)
}

func TestAddRoomOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	payload := map[string]interface{}{"roomNumber": 200, "type": "Suite"}
	w := doJSON(router, http.MethodPost, "/api/rooms", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var room models.Room
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &room))
	assert.Equal(t, 3000.0, room.Price)

	// duplicate number conflicts
	w = doJSON(router, http.MethodPost, "/api/rooms", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(router, http.MethodGet, "/api/rooms/200", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/rooms/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
