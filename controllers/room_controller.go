package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"serenity-backend/services"
	"serenity-backend/utils"
)

// RoomController exposes the inventory: listings, single-room lookup and
// adding rooms at runtime.
type RoomController struct {
	svc *services.ReservationService
}

func NewRoomController(svc *services.ReservationService) *RoomController {
	return &RoomController{svc: svc}
}

// GetRooms handles GET /api/rooms.
func (rc *RoomController) GetRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.svc.ListAllRooms())
}

// GetAvailableRooms handles GET /api/rooms/available.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, rc.svc.ListAvailableRooms(c.Request.Context()))
}

// GetRoomByNumber handles GET /api/rooms/:number.
func (rc *RoomController) GetRoomByNumber(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number must be an integer")
		return
	}

	room, err := rc.svc.FindRoom(number)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type AddRoomRequest struct {
	RoomNumber int    `json:"roomNumber" binding:"required"`
	Type       string `json:"type" binding:"required"`
}

// AddRoom handles POST /api/rooms.
func (rc *RoomController) AddRoom(c *gin.Context) {
	var req AddRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := rc.svc.AddRoom(c.Request.Context(), req.RoomNumber, req.Type)
	switch {
	case errors.Is(err, services.ErrDuplicateRoom):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidRoomNumber):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusCreated, room)
	}
}
