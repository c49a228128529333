package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"serenity-backend/models"
	"serenity-backend/services"
	"serenity-backend/utils"
)

// BookingController exposes the booking ledger: book, list, search and
// cancel.
type BookingController struct {
	svc *services.ReservationService
}

func NewBookingController(svc *services.ReservationService) *BookingController {
	return &BookingController{svc: svc}
}

type CreateBookingRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Contact     string `json:"contact" binding:"required"`
	Address     string `json:"address" binding:"required"`
	Email       string `json:"email" binding:"required"`
	RoomNumbers []int  `json:"roomNumbers" binding:"required"`
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	customer := models.Customer{
		FullName: req.FullName,
		Contact:  req.Contact,
		Address:  req.Address,
		Email:    req.Email,
	}

	result, err := bc.svc.BookRooms(c.Request.Context(), customer, req.RoomNumbers)
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, services.ErrNoRoomsSelected):
		utils.JSONError(c, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		utils.JSONSuccess(c, http.StatusCreated, result)
	}
}

// GetBookings handles GET /api/bookings.
func (bc *BookingController) GetBookings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, bc.svc.ListBookings())
}

// SearchBooking handles GET /api/bookings/search?customer=Name.
func (bc *BookingController) SearchBooking(c *gin.Context) {
	name := c.Query("customer")
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "customer query parameter is required")
		return
	}

	booking, err := bc.svc.SearchBooking(name)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking handles DELETE /api/bookings/:customer.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	booking, err := bc.svc.CancelBooking(c.Request.Context(), c.Param("customer"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
