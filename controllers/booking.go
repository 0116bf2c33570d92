package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/urboijano/MassageHaven/models"
	"github.com/urboijano/MassageHaven/storage"
	"github.com/urboijano/MassageHaven/utils"
)

// UpdateBookingStatusInput is the body of PATCH /api/bookings/:id/status.
type UpdateBookingStatusInput struct {
	Status models.BookingStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

func (h *Handler) GetBookings(c *gin.Context) {
	bookings, err := h.store.GetAllBookings()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := h.store.GetBooking(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error fetching booking")
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}

// CreateBooking handles the public booking form. The requested slot
// must reference an existing service and must not collide with another
// live booking for the same service, date and time.
func (h *Handler) CreateBooking(c *gin.Context) {
	var input models.InsertBooking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking data: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	service, err := h.store.GetService(input.ServiceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error creating booking")
		}
		return
	}

	sameDay, err := h.store.GetBookingsByDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating booking")
		return
	}
	for _, existing := range sameDay {
		if existing.ServiceID == input.ServiceID &&
			existing.Time == input.Time &&
			existing.Status != models.StatusCancelled {
			utils.RespondWithError(c, http.StatusConflict, "Time slot is already booked")
			return
		}
	}

	booking, err := h.store.CreateBooking(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error creating booking")
		return
	}

	c.JSON(http.StatusCreated, models.BookingWithService{
		Booking:     *booking,
		ServiceName: service.Name,
	})
}

// UpdateBookingStatus moves a booking along its lifecycle. Transitions
// outside the table (backward, self, or out of a terminal state) are
// rejected with 409.
func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var input UpdateBookingStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid status value")
		return
	}

	booking, err := h.store.GetBooking(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error updating booking status")
		}
		return
	}

	if !booking.Status.CanTransitionTo(input.Status) {
		utils.RespondWithError(c, http.StatusConflict,
			"Cannot transition booking from "+string(booking.Status)+" to "+string(input.Status))
		return
	}

	updated, err := h.store.UpdateBookingStatus(id, input.Status)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating booking status")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteBooking(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting booking")
		}
		return
	}

	c.Status(http.StatusNoContent)
}
