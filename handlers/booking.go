// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	coachRepo "gamecoach/database/repository/coach"
	"gamecoach/models"
	"gamecoach/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session flow over HTTP.
type BookingHandler struct {
	Svc    booking.BookingSessionService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingSessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// StartSession opens a booking session against a coach. The response already
// carries resolved slots when an initial date could be auto-selected.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		CoachUsername string `json:"coachUsername" binding:"required"`
		UserID        string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.StartSession(c.Request.Context(), input.CoachUsername, input.UserID)
	if err != nil {
		c.JSON(sessionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{Session: session})
}

// SelectDate switches the session to a new calendar date and re-resolves
// its slots.
func (h *BookingHandler) SelectDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.SelectDate(c.Request.Context(), sessionID, input.Date)
	if err != nil {
		c.JSON(sessionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{Session: session})
}

// ChooseSlot picks one slot from the resolved list and returns its occupancy.
func (h *BookingHandler) ChooseSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Start     string `json:"start" binding:"required"` // "HH:MM"
		ServiceID string `json:"serviceId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Svc.ChooseSlot(c.Request.Context(), sessionID, input.Start, input.ServiceID)
	if err != nil {
		c.JSON(sessionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.BookingResponse{Session: session})
}

// ConfirmBooking finalizes the session's chosen slot as a booking. The
// store's error message is passed through verbatim on failure.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	sessionID := c.Param("sessionID")

	session, bookingRecord, err := h.Svc.ConfirmBooking(c.Request.Context(), sessionID)
	if err != nil {
		if session != nil {
			// Submission failed; the session survives in the failed state.
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "session": session})
			return
		}
		c.JSON(sessionErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	h.Logger.Info("booking confirmed",
		zap.String("bookingId", bookingRecord.ID),
		zap.String("coach", bookingRecord.CoachUsername))
	c.JSON(http.StatusOK, models.BookingResponse{Session: session, Booking: bookingRecord})
}

// CancelSession drops the session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	if err := h.Svc.CancelSession(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func sessionErrorStatus(err error) int {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, coachRepo.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrNoDateSelected),
		errors.Is(err, booking.ErrNoSlotChosen),
		errors.Is(err, booking.ErrSlotNotInList):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
