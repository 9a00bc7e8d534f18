// File: handlers/coach.go
package handlers

import (
	"net/http"

	bookingRepo "gamecoach/database/repository/booking"
	"gamecoach/models"
	"gamecoach/services/availability"
	"gamecoach/services/coach"

	"github.com/gin-gonic/gin"
)

// CoachHandler exposes coach profiles, availability planning and booking
// listings over HTTP.
type CoachHandler struct {
	Svc         coach.CoachService
	BookingRepo bookingRepo.BookingRepository
}

func NewCoachHandler(svc coach.CoachService, bookings bookingRepo.BookingRepository) *CoachHandler {
	return &CoachHandler{Svc: svc, BookingRepo: bookings}
}

// RegisterCoachHandler creates a coach profile.
func (h *CoachHandler) RegisterCoachHandler(c *gin.Context) {
	var coachInput models.Coach
	if err := c.ShouldBindJSON(&coachInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Svc.RegisterCoach(c.Request.Context(), &coachInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, coachInput)
}

// CreateServiceHandler publishes a new coaching service for a coach.
func (h *CoachHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.CoachService
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.CoachUsername = c.Param("username")
	if err := h.Svc.CreateService(c.Request.Context(), &svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// GetProfileHandler returns the coach, their services (with planned slots)
// and weekly availability windows.
func (h *CoachHandler) GetProfileHandler(c *gin.Context) {
	username := c.Param("username")
	profile, err := h.Svc.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetAvailabilityHandler replaces the coach's weekly availability windows.
func (h *CoachHandler) SetAvailabilityHandler(c *gin.Context) {
	var input struct {
		Availability []models.WeeklyAvailability `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	username := c.Param("username")
	if err := h.Svc.SetWeeklyAvailability(c.Request.Context(), username, input.Availability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"availability": input.Availability})
}

// SetServiceSlotsHandler replaces one service's explicit per-date and weekly
// recurring slots.
func (h *CoachHandler) SetServiceSlotsHandler(c *gin.Context) {
	var input struct {
		ServiceSlots       []models.ExplicitServiceSlot `json:"serviceSlots"`
		WeeklyServiceSlots []models.WeeklyServiceSlot   `json:"weeklyServiceSlots"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	username := c.Param("username")
	serviceID := c.Param("serviceID")
	if err := h.Svc.SetServiceSlots(c.Request.Context(), username, serviceID, input.ServiceSlots, input.WeeklyServiceSlots); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"serviceSlots":       input.ServiceSlots,
		"weeklyServiceSlots": input.WeeklyServiceSlots,
	})
}

// GetSlotsHandler is the stateless resolution endpoint: the bookable slots
// for one coach on one date, no session required.
func (h *CoachHandler) GetSlotsHandler(c *gin.Context) {
	username := c.Param("username")
	date := c.Query("date")

	selected, ok := availability.ParseLocalDate(date)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing date, want YYYY-MM-DD"})
		return
	}

	profile, err := h.Svc.GetProfile(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	explicitByDate, weekly := availability.GroupServiceSlots(profile.Services)
	slots := availability.Resolve(selected, profile.Availability, explicitByDate, weekly)

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ListBookingsHandler returns all bookings held against a coach.
func (h *CoachHandler) ListBookingsHandler(c *gin.Context) {
	username := c.Param("username")
	bookings, err := h.BookingRepo.ListByCoach(c.Request.Context(), username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
