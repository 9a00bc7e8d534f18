// File: services/booking/interface.go
package booking

import (
	"context"

	bookingRepo "gamecoach/database/repository/booking"
	"gamecoach/models"
	"gamecoach/services/coach"
	"gamecoach/services/notification"
	"gamecoach/services/tasks"
)

// BookingSessionService manages a viewer's stateful booking flow against one
// coach: date selection, slot choice, capacity lookup and confirmation.
type BookingSessionService interface {
	StartSession(ctx context.Context, coachUsername, userID string) (*models.BookingSession, error)
	SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error)
	ChooseSlot(ctx context.Context, sessionID, startClock, serviceID string) (*models.BookingSession, error)
	ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingSession, *models.Booking, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultBookingSessionService implements BookingSessionService.
type DefaultBookingSessionService struct {
	CoachSvc    coach.CoachService
	BookingRepo bookingRepo.BookingRepository
	Sessions    SessionStore
	Notifier    notification.NotificationService
	Reminders   *tasks.ReminderScheduler
}
