// File: services/notification/interface.go
package notification

import (
	"context"

	"gamecoach/models"
)

// NotificationService delivers booking-related notifications to coaches.
type NotificationService interface {
	SendBookingConfirmed(ctx context.Context, booking models.Booking) error
	SendBookingReminder(ctx context.Context, payload models.ReminderPayload) error
}
