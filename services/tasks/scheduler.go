// File: services/tasks/scheduler.go
package tasks

import (
	"fmt"
	"time"

	"gamecoach/config"
	"gamecoach/models"

	"github.com/hibiken/asynq"
)

// ReminderScheduler enqueues booking reminders onto the task queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates a scheduler backed by the reminder queue's
// Redis DB.
func NewReminderScheduler() *ReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	})
	return &ReminderScheduler{client: client}
}

// ScheduleBookingReminder enqueues a reminder ahead of the session start.
// Sessions starting inside the lead window get no reminder.
func (s *ReminderScheduler) ScheduleBookingReminder(booking models.Booking) error {
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := booking.Date.Add(-lead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:     booking.ID,
		CoachUsername: booking.CoachUsername,
		UserID:        booking.UserID,
		FireDate:      fireAt.Format(time.RFC3339),
		Title:         fmt.Sprintf("Upcoming session at %s", booking.StartTime),
		Body: fmt.Sprintf("Your coaching session on %s runs %s - %s. Booking code: %s.",
			booking.Date.Local().Format("02 Jan 2006"), booking.StartTime, booking.EndTime, booking.ID),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *ReminderScheduler) Close() error {
	return s.client.Close()
}
