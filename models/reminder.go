package models

// ReminderPayload is the asynq task payload for a scheduled booking reminder.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	CoachUsername string `json:"coachUsername"`
	UserID        string `json:"userId"`
	FireDate      string `json:"fireDate"` // RFC3339
	Title         string `json:"title"`
	Body          string `json:"body"`
}
