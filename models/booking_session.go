package models

// SessionState tracks where a booking session is in the date → slot →
// capacity → confirmation flow.
type SessionState string

const (
	StateNoDateSelected SessionState = "noDateSelected"
	StateDateSelected   SessionState = "dateSelected"
	StateSlotChosen     SessionState = "slotChosen"
	StateCapacityKnown  SessionState = "capacityKnown"
	StateSubmitting     SessionState = "submitting"
	StateConfirmed      SessionState = "confirmed"
	StateFailed         SessionState = "failed"
)

// BookingSession holds the per-viewer state between profile load and final
// booking. It lives in Redis with a TTL and is never persisted to Mongo.
type BookingSession struct {
	SessionID     string             `json:"sessionId"`
	CoachUsername string             `json:"coachUsername"`
	UserID        string             `json:"userId"`
	State         SessionState       `json:"state"`
	SelectedDate  string             `json:"selectedDate,omitempty"` // "YYYY-MM-DD"
	Slots         []ResolvedTimeSlot `json:"slots,omitempty"`
	ChosenSlot    *ResolvedTimeSlot  `json:"chosenSlot,omitempty"`
	Capacity      *CapacityReport    `json:"capacity,omitempty"`
	LastError     string             `json:"lastError,omitempty"`
}

// BookingResponse is the wire shape returned by the booking endpoints.
type BookingResponse struct {
	Session *BookingSession `json:"session,omitempty"`
	Booking *Booking        `json:"booking,omitempty"`
}
