package models

import "time"

// ExplicitServiceSlot is a per-service slot planned for one exact calendar
// date. Date is a plain local calendar date, "YYYY-MM-DD".
type ExplicitServiceSlot struct {
	ServiceID string `bson:"serviceId" json:"serviceId"`
	Date      string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time      string `bson:"time" json:"time"` // "HH:MM"
	Capacity  int    `bson:"capacity" json:"capacity"`
}

// WeeklyServiceSlot is a per-service slot recurring by day-of-week.
type WeeklyServiceSlot struct {
	ServiceID string `bson:"serviceId" json:"serviceId"`
	DayOfWeek int    `bson:"dayOfWeek" json:"dayOfWeek"`
	Time      string `bson:"time" json:"time"` // "HH:MM"
	Capacity  int    `bson:"capacity" json:"capacity"`
}

// SlotTier identifies which availability source produced a resolved slot.
type SlotTier string

const (
	TierWeeklyWindow  SlotTier = "weeklyWindow"  // coach-level recurring windows
	TierExplicitDate  SlotTier = "explicitDate"  // per-service exact-date slots
	TierWeeklyService SlotTier = "weeklyService" // per-service recurring slots
)

// ResolvedTimeSlot is a concrete bookable interval computed for one selected
// date. It is derived state and never persisted. A nil Capacity means the
// slot is unconstrained.
type ResolvedTimeSlot struct {
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Price     float64   `json:"price"`
	Capacity  *int      `json:"capacity,omitempty"`
	ServiceID string    `json:"serviceId,omitempty"`
	Tier      SlotTier  `json:"tier"`
}

// StartClock returns the slot's start as a zero-padded 24-hour "HH:MM".
func (s ResolvedTimeSlot) StartClock() string {
	return s.Start.Format("15:04")
}

// EndClock returns the slot's end as a zero-padded 24-hour "HH:MM".
func (s ResolvedTimeSlot) EndClock() string {
	return s.End.Format("15:04")
}

// CapacityReport is the read-time occupancy estimate for a chosen slot.
// Nil BookedCount means the bookings fetch failed (rendered as "–", never 0);
// nil Capacity means the slot is unconstrained.
type CapacityReport struct {
	BookedCount *int `json:"bookedCount"`
	Capacity    *int `json:"capacity"`
}
