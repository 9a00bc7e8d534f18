package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	CoachUsername string    `bson:"coachUsername" json:"coachUsername"`
	UserID        string    `bson:"userId" json:"userId"`
	Date          time.Time `bson:"date" json:"date"`           // session date-time
	StartTime     string    `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime       string    `bson:"endTime" json:"endTime"`     // "HH:MM"
	Duration      int       `bson:"duration" json:"duration"`   // minutes
	Price         float64   `bson:"price" json:"price"`
	Status        string    `bson:"status" json:"status"` // "confirmed", "completed"
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// BookingRecord is the read shape for occupancy counting. Older records in
// the bookings store carried the start clock under different field names, so
// all three are decoded and resolved through StartClock.
type BookingRecord struct {
	CoachUsername string    `bson:"coachUsername" json:"coachUsername"`
	Date          time.Time `bson:"date" json:"date"`
	StartTime     string    `bson:"startTime,omitempty" json:"startTime,omitempty"`
	AltStartTime  string    `bson:"start_time,omitempty" json:"start_time,omitempty"`
	Start         string    `bson:"start,omitempty" json:"start,omitempty"`
}

// StartClock returns the record's start clock, trying the known field names
// in order. Compatibility shim for heterogeneous upstream data.
func (r BookingRecord) StartClock() string {
	if r.StartTime != "" {
		return r.StartTime
	}
	if r.AltStartTime != "" {
		return r.AltStartTime
	}
	return r.Start
}

// LocalDateKey returns the record's booking date as a local "YYYY-MM-DD".
func (r BookingRecord) LocalDateKey() string {
	return r.Date.Local().Format("2006-01-02")
}

// BookingRequest is the submission payload for a confirmed booking.
type BookingRequest struct {
	CoachUsername string    `json:"coachUsername"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"startTime"` // "HH:MM"
	EndTime       string    `json:"endTime"`   // "HH:MM"
	Duration      int       `json:"duration"`  // minutes
	Price         float64   `json:"price"`
	UserID        string    `json:"userId"`
}
