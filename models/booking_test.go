package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingRecordStartClockFallback(t *testing.T) {
	assert.Equal(t, "18:00", BookingRecord{StartTime: "18:00", AltStartTime: "19:00", Start: "20:00"}.StartClock())
	assert.Equal(t, "19:00", BookingRecord{AltStartTime: "19:00", Start: "20:00"}.StartClock())
	assert.Equal(t, "20:00", BookingRecord{Start: "20:00"}.StartClock())
	assert.Equal(t, "", BookingRecord{}.StartClock())
}

func TestResolvedTimeSlotClocks(t *testing.T) {
	start := time.Date(2026, 1, 7, 9, 5, 0, 0, time.Local)
	slot := ResolvedTimeSlot{Start: start, End: start.Add(time.Hour)}
	assert.Equal(t, "09:05", slot.StartClock())
	assert.Equal(t, "10:05", slot.EndClock())
}
