package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamecoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingsFetcher struct {
	records []models.BookingRecord
	err     error
}

func (f fakeBookingsFetcher) FetchBookings(ctx context.Context, coachUsername string) ([]models.BookingRecord, error) {
	return f.records, f.err
}

func slotAt(date time.Time, hour int, capacity *int) models.ResolvedTimeSlot {
	start := AnchorClock(date, hour, 0)
	return models.ResolvedTimeSlot{
		Start:    start,
		End:      start.Add(time.Hour),
		Capacity: capacity,
		Tier:     models.TierWeeklyWindow,
	}
}

func intPtr(v int) *int { return &v }

func TestCheckCapacityCountsMatches(t *testing.T) {
	date := time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local)
	fetcher := fakeBookingsFetcher{records: []models.BookingRecord{
		{Date: AnchorClock(date, 18, 0), StartTime: "18:00"},
		{Date: AnchorClock(date, 18, 0), AltStartTime: "18:00"}, // legacy field name
		{Date: AnchorClock(date, 19, 0), Start: "19:00"},        // oldest field name
		{Date: AnchorClock(date.AddDate(0, 0, 1), 18, 0), StartTime: "18:00"}, // wrong day
	}}

	report := CheckCapacity(context.Background(), "coach", date, slotAt(date, 18, intPtr(2)), fetcher)
	require.NotNil(t, report.BookedCount)
	assert.Equal(t, 2, *report.BookedCount)
	require.NotNil(t, report.Capacity)
	assert.Equal(t, 2, *report.Capacity)

	report = CheckCapacity(context.Background(), "coach", date, slotAt(date, 19, intPtr(1)), fetcher)
	require.NotNil(t, report.BookedCount)
	assert.Equal(t, 1, *report.BookedCount)
}

func TestCheckCapacityFetchFailure(t *testing.T) {
	date := time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local)
	fetcher := fakeBookingsFetcher{err: errors.New("store unavailable")}

	report := CheckCapacity(context.Background(), "coach", date, slotAt(date, 18, intPtr(1)), fetcher)

	// Unknown, not zero: nil distinguishes "could not count" from "none".
	assert.Nil(t, report.BookedCount)
	require.NotNil(t, report.Capacity)
	assert.Equal(t, 1, *report.Capacity)
}

func TestCheckCapacityUnconstrainedSlot(t *testing.T) {
	date := time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local)
	report := CheckCapacity(context.Background(), "coach", date, slotAt(date, 18, nil), fakeBookingsFetcher{})
	assert.Nil(t, report.Capacity)
	require.NotNil(t, report.BookedCount)
	assert.Equal(t, 0, *report.BookedCount)
}

// Full scenario: one active Wednesday window 18:00-20:00 at price 15, one
// existing booking at 18:00. The 18:00 slot is full, the 19:00 slot is free.
func TestWeeklyWindowBookingScenario(t *testing.T) {
	wednesday := time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local)

	slots := Resolve(wednesday, []models.WeeklyAvailability{
		{DayOfWeek: 3, StartTime: "18:00", EndTime: "20:00", Price: 15, IsActive: true},
	}, nil, nil)
	require.Len(t, slots, 2)
	assert.Equal(t, "18:00", slots[0].StartClock())
	assert.Equal(t, "19:00", slots[1].StartClock())

	fetcher := fakeBookingsFetcher{records: []models.BookingRecord{
		{Date: AnchorClock(wednesday, 18, 0), StartTime: "18:00"},
	}}

	first := CheckCapacity(context.Background(), "coach", wednesday, slots[0], fetcher)
	require.NotNil(t, first.BookedCount)
	assert.Equal(t, 1, *first.BookedCount)
	assert.Equal(t, 1, *first.Capacity)

	second := CheckCapacity(context.Background(), "coach", wednesday, slots[1], fetcher)
	require.NotNil(t, second.BookedCount)
	assert.Equal(t, 0, *second.BookedCount)
	assert.Equal(t, 1, *second.Capacity)
}
