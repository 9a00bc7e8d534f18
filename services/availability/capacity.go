// File: services/availability/capacity.go
package availability

import (
	"context"
	"time"

	"gamecoach/models"
	"gamecoach/utils"

	"go.uber.org/zap"
)

// BookingsFetcher supplies the existing bookings for a coach.
type BookingsFetcher interface {
	FetchBookings(ctx context.Context, coachUsername string) ([]models.BookingRecord, error)
}

// CheckCapacity reports current occupancy vs capacity for a chosen slot.
// Bookings are matched by local calendar date plus "HH:MM" start string. A
// failed fetch degrades to a nil BookedCount instead of an error so slot
// selection is never blocked on the bookings store.
//
// The count is a read-time estimate only; nothing prevents a concurrent
// booking landing between this check and confirmation.
func CheckCapacity(
	ctx context.Context,
	coachUsername string,
	selectedDate time.Time,
	chosenSlot models.ResolvedTimeSlot,
	fetcher BookingsFetcher,
) models.CapacityReport {
	report := models.CapacityReport{Capacity: chosenSlot.Capacity}

	records, err := fetcher.FetchBookings(ctx, coachUsername)
	if err != nil {
		utils.GetLogger().Warn("capacity check: bookings fetch failed",
			zap.String("coach", coachUsername), zap.Error(err))
		return report
	}

	dateKey := LocalDateKey(selectedDate)
	startClock := chosenSlot.StartClock()

	count := 0
	for _, rec := range records {
		if rec.LocalDateKey() == dateKey && rec.StartClock() == startClock {
			count++
		}
	}
	report.BookedCount = &count
	return report
}
