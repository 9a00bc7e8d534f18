// File: services/availability/autoselect.go
package availability

import (
	"sort"
	"time"

	"gamecoach/models"
)

// How far ahead the initial-date scan looks.
const initialDateScanDays = 14

// InitialDate picks the date a booking page should land on before the viewer
// has chosen one: the first of the next 14 days (starting today) whose
// weekday appears in an active weekly window. If no such day exists it falls
// back to the earliest explicit per-date key, parsed as a local date. ok is
// false when the coach has nothing to offer at all.
func InitialDate(
	today time.Time,
	weeklyWindows []models.WeeklyAvailability,
	explicitSlotsByDate map[string][]models.ExplicitServiceSlot,
) (time.Time, bool) {
	activeDays := make(map[int]bool)
	for _, w := range weeklyWindows {
		if w.IsActive {
			activeDays[NormalizeDayOfWeek(w.DayOfWeek)] = true
		}
	}
	for i := 0; i < initialDateScanDays; i++ {
		d := today.AddDate(0, 0, i)
		if activeDays[int(d.Weekday())] {
			return d, true
		}
	}

	keys := make([]string, 0, len(explicitSlotsByDate))
	for k := range explicitSlotsByDate {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if d, ok := ParseLocalDate(k); ok {
			return d, true
		}
	}
	return time.Time{}, false
}
