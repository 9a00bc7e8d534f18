// File: services/availability/dates.go
package availability

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeDayOfWeek folds raw upstream day-of-week values onto the 0-6,
// Sunday=0 convention. Planner data has arrived in both 0-6 (Sunday=0) and
// 1-7 (Sunday=7) encodings; mod 7 maps both onto Sunday=0. A Monday=0 source
// would silently match wrong days, but upstream intent there is ambiguous so
// the heuristic is kept as-is.
func NormalizeDayOfWeek(raw int) int {
	return raw % 7
}

// ParseClock splits an "HH:MM" string into hour and minute. ok is false when
// either component is non-numeric; malformed planner data is skipped by
// callers rather than rejected with an error.
func ParseClock(clock string) (hour, minute int, ok bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// AnchorClock places hour:minute on the given date, in the date's own
// location. Out-of-range minutes roll over into the next hour, matching how
// the planning UI interpreted them.
func AnchorClock(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// LocalDateKey formats t as "YYYY-MM-DD" from its own calendar components.
// Never route this through UTC: for viewers ahead of or behind UTC that
// shifts the calendar date by a day.
func LocalDateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseLocalDate turns a "YYYY-MM-DD" key back into a local midnight by
// decomposing it into year/month/day, the inverse of LocalDateKey.
func ParseLocalDate(value string) (time.Time, bool) {
	parts := strings.SplitN(value, "-", 3)
	if len(parts) != 3 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
