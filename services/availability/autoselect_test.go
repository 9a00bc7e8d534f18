package availability

import (
	"testing"
	"time"

	"gamecoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialDateFromWeeklyWindows(t *testing.T) {
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local) // Monday
	windows := []models.WeeklyAvailability{
		{DayOfWeek: 3, StartTime: "18:00", EndTime: "20:00", IsActive: true}, // Wednesday
	}

	date, ok := InitialDate(today, windows, nil)
	require.True(t, ok)
	assert.Equal(t, "2026-01-07", LocalDateKey(date))
}

func TestInitialDatePrefersToday(t *testing.T) {
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local) // Monday
	windows := []models.WeeklyAvailability{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "10:00", IsActive: true},
	}

	date, ok := InitialDate(today, windows, nil)
	require.True(t, ok)
	assert.Equal(t, "2026-01-05", LocalDateKey(date))
}

func TestInitialDateIgnoresInactiveWindows(t *testing.T) {
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	windows := []models.WeeklyAvailability{
		{DayOfWeek: 3, StartTime: "18:00", EndTime: "20:00", IsActive: false},
	}
	explicit := map[string][]models.ExplicitServiceSlot{
		"2026-02-10": {{Time: "10:00", Capacity: 1}},
		"2026-02-03": {{Time: "10:00", Capacity: 1}},
	}

	date, ok := InitialDate(today, windows, explicit)
	require.True(t, ok)
	assert.Equal(t, "2026-02-03", LocalDateKey(date))
}

func TestInitialDateNothingOnOffer(t *testing.T) {
	today := time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	_, ok := InitialDate(today, nil, nil)
	assert.False(t, ok)
}
