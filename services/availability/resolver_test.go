package availability

import (
	"testing"
	"time"

	"gamecoach/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 is a Monday, 2026-01-07 a Wednesday, 2026-01-04 a Sunday.
var (
	monday    = time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	wednesday = time.Date(2026, 1, 7, 0, 0, 0, 0, time.Local)
	sunday    = time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local)
)

func window(day int, start, end string, price float64, active bool) models.WeeklyAvailability {
	return models.WeeklyAvailability{
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Price:     price,
		IsActive:  active,
	}
}

func TestResolveTierPriority(t *testing.T) {
	windows := []models.WeeklyAvailability{
		window(1, "09:00", "11:00", 20, true),
	}
	explicit := map[string][]models.ExplicitServiceSlot{
		"2026-01-05": {{ServiceID: "svc-1", Date: "2026-01-05", Time: "10:00", Capacity: 5}},
	}
	weekly := []models.WeeklyServiceSlot{
		{ServiceID: "svc-1", DayOfWeek: 1, Time: "12:00", Capacity: 3},
	}

	slots := Resolve(monday, windows, explicit, weekly)

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.Equal(t, models.TierWeeklyWindow, s.Tier)
		assert.Equal(t, 20.0, s.Price)
		require.NotNil(t, s.Capacity)
		assert.Equal(t, 1, *s.Capacity)
		assert.Empty(t, s.ServiceID)
	}
	assert.Equal(t, "09:00", slots[0].StartClock())
	assert.Equal(t, "10:00", slots[0].EndClock())
	assert.Equal(t, "10:00", slots[1].StartClock())
	assert.Equal(t, "11:00", slots[1].EndClock())
}

func TestResolveNoPartialTrailingSlot(t *testing.T) {
	// 45 minutes cannot fit a full hour.
	slots := Resolve(monday, []models.WeeklyAvailability{
		window(1, "09:00", "09:45", 10, true),
	}, nil, nil)
	assert.Empty(t, slots)

	// Exactly one hour fits exactly one slot.
	slots = Resolve(monday, []models.WeeklyAvailability{
		window(1, "09:00", "10:00", 10, true),
	}, nil, nil)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].StartClock())
	assert.Equal(t, "10:00", slots[0].EndClock())

	// 2.5 hours fit two slots; the trailing half hour is dropped.
	slots = Resolve(monday, []models.WeeklyAvailability{
		window(1, "09:00", "11:30", 10, true),
	}, nil, nil)
	require.Len(t, slots, 2)
	assert.Equal(t, "11:00", slots[1].EndClock())
}

func TestResolveSkipsBrokenWindows(t *testing.T) {
	windows := []models.WeeklyAvailability{
		window(1, "ab:cd", "11:00", 10, true), // malformed start
		window(1, "09:00", "xx:00", 10, true), // malformed end
		window(1, "12:00", "10:00", 10, true), // end before start
		window(1, "10:00", "10:00", 10, true), // zero-length
		window(1, "14:00", "15:00", 10, false), // inactive
		window(1, "16:00", "17:00", 25, true),  // the only good one
	}
	slots := Resolve(monday, windows, nil, nil)
	require.Len(t, slots, 1)
	assert.Equal(t, "16:00", slots[0].StartClock())
	assert.Equal(t, 25.0, slots[0].Price)
}

func TestResolveDayOfWeekEncodings(t *testing.T) {
	// Sunday as 0 and Sunday as 7 both match an actual Sunday.
	for _, day := range []int{0, 7} {
		slots := Resolve(sunday, []models.WeeklyAvailability{
			window(day, "09:00", "10:00", 10, true),
		}, nil, nil)
		assert.Len(t, slots, 1, "dayOfWeek=%d", day)
	}
	// And neither matches a Monday.
	for _, day := range []int{0, 7} {
		slots := Resolve(monday, []models.WeeklyAvailability{
			window(day, "09:00", "10:00", 10, true),
		}, nil, nil)
		assert.Empty(t, slots, "dayOfWeek=%d", day)
	}
}

func TestResolveExplicitTier(t *testing.T) {
	explicit := map[string][]models.ExplicitServiceSlot{
		"2026-01-05": {
			{ServiceID: "svc-1", Date: "2026-01-05", Time: "14:00", Capacity: 3},
			{ServiceID: "svc-1", Date: "2026-01-05", Time: "bad", Capacity: 3},
		},
		"2026-01-06": {
			{ServiceID: "svc-1", Date: "2026-01-06", Time: "09:00", Capacity: 2},
		},
	}

	slots := Resolve(monday, nil, explicit, nil)

	require.Len(t, slots, 1)
	assert.Equal(t, models.TierExplicitDate, slots[0].Tier)
	assert.Equal(t, "14:00", slots[0].StartClock())
	assert.Equal(t, "15:00", slots[0].EndClock())
	assert.Equal(t, 0.0, slots[0].Price)
	assert.Equal(t, "svc-1", slots[0].ServiceID)
	require.NotNil(t, slots[0].Capacity)
	assert.Equal(t, 3, *slots[0].Capacity)
}

func TestResolveWeeklyServiceTier(t *testing.T) {
	weekly := []models.WeeklyServiceSlot{
		{ServiceID: "svc-1", DayOfWeek: 3, Time: "18:00", Capacity: 4},
		{ServiceID: "svc-2", DayOfWeek: 4, Time: "18:00", Capacity: 4},
	}

	slots := Resolve(wednesday, nil, nil, weekly)

	require.Len(t, slots, 1)
	assert.Equal(t, models.TierWeeklyService, slots[0].Tier)
	assert.Equal(t, "svc-1", slots[0].ServiceID)
	assert.Equal(t, "18:00", slots[0].StartClock())
}

func TestResolveOrdersAndDeduplicates(t *testing.T) {
	explicit := map[string][]models.ExplicitServiceSlot{
		"2026-01-05": {
			{ServiceID: "svc-1", Date: "2026-01-05", Time: "16:00", Capacity: 2},
			{ServiceID: "svc-1", Date: "2026-01-05", Time: "10:00", Capacity: 2},
			{ServiceID: "svc-1", Date: "2026-01-05", Time: "10:00", Capacity: 2},
		},
	}

	slots := Resolve(monday, nil, explicit, nil)

	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].StartClock())
	assert.Equal(t, "16:00", slots[1].StartClock())
}

func TestAutoSelect(t *testing.T) {
	assert.Nil(t, AutoSelect(nil))

	slots := Resolve(monday, []models.WeeklyAvailability{
		window(1, "09:00", "12:00", 10, true),
	}, nil, nil)
	chosen := AutoSelect(slots)
	require.NotNil(t, chosen)
	assert.Equal(t, "09:00", chosen.StartClock())
}

func TestGroupServiceSlots(t *testing.T) {
	services := []models.CoachService{
		{
			ID: "svc-1",
			ServiceSlots: []models.ExplicitServiceSlot{
				{Date: "2026-01-05", Time: "10:00", Capacity: 2},
			},
			WeeklyServiceSlots: []models.WeeklyServiceSlot{
				{DayOfWeek: 3, Time: "18:00", Capacity: 4},
			},
		},
		{
			ID: "svc-2",
			ServiceSlots: []models.ExplicitServiceSlot{
				{ServiceID: "svc-2", Date: "2026-01-05", Time: "12:00", Capacity: 1},
			},
		},
	}

	byDate, weekly := GroupServiceSlots(services)

	require.Len(t, byDate["2026-01-05"], 2)
	assert.Equal(t, "svc-1", byDate["2026-01-05"][0].ServiceID)
	assert.Equal(t, "svc-2", byDate["2026-01-05"][1].ServiceID)
	require.Len(t, weekly, 1)
	assert.Equal(t, "svc-1", weekly[0].ServiceID)
}
