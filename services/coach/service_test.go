package coach

import (
	"context"
	"testing"

	"gamecoach/models"

	"github.com/stretchr/testify/assert"
)

// Planning validation should reject what the resolver would only skip, so
// coaches see their mistakes. These inputs fail before any store access.

func TestSetWeeklyAvailabilityValidation(t *testing.T) {
	svc := &DefaultCoachService{}
	ctx := context.Background()

	tests := []struct {
		name   string
		window models.WeeklyAvailability
	}{
		{"malformed start", models.WeeklyAvailability{StartTime: "ab:00", EndTime: "10:00"}},
		{"malformed end", models.WeeklyAvailability{StartTime: "09:00", EndTime: "oops"}},
		{"end before start", models.WeeklyAvailability{StartTime: "12:00", EndTime: "10:00"}},
		{"zero length", models.WeeklyAvailability{StartTime: "10:00", EndTime: "10:00"}},
		{"negative price", models.WeeklyAvailability{StartTime: "09:00", EndTime: "10:00", Price: -5}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := svc.SetWeeklyAvailability(ctx, "coach", []models.WeeklyAvailability{test.window})
			assert.Error(t, err)
		})
	}
}

func TestSetServiceSlotsValidation(t *testing.T) {
	svc := &DefaultCoachService{}
	ctx := context.Background()

	err := svc.SetServiceSlots(ctx, "coach", "svc-1", []models.ExplicitServiceSlot{
		{Date: "not-a-date", Time: "10:00", Capacity: 1},
	}, nil)
	assert.Error(t, err)

	err = svc.SetServiceSlots(ctx, "coach", "svc-1", []models.ExplicitServiceSlot{
		{Date: "2026-01-05", Time: "nope", Capacity: 1},
	}, nil)
	assert.Error(t, err)

	err = svc.SetServiceSlots(ctx, "coach", "svc-1", []models.ExplicitServiceSlot{
		{Date: "2026-01-05", Time: "10:00", Capacity: 0},
	}, nil)
	assert.Error(t, err)

	err = svc.SetServiceSlots(ctx, "coach", "svc-1", nil, []models.WeeklyServiceSlot{
		{DayOfWeek: 3, Time: "10:00", Capacity: -1},
	})
	assert.Error(t, err)
}
