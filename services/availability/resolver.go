// File: services/availability/resolver.go
package availability

import (
	"sort"
	"time"

	"gamecoach/models"
)

// Every bookable interval is exactly one hour.
const slotDuration = 60 * time.Minute

// Resolve computes the bookable slots for selectedDate with a strict tiered
// fallback: coach-level weekly windows first, then explicit per-date service
// slots, then weekly per-service slots. Only one tier's output is ever
// returned; tiers are never merged. The result is ordered by start time and
// deduplicated, and each slot carries the tier that produced it.
func Resolve(
	selectedDate time.Time,
	weeklyWindows []models.WeeklyAvailability,
	explicitSlotsByDate map[string][]models.ExplicitServiceSlot,
	weeklyServiceSlots []models.WeeklyServiceSlot,
) []models.ResolvedTimeSlot {
	if slots := resolveWeeklyWindows(selectedDate, weeklyWindows); len(slots) > 0 {
		return finalize(slots)
	}
	if slots := resolveExplicitSlots(selectedDate, explicitSlotsByDate); len(slots) > 0 {
		return finalize(slots)
	}
	return finalize(resolveWeeklyServiceSlots(selectedDate, weeklyServiceSlots))
}

// resolveWeeklyWindows expands the coach's active weekly windows for the
// selected weekday into sequential one-hour slots. A trailing remainder
// shorter than a full hour is not emitted. Windows with malformed times or
// end <= start are skipped, not errored.
func resolveWeeklyWindows(selectedDate time.Time, windows []models.WeeklyAvailability) []models.ResolvedTimeSlot {
	day := int(selectedDate.Weekday())

	var out []models.ResolvedTimeSlot
	for _, w := range windows {
		if !w.IsActive || NormalizeDayOfWeek(w.DayOfWeek) != day {
			continue
		}
		startHour, startMin, ok := ParseClock(w.StartTime)
		if !ok {
			continue
		}
		endHour, endMin, ok := ParseClock(w.EndTime)
		if !ok {
			continue
		}
		start := AnchorClock(selectedDate, startHour, startMin)
		end := AnchorClock(selectedDate, endHour, endMin)
		if !end.After(start) {
			continue
		}
		for cursor := start; !cursor.Add(slotDuration).After(end); cursor = cursor.Add(slotDuration) {
			// Weekly windows model one-on-one coaching; capacity is always 1.
			capacity := 1
			out = append(out, models.ResolvedTimeSlot{
				Start:    cursor,
				End:      cursor.Add(slotDuration),
				Price:    w.Price,
				Capacity: &capacity,
				Tier:     models.TierWeeklyWindow,
			})
		}
	}
	return out
}

// resolveExplicitSlots anchors the per-service slots planned for exactly the
// selected date. Price lives on the service, not the slot, so it is zero here.
func resolveExplicitSlots(selectedDate time.Time, slotsByDate map[string][]models.ExplicitServiceSlot) []models.ResolvedTimeSlot {
	var out []models.ResolvedTimeSlot
	for _, s := range slotsByDate[LocalDateKey(selectedDate)] {
		hour, min, ok := ParseClock(s.Time)
		if !ok {
			continue
		}
		start := AnchorClock(selectedDate, hour, min)
		capacity := s.Capacity
		out = append(out, models.ResolvedTimeSlot{
			Start:     start,
			End:       start.Add(slotDuration),
			Capacity:  &capacity,
			ServiceID: s.ServiceID,
			Tier:      models.TierExplicitDate,
		})
	}
	return out
}

// resolveWeeklyServiceSlots anchors the per-service recurring slots matching
// the selected weekday.
func resolveWeeklyServiceSlots(selectedDate time.Time, weeklySlots []models.WeeklyServiceSlot) []models.ResolvedTimeSlot {
	day := int(selectedDate.Weekday())

	var out []models.ResolvedTimeSlot
	for _, s := range weeklySlots {
		if NormalizeDayOfWeek(s.DayOfWeek) != day {
			continue
		}
		hour, min, ok := ParseClock(s.Time)
		if !ok {
			continue
		}
		start := AnchorClock(selectedDate, hour, min)
		capacity := s.Capacity
		out = append(out, models.ResolvedTimeSlot{
			Start:     start,
			End:       start.Add(slotDuration),
			Capacity:  &capacity,
			ServiceID: s.ServiceID,
			Tier:      models.TierWeeklyService,
		})
	}
	return out
}

// finalize orders slots by start time and drops duplicates sharing a start
// time and service.
func finalize(slots []models.ResolvedTimeSlot) []models.ResolvedTimeSlot {
	if len(slots) == 0 {
		return nil
	}
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	seen := make(map[string]struct{}, len(slots))
	out := slots[:0]
	for _, s := range slots {
		key := s.Start.Format("2006-01-02T15:04") + "|" + s.ServiceID
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// AutoSelect returns the slot a freshly resolved list should pre-select: the
// earliest-starting one, or nil for an empty list.
func AutoSelect(slots []models.ResolvedTimeSlot) *models.ResolvedTimeSlot {
	if len(slots) == 0 {
		return nil
	}
	chosen := slots[0]
	return &chosen
}

// GroupServiceSlots indexes a profile's explicit per-date slots by their
// "YYYY-MM-DD" key and flattens the weekly per-service slots, producing the
// two service-tier inputs Resolve expects. Slots missing a service reference
// inherit their owning service's ID.
func GroupServiceSlots(services []models.CoachService) (map[string][]models.ExplicitServiceSlot, []models.WeeklyServiceSlot) {
	byDate := make(map[string][]models.ExplicitServiceSlot)
	var weekly []models.WeeklyServiceSlot
	for _, svc := range services {
		for _, s := range svc.ServiceSlots {
			slot := s
			if slot.ServiceID == "" {
				slot.ServiceID = svc.ID
			}
			byDate[slot.Date] = append(byDate[slot.Date], slot)
		}
		for _, s := range svc.WeeklyServiceSlots {
			slot := s
			if slot.ServiceID == "" {
				slot.ServiceID = svc.ID
			}
			weekly = append(weekly, slot)
		}
	}
	return byDate, weekly
}
