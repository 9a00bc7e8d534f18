// File: services/booking/session.go
package booking

import (
	"context"
	"fmt"
	"time"

	"gamecoach/models"
	"gamecoach/services/availability"
	"gamecoach/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StartSession creates a booking session against a coach, assigns it a
// SessionID and stores it in Redis. If the coach has anything on offer in
// the next two weeks, an initial date is auto-selected and its slots are
// resolved immediately so the booking page lands ready.
func (s *DefaultBookingSessionService) StartSession(ctx context.Context, coachUsername, userID string) (*models.BookingSession, error) {
	profile, err := s.CoachSvc.GetProfile(ctx, coachUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to load coach profile: %w", err)
	}

	session := &models.BookingSession{
		SessionID:     uuid.New().String(),
		CoachUsername: coachUsername,
		UserID:        userID,
		State:         models.StateNoDateSelected,
	}

	explicitByDate, _ := availability.GroupServiceSlots(profile.Services)
	if initial, ok := availability.InitialDate(time.Now(), profile.Availability, explicitByDate); ok {
		s.applyDate(ctx, session, profile, initial)
	}

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDate re-resolves slots for a newly picked calendar date. Any chosen
// slot and previously computed capacity are dropped first so nothing stale
// leaks across date changes.
func (s *DefaultBookingSessionService) SelectDate(ctx context.Context, sessionID, date string) (*models.BookingSession, error) {
	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	selected, ok := availability.ParseLocalDate(date)
	if !ok {
		return nil, fmt.Errorf("%w: %q, want YYYY-MM-DD", ErrInvalidDate, date)
	}

	profile, err := s.CoachSvc.GetProfile(ctx, session.CoachUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to load coach profile: %w", err)
	}

	s.applyDate(ctx, session, profile, selected)

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ChooseSlot picks one slot from the resolved list and refreshes its
// occupancy estimate, superseding any prior capacity result.
func (s *DefaultBookingSessionService) ChooseSlot(ctx context.Context, sessionID, startClock, serviceID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedDate == "" {
		return nil, ErrNoDateSelected
	}

	var chosen *models.ResolvedTimeSlot
	for i := range session.Slots {
		slot := session.Slots[i]
		if slot.StartClock() != startClock {
			continue
		}
		if serviceID != "" && slot.ServiceID != serviceID {
			continue
		}
		chosen = &slot
		break
	}
	if chosen == nil {
		return nil, ErrSlotNotInList
	}

	session.ChosenSlot = chosen
	session.State = models.StateSlotChosen
	s.refreshCapacity(ctx, session)

	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking persists the chosen slot as a booking. On store failure the
// session survives in the failed state carrying the store's error message,
// so the viewer can re-choose and retry; no automatic retry happens here.
func (s *DefaultBookingSessionService) ConfirmBooking(ctx context.Context, sessionID string) (*models.BookingSession, *models.Booking, error) {
	logger := utils.GetLogger()

	session, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.ChosenSlot == nil {
		return nil, nil, ErrNoSlotChosen
	}

	slot := *session.ChosenSlot
	session.State = models.StateSubmitting

	booking := &models.Booking{
		CoachUsername: session.CoachUsername,
		UserID:        session.UserID,
		Date:          slot.Start,
		StartTime:     slot.StartClock(),
		EndTime:       slot.EndClock(),
		Duration:      int(slot.End.Sub(slot.Start).Minutes()),
		Price:         slot.Price,
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		session.State = models.StateFailed
		session.LastError = err.Error()
		if saveErr := s.Sessions.Save(ctx, session); saveErr != nil {
			logger.Error("failed to persist failed session", zap.String("sessionId", sessionID), zap.Error(saveErr))
		}
		return session, nil, fmt.Errorf("booking submission failed: %w", err)
	}

	session.State = models.StateConfirmed
	session.LastError = ""

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(*booking); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmed(ctx, *booking); err != nil {
			logger.Warn("failed to send booking confirmation",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		logger.Warn("failed to delete booking session",
			zap.String("sessionId", sessionID), zap.Error(err))
	}
	return session, booking, nil
}

// CancelSession drops the session from the store.
func (s *DefaultBookingSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

// applyDate resolves slots for the selected date, auto-selects the earliest
// slot (or clears the choice) and refreshes capacity for the auto-selection.
func (s *DefaultBookingSessionService) applyDate(ctx context.Context, session *models.BookingSession, profile *models.CoachProfile, selected time.Time) {
	explicitByDate, weekly := availability.GroupServiceSlots(profile.Services)

	session.SelectedDate = availability.LocalDateKey(selected)
	session.Slots = availability.Resolve(selected, profile.Availability, explicitByDate, weekly)
	session.ChosenSlot = availability.AutoSelect(session.Slots)
	session.Capacity = nil
	session.LastError = ""

	if session.ChosenSlot == nil {
		session.State = models.StateDateSelected
		return
	}
	session.State = models.StateSlotChosen
	s.refreshCapacity(ctx, session)
}

// refreshCapacity recomputes occupancy for the chosen slot. Once a report is
// in hand the session advances from slotChosen to capacityKnown; a report is
// produced even when the booking fetch soft-fails.
func (s *DefaultBookingSessionService) refreshCapacity(ctx context.Context, session *models.BookingSession) {
	if session.ChosenSlot == nil {
		session.Capacity = nil
		return
	}
	selected, ok := availability.ParseLocalDate(session.SelectedDate)
	if !ok {
		session.Capacity = nil
		return
	}
	report := availability.CheckCapacity(ctx, session.CoachUsername, selected, *session.ChosenSlot, s.BookingRepo)
	session.Capacity = &report
	session.State = models.StateCapacityKnown
}
