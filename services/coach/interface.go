// File: services/coach/interface.go
package coach

import (
	"context"

	coachRepo "gamecoach/database/repository/coach"
	"gamecoach/models"
)

// CoachService fronts the coach store: profile reads for the booking page
// and the coach-side planning writes that feed the three availability tiers.
type CoachService interface {
	GetProfile(ctx context.Context, username string) (*models.CoachProfile, error)
	RegisterCoach(ctx context.Context, coach *models.Coach) error
	CreateService(ctx context.Context, svc *models.CoachService) error
	SetWeeklyAvailability(ctx context.Context, username string, windows []models.WeeklyAvailability) error
	SetServiceSlots(ctx context.Context, username, serviceID string, explicit []models.ExplicitServiceSlot, weekly []models.WeeklyServiceSlot) error
}

// DefaultCoachService implements CoachService with a Redis cache in front of
// the profile read.
type DefaultCoachService struct {
	Repo coachRepo.CoachRepository
}
