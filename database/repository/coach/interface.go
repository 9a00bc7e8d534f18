// File: database/repository/coach/interface.go
package coachRepo

import (
	"context"
	"errors"

	"gamecoach/config"
	"gamecoach/database"
	"gamecoach/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no coach exists for a username.
var ErrNotFound = errors.New("coach not found")

// CoachRepository is the store behind coach profiles and availability
// planning. Reads feed the slot resolver; writes come from the coach-side
// planning flow.
type CoachRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Coach, error)
	GetProfileByUsername(ctx context.Context, username string) (*models.CoachProfile, error)
	CreateCoach(ctx context.Context, coach *models.Coach) error
	CreateService(ctx context.Context, svc *models.CoachService) error
	ReplaceWeeklyAvailability(ctx context.Context, username string, windows []models.WeeklyAvailability) error
	ReplaceServiceSlots(ctx context.Context, username, serviceID string, explicit []models.ExplicitServiceSlot, weekly []models.WeeklyServiceSlot) error
	PruneExplicitSlotsBefore(ctx context.Context, dateKey string) (int64, error)
}

type mongoCoachRepo struct {
	coaches      *mongo.Collection
	services     *mongo.Collection
	availability *mongo.Collection
}

// NewMongoCoachRepo constructs a new MongoDB CoachRepository.
func NewMongoCoachRepo() CoachRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCoachRepo{
		coaches:      db.Collection("coaches"),
		services:     db.Collection("services"),
		availability: db.Collection("availability"),
	}
}
