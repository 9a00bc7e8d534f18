// File: database/repository/coach/coach_mongo.go
package coachRepo

import (
	"context"
	"fmt"
	"time"

	"gamecoach/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoCoachRepo) GetByUsername(ctx context.Context, username string) (*models.Coach, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var coach models.Coach
	err := r.coaches.FindOne(ctx, bson.M{"username": username}).Decode(&coach)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("coach %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("find coach: %w", err)
	}
	return &coach, nil
}

// GetProfileByUsername assembles the full booking view: coach, services with
// their planned slots, and the weekly availability windows.
func (r *mongoCoachRepo) GetProfileByUsername(ctx context.Context, username string) (*models.CoachProfile, error) {
	coach, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"coachUsername": username})
	if err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.CoachService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}

	availCursor, err := r.availability.Find(ctx, bson.M{"coachUsername": username})
	if err != nil {
		return nil, fmt.Errorf("find availability: %w", err)
	}
	defer availCursor.Close(ctx)

	var windows []models.WeeklyAvailability
	if err := availCursor.All(ctx, &windows); err != nil {
		return nil, fmt.Errorf("decode availability: %w", err)
	}

	return &models.CoachProfile{
		Coach:        *coach,
		Services:     services,
		Availability: windows,
	}, nil
}

func (r *mongoCoachRepo) CreateCoach(ctx context.Context, coach *models.Coach) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if coach.ID == "" {
		coach.ID = uuid.New().String()
	}
	if coach.CreatedAt.IsZero() {
		coach.CreatedAt = time.Now()
	}

	count, err := r.coaches.CountDocuments(ctx, bson.M{"username": coach.Username})
	if err != nil {
		return fmt.Errorf("check username: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("username %q already taken", coach.Username)
	}

	_, err = r.coaches.InsertOne(ctx, coach)
	return err
}

func (r *mongoCoachRepo) CreateService(ctx context.Context, svc *models.CoachService) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	_, err := r.services.InsertOne(ctx, svc)
	return err
}

// ReplaceWeeklyAvailability swaps out the coach's entire weekly window set,
// mirroring how the planning UI saves the whole grid at once.
func (r *mongoCoachRepo) ReplaceWeeklyAvailability(ctx context.Context, username string, windows []models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.availability.DeleteMany(ctx, bson.M{"coachUsername": username}); err != nil {
		return fmt.Errorf("clear availability: %w", err)
	}
	if len(windows) == 0 {
		return nil
	}

	docs := make([]interface{}, len(windows))
	for i, w := range windows {
		w.CoachUsername = username
		docs[i] = w
	}
	_, err := r.availability.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)})
	return err
}

// ReplaceServiceSlots swaps out one service's explicit per-date and weekly
// recurring slots.
func (r *mongoCoachRepo) ReplaceServiceSlots(ctx context.Context, username, serviceID string, explicit []models.ExplicitServiceSlot, weekly []models.WeeklyServiceSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	for i := range explicit {
		explicit[i].ServiceID = serviceID
	}
	for i := range weekly {
		weekly[i].ServiceID = serviceID
	}

	filter := bson.M{"id": serviceID, "coachUsername": username}
	update := bson.M{"$set": bson.M{
		"serviceSlots":       explicit,
		"weeklyServiceSlots": weekly,
	}}
	res, err := r.services.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update service slots: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("service %q not found for coach %q", serviceID, username)
	}
	return nil
}

// PruneExplicitSlotsBefore removes explicit per-date slots dated before
// dateKey ("YYYY-MM-DD") from every service. Housekeeping; past dates can
// never resolve again.
func (r *mongoCoachRepo) PruneExplicitSlotsBefore(ctx context.Context, dateKey string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$pull": bson.M{
		"serviceSlots": bson.M{"date": bson.M{"$lt": dateKey}},
	}}
	res, err := r.services.UpdateMany(ctx, bson.M{}, update)
	if err != nil {
		return 0, fmt.Errorf("prune slots: %w", err)
	}
	return res.ModifiedCount, nil
}

func boolPtr(b bool) *bool { return &b }
