// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"gamecoach/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now()
	}
	if booking.Status == "" {
		booking.Status = "confirmed"
	}

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("booking %q not found", id)
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}
	return &booking, nil
}

// FetchBookings returns the coach's bookings in the tolerant record shape
// used for occupancy counting.
func (r *mongoBookingRepo) FetchBookings(ctx context.Context, coachUsername string) ([]models.BookingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"coachUsername": coachUsername})
	if err != nil {
		return nil, fmt.Errorf("fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return records, nil
}

func (r *mongoBookingRepo) ListByCoach(ctx context.Context, coachUsername string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"coachUsername": coachUsername})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}
	return bookings, nil
}

// MarkCompletedBefore flips confirmed bookings whose session date has passed
// to "completed". Run by the housekeeping cron.
func (r *mongoBookingRepo) MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": "confirmed",
		"date":   bson.M{"$lt": cutoff},
	}
	res, err := r.coll.UpdateMany(ctx, filter, bson.M{"$set": bson.M{"status": "completed"}})
	if err != nil {
		return 0, fmt.Errorf("mark completed: %w", err)
	}
	return res.ModifiedCount, nil
}
