// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"time"

	"gamecoach/config"
	"gamecoach/database"
	"gamecoach/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the bookings store. FetchBookings is the read side
// used for occupancy counting and satisfies availability.BookingsFetcher.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	FetchBookings(ctx context.Context, coachUsername string) ([]models.BookingRecord, error)
	ListByCoach(ctx context.Context, coachUsername string) ([]models.Booking, error)
	MarkCompletedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
