package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mwenda/events-platform-go/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
}

type bookingRepository struct {
	col *mongo.Collection
}

// NewBookingRepository returns a BookingRepository backed by the "bookings"
// collection of db.
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{col: db.Collection("bookings")}
}

// Create persists the booking exactly as given. EventID is not checked
// against the events collection.
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = time.Now()

	if _, err := r.col.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}
