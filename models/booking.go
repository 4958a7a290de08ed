package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records a registration against an event. EventID and Slug are
// stored verbatim as given by the caller; the reference to the event is
// deliberately weak and never validated.
type Booking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventID   string             `bson:"eventId" json:"eventId"`
	Slug      string             `bson:"slug" json:"slug"`
	Email     string             `bson:"email" json:"email"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
