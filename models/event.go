package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	Date        string             `bson:"date" json:"date"`
	Time        string             `bson:"time" json:"time"`
	Location    string             `bson:"location" json:"location"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Tags        []string           `bson:"tags,omitempty" json:"tags,omitempty"`
	Agenda      []string           `bson:"agenda,omitempty" json:"agenda,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// SplitList turns a comma-delimited form field into a slice, trimming
// whitespace and dropping empty segments. Returns nil for an empty input
// so optional fields stay omitted from the stored document.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
