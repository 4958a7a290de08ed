package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mwenda/events-platform-go/logger"
	"github.com/mwenda/events-platform-go/models"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("not found")

type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	List(ctx context.Context) ([]models.Event, error)
	FindBySlug(ctx context.Context, slug string) (*models.Event, error)
	FindSimilar(ctx context.Context, slug string) []models.Event
}

type eventRepository struct {
	col *mongo.Collection
}

// NewEventRepository returns an EventRepository backed by the "events"
// collection of db.
func NewEventRepository(db *mongo.Database) EventRepository {
	return &eventRepository{col: db.Collection("events")}
}

// EnsureEventIndexes creates the unique slug index. Slug uniqueness is
// enforced here at the store level, not in handler logic, so concurrent
// creations with the same slug race safely.
func EnsureEventIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("events").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()

	if _, err := r.col.InsertOne(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

func (r *eventRepository) FindBySlug(ctx context.Context, slug string) (*models.Event, error) {
	var event models.Event
	err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&event)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// FindSimilar returns every other event sharing at least one tag with the
// event identified by slug. Any failure, including an unresolvable slug,
// degrades to an empty result; callers never see an error from this query.
func (r *eventRepository) FindSimilar(ctx context.Context, slug string) []models.Event {
	source, err := r.FindBySlug(ctx, slug)
	if err != nil {
		logger.Log.Warn("[repository] similar events lookup degraded to empty", "slug", slug, "err", err)
		return []models.Event{}
	}

	filter := bson.M{
		"_id":  bson.M{"$ne": source.ID},
		"tags": bson.M{"$in": source.Tags},
	}
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		logger.Log.Warn("[repository] similar events query degraded to empty", "slug", slug, "err", err)
		return []models.Event{}
	}

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		logger.Log.Warn("[repository] similar events decode degraded to empty", "slug", slug, "err", err)
		return []models.Event{}
	}
	if events == nil {
		events = []models.Event{}
	}
	return events
}
