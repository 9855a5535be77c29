package eventstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	DefaultDBName      = "eventory"
	collectionEvents   = "events"
	collectionTickets  = "tickets"
	collectionWaitlist = "waitlist"
)

type MongoStore struct {
	events   *mongo.Collection
	tickets  *mongo.Collection
	waitlist *mongo.Collection

	now func() time.Time
}

func NewMongoStore(client *mongo.Client, dbName string) *MongoStore {
	if dbName == "" {
		dbName = DefaultDBName
	}

	db := client.Database(dbName)
	return &MongoStore{
		events:   db.Collection(collectionEvents),
		tickets:  db.Collection(collectionTickets),
		waitlist: db.Collection(collectionWaitlist),
		now:      time.Now,
	}
}

// EnsureIndexes creates the lookup indexes and the unique waitlist index
// JoinWaitlist depends on.
func (s MongoStore) EnsureIndexes(ctx context.Context) error {
	if _, err := s.events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "organizer_id", Value: 1}, {Key: "starts_at", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "starts_at", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}

	if _, err := s.tickets.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "event_id", Value: 1}}},
		{Keys: bson.D{{Key: "organizer_id", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create ticket indexes: %w", err)
	}

	if _, err := s.waitlist.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "tier", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create waitlist index: %w", err)
	}

	return nil
}

func (s MongoStore) Save(ctx context.Context, event domain.Event) error {
	l := ctxlogger.GetLogger(ctx)

	now := s.now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now

	if _, err := s.events.InsertOne(ctx, event); err != nil {
		l.Error("Error on create event", "event_id", event.ID, "error", err)
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s MongoStore) UpdateEvent(ctx context.Context, event domain.Event) error {
	event.UpdatedAt = s.now().UTC()

	filter := bson.D{{Key: "id", Value: event.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "title", Value: event.Title},
		{Key: "description", Value: event.Description},
		{Key: "category", Value: event.Category},
		{Key: "location", Value: event.Location},
		{Key: "starts_at", Value: event.StartsAt},
		{Key: "ends_at", Value: event.EndsAt},
		{Key: "status", Value: event.Status},
		{Key: "tiers", Value: event.Tiers},
		{Key: "pricing", Value: event.Pricing},
		{Key: "updated_at", Value: event.UpdatedAt},
	}}}

	res, err := s.events.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (s MongoStore) GetEventByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	var event domain.Event
	if err := s.events.FindOne(ctx, bson.D{{Key: "id", Value: eventID}}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			ctxlogger.GetLogger(ctx).Warn("No documents found", "event_id", eventID)
			return domain.Event{}, domain.ErrEventNotFound
		}

		return domain.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

func (s MongoStore) ListEvents(ctx context.Context, filters domain.FilterEvents) ([]domain.Event, error) {
	filters = filters.Normalize()

	opts := options.Find().
		SetSort(bson.D{{Key: "starts_at", Value: 1}, {Key: "id", Value: 1}}).
		SetSkip(filters.Skip()).
		SetLimit(int64(filters.Limit))

	cursor, err := s.events.Find(ctx, listFilter(filters), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events := []domain.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}

	return events, nil
}

func listFilter(f domain.FilterEvents) bson.D {
	filter := bson.D{}

	if f.Query != "" {
		re := bson.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "description", Value: re}},
		}})
	}
	if f.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: bson.Regex{Pattern: "^" + regexp.QuoteMeta(f.Category) + "$", Options: "i"}})
	}
	if f.OrganizerID != uuid.Nil {
		filter = append(filter, bson.E{Key: "organizer_id", Value: f.OrganizerID})
	}
	if f.Status != "" {
		filter = append(filter, bson.E{Key: "status", Value: f.Status})
	}

	startsAt := bson.D{}
	if !f.From.IsZero() {
		startsAt = append(startsAt, bson.E{Key: "$gte", Value: f.From})
	}
	if !f.To.IsZero() {
		startsAt = append(startsAt, bson.E{Key: "$lte", Value: f.To})
	}
	if len(startsAt) > 0 {
		filter = append(filter, bson.E{Key: "starts_at", Value: startsAt})
	}

	return filter
}

// CancelEvent marks the event cancelled and returns it.
func (s MongoStore) CancelEvent(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	filter := bson.D{{Key: "id", Value: eventID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "status", Value: domain.StatusCancelled},
		{Key: "updated_at", Value: s.now().UTC()},
	}}}

	var event domain.Event
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := s.events.FindOneAndUpdate(ctx, filter, update, opts).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Event{}, domain.ErrEventNotFound
		}
		return domain.Event{}, fmt.Errorf("failed to cancel event: %w", err)
	}

	return event, nil
}
