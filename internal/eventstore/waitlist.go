package eventstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// JoinWaitlist appends entry to the tier's queue and returns it with its position.
func (s MongoStore) JoinWaitlist(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.JoinedAt = s.now().UTC()

	if _, err := s.waitlist.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.WaitlistEntry{}, domain.ErrAlreadyOnWaitlist
		}
		return domain.WaitlistEntry{}, fmt.Errorf("failed to join waitlist: %w", err)
	}

	ahead, err := s.waitlist.CountDocuments(ctx, bson.D{
		{Key: "event_id", Value: entry.EventID},
		{Key: "tier", Value: entry.Tier},
		{Key: "joined_at", Value: bson.D{{Key: "$lt", Value: entry.JoinedAt}}},
	})
	if err != nil {
		return domain.WaitlistEntry{}, fmt.Errorf("failed to compute waitlist position: %w", err)
	}

	entry.Position = int(ahead) + 1
	return entry, nil
}

// ListWaitlist returns the event's waitlist ordered by arrival, numbered per tier.
func (s MongoStore) ListWaitlist(ctx context.Context, eventID uuid.UUID) ([]domain.WaitlistEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "joined_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.waitlist.Find(ctx, bson.D{{Key: "event_id", Value: eventID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}

	entries := []domain.WaitlistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode waitlist: %w", err)
	}

	positions := make(map[string]int)
	for i := range entries {
		positions[entries[i].Tier]++
		entries[i].Position = positions[entries[i].Tier]
	}

	return entries, nil
}

func (s MongoStore) CountWaitlist(ctx context.Context, eventID uuid.UUID) (int, error) {
	n, err := s.waitlist.CountDocuments(ctx, bson.D{{Key: "event_id", Value: eventID}})
	if err != nil {
		return 0, fmt.Errorf("failed to count waitlist: %w", err)
	}
	return int(n), nil
}

// RequeueWaitlist puts a popped entry back. It keeps its original joined_at,
// so it sorts ahead of everyone who joined later. An entry already queued
// again with the same email is left alone.
func (s MongoStore) RequeueWaitlist(ctx context.Context, entry domain.WaitlistEntry) error {
	entry.Position = 0
	if _, err := s.waitlist.InsertOne(ctx, entry); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		return fmt.Errorf("failed to requeue waitlist entry: %w", err)
	}
	return nil
}

// PopWaitlist removes and returns the oldest entry of the tier.
func (s MongoStore) PopWaitlist(ctx context.Context, eventID uuid.UUID, tier string) (domain.WaitlistEntry, error) {
	filter := bson.D{{Key: "event_id", Value: eventID}, {Key: "tier", Value: tier}}
	opts := options.FindOneAndDelete().SetSort(bson.D{{Key: "joined_at", Value: 1}, {Key: "_id", Value: 1}})

	var entry domain.WaitlistEntry
	if err := s.waitlist.FindOneAndDelete(ctx, filter, opts).Decode(&entry); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.WaitlistEntry{}, domain.ErrWaitlistEmpty
		}
		return domain.WaitlistEntry{}, fmt.Errorf("failed to pop waitlist: %w", err)
	}

	entry.Position = 1
	return entry, nil
}
