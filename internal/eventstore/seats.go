package eventstore

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReserveSeats adds quantity to the tier's sold count only if that many
// seats remain. The check and the increment are one conditional update, so
// concurrent buyers can never oversell a tier.
func (s MongoStore) ReserveSeats(ctx context.Context, eventID uuid.UUID, tier string, quantity int) error {
	event, err := s.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.IsCancelled() {
		return domain.ErrEventCancelled
	}

	t, ok := event.Tier(tier)
	if !ok {
		return fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidEvent, tier)
	}

	filter := bson.D{
		{Key: "id", Value: eventID},
		{Key: "status", Value: bson.D{{Key: "$ne", Value: domain.StatusCancelled}}},
		{Key: "tiers", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "name", Value: tier},
			{Key: "capacity", Value: t.Capacity},
			{Key: "sold", Value: bson.D{{Key: "$lte", Value: t.Capacity - quantity}}},
		}}}},
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "tiers.$.sold", Value: quantity}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: s.now().UTC()}}},
	}

	res, err := s.events.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrSoldOut
	}

	return nil
}

// ReleaseSeats gives back seats taken by ReserveSeats.
func (s MongoStore) ReleaseSeats(ctx context.Context, eventID uuid.UUID, tier string, quantity int) error {
	filter := bson.D{
		{Key: "id", Value: eventID},
		{Key: "tiers", Value: bson.D{{Key: "$elemMatch", Value: bson.D{
			{Key: "name", Value: tier},
			{Key: "sold", Value: bson.D{{Key: "$gte", Value: quantity}}},
		}}}},
	}
	update := bson.D{
		{Key: "$inc", Value: bson.D{{Key: "tiers.$.sold", Value: -quantity}}},
		{Key: "$set", Value: bson.D{{Key: "updated_at", Value: s.now().UTC()}}},
	}

	res, err := s.events.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}
