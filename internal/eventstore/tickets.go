package eventstore

import (
	"context"
	"fmt"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func (s MongoStore) SaveTicket(ctx context.Context, ticket domain.Ticket) error {
	if ticket.PurchasedAt.IsZero() {
		ticket.PurchasedAt = s.now().UTC()
	}

	if _, err := s.tickets.InsertOne(ctx, ticket); err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return nil
}

// CountTickets counts ticket orders for an event.
func (s MongoStore) CountTickets(ctx context.Context, eventID uuid.UUID) (int64, error) {
	n, err := s.tickets.CountDocuments(ctx, bson.D{{Key: "event_id", Value: eventID}})
	if err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return n, nil
}

// SumRevenue totals total_cents over every ticket of the organizer's events.
func (s MongoStore) SumRevenue(ctx context.Context, organizerID uuid.UUID) (int64, error) {
	pipeline := revenuePipeline(organizerID)

	cursor, err := s.tickets.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	var result []struct {
		Total int64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("failed to decode revenue: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}

	return result[0].Total, nil
}

func revenuePipeline(organizerID uuid.UUID) bson.A {
	return bson.A{
		bson.D{{Key: "$match", Value: bson.D{{Key: "organizer_id", Value: organizerID}}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total_cents"}}},
		}}},
	}
}

// ListTicketBuyers returns the distinct buyer emails of an event.
func (s MongoStore) ListTicketBuyers(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	res := s.tickets.Distinct(ctx, "buyer_email", bson.D{{Key: "event_id", Value: eventID}})
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to list buyers: %w", err)
	}

	emails := []string{}
	if err := res.Decode(&emails); err != nil {
		return nil, fmt.Errorf("failed to decode buyers: %w", err)
	}

	return emails, nil
}
