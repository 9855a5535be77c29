package domain

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID             uuid.UUID `json:"id" bson:"id"`
	EventID        uuid.UUID `json:"event_id" bson:"event_id"`
	OrganizerID    uuid.UUID `json:"organizer_id" bson:"organizer_id"`
	Tier           string    `json:"tier" bson:"tier"`
	Quantity       int       `json:"quantity" bson:"quantity"`
	BuyerEmail     string    `json:"buyer_email" bson:"buyer_email"`
	UnitPriceCents int64     `json:"unit_price_cents" bson:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents" bson:"total_cents"`
	PurchasedAt    time.Time `json:"purchased_at" bson:"purchased_at"`
}

type WaitlistEntry struct {
	ID       uuid.UUID `json:"id" bson:"id"`
	EventID  uuid.UUID `json:"event_id" bson:"event_id"`
	Tier     string    `json:"tier" bson:"tier"`
	Email    string    `json:"email" bson:"email"`
	Quantity int       `json:"quantity" bson:"quantity"`
	JoinedAt time.Time `json:"joined_at" bson:"joined_at"`
	// Position is 1-based and computed on read.
	Position int `json:"position" bson:"-"`
}

// Notification is the payload carried by every notify task.
type Notification struct {
	To       string    `json:"to"`
	EventID  uuid.UUID `json:"event_id"`
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
	Tier     string    `json:"tier,omitempty"`
	Quantity int       `json:"quantity,omitempty"`
	TicketID string    `json:"ticket_id,omitempty"`
	Total    int64     `json:"total_cents,omitempty"`
	Position int       `json:"position,omitempty"`
}
