package domain

import "github.com/google/uuid"

type EventSummary struct {
	EventID      uuid.UUID `json:"event_id"`
	Title        string    `json:"title"`
	Status       Status    `json:"status"`
	Capacity     int       `json:"capacity"`
	Sold         int       `json:"sold"`
	TicketOrders int64     `json:"ticket_orders"`
	WaitlistSize int       `json:"waitlist_size"`
}

type OrganizerDashboard struct {
	OrganizerID  uuid.UUID      `json:"organizer_id"`
	Events       []EventSummary `json:"events"`
	TicketsSold  int            `json:"tickets_sold"`
	RevenueCents int64          `json:"revenue_cents"`
	SellThrough  float64        `json:"sell_through"`
}

// NewOrganizerDashboard aggregates per-event figures. orders and waitlists
// are keyed by event id; missing keys count as zero.
func NewOrganizerDashboard(organizerID uuid.UUID, events []Event, revenueCents int64, orders map[uuid.UUID]int64, waitlists map[uuid.UUID]int) OrganizerDashboard {
	d := OrganizerDashboard{
		OrganizerID:  organizerID,
		Events:       make([]EventSummary, 0, len(events)),
		RevenueCents: revenueCents,
	}

	capacity := 0
	for _, e := range events {
		s := EventSummary{
			EventID:      e.ID,
			Title:        e.Title,
			Status:       e.Status,
			TicketOrders: orders[e.ID],
			WaitlistSize: waitlists[e.ID],
		}
		for _, t := range e.Tiers {
			s.Capacity += t.Capacity
			s.Sold += t.Sold
		}

		capacity += s.Capacity
		d.TicketsSold += s.Sold
		d.Events = append(d.Events, s)
	}

	if capacity > 0 {
		d.SellThrough = float64(d.TicketsSold) / float64(capacity)
	}

	return d
}
