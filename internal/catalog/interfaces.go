package catalog

import (
	"context"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, event domain.Event) error
	UpdateEvent(ctx context.Context, event domain.Event) error
	GetEventByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	ListEvents(ctx context.Context, filters domain.FilterEvents) ([]domain.Event, error)
	CancelEvent(ctx context.Context, eventID uuid.UUID) (domain.Event, error)

	ReserveSeats(ctx context.Context, eventID uuid.UUID, tier string, quantity int) error
	ReleaseSeats(ctx context.Context, eventID uuid.UUID, tier string, quantity int) error
	SaveTicket(ctx context.Context, ticket domain.Ticket) error
	CountTickets(ctx context.Context, eventID uuid.UUID) (int64, error)
	SumRevenue(ctx context.Context, organizerID uuid.UUID) (int64, error)
	ListTicketBuyers(ctx context.Context, eventID uuid.UUID) ([]string, error)

	JoinWaitlist(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error)
	ListWaitlist(ctx context.Context, eventID uuid.UUID) ([]domain.WaitlistEntry, error)
	CountWaitlist(ctx context.Context, eventID uuid.UUID) (int, error)
	PopWaitlist(ctx context.Context, eventID uuid.UUID, tier string) (domain.WaitlistEntry, error)
	RequeueWaitlist(ctx context.Context, entry domain.WaitlistEntry) error
}
