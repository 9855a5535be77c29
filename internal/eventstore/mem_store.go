package eventstore

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// MemStore keeps everything in process. It backs local runs without MongoDB
// and follows the same error contract as MongoStore.
type MemStore struct {
	mu       sync.RWMutex
	events   map[uuid.UUID]domain.Event
	tickets  []domain.Ticket
	waitlist []domain.WaitlistEntry

	clock clock.Clock
}

func NewMemStore(clk clock.Clock) *MemStore {
	if clk == nil {
		clk = clock.New()
	}
	return &MemStore{
		events: make(map[uuid.UUID]domain.Event),
		clock:  clk,
	}
}

// copyEvent detaches the slices so callers never share them with the store.
func copyEvent(e domain.Event) domain.Event {
	e.Tiers = slices.Clone(e.Tiers)
	e.Pricing = slices.Clone(e.Pricing)
	return e
}

func (s *MemStore) Save(ctx context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.ID]; exists {
		return fmt.Errorf("failed to create event: duplicated id %s", event.ID)
	}

	now := s.clock.Now().UTC()
	event.CreatedAt = now
	event.UpdatedAt = now
	s.events[event.ID] = copyEvent(event)
	return nil
}

func (s *MemStore) UpdateEvent(ctx context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.events[event.ID]
	if !ok {
		return domain.ErrEventNotFound
	}

	event.OrganizerID = current.OrganizerID
	event.CreatedAt = current.CreatedAt
	event.UpdatedAt = s.clock.Now().UTC()
	s.events[event.ID] = copyEvent(event)
	return nil
}

func (s *MemStore) GetEventByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[eventID]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}
	return copyEvent(event), nil
}

func matches(e domain.Event, f domain.FilterEvents) bool {
	if f.Query != "" &&
		!strings.Contains(strings.ToLower(e.Title), f.Query) &&
		!strings.Contains(strings.ToLower(e.Description), f.Query) {
		return false
	}
	if f.Category != "" && !strings.EqualFold(e.Category, f.Category) {
		return false
	}
	if f.OrganizerID != uuid.Nil && e.OrganizerID != f.OrganizerID {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	if !f.From.IsZero() && e.StartsAt.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && e.StartsAt.After(f.To) {
		return false
	}
	return true
}

func (s *MemStore) ListEvents(ctx context.Context, filters domain.FilterEvents) ([]domain.Event, error) {
	filters = filters.Normalize()

	s.mu.RLock()
	found := make([]domain.Event, 0)
	for _, e := range s.events {
		if matches(e, filters) {
			found = append(found, copyEvent(e))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(found, func(a, b domain.Event) int {
		if c := a.StartsAt.Compare(b.StartsAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	skip := int(filters.Skip())
	if skip >= len(found) {
		return []domain.Event{}, nil
	}
	end := min(skip+int(filters.Limit), len(found))
	return found[skip:end], nil
}

func (s *MemStore) CancelEvent(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return domain.Event{}, domain.ErrEventNotFound
	}

	event.Status = domain.StatusCancelled
	event.UpdatedAt = s.clock.Now().UTC()
	s.events[eventID] = event
	return copyEvent(event), nil
}

func (s *MemStore) ReserveSeats(ctx context.Context, eventID uuid.UUID, tier string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if event.IsCancelled() {
		return domain.ErrEventCancelled
	}

	i := slices.IndexFunc(event.Tiers, func(t domain.TicketTier) bool { return t.Name == tier })
	if i < 0 {
		return fmt.Errorf("%w: unknown tier %q", domain.ErrInvalidEvent, tier)
	}
	if event.Tiers[i].Available() < quantity {
		return domain.ErrSoldOut
	}

	event.Tiers[i].Sold += quantity
	event.UpdatedAt = s.clock.Now().UTC()
	s.events[eventID] = event
	return nil
}

func (s *MemStore) ReleaseSeats(ctx context.Context, eventID uuid.UUID, tier string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}

	i := slices.IndexFunc(event.Tiers, func(t domain.TicketTier) bool { return t.Name == tier })
	if i < 0 || event.Tiers[i].Sold < quantity {
		return domain.ErrEventNotFound
	}

	event.Tiers[i].Sold -= quantity
	event.UpdatedAt = s.clock.Now().UTC()
	s.events[eventID] = event
	return nil
}

func (s *MemStore) SaveTicket(ctx context.Context, ticket domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.PurchasedAt.IsZero() {
		ticket.PurchasedAt = s.clock.Now().UTC()
	}
	s.tickets = append(s.tickets, ticket)
	return nil
}

func (s *MemStore) CountTickets(ctx context.Context, eventID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, t := range s.tickets {
		if t.EventID == eventID {
			n++
		}
	}
	return n, nil
}

func (s *MemStore) SumRevenue(ctx context.Context, organizerID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, t := range s.tickets {
		if t.OrganizerID == organizerID {
			total += t.TotalCents
		}
	}
	return total, nil
}

func (s *MemStore) ListTicketBuyers(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emails := []string{}
	for _, t := range s.tickets {
		if t.EventID == eventID && !slices.Contains(emails, t.BuyerEmail) {
			emails = append(emails, t.BuyerEmail)
		}
	}
	return emails, nil
}

func (s *MemStore) JoinWaitlist(ctx context.Context, entry domain.WaitlistEntry) (domain.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	position := 1
	for _, w := range s.waitlist {
		if w.EventID != entry.EventID || w.Tier != entry.Tier {
			continue
		}
		if w.Email == entry.Email {
			return domain.WaitlistEntry{}, domain.ErrAlreadyOnWaitlist
		}
		position++
	}

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.JoinedAt = s.clock.Now().UTC()
	s.waitlist = append(s.waitlist, entry)

	entry.Position = position
	return entry, nil
}

// ListWaitlist relies on append order, which is arrival order.
func (s *MemStore) ListWaitlist(ctx context.Context, eventID uuid.UUID) ([]domain.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := []domain.WaitlistEntry{}
	positions := make(map[string]int)
	for _, w := range s.waitlist {
		if w.EventID != eventID {
			continue
		}
		positions[w.Tier]++
		w.Position = positions[w.Tier]
		entries = append(entries, w)
	}
	return entries, nil
}

func (s *MemStore) CountWaitlist(ctx context.Context, eventID uuid.UUID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, w := range s.waitlist {
		if w.EventID == eventID {
			n++
		}
	}
	return n, nil
}

// RequeueWaitlist reinserts entry ahead of every entry that did not join before it.
func (s *MemStore) RequeueWaitlist(ctx context.Context, entry domain.WaitlistEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.waitlist {
		if w.EventID == entry.EventID && w.Tier == entry.Tier && w.Email == entry.Email {
			return nil
		}
	}

	entry.Position = 0
	i := slices.IndexFunc(s.waitlist, func(w domain.WaitlistEntry) bool {
		return !w.JoinedAt.Before(entry.JoinedAt)
	})
	if i < 0 {
		i = len(s.waitlist)
	}
	s.waitlist = slices.Insert(s.waitlist, i, entry)
	return nil
}

func (s *MemStore) PopWaitlist(ctx context.Context, eventID uuid.UUID, tier string) (domain.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.waitlist, func(w domain.WaitlistEntry) bool {
		return w.EventID == eventID && w.Tier == tier
	})
	if i < 0 {
		return domain.WaitlistEntry{}, domain.ErrWaitlistEmpty
	}

	entry := s.waitlist[i]
	s.waitlist = slices.Delete(s.waitlist, i, i+1)

	entry.Position = 1
	return entry, nil
}
