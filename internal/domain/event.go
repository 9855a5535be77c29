package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/IsaacDSC/eventory/pkg/intertime"
	"github.com/google/uuid"
)

type Status string

func (s Status) String() string {
	return string(s)
}

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCancelled Status = "cancelled"
)

type Event struct {
	ID          uuid.UUID    `json:"id" bson:"id"`
	OrganizerID uuid.UUID    `json:"organizer_id" bson:"organizer_id"`
	Title       string       `json:"title" bson:"title"`
	Description string       `json:"description" bson:"description"`
	Category    string       `json:"category" bson:"category"`
	Location    string       `json:"location" bson:"location"`
	StartsAt    time.Time    `json:"starts_at" bson:"starts_at"`
	EndsAt      time.Time    `json:"ends_at" bson:"ends_at"`
	Status      Status       `json:"status" bson:"status"`
	Tiers       []TicketTier `json:"tiers" bson:"tiers"`
	Pricing     []PriceRule  `json:"pricing" bson:"pricing"`
	CreatedAt   time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at" bson:"updated_at"`
}

func (e *Event) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidEvent)
	}

	if e.StartsAt.IsZero() || !e.EndsAt.After(e.StartsAt) {
		return fmt.Errorf("%w: ends_at must be after starts_at", ErrInvalidEvent)
	}

	switch e.Status {
	case "", StatusDraft, StatusPublished, StatusCancelled:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidEvent, e.Status)
	}

	if len(e.Tiers) == 0 {
		return fmt.Errorf("%w: at least one ticket tier is required", ErrInvalidEvent)
	}

	seen := make(map[string]struct{}, len(e.Tiers))
	for _, tier := range e.Tiers {
		if err := tier.Validate(); err != nil {
			return err
		}
		if _, dup := seen[tier.Name]; dup {
			return fmt.Errorf("%w: duplicated tier %q", ErrInvalidEvent, tier.Name)
		}
		seen[tier.Name] = struct{}{}
	}

	for _, rule := range e.Pricing {
		if err := rule.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Tier returns the tier with the given name.
func (e Event) Tier(name string) (TicketTier, bool) {
	for _, t := range e.Tiers {
		if t.Name == name {
			return t, true
		}
	}
	return TicketTier{}, false
}

func (e Event) IsCancelled() bool {
	return e.Status == StatusCancelled
}

// Merge applies the non-zero fields of patch, keeping identity and timestamps.
func (e Event) Merge(patch Event) Event {
	if patch.Title != "" {
		e.Title = patch.Title
	}
	if patch.Description != "" {
		e.Description = patch.Description
	}
	if patch.Category != "" {
		e.Category = patch.Category
	}
	if patch.Location != "" {
		e.Location = patch.Location
	}
	if !patch.StartsAt.IsZero() {
		e.StartsAt = patch.StartsAt
	}
	if !patch.EndsAt.IsZero() {
		e.EndsAt = patch.EndsAt
	}
	if patch.Status != "" {
		e.Status = patch.Status
	}
	if patch.Tiers != nil {
		e.Tiers = patch.Tiers
	}
	if patch.Pricing != nil {
		e.Pricing = patch.Pricing
	}
	return e
}

type TicketTier struct {
	Name       string `json:"name" bson:"name"`
	PriceCents int64  `json:"price_cents" bson:"price_cents"`
	Capacity   int    `json:"capacity" bson:"capacity"`
	Sold       int    `json:"sold" bson:"sold"`
}

func (t TicketTier) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("%w: tier name is required", ErrInvalidEvent)
	}
	if t.PriceCents < 0 {
		return fmt.Errorf("%w: tier %q has a negative price", ErrInvalidEvent, t.Name)
	}
	if t.Capacity <= 0 {
		return fmt.Errorf("%w: tier %q needs a positive capacity", ErrInvalidEvent, t.Name)
	}
	if t.Sold < 0 || t.Sold > t.Capacity {
		return fmt.Errorf("%w: tier %q sold count out of range", ErrInvalidEvent, t.Name)
	}
	return nil
}

func (t TicketTier) Available() int {
	return t.Capacity - t.Sold
}

// SoldRatio is sold/capacity in [0, 1].
func (t TicketTier) SoldRatio() float64 {
	if t.Capacity <= 0 {
		return 1
	}
	return float64(t.Sold) / float64(t.Capacity)
}

type RuleKind string

const (
	RuleEarlyBird  RuleKind = "early_bird"
	RuleDemand     RuleKind = "demand"
	RuleGroup      RuleKind = "group"
	RuleLastMinute RuleKind = "last_minute"
)

// PriceRule adjusts a tier's base price. Percent is always positive;
// the kind decides whether it is a discount or a surcharge.
type PriceRule struct {
	Kind        RuleKind           `json:"kind" bson:"kind"`
	Percent     float64            `json:"percent" bson:"percent"`
	Before      time.Time          `json:"before,omitempty" bson:"before,omitempty"`
	Threshold   float64            `json:"threshold,omitempty" bson:"threshold,omitempty"`
	MinQuantity int                `json:"min_quantity,omitempty" bson:"min_quantity,omitempty"`
	Window      intertime.Duration `json:"window,omitempty" bson:"window,omitempty"`
}

func (r PriceRule) Validate() error {
	if r.Percent <= 0 || r.Percent > 100 {
		return fmt.Errorf("%w: %s percent must be in (0, 100]", ErrInvalidEvent, r.Kind)
	}

	switch r.Kind {
	case RuleEarlyBird:
		if r.Before.IsZero() {
			return fmt.Errorf("%w: early_bird requires before", ErrInvalidEvent)
		}
	case RuleDemand:
		if r.Threshold <= 0 || r.Threshold > 1 {
			return fmt.Errorf("%w: demand threshold must be in (0, 1]", ErrInvalidEvent)
		}
	case RuleGroup:
		if r.MinQuantity < 2 {
			return fmt.Errorf("%w: group min_quantity must be at least 2", ErrInvalidEvent)
		}
	case RuleLastMinute:
		if r.Window <= 0 {
			return fmt.Errorf("%w: last_minute requires a window", ErrInvalidEvent)
		}
	default:
		return fmt.Errorf("%w: unknown price rule %q", ErrInvalidEvent, r.Kind)
	}

	return nil
}
