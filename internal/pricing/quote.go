package pricing

import (
	"errors"
	"math"
	"time"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/google/uuid"
)

var (
	ErrUnknownTier     = errors.New("unknown ticket tier")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

const (
	MinMultiplier = 0.1
	MaxMultiplier = 3.0
)

type AppliedRule struct {
	Kind    domain.RuleKind `json:"kind"`
	Percent float64         `json:"percent"`
}

type Price struct {
	EventID        uuid.UUID     `json:"event_id"`
	Tier           string        `json:"tier"`
	Quantity       int           `json:"quantity"`
	BasePriceCents int64         `json:"base_price_cents"`
	UnitPriceCents int64         `json:"unit_price_cents"`
	TotalCents     int64         `json:"total_cents"`
	Multiplier     float64       `json:"multiplier"`
	Applied        []AppliedRule `json:"applied"`
}

// Quote prices quantity tickets of tierName at instant now. Matching
// discounts and surcharges are summed into one multiplier over the base
// price, clamped to [MinMultiplier, MaxMultiplier].
func Quote(event domain.Event, tierName string, quantity int, now time.Time) (Price, error) {
	if quantity <= 0 {
		return Price{}, ErrInvalidQuantity
	}

	tier, ok := event.Tier(tierName)
	if !ok {
		return Price{}, ErrUnknownTier
	}

	multiplier := 1.0
	applied := make([]AppliedRule, 0, len(event.Pricing))
	for _, rule := range event.Pricing {
		sign, match := evaluate(rule, event, tier, quantity, now)
		if !match {
			continue
		}
		multiplier += sign * rule.Percent / 100
		applied = append(applied, AppliedRule{Kind: rule.Kind, Percent: sign * rule.Percent})
	}

	multiplier = math.Min(math.Max(multiplier, MinMultiplier), MaxMultiplier)
	unit := roundCents(float64(tier.PriceCents) * multiplier)

	return Price{
		EventID:        event.ID,
		Tier:           tier.Name,
		Quantity:       quantity,
		BasePriceCents: tier.PriceCents,
		UnitPriceCents: unit,
		TotalCents:     unit * int64(quantity),
		Multiplier:     multiplier,
		Applied:        applied,
	}, nil
}

// evaluate reports whether rule applies, and -1 for a discount or +1 for a surcharge.
func evaluate(rule domain.PriceRule, event domain.Event, tier domain.TicketTier, quantity int, now time.Time) (float64, bool) {
	switch rule.Kind {
	case domain.RuleEarlyBird:
		return -1, now.Before(rule.Before)
	case domain.RuleDemand:
		return 1, tier.SoldRatio() >= rule.Threshold
	case domain.RuleGroup:
		return -1, quantity >= rule.MinQuantity
	case domain.RuleLastMinute:
		opens := event.StartsAt.Add(-rule.Window.Std())
		return -1, !now.Before(opens) && now.Before(event.StartsAt) && tier.Available() > 0
	default:
		return 0, false
	}
}

// roundCents rounds half up.
func roundCents(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
