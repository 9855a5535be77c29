package pricing

import (
	"testing"
	"time"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/intertime"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startsAt = time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)

func eventWith(rules ...domain.PriceRule) domain.Event {
	return domain.Event{
		ID:       uuid.New(),
		Title:    "Rooftop Cinema",
		StartsAt: startsAt,
		EndsAt:   startsAt.Add(2 * time.Hour),
		Tiers: []domain.TicketTier{
			{Name: "general", PriceCents: 2000, Capacity: 100, Sold: 10},
			{Name: "front", PriceCents: 3333, Capacity: 10, Sold: 9},
			{Name: "full", PriceCents: 1000, Capacity: 5, Sold: 5},
		},
		Pricing: rules,
	}
}

var (
	earlyBird  = domain.PriceRule{Kind: domain.RuleEarlyBird, Percent: 20, Before: startsAt.Add(-30 * 24 * time.Hour)}
	demand     = domain.PriceRule{Kind: domain.RuleDemand, Percent: 25, Threshold: 0.8}
	group      = domain.PriceRule{Kind: domain.RuleGroup, Percent: 10, MinQuantity: 4}
	lastMinute = domain.PriceRule{Kind: domain.RuleLastMinute, Percent: 30, Window: intertime.Duration(24 * time.Hour)}
)

func TestQuote(t *testing.T) {
	early := startsAt.Add(-60 * 24 * time.Hour)
	week := startsAt.Add(-7 * 24 * time.Hour)
	lastDay := startsAt.Add(-2 * time.Hour)

	tests := []struct {
		name      string
		event     domain.Event
		tier      string
		quantity  int
		now       time.Time
		wantUnit  int64
		wantTotal int64
		wantRules []domain.RuleKind
	}{
		{
			name:      "no rules",
			event:     eventWith(),
			tier:      "general",
			quantity:  2,
			now:       week,
			wantUnit:  2000,
			wantTotal: 4000,
			wantRules: []domain.RuleKind{},
		},
		{
			name:      "early bird before cutoff",
			event:     eventWith(earlyBird),
			tier:      "general",
			quantity:  1,
			now:       early,
			wantUnit:  1600,
			wantTotal: 1600,
			wantRules: []domain.RuleKind{domain.RuleEarlyBird},
		},
		{
			name:      "early bird after cutoff",
			event:     eventWith(earlyBird),
			tier:      "general",
			quantity:  1,
			now:       week,
			wantUnit:  2000,
			wantTotal: 2000,
			wantRules: []domain.RuleKind{},
		},
		{
			name:      "demand surcharge over threshold",
			event:     eventWith(demand),
			tier:      "front",
			quantity:  1,
			now:       week,
			wantUnit:  4166, // 3333 * 1.25 = 4166.25
			wantTotal: 4166,
			wantRules: []domain.RuleKind{domain.RuleDemand},
		},
		{
			name:      "group discount stacks with early bird",
			event:     eventWith(earlyBird, group),
			tier:      "general",
			quantity:  4,
			now:       early,
			wantUnit:  1400,
			wantTotal: 5600,
			wantRules: []domain.RuleKind{domain.RuleEarlyBird, domain.RuleGroup},
		},
		{
			name:      "group below minimum",
			event:     eventWith(group),
			tier:      "general",
			quantity:  3,
			now:       week,
			wantUnit:  2000,
			wantTotal: 6000,
			wantRules: []domain.RuleKind{},
		},
		{
			name:      "last minute inside window",
			event:     eventWith(lastMinute),
			tier:      "general",
			quantity:  1,
			now:       lastDay,
			wantUnit:  1400,
			wantTotal: 1400,
			wantRules: []domain.RuleKind{domain.RuleLastMinute},
		},
		{
			name:      "last minute skipped when sold out",
			event:     eventWith(lastMinute),
			tier:      "full",
			quantity:  1,
			now:       lastDay,
			wantUnit:  1000,
			wantTotal: 1000,
			wantRules: []domain.RuleKind{},
		},
		{
			name:      "last minute outside window",
			event:     eventWith(lastMinute),
			tier:      "general",
			quantity:  1,
			now:       week,
			wantUnit:  2000,
			wantTotal: 2000,
			wantRules: []domain.RuleKind{},
		},
		{
			name: "multiplier clamped to floor",
			event: eventWith(
				domain.PriceRule{Kind: domain.RuleEarlyBird, Percent: 80, Before: startsAt},
				domain.PriceRule{Kind: domain.RuleGroup, Percent: 50, MinQuantity: 2},
			),
			tier:      "general",
			quantity:  2,
			now:       week,
			wantUnit:  200,
			wantTotal: 400,
			wantRules: []domain.RuleKind{domain.RuleEarlyBird, domain.RuleGroup},
		},
		{
			name:      "half cent rounds up",
			event:     eventWith(domain.PriceRule{Kind: domain.RuleGroup, Percent: 50, MinQuantity: 2}),
			tier:      "front",
			quantity:  2,
			now:       week,
			wantUnit:  1667, // 3333 * 0.5 = 1666.5
			wantTotal: 3334,
			wantRules: []domain.RuleKind{domain.RuleGroup},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, err := Quote(tt.event, tt.tier, tt.quantity, tt.now)
			require.NoError(t, err)

			assert.Equal(t, tt.wantUnit, price.UnitPriceCents)
			assert.Equal(t, tt.wantTotal, price.TotalCents)
			assert.Equal(t, tt.quantity, price.Quantity)

			kinds := make([]domain.RuleKind, 0, len(price.Applied))
			for _, a := range price.Applied {
				kinds = append(kinds, a.Kind)
			}
			assert.Equal(t, tt.wantRules, kinds)
		})
	}
}

func TestQuote_Errors(t *testing.T) {
	e := eventWith()

	_, err := Quote(e, "balcony", 1, startsAt)
	assert.ErrorIs(t, err, ErrUnknownTier)

	_, err = Quote(e, "general", 0, startsAt)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestQuote_MultiplierCeiling(t *testing.T) {
	e := eventWith(
		domain.PriceRule{Kind: domain.RuleDemand, Percent: 100, Threshold: 0.1},
		domain.PriceRule{Kind: domain.RuleDemand, Percent: 100, Threshold: 0.1},
		domain.PriceRule{Kind: domain.RuleDemand, Percent: 100, Threshold: 0.1},
	)

	price, err := Quote(e, "general", 1, startsAt)
	require.NoError(t, err)
	assert.Equal(t, MaxMultiplier, price.Multiplier)
	assert.Equal(t, int64(6000), price.UnitPriceCents)
}
