package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var categories = []string{"music", "theatre", "sports", "tech", "comedy"}

// go run ./cmd/loadtest --base=http://localhost:8080 --rate=50 --duration=30s
func main() {
	base := flag.String("base", "http://localhost:8080", "API base URL")
	freq := flag.Int("rate", 50, "requests per second")
	duration := flag.Duration("duration", 30*time.Second, "attack duration")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	eventID, err := seedEvent(*base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed event: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Seeded event %s\n", eventID)

	rate := vegeta.Rate{Freq: *freq, Per: time.Second}
	attacker := vegeta.NewAttacker()

	var metrics vegeta.Metrics
	for res := range attacker.Attack(mixedTargeter(*base, eventID), rate, *duration, "eventory") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Printf("99th percentile: %s\n", metrics.Latencies.P99)
	fmt.Printf("95th percentile: %s\n", metrics.Latencies.P95)
	fmt.Printf("Mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Requests per second: %.2f\n", metrics.Rate)
	fmt.Printf("Success ratio: %.2f%%\n", metrics.Success*100)
	fmt.Printf("Status codes: %v\n", metrics.StatusCodes)

	fmt.Println("\n=== Report ===")
	if err := vegeta.NewTextReporter(&metrics).Report(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
	}
}

// seedEvent creates and publishes a large event for the purchase traffic.
func seedEvent(base string) (uuid.UUID, error) {
	startsAt := time.Now().Add(30 * 24 * time.Hour).Truncate(time.Hour)
	event := domain.Event{
		OrganizerID: uuid.New(),
		Title:       gofakeit.Company() + " Live",
		Category:    gofakeit.RandomString(categories),
		Location:    gofakeit.City(),
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(3 * time.Hour),
		Status:      domain.StatusPublished,
		Tiers: []domain.TicketTier{
			{Name: "general", PriceCents: 2500, Capacity: 100000},
			{Name: "vip", PriceCents: 9000, Capacity: 500},
		},
		Pricing: []domain.PriceRule{
			{Kind: domain.RuleGroup, Percent: 10, MinQuantity: 4},
			{Kind: domain.RuleDemand, Percent: 20, Threshold: 0.8},
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		return uuid.Nil, err
	}

	resp, err := http.Post(base+"/api/v1/events", "application/json", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return uuid.Nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var created domain.Event
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return uuid.Nil, err
	}
	return created.ID, nil
}

// mixedTargeter sends mostly cached reads, some quotes and a few purchases.
func mixedTargeter(base string, eventID uuid.UUID) vegeta.Targeter {
	eventURL := fmt.Sprintf("%s/api/v1/events/%s", base, eventID)

	return func(tgt *vegeta.Target) error {
		tgt.Header = http.Header{"Content-Type": {"application/json"}}
		tgt.Body = nil

		switch n := gofakeit.Number(1, 100); {
		case n <= 60:
			tgt.Method = http.MethodGet
			tgt.URL = fmt.Sprintf("%s/api/v1/events?category=%s", base, gofakeit.RandomString(categories))
		case n <= 80:
			tgt.Method = http.MethodGet
			tgt.URL = eventURL
		case n <= 90:
			tgt.Method = http.MethodGet
			tgt.URL = fmt.Sprintf("%s/quote?tier=general&quantity=%d", eventURL, gofakeit.Number(1, 6))
		default:
			payload, err := json.Marshal(map[string]any{
				"tier":     "general",
				"quantity": gofakeit.Number(1, 4),
				"email":    gofakeit.Email(),
			})
			if err != nil {
				return err
			}
			tgt.Method = http.MethodPost
			tgt.URL = eventURL + "/tickets"
			tgt.Body = payload
		}

		return nil
	}
}
