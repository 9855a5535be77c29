package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var startsAt = time.Date(2026, 11, 20, 21, 0, 0, 0, time.UTC)

func sampleEvent(id uuid.UUID) domain.Event {
	return domain.Event{
		ID:          id,
		OrganizerID: uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e"),
		Title:       "Indie Night",
		Category:    "music",
		StartsAt:    startsAt,
		EndsAt:      startsAt.Add(4 * time.Hour),
		Status:      domain.StatusPublished,
		Tiers: []domain.TicketTier{
			{Name: "general", PriceCents: 3000, Capacity: 200, Sold: 20},
			{Name: "vip", PriceCents: 12000, Capacity: 20, Sold: 20},
		},
		Pricing: []domain.PriceRule{
			{Kind: domain.RuleGroup, Percent: 10, MinQuantity: 4},
		},
	}
}

// newFetch builds a manager that never retries so failing fakes return at once.
func newFetch() *fetchcache.Manager {
	return fetchcache.New(fetchcache.Config{CacheTimeout: time.Minute, MaxRetries: 0, RequestTimeout: 5 * time.Second})
}

func cacheKey(id uuid.UUID) cachemanager.Key {
	return cachemanager.Key("eventory:event:" + id.String())
}

// runAndStore mimics the redis strategy: run fn and decode its JSON into value.
func runAndStore(ctx context.Context, _ cachemanager.Key, value any, _ time.Duration, fn cachemanager.Fn) error {
	v, err := fn(ctx)
	if err != nil {
		return err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, value)
}

func serve(t *testing.T, route httpadapter.HttpHandle, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	mux := http.NewServeMux()
	httpadapter.Register(mux, route)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, target, &buf))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type notificationMatcher struct {
	to       string
	quantity int
}

// notificationFor matches a domain.Notification by recipient and quantity.
func notificationFor(to string, quantity int) gomock.Matcher {
	return notificationMatcher{to: to, quantity: quantity}
}

func (m notificationMatcher) Matches(x any) bool {
	n, ok := x.(domain.Notification)
	return ok && n.To == m.to && n.Quantity == m.quantity
}

func (m notificationMatcher) String() string {
	return fmt.Sprintf("notification to %s for %d", m.to, m.quantity)
}

type queueMatcher string

// onQueue matches the asynq.Queue option a publish call was given.
func onQueue(name string) gomock.Matcher {
	return queueMatcher(name)
}

func (m queueMatcher) Matches(x any) bool {
	opt, ok := x.(asynq.Option)
	return ok && opt.Type() == asynq.QueueOpt && opt.Value() == string(m)
}

func (m queueMatcher) String() string {
	return fmt.Sprintf("queue %q", string(m))
}
