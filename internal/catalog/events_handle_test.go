package catalog

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestListEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("second identical search is served from cache", func(t *testing.T) {
		repo := NewMockRepository(ctrl)
		events := []domain.Event{sampleEvent(uuid.New())}

		repo.EXPECT().
			ListEvents(gomock.Any(), domain.FilterEvents{Query: "indie", Status: domain.StatusPublished, Page: 1, Limit: 20}).
			Return(events, nil).
			Times(1)

		route := ListEvents(newFetch(), repo)
		first := serve(t, route, http.MethodGet, "/api/v1/events?q=Indie", nil)
		second := serve(t, route, http.MethodGet, "/api/v1/events?q=indie&page=1", nil)

		assert.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, http.StatusOK, second.Code)

		got := decode[ListEventsResponse](t, second)
		assert.Len(t, got.Events, 1)
		assert.Equal(t, uint(20), got.Limit)
	})

	t.Run("bad query", func(t *testing.T) {
		repo := NewMockRepository(ctrl)
		rec := serve(t, ListEvents(newFetch(), repo), http.MethodGet, "/api/v1/events?limit=many", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("repository failure is not cached", func(t *testing.T) {
		repo := NewMockRepository(ctrl)
		repo.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset")).Times(2)

		route := ListEvents(newFetch(), repo)
		assert.Equal(t, http.StatusInternalServerError, serve(t, route, http.MethodGet, "/api/v1/events", nil).Code)
		assert.Equal(t, http.StatusInternalServerError, serve(t, route, http.MethodGet, "/api/v1/events", nil).Code)
	})
}

func TestGetEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	key := cacheKey(id)
	ttl := 10 * time.Minute

	tests := []struct {
		name           string
		target         string
		setupMocks     func(*MockRepository, *cachemanager.MockCache)
		maxRetries     int
		requests       int
		expectedStatus int
	}{
		{
			name:   "success_then_local_hit",
			target: "/api/v1/events/" + id.String(),
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Once(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).DoAndReturn(runAndStore).Times(1)
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(sampleEvent(id), nil).Times(1)
			},
			requests:       2,
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not_found_is_not_retried",
			target: "/api/v1/events/" + id.String(),
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Once(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).DoAndReturn(runAndStore).Times(1)
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(domain.Event{}, domain.ErrEventNotFound).Times(1)
			},
			// a retried 404 would break the Times(1) expectations
			maxRetries:     3,
			requests:       1,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "redis_read_error_falls_back_to_store",
			target: "/api/v1/events/" + id.String(),
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Once(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).Return(errors.New("dial tcp 127.0.0.1:6379: connection refused"))
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(sampleEvent(id), nil).Times(1)
			},
			// a redis failure must not reach the retry loop
			maxRetries:     3,
			requests:       1,
			expectedStatus: http.StatusOK,
		},
		{
			name:   "redis_write_error_keeps_loaded_event",
			target: "/api/v1/events/" + id.String(),
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Once(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).DoAndReturn(
					func(ctx context.Context, _ cachemanager.Key, _ any, _ time.Duration, fn cachemanager.Fn) error {
						if _, err := fn(ctx); err != nil {
							return err
						}
						return errors.New("error setting value: connection reset")
					})
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(sampleEvent(id), nil).Times(1)
			},
			maxRetries:     3,
			requests:       1,
			expectedStatus: http.StatusOK,
		},
		{
			name:   "redis_and_store_down",
			target: "/api/v1/events/" + id.String(),
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Once(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).Return(errors.New("redis connection failed"))
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(domain.Event{}, errors.New("mongo: server selection timeout"))
			},
			requests:       1,
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "invalid_id",
			target:         "/api/v1/events/not-a-uuid",
			setupMocks:     func(*MockRepository, *cachemanager.MockCache) {},
			requests:       1,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepository(ctrl)
			cc := cachemanager.NewMockCache(ctrl)
			tt.setupMocks(repo, cc)

			fc := fetchcache.New(fetchcache.Config{MaxRetries: tt.maxRetries})
			route := GetEvent(fc, cc, repo)

			for i := 0; i < tt.requests; i++ {
				rec := serve(t, route, http.MethodGet, tt.target, nil)
				assert.Equal(t, tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	valid := sampleEvent(uuid.Nil)
	valid.Status = ""

	noOrganizer := sampleEvent(uuid.Nil)
	noOrganizer.OrganizerID = uuid.Nil

	noTiers := sampleEvent(uuid.Nil)
	noTiers.Tiers = nil

	tests := []struct {
		name           string
		body           any
		setupMocks     func(*MockRepository)
		expectedStatus int
	}{
		{
			name: "created_as_draft_with_fresh_counters",
			body: valid,
			setupMocks: func(repo *MockRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e domain.Event) error {
					assert.NotEqual(t, uuid.Nil, e.ID)
					assert.Equal(t, domain.StatusDraft, e.Status)
					for _, tier := range e.Tiers {
						assert.Zero(t, tier.Sold)
					}
					return nil
				})
			},
			expectedStatus: http.StatusCreated,
		},
		{name: "missing_organizer", body: noOrganizer, setupMocks: func(*MockRepository) {}, expectedStatus: http.StatusBadRequest},
		{name: "invalid_event", body: noTiers, setupMocks: func(*MockRepository) {}, expectedStatus: http.StatusBadRequest},
		{name: "malformed_json", body: "{", setupMocks: func(*MockRepository) {}, expectedStatus: http.StatusBadRequest},
		{
			name: "database_error",
			body: valid,
			setupMocks: func(repo *MockRepository) {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("write conflict"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepository(ctrl)
			tt.setupMocks(repo)

			rec := serve(t, CreateEvent(newFetch(), repo), http.MethodPost, "/api/v1/events", tt.body)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCreateEvent_InvalidatesListings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockRepository(ctrl)
	fc := newFetch()

	repo.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return([]domain.Event{}, nil).Times(2)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	list := ListEvents(fc, repo)
	serve(t, list, http.MethodGet, "/api/v1/events", nil)
	serve(t, list, http.MethodGet, "/api/v1/events", nil)

	rec := serve(t, CreateEvent(fc, repo), http.MethodPost, "/api/v1/events", sampleEvent(uuid.Nil))
	assert.Equal(t, http.StatusCreated, rec.Code)

	serve(t, list, http.MethodGet, "/api/v1/events", nil)
}

func TestGetPatchEventHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	key := cacheKey(id)
	ttl := 5 * time.Minute

	tests := []struct {
		name           string
		payload        any
		setupMocks     func(*MockRepository, *cachemanager.MockCache)
		expectedStatus int
		expectedTitle  string
	}{
		{
			name:    "success_update",
			payload: domain.Event{Title: "Indie Night II"},
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Hydrate(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).DoAndReturn(runAndStore)
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(sampleEvent(id), nil)
				repo.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, e domain.Event) error {
					assert.Equal(t, "Indie Night II", e.Title)
					assert.Equal(t, "music", e.Category)
					return nil
				})
			},
			expectedStatus: http.StatusOK,
			expectedTitle:  "Indie Night II",
		},
		{
			name:    "merged_event_invalid",
			payload: domain.Event{EndsAt: startsAt.Add(-time.Hour)},
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Hydrate(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).DoAndReturn(runAndStore)
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(sampleEvent(id), nil)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "not_found",
			payload: domain.Event{Title: "x"},
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Hydrate(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).DoAndReturn(runAndStore)
				repo.EXPECT().GetEventByID(gomock.Any(), id).Return(domain.Event{}, domain.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:    "redis_error",
			payload: domain.Event{Title: "x"},
			setupMocks: func(repo *MockRepository, cc *cachemanager.MockCache) {
				cc.EXPECT().Key(domain.CacheKeyEventPrefix, id.String()).Return(key).AnyTimes()
				cc.EXPECT().GetDefaultTTL().Return(ttl)
				cc.EXPECT().Hydrate(gomock.Any(), key, gomock.Any(), ttl, gomock.Any()).Return(errors.New("redis connection failed"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockRepository(ctrl)
			cc := cachemanager.NewMockCache(ctrl)
			tt.setupMocks(repo, cc)

			rec := serve(t, GetPatchEventHandle(newFetch(), cc, repo), http.MethodPatch, "/api/v1/events/"+id.String(), tt.payload)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedTitle != "" {
				assert.Equal(t, tt.expectedTitle, decode[domain.Event](t, rec).Title)
			}
		})
	}
}
