package catalog

import (
	"context"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/google/uuid"
)

func GetOrganizerDashboard(fc *fetchcache.Manager, repo Repository) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/organizers/{id}/dashboard",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			key := domain.CacheKeyDashboardPrefix + id.String()
			dashboard, err := fetchcache.Fetch(r.Context(), fc, key, func(ctx context.Context) (domain.OrganizerDashboard, error) {
				return buildDashboard(ctx, repo, id)
			}, fetchcache.WithRetryIf(retryable))
			if err != nil {
				writeError(w, r, err)
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, dashboard)
		},
	}
}

func buildDashboard(ctx context.Context, repo Repository, organizerID uuid.UUID) (domain.OrganizerDashboard, error) {
	results, err := fetchcache.BatchQueries(ctx,
		func(ctx context.Context) (any, error) {
			return repo.ListEvents(ctx, domain.FilterEvents{OrganizerID: organizerID, Limit: domain.MaxLimit})
		},
		func(ctx context.Context) (any, error) {
			return repo.SumRevenue(ctx, organizerID)
		},
	)
	if err != nil {
		return domain.OrganizerDashboard{}, err
	}

	events := results[0].([]domain.Event)
	revenue := results[1].(int64)

	queries := make([]func(context.Context) (int64, error), 0, 2*len(events))
	for _, e := range events {
		queries = append(queries,
			func(ctx context.Context) (int64, error) {
				return repo.CountTickets(ctx, e.ID)
			},
			func(ctx context.Context) (int64, error) {
				n, err := repo.CountWaitlist(ctx, e.ID)
				return int64(n), err
			},
		)
	}

	counts, err := fetchcache.Batch(ctx, queries...)
	if err != nil {
		return domain.OrganizerDashboard{}, err
	}

	orders := make(map[uuid.UUID]int64, len(events))
	waitlists := make(map[uuid.UUID]int, len(events))
	for i, e := range events {
		orders[e.ID] = counts[2*i]
		waitlists[e.ID] = int(counts[2*i+1])
	}

	return domain.NewOrganizerDashboard(organizerID, events, revenue, orders, waitlists), nil
}
