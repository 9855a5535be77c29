package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/queryparser"
)

type ListEventsResponse struct {
	Events []domain.Event `json:"events"`
	Page   uint           `json:"page"`
	Limit  uint           `json:"limit"`
}

// ListEvents serves browse and search. Without a status filter only
// published events are listed.
func ListEvents(fc *fetchcache.Manager, repo Repository) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/events",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var filters domain.FilterEvents
			if err := queryparser.ParseQueryParamsWithDefaults(r.URL.Query(), &filters, map[string]any{
				"status": domain.StatusPublished,
			}); err != nil {
				writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
				return
			}
			filters = filters.Normalize()

			events, err := fetchcache.Fetch(ctx, fc, filters.CacheKey(), func(ctx context.Context) ([]domain.Event, error) {
				return repo.ListEvents(ctx, filters)
			}, fetchcache.WithRetryIf(retryable))
			if err != nil {
				writeError(w, r, err)
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, ListEventsResponse{
				Events: events,
				Page:   filters.Page,
				Limit:  filters.Limit,
			})
		},
	}
}
