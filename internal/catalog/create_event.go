package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/google/uuid"
)

func CreateEvent(fc *fetchcache.Manager, repo Repository) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/events",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var event domain.Event
			if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
				writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
				return
			}

			if event.OrganizerID == uuid.Nil {
				writeError(w, r, fmt.Errorf("%w: organizer_id is required", domain.ErrInvalidEvent))
				return
			}
			if event.Status == "" {
				event.Status = domain.StatusDraft
			}
			for i := range event.Tiers {
				event.Tiers[i].Sold = 0
			}
			if err := event.Validate(); err != nil {
				writeError(w, r, err)
				return
			}

			event.ID = uuid.New()
			if err := repo.Save(ctx, event); err != nil {
				writeError(w, r, err)
				return
			}

			fc.InvalidatePrefix(domain.CacheKeyEventListPrefix)
			fc.InvalidatePrefix(domain.CacheKeyDashboardPrefix)

			ctxlogger.GetLogger(ctx).Info("Event created", "event_id", event.ID, "organizer_id", event.OrganizerID)
			httpadapter.WriteJSON(w, http.StatusCreated, event)
		},
	}
}
