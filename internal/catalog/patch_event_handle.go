package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
)

// GetPatchEventHandle merges the body into the stored event, refreshes the
// shared cache with the result and drops local copies.
func GetPatchEventHandle(fc *fetchcache.Manager, cc cachemanager.Cache, repo Repository) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "PATCH /api/v1/events/{id}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			var patch domain.Event
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
				return
			}

			var event domain.Event
			if err := cc.Hydrate(ctx, eventKey(cc, id), &event, cc.GetDefaultTTL(), func(ctx context.Context) (any, error) {
				current, err := repo.GetEventByID(ctx, id)
				if err != nil {
					return nil, err
				}

				merged := current.Merge(patch)
				if err := merged.Validate(); err != nil {
					return nil, err
				}

				if err := repo.UpdateEvent(ctx, merged); err != nil {
					return nil, err
				}

				return merged, nil
			}); err != nil {
				writeError(w, r, err)
				return
			}

			forgetLocal(fc, cc, id)
			httpadapter.WriteJSON(w, http.StatusOK, event)
		},
	}
}
