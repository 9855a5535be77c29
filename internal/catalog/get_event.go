package catalog

import (
	"net/http"

	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
)

func GetEvent(fc *fetchcache.Manager, cc cachemanager.Cache, repo Repository) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/events/{id}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			event, err := loadEvent(r.Context(), fc, cc, repo, id)
			if err != nil {
				writeError(w, r, err)
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, event)
		},
	}
}
