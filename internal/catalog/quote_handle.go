package catalog

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/IsaacDSC/eventory/internal/pricing"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/benbjohnson/clock"
)

func GetQuote(fc *fetchcache.Manager, cc cachemanager.Cache, repo Repository, clk clock.Clock) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/events/{id}/quote",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			quantity := 1
			if q := r.URL.Query().Get("quantity"); q != "" {
				if quantity, err = strconv.Atoi(q); err != nil {
					writeError(w, r, fmt.Errorf("%w: invalid quantity", errBadRequest))
					return
				}
			}

			event, err := loadEvent(r.Context(), fc, cc, repo, id)
			if err != nil {
				writeError(w, r, err)
				return
			}

			price, err := pricing.Quote(event, r.URL.Query().Get("tier"), quantity, clk.Now())
			if err != nil {
				writeError(w, r, err)
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, price)
		},
	}
}
