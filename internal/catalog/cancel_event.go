package catalog

import (
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/publisher"
)

// CancelEvent cancels the event and notifies every ticket buyer.
func CancelEvent(fc *fetchcache.Manager, cc cachemanager.Cache, repo Repository, pub publisher.Publisher) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "DELETE /api/v1/events/{id}",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			event, err := repo.CancelEvent(ctx, id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			forgetEvent(ctx, fc, cc, id)

			buyers, err := repo.ListTicketBuyers(ctx, id)
			if err != nil {
				writeError(w, r, err)
				return
			}

			for _, email := range buyers {
				if err := pub.Publish(ctx, domain.TaskEventCancelled, domain.Notification{
					To:       email,
					EventID:  event.ID,
					Title:    event.Title,
					StartsAt: event.StartsAt,
				}, publisher.WithQueue(domain.QueueDefault)); err != nil {
					l.Error("Failed to publish cancellation", "event_id", id, "to", email, "error", err)
				}
			}

			l.Info("Event cancelled", "event_id", id, "notified", len(buyers))
			httpadapter.WriteJSON(w, http.StatusOK, event)
		},
	}
}
