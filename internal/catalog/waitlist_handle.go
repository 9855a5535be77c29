package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/publisher"
)

type JoinWaitlistRequest struct {
	Tier     string `json:"tier"`
	Email    string `json:"email"`
	Quantity int    `json:"quantity"`
}

func JoinWaitlist(repo Repository, pub publisher.Publisher) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/events/{id}/waitlist",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			var req JoinWaitlistRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
				return
			}
			if _, err := mail.ParseAddress(req.Email); err != nil {
				writeError(w, r, fmt.Errorf("%w: invalid email", errBadRequest))
				return
			}
			if req.Quantity <= 0 {
				req.Quantity = 1
			}

			event, err := repo.GetEventByID(ctx, id)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if event.IsCancelled() {
				writeError(w, r, domain.ErrEventCancelled)
				return
			}
			if _, ok := event.Tier(req.Tier); !ok {
				writeError(w, r, fmt.Errorf("%w: unknown tier %q", errBadRequest, req.Tier))
				return
			}

			entry, err := repo.JoinWaitlist(ctx, domain.WaitlistEntry{
				EventID:  id,
				Tier:     req.Tier,
				Email:    req.Email,
				Quantity: req.Quantity,
			})
			if err != nil {
				writeError(w, r, err)
				return
			}

			if err := pub.Publish(ctx, domain.TaskWaitlistJoined, domain.Notification{
				To:       entry.Email,
				EventID:  id,
				Title:    event.Title,
				StartsAt: event.StartsAt,
				Tier:     entry.Tier,
				Quantity: entry.Quantity,
				Position: entry.Position,
			}, publisher.WithQueue(domain.QueueDefault)); err != nil {
				ctxlogger.GetLogger(ctx).Error("Failed to publish waitlist confirmation", "event_id", id, "error", err)
			}

			httpadapter.WriteJSON(w, http.StatusCreated, entry)
		},
	}
}

func ListWaitlist(repo Repository) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/events/{id}/waitlist",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			entries, err := repo.ListWaitlist(r.Context(), id)
			if err != nil {
				writeError(w, r, err)
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, entries)
		},
	}
}

// PromoteWaitlist hands the next spot in a tier to the oldest waiting entry
// and tells them to buy.
func PromoteWaitlist(repo Repository, pub publisher.Publisher) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/events/{id}/waitlist/promote",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			tier := r.URL.Query().Get("tier")
			if tier == "" {
				writeError(w, r, fmt.Errorf("%w: tier is required", errBadRequest))
				return
			}

			event, err := repo.GetEventByID(ctx, id)
			if err != nil {
				writeError(w, r, err)
				return
			}

			entry, err := repo.PopWaitlist(ctx, id, tier)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if err := pub.Publish(ctx, domain.TaskWaitlistPromoted, domain.Notification{
				To:       entry.Email,
				EventID:  id,
				Title:    event.Title,
				StartsAt: event.StartsAt,
				Tier:     entry.Tier,
				Quantity: entry.Quantity,
			}, publisher.WithQueue(domain.QueueCritical)); err != nil {
				if requeueErr := repo.RequeueWaitlist(ctx, entry); requeueErr != nil {
					ctxlogger.GetLogger(ctx).Error("Failed to requeue waitlist entry", "event_id", id, "tier", entry.Tier, "email", entry.Email, "error", requeueErr)
				}
				writeError(w, r, err)
				return
			}

			httpadapter.WriteJSON(w, http.StatusOK, entry)
		},
	}
}
