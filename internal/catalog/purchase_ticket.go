package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/mail"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/internal/pricing"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/publisher"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

type PurchaseRequest struct {
	Tier     string `json:"tier"`
	Quantity int    `json:"quantity"`
	Email    string `json:"email"`
}

type PurchaseResponse struct {
	Ticket domain.Ticket `json:"ticket"`
	Price  pricing.Price `json:"price"`
}

type SoldOutResponse struct {
	Error    string `json:"error"`
	Waitlist string `json:"waitlist"`
}

// PurchaseTicket prices the order, reserves seats, stores the ticket and
// queues the confirmation. Seats are released if the ticket cannot be saved.
func PurchaseTicket(fc *fetchcache.Manager, cc cachemanager.Cache, repo Repository, pub publisher.Publisher, clk clock.Clock) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "POST /api/v1/events/{id}/tickets",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			l := ctxlogger.GetLogger(ctx)

			id, err := pathEventID(r)
			if err != nil {
				writeError(w, r, err)
				return
			}

			var req PurchaseRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
				return
			}
			if _, err := mail.ParseAddress(req.Email); err != nil {
				writeError(w, r, fmt.Errorf("%w: invalid email", errBadRequest))
				return
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

			now := clk.Now()
			price, err := pricing.Quote(event, req.Tier, req.Quantity, now)
			if err != nil {
				writeError(w, r, err)
				return
			}

			if err := repo.ReserveSeats(ctx, id, req.Tier, req.Quantity); err != nil {
				if errors.Is(err, domain.ErrSoldOut) {
					httpadapter.WriteJSON(w, http.StatusConflict, SoldOutResponse{
						Error:    err.Error(),
						Waitlist: fmt.Sprintf("/api/v1/events/%s/waitlist", id),
					})
					return
				}
				writeError(w, r, err)
				return
			}

			ticket := domain.Ticket{
				ID:             uuid.New(),
				EventID:        id,
				OrganizerID:    event.OrganizerID,
				Tier:           price.Tier,
				Quantity:       price.Quantity,
				BuyerEmail:     req.Email,
				UnitPriceCents: price.UnitPriceCents,
				TotalCents:     price.TotalCents,
				PurchasedAt:    now.UTC(),
			}

			if err := repo.SaveTicket(ctx, ticket); err != nil {
				if releaseErr := repo.ReleaseSeats(ctx, id, req.Tier, req.Quantity); releaseErr != nil {
					l.Error("Failed to release seats", "event_id", id, "tier", req.Tier, "quantity", req.Quantity, "error", releaseErr)
				}
				writeError(w, r, err)
				return
			}

			forgetEvent(ctx, fc, cc, id)

			if err := pub.Publish(ctx, domain.TaskTicketPurchased, domain.Notification{
				To:       ticket.BuyerEmail,
				EventID:  id,
				Title:    event.Title,
				StartsAt: event.StartsAt,
				Tier:     ticket.Tier,
				Quantity: ticket.Quantity,
				TicketID: ticket.ID.String(),
				Total:    ticket.TotalCents,
			}, publisher.WithQueue(domain.QueueCritical)); err != nil {
				l.Error("Failed to publish purchase confirmation", "ticket_id", ticket.ID, "error", err)
			}

			l.Info("Ticket purchased", "event_id", id, "ticket_id", ticket.ID, "tier", ticket.Tier, "quantity", ticket.Quantity)
			httpadapter.WriteJSON(w, http.StatusCreated, PurchaseResponse{Ticket: ticket, Price: price})
		},
	}
}
