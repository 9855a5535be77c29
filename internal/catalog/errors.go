package catalog

import (
	"errors"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/internal/pricing"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
)

var errBadRequest = errors.New("bad request")

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, domain.ErrInvalidEvent),
		errors.Is(err, pricing.ErrUnknownTier),
		errors.Is(err, pricing.ErrInvalidQuantity):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrWaitlistEmpty):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSoldOut),
		errors.Is(err, domain.ErrAlreadyOnWaitlist),
		errors.Is(err, domain.ErrEventCancelled):
		return http.StatusConflict
	case errors.Is(err, fetchcache.ErrRequestTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// retryable keeps client errors out of the fetch retry loop.
func retryable(err error) bool {
	return statusFor(err) >= http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		ctxlogger.GetLogger(r.Context()).Error("Request failed", "status", status, "error", err)
	}
	httpadapter.WriteError(w, status, err)
}
