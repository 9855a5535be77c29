package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/domain"
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/google/uuid"
)

func eventKey(cache cachemanager.Cache, eventID uuid.UUID) cachemanager.Key {
	return cache.Key(domain.CacheKeyEventPrefix, eventID.String())
}

func pathEventID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id: %v", errBadRequest, err)
	}
	return id, nil
}

// loadEvent reads an event through the in-process cache, whose fetch goes to
// the shared redis tier before the repository.
func loadEvent(ctx context.Context, fc *fetchcache.Manager, cc cachemanager.Cache, repo Repository, eventID uuid.UUID) (domain.Event, error) {
	key := eventKey(cc, eventID)

	return fetchcache.Fetch(ctx, fc, key.String(), func(ctx context.Context) (domain.Event, error) {
		return loadShared(ctx, cc, key, repo, eventID)
	}, fetchcache.WithRetryIf(retryable))
}

// loadShared goes through redis, but a redis failure never fails the read:
// the store answers instead.
func loadShared(ctx context.Context, cc cachemanager.Cache, key cachemanager.Key, repo Repository, eventID uuid.UUID) (domain.Event, error) {
	var (
		event   domain.Event
		loaded  domain.Event
		loadErr error
		repoHit bool
	)
	err := cc.Once(ctx, key, &event, cc.GetDefaultTTL(), func(ctx context.Context) (any, error) {
		repoHit = true
		loaded, loadErr = repo.GetEventByID(ctx, eventID)
		return loaded, loadErr
	})
	if err == nil {
		return event, nil
	}

	l := ctxlogger.GetLogger(ctx)
	if repoHit {
		if loadErr != nil {
			return domain.Event{}, loadErr
		}
		l.Warn("Failed to store shared event cache", "event_id", eventID, "error", err)
		return loaded, nil
	}

	l.Warn("Shared event cache unavailable, reading store", "event_id", eventID, "error", err)
	return repo.GetEventByID(ctx, eventID)
}

// forgetLocal drops every in-process view that includes the event.
func forgetLocal(fc *fetchcache.Manager, cc cachemanager.Cache, eventID uuid.UUID) {
	fc.Invalidate(eventKey(cc, eventID).String())
	fc.InvalidatePrefix(domain.CacheKeyEventListPrefix)
	fc.InvalidatePrefix(domain.CacheKeyDashboardPrefix)
}

// forgetEvent also drops the shared copy. Redis errors are only logged;
// the entry still expires with its TTL.
func forgetEvent(ctx context.Context, fc *fetchcache.Manager, cc cachemanager.Cache, eventID uuid.UUID) {
	if err := cc.RemoveValue(ctx, eventKey(cc, eventID), nil); err != nil {
		ctxlogger.GetLogger(ctx).Warn("Failed to drop shared event cache", "event_id", eventID, "error", err)
	}
	forgetLocal(fc, cc, eventID)
}
