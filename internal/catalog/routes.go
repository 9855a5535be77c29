package catalog

import (
	"github.com/IsaacDSC/eventory/pkg/cachemanager"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/publisher"
	"github.com/benbjohnson/clock"
)

type Deps struct {
	Fetch     *fetchcache.Manager
	Cache     cachemanager.Cache
	Repo      Repository
	Publisher publisher.Publisher
	Clock     clock.Clock
}

func Routes(d Deps) []httpadapter.HttpHandle {
	if d.Clock == nil {
		d.Clock = clock.New()
	}

	return []httpadapter.HttpHandle{
		GetHealthCheckHandler(),
		ListEvents(d.Fetch, d.Repo),
		GetEvent(d.Fetch, d.Cache, d.Repo),
		CreateEvent(d.Fetch, d.Repo),
		GetPatchEventHandle(d.Fetch, d.Cache, d.Repo),
		CancelEvent(d.Fetch, d.Cache, d.Repo, d.Publisher),
		GetQuote(d.Fetch, d.Cache, d.Repo, d.Clock),
		PurchaseTicket(d.Fetch, d.Cache, d.Repo, d.Publisher, d.Clock),
		JoinWaitlist(d.Repo, d.Publisher),
		ListWaitlist(d.Repo),
		PromoteWaitlist(d.Repo, d.Publisher),
		GetOrganizerDashboard(d.Fetch, d.Repo),
	}
}

// AdminRoutes inspect and tune the request cache. They are meant for operators.
func AdminRoutes(d Deps) []httpadapter.HttpHandle {
	return []httpadapter.HttpHandle{
		ClearCache(d.Fetch),
		GetCacheConfig(d.Fetch),
		PatchCacheConfig(d.Fetch),
	}
}
