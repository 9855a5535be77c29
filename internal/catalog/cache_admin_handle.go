package catalog

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
	"github.com/IsaacDSC/eventory/pkg/fetchcache"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/intertime"
)

type CacheConfig struct {
	CacheTimeout   intertime.Duration `json:"cache_timeout"`
	MaxRetries     int                `json:"max_retries"`
	RequestTimeout intertime.Duration `json:"request_timeout"`
	Entries        int                `json:"entries"`
}

type CacheConfigPatch struct {
	CacheTimeout   *intertime.Duration `json:"cache_timeout"`
	MaxRetries     *int                `json:"max_retries"`
	RequestTimeout *intertime.Duration `json:"request_timeout"`
}

func (p CacheConfigPatch) toUpdate() fetchcache.ConfigUpdate {
	var u fetchcache.ConfigUpdate
	if p.CacheTimeout != nil {
		d := p.CacheTimeout.Std()
		u.CacheTimeout = &d
	}
	if p.MaxRetries != nil {
		u.MaxRetries = p.MaxRetries
	}
	if p.RequestTimeout != nil {
		d := p.RequestTimeout.Std()
		u.RequestTimeout = &d
	}
	return u
}

func (p CacheConfigPatch) validate() error {
	for name, d := range map[string]*intertime.Duration{"cache_timeout": p.CacheTimeout, "request_timeout": p.RequestTimeout} {
		if d != nil && d.Std() <= 0 {
			return fmt.Errorf("%w: %s must be positive", errBadRequest, name)
		}
	}
	if p.MaxRetries != nil && *p.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries must not be negative", errBadRequest)
	}
	return nil
}

func cacheConfigOf(fc *fetchcache.Manager) CacheConfig {
	c := fc.Config()
	return CacheConfig{
		CacheTimeout:   intertime.Duration(c.CacheTimeout),
		MaxRetries:     c.MaxRetries,
		RequestTimeout: intertime.Duration(c.RequestTimeout),
		Entries:        fc.Len(),
	}
}

func ClearCache(fc *fetchcache.Manager) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "DELETE /api/v1/cache",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			fc.Clear()
			ctxlogger.GetLogger(r.Context()).Info("Request cache cleared")
			w.WriteHeader(http.StatusNoContent)
		},
	}
}

func GetCacheConfig(fc *fetchcache.Manager) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/cache/config",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			httpadapter.WriteJSON(w, http.StatusOK, cacheConfigOf(fc))
		},
	}
}

// PatchCacheConfig applies a partial update; omitted fields keep their value.
func PatchCacheConfig(fc *fetchcache.Manager) httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "PATCH /api/v1/cache/config",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			var patch CacheConfigPatch
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				writeError(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
				return
			}
			if err := patch.validate(); err != nil {
				writeError(w, r, err)
				return
			}

			c := fc.UpdateConfig(patch.toUpdate())
			ctxlogger.GetLogger(r.Context()).Info("Request cache reconfigured",
				"cache_timeout", c.CacheTimeout.String(),
				"max_retries", c.MaxRetries,
				"request_timeout", c.RequestTimeout.String(),
			)

			httpadapter.WriteJSON(w, http.StatusOK, cacheConfigOf(fc))
		},
	}
}
