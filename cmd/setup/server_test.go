package setup

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IsaacDSC/eventory/internal/cfg"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/stretchr/testify/assert"
)

func TestNewServer(t *testing.T) {
	srv := NewServer("8080", httpadapter.HttpHandle{
		Path: "GET /api/v1/ping",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			httpadapter.WriteJSON(w, http.StatusOK, "pong")
		},
	})

	assert.Equal(t, ":8080", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminRoutes(t *testing.T) {
	routes := []httpadapter.HttpHandle{{
		Path: "DELETE /api/v1/cache",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		},
	}}

	t.Run("open without password", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminRoutes(cfg.Admin{User: "admin"}, routes)[0].Handler(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("guarded with password", func(t *testing.T) {
		guarded := AdminRoutes(cfg.Admin{User: "admin", Password: "s3cret"}, routes)[0]

		rec := httptest.NewRecorder()
		guarded.Handler(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/cache", nil)
		req.SetBasicAuth("admin", "s3cret")
		rec = httptest.NewRecorder()
		guarded.Handler(rec, req)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
