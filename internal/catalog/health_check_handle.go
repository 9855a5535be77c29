package catalog

import (
	"net/http"

	"github.com/IsaacDSC/eventory/pkg/httpadapter"
)

func GetHealthCheckHandler() httpadapter.HttpHandle {
	return httpadapter.HttpHandle{
		Path: "GET /api/v1/ping",
		Handler: func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("pong"))
		},
	}
}
