package httpadapter

import (
	"encoding/json"
	"net/http"
)

// HttpHandle pairs a ServeMux pattern ("GET /api/v1/events/{id}") with its handler.
type HttpHandle struct {
	Path    string
	Handler func(w http.ResponseWriter, r *http.Request)
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, err error) {
	WriteJSON(w, status, ErrorResponse{Error: err.Error()})
}

// Register mounts every route on mux.
func Register(mux *http.ServeMux, routes ...HttpHandle) {
	for _, route := range routes {
		mux.HandleFunc(route.Path, route.Handler)
	}
}
