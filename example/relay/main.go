// A stand-in notification relay for local runs. It accepts what the notify
// worker posts to NOTIFY_RELAY_URL and logs it.
package main

import (
	"encoding/json"
	"net/http"

	"github.com/IsaacDSC/eventory/internal/notify"
	"github.com/IsaacDSC/eventory/pkg/httpadapter"
	"github.com/IsaacDSC/eventory/pkg/logs"
)

func main() {
	logs.SetDefault(logs.New(logs.WithJSONFormat(false)))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /notifications", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var msg notify.Message
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			httpadapter.WriteError(w, http.StatusBadRequest, err)
			return
		}

		logs.Info("[*] Notification", "type", msg.Type, "to", msg.To, "subject", msg.Subject)
		w.WriteHeader(http.StatusAccepted)
	})

	logs.Info("[*] Relay started on :8081")
	if err := http.ListenAndServe(":8081", mux); err != nil {
		logs.Error("Relay stopped", "error", err)
	}
}

// curl example:
// curl -X POST http://localhost:8081/notifications -d '{"type":"ticket.purchased","to":"ana@example.com","subject":"Your tickets"}' -H "Content-Type: application/json"
