package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/IsaacDSC/eventory/pkg/httpclient"
)

// Message is the body posted to the notification relay.
type Message struct {
	Type    string `json:"type"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Data    any    `json:"data"`
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Relay posts messages to an HTTP relay that owns the actual delivery
// (mail, push). Any non-2xx answer is an error.
type Relay struct {
	url    string
	client *http.Client
}

var _ Sender = (*Relay)(nil)

func NewRelay(url string, timeout time.Duration) *Relay {
	return &Relay{url: url, client: httpclient.NewHTTPClientWithLogging("relay", timeout)}
}

func (r *Relay) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("post request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return nil
}
