package httpclient

import (
	"net/http"
	"time"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
)

const defaultTimeout = 30 * time.Second

// LoggingTransport logs outbound calls with the logger carried by the request
// context, so a relay call shares the request_id of the task or HTTP request
// that triggered it. Bodies are never logged; notification payloads carry
// buyer emails.
type LoggingTransport struct {
	Upstream string
	Next     http.RoundTripper
}

func NewLoggingTransport(upstream string, next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	return &LoggingTransport{Upstream: upstream, Next: next}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	l := ctxlogger.GetLogger(req.Context()).With(
		"upstream", t.Upstream,
		"method", req.Method,
		"url", req.URL.Redacted(),
	)

	l.Debug("Upstream call started", "body_bytes", req.ContentLength)

	resp, err := t.Next.RoundTrip(req)
	elapsed := time.Since(start)
	if err != nil {
		l.Error("Upstream call failed", "error", err, "elapsed_time", elapsed)
		return nil, err
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		l.Warn("Upstream call completed", "status_code", resp.StatusCode, "elapsed_time", elapsed)
	} else {
		l.Info("Upstream call completed", "status_code", resp.StatusCode, "elapsed_time", elapsed)
	}

	return resp, nil
}

// NewHTTPClientWithLogging returns a client for upstream. A non-positive
// timeout uses 30s.
func NewHTTPClientWithLogging(upstream string, timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Transport: NewLoggingTransport(upstream, nil),
		Timeout:   timeout,
	}
}
