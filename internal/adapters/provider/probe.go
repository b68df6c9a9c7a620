package provider

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
	"github.com/SanjayD11/NourishNet-sub001/internal/telemetry"
)

// maxDrainBytes bounds how much of a provider response body is read before
// the connection is released back to the pool.
const maxDrainBytes = 64 << 10

// HTTPProbe implements ports.ProviderProbe by issuing a GET against the
// provider URL. It stands in for the embedded frame's load/error signal: a 2xx
// response is a load signal, anything else is a failure signal. A probe that
// exceeds the client timeout fails; it never leaves the signal pending.
type HTTPProbe struct {
	client *http.Client
}

// NewHTTPProbe creates a probe with the given per-attempt timeout.
func NewHTTPProbe(timeout time.Duration) *HTTPProbe {
	return &HTTPProbe{
		client: &http.Client{Timeout: timeout},
	}
}

var _ ports.ProviderProbe = (*HTTPProbe)(nil)

// Launch starts the load attempt in the background and returns immediately.
// The attempt is deliberately not tied to any caller context: the widget owns
// the load, and a superseded attempt is neutralized by the sink's generation
// check rather than by cancellation.
func (p *HTTPProbe) Launch(req domain.ProviderRequest, generation uint64, sink ports.SignalSink) {
	go func() {
		httpReq, err := http.NewRequest(http.MethodGet, req.URL, nil)
		if err != nil {
			telemetry.ProbesTotal.WithLabelValues(string(req.Kind), "error").Inc()
			sink.HandleFailed(generation, fmt.Errorf("build provider request: %w", err))
			return
		}

		resp, err := p.client.Do(httpReq)
		if err != nil {
			telemetry.ProbesTotal.WithLabelValues(string(req.Kind), "error").Inc()
			sink.HandleFailed(generation, fmt.Errorf("provider unreachable: %w", err))
			return
		}
		defer resp.Body.Close()

		// Drain a bounded amount so the connection can be reused.
		if _, err := io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes)); err != nil {
			log.Printf("probe: drain response body: %v", err)
		}

		if resp.StatusCode/100 != 2 {
			telemetry.ProbesTotal.WithLabelValues(string(req.Kind), "error").Inc()
			sink.HandleFailed(generation, fmt.Errorf("provider responded HTTP %d", resp.StatusCode))
			return
		}

		telemetry.ProbesTotal.WithLabelValues(string(req.Kind), "ok").Inc()
		sink.HandleLoaded(generation)
	}()
}
