package provider

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
)

type probeSignal struct {
	generation uint64
	err        error
}

// channelSink collects signals so tests can wait for async probe delivery.
type channelSink struct {
	loaded chan probeSignal
	failed chan probeSignal
}

func newChannelSink() *channelSink {
	return &channelSink{
		loaded: make(chan probeSignal, 1),
		failed: make(chan probeSignal, 1),
	}
}

func (s *channelSink) HandleLoaded(generation uint64) {
	s.loaded <- probeSignal{generation: generation}
}

func (s *channelSink) HandleFailed(generation uint64, err error) {
	s.failed <- probeSignal{generation: generation, err: err}
}

func TestHTTPProbe_Launch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<html>map</html>"))
	}))
	defer srv.Close()

	sink := newChannelSink()
	probe := NewHTTPProbe(5 * time.Second)
	probe.Launch(domain.ProviderRequest{URL: srv.URL, Kind: domain.ProviderInteractive}, 3, sink)

	select {
	case sig := <-sink.loaded:
		assert.Equal(t, uint64(3), sig.generation)
	case <-sink.failed:
		t.Fatal("expected load signal, got failure")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for probe signal")
	}
}

func TestHTTPProbe_Launch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "denied", http.StatusForbidden)
	}))
	defer srv.Close()

	sink := newChannelSink()
	probe := NewHTTPProbe(5 * time.Second)
	probe.Launch(domain.ProviderRequest{URL: srv.URL, Kind: domain.ProviderInteractive}, 7, sink)

	select {
	case sig := <-sink.failed:
		assert.Equal(t, uint64(7), sig.generation)
		require.Error(t, sig.err)
		assert.Contains(t, sig.err.Error(), "403")
	case <-sink.loaded:
		t.Fatal("expected failure signal, got load")
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for probe signal")
	}
}

func TestHTTPProbe_Launch_Unreachable(t *testing.T) {
	// Grab a port that refuses connections.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	sink := newChannelSink()
	probe := NewHTTPProbe(1 * time.Second)
	probe.Launch(domain.ProviderRequest{URL: url, Kind: domain.ProviderInteractive}, 1, sink)

	select {
	case sig := <-sink.failed:
		require.Error(t, sig.err)
	case <-sink.loaded:
		t.Fatal("expected failure signal, got load")
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for probe signal")
	}
}
