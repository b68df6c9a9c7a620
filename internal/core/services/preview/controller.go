package preview

import (
	"log"
	"sync"
	"time"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
	"github.com/SanjayD11/NourishNet-sub001/internal/telemetry"
)

// Controller owns the state machine of a single preview widget.
//
// Every coordinate replacement and every manual retry starts a new session
// with a higher generation. In-flight provider loads are never cancelled;
// their signals are neutralized by the generation check in HandleLoaded and
// HandleFailed. That check is the sole concurrency invariant: a stale signal
// must never move the machine.
type Controller struct {
	id    string
	label string

	urls   ports.ProviderURLs
	probe  ports.ProviderProbe
	events ports.EventRepository
	sink   ports.DirectiveSink

	mu      sync.Mutex
	session domain.PreviewSession
}

var _ ports.SignalSink = (*Controller)(nil)

func newController(id, label string, urls ports.ProviderURLs, probe ports.ProviderProbe, events ports.EventRepository, sink ports.DirectiveSink) *Controller {
	return &Controller{
		id:     id,
		label:  label,
		urls:   urls,
		probe:  probe,
		events: events,
		sink:   sink,
		session: domain.PreviewSession{
			Phase:     domain.PhaseEmpty,
			StartedAt: time.Now(),
		},
	}
}

// SetCoordinate reacts to the host replacing the widget's coordinate. A valid
// coordinate always starts a fresh session, even when the value is unchanged,
// so the host can force a reload. An invalid coordinate retires the current
// session and returns the widget to the empty phase without any provider call.
func (c *Controller) SetCoordinate(coord geo.Coordinate) domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !coord.IsValid() {
		if c.session.Phase != domain.PhaseEmpty {
			from := c.session.Phase
			c.session = domain.PreviewSession{
				Generation: c.session.Generation,
				Phase:      domain.PhaseEmpty,
				StartedAt:  time.Now(),
			}
			c.record(from, "", "")
		}
		return c.snapshotLocked()
	}

	c.startSession(coord)
	return c.snapshotLocked()
}

// Retry re-attempts the interactive provider after a failure. It is only
// meaningful while degraded; the machine never retries on its own, so a
// blocked provider cannot trigger a retry storm.
func (c *Controller) Retry() (domain.Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.Phase != domain.PhaseDegraded {
		return c.snapshotLocked(), domain.ErrRetryUnavailable
	}

	// Always give the primary provider another chance before falling back.
	c.startSession(c.session.Coordinate)
	return c.snapshotLocked(), nil
}

// HandleLoaded applies a successful provider load signal, unless the session
// that launched it has been superseded.
func (c *Controller) HandleLoaded(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.session.Generation || c.session.Phase != domain.PhaseLoading {
		telemetry.StaleSignalsDiscarded.WithLabelValues("loaded").Inc()
		return
	}

	c.session.Phase = domain.PhaseReady
	c.session.LastError = ""
	c.record(domain.PhaseLoading, domain.ProviderInteractive, "")
}

// HandleFailed applies a provider failure signal for the current generation,
// degrading the widget to the static fallback.
func (c *Controller) HandleFailed(generation uint64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.session.Generation || c.session.Phase != domain.PhaseLoading {
		telemetry.StaleSignalsDiscarded.WithLabelValues("failed").Inc()
		return
	}

	telemetry.ProviderFailures.WithLabelValues(string(domain.ProviderInteractive)).Inc()

	c.session.Phase = domain.PhaseDegraded
	if err != nil {
		c.session.LastError = err.Error()
	}
	c.record(domain.PhaseLoading, domain.ProviderInteractive, c.session.LastError)
}

// Snapshot returns the externally visible view of the current session.
func (c *Controller) Snapshot() domain.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Directive returns the rendering directive for the current session.
func (c *Controller) Directive() domain.RenderDirective {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Render(c.session, c.urls, c.label)
}

// startSession supersedes the current session and launches an interactive
// provider load for the new generation. Caller holds c.mu.
func (c *Controller) startSession(coord geo.Coordinate) {
	from := c.session.Phase
	c.session = domain.PreviewSession{
		Coordinate: coord,
		Generation: c.session.Generation + 1,
		Phase:      domain.PhaseLoading,
		StartedAt:  time.Now(),
	}
	c.record(from, domain.ProviderInteractive, "")

	c.probe.Launch(domain.ProviderRequest{
		URL:  c.urls.Interactive(coord),
		Kind: domain.ProviderInteractive,
	}, c.session.Generation, c)
}

// record counts the applied transition, persists it and pushes the resulting
// directive. Caller holds c.mu; the session already reflects the new phase.
func (c *Controller) record(from domain.Phase, provider domain.ProviderKind, errMsg string) {
	to := c.session.Phase
	telemetry.TransitionsTotal.WithLabelValues(string(from), string(to)).Inc()

	if c.events != nil {
		ev := domain.PreviewEvent{
			WidgetID:   c.id,
			Generation: c.session.Generation,
			FromPhase:  from,
			ToPhase:    to,
			Provider:   provider,
			Timestamp:  time.Now(),
			Error:      errMsg,
		}
		if to != domain.PhaseEmpty {
			ev.Coordinate = c.session.Coordinate.String()
		}
		if err := c.events.SavePreviewEvent(ev); err != nil {
			log.Printf("preview: persist event for widget %s: %v", c.id, err)
		}
	}

	if c.sink != nil {
		c.sink.BroadcastDirective(c.id, Render(c.session, c.urls, c.label))
	}
}

func (c *Controller) snapshotLocked() domain.Snapshot {
	snap := domain.Snapshot{
		WidgetID:   c.id,
		Label:      c.label,
		Phase:      c.session.Phase,
		Generation: c.session.Generation,
		LastError:  c.session.LastError,
		StartedAt:  c.session.StartedAt,
	}
	if c.session.Phase != domain.PhaseEmpty {
		coord := c.session.Coordinate
		snap.Coordinate = &coord
	}
	return snap
}
