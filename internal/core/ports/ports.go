package ports

import (
	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

// ProviderURLs builds provider request URLs from a validated coordinate.
// Both builders are pure: the same coordinate always yields the same string.
// Callers are responsible for validating the coordinate first.
type ProviderURLs interface {
	Interactive(c geo.Coordinate) string
	Fallback(c geo.Coordinate) string
}

// SignalSink receives asynchronous load/error signals from a provider probe.
// Every signal carries the generation that launched it; implementations must
// discard signals whose generation is no longer current.
type SignalSink interface {
	HandleLoaded(generation uint64)
	HandleFailed(generation uint64, err error)
}

// ProviderProbe launches an asynchronous load attempt against a provider URL
// and reports the outcome to the sink. Launch never blocks; the probe's
// lifetime is tied to the widget, not to any HTTP request that triggered it.
type ProviderProbe interface {
	Launch(req domain.ProviderRequest, generation uint64, sink SignalSink)
}

// EventRepository persists applied phase transitions.
type EventRepository interface {
	SavePreviewEvent(ev domain.PreviewEvent) error
	ListPreviewEvents(widgetID string, limit int) ([]domain.PreviewEvent, error)
	Close() error
}

// DirectiveSink is notified whenever a widget's rendering directive changes.
type DirectiveSink interface {
	BroadcastDirective(widgetID string, d domain.RenderDirective)
}

// PreviewService is the host-facing surface of the preview core.
type PreviewService interface {
	CreateWidget(coord *geo.Coordinate, label string) domain.Snapshot
	ListWidgets() []domain.Snapshot
	GetWidget(id string) (domain.Snapshot, error)
	SetCoordinate(id string, coord geo.Coordinate) (domain.Snapshot, error)
	Retry(id string) (domain.Snapshot, error)
	Directive(id string) (domain.RenderDirective, error)
	Events(id string, limit int) ([]domain.PreviewEvent, error)
	RemoveWidget(id string) error
}
