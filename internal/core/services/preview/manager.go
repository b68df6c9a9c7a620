package preview

import (
	"sync"

	"github.com/google/uuid"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
	"github.com/SanjayD11/NourishNet-sub001/internal/telemetry"
)

// Manager hosts the preview widgets of one process and routes host calls to
// the owning controller. It implements ports.PreviewService.
type Manager struct {
	urls   ports.ProviderURLs
	probe  ports.ProviderProbe
	events ports.EventRepository

	mu      sync.RWMutex
	widgets map[string]*Controller
	sink    ports.DirectiveSink
}

var (
	_ ports.PreviewService = (*Manager)(nil)
	_ ports.DirectiveSink  = (*Manager)(nil)
)

// NewManager creates an empty widget registry. events may be nil to disable
// the audit trail.
func NewManager(urls ports.ProviderURLs, probe ports.ProviderProbe, events ports.EventRepository) *Manager {
	return &Manager{
		urls:    urls,
		probe:   probe,
		events:  events,
		widgets: make(map[string]*Controller),
	}
}

// SetDirectiveSink wires the push channel for directive changes. The web
// layer is constructed after the service, so this is set post-bootstrap.
func (m *Manager) SetDirectiveSink(sink ports.DirectiveSink) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sink = sink
}

// BroadcastDirective fans a controller's directive change out to the sink.
// Controllers hold their own mutex when calling this; the manager lock is
// only taken in read mode and never while a controller is being invoked.
func (m *Manager) BroadcastDirective(widgetID string, d domain.RenderDirective) {
	m.mu.RLock()
	sink := m.sink
	m.mu.RUnlock()
	if sink != nil {
		sink.BroadcastDirective(widgetID, d)
	}
}

// CreateWidget mounts a new widget, optionally seeding it with an initial
// coordinate exactly as a host-supplied prop.
func (m *Manager) CreateWidget(coord *geo.Coordinate, label string) domain.Snapshot {
	id := uuid.NewString()
	ctl := newController(id, label, m.urls, m.probe, m.events, m)

	m.mu.Lock()
	m.widgets[id] = ctl
	m.mu.Unlock()

	telemetry.WidgetsActive.Inc()

	if coord != nil {
		return ctl.SetCoordinate(*coord)
	}
	return ctl.Snapshot()
}

// ListWidgets returns a snapshot of every mounted widget.
func (m *Manager) ListWidgets() []domain.Snapshot {
	m.mu.RLock()
	ctls := make([]*Controller, 0, len(m.widgets))
	for _, ctl := range m.widgets {
		ctls = append(ctls, ctl)
	}
	m.mu.RUnlock()

	snaps := make([]domain.Snapshot, 0, len(ctls))
	for _, ctl := range ctls {
		snaps = append(snaps, ctl.Snapshot())
	}
	return snaps
}

// GetWidget returns the snapshot of one widget.
func (m *Manager) GetWidget(id string) (domain.Snapshot, error) {
	ctl, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return ctl.Snapshot(), nil
}

// SetCoordinate replaces a widget's coordinate.
func (m *Manager) SetCoordinate(id string, coord geo.Coordinate) (domain.Snapshot, error) {
	ctl, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return ctl.SetCoordinate(coord), nil
}

// Retry triggers a manual retry on a degraded widget.
func (m *Manager) Retry(id string) (domain.Snapshot, error) {
	ctl, err := m.get(id)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return ctl.Retry()
}

// Directive returns the widget's current rendering directive.
func (m *Manager) Directive(id string) (domain.RenderDirective, error) {
	ctl, err := m.get(id)
	if err != nil {
		return domain.RenderDirective{}, err
	}
	return ctl.Directive(), nil
}

// Events returns the widget's recorded transition history, newest first.
func (m *Manager) Events(id string, limit int) ([]domain.PreviewEvent, error) {
	if _, err := m.get(id); err != nil {
		return nil, err
	}
	if m.events == nil {
		return []domain.PreviewEvent{}, nil
	}
	return m.events.ListPreviewEvents(id, limit)
}

// RemoveWidget tears a widget down. Pending probe signals for it become
// no-ops: the controller is simply unreachable afterwards.
func (m *Manager) RemoveWidget(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.widgets[id]; !ok {
		return domain.ErrWidgetNotFound
	}
	delete(m.widgets, id)
	telemetry.WidgetsActive.Dec()
	return nil
}

func (m *Manager) get(id string) (*Controller, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ctl, ok := m.widgets[id]
	if !ok {
		return nil, domain.ErrWidgetNotFound
	}
	return ctl, nil
}
