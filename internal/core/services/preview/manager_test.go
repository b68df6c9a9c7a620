package preview

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

type recordingSink struct {
	mu         sync.Mutex
	directives []domain.RenderDirective
}

func (s *recordingSink) BroadcastDirective(_ string, d domain.RenderDirective) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directives = append(s.directives, d)
}

func TestManager_CreateWidget_WithInitialCoordinate(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)

	snap := m.CreateWidget(&geo.Coordinate{Latitude: 40.7128, Longitude: -74.006}, "Office")

	assert.NotEmpty(t, snap.WidgetID)
	assert.Equal(t, "Office", snap.Label)
	assert.Equal(t, domain.PhaseLoading, snap.Phase)
}

func TestManager_CreateWidget_WithoutCoordinate(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)

	snap := m.CreateWidget(nil, "")

	assert.Equal(t, domain.PhaseEmpty, snap.Phase)
	assert.Nil(t, snap.Coordinate)
}

func TestManager_GetWidget_Unknown(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)

	_, err := m.GetWidget("nope")
	assert.ErrorIs(t, err, domain.ErrWidgetNotFound)

	_, err = m.SetCoordinate("nope", geo.Coordinate{Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, domain.ErrWidgetNotFound)

	_, err = m.Retry("nope")
	assert.ErrorIs(t, err, domain.ErrWidgetNotFound)
}

func TestManager_ListWidgets(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)

	m.CreateWidget(nil, "a")
	m.CreateWidget(nil, "b")

	snaps := m.ListWidgets()
	assert.Len(t, snaps, 2)
}

func TestManager_RemoveWidget(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)
	snap := m.CreateWidget(nil, "")

	require.NoError(t, m.RemoveWidget(snap.WidgetID))
	assert.ErrorIs(t, m.RemoveWidget(snap.WidgetID), domain.ErrWidgetNotFound)

	_, err := m.GetWidget(snap.WidgetID)
	assert.ErrorIs(t, err, domain.ErrWidgetNotFound)
}

func TestManager_DirectiveSink_ReceivesTransitions(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)
	sink := &recordingSink{}
	m.SetDirectiveSink(sink)

	snap := m.CreateWidget(nil, "")
	_, err := m.SetCoordinate(snap.WidgetID, geo.Coordinate{Latitude: 51.5, Longitude: -0.12})
	require.NoError(t, err)

	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.directives, 1)
	assert.Equal(t, domain.DirectiveLoading, sink.directives[0].Kind)
}

func TestManager_Events_NilRepository(t *testing.T) {
	m := NewManager(stubURLs{}, &fakeProbe{}, nil)
	snap := m.CreateWidget(nil, "")

	events, err := m.Events(snap.WidgetID, 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}
