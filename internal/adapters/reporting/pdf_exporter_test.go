package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

func TestPDFExporter_ExportWidgetHistory(t *testing.T) {
	exporter := NewPDFExporter()

	snap := domain.Snapshot{
		WidgetID:   "w1",
		Label:      "Office",
		Phase:      domain.PhaseDegraded,
		Generation: 3,
		Coordinate: &geo.Coordinate{Latitude: 51.5, Longitude: -0.12},
		LastError:  "provider responded HTTP 403",
	}
	events := []domain.PreviewEvent{
		{WidgetID: "w1", Generation: 3, FromPhase: domain.PhaseLoading, ToPhase: domain.PhaseDegraded, Coordinate: "51.5,-0.12", Error: "provider responded HTTP 403", Timestamp: time.Now()},
		{WidgetID: "w1", Generation: 3, FromPhase: domain.PhaseDegraded, ToPhase: domain.PhaseLoading, Coordinate: "51.5,-0.12", Timestamp: time.Now().Add(-time.Second)},
	}

	data, err := exporter.ExportWidgetHistory(snap, events)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// PDF magic header
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExporter_ExportWidgetHistory_Empty(t *testing.T) {
	exporter := NewPDFExporter()

	data, err := exporter.ExportWidgetHistory(domain.Snapshot{WidgetID: "w1", Phase: domain.PhaseEmpty}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
