package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
)

func newTestAdapter(t *testing.T) *SQLiteAdapter {
	t.Helper()

	adapter, err := NewSQLiteAdapter(filepath.Join(t.TempDir(), "previewd_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return adapter
}

func TestSQLiteAdapter_SaveAndList(t *testing.T) {
	adapter := newTestAdapter(t)

	base := time.Now().Add(-time.Minute)
	events := []domain.PreviewEvent{
		{WidgetID: "w1", Generation: 1, FromPhase: domain.PhaseEmpty, ToPhase: domain.PhaseLoading, Provider: domain.ProviderInteractive, Coordinate: "51.5,-0.12", Timestamp: base},
		{WidgetID: "w1", Generation: 1, FromPhase: domain.PhaseLoading, ToPhase: domain.PhaseDegraded, Provider: domain.ProviderInteractive, Coordinate: "51.5,-0.12", Error: "HTTP 403", Timestamp: base.Add(2 * time.Second)},
		{WidgetID: "w2", Generation: 1, FromPhase: domain.PhaseEmpty, ToPhase: domain.PhaseLoading, Provider: domain.ProviderInteractive, Coordinate: "40.7128,-74.006", Timestamp: base.Add(time.Second)},
	}
	for _, ev := range events {
		require.NoError(t, adapter.SavePreviewEvent(ev))
	}

	got, err := adapter.ListPreviewEvents("w1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first, only w1.
	assert.Equal(t, domain.PhaseDegraded, got[0].ToPhase)
	assert.Equal(t, "HTTP 403", got[0].Error)
	assert.Equal(t, domain.PhaseLoading, got[1].ToPhase)
}

func TestSQLiteAdapter_ListHonorsLimit(t *testing.T) {
	adapter := newTestAdapter(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, adapter.SavePreviewEvent(domain.PreviewEvent{
			WidgetID:   "w1",
			Generation: uint64(i + 1),
			FromPhase:  domain.PhaseEmpty,
			ToPhase:    domain.PhaseLoading,
			Timestamp:  time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	got, err := adapter.ListPreviewEvents("w1", 3)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, uint64(5), got[0].Generation)
}

func TestSQLiteAdapter_ListUnknownWidget(t *testing.T) {
	adapter := newTestAdapter(t)

	got, err := adapter.ListPreviewEvents("missing", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
