package domain

import "time"

// PreviewEvent records one applied phase transition of a widget. Discarded
// stale signals are never recorded; they are counted in telemetry only.
type PreviewEvent struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	WidgetID   string       `gorm:"index" json:"widget_id"`
	Generation uint64       `json:"generation"`
	FromPhase  Phase        `json:"from_phase"`
	ToPhase    Phase        `json:"to_phase"`
	Provider   ProviderKind `json:"provider,omitempty"`
	Coordinate string       `json:"coordinate,omitempty"`
	Error      string       `json:"error,omitempty"`
	Timestamp  time.Time    `json:"timestamp"`
}
