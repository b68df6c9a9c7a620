package domain

import (
	"time"

	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

// Phase represents the lifecycle state of a preview widget.
type Phase string

const (
	// PhaseEmpty means no valid coordinate is set; nothing is loaded.
	PhaseEmpty Phase = "empty"
	// PhaseLoading means the interactive provider has been asked to load and
	// its load/error signal is still pending.
	PhaseLoading Phase = "loading"
	// PhaseReady means the interactive provider rendered successfully.
	PhaseReady Phase = "ready"
	// PhaseDegraded means the interactive provider failed and the static
	// fallback image is shown instead.
	PhaseDegraded Phase = "degraded"
)

// ProviderKind identifies which map provider a request targets.
type ProviderKind string

const (
	ProviderInteractive ProviderKind = "interactive"
	ProviderStatic      ProviderKind = "static-fallback"
)

// ProviderRequest is a concrete request against a map provider. It is derived
// from the current coordinate on demand and never persisted.
type ProviderRequest struct {
	URL  string       `json:"url"`
	Kind ProviderKind `json:"kind"`
}

// PreviewSession is one attempt to display a given coordinate. A new session
// (with a higher generation) is started whenever the coordinate is replaced or
// the user retries; signals from superseded generations are discarded.
type PreviewSession struct {
	Coordinate geo.Coordinate
	Generation uint64
	Phase      Phase
	LastError  string
	StartedAt  time.Time
}

// Snapshot is the externally visible view of a widget's session.
type Snapshot struct {
	WidgetID   string          `json:"widget_id"`
	Label      string          `json:"label,omitempty"`
	Coordinate *geo.Coordinate `json:"coordinate,omitempty"`
	Phase      Phase           `json:"phase"`
	Generation uint64          `json:"generation"`
	LastError  string          `json:"last_error,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
}

// DirectiveKind selects how the host should paint the widget.
type DirectiveKind string

const (
	// DirectivePlaceholder shows a "set a location" prompt. No network activity.
	DirectivePlaceholder DirectiveKind = "placeholder"
	// DirectiveLoading mounts the interactive frame with a dimmed spinner
	// overlay on top, so the frame's load/error signal can fire.
	DirectiveLoading DirectiveKind = "loading"
	// DirectiveInteractive mounts the interactive frame with no overlay.
	DirectiveInteractive DirectiveKind = "interactive"
	// DirectiveFallback mounts the static image with a retry affordance. A
	// failure of the static image itself is silent; there is no tertiary
	// fallback.
	DirectiveFallback DirectiveKind = "fallback"
)

// RenderDirective is the pure rendering instruction for the current phase.
type RenderDirective struct {
	Kind           DirectiveKind `json:"kind"`
	Label          string        `json:"label,omitempty"`
	InteractiveURL string        `json:"interactive_url,omitempty"`
	FallbackURL    string        `json:"fallback_url,omitempty"`
	ShowSpinner    bool          `json:"show_spinner"`
	AllowRetry     bool          `json:"allow_retry"`
}
