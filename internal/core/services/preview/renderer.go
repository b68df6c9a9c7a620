package preview

import (
	"github.com/SanjayD11/NourishNet-sub001/internal/core/domain"
	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
)

// Render maps a session to its rendering directive. It is a pure policy
// function: no I/O, no state.
//
// While loading, the interactive frame is mounted underneath the spinner so
// its load/error signal can fire. When degraded, only the static image is
// mounted; if that image fails in the host, the failure is silent — there is
// deliberately no tertiary fallback.
func Render(s domain.PreviewSession, urls ports.ProviderURLs, label string) domain.RenderDirective {
	switch s.Phase {
	case domain.PhaseLoading:
		return domain.RenderDirective{
			Kind:           domain.DirectiveLoading,
			Label:          label,
			InteractiveURL: urls.Interactive(s.Coordinate),
			ShowSpinner:    true,
		}
	case domain.PhaseReady:
		return domain.RenderDirective{
			Kind:           domain.DirectiveInteractive,
			Label:          label,
			InteractiveURL: urls.Interactive(s.Coordinate),
		}
	case domain.PhaseDegraded:
		return domain.RenderDirective{
			Kind:        domain.DirectiveFallback,
			Label:       label,
			FallbackURL: urls.Fallback(s.Coordinate),
			AllowRetry:  true,
		}
	default:
		return domain.RenderDirective{
			Kind:  domain.DirectivePlaceholder,
			Label: label,
		}
	}
}
