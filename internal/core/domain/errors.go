package domain

import "errors"

var (
	// ErrWidgetNotFound is returned when a widget ID does not resolve.
	ErrWidgetNotFound = errors.New("widget not found")

	// ErrRetryUnavailable is returned when retry is requested outside the
	// degraded phase. Retry is only a recovery action, never a refresh.
	ErrRetryUnavailable = errors.New("retry is only available while degraded")
)
