package provider

import (
	"net/url"

	"github.com/SanjayD11/NourishNet-sub001/internal/core/ports"
	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

// Both providers render at the same fixed zoom so the static fallback stays
// visually consistent with the interactive view.
const zoomLevel = "16"

// URLBuilder implements ports.ProviderURLs for the Google map endpoints.
type URLBuilder struct {
	MapsBaseURL       string
	StaticMapsBaseURL string
}

// NewURLBuilder creates a builder for the given provider base URLs.
func NewURLBuilder(mapsBaseURL, staticMapsBaseURL string) *URLBuilder {
	return &URLBuilder{
		MapsBaseURL:       mapsBaseURL,
		StaticMapsBaseURL: staticMapsBaseURL,
	}
}

var _ ports.ProviderURLs = (*URLBuilder)(nil)

// Interactive builds the embeddable interactive map URL. The "lat,lng" pair is
// percent-encoded as one composite token; encoding the components separately
// breaks the provider's query parsing.
func (b *URLBuilder) Interactive(c geo.Coordinate) string {
	return b.MapsBaseURL + "?q=" + url.QueryEscape(c.String()) + "&z=" + zoomLevel + "&output=embed"
}

// Fallback builds the static-image URL with a marker pinned at the exact
// point. The static endpoint expects literal commas in its parameters.
func (b *URLBuilder) Fallback(c geo.Coordinate) string {
	token := c.String()
	return b.StaticMapsBaseURL + "?center=" + token + "&zoom=" + zoomLevel +
		"&size=400x200&markers=" + token + ",red-marker"
}
