package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SanjayD11/NourishNet-sub001/internal/geo"
)

func TestURLBuilder_Interactive(t *testing.T) {
	b := NewURLBuilder("https://maps.google.com/maps", "https://maps.googleapis.com/maps/api/staticmap")

	got := b.Interactive(geo.Coordinate{Latitude: 40.7128, Longitude: -74.006})

	assert.Equal(t, "https://maps.google.com/maps?q=40.7128%2C-74.006&z=16&output=embed", got)
	// The coordinate pair must be encoded as one composite token.
	assert.Contains(t, got, "q=40.7128%2C-74.006")
	assert.NotContains(t, got, "q=40.7128,-74.006")
}

func TestURLBuilder_Fallback(t *testing.T) {
	b := NewURLBuilder("https://maps.google.com/maps", "https://maps.googleapis.com/maps/api/staticmap")

	got := b.Fallback(geo.Coordinate{Latitude: 51.5, Longitude: -0.12})

	assert.Equal(t,
		"https://maps.googleapis.com/maps/api/staticmap?center=51.5,-0.12&zoom=16&size=400x200&markers=51.5,-0.12,red-marker",
		got)
}

func TestURLBuilder_SameZoomOnBothProviders(t *testing.T) {
	b := NewURLBuilder("https://maps.google.com/maps", "https://maps.googleapis.com/maps/api/staticmap")
	c := geo.Coordinate{Latitude: -33.8688, Longitude: 151.2093}

	assert.True(t, strings.Contains(b.Interactive(c), "&z=16&"))
	assert.True(t, strings.Contains(b.Fallback(c), "&zoom=16&"))
}

func TestURLBuilder_Pure(t *testing.T) {
	b := NewURLBuilder("https://maps.google.com/maps", "https://maps.googleapis.com/maps/api/staticmap")
	c := geo.Coordinate{Latitude: 40.7128, Longitude: -74.006}

	assert.Equal(t, b.Interactive(c), b.Interactive(c))
	assert.Equal(t, b.Fallback(c), b.Fallback(c))
}
