package geo

import (
	"math"
	"strconv"
)

// Coordinate represents a geographic point supplied by the host application.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the coordinate can be rendered on a map.
// It rejects non-finite components, out-of-range latitude/longitude and the
// exact (0,0) pair, which hosts use as an "unset" sentinel rather than a
// literal point on the equator.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return false
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return false
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		return false
	}
	return true
}

// String renders the coordinate as the "lat,lng" token map providers expect,
// using the shortest decimal representation of each component.
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," +
		strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}
