package domain

import "fmt"

// Immutable geographic coordinate in decimal degrees (WGS 84).
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinate lies inside the WGS 84 range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// NewCoordinate builds a validated coordinate.
func NewCoordinate(lat, lng float64) (Coordinate, error) {
	c := Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return Coordinate{}, fmt.Errorf("coordinate out of range: lat=%v lng=%v", lat, lng)
	}
	return c, nil
}
