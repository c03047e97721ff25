package routing

import (
	"math"

	"waste-collection-service/internal/domain"
)

const earthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance between two
// coordinates in kilometers. Pure and symmetric; inputs are assumed already
// validated by the caller.
func Distance(a, b domain.Coordinate) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLng := toRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
