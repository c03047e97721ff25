package routing

import (
	"waste-collection-service/internal/domain"
)

// Defaults reflecting urban collection-vehicle driving with frequent stops.
const (
	DefaultAverageSpeedKmh    = 30.0
	DefaultServiceTimeMinutes = 5.0
)

// EstimatorConfig carries the travel-time model parameters.
type EstimatorConfig struct {
	AverageSpeedKmh    float64
	ServiceTimeMinutes float64
}

// DefaultEstimatorConfig returns the stock travel-time model.
func DefaultEstimatorConfig() EstimatorConfig {
	return EstimatorConfig{
		AverageSpeedKmh:    DefaultAverageSpeedKmh,
		ServiceTimeMinutes: DefaultServiceTimeMinutes,
	}
}

// Estimate walks an already-ordered sequence leg by leg from the start
// coordinate, annotating each stop with its 1-based position, cumulative
// distance, and arrival offset from departure. The arrival offset at stop i
// covers travel to it plus service time at the i-1 stops before it.
//
// Totals are taken from the same running accumulators as the per-stop
// annotations, so they sum exactly: the route duration is the final stop's
// arrival offset plus its own service time.
func Estimate(
	sequence []domain.StopCandidate,
	start domain.Coordinate,
	cfg EstimatorConfig,
) domain.OptimizedRoute {
	stops := make([]domain.RouteStop, 0, len(sequence))

	current := start
	cumulativeKm := 0.0
	travelMinutes := 0.0

	for i, c := range sequence {
		leg := Distance(current, c.Location)
		cumulativeKm += leg
		travelMinutes += (leg / cfg.AverageSpeedKmh) * 60

		stops = append(stops, domain.RouteStop{
			StopCandidate:        c,
			SequencePosition:     i + 1,
			CumulativeDistanceKm: cumulativeKm,
			ArrivalOffsetMinutes: travelMinutes + float64(i)*cfg.ServiceTimeMinutes,
		})

		current = c.Location
	}

	// The route ends after servicing the final stop. Deriving the total from
	// the last annotation keeps per-stop values and totals in exact agreement.
	duration := 0.0
	if n := len(stops); n > 0 {
		duration = stops[n-1].ArrivalOffsetMinutes + cfg.ServiceTimeMinutes
	}

	return domain.OptimizedRoute{
		Stops:            stops,
		TotalStops:       len(stops),
		TotalDistanceKm:  cumulativeKm,
		EstimatedMinutes: duration,
	}
}
