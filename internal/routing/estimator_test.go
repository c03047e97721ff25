package routing

import (
	"math"
	"testing"

	"waste-collection-service/internal/domain"
)

func TestEstimateEmptySequence(t *testing.T) {
	start := domain.Coordinate{Lat: 6.9271, Lng: 79.8612}

	got := Estimate(nil, start, DefaultEstimatorConfig())

	if got.TotalStops != 0 || got.TotalDistanceKm != 0 || got.EstimatedMinutes != 0 {
		t.Fatalf("empty sequence: got stops=%d distance=%v duration=%v, want all zero",
			got.TotalStops, got.TotalDistanceKm, got.EstimatedMinutes)
	}
	if len(got.Stops) != 0 {
		t.Fatalf("expected no annotated stops, got %d", len(got.Stops))
	}
}

func TestEstimateAnnotatesStops(t *testing.T) {
	start := domain.Coordinate{Lat: 6.9271, Lng: 79.8612}
	sequence := []domain.StopCandidate{
		candidate("A", 6.9271, 79.8612, 95),
		candidate("B", 6.8945, 79.8573, 85),
		candidate("C", 6.8855, 79.8740, 75),
	}
	cfg := EstimatorConfig{AverageSpeedKmh: 30, ServiceTimeMinutes: 5}

	got := Estimate(sequence, start, cfg)

	if got.TotalStops != 3 {
		t.Fatalf("total stops = %d, want 3", got.TotalStops)
	}

	for i, s := range got.Stops {
		if s.SequencePosition != i+1 {
			t.Errorf("stop %d: sequence position = %d, want %d", i, s.SequencePosition, i+1)
		}
	}

	// Cumulative distance must match an independent leg-by-leg recomputation
	// over the returned order.
	current := start
	cumulative := 0.0
	for i, s := range got.Stops {
		cumulative += Distance(current, s.Location)
		if math.Abs(s.CumulativeDistanceKm-cumulative) > 1e-9 {
			t.Errorf("stop %d: cumulative distance = %v, want %v", i, s.CumulativeDistanceKm, cumulative)
		}
		current = s.Location
	}
	if math.Abs(got.TotalDistanceKm-cumulative) > 1e-9 {
		t.Fatalf("total distance = %v, want %v", got.TotalDistanceKm, cumulative)
	}
}

func TestEstimateTotalsSumExactly(t *testing.T) {
	start := domain.Coordinate{Lat: 6.9271, Lng: 79.8612}
	sequence := []domain.StopCandidate{
		candidate("A", 6.8945, 79.8573, 85),
		candidate("B", 6.8855, 79.8740, 75),
	}
	cfg := EstimatorConfig{AverageSpeedKmh: 30, ServiceTimeMinutes: 5}

	got := Estimate(sequence, start, cfg)

	// Duration is the last arrival offset plus the final stop's service time,
	// with no independent recomputation that could drift.
	last := got.Stops[len(got.Stops)-1]
	if got.TotalDistanceKm != last.CumulativeDistanceKm {
		t.Fatalf("total distance %v != last cumulative %v", got.TotalDistanceKm, last.CumulativeDistanceKm)
	}
	if got.EstimatedMinutes != last.ArrivalOffsetMinutes+cfg.ServiceTimeMinutes {
		t.Fatalf("duration %v != last arrival %v + service %v",
			got.EstimatedMinutes, last.ArrivalOffsetMinutes, cfg.ServiceTimeMinutes)
	}
}

func TestEstimateDurationGrowsWithStopCount(t *testing.T) {
	// All stops colocated with the depot: zero travel, so duration is pure
	// service time and must strictly increase with each added stop.
	start := domain.Coordinate{Lat: 6.9271, Lng: 79.8612}
	cfg := EstimatorConfig{AverageSpeedKmh: 30, ServiceTimeMinutes: 5}

	prev := 0.0
	for n := 1; n <= 5; n++ {
		sequence := make([]domain.StopCandidate, 0, n)
		for i := 0; i < n; i++ {
			sequence = append(sequence, candidate("X", start.Lat, start.Lng, 80))
		}

		got := Estimate(sequence, start, cfg)
		if got.TotalDistanceKm != 0 {
			t.Fatalf("n=%d: expected zero distance, got %v", n, got.TotalDistanceKm)
		}
		if got.EstimatedMinutes <= prev {
			t.Fatalf("n=%d: duration %v not greater than %v", n, got.EstimatedMinutes, prev)
		}
		prev = got.EstimatedMinutes
	}
}

func TestEstimateTravelTimeModel(t *testing.T) {
	// One degree of latitude at 30 km/h: travel minutes are distance/speed*60.
	start := domain.Coordinate{Lat: 0, Lng: 0}
	sequence := []domain.StopCandidate{candidate("A", 1, 0, 80)}
	cfg := EstimatorConfig{AverageSpeedKmh: 30, ServiceTimeMinutes: 5}

	got := Estimate(sequence, start, cfg)

	d := Distance(start, sequence[0].Location)
	wantTravel := (d / 30) * 60
	if math.Abs(got.Stops[0].ArrivalOffsetMinutes-wantTravel) > 1e-9 {
		t.Fatalf("arrival offset = %v, want %v", got.Stops[0].ArrivalOffsetMinutes, wantTravel)
	}
	if math.Abs(got.EstimatedMinutes-(wantTravel+5)) > 1e-9 {
		t.Fatalf("duration = %v, want %v", got.EstimatedMinutes, wantTravel+5)
	}
}
