package domain

// Kinds of stop a collection route can contain.
type StopKind string

const (
	StopKindBinCollection StopKind = "bin-collection"
	StopKindRequestPickup StopKind = "request-pickup"
)

// StopCandidate unifies a bin and a pickup request into one shape for
// sequencing. Location is always a validated coordinate; candidates with
// missing or malformed coordinates never reach this type.
type StopCandidate struct {
	Kind        StopKind
	ReferenceID string
	Location    Coordinate
	Address     string
	// Higher means more urgent. Fill level for bins, a fixed baseline
	// (or the request's own priority) for pickups.
	PriorityHint int
	// Kind-specific payload passed through unmodified.
	Metadata map[string]any
}

// Represents a single stop in a finished collection route.
// A RouteStop is a StopCandidate annotated with its 1-based position in the
// visit sequence, the cumulative distance from the depot up to and including
// this stop, and the estimated arrival offset from departure.
type RouteStop struct {
	StopCandidate
	SequencePosition     int
	CumulativeDistanceKm float64
	ArrivalOffsetMinutes float64
}

// Represents the planned collection route for a single crew run.
// An OptimizedRoute is the output of the route optimization engine and is
// immutable planning data: the engine never persists it and holds no
// reference to it after returning.
type OptimizedRoute struct {
	Stops            []RouteStop
	TotalStops       int
	TotalDistanceKm  float64
	EstimatedMinutes float64
}
