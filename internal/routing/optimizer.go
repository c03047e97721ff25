package routing

import (
	"errors"
	"fmt"

	"waste-collection-service/internal/domain"
)

// Engine failure modes. Everything else degrades into fewer or zero stops.
var (
	// ErrInvalidStartLocation marks a missing or out-of-range depot
	// coordinate. Every distance computation depends on it, so the engine
	// rejects it before any sequencing work.
	ErrInvalidStartLocation = errors.New("invalid start location")
	// ErrConfigOutOfRange marks caller configuration outside its documented
	// range. Rejected rather than clamped to avoid masking caller mistakes.
	ErrConfigOutOfRange = errors.New("configuration out of range")
)

const DefaultMaxStops = 50

// Options configures a single optimization run.
type Options struct {
	StartLocation      domain.Coordinate
	MaxStops           int
	FillLevelThreshold int
	IncludeRequests    bool
	Estimator          EstimatorConfig
}

// DefaultOptions returns run options with the stock thresholds; the start
// location has no default and must be set by the caller.
func DefaultOptions() Options {
	return Options{
		MaxStops:           DefaultMaxStops,
		FillLevelThreshold: 70,
		IncludeRequests:    true,
		Estimator:          DefaultEstimatorConfig(),
	}
}

func (o Options) validate() error {
	if !o.StartLocation.Valid() {
		return fmt.Errorf("%w: lat=%v lng=%v", ErrInvalidStartLocation, o.StartLocation.Lat, o.StartLocation.Lng)
	}
	if o.MaxStops < 0 {
		return fmt.Errorf("%w: max stops must not be negative, got %d", ErrConfigOutOfRange, o.MaxStops)
	}
	if o.FillLevelThreshold < 0 || o.FillLevelThreshold > 100 {
		return fmt.Errorf("%w: fill level threshold must be within [0,100], got %d", ErrConfigOutOfRange, o.FillLevelThreshold)
	}
	if o.Estimator.AverageSpeedKmh <= 0 {
		return fmt.Errorf("%w: average speed must be positive, got %v", ErrConfigOutOfRange, o.Estimator.AverageSpeedKmh)
	}
	if o.Estimator.ServiceTimeMinutes < 0 {
		return fmt.Errorf("%w: service time must not be negative, got %v", ErrConfigOutOfRange, o.Estimator.ServiceTimeMinutes)
	}
	return nil
}

// Optimize runs the full engine: build candidates, sequence them from the
// depot, estimate distance and duration.
//
// The call is synchronous, stateless, and side-effect-free; concurrent
// invocations share nothing. It never partially fails: once options pass
// validation, a run with zero usable candidates returns a zero-stop route
// rather than an error, so callers distinguish "no route needed" from
// failure explicitly.
func Optimize(
	bins []domain.Bin,
	requests []domain.PickupRequest,
	opts Options,
) (domain.OptimizedRoute, error) {
	if err := opts.validate(); err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("optimize route: %w", err)
	}

	candidates := BuildCandidates(bins, requests, CandidateConfig{
		FillLevelThreshold: opts.FillLevelThreshold,
		IncludeRequests:    opts.IncludeRequests,
	})

	ordered := Sequence(candidates, opts.StartLocation, opts.MaxStops)

	return Estimate(ordered, opts.StartLocation, opts.Estimator), nil
}
