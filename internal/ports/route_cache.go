package ports

import (
	"context"
	"errors"

	"waste-collection-service/internal/domain"
)

// ErrRouteNotCached is returned by GetLatest when no route is cached for
// the depot.
var ErrRouteNotCached = errors.New("no cached route for depot")

// Port: fast lookup of the most recently planned route per depot, so crews
// can fetch their assignment without replanning.
type RouteCache interface {
	PutLatest(ctx context.Context, depotID string, route domain.OptimizedRoute) error
	GetLatest(ctx context.Context, depotID string) (domain.OptimizedRoute, error)
}
