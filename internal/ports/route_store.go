package ports

import (
	"context"

	"waste-collection-service/internal/domain"
)

// Port: the route-persistence collaborator. The engine itself never
// persists; the planning workflow decides whether a computed route is saved.
type RouteStore interface {
	SaveRoute(ctx context.Context, depotID string, route domain.OptimizedRoute) error
}
