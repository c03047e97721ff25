package ports

import (
	"context"

	"waste-collection-service/internal/domain"
)

// Port: the assignment layer that informs a collection crew of a finalized
// route. Delivery mechanics (push, SMS, dispatch board) live behind it.
type CrewNotifier interface {
	NotifyRouteAssigned(ctx context.Context, depotID string, route domain.OptimizedRoute) error
}
