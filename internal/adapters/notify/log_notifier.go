package notify

import (
	"context"
	"log"

	"waste-collection-service/internal/domain"
)

// LogCrewNotifier is the default CrewNotifier: it records the assignment in
// the service log. Real delivery channels (push, dispatch board) plug in
// behind the same port.
type LogCrewNotifier struct{}

func NewLogCrewNotifier() *LogCrewNotifier {
	return &LogCrewNotifier{}
}

func (n *LogCrewNotifier) NotifyRouteAssigned(ctx context.Context, depotID string, route domain.OptimizedRoute) error {
	log.Printf(
		"route assigned: depot=%s stops=%d distance_km=%.2f duration_min=%.1f",
		depotID, route.TotalStops, route.TotalDistanceKm, route.EstimatedMinutes,
	)
	return nil
}
