package services

import (
	"context"
	"fmt"
	"log"

	"waste-collection-service/internal/domain"
	"waste-collection-service/internal/ports"
	"waste-collection-service/internal/routing"
)

// PlanCollectionRequest carries everything one planning run needs.
// DepotID is optional: when empty the computed route is returned but not
// persisted, cached, or assigned.
type PlanCollectionRequest struct {
	DepotID string
	Options routing.Options
}

// PlanCollection runs one end-to-end planning cycle: fetch the current bin
// and request snapshots, optimize, then hand the result to the persistence,
// cache, and assignment collaborators.
//
// Collaborator failures after optimization do not discard the computed
// route; persistence failures abort (a route the crew cannot be held to must
// not be assigned), while cache and notification failures are logged and
// tolerated.
func PlanCollection(
	ctx context.Context,
	req PlanCollectionRequest,
	bins ports.BinRepository,
	requests ports.RequestRepository,
	store ports.RouteStore,
	cache ports.RouteCache,
	notifier ports.CrewNotifier,
) (domain.OptimizedRoute, error) {
	eligible, err := bins.ListEligibleBins(ctx, req.Options.FillLevelThreshold)
	if err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("plan collection: list eligible bins: %w", err)
	}

	var approved []domain.PickupRequest
	if req.Options.IncludeRequests {
		approved, err = requests.ListApprovedRequests(ctx)
		if err != nil {
			return domain.OptimizedRoute{}, fmt.Errorf("plan collection: list approved requests: %w", err)
		}
	}

	route, err := routing.Optimize(eligible, approved, req.Options)
	if err != nil {
		return domain.OptimizedRoute{}, fmt.Errorf("plan collection: %w", err)
	}

	if req.DepotID == "" {
		return route, nil
	}

	if store != nil {
		if err := store.SaveRoute(ctx, req.DepotID, route); err != nil {
			return domain.OptimizedRoute{}, fmt.Errorf("plan collection: save route for depot %q: %w", req.DepotID, err)
		}
	}

	if cache != nil {
		if err := cache.PutLatest(ctx, req.DepotID, route); err != nil {
			log.Printf("route cache write failed: depot=%s err=%v", req.DepotID, err)
		}
	}

	if notifier != nil && route.TotalStops > 0 {
		if err := notifier.NotifyRouteAssigned(ctx, req.DepotID, route); err != nil {
			log.Printf("crew notification failed: depot=%s err=%v", req.DepotID, err)
		}
	}

	return route, nil
}
