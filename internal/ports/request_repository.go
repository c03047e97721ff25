package ports

import (
	"context"

	"waste-collection-service/internal/domain"
)

// Port: a boundary for retrieving citizen pickup requests.
type RequestRepository interface {
	// Return requests approved for collection.
	ListApprovedRequests(ctx context.Context) ([]domain.PickupRequest, error)
}
