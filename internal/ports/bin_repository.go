package ports

import (
	"context"

	"waste-collection-service/internal/domain"
)

// Port: a boundary for retrieving smart bin snapshots from a data source.
type BinRepository interface {
	// Return active bins at or above the given fill level.
	ListEligibleBins(ctx context.Context, minFillLevel int) ([]domain.Bin, error)
}
