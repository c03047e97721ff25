package routing

import (
	"waste-collection-service/internal/domain"
)

// Priority baseline for pickup requests that do not carry their own.
// Kept below the eligible-bin floor (fill level >= threshold) so bin
// collections win geographic ties against ad-hoc pickups.
const requestBasePriority = 50

// CandidateConfig controls which bins and requests become stop candidates.
type CandidateConfig struct {
	// Bins below this fill level (0-100) are excluded. Inclusive bound:
	// a bin exactly at the threshold is eligible.
	FillLevelThreshold int
	// When false, pickup requests are skipped entirely.
	IncludeRequests bool
}

// BuildCandidates converts bin and request snapshots into a uniform candidate
// list for sequencing. The transform is read-only: records with missing or
// out-of-range coordinates are dropped rather than defaulted, inactive bins
// and non-approved requests are filtered out, and empty input yields an empty
// (non-nil) slice.
func BuildCandidates(
	bins []domain.Bin,
	requests []domain.PickupRequest,
	cfg CandidateConfig,
) []domain.StopCandidate {
	candidates := make([]domain.StopCandidate, 0, len(bins)+len(requests))

	for _, b := range bins {
		if b.Status != domain.BinStatusActive {
			continue
		}
		if b.FillLevel < cfg.FillLevelThreshold {
			continue
		}
		if b.Location == nil || !b.Location.Valid() {
			continue
		}

		candidates = append(candidates, domain.StopCandidate{
			Kind:         domain.StopKindBinCollection,
			ReferenceID:  b.BinID,
			Location:     *b.Location,
			Address:      b.Address,
			PriorityHint: b.FillLevel,
			Metadata: map[string]any{
				"fill_level": b.FillLevel,
				"bin_type":   b.BinType,
			},
		})
	}

	if !cfg.IncludeRequests {
		return candidates
	}

	for _, r := range requests {
		if r.Status != domain.RequestStatusApproved {
			continue
		}
		if r.Location == nil || !r.Location.Valid() {
			continue
		}

		priority := requestBasePriority
		if r.Priority > 0 {
			priority = r.Priority
		}

		candidates = append(candidates, domain.StopCandidate{
			Kind:         domain.StopKindRequestPickup,
			ReferenceID:  r.TrackingID,
			Location:     *r.Location,
			Address:      r.Address,
			PriorityHint: priority,
			Metadata: map[string]any{
				"waste_type":  r.WasteType,
				"tracking_id": r.TrackingID,
			},
		})
	}

	return candidates
}
