package routing

import (
	"testing"

	"waste-collection-service/internal/domain"
)

func coord(lat, lng float64) *domain.Coordinate {
	return &domain.Coordinate{Lat: lat, Lng: lng}
}

func TestBuildCandidatesFiltersBins(t *testing.T) {
	bins := []domain.Bin{
		{BinID: "b1", Status: domain.BinStatusActive, FillLevel: 70, Location: coord(6.9271, 79.8612)},
		{BinID: "b2", Status: domain.BinStatusActive, FillLevel: 69, Location: coord(6.8945, 79.8573)},
		{BinID: "b3", Status: domain.BinStatusInactive, FillLevel: 95, Location: coord(6.8855, 79.8740)},
		{BinID: "b4", Status: domain.BinStatusActive, FillLevel: 80, Location: nil},
		{BinID: "b5", Status: domain.BinStatusActive, FillLevel: 80, Location: coord(200, 79.8612)},
	}

	got := BuildCandidates(bins, nil, CandidateConfig{FillLevelThreshold: 70, IncludeRequests: true})

	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].ReferenceID != "b1" {
		t.Fatalf("expected b1 (threshold is inclusive), got %q", got[0].ReferenceID)
	}
	if got[0].Kind != domain.StopKindBinCollection {
		t.Fatalf("kind = %q, want %q", got[0].Kind, domain.StopKindBinCollection)
	}
	if got[0].PriorityHint != 70 {
		t.Fatalf("priority = %d, want fill level 70", got[0].PriorityHint)
	}
}

func TestBuildCandidatesFiltersRequests(t *testing.T) {
	requests := []domain.PickupRequest{
		{TrackingID: "r1", Status: domain.RequestStatusApproved, Location: coord(6.9, 79.8)},
		{TrackingID: "r2", Status: domain.RequestStatusPending, Location: coord(6.9, 79.8)},
		{TrackingID: "r3", Status: domain.RequestStatusApproved, Location: nil},
		{TrackingID: "r4", Status: domain.RequestStatusApproved, Location: coord(6.9, 79.8), Priority: 90},
	}

	got := BuildCandidates(nil, requests, CandidateConfig{FillLevelThreshold: 70, IncludeRequests: true})

	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].ReferenceID != "r1" || got[1].ReferenceID != "r4" {
		t.Fatalf("unexpected candidates: %q, %q", got[0].ReferenceID, got[1].ReferenceID)
	}
	if got[0].PriorityHint != requestBasePriority {
		t.Fatalf("r1 priority = %d, want baseline %d", got[0].PriorityHint, requestBasePriority)
	}
	if got[1].PriorityHint != 90 {
		t.Fatalf("r4 priority = %d, want its own 90", got[1].PriorityHint)
	}
}

func TestBuildCandidatesExcludesRequestsWhenDisabled(t *testing.T) {
	requests := []domain.PickupRequest{
		{TrackingID: "r1", Status: domain.RequestStatusApproved, Location: coord(6.9, 79.8)},
	}

	got := BuildCandidates(nil, requests, CandidateConfig{FillLevelThreshold: 70, IncludeRequests: false})
	if len(got) != 0 {
		t.Fatalf("expected no candidates with requests disabled, got %d", len(got))
	}
}

func TestBuildCandidatesMetadataPassThrough(t *testing.T) {
	bins := []domain.Bin{
		{BinID: "b1", Status: domain.BinStatusActive, FillLevel: 85, BinType: "recycling", Location: coord(6.9, 79.8)},
	}
	requests := []domain.PickupRequest{
		{TrackingID: "r1", WasteType: "bulky", Status: domain.RequestStatusApproved, Location: coord(6.9, 79.8)},
	}

	got := BuildCandidates(bins, requests, CandidateConfig{FillLevelThreshold: 70, IncludeRequests: true})
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}

	if got[0].Metadata["fill_level"] != 85 || got[0].Metadata["bin_type"] != "recycling" {
		t.Errorf("bin metadata = %v", got[0].Metadata)
	}
	if got[1].Metadata["waste_type"] != "bulky" || got[1].Metadata["tracking_id"] != "r1" {
		t.Errorf("request metadata = %v", got[1].Metadata)
	}
}

func TestBuildCandidatesEmptyInput(t *testing.T) {
	got := BuildCandidates(nil, nil, CandidateConfig{FillLevelThreshold: 70, IncludeRequests: true})
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}
