package routing

import (
	"math"

	"waste-collection-service/internal/domain"
)

// Candidates within this distance of the step's minimum are treated as tied
// (near-collocated stops).
const tieEpsilonKm = 0.05

// Sequence orders candidates into a visit sequence using a greedy
// nearest-neighbor heuristic, bounded by maxStops.
//
// Each step first finds the minimum distance from the current position, then
// forms the tie set: every candidate within tieEpsilonKm of that minimum.
// The window is anchored to the minimum, never to a previously considered
// candidate, so ties cannot chain outward. Within the tie set the higher
// priority hint wins, and remaining ties fall back to original input order.
// The result is fully deterministic for identical input.
//
// The loop is O(n²) in the candidate count; runs are small (tens of stops)
// and bounded by construction, so simplicity wins over a better heuristic.
// maxStops <= 0 and empty input both yield an empty sequence, not an error.
func Sequence(
	candidates []domain.StopCandidate,
	start domain.Coordinate,
	maxStops int,
) []domain.StopCandidate {
	ordered := make([]domain.StopCandidate, 0, len(candidates))
	if maxStops <= 0 || len(candidates) == 0 {
		return ordered
	}

	// Element removal below keeps relative order, so remaining always
	// reflects original input order for tie-breaking.
	remaining := make([]domain.StopCandidate, len(candidates))
	copy(remaining, candidates)

	current := start
	distances := make([]float64, len(candidates))

	for len(remaining) > 0 && len(ordered) < maxStops {
		// Pass one: true minimum distance from the current position.
		minDistance := math.MaxFloat64
		for i, c := range remaining {
			d := Distance(current, c.Location)
			distances[i] = d
			if d < minDistance {
				minDistance = d
			}
		}

		// Pass two: highest priority inside the tie window. Strict > keeps
		// the earliest input position on equal priority.
		bestIdx := -1
		for i := range remaining {
			if distances[i] > minDistance+tieEpsilonKm {
				continue
			}
			if bestIdx == -1 || remaining[i].PriorityHint > remaining[bestIdx].PriorityHint {
				bestIdx = i
			}
		}

		selected := remaining[bestIdx]
		ordered = append(ordered, selected)
		current = selected.Location
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return ordered
}
