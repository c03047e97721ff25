package domain

// Pickup request lifecycle states.
const (
	RequestStatusPending   = "pending"
	RequestStatusApproved  = "approved"
	RequestStatusRejected  = "rejected"
	RequestStatusCollected = "collected"
)

// Represents a citizen ad-hoc pickup request snapshot.
// Priority is optional; zero means the request did not supply one and the
// routing baseline applies.
type PickupRequest struct {
	TrackingID string
	WasteType  string
	Address    string
	Location   *Coordinate
	Status     string
	Priority   int
}
