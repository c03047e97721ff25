package domain

// Bin lifecycle states as stored by the fleet backend.
const (
	BinStatusActive      = "active"
	BinStatusInactive    = "inactive"
	BinStatusMaintenance = "maintenance"
)

// Represents a smart bin snapshot at optimization time.
// Location is nil when the device has never reported a fix or the
// stored coordinates failed validation upstream.
type Bin struct {
	BinID     string
	Address   string
	Location  *Coordinate
	FillLevel int
	Capacity  int
	BinType   string
	Status    string
}
