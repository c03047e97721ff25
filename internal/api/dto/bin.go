package dto

type CoordinateDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type BinResponse struct {
	BinID     string         `json:"bin_id"`
	Address   string         `json:"address"`
	Location  *CoordinateDTO `json:"location"`
	FillLevel int            `json:"fill_level"`
	Capacity  int            `json:"capacity"`
	BinType   string         `json:"bin_type"`
	Status    string         `json:"status"`
}

type ListBinsResponse struct {
	Bins []BinResponse `json:"bins"`
}

type RequestResponse struct {
	TrackingID string         `json:"tracking_id"`
	WasteType  string         `json:"waste_type"`
	Address    string         `json:"address"`
	Location   *CoordinateDTO `json:"location"`
	Status     string         `json:"status"`
	Priority   int            `json:"priority,omitempty"`
}

type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
}
