package dto

type OptimizeRouteRequest struct {
	DepotID            string         `json:"depot_id"`
	StartLocation      *CoordinateDTO `json:"start_location"`
	FillLevelThreshold *int           `json:"fill_level_threshold"`
	MaxStops           *int           `json:"max_stops"`
	IncludeRequests    *bool          `json:"include_requests"`
}

type RouteStopResponse struct {
	StopType             string         `json:"stop_type"`
	ReferenceID          string         `json:"reference_id"`
	Address              string         `json:"address"`
	Location             CoordinateDTO  `json:"location"`
	SequencePosition     int            `json:"sequence_position"`
	CumulativeDistanceKm float64        `json:"cumulative_distance_km"`
	ArrivalOffsetMinutes float64        `json:"arrival_offset_minutes"`
	Metadata             map[string]any `json:"metadata,omitempty"`
}

type RouteResponse struct {
	TotalStops       int                 `json:"total_stops"`
	TotalDistanceKm  float64             `json:"total_distance_km"`
	EstimatedMinutes float64             `json:"estimated_minutes"`
	Stops            []RouteStopResponse `json:"stops"`
}
