package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"waste-collection-service/internal/domain"
	"waste-collection-service/internal/platform/obs"
)

// Postgres-backed implementation of the RouteStore port.
// Routes are planning snapshots, not relational entities: each save appends
// one row with the stop sequence serialized as JSON.
type PostgresRouteStore struct{ DB *sql.DB }

func NewPostgresRouteStore(db *sql.DB) *PostgresRouteStore {
	return &PostgresRouteStore{DB: db}
}

type storedStop struct {
	StopType             string         `json:"stop_type"`
	ReferenceID          string         `json:"reference_id"`
	Address              string         `json:"address"`
	Lat                  float64        `json:"lat"`
	Lng                  float64        `json:"lng"`
	SequencePosition     int            `json:"sequence_position"`
	CumulativeDistanceKm float64        `json:"cumulative_distance_km"`
	ArrivalOffsetMinutes float64        `json:"arrival_offset_minutes"`
	Metadata             map[string]any `json:"metadata,omitempty"`
}

// Persist one computed route for a depot.
func (p *PostgresRouteStore) SaveRoute(ctx context.Context, depotID string, route domain.OptimizedRoute) (err error) {
	defer obs.Time(ctx, "routes.store.SaveRoute")(&err)

	if p.DB == nil {
		return errors.New("postgres route store: DB is nil")
	}
	if depotID == "" {
		return errors.New("save route: depot id must not be empty")
	}

	stops := make([]storedStop, 0, len(route.Stops))
	for _, s := range route.Stops {
		stops = append(stops, storedStop{
			StopType:             string(s.Kind),
			ReferenceID:          s.ReferenceID,
			Address:              s.Address,
			Lat:                  s.Location.Lat,
			Lng:                  s.Location.Lng,
			SequencePosition:     s.SequencePosition,
			CumulativeDistanceKm: s.CumulativeDistanceKm,
			ArrivalOffsetMinutes: s.ArrivalOffsetMinutes,
			Metadata:             s.Metadata,
		})
	}

	payload, err := json.Marshal(stops)
	if err != nil {
		return fmt.Errorf("save route: marshal stops: %w", err)
	}

	query := `
	INSERT INTO collection_routes (depot_id, total_stops, total_distance_km, estimated_minutes, stops)
	VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := p.DB.ExecContext(ctx, query, depotID, route.TotalStops, route.TotalDistanceKm, route.EstimatedMinutes, payload); err != nil {
		return fmt.Errorf("save route: insert collection_routes row: %w", err)
	}

	return nil
}
