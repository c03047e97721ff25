package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"waste-collection-service/internal/domain"
)

// Postgres-backed implementation of the RequestRepository port.
type PostgresRequestRepository struct{ DB *sql.DB }

func NewPostgresRequestRepository(db *sql.DB) *PostgresRequestRepository {
	return &PostgresRequestRepository{DB: db}
}

// Return all pickup requests approved for collection.
func (p *PostgresRequestRepository) ListApprovedRequests(ctx context.Context) ([]domain.PickupRequest, error) {
	if p.DB == nil {
		return nil, errors.New("postgres request repository: DB is nil")
	}

	query := `
	SELECT
		tracking_id,
		waste_type,
		address,
		lat,
		lng,
		status,
		priority
	FROM pickup_requests
	WHERE status = $1
	ORDER BY tracking_id;
	`
	rows, err := p.DB.QueryContext(ctx, query, domain.RequestStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved requests: query pickup_requests table: %w", err)
	}
	defer rows.Close()

	requests := make([]domain.PickupRequest, 0, 32)
	for rows.Next() {
		var r domain.PickupRequest
		var lat, lng sql.NullFloat64
		var priority sql.NullInt64
		if err := rows.Scan(&r.TrackingID, &r.WasteType, &r.Address, &lat, &lng, &r.Status, &priority); err != nil {
			return nil, fmt.Errorf("list approved requests: scan row: %w", err)
		}
		if lat.Valid && lng.Valid {
			r.Location = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
		}
		if priority.Valid {
			r.Priority = int(priority.Int64)
		}
		requests = append(requests, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list approved requests: row iteration: %w", err)
	}

	return requests, nil
}
