package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"waste-collection-service/internal/domain"
)

// Postgres-backed implementation of the BinRepository port.
type PostgresBinRepository struct{ DB *sql.DB }

func NewPostgresBinRepository(db *sql.DB) *PostgresBinRepository {
	return &PostgresBinRepository{DB: db}
}

// Return active bins at or above the given fill level.
// Coordinates are nullable in storage: bins that never reported a fix come
// back with a nil Location and are filtered later by the candidate builder.
func (p *PostgresBinRepository) ListEligibleBins(ctx context.Context, minFillLevel int) ([]domain.Bin, error) {
	if p.DB == nil {
		return nil, errors.New("postgres bin repository: DB is nil")
	}

	query := `
	SELECT
		bin_id,
		address,
		lat,
		lng,
		fill_level,
		capacity,
		bin_type,
		status
	FROM bins
	WHERE status = $1 AND fill_level >= $2
	ORDER BY bin_id;
	`
	rows, err := p.DB.QueryContext(ctx, query, domain.BinStatusActive, minFillLevel)
	if err != nil {
		return nil, fmt.Errorf("list eligible bins: query bins table: %w", err)
	}
	defer rows.Close()

	bins := make([]domain.Bin, 0, 64)
	for rows.Next() {
		var b domain.Bin
		var lat, lng sql.NullFloat64
		if err := rows.Scan(&b.BinID, &b.Address, &lat, &lng, &b.FillLevel, &b.Capacity, &b.BinType, &b.Status); err != nil {
			return nil, fmt.Errorf("list eligible bins: scan row: %w", err)
		}
		if lat.Valid && lng.Valid {
			b.Location = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
		}
		bins = append(bins, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list eligible bins: row iteration: %w", err)
	}

	return bins, nil
}
