package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createBinsQuery := `
	CREATE TABLE IF NOT EXISTS bins (
		bin_id TEXT PRIMARY KEY,
		address TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		fill_level INTEGER NOT NULL DEFAULT 0,
		capacity INTEGER NOT NULL DEFAULT 0,
		bin_type TEXT NOT NULL DEFAULT 'general',
		status TEXT NOT NULL DEFAULT 'active'
	);
	`

	createRequestsQuery := `
	CREATE TABLE IF NOT EXISTS pickup_requests (
		tracking_id TEXT PRIMARY KEY,
		waste_type TEXT NOT NULL,
		address TEXT NOT NULL,
		lat DOUBLE PRECISION,
		lng DOUBLE PRECISION,
		status TEXT NOT NULL DEFAULT 'pending',
		priority INTEGER
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS collection_routes (
		route_id BIGSERIAL PRIMARY KEY,
		depot_id TEXT NOT NULL,
		total_stops INTEGER NOT NULL,
		total_distance_km DOUBLE PRECISION NOT NULL,
		estimated_minutes DOUBLE PRECISION NOT NULL,
		stops JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_collection_routes_depot_created
	ON collection_routes(depot_id, created_at DESC);
	`

	statements := []string{
		createBinsQuery,
		createRequestsQuery,
		createRoutesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type BinSeed struct {
	BinID     string   `json:"bin_id"`
	Address   string   `json:"address"`
	Lat       *float64 `json:"lat"`
	Lng       *float64 `json:"lng"`
	FillLevel int      `json:"fill_level"`
	Capacity  int      `json:"capacity"`
	BinType   string   `json:"bin_type"`
	Status    string   `json:"status"`
}

type RequestSeed struct {
	TrackingID string   `json:"tracking_id"`
	WasteType  string   `json:"waste_type"`
	Address    string   `json:"address"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Status     string   `json:"status"`
	Priority   *int     `json:"priority"`
}

type SeedFile struct {
	Bins     []BinSeed     `json:"bins"`
	Requests []RequestSeed `json:"requests"`
}

// Populate the database with bin and request data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed data: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed data: parse json: %w", err)
	}

	for i, b := range data.Bins {
		if strings.TrimSpace(b.BinID) == "" {
			return fmt.Errorf("seed data: bin at index %d: bin_id cannot be empty", i+1)
		}
	}
	for i, r := range data.Requests {
		if strings.TrimSpace(r.TrackingID) == "" {
			return fmt.Errorf("seed data: request at index %d: tracking_id cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	binQuery := `
	INSERT INTO bins (bin_id, address, lat, lng, fill_level, capacity, bin_type, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (bin_id) DO UPDATE
	SET address = EXCLUDED.address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		fill_level = EXCLUDED.fill_level,
		capacity = EXCLUDED.capacity,
		bin_type = EXCLUDED.bin_type,
		status = EXCLUDED.status;
	`
	binStmt, err := tx.Prepare(binQuery)
	if err != nil {
		return fmt.Errorf("seed data: prepare bin insert: %w", err)
	}
	defer binStmt.Close()

	for _, b := range data.Bins {
		if _, err := binStmt.Exec(b.BinID, b.Address, b.Lat, b.Lng, b.FillLevel, b.Capacity, b.BinType, b.Status); err != nil {
			return fmt.Errorf("seed data: insert bin_id=%q: %w", b.BinID, err)
		}
	}

	reqQuery := `
	INSERT INTO pickup_requests (tracking_id, waste_type, address, lat, lng, status, priority)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (tracking_id) DO UPDATE
	SET waste_type = EXCLUDED.waste_type,
		address = EXCLUDED.address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		status = EXCLUDED.status,
		priority = EXCLUDED.priority;
	`
	reqStmt, err := tx.Prepare(reqQuery)
	if err != nil {
		return fmt.Errorf("seed data: prepare request insert: %w", err)
	}
	defer reqStmt.Close()

	for _, r := range data.Requests {
		if _, err := reqStmt.Exec(r.TrackingID, r.WasteType, r.Address, r.Lat, r.Lng, r.Status, r.Priority); err != nil {
			return fmt.Errorf("seed data: insert tracking_id=%q: %w", r.TrackingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed data: commit tx: %w", err)
	}

	return nil
}
