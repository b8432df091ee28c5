package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for reference data and the route cache.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createTruckTypesQuery := `
	CREATE TABLE IF NOT EXISTS truck_types (
		position INTEGER PRIMARY KEY,
		truck_id TEXT NOT NULL UNIQUE,
		doc JSONB NOT NULL
	);
	`

	createStatePermitsQuery := `
	CREATE TABLE IF NOT EXISTS state_permits (
		state_code CHAR(2) PRIMARY KEY,
		doc JSONB NOT NULL
	);
	`

	createRouteCacheQuery := `
	CREATE TABLE IF NOT EXISTS route_mileage_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		legs JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (origin, destination)
	);
	`

	statements := []string{
		createTruckTypesQuery,
		createStatePermitsQuery,
		createRouteCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the stored reference data with ds.
func Seed(ctx context.Context, db *sql.DB, ds Dataset) error {
	if db == nil {
		return errors.New("seed reference data: DB is nil")
	}
	if err := ValidateDataset(ds); err != nil {
		return fmt.Errorf("seed reference data: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed reference data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, q := range []string{`DELETE FROM truck_types;`, `DELETE FROM state_permits;`} {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("seed reference data: clear tables: %w", err)
		}
	}

	truckStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO truck_types (position, truck_id, doc)
	VALUES ($1, $2, $3);
	`)
	if err != nil {
		return fmt.Errorf("seed reference data: prepare truck insert: %w", err)
	}
	defer truckStmt.Close()

	for i, t := range ds.Trucks {
		doc, err := json.Marshal(t)
		if err != nil {
			return fmt.Errorf("seed reference data: encode truck %q: %w", t.ID, err)
		}
		if _, err := truckStmt.ExecContext(ctx, i, t.ID, doc); err != nil {
			return fmt.Errorf("seed reference data: insert truck %q: %w", t.ID, err)
		}
	}

	stateStmt, err := tx.PrepareContext(ctx, `
	INSERT INTO state_permits (state_code, doc)
	VALUES ($1, $2);
	`)
	if err != nil {
		return fmt.Errorf("seed reference data: prepare state insert: %w", err)
	}
	defer stateStmt.Close()

	for _, s := range ds.States {
		doc, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("seed reference data: encode state %s: %w", s.StateCode, err)
		}
		if _, err := stateStmt.ExecContext(ctx, s.StateCode, doc); err != nil {
			return fmt.Errorf("seed reference data: insert state %s: %w", s.StateCode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed reference data: commit tx: %w", err)
	}

	return nil
}
