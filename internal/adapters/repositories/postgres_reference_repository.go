package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/platform/obs"
)

// Postgres-backed implementation of the ReferenceDataRepository port.
type PostgresReferenceRepository struct{ DB *sql.DB }

func NewPostgresReferenceRepository(db *sql.DB) *PostgresReferenceRepository {
	return &PostgresReferenceRepository{DB: db}
}

// Return the truck catalog in its seeded order.
func (r *PostgresReferenceRepository) ListTruckTypes(ctx context.Context) (_ []domain.TruckType, err error) {
	defer obs.Time(ctx, "reference.ListTruckTypes")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres reference repository: DB is nil")
	}

	query := `
	SELECT doc
	FROM truck_types
	ORDER BY position;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list truck types: query truck_types table: %w", err)
	}
	defer rows.Close()

	trucks := make([]domain.TruckType, 0, 16)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("list truck types: scan row: %w", err)
		}

		var t domain.TruckType
		if err := json.Unmarshal(raw, &t); err != nil {
			return nil, fmt.Errorf("list truck types: decode row: %w", err)
		}
		trucks = append(trucks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list truck types: row iteration: %w", err)
	}

	return trucks, nil
}

func (r *PostgresReferenceRepository) ListStatePermits(ctx context.Context) (_ []domain.StatePermitData, err error) {
	defer obs.Time(ctx, "reference.ListStatePermits")(&err)

	if r.DB == nil {
		return nil, errors.New("postgres reference repository: DB is nil")
	}

	query := `
	SELECT doc
	FROM state_permits
	ORDER BY state_code;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list state permits: query state_permits table: %w", err)
	}
	defer rows.Close()

	states := make([]domain.StatePermitData, 0, 64)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("list state permits: scan row: %w", err)
		}

		var s domain.StatePermitData
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, fmt.Errorf("list state permits: decode row: %w", err)
		}
		states = append(states, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list state permits: row iteration: %w", err)
	}

	return states, nil
}
