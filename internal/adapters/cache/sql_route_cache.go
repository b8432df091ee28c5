package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/platform/obs"
	"strings"
)

// SQLRouteCache is a SQL-backed cache of origin->destination state mileage.
type SQLRouteCache struct {
	DB *sql.DB
}

func NewSQLRouteCache(db *sql.DB) *SQLRouteCache {
	return &SQLRouteCache{DB: db}
}

// Fetch the cached legs for one origin and destination.
func (s *SQLRouteCache) Get(
	ctx context.Context,
	origin string,
	destination string,
) (_ []domain.StateMileage, _ bool, err error) {
	defer obs.Time(ctx, "route.cache.Get")(&err)

	if s.DB == nil {
		return nil, false, errors.New("route cache: db is nil")
	}

	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return nil, false, errors.New("get route cache: origin and destination must not be empty")
	}

	q := `
	SELECT legs
	FROM route_mileage_cache
	WHERE origin = $1
		AND destination = $2;
	`

	var raw []byte
	err = s.DB.QueryRowContext(ctx, q, origin, destination).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route cache: query route_mileage_cache table: %w", err)
	}

	var legs []domain.StateMileage
	if err := json.Unmarshal(raw, &legs); err != nil {
		return nil, false, fmt.Errorf("get route cache: decode legs: %w", err)
	}

	return legs, true, nil
}

// Store the legs for one origin and destination, replacing any earlier entry.
func (s *SQLRouteCache) Set(
	ctx context.Context,
	origin string,
	destination string,
	legs []domain.StateMileage,
) error {
	if s.DB == nil {
		return errors.New("route cache: db is nil")
	}

	origin, destination = strings.TrimSpace(origin), strings.TrimSpace(destination)
	if origin == "" || destination == "" {
		return errors.New("insert route cache: origin and destination must not be empty")
	}

	raw, err := json.Marshal(legs)
	if err != nil {
		return fmt.Errorf("insert route cache: encode legs: %w", err)
	}

	q := `
	INSERT INTO route_mileage_cache (origin, destination, legs, updated_at)
	VALUES ($1, $2, $3, now())
	ON CONFLICT (origin, destination) DO UPDATE
	SET legs = EXCLUDED.legs,
		updated_at = EXCLUDED.updated_at;
	`
	if _, err := s.DB.ExecContext(ctx, q, origin, destination, raw); err != nil {
		return fmt.Errorf("insert route cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}
