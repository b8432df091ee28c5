package ports

import (
	"context"
	"heavy-haul-service/internal/domain"
)

// Cache of resolved routes keyed by origin and destination.
type RouteMileageCache interface {
	Get(ctx context.Context, origin, destination string) ([]domain.StateMileage, bool, error)
	Set(ctx context.Context, origin, destination string, legs []domain.StateMileage) error
}

// Cache of route permit summaries keyed by the cargo specs and route they were computed for.
type PermitSummaryCache interface {
	Get(ctx context.Context, specs domain.CargoSpecs, route []domain.StateMileage) (*domain.DetailedRoutePermitSummary, bool, error)
	Set(ctx context.Context, specs domain.CargoSpecs, route []domain.StateMileage, summary *domain.DetailedRoutePermitSummary) error
}
