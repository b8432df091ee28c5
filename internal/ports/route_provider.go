package ports

import (
	"context"
	"heavy-haul-service/internal/domain"
)

// Contract for resolving a route into the miles driven in each state.
type RouteProvider interface {
	// Return the ordered state legs between two locations.
	GetStateMileage(ctx context.Context, origin string, destination string) ([]domain.StateMileage, error)
}
