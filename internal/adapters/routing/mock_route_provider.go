package routing

import (
	"context"
	"fmt"
	"heavy-haul-service/internal/domain"
	"slices"
)

type MockRoute struct {
	From, To string
	Legs     []domain.StateMileage
}

// MockRouteProvider serves fixed routes, for tests and offline runs.
type MockRouteProvider struct {
	m map[string][]domain.StateMileage
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[string][]domain.StateMileage, len(routes))
	for _, r := range routes {
		m[r.From+"|"+r.To] = slices.Clone(r.Legs)
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) GetStateMileage(ctx context.Context, origin, destination string) ([]domain.StateMileage, error) {
	legs, ok := p.m[origin+"|"+destination]
	if !ok {
		return nil, fmt.Errorf("missing route %q -> %q", origin, destination)
	}

	return slices.Clone(legs), nil
}
