package ports

import (
	"context"
	"heavy-haul-service/internal/domain"
)

// Port: a boundary for the read-only truck catalog and state permit dataset.
type ReferenceDataRepository interface {
	// Retrieve the truck catalog in its significant order.
	ListTruckTypes(ctx context.Context) ([]domain.TruckType, error)
	// Retrieve permit data for every covered state.
	ListStatePermits(ctx context.Context) ([]domain.StatePermitData, error)
}
