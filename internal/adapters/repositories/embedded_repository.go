package repositories

import (
	"context"
	"heavy-haul-service/internal/domain"
)

// In-memory implementation of the ReferenceDataRepository port.
type EmbeddedRepository struct {
	ds Dataset
}

func NewEmbeddedRepository(ds Dataset) *EmbeddedRepository {
	return &EmbeddedRepository{ds: ds}
}

// Return the truck catalog in dataset order.
func (r *EmbeddedRepository) ListTruckTypes(ctx context.Context) ([]domain.TruckType, error) {
	out := make([]domain.TruckType, len(r.ds.Trucks))
	copy(out, r.ds.Trucks)
	return out, nil
}

func (r *EmbeddedRepository) ListStatePermits(ctx context.Context) ([]domain.StatePermitData, error) {
	out := make([]domain.StatePermitData, len(r.ds.States))
	copy(out, r.ds.States)
	return out, nil
}
