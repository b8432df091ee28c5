package dto

import "heavy-haul-service/internal/domain"

type LoadItemRequest struct {
	ID          string  `json:"id" validate:"required,max=64"`
	Description string  `json:"description" validate:"max=256"`
	Quantity    int     `json:"quantity" validate:"gte=0,lte=1000"`
	Length      float64 `json:"length" validate:"required,gt=0"`
	Width       float64 `json:"width" validate:"required,gt=0"`
	Height      float64 `json:"height" validate:"required,gt=0"`
	Weight      float64 `json:"weight" validate:"required,gt=0"`
	Stackable   bool    `json:"stackable"`
	Fragile     bool    `json:"fragile"`
	Hazmat      bool    `json:"hazmat"`
}

func (r LoadItemRequest) ToDomain() domain.LoadItem {
	return domain.LoadItem{
		ID:          r.ID,
		Description: r.Description,
		Quantity:    r.Quantity,
		Length:      r.Length,
		Width:       r.Width,
		Height:      r.Height,
		Weight:      r.Weight,
		Stackable:   r.Stackable,
		Fragile:     r.Fragile,
		Hazmat:      r.Hazmat,
	}
}

func LoadItems(items []LoadItemRequest) []domain.LoadItem {
	out := make([]domain.LoadItem, 0, len(items))
	for _, it := range items {
		out = append(out, it.ToDomain())
	}
	return out
}

type PlanRequest struct {
	Items []LoadItemRequest `json:"items" validate:"required,min=1,max=200,dive"`
}

type PlanResponse struct {
	Plan domain.LoadPlan `json:"plan"`
}
