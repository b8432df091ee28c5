package dto

import "heavy-haul-service/internal/domain"

type StateMileageRequest struct {
	StateCode string  `json:"state_code" validate:"required,len=2,alpha"`
	Miles     float64 `json:"miles" validate:"gte=0"`
}

func Route(legs []StateMileageRequest) []domain.StateMileage {
	out := make([]domain.StateMileage, 0, len(legs))
	for _, l := range legs {
		out = append(out, domain.StateMileage{StateCode: l.StateCode, Miles: l.Miles})
	}
	return out
}

// CargoSpecsRequest describes the loaded vehicle: cargo height plus deck
// height, and gross weight including truck and trailer.
type CargoSpecsRequest struct {
	Width         float64 `json:"width" validate:"required,gt=0"`
	Height        float64 `json:"height" validate:"required,gt=0"`
	Length        float64 `json:"length" validate:"required,gt=0"`
	OverallLength float64 `json:"overall_length" validate:"gte=0,lte=300"`
	GrossWeight   float64 `json:"gross_weight" validate:"required,gt=0"`
}

func (r CargoSpecsRequest) ToDomain() domain.CargoSpecs {
	return domain.CargoSpecs{
		Width:         r.Width,
		Height:        r.Height,
		Length:        r.Length,
		OverallLength: r.OverallLength,
		GrossWeight:   r.GrossWeight,
	}
}

type RoutePermitRequest struct {
	Cargo CargoSpecsRequest     `json:"cargo"`
	Route []StateMileageRequest `json:"route" validate:"max=60,dive"`
}
