package domain

type TruckCategory string

const (
	CategoryFlatbed    TruckCategory = "flatbed"
	CategoryStepDeck   TruckCategory = "step_deck"
	CategoryDoubleDrop TruckCategory = "double_drop"
	CategoryLowboy     TruckCategory = "lowboy"
	CategoryRGN        TruckCategory = "rgn"
	CategoryPerimeter  TruckCategory = "perimeter"
	CategoryConestoga  TruckCategory = "conestoga"
)

type LoadingMethod string

const (
	LoadingCrane   LoadingMethod = "crane"
	LoadingDriveOn LoadingMethod = "drive-on"
	LoadingRollOn  LoadingMethod = "roll-on"
)

// Reference description of a trailer configuration.
// TruckTypes are loaded once and shared read-only by every plan; the catalog
// order is significant because it breaks scoring ties.
type TruckType struct {
	ID                  string        `json:"id" yaml:"id"`
	Name                string        `json:"name" yaml:"name"`
	Category            TruckCategory `json:"category" yaml:"category"`
	DeckLength          float64       `json:"deck_length" yaml:"deck_length"`
	DeckWidth           float64       `json:"deck_width" yaml:"deck_width"`
	DeckHeight          float64       `json:"deck_height" yaml:"deck_height"`
	WellLength          float64       `json:"well_length,omitempty" yaml:"well_length"`
	WellHeight          float64       `json:"well_height,omitempty" yaml:"well_height"`
	MaxCargoWeight      float64       `json:"max_cargo_weight" yaml:"max_cargo_weight"`
	TareWeight          float64       `json:"tare_weight" yaml:"tare_weight"`
	MaxLegalCargoHeight float64       `json:"max_legal_cargo_height" yaml:"max_legal_cargo_height"`
	MaxLegalCargoWidth  float64       `json:"max_legal_cargo_width" yaml:"max_legal_cargo_width"`
	LoadingMethod       LoadingMethod `json:"loading_method" yaml:"loading_method"`
	DayRate             Cents         `json:"day_rate" yaml:"day_rate"`
	FuelMPG             float64       `json:"fuel_mpg" yaml:"fuel_mpg"`
	Axles               AxleConfig    `json:"axles" yaml:"axles"`
}

// AxleConfig locates the axle groups relative to the front of the deck.
// TrailerAxlePosition is measured from the kingpin (deck front) to the center
// of the trailer axle group; KingpinOffset is how far the kingpin sits ahead
// of the drive-axle center.
type AxleConfig struct {
	TractorWheelbase    float64 `json:"tractor_wheelbase" yaml:"tractor_wheelbase"`
	KingpinOffset       float64 `json:"kingpin_offset" yaml:"kingpin_offset"`
	TrailerAxlePosition float64 `json:"trailer_axle_position" yaml:"trailer_axle_position"`
	TrailerAxleCount    int     `json:"trailer_axle_count" yaml:"trailer_axle_count"`
}

// EffectiveAxles fills unset axle geometry with values derived from the deck.
func (t TruckType) EffectiveAxles() AxleConfig {
	a := t.Axles
	if a.TractorWheelbase <= 0 {
		a.TractorWheelbase = 20
	}
	if a.KingpinOffset <= 0 {
		a.KingpinOffset = 1.5
	}
	if a.TrailerAxlePosition <= 0 {
		a.TrailerAxlePosition = t.DeckLength * 0.85
	}
	if a.TrailerAxleCount <= 0 {
		a.TrailerAxleCount = 2
	}
	return a
}

// LegalCargoHeight is the tallest cargo the truck can carry without a height permit.
func (t TruckType) LegalCargoHeight() float64 {
	if t.MaxLegalCargoHeight > 0 {
		return t.MaxLegalCargoHeight
	}
	return LegalHeightFt - t.DeckHeight
}

// LegalCargoWidth is the widest cargo the truck can carry without a width permit.
func (t TruckType) LegalCargoWidth() float64 {
	if t.MaxLegalCargoWidth > 0 {
		return t.MaxLegalCargoWidth
	}
	return LegalWidthFt
}
