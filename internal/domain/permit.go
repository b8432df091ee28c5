package domain

// Per-state permitting reference record.
// Zero thresholds and fees mean "not defined by this state".
type StatePermitData struct {
	StateCode          string              `json:"state_code" yaml:"state_code"`
	StateName          string              `json:"state_name" yaml:"state_name"`
	LegalLimits        LegalLimits         `json:"legal_limits" yaml:"legal_limits"`
	OversizePermits    OversizeFees        `json:"oversize_permits" yaml:"oversize_permits"`
	OverweightPermits  OverweightFees      `json:"overweight_permits" yaml:"overweight_permits"`
	EscortRules        EscortRules         `json:"escort_rules" yaml:"escort_rules"`
	Superload          *SuperloadThreshold `json:"superload,omitempty" yaml:"superload"`
	TravelRestrictions TravelRestrictions  `json:"travel_restrictions" yaml:"travel_restrictions"`
	Contact            AgencyContact       `json:"contact" yaml:"contact"`
	Source             string              `json:"source,omitempty" yaml:"source"`
	LastUpdated        string              `json:"last_updated,omitempty" yaml:"last_updated"`
}

type LegalLimits struct {
	MaxWidth  float64 `json:"max_width" yaml:"max_width"`
	MaxHeight float64 `json:"max_height" yaml:"max_height"`
	MaxLength float64 `json:"max_length" yaml:"max_length"`
	MaxWeight float64 `json:"max_weight" yaml:"max_weight"`
}

// SurchargeTier adds Fee dollars once the dimension meets Threshold feet.
type SurchargeTier struct {
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Fee       float64 `json:"fee" yaml:"fee"`
}

type OversizeFees struct {
	BaseFee          float64         `json:"base_fee" yaml:"base_fee"`
	WidthSurcharges  []SurchargeTier `json:"width_surcharges,omitempty" yaml:"width_surcharges"`
	HeightSurcharges []SurchargeTier `json:"height_surcharges,omitempty" yaml:"height_surcharges"`
	LengthSurcharges []SurchargeTier `json:"length_surcharges,omitempty" yaml:"length_surcharges"`
	ProcessingTime   string          `json:"processing_time,omitempty" yaml:"processing_time"`
}

// WeightBracket applies to gross weights from MinWeight up to MaxWeight
// (MaxWeight zero means open ended).
type WeightBracket struct {
	MinWeight float64 `json:"min_weight" yaml:"min_weight"`
	MaxWeight float64 `json:"max_weight" yaml:"max_weight"`
	Fee       float64 `json:"fee" yaml:"fee"`
}

type OverweightFees struct {
	BaseFee        float64         `json:"base_fee" yaml:"base_fee"`
	PerMileFee     float64         `json:"per_mile_fee,omitempty" yaml:"per_mile_fee"`
	TonMileFee     float64         `json:"ton_mile_fee,omitempty" yaml:"ton_mile_fee"`
	WeightBrackets []WeightBracket `json:"weight_brackets,omitempty" yaml:"weight_brackets"`
	ExtraLegalFee  float64         `json:"extra_legal_fee,omitempty" yaml:"extra_legal_fee"`
}

type EscortRules struct {
	Width1Escort       float64 `json:"width_1_escort" yaml:"width_1_escort"`
	Width2Escorts      float64 `json:"width_2_escorts" yaml:"width_2_escorts"`
	Length1Escort      float64 `json:"length_1_escort,omitempty" yaml:"length_1_escort"`
	Length2Escorts     float64 `json:"length_2_escorts,omitempty" yaml:"length_2_escorts"`
	PoleCarHeight      float64 `json:"pole_car_height,omitempty" yaml:"pole_car_height"`
	PoliceEscortWidth  float64 `json:"police_escort_width,omitempty" yaml:"police_escort_width"`
	PoliceEscortHeight float64 `json:"police_escort_height,omitempty" yaml:"police_escort_height"`
}

type SuperloadThreshold struct {
	Width  float64 `json:"width,omitempty" yaml:"width"`
	Height float64 `json:"height,omitempty" yaml:"height"`
	Length float64 `json:"length,omitempty" yaml:"length"`
	Weight float64 `json:"weight,omitempty" yaml:"weight"`
}

type TravelRestrictions struct {
	NoNightTravel        bool   `json:"no_night_travel" yaml:"no_night_travel"`
	NightDefinition      string `json:"night_definition,omitempty" yaml:"night_definition"`
	NoWeekendTravel      bool   `json:"no_weekend_travel" yaml:"no_weekend_travel"`
	WeekendDefinition    string `json:"weekend_definition,omitempty" yaml:"weekend_definition"`
	NoHolidayTravel      bool   `json:"no_holiday_travel" yaml:"no_holiday_travel"`
	PeakHourRestrictions string `json:"peak_hour_restrictions,omitempty" yaml:"peak_hour_restrictions"`
	WeatherRestrictions  string `json:"weather_restrictions,omitempty" yaml:"weather_restrictions"`
}

type AgencyContact struct {
	Agency  string `json:"agency,omitempty" yaml:"agency"`
	Phone   string `json:"phone,omitempty" yaml:"phone"`
	Website string `json:"website,omitempty" yaml:"website"`
}

// StateMileage is one leg of a route: the miles driven inside a state.
type StateMileage struct {
	StateCode string  `json:"state_code"`
	Miles     float64 `json:"miles"`
}
