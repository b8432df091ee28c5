package domain

// Permit outcome for one state.
type PermitRequirement struct {
	State                string   `json:"state"`
	StateName            string   `json:"state_name"`
	DistanceMiles        float64  `json:"distance_miles"`
	OversizeRequired     bool     `json:"oversize_required"`
	OverweightRequired   bool     `json:"overweight_required"`
	IsSuperload          bool     `json:"is_superload"`
	EscortsRequired      int      `json:"escorts_required"`
	PoleCarRequired      bool     `json:"pole_car_required"`
	PoliceEscortRequired bool     `json:"police_escort_required"`
	EstimatedFee         Cents    `json:"estimated_fee"`
	Reasons              []string `json:"reasons"`
	TravelRestrictions   []string `json:"travel_restrictions"`
}

// Every fee contributing to a state's EstimatedFee, in cents.
type PermitCostBreakdown struct {
	BaseOversizeFee   Cents `json:"base_oversize_fee"`
	WidthSurcharge    Cents `json:"width_surcharge"`
	HeightSurcharge   Cents `json:"height_surcharge"`
	LengthSurcharge   Cents `json:"length_surcharge"`
	BaseOverweightFee Cents `json:"base_overweight_fee"`
	PerMileFee        Cents `json:"per_mile_fee"`
	TonMileFee        Cents `json:"ton_mile_fee"`
	BracketAdjustment Cents `json:"bracket_adjustment"`
	ExtraLegalFees    Cents `json:"extra_legal_fees"`
	Total             Cents `json:"total"`
}

type DetailedPermitRequirement struct {
	PermitRequirement
	CostBreakdown      PermitCostBreakdown `json:"cost_breakdown"`
	CalculationDetails []string            `json:"calculation_details"`
	ProcessingTime     string              `json:"processing_time,omitempty"`
	Contact            AgencyContact       `json:"contact"`
}

type RoutePermitSummary struct {
	States               []PermitRequirement `json:"states"`
	TotalMiles           float64             `json:"total_miles"`
	TotalPermitFees      Cents               `json:"total_permit_fees"`
	MaxEscortsRequired   int                 `json:"max_escorts_required"`
	PoleCarRequired      bool                `json:"pole_car_required"`
	PoliceEscortRequired bool                `json:"police_escort_required"`
	TotalEscortCost      Cents               `json:"total_escort_cost"`
	OverallRestrictions  []string            `json:"overall_restrictions"`
	Warnings             []string            `json:"warnings"`
}

type DetailedRoutePermitSummary struct {
	States               []DetailedPermitRequirement `json:"states"`
	TotalMiles           float64                     `json:"total_miles"`
	TotalPermitFees      Cents                       `json:"total_permit_fees"`
	MaxEscortsRequired   int                         `json:"max_escorts_required"`
	PoleCarRequired      bool                        `json:"pole_car_required"`
	PoliceEscortRequired bool                        `json:"police_escort_required"`
	TotalEscortCost      Cents                       `json:"total_escort_cost"`
	EscortBreakdown      EscortCostBreakdown         `json:"escort_breakdown"`
	OverallRestrictions  []string                    `json:"overall_restrictions"`
	Warnings             []string                    `json:"warnings"`
}

// Trip-wide escort cost. PerState figures are prorated for display and are
// not expected to sum to Total.
type EscortCostBreakdown struct {
	Escorts          int               `json:"escorts"`
	PoleCarRequired  bool              `json:"pole_car_required"`
	PoliceRequired   bool              `json:"police_required"`
	TripDays         int               `json:"trip_days"`
	TripHours        float64           `json:"trip_hours"`
	EscortCostPerDay Cents             `json:"escort_cost_per_day"`
	EscortCost       Cents             `json:"escort_cost"`
	PoleCarCost      Cents             `json:"pole_car_cost"`
	PoliceCost       Cents             `json:"police_cost"`
	Total            Cents             `json:"total"`
	PerState         []StateEscortCost `json:"per_state"`
}

type StateEscortCost struct {
	State       string  `json:"state"`
	Days        float64 `json:"days"`
	EscortCost  Cents   `json:"escort_cost"`
	PoleCarCost Cents   `json:"pole_car_cost"`
	PoliceCost  Cents   `json:"police_cost"`
	Total       Cents   `json:"total"`
}
