package domain

// Position of one item on a deck, in feet from the front-left corner.
// Length and Width are the footprint after rotation. Elevation is zero for
// items on the deck floor and the base item's height for stacked items.
type ItemPlacement struct {
	ItemID    string  `json:"item_id"`
	X         float64 `json:"x"`
	Z         float64 `json:"z"`
	Elevation float64 `json:"elevation,omitempty"`
	Rotated   bool    `json:"rotated"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Fallback  bool    `json:"fallback,omitempty"`
}

// Named components of a truck score. FinalScore is clamped to 0..100.
type ScoreBreakdown struct {
	Base                   float64 `json:"base"`
	FitPenalty             float64 `json:"fit_penalty"`
	HeightPenalty          float64 `json:"height_penalty"`
	WidthPenalty           float64 `json:"width_penalty"`
	WeightPenalty          float64 `json:"weight_penalty"`
	PermitPenalty          float64 `json:"permit_penalty"`
	OverkillPenalty        float64 `json:"overkill_penalty"`
	IdealFitBonus          float64 `json:"ideal_fit_bonus"`
	EquipmentMatchBonus    float64 `json:"equipment_match_bonus"`
	LegalBonus             float64 `json:"legal_bonus"`
	EscortProximityWarning bool    `json:"escort_proximity_warning"`
	FinalScore             float64 `json:"final_score"`
}

// Suggested trade-off when a load needs permits on its recommended truck.
type FitAlternative struct {
	TruckID         string   `json:"truck_id"`
	TruckName       string   `json:"truck_name"`
	PermitsRequired []string `json:"permits_required"`
	HeightReduction float64  `json:"height_reduction,omitempty"`
	WidthReduction  float64  `json:"width_reduction,omitempty"`
	Note            string   `json:"note"`
}

// One truck's worth of cargo.
// A PlannedLoad is built up inside the planner and is final once PlanLoads returns.
type PlannedLoad struct {
	ID               string           `json:"id"`
	Items            []LoadItem       `json:"items"`
	Length           float64          `json:"length"`
	Width            float64          `json:"width"`
	Height           float64          `json:"height"`
	Weight           float64          `json:"weight"`
	RecommendedTruck TruckType        `json:"recommended_truck"`
	TruckScore       float64          `json:"truck_score"`
	ScoreBreakdown   ScoreBreakdown   `json:"score_breakdown"`
	Placements       []ItemPlacement  `json:"placements"`
	PermitsRequired  []string         `json:"permits_required"`
	Warnings         []string         `json:"warnings"`
	IsLegal          bool             `json:"is_legal"`
	Utilization      float64          `json:"utilization"`
	FitAlternatives  []FitAlternative `json:"fit_alternatives,omitempty"`
}

// OverallSpecs are the loaded dimensions a permit office sees for this load.
func (l PlannedLoad) OverallSpecs() CargoSpecs {
	return CargoSpecs{
		Width:         l.Width,
		Height:        l.Height + l.RecommendedTruck.DeckHeight,
		Length:        l.Length,
		OverallLength: max(l.Length, l.RecommendedTruck.DeckLength) + TractorLengthFt,
		GrossWeight:   l.Weight + l.RecommendedTruck.TareWeight + TractorWeightLbs,
	}
}

type UnassignedItem struct {
	Item   LoadItem `json:"item"`
	Reason string   `json:"reason"`
}

// Caller-facing result of load planning. Treated as immutable once returned.
type LoadPlan struct {
	Loads           []PlannedLoad    `json:"loads"`
	TotalTrucks     int              `json:"total_trucks"`
	TotalWeight     float64          `json:"total_weight"`
	TotalItems      int              `json:"total_items"`
	UnassignedItems []UnassignedItem `json:"unassigned_items"`
	Warnings        []string         `json:"warnings"`
}
