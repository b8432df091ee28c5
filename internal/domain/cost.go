package domain

// Inputs to cost estimation that are not part of the load itself.
type CostInputs struct {
	DistanceMiles      float64 `json:"distance_miles"`
	FuelPricePerGallon float64 `json:"fuel_price_per_gallon"`
}

type SmartLoadCostBreakdown struct {
	LoadID     string `json:"load_id"`
	TripDays   int    `json:"trip_days"`
	TruckCost  Cents  `json:"truck_cost"`
	FuelCost   Cents  `json:"fuel_cost"`
	PermitCost Cents  `json:"permit_cost"`
	EscortCost Cents  `json:"escort_cost"`
	Total      Cents  `json:"total"`
}

type PlanCostSummary struct {
	Loads          []SmartLoadCostBreakdown `json:"loads"`
	TotalTruckCost Cents                    `json:"total_truck_cost"`
	TotalFuelCost  Cents                    `json:"total_fuel_cost"`
	TotalPermits   Cents                    `json:"total_permits"`
	TotalEscorts   Cents                    `json:"total_escorts"`
	TotalCost      Cents                    `json:"total_cost"`
	CostPerItem    Cents                    `json:"cost_per_item"`
}
