package services

import (
	"heavy-haul-service/internal/domain"
	"math"
)

const defaultFuelMPG = 5.0

// CalculateLoadCost prices one load: the truck day rate for the trip days,
// fuel for the route distance, and the permit and escort amounts already
// computed for the load.
func CalculateLoadCost(load domain.PlannedLoad, in domain.CostInputs, permitCost, escortCost domain.Cents) domain.SmartLoadCostBreakdown {
	days := max(TripDays(in.DistanceMiles), 1)

	mpg := load.RecommendedTruck.FuelMPG
	if mpg <= 0 {
		mpg = defaultFuelMPG
	}
	fuel := 0.0
	if in.DistanceMiles > 0 && in.FuelPricePerGallon > 0 {
		fuel = in.DistanceMiles / mpg * in.FuelPricePerGallon
	}

	out := domain.SmartLoadCostBreakdown{
		LoadID:     load.ID,
		TripDays:   days,
		TruckCost:  load.RecommendedTruck.DayRate * domain.Cents(days),
		FuelCost:   domain.DollarsToCents(fuel),
		PermitCost: permitCost,
		EscortCost: escortCost,
	}
	out.Total = out.TruckCost + out.FuelCost + out.PermitCost + out.EscortCost
	return out
}

// CalculatePlanCost sums per-load costs. CostPerItem is zero when itemCount
// is not positive.
func CalculatePlanCost(loads []domain.SmartLoadCostBreakdown, itemCount int) domain.PlanCostSummary {
	out := domain.PlanCostSummary{Loads: loads}
	if out.Loads == nil {
		out.Loads = []domain.SmartLoadCostBreakdown{}
	}
	for _, l := range loads {
		out.TotalTruckCost += l.TruckCost
		out.TotalFuelCost += l.FuelCost
		out.TotalPermits += l.PermitCost
		out.TotalEscorts += l.EscortCost
		out.TotalCost += l.Total
	}
	if itemCount > 0 {
		out.CostPerItem = domain.Cents(math.Round(float64(out.TotalCost) / float64(itemCount)))
	}
	return out
}
