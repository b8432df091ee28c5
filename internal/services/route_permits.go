package services

import (
	"fmt"
	"heavy-haul-service/internal/domain"
)

// CalculateRoutePermits aggregates per-state permits along a route.
// Fees are summed, the escort count is the maximum over all states, and
// pole car or police escorts are required if any state requires them.
// States missing from the dataset are skipped with a warning.
func (pc *PermitCalculator) CalculateRoutePermits(specs domain.CargoSpecs, route []domain.StateMileage) domain.RoutePermitSummary {
	d := pc.CalculateDetailedRoutePermits(specs, route)

	states := make([]domain.PermitRequirement, 0, len(d.States))
	for _, s := range d.States {
		states = append(states, s.PermitRequirement)
	}

	return domain.RoutePermitSummary{
		States:               states,
		TotalMiles:           d.TotalMiles,
		TotalPermitFees:      d.TotalPermitFees,
		MaxEscortsRequired:   d.MaxEscortsRequired,
		PoleCarRequired:      d.PoleCarRequired,
		PoliceEscortRequired: d.PoliceEscortRequired,
		TotalEscortCost:      d.TotalEscortCost,
		OverallRestrictions:  d.OverallRestrictions,
		Warnings:             d.Warnings,
	}
}

func (pc *PermitCalculator) CalculateDetailedRoutePermits(specs domain.CargoSpecs, route []domain.StateMileage) domain.DetailedRoutePermitSummary {
	out := domain.DetailedRoutePermitSummary{
		States:              []domain.DetailedPermitRequirement{},
		OverallRestrictions: []string{},
		Warnings:            []string{},
	}

	if len(route) == 0 {
		out.Warnings = append(out.Warnings, "Route has no states; no permits were calculated")
		out.EscortBreakdown = EstimateEscortCost(EscortNeeds{}, nil)
		return out
	}

	seen := make(map[string]bool)
	needs := EscortNeeds{}
	superloadStates := []string{}

	for _, leg := range route {
		out.TotalMiles += leg.Miles

		req := pc.CalculateDetailedStatePermit(leg.StateCode, specs, leg.Miles)
		if req == nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"No permit data for state %q; %.1f miles excluded from permit totals",
				leg.StateCode, leg.Miles,
			))
			continue
		}

		out.States = append(out.States, *req)
		out.TotalPermitFees += req.EstimatedFee

		needs.Escorts = max(needs.Escorts, req.EscortsRequired)
		needs.PoleCar = needs.PoleCar || req.PoleCarRequired
		needs.Police = needs.Police || req.PoliceEscortRequired

		if req.IsSuperload {
			superloadStates = append(superloadStates, req.State)
		}

		for _, r := range req.TravelRestrictions {
			line := req.State + ": " + r
			if !seen[line] {
				seen[line] = true
				out.OverallRestrictions = append(out.OverallRestrictions, line)
			}
		}
	}

	out.MaxEscortsRequired = needs.Escorts
	out.PoleCarRequired = needs.PoleCar
	out.PoliceEscortRequired = needs.Police

	// Escorts travel with the load for the whole trip, so cost uses total route
	// miles including states without permit data.
	out.EscortBreakdown = EstimateEscortCost(needs, route)
	out.TotalEscortCost = out.EscortBreakdown.Total

	for _, code := range superloadStates {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"%s: load qualifies as a superload; expect route surveys and longer permit processing", code,
		))
	}
	if needs.Police {
		out.Warnings = append(out.Warnings, "Police escort required; schedule with the state patrol in advance")
	}

	return out
}
