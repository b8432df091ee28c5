package services

import (
	"heavy-haul-service/internal/domain"
	"math"
)

const (
	escortDayRateDollars    = 800.0
	poleCarDayRateDollars   = 1000.0
	policeHourlyRateDollars = 100.0
	minProratedEscortDays   = 0.5
)

// EscortNeeds is what one state requires to accompany a load.
type EscortNeeds struct {
	Escorts int
	PoleCar bool
	Police  bool
}

// DetermineEscorts applies a state's escort rules to overall cargo specs.
// The escort count is the larger of the counts implied by width and by
// length; pole car and police flags are independent of the count.
func DetermineEscorts(rules domain.EscortRules, specs domain.CargoSpecs) EscortNeeds {
	needs := EscortNeeds{
		Escorts: max(
			tieredEscorts(specs.Width, rules.Width1Escort, rules.Width2Escorts),
			tieredEscorts(specs.CombinationLength(), rules.Length1Escort, rules.Length2Escorts),
		),
	}
	if rules.PoleCarHeight > 0 && specs.Height >= rules.PoleCarHeight {
		needs.PoleCar = true
	}
	if rules.PoliceEscortWidth > 0 && specs.Width >= rules.PoliceEscortWidth {
		needs.Police = true
	}
	if rules.PoliceEscortHeight > 0 && specs.Height >= rules.PoliceEscortHeight {
		needs.Police = true
	}
	return needs
}

func tieredEscorts(v, one, two float64) int {
	switch {
	case two > 0 && v >= two:
		return 2
	case one > 0 && v >= one:
		return 1
	default:
		return 0
	}
}

// TripDays estimates escorted travel days at 300 miles per day.
func TripDays(totalMiles float64) int {
	if totalMiles <= 0 {
		return 0
	}
	return int(math.Ceil(totalMiles / domain.MilesPerEscortDay))
}

// EstimateEscortCost prices escorts for the whole trip.
//
// Total uses whole trip days. PerState prorates each leg into partial days
// with a half-day minimum, so the per-state rows are informative only and
// do not add up to Total.
func EstimateEscortCost(needs EscortNeeds, route []domain.StateMileage) domain.EscortCostBreakdown {
	totalMiles := 0.0
	for _, leg := range route {
		totalMiles += leg.Miles
	}

	days := TripDays(totalMiles)
	perDay := escortDailyDollars(needs)

	out := domain.EscortCostBreakdown{
		Escorts:          needs.Escorts,
		PoleCarRequired:  needs.PoleCar,
		PoliceRequired:   needs.Police,
		TripDays:         days,
		TripHours:        float64(days) * domain.EscortHoursPerDay,
		EscortCostPerDay: domain.DollarsToCents(float64(needs.Escorts) * escortDayRateDollars),
		EscortCost:       domain.DollarsToCents(float64(needs.Escorts) * escortDayRateDollars * float64(days)),
		PoleCarCost:      domain.DollarsToCents(perDay.poleCar * float64(days)),
		PoliceCost:       domain.DollarsToCents(perDay.police * float64(days)),
		PerState:         []domain.StateEscortCost{},
	}
	out.Total = out.EscortCost + out.PoleCarCost + out.PoliceCost

	if out.Total == 0 {
		return out
	}

	for _, leg := range route {
		legDays := max(leg.Miles/domain.MilesPerEscortDay, minProratedEscortDays)
		row := domain.StateEscortCost{
			State:       leg.StateCode,
			Days:        math.Round(legDays*100) / 100,
			EscortCost:  domain.DollarsToCents(perDay.escorts * legDays),
			PoleCarCost: domain.DollarsToCents(perDay.poleCar * legDays),
			PoliceCost:  domain.DollarsToCents(perDay.police * legDays),
		}
		row.Total = row.EscortCost + row.PoleCarCost + row.PoliceCost
		out.PerState = append(out.PerState, row)
	}

	return out
}

type escortDaily struct {
	escorts float64
	poleCar float64
	police  float64
}

func escortDailyDollars(needs EscortNeeds) escortDaily {
	d := escortDaily{escorts: float64(needs.Escorts) * escortDayRateDollars}
	if needs.PoleCar {
		d.poleCar = poleCarDayRateDollars
	}
	if needs.Police {
		d.police = policeHourlyRateDollars * domain.EscortHoursPerDay
	}
	return d
}
