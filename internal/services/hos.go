package services

import (
	"fmt"
	"heavy-haul-service/internal/domain"
	"math"
)

// Federal property-carrier hours of service limits, in hours.
type FederalHOSRules struct {
	MaxDriving     float64
	DutyWindow     float64
	BreakAfter     float64
	BreakDuration  float64
	OffDutyReset   float64
	CycleRestart   float64
	Cycle60Limit   float64
	Cycle70Limit   float64
	MinBerthPeriod float64
	MinOtherPeriod float64
}

var FederalHOS = FederalHOSRules{
	MaxDriving:     11,
	DutyWindow:     14,
	BreakAfter:     8,
	BreakDuration:  0.5,
	OffDutyReset:   10,
	CycleRestart:   34,
	Cycle60Limit:   60,
	Cycle70Limit:   70,
	MinBerthPeriod: 7,
	MinOtherPeriod: 2,
}

const (
	defaultAverageSpeedMPH = 45.0
	hosEpsilon             = 1e-9
)

type HOSOptions struct {
	// SleeperSplit, when set, takes daily resets as a sleeper berth split
	// instead of a consecutive 10 hour off-duty period.
	SleeperSplit domain.SleeperSplit
}

// FreshHOSStatus is a driver starting the trip fully rested on the given cycle.
func FreshHOSStatus(cycle domain.HOSCycle) domain.HOSStatus {
	limit := FederalHOS.Cycle70Limit
	if cycle == domain.Cycle60Hour7Day {
		limit = FederalHOS.Cycle60Limit
	} else {
		cycle = domain.Cycle70Hour8Day
	}
	return domain.HOSStatus{
		DrivingHoursRemaining: FederalHOS.MaxDriving,
		DutyWindowRemaining:   FederalHOS.DutyWindow,
		CycleHoursRemaining:   limit,
		Cycle:                 cycle,
	}
}

// EstimateDrivingHours converts route miles into driving hours.
// A non-positive speed uses the 45 mph heavy-haul average.
func EstimateDrivingHours(miles, mph float64) float64 {
	if mph <= 0 {
		mph = defaultAverageSpeedMPH
	}
	if miles <= 0 {
		return 0
	}
	return miles / mph
}

// IsQualifyingSleeperSplit reports whether a sleeper berth period paired with
// a second off-duty period satisfies the 10 hour reset (7/3 or 8/2).
func IsQualifyingSleeperSplit(berthHours, otherHours float64) bool {
	return berthHours >= FederalHOS.MinBerthPeriod &&
		otherHours >= FederalHOS.MinOtherPeriod &&
		berthHours+otherHours >= FederalHOS.OffDutyReset
}

// ValidateTripHOS walks the trip hour by hour against the driver's remaining
// hours and lists the rest stops the trip needs. A trip is feasible when it
// can be completed with 30 minute breaks alone; any daily reset or cycle
// restart makes it infeasible for the current duty period.
func ValidateTripHOS(drivingHours float64, status domain.HOSStatus, opts HOSOptions) domain.TripHOSValidation {
	rules := FederalHOS
	cycleLimit := rules.Cycle70Limit
	if status.Cycle == domain.Cycle60Hour7Day {
		cycleLimit = rules.Cycle60Limit
	}

	out := domain.TripHOSValidation{
		Feasible:          true,
		TotalDrivingHours: math.Max(drivingHours, 0),
		RequiredStops:     []domain.RestStop{},
		Warnings:          []string{},
	}
	if drivingHours <= 0 {
		return out
	}
	out.DrivingDays = 1

	drive := math.Max(status.DrivingHoursRemaining, 0)
	window := math.Max(status.DutyWindowRemaining, 0)
	cycle := math.Min(math.Max(status.CycleHoursRemaining, 0), cycleLimit)
	sinceBreak := math.Max(status.HoursSinceBreak, 0)

	remaining := drivingHours
	driven := 0.0
	restarts := 0

	for remaining > hosEpsilon {
		untilBreak := math.Max(rules.BreakAfter-sinceBreak, 0)
		chunk := min(remaining, drive, window, cycle, untilBreak)

		if chunk > hosEpsilon {
			driven += chunk
			remaining -= chunk
			drive -= chunk
			window -= chunk
			cycle -= chunk
			sinceBreak += chunk
			continue
		}

		trigger := roundHundredth(driven)

		switch {
		case cycle <= hosEpsilon:
			out.RequiredStops = append(out.RequiredStops, domain.RestStop{
				Type:        domain.RestRestart34,
				TriggerHour: trigger,
				Duration:    rules.CycleRestart,
				Reason:      fmt.Sprintf("%s hour cycle limit reached", cycleLabel(cycleLimit)),
			})
			cycle = cycleLimit
			drive, window, sinceBreak = rules.MaxDriving, rules.DutyWindow, 0
			out.Feasible = false
			out.DrivingDays++
			restarts++

		case drive <= hosEpsilon || window <= hosEpsilon:
			out.RequiredStops = append(out.RequiredStops, dailyReset(trigger, drive <= hosEpsilon, opts))
			drive, window, sinceBreak = rules.MaxDriving, rules.DutyWindow, 0
			out.Feasible = false
			out.DrivingDays++

		default:
			out.RequiredStops = append(out.RequiredStops, domain.RestStop{
				Type:        domain.RestBreak30,
				TriggerHour: trigger,
				Duration:    rules.BreakDuration,
				Reason:      "30 minute break after 8 cumulative hours of driving",
			})
			window = math.Max(window-rules.BreakDuration, 0)
			sinceBreak = 0
		}
	}

	for _, s := range out.RequiredStops {
		out.TotalRestHours += s.Duration
	}
	out.TotalTripHours = out.TotalDrivingHours + out.TotalRestHours

	if !out.Feasible {
		out.Warnings = append(out.Warnings, fmt.Sprintf(
			"Trip needs %.1f driving hours, more than the driver has available; plan %d driving day(s)",
			drivingHours, out.DrivingDays,
		))
	}
	if restarts > 0 {
		out.Warnings = append(out.Warnings, "Cycle hours exhausted en route; a 34 hour restart is required")
	}

	return out
}

func dailyReset(trigger float64, drivingLimit bool, opts HOSOptions) domain.RestStop {
	reason := "14 hour duty window exhausted"
	if drivingLimit {
		reason = "11 hour driving limit reached"
	}

	switch opts.SleeperSplit {
	case domain.Split7_3, domain.Split8_2:
		return domain.RestStop{
			Type:        domain.RestSleeperSplit,
			TriggerHour: trigger,
			Duration:    FederalHOS.OffDutyReset,
			Reason:      fmt.Sprintf("%s; %s sleeper berth split", reason, opts.SleeperSplit),
		}
	}

	return domain.RestStop{
		Type:        domain.RestOffDuty10,
		TriggerHour: trigger,
		Duration:    FederalHOS.OffDutyReset,
		Reason:      reason + "; 10 consecutive hours off duty",
	}
}

func cycleLabel(limit float64) string {
	if limit == FederalHOS.Cycle60Limit {
		return "60/7"
	}
	return "70/8"
}

func roundHundredth(v float64) float64 {
	return math.Round(v*100) / 100
}
