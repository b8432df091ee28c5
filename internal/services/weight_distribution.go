package services

import (
	"fmt"
	"heavy-haul-service/internal/domain"
	"math"
)

var FederalAxleLimits = domain.AxleLimits{
	SteerAxle:   12000,
	DriveAxles:  34000,
	TrailerAxle: 34000,
	Gross:       80000,
}

const (
	tractorSteerTare          = 10000.0
	tractorDriveTare          = 10000.0
	balanceLongitudinalPoints = 60.0
	balanceLateralPoints      = 40.0
	axleViolationPenalty      = 10.0
	lateralOffsetWarnRatio    = 0.10
)

// AnalyzeWeightDistribution spreads the load over the tractor and trailer
// axle groups with a simple lever model. The trailer is a beam resting on the
// kingpin at the deck front and on the trailer axle group; the kingpin share
// is split between steer and drive axles by the tractor wheelbase.
//
// Zero fields in limits fall back to federal limits. Axle violations are
// reported separately from the gross weight check.
func AnalyzeWeightDistribution(load domain.PlannedLoad, truck domain.TruckType, limits domain.AxleLimits) domain.WeightDistributionResult {
	limits = withFederalDefaults(limits)
	axles := truck.EffectiveAxles()

	byID := make(map[string]domain.LoadItem, len(load.Items))
	for _, it := range load.Items {
		byID[it.ID] = it
	}

	var cargoWeight, momentX, momentZ, momentY float64
	for _, p := range load.Placements {
		it, ok := byID[p.ItemID]
		if !ok {
			continue
		}
		w := it.EffectiveWeight()
		cargoWeight += w
		momentX += w * (p.X + p.Length/2)
		momentZ += w * (p.Z + p.Width/2)
		momentY += w * (truck.DeckHeight + p.Elevation + it.Height/2)
	}

	res := domain.WeightDistributionResult{
		CenterOfGravityX: truck.DeckLength / 2,
		CenterOfGravityZ: truck.DeckWidth / 2,
		CenterOfGravityY: truck.DeckHeight,
		AxleViolations:   []string{},
		Warnings:         []string{},
	}
	if cargoWeight > 0 {
		res.CenterOfGravityX = momentX / cargoWeight
		res.CenterOfGravityZ = momentZ / cargoWeight
		res.CenterOfGravityY = momentY / cargoWeight
	}

	// Trailer beam: cargo at its CG plus tare at mid deck.
	trailerLoad := cargoWeight + truck.TareWeight
	trailerMoment := cargoWeight*res.CenterOfGravityX + truck.TareWeight*truck.DeckLength/2
	span := axles.TrailerAxlePosition

	trailerAxle := 0.0
	if span > 0 {
		trailerAxle = trailerMoment / span
	}
	kingpin := trailerLoad - trailerAxle

	steerShare := 0.0
	if axles.TractorWheelbase > 0 {
		steerShare = axles.KingpinOffset / axles.TractorWheelbase
	}

	res.AxleWeights = domain.AxleWeights{
		Steer:   roundPound(tractorSteerTare + kingpin*steerShare),
		Drive:   roundPound(tractorDriveTare + kingpin*(1-steerShare)),
		Trailer: roundPound(trailerAxle),
		Kingpin: roundPound(kingpin),
		Total:   roundPound(tractorSteerTare + tractorDriveTare + trailerLoad),
	}

	aw := res.AxleWeights
	checkAxle(&res, "Steer axle", aw.Steer, limits.SteerAxle)
	checkAxle(&res, "Drive axles", aw.Drive, limits.DriveAxles)
	checkAxle(&res, "Trailer axles", aw.Trailer, limits.TrailerAxle)
	res.WithinAxleLimits = len(res.AxleViolations) == 0

	if aw.Total > limits.Gross {
		res.GrossViolation = true
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"Gross weight %s exceeds %s", domain.FormatPounds(aw.Total), domain.FormatPounds(limits.Gross)))
	}

	if kingpin < 0 || (cargoWeight > 0 && res.CenterOfGravityX > span) {
		res.Warnings = append(res.Warnings, "Cargo center of gravity is behind the trailer axles; load is rear heavy")
	}

	if truck.DeckWidth > 0 {
		offset := math.Abs(res.CenterOfGravityZ - truck.DeckWidth/2)
		if offset > truck.DeckWidth*lateralOffsetWarnRatio {
			res.Warnings = append(res.Warnings, fmt.Sprintf("Load is %.1f' off the trailer centerline", offset))
		}
	}

	res.BalanceScore = balanceScore(res, truck)
	res.CenterOfGravityX = roundTenth(res.CenterOfGravityX)
	res.CenterOfGravityZ = roundTenth(res.CenterOfGravityZ)
	res.CenterOfGravityY = roundTenth(res.CenterOfGravityY)

	return res
}

func withFederalDefaults(l domain.AxleLimits) domain.AxleLimits {
	if l.SteerAxle <= 0 {
		l.SteerAxle = FederalAxleLimits.SteerAxle
	}
	if l.DriveAxles <= 0 {
		l.DriveAxles = FederalAxleLimits.DriveAxles
	}
	if l.TrailerAxle <= 0 {
		l.TrailerAxle = FederalAxleLimits.TrailerAxle
	}
	if l.Gross <= 0 {
		l.Gross = FederalAxleLimits.Gross
	}
	return l
}

func checkAxle(res *domain.WeightDistributionResult, name string, weight, limit float64) {
	if weight > limit {
		res.AxleViolations = append(res.AxleViolations, fmt.Sprintf(
			"%s %s exceeds %s limit", name, domain.FormatPounds(weight), domain.FormatPounds(limit)))
	}
}

// balanceScore is 100 for cargo centered on the deck, losing up to 60 points
// for fore/aft offset, 40 for lateral offset and 10 per axle violation.
func balanceScore(res domain.WeightDistributionResult, truck domain.TruckType) float64 {
	long, lat := 0.0, 0.0
	if truck.DeckLength > 0 {
		long = math.Min(math.Abs(res.CenterOfGravityX-truck.DeckLength/2)/(truck.DeckLength/2), 1)
	}
	if truck.DeckWidth > 0 {
		lat = math.Min(math.Abs(res.CenterOfGravityZ-truck.DeckWidth/2)/(truck.DeckWidth/2), 1)
	}
	score := 100 - balanceLongitudinalPoints*long - balanceLateralPoints*lat - axleViolationPenalty*float64(len(res.AxleViolations))
	return roundTenth(clampScore(score))
}

func roundPound(v float64) float64 {
	return math.Round(v)
}
