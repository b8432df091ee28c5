package services

import (
	"context"
	"errors"
	"fmt"
	"heavy-haul-service/internal/domain"
	"heavy-haul-service/internal/platform/obs"
	"heavy-haul-service/internal/ports"
	"strings"
	"sync"

	"github.com/google/uuid"
)

const loadQuoteWorkers = 5

// ReferenceData is the read-only catalog and permit dataset shared by every
// request for the life of the process.
type ReferenceData struct {
	Trucks  []domain.TruckType
	Permits *PermitCalculator
}

// LoadReferenceData reads the catalog and permit dataset once.
func LoadReferenceData(ctx context.Context, repo ports.ReferenceDataRepository) (ref ReferenceData, err error) {
	defer obs.Time(ctx, "load_reference_data")(&err)

	trucks, err := repo.ListTruckTypes(ctx)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("load reference data: list truck types: %w", err)
	}
	if len(trucks) == 0 {
		return ReferenceData{}, fmt.Errorf("load reference data: %w", domain.ErrEmptyCatalog)
	}

	states, err := repo.ListStatePermits(ctx)
	if err != nil {
		return ReferenceData{}, fmt.Errorf("load reference data: list state permits: %w", err)
	}

	return ReferenceData{Trucks: trucks, Permits: NewPermitCalculator(states)}, nil
}

type ShipmentRequest struct {
	Items       []domain.LoadItem
	Origin      string
	Destination string
	// Route, when non-empty, is used instead of asking the RouteProvider.
	Route              []domain.StateMileage
	FuelPricePerGallon float64
	AverageSpeedMPH    float64
	// HOSStatus defaults to a fresh 70/8 driver.
	HOSStatus  *domain.HOSStatus
	HOSOptions HOSOptions
	AxleLimits domain.AxleLimits
}

type LoadQuote struct {
	Load    domain.PlannedLoad                `json:"load"`
	Specs   domain.CargoSpecs                 `json:"specs"`
	Permits domain.DetailedRoutePermitSummary `json:"permits"`
	Weight  domain.WeightDistributionResult   `json:"weight_distribution"`
	HOS     domain.TripHOSValidation          `json:"hos"`
	Cost    domain.SmartLoadCostBreakdown     `json:"cost"`
}

type ShipmentQuote struct {
	ID          string                 `json:"id"`
	Origin      string                 `json:"origin,omitempty"`
	Destination string                 `json:"destination,omitempty"`
	Route       []domain.StateMileage  `json:"route"`
	TotalMiles  float64                `json:"total_miles"`
	Plan        domain.LoadPlan        `json:"plan"`
	Loads       []LoadQuote            `json:"loads"`
	Cost        domain.PlanCostSummary `json:"cost"`
	Warnings    []string               `json:"warnings"`
}

// PlanShipment resolves the route, plans loads, and prices every load with
// its permits, escorts, axle weights, hours of service and trip cost.
// The context only bounds the route lookup. Loads are priced concurrently.
func PlanShipment(
	ctx context.Context,
	req ShipmentRequest,
	ref ReferenceData,
	routes ports.RouteProvider,
) (quote *ShipmentQuote, err error) {
	defer obs.Time(ctx, "plan_shipment")(&err)

	if ref.Permits == nil {
		return nil, fmt.Errorf("plan shipment: permit calculator is nil: %w", domain.ErrNoReferenceData)
	}
	if len(ref.Trucks) == 0 {
		return nil, fmt.Errorf("plan shipment: %w", domain.ErrEmptyCatalog)
	}

	route := req.Route
	if len(route) == 0 {
		if routes == nil {
			return nil, errors.New("plan shipment: no route given and route provider is nil")
		}
		origin, dest := strings.TrimSpace(req.Origin), strings.TrimSpace(req.Destination)
		if origin == "" || dest == "" {
			return nil, errors.New("plan shipment: origin and destination are required without an explicit route")
		}
		route, err = routes.GetStateMileage(ctx, origin, dest)
		if err != nil {
			return nil, fmt.Errorf("plan shipment: get state mileage %q -> %q: %w", origin, dest, err)
		}
	}
	if len(route) == 0 {
		return nil, fmt.Errorf("plan shipment: %w", domain.ErrEmptyRoute)
	}

	totalMiles := 0.0
	for _, leg := range route {
		totalMiles += leg.Miles
	}

	plan := PlanLoads(req.Items, ref.Trucks)
	obs.RecordPlan(plan.TotalTrucks, len(plan.UnassignedItems))

	status := FreshHOSStatus(domain.Cycle70Hour8Day)
	if req.HOSStatus != nil {
		status = *req.HOSStatus
	}
	drivingHours := EstimateDrivingHours(totalMiles, req.AverageSpeedMPH)
	costIn := domain.CostInputs{DistanceMiles: totalMiles, FuelPricePerGallon: req.FuelPricePerGallon}

	loads := make([]LoadQuote, len(plan.Loads))

	// Loads are independent; enrich them in parallel into their own slots.
	sem := make(chan struct{}, loadQuoteWorkers)
	var wg sync.WaitGroup
	for i, load := range plan.Loads {
		wg.Add(1)
		go func(i int, load domain.PlannedLoad) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			loads[i] = quoteLoad(load, route, ref.Permits, status, req, drivingHours, costIn)
		}(i, load)
	}
	wg.Wait()

	costs := make([]domain.SmartLoadCostBreakdown, 0, len(loads))
	warnings := []string{}
	for _, lq := range loads {
		costs = append(costs, lq.Cost)
		for _, w := range lq.Permits.Warnings {
			warnings = append(warnings, lq.Load.ID+": "+w)
		}
		if !lq.Weight.WithinAxleLimits {
			warnings = append(warnings, lq.Load.ID+": axle weights exceed limits; reposition cargo or add axles")
		}
	}
	if len(loads) > 0 && !loads[0].HOS.Feasible {
		warnings = append(warnings, fmt.Sprintf(
			"Trip of %.0f miles cannot be driven within one duty period; %d driving days planned",
			totalMiles, loads[0].HOS.DrivingDays,
		))
	}

	return &ShipmentQuote{
		ID:          uuid.New().String(),
		Origin:      req.Origin,
		Destination: req.Destination,
		Route:       route,
		TotalMiles:  totalMiles,
		Plan:        plan,
		Loads:       loads,
		Cost:        CalculatePlanCost(costs, plan.TotalItems),
		Warnings:    warnings,
	}, nil
}

func quoteLoad(
	load domain.PlannedLoad,
	route []domain.StateMileage,
	permits *PermitCalculator,
	status domain.HOSStatus,
	req ShipmentRequest,
	drivingHours float64,
	costIn domain.CostInputs,
) LoadQuote {
	specs := load.OverallSpecs()
	summary := permits.CalculateDetailedRoutePermits(specs, route)

	return LoadQuote{
		Load:    load,
		Specs:   specs,
		Permits: summary,
		Weight:  AnalyzeWeightDistribution(load, load.RecommendedTruck, req.AxleLimits),
		HOS:     ValidateTripHOS(drivingHours, status, req.HOSOptions),
		Cost:    CalculateLoadCost(load, costIn, summary.TotalPermitFees, summary.TotalEscortCost),
	}
}
