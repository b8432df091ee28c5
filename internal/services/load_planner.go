package services

import (
	"cmp"
	"fmt"
	"heavy-haul-service/internal/domain"
	"math"
	"slices"
	"strings"
)

const (
	softUtilizationTarget  = 0.85
	hardUtilizationCeiling = 1.0
	escortNoteWidthFt      = 12.0
	utilizationEpsilon     = 1e-9
)

// workingLoad is the planner's private view of a load while it is being built.
// Loads live in an arena slice owned by PlanLoads and are addressed by index.
type workingLoad struct {
	items  []domain.LoadItem
	weight float64
	eval   TruckEvaluation
	layout layoutResult
}

func (w workingLoad) utilization() float64 {
	if w.eval.Truck.MaxCargoWeight <= 0 {
		return math.Inf(1)
	}
	return w.weight / w.eval.Truck.MaxCargoWeight
}

func (w workingLoad) empty() bool { return len(w.items) == 0 }

// PlanLoads groups items into truck loads.
//
// The planner is a greedy best-fit heuristic: items are taken heaviest first
// and each joins the existing load it leaves least utilized, or opens a new
// load. A rebalancing pass then drains overfull loads into underused ones.
// It does not search for a globally optimal packing. Output is a pure function
// of the item order and the catalog.
func PlanLoads(items []domain.LoadItem, catalog []domain.TruckType) domain.LoadPlan {
	plan := domain.LoadPlan{
		Loads:           []domain.PlannedLoad{},
		UnassignedItems: []domain.UnassignedItem{},
		Warnings:        []string{},
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b domain.LoadItem) int {
		return cmp.Compare(b.EffectiveWeight(), a.EffectiveWeight())
	})

	loads := make([]workingLoad, 0, len(sorted))

	for _, item := range sorted {
		if err := item.Validate(); err != nil {
			plan.UnassignedItems = append(plan.UnassignedItems, domain.UnassignedItem{Item: item, Reason: err.Error()})
			continue
		}

		eval, ok := SelectTruck(domain.DimsOf(item), catalog)
		if !ok {
			plan.UnassignedItems = append(plan.UnassignedItems, domain.UnassignedItem{
				Item:   item,
				Reason: unassignableReason(item, catalog),
			})
			continue
		}

		if idx, updated, ok := findHost(loads, item, catalog); ok {
			loads[idx] = updated
			continue
		}

		loads = append(loads, newWorkingLoad(item, eval))
	}

	loads = rebalanceLoads(loads, catalog)

	for i, wl := range loads {
		load := finalizeLoad(fmt.Sprintf("load-%d", i+1), wl, catalog)
		plan.Loads = append(plan.Loads, load)
		plan.TotalWeight += load.Weight
		plan.TotalItems += len(load.Items)
	}
	plan.TotalTrucks = len(plan.Loads)
	plan.Warnings = planWarnings(plan)

	return plan
}

// CanShareTruck reports whether two items can ride on the same deck, either
// side by side, end to end, or stacked when both are stackable.
func CanShareTruck(a, b domain.LoadItem, truck domain.TruckType) bool {
	longest := max(a.Length, b.Length)
	widest := max(a.Width, b.Width)

	if a.Width+b.Width <= truck.DeckWidth+fitToleranceFt && longest <= truck.DeckLength+fitToleranceFt {
		return true
	}
	if a.Length+b.Length <= truck.DeckLength+fitToleranceFt && widest <= truck.DeckWidth+fitToleranceFt {
		return true
	}
	if a.Stackable && b.Stackable &&
		longest <= truck.DeckLength+fitToleranceFt &&
		widest <= truck.DeckWidth+fitToleranceFt &&
		a.Height+b.Height+truck.DeckHeight <= domain.LegalHeightFt {
		return true
	}
	return false
}

func compatibleWithLoad(existing []domain.LoadItem, item domain.LoadItem, truck domain.TruckType) bool {
	for _, other := range existing {
		if !CanShareTruck(other, item, truck) {
			return false
		}
	}
	return true
}

type hostCandidate struct {
	index       int
	utilization float64
}

// hostCandidates returns the loads that may take the item under the given
// utilization limit, least resulting utilization first.
func hostCandidates(loads []workingLoad, item domain.LoadItem, limit float64, skip int) []hostCandidate {
	out := make([]hostCandidate, 0, len(loads))
	for i, l := range loads {
		if i == skip || l.empty() {
			continue
		}
		truck := l.eval.Truck
		if truck.MaxCargoWeight <= 0 || !compatibleWithLoad(l.items, item, truck) {
			continue
		}
		u := (l.weight + item.EffectiveWeight()) / truck.MaxCargoWeight
		if u > limit+utilizationEpsilon {
			continue
		}
		out = append(out, hostCandidate{index: i, utilization: u})
	}
	slices.SortStableFunc(out, func(a, b hostCandidate) int {
		return cmp.Compare(a.utilization, b.utilization)
	})
	return out
}

// findHost looks for the best existing load for the item, first under the
// soft utilization target and then under the hard ceiling.
func findHost(loads []workingLoad, item domain.LoadItem, catalog []domain.TruckType) (int, workingLoad, bool) {
	for _, limit := range []float64{softUtilizationTarget, hardUtilizationCeiling} {
		for _, c := range hostCandidates(loads, item, limit, -1) {
			merged := append(slices.Clone(loads[c.index].items), item)
			if wl, ok := evaluateLoad(merged, catalog); ok {
				return c.index, wl, true
			}
		}
	}
	return -1, workingLoad{}, false
}

func newWorkingLoad(item domain.LoadItem, eval TruckEvaluation) workingLoad {
	items := []domain.LoadItem{item}
	return workingLoad{
		items:  items,
		weight: item.EffectiveWeight(),
		eval:   eval,
		layout: LayoutItems(items, eval.Truck),
	}
}

// evaluateLoad re-scores a whole set of items against the catalog. Only trucks
// that can carry the combined weight and lay every item out without the origin
// fallback are candidates; the aggregate dimensions come from that layout.
func evaluateLoad(items []domain.LoadItem, catalog []domain.TruckType) (workingLoad, bool) {
	if len(items) == 1 {
		eval, ok := SelectTruck(domain.DimsOf(items[0]), catalog)
		if !ok {
			return workingLoad{}, false
		}
		return newWorkingLoad(items[0], eval), true
	}

	weight := 0.0
	descriptions := make([]string, 0, len(items))
	for _, it := range items {
		weight += it.EffectiveWeight()
		descriptions = append(descriptions, it.Description)
	}
	description := strings.Join(descriptions, " ")

	var best workingLoad
	found := false

	for i, truck := range catalog {
		if weight > truck.MaxCargoWeight {
			continue
		}
		layout := LayoutItems(items, truck)
		if layout.fallbacks > 0 {
			continue
		}

		dims := domain.CargoDims{
			Length:      layout.length,
			Width:       layout.width,
			Height:      layout.height,
			Weight:      weight,
			Description: description,
		}
		eval, ok := ScoreTruck(dims, truck)
		if !ok {
			continue
		}
		eval.CatalogIndex = i

		if !found || eval.Score.FinalScore > best.eval.Score.FinalScore {
			best = workingLoad{items: items, weight: weight, eval: eval, layout: layout}
			found = true
		}
	}

	return best, found
}

func finalizeLoad(id string, wl workingLoad, catalog []domain.TruckType) domain.PlannedLoad {
	load := domain.PlannedLoad{
		ID:               id,
		Items:            slices.Clone(wl.items),
		Length:           wl.layout.length,
		Width:            wl.layout.width,
		Height:           wl.layout.height,
		Weight:           wl.weight,
		RecommendedTruck: wl.eval.Truck,
		TruckScore:       wl.eval.Score.FinalScore,
		ScoreBreakdown:   wl.eval.Score,
		Placements:       slices.Clone(wl.layout.placements),
		PermitsRequired:  slices.Clone(wl.eval.PermitsRequired),
		IsLegal:          wl.eval.IsLegal,
		Utilization:      wl.utilization(),
	}
	load.Warnings = loadWarnings(load, wl.layout)

	if !load.IsLegal {
		dims := domain.CargoDims{
			Length: load.Length,
			Width:  load.Width,
			Height: load.Height,
			Weight: load.Weight,
		}
		load.FitAlternatives = FindFitAlternatives(dims, catalog, load.RecommendedTruck.ID)
	}

	return load
}

func loadWarnings(load domain.PlannedLoad, layout layoutResult) []string {
	warnings := []string{}
	truck := load.RecommendedTruck

	totalHeight := load.Height + truck.DeckHeight
	if totalHeight > domain.LegalHeightFt {
		warnings = append(warnings, fmt.Sprintf(
			"Loaded height %.1f' on %s exceeds the %.1f' legal limit; oversize permit required",
			totalHeight, truck.Name, domain.LegalHeightFt,
		))
	}
	if load.Width > domain.LegalWidthFt {
		warnings = append(warnings, fmt.Sprintf(
			"Load width %.1f' exceeds the %.1f' legal limit; oversize permit required",
			load.Width, domain.LegalWidthFt,
		))
	}
	if load.Width > escortNoteWidthFt {
		warnings = append(warnings, fmt.Sprintf("Width over %.0f' requires escort vehicles in most states", escortNoteWidthFt))
	}

	gross := load.Weight + truck.TareWeight + domain.TractorWeightLbs
	if gross > domain.LegalGrossWeight {
		warnings = append(warnings, fmt.Sprintf(
			"Gross weight %s exceeds %s; overweight permit required",
			domain.FormatPounds(gross), domain.FormatPounds(domain.LegalGrossWeight),
		))
	}

	if load.ScoreBreakdown.EscortProximityWarning {
		warnings = append(warnings, "Dimensions are within 0.5' of an escort threshold; confirm measurements before permitting")
	}

	for _, it := range load.Items {
		if it.Hazmat {
			warnings = append(warnings, fmt.Sprintf("Item %s is hazmat; placards and a hazmat-endorsed driver are required", it.ID))
		}
	}

	if layout.fallbacks > 0 {
		warnings = append(warnings, fmt.Sprintf("%d item(s) could not be laid out and were placed at the deck origin", layout.fallbacks))
	}

	return warnings
}

func unassignableReason(item domain.LoadItem, catalog []domain.TruckType) string {
	if len(catalog) == 0 {
		return domain.ErrEmptyCatalog.Error()
	}
	return fmt.Sprintf(
		"item %s (%.1f' x %.1f' x %.1f', %s) does not fit any truck in the catalog",
		item.ID, item.Length, item.Width, item.Height, domain.FormatPounds(item.EffectiveWeight()),
	)
}

func planWarnings(plan domain.LoadPlan) []string {
	warnings := []string{}

	if plan.TotalTrucks > 1 {
		warnings = append(warnings, fmt.Sprintf("Cargo requires %d trucks", plan.TotalTrucks))
	}

	if n := len(plan.UnassignedItems); n > 0 {
		warnings = append(warnings, fmt.Sprintf("%d item(s) could not be assigned to any truck", n))
	}

	for _, l := range plan.Loads {
		if l.Utilization > hardUtilizationCeiling+utilizationEpsilon {
			warnings = append(warnings, fmt.Sprintf("%s is over capacity at %.0f%% utilization", l.ID, l.Utilization*100))
		}
	}

	return warnings
}
