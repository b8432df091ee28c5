package services

import (
	"cmp"
	"fmt"
	"heavy-haul-service/internal/domain"
	"slices"
	"strings"
)

const (
	permitPenaltyPoints   = 15.0
	overkillPenaltyPoints = 10.0
	overkillClearanceFt   = 4.0
	idealFitBonusPoints   = 10.0
	idealClearanceMaxFt   = 2.0
	equipmentMatchPoints  = 15.0
	legalBonusPoints      = 20.0
	escortProximityFt     = 0.5
	poleCarProximityFt    = 14.0
	fitToleranceFt        = 1e-9
	maxFitAlternatives    = 3
)

// Widths at which escort requirements commonly change.
var escortWidthTriggers = []float64{12, 14, 16}

var driveOnKeywords = []string{"excavator", "dozer", "loader", "tractor", "tracked"}

// TruckEvaluation is the outcome of scoring one truck for one cargo.
type TruckEvaluation struct {
	Truck           domain.TruckType
	CatalogIndex    int
	Score           domain.ScoreBreakdown
	PermitsRequired []string
	IsLegal         bool
}

// FitsTruck reports whether the cargo physically fits the deck without rotation
// and within the truck's cargo capacity.
func FitsTruck(cargo domain.CargoDims, truck domain.TruckType) bool {
	return cargo.Length <= truck.DeckLength+fitToleranceFt &&
		cargo.Width <= truck.DeckWidth+fitToleranceFt &&
		cargo.Weight <= truck.MaxCargoWeight
}

// RequiredPermits lists a permit reason for every federal limit the loaded
// truck would exceed.
func RequiredPermits(cargo domain.CargoDims, truck domain.TruckType) []string {
	permits := []string{}

	totalHeight := cargo.Height + truck.DeckHeight
	if totalHeight > domain.LegalHeightFt {
		permits = append(permits, fmt.Sprintf("Oversize Height (%.1f' > %.1f')", totalHeight, domain.LegalHeightFt))
	}

	if cargo.Width > domain.LegalWidthFt {
		permits = append(permits, fmt.Sprintf("Oversize Width (%.1f' > %.1f')", cargo.Width, domain.LegalWidthFt))
	}

	gross := cargo.Weight + truck.TareWeight + domain.TractorWeightLbs
	if gross > domain.LegalGrossWeight {
		permits = append(permits, fmt.Sprintf(
			"Overweight (%s > %s)",
			domain.FormatPounds(gross), domain.FormatPounds(domain.LegalGrossWeight),
		))
	}

	return permits
}

// ScoreTruck scores a truck for the given cargo. The second result is false
// when the cargo does not physically fit, in which case the truck must not be
// considered at all.
func ScoreTruck(cargo domain.CargoDims, truck domain.TruckType) (TruckEvaluation, bool) {
	if !FitsTruck(cargo, truck) {
		return TruckEvaluation{}, false
	}

	b := domain.ScoreBreakdown{Base: 100}

	totalHeight := cargo.Height + truck.DeckHeight
	gross := cargo.Weight + truck.TareWeight + domain.TractorWeightLbs
	permits := RequiredPermits(cargo, truck)

	if totalHeight > domain.LegalHeightFt {
		b.HeightPenalty = permitPenaltyPoints
	}
	if cargo.Width > domain.LegalWidthFt {
		b.WidthPenalty = permitPenaltyPoints
	}
	if gross > domain.LegalGrossWeight {
		b.WeightPenalty = permitPenaltyPoints
	}
	b.PermitPenalty = permitPenaltyPoints * float64(len(permits))

	clearance := domain.LegalHeightFt - totalHeight
	if clearance > overkillClearanceFt {
		b.OverkillPenalty = overkillPenaltyPoints
	}
	if clearance >= 0 && clearance <= idealClearanceMaxFt {
		b.IdealFitBonus = idealFitBonusPoints
	}

	if truck.LoadingMethod == domain.LoadingDriveOn && matchesDriveOnEquipment(cargo.Description) {
		b.EquipmentMatchBonus = equipmentMatchPoints
	}

	legal := len(permits) == 0
	if legal {
		b.LegalBonus = legalBonusPoints
	}

	b.EscortProximityWarning = nearEscortTrigger(cargo.Width, totalHeight)

	score := b.Base - b.PermitPenalty - b.OverkillPenalty - b.FitPenalty +
		b.IdealFitBonus + b.EquipmentMatchBonus + b.LegalBonus
	b.FinalScore = clampScore(score)

	return TruckEvaluation{
		Truck:           truck,
		Score:           b,
		PermitsRequired: permits,
		IsLegal:         legal,
	}, true
}

// SelectTruck returns the highest scoring truck that fits the cargo.
// Ties keep the earliest truck in catalog order.
func SelectTruck(cargo domain.CargoDims, catalog []domain.TruckType) (TruckEvaluation, bool) {
	var best TruckEvaluation
	found := false

	for i, truck := range catalog {
		eval, ok := ScoreTruck(cargo, truck)
		if !ok {
			continue
		}
		eval.CatalogIndex = i
		if !found || eval.Score.FinalScore > best.Score.FinalScore {
			best = eval
			found = true
		}
	}

	return best, found
}

// FindFitAlternatives lists other fitting trucks with the permits they would
// need and how much height or width would have to come off to run legal.
// Results are ordered by permit count, then catalog order.
func FindFitAlternatives(cargo domain.CargoDims, catalog []domain.TruckType, excludeID string) []domain.FitAlternative {
	type ranked struct {
		alt   domain.FitAlternative
		index int
	}

	candidates := make([]ranked, 0, len(catalog))
	for i, truck := range catalog {
		if truck.ID == excludeID || !FitsTruck(cargo, truck) {
			continue
		}

		permits := RequiredPermits(cargo, truck)
		alt := domain.FitAlternative{
			TruckID:         truck.ID,
			TruckName:       truck.Name,
			PermitsRequired: permits,
			HeightReduction: roundTenth(max(0, cargo.Height+truck.DeckHeight-domain.LegalHeightFt)),
			WidthReduction:  roundTenth(max(0, cargo.Width-domain.LegalWidthFt)),
		}
		alt.Note = fitAlternativeNote(alt)
		candidates = append(candidates, ranked{alt: alt, index: i})
	}

	slices.SortStableFunc(candidates, func(a, b ranked) int {
		if c := cmp.Compare(len(a.alt.PermitsRequired), len(b.alt.PermitsRequired)); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})

	out := make([]domain.FitAlternative, 0, maxFitAlternatives)
	for _, c := range candidates {
		if len(out) == maxFitAlternatives {
			break
		}
		out = append(out, c.alt)
	}
	return out
}

func fitAlternativeNote(alt domain.FitAlternative) string {
	if len(alt.PermitsRequired) == 0 {
		return fmt.Sprintf("Runs legal on %s", alt.TruckName)
	}

	parts := make([]string, 0, 2)
	if alt.HeightReduction > 0 {
		parts = append(parts, fmt.Sprintf("height by %.1f'", alt.HeightReduction))
	}
	if alt.WidthReduction > 0 {
		parts = append(parts, fmt.Sprintf("width by %.1f'", alt.WidthReduction))
	}
	if len(parts) == 0 {
		return fmt.Sprintf("%d permit(s) on %s; weight cannot be reduced by disassembly alone", len(alt.PermitsRequired), alt.TruckName)
	}
	return fmt.Sprintf("%d permit(s) on %s; reduce %s to avoid dimensional permits",
		len(alt.PermitsRequired), alt.TruckName, strings.Join(parts, " and "))
}

func matchesDriveOnEquipment(description string) bool {
	d := strings.ToLower(description)
	for _, kw := range driveOnKeywords {
		if strings.Contains(d, kw) {
			return true
		}
	}
	return false
}

func nearEscortTrigger(width, totalHeight float64) bool {
	for _, trigger := range escortWidthTriggers {
		if width < trigger && trigger-width <= escortProximityFt {
			return true
		}
	}
	return totalHeight < poleCarProximityFt && poleCarProximityFt-totalHeight <= escortProximityFt
}

func clampScore(s float64) float64 {
	return min(100, max(0, s))
}
