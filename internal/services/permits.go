package services

import (
	"fmt"
	"heavy-haul-service/internal/domain"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// PermitCalculator evaluates state permit requirements against a read-only
// permit dataset. It is safe for concurrent use.
type PermitCalculator struct {
	states map[string]domain.StatePermitData
	codes  []string
}

func NewPermitCalculator(states []domain.StatePermitData) *PermitCalculator {
	pc := &PermitCalculator{
		states: make(map[string]domain.StatePermitData, len(states)),
		codes:  make([]string, 0, len(states)),
	}
	for _, s := range states {
		code := normalizeStateCode(s.StateCode)
		if _, dup := pc.states[code]; !dup {
			pc.codes = append(pc.codes, code)
		}
		s.StateCode = code
		pc.states[code] = s
	}
	slices.Sort(pc.codes)
	return pc
}

// State returns the permit record for a two-letter state code.
func (pc *PermitCalculator) State(code string) (domain.StatePermitData, bool) {
	s, ok := pc.states[normalizeStateCode(code)]
	return s, ok
}

// StateCodes lists the covered states in sorted order.
func (pc *PermitCalculator) StateCodes() []string {
	return slices.Clone(pc.codes)
}

func normalizeStateCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CalculateStatePermit returns the permit requirement for travelling
// distanceMiles through one state, or nil when the state is not covered.
func (pc *PermitCalculator) CalculateStatePermit(stateCode string, specs domain.CargoSpecs, distanceMiles float64) *domain.PermitRequirement {
	d := pc.CalculateDetailedStatePermit(stateCode, specs, distanceMiles)
	if d == nil {
		return nil
	}
	req := d.PermitRequirement
	return &req
}

// CalculateDetailedStatePermit is CalculateStatePermit with a fee breakdown
// and a human readable trace of every fee that contributed.
func (pc *PermitCalculator) CalculateDetailedStatePermit(stateCode string, specs domain.CargoSpecs, distanceMiles float64) *domain.DetailedPermitRequirement {
	state, ok := pc.State(stateCode)
	if !ok {
		return nil
	}
	return calculateDetailedPermit(state, specs, distanceMiles)
}

// feeLedger accumulates fees in exact dollars; amounts become Cents only
// when the result is built.
type feeLedger struct {
	baseOversize   decimal.Decimal
	width          decimal.Decimal
	height         decimal.Decimal
	length         decimal.Decimal
	baseOverweight decimal.Decimal
	perMile        decimal.Decimal
	tonMile        decimal.Decimal
	bracket        decimal.Decimal
	extraLegal     decimal.Decimal
	trace          []string
}

func (f *feeLedger) add(dst *decimal.Decimal, amount decimal.Decimal, format string, args ...any) {
	*dst = dst.Add(amount)
	f.trace = append(f.trace, fmt.Sprintf(format, args...)+": "+domain.FormatDecimal(amount))
}

func (f *feeLedger) total() decimal.Decimal {
	return decimal.Sum(f.baseOversize, f.width, f.height, f.length,
		f.baseOverweight, f.perMile, f.tonMile, f.bracket, f.extraLegal)
}

func dollars(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func calculateDetailedPermit(state domain.StatePermitData, specs domain.CargoSpecs, miles float64) *domain.DetailedPermitRequirement {
	limits := state.LegalLimits
	req := domain.PermitRequirement{
		State:              state.StateCode,
		StateName:          state.StateName,
		DistanceMiles:      miles,
		Reasons:            []string{},
		TravelRestrictions: travelRestrictionList(state.TravelRestrictions),
	}

	if exceeds(specs.Width, limits.MaxWidth) {
		req.OversizeRequired = true
		req.Reasons = append(req.Reasons, fmt.Sprintf("Width %.1f' exceeds %.1f' legal limit", specs.Width, limits.MaxWidth))
	}
	if exceeds(specs.Height, limits.MaxHeight) {
		req.OversizeRequired = true
		req.Reasons = append(req.Reasons, fmt.Sprintf("Height %.1f' exceeds %.1f' legal limit", specs.Height, limits.MaxHeight))
	}
	if exceeds(specs.Length, limits.MaxLength) {
		req.OversizeRequired = true
		req.Reasons = append(req.Reasons, fmt.Sprintf("Length %.1f' exceeds %.1f' legal limit", specs.Length, limits.MaxLength))
	}
	if exceeds(specs.GrossWeight, limits.MaxWeight) {
		req.OverweightRequired = true
		req.Reasons = append(req.Reasons, fmt.Sprintf(
			"Gross weight %s exceeds %s legal limit",
			domain.FormatPounds(specs.GrossWeight), domain.FormatPounds(limits.MaxWeight),
		))
	}

	if sl := state.Superload; sl != nil {
		if triggers := superloadTriggers(*sl, specs); len(triggers) > 0 {
			req.IsSuperload = true
			req.Reasons = append(req.Reasons, "Superload: "+strings.Join(triggers, ", "))
		}
	}

	ledger := feeLedger{trace: []string{}}

	if req.OversizeRequired {
		fees := state.OversizePermits
		ledger.add(&ledger.baseOversize, dollars(fees.BaseFee), "Base oversize permit fee")
		addTiers(&ledger, &ledger.width, "Width", specs.Width, fees.WidthSurcharges)
		addTiers(&ledger, &ledger.height, "Height", specs.Height, fees.HeightSurcharges)
		addTiers(&ledger, &ledger.length, "Length", specs.CombinationLength(), fees.LengthSurcharges)
	}

	if req.OverweightRequired {
		ow := state.OverweightPermits
		ledger.add(&ledger.baseOverweight, dollars(ow.BaseFee), "Base overweight permit fee")
		if ow.PerMileFee > 0 {
			ledger.add(&ledger.perMile, dollars(ow.PerMileFee).Mul(dollars(miles)),
				"Per-mile fee (%s x %.1f mi)", domain.FormatDollars(ow.PerMileFee), miles)
		}
		if ow.TonMileFee > 0 {
			tons := specs.GrossWeight / domain.PoundsPerTon
			exactTons := decimal.NewFromFloat(specs.GrossWeight).Div(decimal.NewFromFloat(domain.PoundsPerTon))
			ledger.add(&ledger.tonMile, dollars(ow.TonMileFee).Mul(exactTons).Mul(dollars(miles)),
				"Ton-mile fee (%s x %.1f tons x %.1f mi)", domain.FormatDollars(ow.TonMileFee), tons, miles)
		}
		if b, ok := highestBracket(ow.WeightBrackets, specs.GrossWeight); ok {
			computed := decimal.Sum(ledger.baseOverweight, ledger.perMile, ledger.tonMile)
			floor := dollars(ow.BaseFee).Add(dollars(b.Fee))
			if floor.GreaterThan(computed) {
				ledger.add(&ledger.bracket, floor.Sub(computed),
					"Weight bracket minimum (%s-%s) adjustment", domain.FormatPounds(b.MinWeight), bracketUpper(b))
			} else {
				ledger.trace = append(ledger.trace, fmt.Sprintf(
					"Weight bracket minimum %s already met", domain.FormatDecimal(floor)))
			}
		}
		if ow.ExtraLegalFee > 0 {
			ledger.add(&ledger.extraLegal, dollars(ow.ExtraLegalFee), "Extra legal trip fee")
		}
	}

	needs := DetermineEscorts(state.EscortRules, specs)
	req.EscortsRequired = needs.Escorts
	req.PoleCarRequired = needs.PoleCar
	req.PoliceEscortRequired = needs.Police
	if needs.Escorts > 0 {
		req.Reasons = append(req.Reasons, fmt.Sprintf("%d escort vehicle(s) required", needs.Escorts))
	}
	if needs.PoleCar {
		req.Reasons = append(req.Reasons, "Height pole car required")
	}
	if needs.Police {
		req.Reasons = append(req.Reasons, "Police escort required")
	}

	req.EstimatedFee = domain.DecimalToCents(ledger.total())
	if req.OversizeRequired || req.OverweightRequired {
		ledger.trace = append(ledger.trace, "Total permit fees: "+req.EstimatedFee.String())
	}

	return &domain.DetailedPermitRequirement{
		PermitRequirement: req,
		CostBreakdown: domain.PermitCostBreakdown{
			BaseOversizeFee:   domain.DecimalToCents(ledger.baseOversize),
			WidthSurcharge:    domain.DecimalToCents(ledger.width),
			HeightSurcharge:   domain.DecimalToCents(ledger.height),
			LengthSurcharge:   domain.DecimalToCents(ledger.length),
			BaseOverweightFee: domain.DecimalToCents(ledger.baseOverweight),
			PerMileFee:        domain.DecimalToCents(ledger.perMile),
			TonMileFee:        domain.DecimalToCents(ledger.tonMile),
			BracketAdjustment: domain.DecimalToCents(ledger.bracket),
			ExtraLegalFees:    domain.DecimalToCents(ledger.extraLegal),
			Total:             req.EstimatedFee,
		},
		CalculationDetails: ledger.trace,
		ProcessingTime:     state.OversizePermits.ProcessingTime,
		Contact:            state.Contact,
	}
}

// exceeds treats an unset (zero) limit as no limit.
func exceeds(v, limit float64) bool {
	return limit > 0 && v > limit
}

func addTiers(ledger *feeLedger, dst *decimal.Decimal, label string, v float64, tiers []domain.SurchargeTier) {
	for _, t := range tiers {
		if v >= t.Threshold {
			ledger.add(dst, dollars(t.Fee), "%s surcharge (>= %.1f')", label, t.Threshold)
		}
	}
}

// highestBracket returns the applicable bracket with the greatest lower bound.
func highestBracket(brackets []domain.WeightBracket, gross float64) (domain.WeightBracket, bool) {
	var best domain.WeightBracket
	found := false
	for _, b := range brackets {
		if gross < b.MinWeight || (b.MaxWeight > 0 && gross > b.MaxWeight) {
			continue
		}
		if !found || b.MinWeight > best.MinWeight {
			best = b
			found = true
		}
	}
	return best, found
}

func bracketUpper(b domain.WeightBracket) string {
	if b.MaxWeight <= 0 {
		return "up"
	}
	return domain.FormatPounds(b.MaxWeight)
}

func superloadTriggers(sl domain.SuperloadThreshold, specs domain.CargoSpecs) []string {
	var out []string
	if sl.Width > 0 && specs.Width >= sl.Width {
		out = append(out, fmt.Sprintf("width %.1f' >= %.1f'", specs.Width, sl.Width))
	}
	if sl.Height > 0 && specs.Height >= sl.Height {
		out = append(out, fmt.Sprintf("height %.1f' >= %.1f'", specs.Height, sl.Height))
	}
	if length := specs.CombinationLength(); sl.Length > 0 && length >= sl.Length {
		out = append(out, fmt.Sprintf("length %.1f' >= %.1f'", length, sl.Length))
	}
	if sl.Weight > 0 && specs.GrossWeight >= sl.Weight {
		out = append(out, fmt.Sprintf("weight %s >= %s", domain.FormatPounds(specs.GrossWeight), domain.FormatPounds(sl.Weight)))
	}
	return out
}

func travelRestrictionList(tr domain.TravelRestrictions) []string {
	out := []string{}
	if tr.NoNightTravel {
		out = append(out, withDefinition("No night travel", tr.NightDefinition))
	}
	if tr.NoWeekendTravel {
		out = append(out, withDefinition("No weekend travel", tr.WeekendDefinition))
	}
	if tr.NoHolidayTravel {
		out = append(out, "No holiday travel")
	}
	if tr.PeakHourRestrictions != "" {
		out = append(out, "Peak hours: "+tr.PeakHourRestrictions)
	}
	if tr.WeatherRestrictions != "" {
		out = append(out, "Weather: "+tr.WeatherRestrictions)
	}
	return out
}

func withDefinition(rule, definition string) string {
	if definition == "" {
		return rule
	}
	return rule + " (" + definition + ")"
}
