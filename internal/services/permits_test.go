package services

import (
	"heavy-haul-service/internal/domain"
	"strings"
	"testing"
)

func federalLimits() domain.LegalLimits {
	return domain.LegalLimits{MaxWidth: 8.5, MaxHeight: 13.5, MaxLength: 75, MaxWeight: 80000}
}

func testStates() []domain.StatePermitData {
	return []domain.StatePermitData{
		{
			StateCode:   "TX",
			StateName:   "Texas",
			LegalLimits: federalLimits(),
			OversizePermits: domain.OversizeFees{
				BaseFee:          150,
				WidthSurcharges:  []domain.SurchargeTier{{Threshold: 12, Fee: 50}},
				HeightSurcharges: []domain.SurchargeTier{{Threshold: 15, Fee: 25}, {Threshold: 16, Fee: 75}},
				ProcessingTime:   "same day",
			},
			OverweightPermits: domain.OverweightFees{
				BaseFee:    100,
				PerMileFee: 0.1,
				WeightBrackets: []domain.WeightBracket{
					{MinWeight: 80001, MaxWeight: 100000, Fee: 300},
					{MinWeight: 100001, Fee: 500},
				},
				ExtraLegalFee: 25,
			},
			EscortRules: domain.EscortRules{
				Width1Escort:       12,
				Width2Escorts:      14,
				PoleCarHeight:      16,
				PoliceEscortWidth:  18,
				PoliceEscortHeight: 18,
			},
			Superload: &domain.SuperloadThreshold{Width: 20, Height: 18, Weight: 254300},
			TravelRestrictions: domain.TravelRestrictions{
				NoNightTravel:   true,
				NightDefinition: "30 min after sunset to 30 min before sunrise",
				NoHolidayTravel: true,
			},
			Contact: domain.AgencyContact{Agency: "TxDMV", Phone: "800-299-1700"},
		},
		{
			StateCode:   "OK",
			StateName:   "Oklahoma",
			LegalLimits: federalLimits(),
			OversizePermits: domain.OversizeFees{
				BaseFee: 40,
			},
			OverweightPermits: domain.OverweightFees{
				BaseFee:    40,
				TonMileFee: 0.05,
			},
			EscortRules: domain.EscortRules{
				Width1Escort:   12,
				Width2Escorts:  16,
				Length1Escort:  80,
				Length2Escorts: 100,
			},
			TravelRestrictions: domain.TravelRestrictions{
				NoNightTravel:   true,
				NoWeekendTravel: true,
			},
		},
	}
}

func TestCalculateStatePermitWidthSurcharge(t *testing.T) {
	pc := NewPermitCalculator(testStates())
	specs := domain.CargoSpecs{Width: 13, Height: 12, Length: 50, GrossWeight: 70000}

	req := pc.CalculateStatePermit("TX", specs, 100)
	if req == nil {
		t.Fatalf("expected a permit requirement for TX")
	}
	if !req.OversizeRequired {
		t.Fatalf("expected oversize permit")
	}
	if req.OverweightRequired {
		t.Fatalf("did not expect overweight permit")
	}
	if req.EstimatedFee != 20000 {
		t.Fatalf("fee = %d, want 20000", req.EstimatedFee)
	}
	if req.EscortsRequired != 1 {
		t.Fatalf("escorts = %d, want 1", req.EscortsRequired)
	}
	if len(req.TravelRestrictions) != 2 {
		t.Fatalf("restrictions = %v, want night and holiday", req.TravelRestrictions)
	}
}

func TestCalculateStatePermitUnknownState(t *testing.T) {
	pc := NewPermitCalculator(testStates())

	if req := pc.CalculateStatePermit("ZZ", domain.CargoSpecs{Width: 13}, 10); req != nil {
		t.Fatalf("expected nil for unknown state, got %+v", req)
	}
	if req := pc.CalculateStatePermit(" tx ", domain.CargoSpecs{Width: 13}, 10); req == nil {
		t.Fatalf("expected state codes to be normalized")
	}
}

func TestCalculateDetailedStatePermitOverweight(t *testing.T) {
	pc := NewPermitCalculator(testStates())
	specs := domain.CargoSpecs{Width: 8, Height: 13, Length: 60, GrossWeight: 100000}

	d := pc.CalculateDetailedStatePermit("TX", specs, 100)
	if d == nil {
		t.Fatalf("expected a detailed requirement")
	}
	if d.OversizeRequired || !d.OverweightRequired {
		t.Fatalf("oversize=%v overweight=%v, want overweight only", d.OversizeRequired, d.OverweightRequired)
	}

	// 100 base + 10 per-mile = 110, raised to the 100 + 300 bracket floor, plus 25 extra legal.
	cb := d.CostBreakdown
	if cb.BaseOverweightFee != 10000 || cb.PerMileFee != 1000 || cb.BracketAdjustment != 29000 || cb.ExtraLegalFees != 2500 {
		t.Fatalf("breakdown = %+v", cb)
	}
	if d.EstimatedFee != 42500 || cb.Total != 42500 {
		t.Fatalf("fee = %d total = %d, want 42500", d.EstimatedFee, cb.Total)
	}
	if len(d.CalculationDetails) != 5 {
		t.Fatalf("trace = %v, want 5 lines", d.CalculationDetails)
	}
	trace := d.CalculationDetails
	if trace[0] != "Base overweight permit fee: $100.00" {
		t.Fatalf("trace[0] = %q", trace[0])
	}
	if trace[1] != "Per-mile fee ($0.10 x 100.0 mi): $10.00" {
		t.Fatalf("trace[1] = %q", trace[1])
	}
	if trace[4] != "Total permit fees: $425.00" {
		t.Fatalf("trace[4] = %q", trace[4])
	}
	if d.ProcessingTime != "same day" || d.Contact.Agency != "TxDMV" {
		t.Fatalf("processing/contact = %q / %+v", d.ProcessingTime, d.Contact)
	}
}

func TestBracketFloorNeverLowersComputedFee(t *testing.T) {
	states := testStates()
	states[0].OverweightPermits.PerMileFee = 5
	pc := NewPermitCalculator(states)

	d := pc.CalculateDetailedStatePermit("TX", domain.CargoSpecs{GrossWeight: 90000}, 100)
	// 100 base + 500 per-mile already exceeds the 400 floor.
	if d.CostBreakdown.BracketAdjustment != 0 {
		t.Fatalf("bracket adjustment = %d, want 0", d.CostBreakdown.BracketAdjustment)
	}
	if d.EstimatedFee != 62500 {
		t.Fatalf("fee = %d, want 62500", d.EstimatedFee)
	}
}

func TestCalculateStatePermitTonMile(t *testing.T) {
	pc := NewPermitCalculator(testStates())

	req := pc.CalculateStatePermit("OK", domain.CargoSpecs{GrossWeight: 100000}, 100)
	// 40 base + 0.05 x 50 tons x 100 mi.
	if req.EstimatedFee != 29000 {
		t.Fatalf("fee = %d, want 29000", req.EstimatedFee)
	}
}

func TestOversizeFeeIsMonotonic(t *testing.T) {
	pc := NewPermitCalculator(testStates())
	base := domain.CargoSpecs{Width: 9, Height: 14, Length: 80, GrossWeight: 70000}

	dims := []struct {
		name string
		set  func(*domain.CargoSpecs, float64)
	}{
		{"width", func(s *domain.CargoSpecs, v float64) { s.Width = v }},
		{"height", func(s *domain.CargoSpecs, v float64) { s.Height = v }},
		{"length", func(s *domain.CargoSpecs, v float64) { s.Length = v + 70 }},
	}

	for _, d := range dims {
		t.Run(d.name, func(t *testing.T) {
			prev := domain.Cents(-1)
			for v := 8.0; v <= 22; v += 0.25 {
				specs := base
				d.set(&specs, v)
				fee := pc.CalculateStatePermit("TX", specs, 100).EstimatedFee
				if fee < prev {
					t.Fatalf("%s %.2f: fee %d dropped below %d", d.name, v, fee, prev)
				}
				prev = fee
			}
		})
	}
}

func TestEscortCountIsMonotonic(t *testing.T) {
	pc := NewPermitCalculator(testStates())

	cases := []struct {
		width float64
		want  int
	}{
		{11.9, 0},
		{12, 1},
		{13.9, 1},
		{14, 2},
		{19, 2},
	}

	prev := 0
	for _, tc := range cases {
		req := pc.CalculateStatePermit("TX", domain.CargoSpecs{Width: tc.width, Height: 12}, 50)
		if req.EscortsRequired != tc.want {
			t.Fatalf("width %.1f: escorts = %d, want %d", tc.width, req.EscortsRequired, tc.want)
		}
		if req.EscortsRequired < prev {
			t.Fatalf("width %.1f: escorts decreased from %d to %d", tc.width, prev, req.EscortsRequired)
		}
		prev = req.EscortsRequired
	}
}

func TestSuperloadAndPoliceEscort(t *testing.T) {
	pc := NewPermitCalculator(testStates())

	req := pc.CalculateStatePermit("TX", domain.CargoSpecs{Width: 20, Height: 18.5, GrossWeight: 70000}, 50)
	if !req.IsSuperload {
		t.Fatalf("expected superload")
	}
	if !req.PoleCarRequired || !req.PoliceEscortRequired {
		t.Fatalf("pole=%v police=%v, want both", req.PoleCarRequired, req.PoliceEscortRequired)
	}
	found := false
	for _, r := range req.Reasons {
		if strings.HasPrefix(r, "Superload:") {
			found = true
		}
	}
	if !found {
		t.Fatalf("reasons = %v, want superload reason", req.Reasons)
	}
}

func TestCalculateRoutePermits(t *testing.T) {
	pc := NewPermitCalculator(testStates())
	specs := domain.CargoSpecs{Width: 14.5, Height: 12, Length: 60, GrossWeight: 70000}
	route := []domain.StateMileage{
		{StateCode: "TX", Miles: 250},
		{StateCode: "ZZ", Miles: 50},
		{StateCode: "OK", Miles: 150},
	}

	sum := pc.CalculateRoutePermits(specs, route)

	if len(sum.States) != 2 {
		t.Fatalf("states = %d, want 2", len(sum.States))
	}
	// TX 150 + 50, OK 40.
	if sum.TotalPermitFees != 24000 {
		t.Fatalf("fees = %d, want 24000", sum.TotalPermitFees)
	}
	// TX requires 2 escorts at 14.5', OK only 1: the maximum applies.
	if sum.MaxEscortsRequired != 2 {
		t.Fatalf("escorts = %d, want 2", sum.MaxEscortsRequired)
	}
	if sum.TotalMiles != 450 {
		t.Fatalf("miles = %v, want 450", sum.TotalMiles)
	}
	// ceil(450/300) = 2 days x 2 escorts x $800.
	if sum.TotalEscortCost != 320000 {
		t.Fatalf("escort cost = %d, want 320000", sum.TotalEscortCost)
	}
	if len(sum.Warnings) != 1 || !strings.Contains(sum.Warnings[0], `"ZZ"`) {
		t.Fatalf("warnings = %v, want unknown state warning", sum.Warnings)
	}
	want := []string{
		"TX: No night travel (30 min after sunset to 30 min before sunrise)",
		"TX: No holiday travel",
		"OK: No night travel",
		"OK: No weekend travel",
	}
	if len(sum.OverallRestrictions) != len(want) {
		t.Fatalf("restrictions = %v", sum.OverallRestrictions)
	}
	for i := range want {
		if sum.OverallRestrictions[i] != want[i] {
			t.Fatalf("restriction %d = %q, want %q", i, sum.OverallRestrictions[i], want[i])
		}
	}
}

func TestCalculateDetailedRoutePermitsEmptyRoute(t *testing.T) {
	pc := NewPermitCalculator(testStates())

	sum := pc.CalculateDetailedRoutePermits(domain.CargoSpecs{Width: 13}, nil)
	if len(sum.States) != 0 || sum.TotalPermitFees != 0 {
		t.Fatalf("summary = %+v, want empty", sum)
	}
	if len(sum.Warnings) != 1 {
		t.Fatalf("warnings = %v, want one", sum.Warnings)
	}
}
