package services

import (
	"heavy-haul-service/internal/domain"
	"testing"
)

func TestSelectTruckPrefersLowboyForTallHeavyCargo(t *testing.T) {
	flatbed := domain.TruckType{
		ID:             "flatbed",
		Name:           "Flatbed",
		DeckLength:     62,
		DeckWidth:      10.5,
		DeckHeight:     5,
		MaxCargoWeight: 60000,
		TareWeight:     15000,
	}
	lowboy := testLowboy()

	cargo := domain.CargoDims{Length: 60, Width: 10, Height: 11, Weight: 50000}

	eval, ok := SelectTruck(cargo, []domain.TruckType{flatbed, lowboy})
	if !ok {
		t.Fatalf("expected a truck to be selected")
	}
	if eval.Truck.ID != lowboy.ID {
		t.Fatalf("selected = %q, want %q", eval.Truck.ID, lowboy.ID)
	}

	flat, ok := ScoreTruck(cargo, flatbed)
	if !ok {
		t.Fatalf("expected flatbed to fit")
	}
	if len(eval.PermitsRequired) >= len(flat.PermitsRequired) {
		t.Fatalf("lowboy permits = %d, want fewer than flatbed's %d", len(eval.PermitsRequired), len(flat.PermitsRequired))
	}
	if len(flat.PermitsRequired) != 3 {
		t.Fatalf("flatbed permits = %v, want height, width and weight", flat.PermitsRequired)
	}
	if eval.Score.FinalScore != 95 {
		t.Fatalf("lowboy score = %v, want 95", eval.Score.FinalScore)
	}
	if flat.Score.FinalScore != 55 {
		t.Fatalf("flatbed score = %v, want 55", flat.Score.FinalScore)
	}
}

func TestSelectTruckPrefersLowboyWhenBothNeedPermits(t *testing.T) {
	flatbed := domain.TruckType{
		ID:             "flatbed",
		Name:           "Flatbed",
		DeckLength:     62,
		DeckWidth:      10.5,
		DeckHeight:     5,
		MaxCargoWeight: 60000,
		TareWeight:     15000,
	}
	lowboy := testLowboy()

	// 14' of cargo is over height on either deck.
	cargo := domain.CargoDims{Length: 60, Width: 10, Height: 14, Weight: 50000}

	eval, ok := SelectTruck(cargo, []domain.TruckType{flatbed, lowboy})
	if !ok {
		t.Fatalf("expected a truck to be selected")
	}
	if eval.Truck.ID != lowboy.ID {
		t.Fatalf("selected = %q, want %q", eval.Truck.ID, lowboy.ID)
	}

	flat, ok := ScoreTruck(cargo, flatbed)
	if !ok {
		t.Fatalf("expected flatbed to fit")
	}
	if eval.IsLegal || flat.IsLegal {
		t.Fatalf("legal lowboy=%v flatbed=%v, want both permitted", eval.IsLegal, flat.IsLegal)
	}
	if len(eval.PermitsRequired) != 2 || len(flat.PermitsRequired) != 3 {
		t.Fatalf("permits lowboy=%v flatbed=%v, want 2 and 3", eval.PermitsRequired, flat.PermitsRequired)
	}
	if eval.Score.FinalScore != 70 || flat.Score.FinalScore != 55 {
		t.Fatalf("scores lowboy=%v flatbed=%v, want 70 and 55", eval.Score.FinalScore, flat.Score.FinalScore)
	}
}

func TestScoreTruckRejectsCargoThatDoesNotFit(t *testing.T) {
	cases := []struct {
		name  string
		cargo domain.CargoDims
	}{
		{"too long", domain.CargoDims{Length: 49, Width: 8, Height: 4, Weight: 1000}},
		{"too wide", domain.CargoDims{Length: 20, Width: 9, Height: 4, Weight: 1000}},
		{"too heavy", domain.CargoDims{Length: 20, Width: 8, Height: 4, Weight: 48001}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := ScoreTruck(tc.cargo, testFlatbed()); ok {
				t.Fatalf("expected cargo not to fit")
			}
		})
	}
}

func TestScoreTruckBonusesAndPenalties(t *testing.T) {
	// 8' cargo on a 5' deck: 13' total, 0.5' clearance.
	legal, _ := ScoreTruck(domain.CargoDims{Length: 20, Width: 8, Height: 8, Weight: 20000}, testFlatbed())
	if !legal.IsLegal {
		t.Fatalf("expected legal load, permits = %v", legal.PermitsRequired)
	}
	if legal.Score.LegalBonus != 20 || legal.Score.IdealFitBonus != 10 {
		t.Fatalf("breakdown = %+v, want legal and ideal fit bonuses", legal.Score)
	}
	if legal.Score.FinalScore != 100 {
		t.Fatalf("score = %v, want 100 (clamped)", legal.Score.FinalScore)
	}

	// 2' cargo on a 2' deck leaves 9.5' of clearance.
	overkill, _ := ScoreTruck(domain.CargoDims{Length: 20, Width: 8, Height: 2, Weight: 20000}, testLowboy())
	if overkill.Score.OverkillPenalty != 10 {
		t.Fatalf("overkill penalty = %v, want 10", overkill.Score.OverkillPenalty)
	}
	if overkill.Score.FinalScore != 100 {
		t.Fatalf("score = %v, want 100", overkill.Score.FinalScore)
	}

	wide, _ := ScoreTruck(domain.CargoDims{Length: 20, Width: 11.6, Height: 8, Weight: 20000}, testLowboy())
	if !wide.Score.EscortProximityWarning {
		t.Fatalf("expected escort proximity warning at 11.6' wide")
	}
	if wide.Score.PermitPenalty != 15 || wide.Score.WidthPenalty != 15 {
		t.Fatalf("breakdown = %+v, want one width permit", wide.Score)
	}
}

func TestScoreTruckDriveOnEquipmentMatch(t *testing.T) {
	cargo := domain.CargoDims{Length: 25, Width: 8, Height: 9, Weight: 30000, Description: "CAT 320 Excavator"}

	eval, ok := ScoreTruck(cargo, testLowboy())
	if !ok {
		t.Fatalf("expected excavator to fit lowboy")
	}
	if eval.Score.EquipmentMatchBonus != 15 {
		t.Fatalf("equipment bonus = %v, want 15", eval.Score.EquipmentMatchBonus)
	}

	eval, _ = ScoreTruck(cargo, testStepDeck())
	if eval.Score.EquipmentMatchBonus != 0 {
		t.Fatalf("crane-loaded truck got equipment bonus %v", eval.Score.EquipmentMatchBonus)
	}
}

func TestSelectTruckTieKeepsCatalogOrder(t *testing.T) {
	a := testFlatbed()
	b := testFlatbed()
	b.ID = "flatbed-48-b"

	cargo := domain.CargoDims{Length: 20, Width: 8, Height: 8, Weight: 20000}

	eval, ok := SelectTruck(cargo, []domain.TruckType{a, b})
	if !ok {
		t.Fatalf("expected a truck")
	}
	if eval.Truck.ID != a.ID || eval.CatalogIndex != 0 {
		t.Fatalf("selected %q at %d, want %q at 0", eval.Truck.ID, eval.CatalogIndex, a.ID)
	}

	eval, _ = SelectTruck(cargo, []domain.TruckType{b, a})
	if eval.Truck.ID != b.ID {
		t.Fatalf("selected %q, want %q", eval.Truck.ID, b.ID)
	}
}

func TestFindFitAlternatives(t *testing.T) {
	cargo := domain.CargoDims{Length: 40, Width: 8, Height: 10, Weight: 30000}

	alts := FindFitAlternatives(cargo, testCatalog(), "flatbed-48")
	if len(alts) != 2 {
		t.Fatalf("alternatives = %d, want 2", len(alts))
	}
	// 10' on the 3.5' step deck is exactly 13.5', so both run legal and
	// catalog order decides.
	if alts[0].TruckID != "step-deck-53" || alts[1].TruckID != "lowboy-55" {
		t.Fatalf("alternatives = %q, %q, want step-deck-53, lowboy-55", alts[0].TruckID, alts[1].TruckID)
	}
	for _, a := range alts {
		if len(a.PermitsRequired) != 0 || a.HeightReduction != 0 {
			t.Fatalf("alternative %+v, want legal with no reduction", a)
		}
	}

	tall := domain.CargoDims{Length: 40, Width: 8, Height: 11, Weight: 30000}
	alts = FindFitAlternatives(tall, testCatalog(), "lowboy-55")
	if len(alts) != 2 {
		t.Fatalf("alternatives = %d, want 2", len(alts))
	}
	if alts[0].TruckID != "flatbed-48" || alts[0].HeightReduction != 2.5 {
		t.Fatalf("first alternative = %+v, want flatbed with 2.5' reduction", alts[0])
	}
	if alts[1].HeightReduction != 1 {
		t.Fatalf("step deck height reduction = %v, want 1", alts[1].HeightReduction)
	}
}
