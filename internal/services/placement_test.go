package services

import (
	"heavy-haul-service/internal/domain"
	"testing"
)

func smallDeck() domain.TruckType {
	return domain.TruckType{ID: "small", Name: "Small", DeckLength: 10, DeckWidth: 8, DeckHeight: 5, MaxCargoWeight: 40000}
}

func TestLayoutItemsSideBySide(t *testing.T) {
	items := []domain.LoadItem{
		item("a", 20, 4, 4, 20000),
		item("b", 20, 4, 4, 20000),
	}

	res := LayoutItems(items, testFlatbed())
	if res.fallbacks != 0 {
		t.Fatalf("fallbacks = %d, want 0", res.fallbacks)
	}

	a, b := res.placements[0], res.placements[1]
	if a.X != 0 || a.Z != 0 {
		t.Fatalf("a at (%v, %v), want (0, 0)", a.X, a.Z)
	}
	if b.X != 0 || b.Z != 4.5 {
		t.Fatalf("b at (%v, %v), want (0, 4.5)", b.X, b.Z)
	}
	if res.length != 20 || res.width != 8.5 || res.height != 4 {
		t.Fatalf("extent = %v x %v x %v, want 20 x 8.5 x 4", res.length, res.width, res.height)
	}
}

func TestLayoutItemsRotatesToFit(t *testing.T) {
	res := LayoutItems([]domain.LoadItem{item("beam", 6, 20, 4, 5000)}, testFlatbed())

	p := res.placements[0]
	if !p.Rotated {
		t.Fatalf("expected rotated placement")
	}
	if p.Length != 20 || p.Width != 6 {
		t.Fatalf("footprint = %v x %v, want 20 x 6", p.Length, p.Width)
	}
	if p.X != 0 || p.Z != 0 {
		t.Fatalf("placed at (%v, %v), want (0, 0)", p.X, p.Z)
	}
}

func TestLayoutItemsStacksOnStackableBase(t *testing.T) {
	items := []domain.LoadItem{
		stackable(item("top", 8, 6, 3, 2000)),
		stackable(item("base", 10, 8, 4, 6000)),
	}

	res := LayoutItems(items, smallDeck())
	if res.fallbacks != 0 {
		t.Fatalf("fallbacks = %d, want 0", res.fallbacks)
	}

	// Larger footprint is placed first.
	if res.placements[0].ItemID != "base" {
		t.Fatalf("first placed = %q, want base", res.placements[0].ItemID)
	}
	top := res.placements[1]
	if top.Elevation != 4 {
		t.Fatalf("top elevation = %v, want 4", top.Elevation)
	}
	if res.height != 7 {
		t.Fatalf("stack height = %v, want 7", res.height)
	}
}

func TestLayoutItemsFallsBackToOrigin(t *testing.T) {
	fragileBase := stackable(item("base", 10, 8, 4, 6000))
	fragileBase.Fragile = true

	cases := []struct {
		name  string
		items []domain.LoadItem
	}{
		{"not stackable", []domain.LoadItem{item("a", 10, 8, 2, 1000), item("b", 10, 8, 2, 1000)}},
		{"fragile base", []domain.LoadItem{fragileBase, stackable(item("top", 8, 6, 3, 2000))}},
		{"too tall to stack", []domain.LoadItem{stackable(item("a", 10, 8, 4, 1000)), stackable(item("b", 8, 6, 5, 1000))}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := LayoutItems(tc.items, smallDeck())
			if res.fallbacks != 1 {
				t.Fatalf("fallbacks = %d, want 1", res.fallbacks)
			}
			p := res.placements[1]
			if !p.Fallback || p.X != 0 || p.Z != 0 {
				t.Fatalf("second placement = %+v, want origin fallback", p)
			}
		})
	}
}

func TestLayoutItemsIsDeterministic(t *testing.T) {
	items := []domain.LoadItem{
		item("a", 12, 3, 4, 1000),
		item("b", 7, 5, 4, 1000),
		item("c", 9, 2.5, 4, 1000),
		item("d", 12, 3, 4, 1000),
	}

	first := LayoutItems(items, testFlatbed())
	for i := 0; i < 5; i++ {
		again := LayoutItems(items, testFlatbed())
		for j := range first.placements {
			if first.placements[j] != again.placements[j] {
				t.Fatalf("run %d placement %d = %+v, want %+v", i, j, again.placements[j], first.placements[j])
			}
		}
	}
	assertNoOverlap(t, first.placements)
}

func assertNoOverlap(t *testing.T, placements []domain.ItemPlacement) {
	t.Helper()
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			if a.Fallback || b.Fallback || a.Elevation != b.Elevation {
				continue
			}
			if rectsOverlap(a.X, a.Z, a.Length, a.Width, b.X, b.Z, b.Length, b.Width) {
				t.Fatalf("placements overlap: %+v and %+v", a, b)
			}
		}
	}
}
