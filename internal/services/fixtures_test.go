package services

import "heavy-haul-service/internal/domain"

func testFlatbed() domain.TruckType {
	return domain.TruckType{
		ID:             "flatbed-48",
		Name:           "48' Flatbed",
		Category:       domain.CategoryFlatbed,
		DeckLength:     48,
		DeckWidth:      8.5,
		DeckHeight:     5,
		MaxCargoWeight: 48000,
		TareWeight:     15000,
		LoadingMethod:  domain.LoadingCrane,
		DayRate:        95000,
		FuelMPG:        6,
	}
}

func testStepDeck() domain.TruckType {
	return domain.TruckType{
		ID:             "step-deck-53",
		Name:           "53' Step Deck",
		Category:       domain.CategoryStepDeck,
		DeckLength:     53,
		DeckWidth:      8.5,
		DeckHeight:     3.5,
		MaxCargoWeight: 48000,
		TareWeight:     16000,
		LoadingMethod:  domain.LoadingCrane,
		DayRate:        110000,
		FuelMPG:        5.5,
	}
}

func testLowboy() domain.TruckType {
	return domain.TruckType{
		ID:             "lowboy-55",
		Name:           "Lowboy 55 Ton",
		Category:       domain.CategoryLowboy,
		DeckLength:     65,
		DeckWidth:      12,
		DeckHeight:     2,
		MaxCargoWeight: 55000,
		TareWeight:     10000,
		LoadingMethod:  domain.LoadingDriveOn,
		DayRate:        180000,
		FuelMPG:        4.5,
	}
}

func testCatalog() []domain.TruckType {
	return []domain.TruckType{testFlatbed(), testStepDeck(), testLowboy()}
}

func item(id string, l, w, h, weight float64) domain.LoadItem {
	return domain.LoadItem{ID: id, Description: id, Quantity: 1, Length: l, Width: w, Height: h, Weight: weight}
}

func stackable(it domain.LoadItem) domain.LoadItem {
	it.Stackable = true
	return it
}
