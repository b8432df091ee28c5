package domain

import (
	"fmt"
	"strings"
)

// Represents one cargo line handed to the planner.
// Dimensions are in feet and Weight is per unit in pounds.
// A LoadItem is immutable once parsed; planning structures hold copies of it
// but never change its fields.
type LoadItem struct {
	ID          string  `json:"id" yaml:"id"`
	Description string  `json:"description" yaml:"description"`
	Quantity    int     `json:"quantity" yaml:"quantity"`
	Length      float64 `json:"length" yaml:"length"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Stackable   bool    `json:"stackable" yaml:"stackable"`
	Fragile     bool    `json:"fragile" yaml:"fragile"`
	Hazmat      bool    `json:"hazmat" yaml:"hazmat"`
}

// EffectiveWeight is the per-unit weight multiplied by quantity.
// A missing or zero quantity counts as one unit.
func (i LoadItem) EffectiveWeight() float64 {
	q := i.Quantity
	if q < 1 {
		q = 1
	}
	return i.Weight * float64(q)
}

// FootprintArea returns the deck area the item occupies in its normal orientation.
func (i LoadItem) FootprintArea() float64 {
	return i.Length * i.Width
}

// Validate rejects items the planner cannot reason about.
func (i LoadItem) Validate() error {
	if strings.TrimSpace(i.ID) == "" {
		return fmt.Errorf("%w: id must not be empty", ErrInvalidItem)
	}
	if i.Length <= 0 || i.Width <= 0 || i.Height <= 0 {
		return fmt.Errorf("%w: item %q dimensions must be positive", ErrInvalidItem, i.ID)
	}
	if i.Weight < 0 {
		return fmt.Errorf("%w: item %q weight must not be negative", ErrInvalidItem, i.ID)
	}
	return nil
}

// CargoDims is the geometry and weight the truck selector scores against.
// It describes either a single item or the aggregate of a planned load.
type CargoDims struct {
	Length      float64
	Width       float64
	Height      float64
	Weight      float64
	Description string
}

// DimsOf returns the scoring dimensions of a single item.
func DimsOf(item LoadItem) CargoDims {
	return CargoDims{
		Length:      item.Length,
		Width:       item.Width,
		Height:      item.Height,
		Weight:      item.EffectiveWeight(),
		Description: item.Description,
	}
}

// CargoSpecs are the overall loaded dimensions used for permitting:
// height includes the trailer deck and GrossWeight includes tractor and trailer.
// OverallLength is the tractor-trailer combination; zero means Length.
type CargoSpecs struct {
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Length        float64 `json:"length"`
	OverallLength float64 `json:"overall_length,omitempty"`
	GrossWeight   float64 `json:"gross_weight"`
}

// CombinationLength is the length measured by length surcharges, length
// escort triggers and superload thresholds.
func (s CargoSpecs) CombinationLength() float64 {
	return max(s.OverallLength, s.Length)
}
