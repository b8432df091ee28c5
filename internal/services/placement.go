package services

import (
	"cmp"
	"heavy-haul-service/internal/domain"
	"math"
	"slices"
)

const (
	placementGridStep  = 0.5
	overlapToleranceFt = 0.01
	forwardWeight      = 1.0
	lateralWeight      = 0.5
	edgeContactBonus   = 5.0
	cargoContactBonus  = 3.0
	positionEpsilon    = 1e-6
)

// layoutResult is the deck layout of a set of items on one truck.
type layoutResult struct {
	placements []domain.ItemPlacement
	length     float64
	width      float64
	height     float64
	fallbacks  int
}

type placedRect struct {
	x, z, l, w float64
	elevation  float64
	height     float64
	stackBase  bool
	hasTop     bool
}

// LayoutItems places items on the truck deck with a deterministic greedy search.
//
// Items are placed largest footprint first. Each item tries its normal and
// rotated orientation at 0.5' grid steps (plus the far edges of cargo already
// placed) and takes the best scoring non-overlapping position. Stackable items
// that find no floor space may ride on a stackable base whose footprint
// contains them. Anything still unplaced lands at the origin and is flagged.
func LayoutItems(items []domain.LoadItem, truck domain.TruckType) layoutResult {
	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(items[b].FootprintArea(), items[a].FootprintArea())
	})

	res := layoutResult{placements: make([]domain.ItemPlacement, 0, len(items))}
	placed := make([]placedRect, 0, len(items))

	for _, idx := range order {
		item := items[idx]

		p, rect, ok := bestFloorPosition(item, truck, placed)
		if !ok {
			p, rect, ok = stackPosition(item, truck, placed)
		}
		if !ok {
			p = domain.ItemPlacement{
				ItemID:   item.ID,
				Length:   item.Length,
				Width:    item.Width,
				Fallback: true,
			}
			rect = placedRect{l: item.Length, w: item.Width, height: item.Height}
			res.fallbacks++
		}
		rect.stackBase = item.Stackable && !item.Fragile && rect.elevation == 0

		placed = append(placed, rect)
		res.placements = append(res.placements, p)

		res.length = max(res.length, rect.x+rect.l)
		res.width = max(res.width, rect.z+rect.w)
		res.height = max(res.height, rect.elevation+rect.height)
	}

	return res
}

func bestFloorPosition(item domain.LoadItem, truck domain.TruckType, placed []placedRect) (domain.ItemPlacement, placedRect, bool) {
	type orientation struct {
		l, w    float64
		rotated bool
	}
	orients := []orientation{{item.Length, item.Width, false}}
	if item.Length != item.Width {
		orients = append(orients, orientation{item.Width, item.Length, true})
	}

	var best domain.ItemPlacement
	var bestRect placedRect
	bestScore := math.Inf(-1)
	found := false

	for _, o := range orients {
		if o.l > truck.DeckLength+positionEpsilon || o.w > truck.DeckWidth+positionEpsilon {
			continue
		}

		xs := candidateOffsets(truck.DeckLength, o.l, placed, func(r placedRect) float64 { return r.x + r.l })
		zs := candidateOffsets(truck.DeckWidth, o.w, placed, func(r placedRect) float64 { return r.z + r.w })

		for _, x := range xs {
			for _, z := range zs {
				if overlapsFloor(placed, x, z, o.l, o.w) {
					continue
				}
				s := positionScore(x, z, o.l, o.w, truck, placed)
				if s > bestScore {
					bestScore = s
					best = domain.ItemPlacement{
						ItemID:  item.ID,
						X:       x,
						Z:       z,
						Rotated: o.rotated,
						Length:  o.l,
						Width:   o.w,
					}
					bestRect = placedRect{x: x, z: z, l: o.l, w: o.w, height: item.Height}
					found = true
				}
			}
		}
	}

	return best, bestRect, found
}

// candidateOffsets returns grid positions along one deck axis followed by the
// far edges of placed cargo, in ascending order without duplicates.
func candidateOffsets(deck, size float64, placed []placedRect, edge func(placedRect) float64) []float64 {
	limit := deck - size + positionEpsilon
	out := make([]float64, 0, int(deck/placementGridStep)+len(placed)+1)
	for i := 0; ; i++ {
		v := float64(i) * placementGridStep
		if v > limit {
			break
		}
		out = append(out, v)
	}
	for _, r := range placed {
		if r.elevation > 0 {
			continue
		}
		if v := edge(r); v <= limit {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.CompactFunc(out, func(a, b float64) bool { return math.Abs(a-b) < positionEpsilon })
}

func overlapsFloor(placed []placedRect, x, z, l, w float64) bool {
	for _, r := range placed {
		if r.elevation > 0 {
			continue
		}
		if rectsOverlap(x, z, l, w, r.x, r.z, r.l, r.w) {
			return true
		}
	}
	return false
}

func rectsOverlap(ax, az, al, aw, bx, bz, bl, bw float64) bool {
	return ax < bx+bl-overlapToleranceFt &&
		bx < ax+al-overlapToleranceFt &&
		az < bz+bw-overlapToleranceFt &&
		bz < az+aw-overlapToleranceFt
}

// positionScore prefers forward, left positions that touch the deck edges or
// other cargo.
func positionScore(x, z, l, w float64, truck domain.TruckType, placed []placedRect) float64 {
	s := -x*forwardWeight - z*lateralWeight

	if x <= positionEpsilon {
		s += edgeContactBonus
	}
	if z <= positionEpsilon {
		s += edgeContactBonus
	}
	if math.Abs(z+w-truck.DeckWidth) <= positionEpsilon {
		s += edgeContactBonus
	}

	for _, r := range placed {
		if r.elevation > 0 {
			continue
		}
		alongX := x < r.x+r.l && r.x < x+l
		alongZ := z < r.z+r.w && r.z < z+w
		if alongZ && (math.Abs(x-(r.x+r.l)) <= positionEpsilon || math.Abs(x+l-r.x) <= positionEpsilon) {
			s += cargoContactBonus
		}
		if alongX && (math.Abs(z-(r.z+r.w)) <= positionEpsilon || math.Abs(z+w-r.z) <= positionEpsilon) {
			s += cargoContactBonus
		}
	}
	return s
}

// stackPosition puts a stackable item on the first free stackable base whose
// footprint contains it, provided the stack stays within legal height.
func stackPosition(item domain.LoadItem, truck domain.TruckType, placed []placedRect) (domain.ItemPlacement, placedRect, bool) {
	if !item.Stackable {
		return domain.ItemPlacement{}, placedRect{}, false
	}

	for i := range placed {
		base := &placed[i]
		if !base.stackBase || base.hasTop {
			continue
		}
		if base.height+item.Height+truck.DeckHeight > domain.LegalHeightFt+positionEpsilon {
			continue
		}

		l, w, rotated := item.Length, item.Width, false
		if l > base.l+positionEpsilon || w > base.w+positionEpsilon {
			l, w, rotated = item.Width, item.Length, true
			if l > base.l+positionEpsilon || w > base.w+positionEpsilon {
				continue
			}
		}

		base.hasTop = true
		p := domain.ItemPlacement{
			ItemID:    item.ID,
			X:         base.x,
			Z:         base.z,
			Elevation: base.height,
			Rotated:   rotated,
			Length:    l,
			Width:     w,
		}
		rect := placedRect{x: base.x, z: base.z, l: l, w: w, elevation: base.height, height: item.Height}
		return p, rect, true
	}

	return domain.ItemPlacement{}, placedRect{}, false
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
