package services

import (
	"cmp"
	"heavy-haul-service/internal/domain"
	"slices"
)

const (
	rebalanceSourceThreshold      = 0.90
	rebalanceDestinationThreshold = 0.80
)

// rebalanceLoads moves light items out of loads above 90% utilization into
// the least utilized compatible load below 80%, one move at a time, until no
// move helps. Moves depend on the current utilization snapshot so the loop is
// strictly sequential. Loads emptied by the pass are dropped.
func rebalanceLoads(loads []workingLoad, catalog []domain.TruckType) []workingLoad {
	itemCount := 0
	for _, l := range loads {
		itemCount += len(l.items)
	}
	maxMoves := itemCount*len(loads) + 1

	for moves := 0; moves < maxMoves; moves++ {
		if !rebalanceOnce(loads, catalog) {
			break
		}
	}

	out := make([]workingLoad, 0, len(loads))
	for _, l := range loads {
		if !l.empty() {
			out = append(out, l)
		}
	}
	return out
}

// rebalanceOnce applies the first beneficial move it finds and reports
// whether it moved anything.
func rebalanceOnce(loads []workingLoad, catalog []domain.TruckType) bool {
	order := make([]int, 0, len(loads))
	for i, l := range loads {
		if !l.empty() {
			order = append(order, i)
		}
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(loads[b].utilization(), loads[a].utilization())
	})

	for _, src := range order {
		source := loads[src]
		srcUtil := source.utilization()
		if srcUtil <= rebalanceSourceThreshold {
			continue
		}

		byWeight := make([]int, len(source.items))
		for i := range byWeight {
			byWeight[i] = i
		}
		slices.SortStableFunc(byWeight, func(a, b int) int {
			return cmp.Compare(source.items[a].EffectiveWeight(), source.items[b].EffectiveWeight())
		})

		for _, ii := range byWeight {
			item := source.items[ii]

			// Destinations are tried least utilized first, as they stand now.
			dests := hostCandidates(loads, item, hardUtilizationCeiling, src)
			slices.SortStableFunc(dests, func(a, b hostCandidate) int {
				return cmp.Compare(loads[a.index].utilization(), loads[b.index].utilization())
			})

			for _, c := range dests {
				if loads[c.index].utilization() >= rebalanceDestinationThreshold {
					continue
				}

				dest, ok := evaluateLoad(append(slices.Clone(loads[c.index].items), item), catalog)
				if !ok || dest.utilization() >= srcUtil {
					continue
				}

				remaining := slices.Delete(slices.Clone(source.items), ii, ii+1)
				var drained workingLoad
				if len(remaining) > 0 {
					if drained, ok = evaluateLoad(remaining, catalog); !ok {
						continue
					}
				}

				loads[src] = drained
				loads[c.index] = dest
				return true
			}
		}
	}

	return false
}
