package genrealmvoronoi

import (
	"log"

	"github.com/calvras/genrealmvoronoi/terrain"
)

// hostileCapitalBiomes lists the biomes no capital is founded in.
var hostileCapitalBiomes = []terrain.Biome{
	terrain.BiomeTundra,
	terrain.BiomeSnow,
	terrain.BiomeAridHills,
	terrain.BiomeMountains,
}

// isCapitalEligible returns true if a capital may be founded on the
// given cell. Capitals avoid water, the coast, and hostile biomes.
func (r *Realm) isCapitalEligible(cell int) bool {
	if r.IsCellWater(cell) || r.IsCellCoastal(cell) {
		return false
	}
	for _, b := range hostileCapitalBiomes {
		if r.Biomes[cell] == b {
			return false
		}
	}
	return r.CellToKingdom[cell] < 0
}

// selectCapitalCells picks n capital sites spread out over the
// continent. For each capital we sample a bounded number of candidate
// cells and keep the one farthest from all capitals placed so far. If
// sampling never hits an eligible cell we fall back to a linear scan,
// so generation cannot fail on a cramped landmass.
func (r *Realm) selectCapitalCells(n int) []int {
	var capitals []int
	for len(capitals) < n {
		best := -1
		bestDist := -1.0
		for attempt := 0; attempt < r.CapitalAttempts; attempt++ {
			cell := r.rng.Intn(r.NumCells)
			if !r.isCapitalEligible(cell) || isInIntList(capitals, cell) {
				continue
			}
			dist := r.minDistToCells(cell, capitals)
			if dist > bestDist {
				best, bestDist = cell, dist
			}
		}
		if best == -1 {
			best = r.firstEligibleCapitalCell(capitals)
			if best == -1 {
				log.Printf("ran out of capital sites after %d kingdoms", len(capitals))
				break
			}
		}
		capitals = append(capitals, best)
	}
	return capitals
}

// minDistToCells returns the distance from the given cell to the
// closest cell in the list, or a huge value for an empty list.
func (r *Realm) minDistToCells(cell int, cells []int) float64 {
	if len(cells) == 0 {
		return r.Width + r.Height
	}
	minDist := -1.0
	for _, c := range cells {
		d := r.Centers[cell].Dist(r.Centers[c])
		if minDist < 0 || d < minDist {
			minDist = d
		}
	}
	return minDist
}

// firstEligibleCapitalCell scans the cells in index order for an
// eligible site not already taken. Deterministic last resort.
func (r *Realm) firstEligibleCapitalCell(taken []int) int {
	for cell := 0; cell < r.NumCells; cell++ {
		if r.isCapitalEligible(cell) && !isInIntList(taken, cell) {
			return cell
		}
	}
	return -1
}
