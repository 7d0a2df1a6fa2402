package genrealmvoronoi

import (
	"sort"

	"github.com/calvras/genrealmvoronoi/geom"
	"github.com/calvras/genrealmvoronoi/terrain"
)

// assignKingdomStats recomputes the aggregate geography of the given
// kingdoms from their owned cells: centroid, bounds, area, neighbors,
// coastal flag, dominant biome and climate zone.
func (r *Realm) assignKingdomStats(ids ...int) {
	for _, id := range ids {
		k := r.GetKingdom(id)
		if k == nil {
			continue
		}
		r.calcKingdomStats(k)
	}
}

func (r *Realm) calcKingdomStats(k *Kingdom) {
	k.Area = 0
	k.Coastal = false
	k.NeighborKingdoms = nil
	if len(k.Cells) == 0 {
		k.Centroid = geom.Point{}
		k.BoundsMin = geom.Point{}
		k.BoundsMax = geom.Point{}
		k.DominantBiome = terrain.BiomeDeepOcean
		return
	}

	var sumX, sumY float64
	minP := r.Centers[k.Cells[0]]
	maxP := minP
	elevations := make([]float64, 0, len(k.Cells))
	biomeArea := make(map[terrain.Biome]float64)
	climateArea := make(map[terrain.Climate]float64)
	for _, cell := range k.Cells {
		elevations = append(elevations, r.Elevation[cell])
		area := r.Polygons[cell].Area()
		k.Area += area
		biomeArea[r.Biomes[cell]] += area
		climateArea[r.Climates[cell]] += area

		c := r.Centers[cell]
		sumX += c.X
		sumY += c.Y
		if c.X < minP.X {
			minP.X = c.X
		}
		if c.Y < minP.Y {
			minP.Y = c.Y
		}
		if c.X > maxP.X {
			maxP.X = c.X
		}
		if c.Y > maxP.Y {
			maxP.Y = c.Y
		}

		if r.IsCellCoastal(cell) {
			k.Coastal = true
		}
		for _, nb := range r.Neighbors[cell] {
			owner := r.CellToKingdom[nb]
			if owner >= 0 && owner != k.ID && !isInIntList(k.NeighborKingdoms, owner) {
				k.NeighborKingdoms = append(k.NeighborKingdoms, owner)
			}
		}
	}
	sort.Ints(k.NeighborKingdoms)

	k.Centroid = geom.Point{
		X: sumX / float64(len(k.Cells)),
		Y: sumY / float64(len(k.Cells)),
	}
	k.BoundsMin = minP
	k.BoundsMax = maxP
	k.MinElevation, k.MaxElevation = minMax(elevations)
	k.DominantBiome = dominantKey(biomeArea)
	k.ClimateZone = dominantKey(climateArea)
}

// dominantKey returns the key with the largest accumulated area.
// Ties break toward the smaller key so the result is deterministic.
func dominantKey[K ~int](areas map[K]float64) K {
	var best K
	bestArea := -1.0
	keys := make([]K, 0, len(areas))
	for k := range areas {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if areas[k] > bestArea {
			best, bestArea = k, areas[k]
		}
	}
	return best
}
