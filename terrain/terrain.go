// Package terrain turns a random seed into a tessellated continent:
// a planar Voronoi cell graph with elevation, moisture, climate and
// biome assigned per cell.
package terrain

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/calvras/genrealmvoronoi/geom"
	"github.com/calvras/genrealmvoronoi/noise"
)

// Terrain is the generated continent. The mesh topology is immutable
// once generated; political layers only ever change cell ownership.
type Terrain struct {
	*Mesh
	Config            *Config
	Seed              int64
	Elevation         []float64      // elevation per cell, 0..1
	Moisture          []float64      // moisture per cell, 0..1
	Biomes            []Biome        // biome per cell
	Climates          []Climate      // climate zone per cell
	Coastline         geom.Outline   // merged outline of all land cells
	DistantLandmasses []geom.Polygon // decorative landmasses outside the continent
}

// New generates a terrain from the given seed and config.
func New(seed int64, cfg *Config) (*Terrain, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	rng := rand.New(rand.NewSource(seed))

	start := time.Now()
	mesh, err := newMesh(rng, cfg.Width, cfg.Height, cfg.NumPoints, cfg.RelaxationPasses)
	if err != nil {
		return nil, err
	}
	log.Println("Done tessellation in ", time.Since(start).String())

	t := &Terrain{
		Mesh:      mesh,
		Config:    cfg,
		Seed:      seed,
		Elevation: make([]float64, mesh.NumCells),
		Moisture:  make([]float64, mesh.NumCells),
		Biomes:    make([]Biome, mesh.NumCells),
		Climates:  make([]Climate, mesh.NumCells),
	}

	start = time.Now()
	t.classifyCells(rng, seed)
	log.Println("Done classification in ", time.Since(start).String())

	start = time.Now()
	t.assignCoastline()
	log.Println("Done coastline in ", time.Since(start).String())

	t.placeDistantLandmasses(rng)
	return t, nil
}

// classifyCells evaluates the terrain field at every cell center and
// assigns elevation, moisture, climate and biome. This is a pure
// function of (cell center, seed), no cross-cell dependency.
func (t *Terrain) classifyCells(rng *rand.Rand, seed int64) {
	field := newField(rng, seed, t.Width, t.Height)
	moistureNoise := noise.New(3, 0.5, seed+1)
	for i, c := range t.Centers {
		t.Elevation[i] = field.ElevationAt(c.X, c.Y)
		t.Moisture[i] = moistureNoise.Eval2At(c.X/t.Width, c.Y/t.Height, noiseFrequency)
		t.Climates[i] = ClimateAt(c.Y / t.Height)
		t.Biomes[i] = Classify(t.Elevation[i], t.Climates[i])
	}
}

// IsCellWater returns true if the cell carries a water biome.
func (t *Terrain) IsCellWater(cell int) bool {
	return t.Biomes[cell].IsWater()
}

// IsCellCoastal returns true if the cell is land with at least one
// water neighbor.
func (t *Terrain) IsCellCoastal(cell int) bool {
	if t.IsCellWater(cell) {
		return false
	}
	for _, nb := range t.Neighbors[cell] {
		if t.IsCellWater(nb) {
			return true
		}
	}
	return false
}

// LandCells returns the ids of all land cells.
func (t *Terrain) LandCells() []int {
	var cells []int
	for i := range t.Biomes {
		if !t.IsCellWater(i) {
			cells = append(cells, i)
		}
	}
	return cells
}

// assignCoastline merges all land cell polygons into the continent
// outline. Degenerate cells are skipped by the merger.
func (t *Terrain) assignCoastline() {
	var polys []geom.Polygon
	for i, p := range t.Polygons {
		if !t.IsCellWater(i) {
			polys = append(polys, p)
		}
	}
	t.Coastline = geom.NewClipMerger().Merge(polys)
}

// placeDistantLandmasses scatters a few decorative landmass blobs in
// the ocean near the canvas border. They are cosmetic only and take no
// part in the cell graph.
func (t *Terrain) placeDistantLandmasses(rng *rand.Rand) {
	for i := 0; i < t.Config.NumDistantLandmasses; i++ {
		// Pick a spot in the outer ocean band of the canvas.
		angle := rng.Float64() * 2 * math.Pi
		cx := t.Width/2 + math.Cos(angle)*t.Width*0.46
		cy := t.Height/2 + math.Sin(angle)*t.Height*0.46
		baseR := (0.02 + rng.Float64()*0.03) * math.Min(t.Width, t.Height)

		numVerts := 8 + rng.Intn(5)
		blob := make(geom.Polygon, 0, numVerts)
		for v := 0; v < numVerts; v++ {
			va := float64(v) / float64(numVerts) * 2 * math.Pi
			vr := baseR * (0.7 + rng.Float64()*0.6)
			blob = append(blob, geom.Point{
				X: cx + math.Cos(va)*vr,
				Y: cy + math.Sin(va)*vr,
			})
		}
		t.DistantLandmasses = append(t.DistantLandmasses, blob)
	}
}
