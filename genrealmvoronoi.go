// Package genrealmvoronoi procedurally builds a continent-scale map
// partitioned into competing kingdoms and simulates territorial
// conflict over it. The generator produces an immutable Voronoi cell
// graph with biomes and initial ownership; the simulation layer then
// mutates ownership over time through a conflict state machine.
package genrealmvoronoi

import (
	"time"

	"github.com/calvras/genrealmvoronoi/terrain"
)

// Map ties the generated world and the running simulation together.
type Map struct {
	*Realm // political layer: kingdoms, settlements, territory
	*Sim   // runtime layer: state store and conflict engine
}

// NewMapFromConfig generates a new map for the given seed. A zero seed
// is replaced with the current time so callers can ask for a random
// world without managing seeds themselves.
func NewMapFromConfig(seed int64, cfg *Config) (*Map, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Build the terrain: tessellation, elevation, biomes.
	t, err := terrain.New(seed, cfg.TerrainConfig)
	if err != nil {
		return nil, err
	}

	// Partition the continent into kingdoms.
	realm := NewRealm(t, seed, cfg.RealmConfig)
	realm.generateRealm()

	// Seed the runtime state from the generation output.
	return &Map{
		Realm: realm,
		Sim:   NewSim(realm, seed, cfg.SimConfig),
	}, nil
}

// NewMap generates a map with the most common knobs set directly.
func NewMap(seed int64, numKingdoms, numPoints, citiesPerKingdom int) (*Map, error) {
	cfg := NewConfig()
	cfg.NumKingdoms = numKingdoms
	cfg.NumPoints = numPoints
	cfg.CitiesPerKingdom = citiesPerKingdom

	return NewMapFromConfig(seed, cfg)
}

// Tick advances the map by one tick.
func (m *Map) Tick() {
	m.Sim.Tick()
}
