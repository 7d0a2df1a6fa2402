package genrealmvoronoi

import "github.com/calvras/genrealmvoronoi/terrain"

// TerrainConfig configures terrain and tessellation generation.
type TerrainConfig = terrain.Config

// NewTerrainConfig returns a new config for terrain generation.
var NewTerrainConfig = terrain.NewConfig

// Config is a struct that holds all configuration options for the map
// generation and simulation.
type Config struct {
	*TerrainConfig
	*RealmConfig
	*SimConfig
}

// NewConfig returns a new Config with default values.
func NewConfig() *Config {
	return &Config{
		TerrainConfig: NewTerrainConfig(),
		RealmConfig:   NewRealmConfig(),
		SimConfig:     NewSimConfig(),
	}
}

// RealmConfig is a struct that holds all configuration options for the
// political layer: kingdoms, settlements, and territory partitioning.
type RealmConfig struct {
	NumKingdoms       int  // Number of generated kingdoms
	CitiesPerKingdom  int  // Number of cities placed per kingdom (besides the capital)
	CapitalAttempts   int  // Sampling attempts per capital placement
	EnableTradeRoutes bool // Generate trade routes between capitals
}

// NewRealmConfig returns a new config for realm generation.
func NewRealmConfig() *RealmConfig {
	return &RealmConfig{
		NumKingdoms:       5,
		CitiesPerKingdom:  2,
		CapitalAttempts:   50,
		EnableTradeRoutes: true,
	}
}

// SimConfig is a struct that holds all configuration options for the
// territorial simulation.
type SimConfig struct {
	// ContestSkipChance is the probability that an eligible border cell
	// is left out when seeding the contested set of a new conflict.
	// Tuning constant, kept adjustable on purpose.
	ContestSkipChance float64

	BaseStrength     int // Base military strength per kingdom
	StrengthPerCell  int // Additional strength per owned cell
	GoldPerCellTick  int // Gold accrued per owned cell per tick
	FoodPerCellTick  int // Food accrued per owned cell per tick
}

// NewSimConfig returns a new config for the simulation.
func NewSimConfig() *SimConfig {
	return &SimConfig{
		ContestSkipChance: 0.3,
		BaseStrength:      500,
		StrengthPerCell:   2,
		GoldPerCellTick:   1,
		FoodPerCellTick:   2,
	}
}
