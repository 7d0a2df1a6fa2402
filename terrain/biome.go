package terrain

import (
	"image/color"

	"github.com/Flokey82/genbiome"
)

// Elevation thresholds for cell classification.
const (
	DeepSeaLevel  = 0.10 // at or below: deep ocean
	SeaLevel      = 0.22 // at or below: shallow sea
	MountainLevel = 0.75 // at or above: hills / mountains regardless of latitude
	PeakLevel     = 0.87 // at or above: mountains proper
)

// Biome is the closed set of cell biomes. Water and high-elevation
// biomes are latitude-independent; the land biomes in between are
// picked per climate zone.
type Biome int

const (
	BiomeDeepOcean Biome = iota
	BiomeShallowSea
	BiomeTundra
	BiomeTaiga
	BiomeSnow
	BiomePlains
	BiomeForest
	BiomeSavanna
	BiomeAridHills
	BiomeHills
	BiomeMountains
)

func (b Biome) String() string {
	switch b {
	case BiomeDeepOcean:
		return "deep ocean"
	case BiomeShallowSea:
		return "shallow sea"
	case BiomeTundra:
		return "tundra"
	case BiomeTaiga:
		return "taiga"
	case BiomeSnow:
		return "snow"
	case BiomePlains:
		return "plains"
	case BiomeForest:
		return "forest"
	case BiomeSavanna:
		return "savanna"
	case BiomeAridHills:
		return "arid hills"
	case BiomeHills:
		return "hills"
	case BiomeMountains:
		return "mountains"
	}
	return "unknown"
}

// IsWater returns true for the two ocean biomes.
func (b Biome) IsWater() bool {
	return b == BiomeDeepOcean || b == BiomeShallowSea
}

// Climate is the coarse latitude band of a cell, derived from the
// normalized y position on the canvas.
type Climate int

const (
	ClimateNorth   Climate = iota // cold: snow / taiga / tundra
	ClimateCentral                // temperate: forest / plains
	ClimateSouth                  // hot: savanna / arid hills
)

func (c Climate) String() string {
	switch c {
	case ClimateNorth:
		return "north"
	case ClimateCentral:
		return "central"
	case ClimateSouth:
		return "south"
	}
	return "unknown"
}

// ClimateAt returns the climate zone for a normalized y position in [0, 1].
func ClimateAt(normY float64) Climate {
	if normY < 1.0/3 {
		return ClimateNorth
	}
	if normY > 2.0/3 {
		return ClimateSouth
	}
	return ClimateCentral
}

// Classify picks the biome for the given elevation and climate zone.
// Water and mountain thresholds override latitude.
func Classify(elevation float64, climate Climate) Biome {
	if elevation <= DeepSeaLevel {
		return BiomeDeepOcean
	}
	if elevation <= SeaLevel {
		return BiomeShallowSea
	}
	if elevation >= MountainLevel {
		if elevation >= PeakLevel {
			return BiomeMountains
		}
		return BiomeHills
	}
	switch climate {
	case ClimateNorth:
		if elevation > 0.60 {
			return BiomeSnow
		}
		if elevation > 0.42 {
			return BiomeTaiga
		}
		return BiomeTundra
	case ClimateSouth:
		if elevation > 0.50 {
			return BiomeAridHills
		}
		return BiomeSavanna
	}
	if elevation > 0.48 {
		return BiomeForest
	}
	return BiomePlains
}

// Whittaker-ish temperature/precipitation estimates so we can reuse the
// genbiome color tables for rendering. Temperature tracks the climate
// band, precipitation tracks moisture.
func biomeTempPrecip(climate Climate, elevation, moisture float64) (int, int) {
	var temp float64
	switch climate {
	case ClimateNorth:
		temp = -5
	case ClimateCentral:
		temp = 12
	case ClimateSouth:
		temp = 25
	}
	// Higher terrain is colder.
	temp -= 20 * elevation
	return int(temp), int(moisture * 400)
}

// RenderColor returns a plausible map color for the cell, using the
// genbiome Whittaker color table for land and depth-shaded blue for water.
func RenderColor(b Biome, climate Climate, elevation, moisture float64) color.NRGBA {
	if b.IsWater() {
		v := uint8(120 + 100*elevation/SeaLevel)
		return color.NRGBA{R: 40, G: 80, B: v, A: 255}
	}
	temp, precip := biomeTempPrecip(climate, elevation, moisture)
	return genbiome.GetWhittakerModBiomeColor(temp, precip, 0.6+0.4*elevation)
}
