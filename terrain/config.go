package terrain

// Config holds all configuration options for terrain and tessellation
// generation.
type Config struct {
	Width                float64 // Canvas width
	Height               float64 // Canvas height
	NumPoints            int     // Number of sampled cell sites
	RelaxationPasses     int     // Centroidal relaxation passes
	NumDistantLandmasses int     // Decorative off-continent landmasses
}

// NewConfig returns a new config for terrain generation with default values.
func NewConfig() *Config {
	return &Config{
		Width:                1600,
		Height:               1000,
		NumPoints:            2000,
		RelaxationPasses:     2,
		NumDistantLandmasses: 3,
	}
}
