// Package noise wraps opensimplex noise with a fixed set of octaves,
// which gives us coherent, seedable terrain noise for the map canvas.
package noise

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Noise is an octave stack over opensimplex, initialized with a given
// seed, persistence, and number of octaves.
type Noise struct {
	Octaves     int
	Persistence float64
	Amplitudes  []float64
	Seed        int64
	OS          opensimplex.Noise
}

// New returns a new Noise.
func New(octaves int, persistence float64, seed int64) *Noise {
	n := &Noise{
		Octaves:     octaves,
		Persistence: persistence,
		Amplitudes:  make([]float64, octaves),
		Seed:        seed,
		OS:          opensimplex.NewNormalized(seed),
	}
	for i := range n.Amplitudes {
		n.Amplitudes[i] = math.Pow(persistence, float64(i))
	}
	return n
}

// Eval2 returns the combined noise value at the given point.
// Each octave doubles the frequency and halves the weight, so with
// three octaves the effective weights are 1, 0.5, and 0.25.
func (n *Noise) Eval2(x, y float64) float64 {
	var sum, sumOfAmplitudes float64
	for octave := 0; octave < n.Octaves; octave++ {
		frequency := float64(int(1) << octave)
		sum += n.Amplitudes[octave] * n.OS.Eval2(x*frequency, y*frequency)
		sumOfAmplitudes += n.Amplitudes[octave]
	}
	return sum / sumOfAmplitudes
}

// Eval2At evaluates the noise at the given frequency scale. This is
// handy when the caller works in canvas pixel coordinates instead of
// unit coordinates.
func (n *Noise) Eval2At(x, y, scale float64) float64 {
	return n.Eval2(x*scale, y*scale)
}
