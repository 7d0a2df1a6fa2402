package terrain

import (
	"math"
	"math/rand"

	"github.com/calvras/genrealmvoronoi/noise"
)

const (
	// falloffPower shapes the elevation curve so the continent edges
	// fade into ocean instead of dropping off a cliff.
	falloffPower = 1.6

	// borderFadeFraction is the share of the canvas near the border
	// where elevation is forced down to zero.
	borderFadeFraction = 0.08

	// noiseFrequency converts canvas coordinates into noise space.
	noiseFrequency = 3.0
)

// lobe is a single peninsula jutting out of the continent mask.
type lobe struct {
	angle    float64 // direction of the peninsula from the mask center
	strength float64 // how far it extends the landmass
	width    float64 // angular width of the peninsula
}

// continentMask describes the randomly shaped landmass outline: an
// anisotropic, rotated radial field with one to four peninsula lobes.
type continentMask struct {
	centerX, centerY float64 // mask center on the canvas
	scaleX, scaleY   float64 // anisotropic stretch
	rotation         float64
	lobes            []lobe
	radius           float64 // base radius of the landmass
}

func newContinentMask(rng *rand.Rand, width, height float64) *continentMask {
	mask := &continentMask{
		centerX:  width/2 + (rng.Float64()-0.5)*width*0.2,
		centerY:  height/2 + (rng.Float64()-0.5)*height*0.2,
		scaleX:   0.8 + rng.Float64()*0.4,
		scaleY:   0.8 + rng.Float64()*0.4,
		rotation: rng.Float64() * 2 * math.Pi,
		radius:   math.Min(width, height) * 0.42,
	}
	numLobes := 1 + rng.Intn(4)
	for i := 0; i < numLobes; i++ {
		mask.lobes = append(mask.lobes, lobe{
			angle:    rng.Float64() * 2 * math.Pi,
			strength: 0.15 + rng.Float64()*0.3,
			width:    0.3 + rng.Float64()*0.5,
		})
	}
	return mask
}

// distance returns the normalized radial distance of the point from the
// mask center, adjusted for anisotropy, rotation, and peninsula lobes.
// A value below 1 is inside the landmass outline.
func (cm *continentMask) distance(x, y float64) float64 {
	dx := x - cm.centerX
	dy := y - cm.centerY

	// Rotate into mask space and apply the anisotropic stretch.
	cos, sin := math.Cos(-cm.rotation), math.Sin(-cm.rotation)
	rx := (dx*cos - dy*sin) * cm.scaleX
	ry := (dx*sin + dy*cos) * cm.scaleY

	r := math.Hypot(rx, ry) / cm.radius

	// Peninsulas pull the outline outward along their direction.
	angle := math.Atan2(ry, rx)
	for _, l := range cm.lobes {
		diff := angleDiff(angle, l.angle)
		r *= 1 - l.strength*math.Exp(-(diff*diff)/(l.width*l.width))
	}
	return r
}

func angleDiff(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	} else if d < -math.Pi {
		d += 2 * math.Pi
	}
	return d
}

// Field computes the scalar elevation for any point on the canvas.
// It is a pure function of the seed-derived mask and noise, so the
// classifier can evaluate it per cell without cross-cell dependencies.
type Field struct {
	mask   *continentMask
	noise  *noise.Noise
	width  float64
	height float64
}

func newField(rng *rand.Rand, seed int64, width, height float64) *Field {
	return &Field{
		mask:   newContinentMask(rng, width, height),
		noise:  noise.New(3, 0.5, seed),
		width:  width,
		height: height,
	}
}

// ElevationAt returns the elevation at the given point in [0, 1].
func (f *Field) ElevationAt(x, y float64) float64 {
	base := 1 - f.mask.distance(x, y)
	if base < 0 {
		base = 0
	}

	n := f.noise.Eval2At(x/f.width, y/f.height, noiseFrequency)
	elev := base * (0.55 + 0.45*n)

	// Falloff power curve: edges fade to ocean.
	elev = math.Pow(clamp01(elev), falloffPower)

	// Force the canvas border down to sea so no landmass touches it.
	return elev * f.borderFade(x, y)
}

func (f *Field) borderFade(x, y float64) float64 {
	fadeX := f.width * borderFadeFraction
	fadeY := f.height * borderFadeFraction
	fx := math.Min(x, f.width-x) / fadeX
	fy := math.Min(y, f.height-y) / fadeY
	return clamp01(math.Min(fx, fy))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
