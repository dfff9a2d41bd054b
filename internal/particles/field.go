package particles

import (
	"math"
	"math/rand"

	"github.com/san-kum/routeviz/internal/viewport"
)

const (
	DefaultAreaPerParticle = 15000.0
	DefaultMaxSpeed        = 0.25
	DefaultPulseStep       = 0.02
)

type Particle struct {
	X, Y    float64
	VX, VY  float64
	Radius  float64
	Opacity float64
	Phase   float64
}

// Pulse is the brightness factor in [0.6, 1.0] derived from the phase.
func (p Particle) Pulse() float64 {
	return math.Sin(p.Phase)*0.2 + 0.8
}

type Params struct {
	AreaPerParticle float64
	MaxSpeed        float64
	RadiusMin       float64
	RadiusMax       float64
	OpacityMin      float64
	OpacityMax      float64
	PulseStep       float64
}

func DefaultParams() Params {
	return Params{
		AreaPerParticle: DefaultAreaPerParticle,
		MaxSpeed:        DefaultMaxSpeed,
		RadiusMin:       1,
		RadiusMax:       3,
		OpacityMin:      0.3,
		OpacityMax:      0.8,
		PulseStep:       DefaultPulseStep,
	}
}

// Count returns how many particles a viewport of the given area holds.
func (p Params) Count(area int) int {
	if area <= 0 || p.AreaPerParticle <= 0 {
		return 0
	}
	return int(math.Floor(float64(area) / p.AreaPerParticle))
}

// Field owns one particle set bound to the viewport it was seeded against.
type Field struct {
	params    Params
	rng       *rand.Rand
	particles []Particle
	width     float64
	height    float64
	seededGen uint64
	seeded    bool
}

func NewField(params Params, seed int64) *Field {
	return &Field{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Initialize discards the current set and seeds a new one for vp.
func (f *Field) Initialize(vp viewport.Viewport) {
	f.width = float64(vp.Width)
	f.height = float64(vp.Height)
	f.seededGen = vp.Generation
	f.seeded = true

	if vp.Empty() {
		f.particles = nil
		return
	}

	n := f.params.Count(vp.Area())
	f.particles = make([]Particle, n)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:       f.rng.Float64() * f.width,
			Y:       f.rng.Float64() * f.height,
			VX:      f.uniform(-f.params.MaxSpeed, f.params.MaxSpeed),
			VY:      f.uniform(-f.params.MaxSpeed, f.params.MaxSpeed),
			Radius:  f.uniform(f.params.RadiusMin, f.params.RadiusMax),
			Opacity: f.uniform(f.params.OpacityMin, f.params.OpacityMax),
			Phase:   f.rng.Float64() * 2 * math.Pi,
		}
	}
}

func (f *Field) uniform(lo, hi float64) float64 {
	return lo + f.rng.Float64()*(hi-lo)
}

// Sync reseeds the field when vp was committed after the current set was
// seeded. It reports whether a reseed happened.
func (f *Field) Sync(vp viewport.Viewport) bool {
	if f.seeded && vp.Generation == f.seededGen {
		return false
	}
	f.Initialize(vp)
	return true
}

// Advance moves every particle by one tick with edge reflection.
func (f *Field) Advance() {
	for i := range f.particles {
		p := &f.particles[i]
		p.X += p.VX
		p.Y += p.VY

		if p.X < 0 || p.X > f.width {
			p.VX = -p.VX
			p.X = clamp(p.X, 0, f.width)
		}
		if p.Y < 0 || p.Y > f.height {
			p.VY = -p.VY
			p.Y = clamp(p.Y, 0, f.height)
		}

		p.Phase += f.params.PulseStep
	}
}

// Step syncs against vp and then advances one tick.
func (f *Field) Step(vp viewport.Viewport) {
	f.Sync(vp)
	f.Advance()
}

func (f *Field) Len() int { return len(f.particles) }

// Particles returns a copy of the current set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Bounds returns the extent the current set was seeded against.
func (f *Field) Bounds() (w, h float64) { return f.width, f.height }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
