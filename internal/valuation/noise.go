package valuation

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultNoiseStdDev is the standard deviation of the multiplicative
// perturbation applied to every (year, market) value.
const DefaultNoiseStdDev = 0.02

// NoiseSource supplies the per-value perturbation. The engine applies
// (1 + Sample()) as a factor, so a sample of 0 means no perturbation.
type NoiseSource interface {
	Name() string
	Sample() float64
}

// Gaussian draws samples from a normal distribution with mean 0.
// Safe for concurrent sampling.
type Gaussian struct {
	mu     sync.Mutex
	rng    *rand.Rand
	stdDev float64
}

// NewGaussian returns an unseeded Gaussian source: two runs with identical
// inputs produce different (but statistically similar) results, matching the
// interactive tool's behavior.
func NewGaussian(stdDev float64) *Gaussian {
	return NewSeededGaussian(stdDev, time.Now().UnixNano())
}

// NewSeededGaussian returns a reproducible Gaussian source. Use this to make
// runs comparable across scenarios or repeatable in tests.
func NewSeededGaussian(stdDev float64, seed int64) *Gaussian {
	return &Gaussian{
		rng:    rand.New(rand.NewSource(seed)),
		stdDev: stdDev,
	}
}

func (g *Gaussian) Name() string { return "gaussian" }

func (g *Gaussian) Sample() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.NormFloat64() * g.stdDev
}

// None disables the perturbation entirely; every value is deterministic.
type None struct{}

func (None) Name() string    { return "none" }
func (None) Sample() float64 { return 0 }
