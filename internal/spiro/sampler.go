package spiro

import (
	"math/rand/v2"

	"github.com/iburimskiy/spirograph/internal/errors"
)

const (
	minOuterRadius = 50
	minInnerRadius = 10
	minHoleRatio   = 0.1
	maxHoleRatio   = 0.9

	// MinCanvasSide is the smallest width or height the sampler accepts.
	MinCanvasSide = 2 * minOuterRadius
)

// Sampler draws random curve parameters that fit a canvas.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler backed by rng.
func NewSampler(rng *rand.Rand) *Sampler {
	return &Sampler{rng: rng}
}

// NewSeededSampler returns a sampler whose sequence is fixed by seed.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Sample returns parameters for a curve on a width×height canvas. The outer
// radius fits half the shorter side and the centre lies anywhere on the
// canvas.
func (s *Sampler) Sample(width, height int) (Params, error) {
	if width < MinCanvasSide || height < MinCanvasSide {
		return Params{}, errors.New(errors.ErrCodeDegenerateCanvas,
			"canvas %dx%d is too small, both sides must be at least %d", width, height, MinCanvasSide)
	}

	R := s.intIn(minOuterRadius, min(width, height)/2)
	r := s.intIn(minInnerRadius, 9*R/10)
	l := minHoleRatio + (maxHoleRatio-minHoleRatio)*s.rng.Float64()
	center := Pt(
		float64(s.intIn(floorHalfNeg(width), width/2)),
		float64(s.intIn(floorHalfNeg(height), height/2)),
	)
	col := RGB{R: s.rng.Float64(), G: s.rng.Float64(), B: s.rng.Float64()}

	return NewParams(R, r, l, center, col)
}

// intIn returns a uniform integer in [lo, hi].
func (s *Sampler) intIn(lo, hi int) int {
	return lo + s.rng.IntN(hi-lo+1)
}

// floorHalfNeg is ⌊-n/2⌋.
func floorHalfNeg(n int) int {
	return -((n + 1) / 2)
}
