/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: universe.go
Description: Discretized universe of discourse for the Akaylee Fuzzy engine. Every
membership function of one variable is sampled over the same universe, and all inference
(activation clipping, aggregation, defuzzification) operates on these samples.
*/

package fuzzy

import (
	"math"
	"sort"
)

// Universe is an ordered, strictly increasing discretization of a continuous
// numeric range. It is immutable after construction and safe to share across
// variables and concurrent compute calls.
type Universe struct {
	samples []float64
}

// NewUniverse creates a universe from explicit sample points.
// Samples must be finite, non-empty, and strictly increasing.
func NewUniverse(samples []float64) (*Universe, error) {
	if len(samples) == 0 {
		return nil, newConfigError("universe must contain at least one sample")
	}
	for i, x := range samples {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, newConfigError("universe sample %d is not finite", i)
		}
		if i > 0 && x <= samples[i-1] {
			return nil, newConfigError("universe samples must be strictly increasing: sample %d (%g) <= sample %d (%g)",
				i, x, i-1, samples[i-1])
		}
	}
	s := make([]float64, len(samples))
	copy(s, samples)
	return &Universe{samples: s}, nil
}

// NewRangeUniverse creates an evenly sampled universe covering [min, max]
// with the given step. Both endpoints are included when the step divides the
// range evenly, matching the usual unit-step discretization of a bounded scale.
func NewRangeUniverse(min, max, step float64) (*Universe, error) {
	if step <= 0 {
		return nil, newConfigError("universe step must be positive, got %g", step)
	}
	if max <= min {
		return nil, newConfigError("universe range [%g, %g] is empty", min, max)
	}
	var samples []float64
	for i := 0; ; i++ {
		x := min + float64(i)*step
		if x > max+step*1e-9 {
			break
		}
		samples = append(samples, math.Min(x, max))
	}
	return NewUniverse(samples)
}

// Len returns the number of samples
func (u *Universe) Len() int {
	return len(u.samples)
}

// Min returns the lower bound of the universe
func (u *Universe) Min() float64 {
	return u.samples[0]
}

// Max returns the upper bound of the universe
func (u *Universe) Max() float64 {
	return u.samples[len(u.samples)-1]
}

// Midpoint returns the midpoint of the universe bounds, used as the
// defuzzification fallback for silent rule bases
func (u *Universe) Midpoint() float64 {
	return (u.Min() + u.Max()) / 2
}

// At returns the sample at index i
func (u *Universe) At(i int) float64 {
	return u.samples[i]
}

// Samples returns a copy of the sample points
func (u *Universe) Samples() []float64 {
	s := make([]float64, len(u.samples))
	copy(s, u.samples)
	return s
}

// Contains reports whether value lies within the universe bounds (inclusive)
func (u *Universe) Contains(value float64) bool {
	return value >= u.Min() && value <= u.Max()
}

// Clamp returns value limited to the universe bounds
func (u *Universe) Clamp(value float64) float64 {
	return math.Max(u.Min(), math.Min(u.Max(), value))
}

// InterpolatedMembership evaluates a discretized membership curve at an
// arbitrary crisp value by linear interpolation between the two bracketing
// samples. Values outside the universe bounds clamp to the boundary sample's
// degree; the curve is never extrapolated. The curve must have been sampled
// over this universe.
func (u *Universe) InterpolatedMembership(curve []float64, value float64) float64 {
	if value <= u.Min() {
		return curve[0]
	}
	if value >= u.Max() {
		return curve[len(curve)-1]
	}
	// Index of the first sample >= value.
	hi := sort.SearchFloat64s(u.samples, value)
	if u.samples[hi] == value {
		return curve[hi]
	}
	lo := hi - 1
	t := (value - u.samples[lo]) / (u.samples[hi] - u.samples[lo])
	return curve[lo] + t*(curve[hi]-curve[lo])
}
