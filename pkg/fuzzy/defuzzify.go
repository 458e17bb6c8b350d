/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: defuzzify.go
Description: Defuzzification methods for the Akaylee Fuzzy engine. Reduces an
aggregated output membership curve to one crisp number. Centroid is the default;
bisector and the three maximum-based methods are provided as alternatives. A curve
that is zero everywhere cannot be defuzzified and fails with NoActivationError.
*/

package fuzzy

// DefuzzMethod selects how an aggregated membership curve collapses to a
// crisp value
type DefuzzMethod string

const (
	// Centroid returns the weighted average of the universe samples, weighted
	// by membership degree
	Centroid DefuzzMethod = "centroid"

	// Bisector returns the sample where the accumulated membership first
	// reaches half of the total
	Bisector DefuzzMethod = "bisector"

	// MeanOfMaximum returns the mean of the samples at maximum membership
	MeanOfMaximum DefuzzMethod = "mom"

	// SmallestOfMaximum returns the smallest sample at maximum membership
	SmallestOfMaximum DefuzzMethod = "som"

	// LargestOfMaximum returns the largest sample at maximum membership
	LargestOfMaximum DefuzzMethod = "lom"
)

// maxEqualityEpsilon absorbs float noise when collecting the plateau of
// maximum membership for the maximum-based methods.
const maxEqualityEpsilon = 1e-12

// Defuzzify reduces an aggregated membership curve over a universe to one
// crisp value using the given method. The curve must have been sampled over
// the universe. An all-zero curve fails with NoActivationError; a method the
// engine does not know fails with ConfigError.
func Defuzzify(u *Universe, curve []float64, method DefuzzMethod) (float64, error) {
	if len(curve) != u.Len() {
		return 0, newConfigError("aggregated curve has %d samples, universe has %d", len(curve), u.Len())
	}

	var total float64
	for _, degree := range curve {
		total += degree
	}
	if total == 0 {
		return 0, &NoActivationError{}
	}

	switch method {
	case Centroid, "":
		var weighted float64
		for i, degree := range curve {
			weighted += u.At(i) * degree
		}
		return weighted / total, nil

	case Bisector:
		half := total / 2
		var accumulated float64
		for i, degree := range curve {
			accumulated += degree
			if accumulated >= half {
				return u.At(i), nil
			}
		}
		return u.Max(), nil

	case MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum:
		var peak float64
		for _, degree := range curve {
			if degree > peak {
				peak = degree
			}
		}
		var sum float64
		var count int
		smallest, largest := u.Max(), u.Min()
		for i, degree := range curve {
			if peak-degree <= maxEqualityEpsilon {
				x := u.At(i)
				sum += x
				count++
				if x < smallest {
					smallest = x
				}
				if x > largest {
					largest = x
				}
			}
		}
		switch method {
		case SmallestOfMaximum:
			return smallest, nil
		case LargestOfMaximum:
			return largest, nil
		default:
			return sum / float64(count), nil
		}

	default:
		return 0, newConfigError("unknown defuzzification method %q", method)
	}
}
