/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: simulation.go
Description: Compute path for the Akaylee Fuzzy engine. One invocation fuzzifies the
crisp inputs, fires every rule, clips each rule's consequent curve (Mamdani min
implication), aggregates activations per consequent variable with pointwise max, and
defuzzifies. The crisp outputs and the diagnostic trace come from the same
intermediates, so there is exactly one inference code path.
*/

package fuzzy

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RuleActivation records how one rule responded to a set of inputs
type RuleActivation struct {
	// Rule is the rule's label, or its positional name for unlabeled rules
	Rule string `json:"rule"`

	// Expression is the rendered rule text
	Expression string `json:"expression"`

	// Consequent is the term the rule targets
	Consequent TermRef `json:"consequent"`

	// FiringStrength is weight times the antecedent truth degree
	FiringStrength float64 `json:"firing_strength"`

	// Activation is the consequent curve clipped at the firing strength,
	// sampled over the consequent variable's universe
	Activation []float64 `json:"activation"`
}

// Trace is the full diagnostic record of one compute invocation: everything a
// visualization collaborator needs to render memberships, rule activations,
// and the aggregated output profile. It is owned exclusively by the caller.
type Trace struct {
	ID     string `json:"id"`
	System string `json:"system"`

	// Inputs are the crisp inputs after the domain policy was applied
	Inputs map[string]float64 `json:"inputs"`

	// Fuzzified maps antecedent variable -> label -> degree
	Fuzzified map[string]map[string]float64 `json:"fuzzified"`

	// Activations lists every rule's response in rule-base order
	Activations []RuleActivation `json:"activations"`

	// Aggregated maps consequent variable -> pointwise-max membership curve
	Aggregated map[string][]float64 `json:"aggregated"`

	// Outputs are the defuzzified crisp values per consequent variable
	Outputs map[string]float64 `json:"outputs"`

	// FallbackOutputs names the consequent variables whose output came from
	// the midpoint fallback because no rule fired for them
	FallbackOutputs []string `json:"fallback_outputs,omitempty"`

	ComputedAt time.Time     `json:"computed_at"`
	Duration   time.Duration `json:"duration"`
}

// Compute runs one inference over the given crisp inputs (variable name to
// value, one entry per antecedent variable) and returns the crisp output per
// consequent variable. The call is a pure function of (system, inputs).
func (s *System) Compute(inputs map[string]float64) (map[string]float64, error) {
	trace, err := s.ComputeWithTrace(inputs)
	if err != nil {
		return nil, err
	}
	return trace.Outputs, nil
}

// ComputeWithTrace runs one inference and returns the crisp outputs together
// with every intermediate: fuzzified degrees, per-rule firing strengths and
// activation curves, and the aggregated curve per consequent variable.
func (s *System) ComputeWithTrace(inputs map[string]float64) (*Trace, error) {
	start := time.Now()

	resolved, err := s.resolveInputs(inputs)
	if err != nil {
		return nil, err
	}

	// Fuzzification: per-variable label memberships.
	fuzzified := make(degrees, len(resolved))
	for name, value := range resolved {
		fuzzified[name] = s.variables[name].Fuzzify(value)
	}

	// Rule evaluation, implication, and aggregation.
	aggregated := make(map[string][]float64)
	for _, v := range s.consequents() {
		aggregated[v.Name()] = make([]float64, v.Universe().Len())
	}
	activations := make([]RuleActivation, 0, len(s.rules))
	for i, r := range s.rules {
		strength := r.fire(fuzzified)
		cons := r.Consequent()
		curve := s.variables[cons.Variable].termCurve(cons.Label)

		clipped := make([]float64, len(curve))
		agg := aggregated[cons.Variable]
		for j, degree := range curve {
			clipped[j] = min64(strength, degree)
			if clipped[j] > agg[j] {
				agg[j] = clipped[j]
			}
		}

		activations = append(activations, RuleActivation{
			Rule:           ruleName(i, r),
			Expression:     r.String(),
			Consequent:     cons,
			FiringStrength: strength,
			Activation:     clipped,
		})
	}

	// Defuzzification per consequent variable.
	outputs := make(map[string]float64, len(aggregated))
	var fallbacks []string
	for _, v := range s.consequents() {
		value, err := Defuzzify(v.Universe(), aggregated[v.Name()], s.method)
		if err != nil {
			var noAct *NoActivationError
			if errors.As(err, &noAct) {
				if s.midpointFallback {
					outputs[v.Name()] = v.Universe().Midpoint()
					fallbacks = append(fallbacks, v.Name())
					continue
				}
				return nil, &NoActivationError{Variable: v.Name()}
			}
			return nil, err
		}
		outputs[v.Name()] = value
	}

	trace := &Trace{
		ID:              uuid.New().String(),
		System:          s.name,
		Inputs:          resolved,
		Fuzzified:       mapDegrees(fuzzified),
		Activations:     activations,
		Aggregated:      aggregated,
		Outputs:         outputs,
		FallbackOutputs: fallbacks,
		ComputedAt:      start.UTC(),
		Duration:        time.Since(start),
	}

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"system":   s.name,
			"trace_id": trace.ID,
			"outputs":  outputs,
			"duration": trace.Duration,
		}).Debug("Fuzzy inference computed")
	}

	return trace, nil
}

// resolveInputs validates the input map against the configuration and applies
// the out-of-domain policy. It returns a fresh map owned by the invocation.
func (s *System) resolveInputs(inputs map[string]float64) (map[string]float64, error) {
	for name := range inputs {
		v, ok := s.variables[name]
		if !ok {
			return nil, &DomainError{Variable: name, Reason: ReasonUnknownVariable}
		}
		if v.Role() != Antecedent {
			return nil, &DomainError{Variable: name, Reason: ReasonNotAntecedent}
		}
	}

	resolved := make(map[string]float64, len(inputs))
	for _, v := range s.antecedents() {
		value, ok := inputs[v.Name()]
		if !ok {
			return nil, &DomainError{Variable: v.Name(), Reason: ReasonMissingInput}
		}
		u := v.Universe()
		if !u.Contains(value) {
			if s.inputPolicy == RejectOutOfRange {
				return nil, &DomainError{
					Variable: v.Name(),
					Value:    value,
					Min:      u.Min(),
					Max:      u.Max(),
					Reason:   ReasonOutOfRange,
				}
			}
			clamped := u.Clamp(value)
			if s.logger != nil {
				s.logger.WithFields(logrus.Fields{
					"system":   s.name,
					"variable": v.Name(),
					"value":    value,
					"clamped":  clamped,
				}).Debug("Input clamped to universe bounds")
			}
			value = clamped
		}
		resolved[v.Name()] = value
	}
	return resolved, nil
}

// mapDegrees copies the internal degrees table into the exported trace shape
func mapDegrees(d degrees) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(d))
	for variable, labels := range d {
		m := make(map[string]float64, len(labels))
		for label, degree := range labels {
			m[label] = degree
		}
		out[variable] = m
	}
	return out
}

// min64 returns the smaller of two float64 values
func min64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
