/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: system.go
Description: Immutable inference configuration for the Akaylee Fuzzy engine. A System
owns linguistic variables and rules, validates every cross-reference at build time,
and serves arbitrarily many concurrent compute calls without locking. Behavior knobs
(input policy, defuzzification method, fallback, logging) are functional options fixed
at construction.
*/

package fuzzy

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// InputPolicy decides what happens to crisp inputs outside a variable's
// universe bounds
type InputPolicy int

const (
	// RejectOutOfRange fails the compute call with a DomainError (default)
	RejectOutOfRange InputPolicy = iota

	// ClampToUniverse limits the input to the universe bounds and proceeds
	ClampToUniverse
)

// Option configures a System at construction time
type Option func(*System)

// WithName names the system; the name appears in logs, traces, and reports
func WithName(name string) Option {
	return func(s *System) {
		s.name = name
	}
}

// WithClampedInputs makes the system clamp out-of-domain inputs to the
// universe bounds instead of rejecting them. The policy applies uniformly to
// every compute call.
func WithClampedInputs() Option {
	return func(s *System) {
		s.inputPolicy = ClampToUniverse
	}
}

// WithMidpointFallback makes defuzzification fall back to the universe
// midpoint when no rule fired for a consequent variable, instead of failing
// with NoActivationError. Traces record which outputs used the fallback.
func WithMidpointFallback() Option {
	return func(s *System) {
		s.midpointFallback = true
	}
}

// WithDefuzzifier overrides the default centroid defuzzification method
func WithDefuzzifier(method DefuzzMethod) Option {
	return func(s *System) {
		s.method = method
	}
}

// WithLogger attaches a logrus logger; compute and validation details are
// logged at debug level
func WithLogger(logger *logrus.Logger) Option {
	return func(s *System) {
		s.logger = logger
	}
}

// System is an immutable Mamdani inference configuration: linguistic
// variables plus a rule base. Construct it once with NewSystem and share it
// freely; Compute allocates per-call buffers and never mutates the system.
type System struct {
	name             string
	variables        map[string]*Variable
	order            []string
	rules            []*Rule
	inputPolicy      InputPolicy
	midpointFallback bool
	method           DefuzzMethod
	logger           *logrus.Logger
}

// NewSystem assembles and validates an inference configuration. Every rule
// reference is checked against the declared variables and labels; all
// violations are collected into a single ConfigError so a broken
// configuration can be fixed in one pass.
func NewSystem(variables []*Variable, rules []*Rule, opts ...Option) (*System, error) {
	s := &System{
		name:      "fuzzy-system",
		variables: make(map[string]*Variable, len(variables)),
		method:    Centroid,
	}
	for _, opt := range opts {
		opt(s)
	}

	var issues []string

	if len(variables) == 0 {
		issues = append(issues, "system needs at least one variable")
	}
	if len(rules) == 0 {
		issues = append(issues, "system needs at least one rule")
	}

	for _, v := range variables {
		if v.Name() == "" {
			issues = append(issues, "variable name must not be empty")
			continue
		}
		if _, exists := s.variables[v.Name()]; exists {
			issues = append(issues, fmt.Sprintf("duplicate variable name %q", v.Name()))
			continue
		}
		if len(v.Labels()) == 0 {
			issues = append(issues, fmt.Sprintf("variable %q declares no terms", v.Name()))
		}
		s.variables[v.Name()] = v
		s.order = append(s.order, v.Name())
	}

	for i, r := range rules {
		issues = append(issues, s.validateRule(i, r)...)
	}

	switch s.method {
	case Centroid, Bisector, MeanOfMaximum, SmallestOfMaximum, LargestOfMaximum:
	default:
		issues = append(issues, fmt.Sprintf("unknown defuzzification method %q", s.method))
	}

	if len(issues) > 0 {
		return nil, &ConfigError{Issues: issues}
	}

	s.rules = make([]*Rule, len(rules))
	copy(s.rules, rules)

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{
			"system":    s.name,
			"variables": len(s.variables),
			"rules":     len(s.rules),
			"method":    s.method,
		}).Debug("Fuzzy system validated")
	}

	return s, nil
}

// validateRule checks one rule's weight and every term reference
func (s *System) validateRule(index int, r *Rule) []string {
	var issues []string
	name := ruleName(index, r)

	if r.antecedent == nil {
		issues = append(issues, fmt.Sprintf("%s has no antecedent", name))
		return issues
	}
	if r.weight <= 0 || r.weight > 1 {
		issues = append(issues, fmt.Sprintf("%s weight %g is outside (0, 1]", name, r.weight))
	}

	refs := r.References()
	if len(refs) == 0 {
		issues = append(issues, fmt.Sprintf("%s antecedent references no terms", name))
	}
	for _, ref := range refs {
		v, ok := s.variables[ref.Variable]
		if !ok {
			issues = append(issues, fmt.Sprintf("%s references unknown variable %q", name, ref.Variable))
			continue
		}
		if v.Role() != Antecedent {
			issues = append(issues, fmt.Sprintf("%s uses consequent variable %q in its antecedent", name, ref.Variable))
		}
		if _, ok := v.Term(ref.Label); !ok {
			issues = append(issues, fmt.Sprintf("%s references unknown term %q of variable %q", name, ref.Label, ref.Variable))
		}
	}

	cons := r.Consequent()
	v, ok := s.variables[cons.Variable]
	switch {
	case !ok:
		issues = append(issues, fmt.Sprintf("%s targets unknown variable %q", name, cons.Variable))
	case v.Role() != Consequent:
		issues = append(issues, fmt.Sprintf("%s targets antecedent variable %q", name, cons.Variable))
	default:
		if _, ok := v.Term(cons.Label); !ok {
			issues = append(issues, fmt.Sprintf("%s targets unknown term %q of variable %q", name, cons.Label, cons.Variable))
		}
	}

	return issues
}

// ruleName returns the rule's label, or a positional name for unlabeled rules
func ruleName(index int, r *Rule) string {
	if r.label != "" {
		return fmt.Sprintf("rule %q", r.label)
	}
	return fmt.Sprintf("rule %d", index+1)
}

// Name returns the system name
func (s *System) Name() string {
	return s.name
}

// Variables returns the variables in declaration order
func (s *System) Variables() []*Variable {
	out := make([]*Variable, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.variables[name])
	}
	return out
}

// Variable looks up a variable by name
func (s *System) Variable(name string) (*Variable, bool) {
	v, ok := s.variables[name]
	return v, ok
}

// Rules returns the rule base in declaration order
func (s *System) Rules() []*Rule {
	out := make([]*Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// InputPolicy returns the out-of-domain input policy
func (s *System) InputPolicy() InputPolicy {
	return s.inputPolicy
}

// Method returns the configured defuzzification method
func (s *System) Method() DefuzzMethod {
	return s.method
}

// antecedents returns the antecedent variables in declaration order
func (s *System) antecedents() []*Variable {
	var out []*Variable
	for _, name := range s.order {
		if v := s.variables[name]; v.Role() == Antecedent {
			out = append(out, v)
		}
	}
	return out
}

// consequents returns the consequent variables in declaration order
func (s *System) consequents() []*Variable {
	var out []*Variable
	for _, name := range s.order {
		if v := s.variables[name]; v.Role() == Consequent {
			out = append(out, v)
		}
	}
	return out
}
