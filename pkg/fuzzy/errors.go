/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Typed errors for the Akaylee Fuzzy engine. Distinguishes configuration
errors (malformed shapes, dangling rule references), domain errors (inputs outside a
variable's universe), and no-activation errors (defuzzifying a silent rule base).
*/

package fuzzy

import (
	"fmt"
	"strings"
)

// ConfigError reports one or more problems found while building an inference
// configuration. The configuration is unusable until every issue is fixed.
type ConfigError struct {
	Issues []string
}

// Error returns a message listing every configuration issue
func (e *ConfigError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("fuzzy: invalid configuration: %s", e.Issues[0])
	}
	return fmt.Sprintf("fuzzy: invalid configuration (%d issues): %s",
		len(e.Issues), strings.Join(e.Issues, "; "))
}

// newConfigError creates a single-issue ConfigError
func newConfigError(format string, args ...interface{}) *ConfigError {
	return &ConfigError{Issues: []string{fmt.Sprintf(format, args...)}}
}

// DomainError reports a crisp input that the engine cannot accept: a value
// outside the variable's universe, a missing input for an antecedent variable,
// or an input keyed by a name the configuration does not know.
type DomainError struct {
	Variable string
	Value    float64
	Min      float64
	Max      float64
	Reason   DomainErrorReason
}

// DomainErrorReason classifies why an input was rejected
type DomainErrorReason int

const (
	// ReasonOutOfRange indicates the value lies outside the universe bounds
	ReasonOutOfRange DomainErrorReason = iota

	// ReasonMissingInput indicates no value was supplied for an antecedent variable
	ReasonMissingInput

	// ReasonUnknownVariable indicates the input names a variable the configuration lacks
	ReasonUnknownVariable

	// ReasonNotAntecedent indicates the input targets a consequent variable
	ReasonNotAntecedent
)

// Error returns a message naming the offending variable and input
func (e *DomainError) Error() string {
	switch e.Reason {
	case ReasonMissingInput:
		return fmt.Sprintf("fuzzy: no input supplied for antecedent variable %q", e.Variable)
	case ReasonUnknownVariable:
		return fmt.Sprintf("fuzzy: input names unknown variable %q", e.Variable)
	case ReasonNotAntecedent:
		return fmt.Sprintf("fuzzy: variable %q is a consequent and cannot receive an input", e.Variable)
	default:
		return fmt.Sprintf("fuzzy: input %g for variable %q is outside its universe [%g, %g]",
			e.Value, e.Variable, e.Min, e.Max)
	}
}

// NoActivationError reports that every rule targeting a consequent variable
// fired at zero strength, leaving nothing to defuzzify. Callers can recover
// with an explicit fallback; see WithMidpointFallback.
type NoActivationError struct {
	Variable string
}

// Error returns a message naming the silent consequent variable
func (e *NoActivationError) Error() string {
	if e.Variable == "" {
		return "fuzzy: aggregated membership is zero everywhere, nothing to defuzzify"
	}
	return fmt.Sprintf("fuzzy: no rule fired for consequent variable %q, aggregated membership is zero everywhere", e.Variable)
}
