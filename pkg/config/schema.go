/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: schema.go
Description: Declarative schema for Akaylee Fuzzy system definitions. Mirrors the shape
of YAML/JSON config files: variables with universes and labeled terms, rules as
structured antecedent trees, and top-level engine options. Loaded through viper and
compiled into an immutable fuzzy.System.
*/

package config

// SystemSpec is the root of a declarative system definition
type SystemSpec struct {
	Name             string         `mapstructure:"name"`
	ClampInputs      bool           `mapstructure:"clamp_inputs"`
	MidpointFallback bool           `mapstructure:"midpoint_fallback"`
	Defuzzifier      string         `mapstructure:"defuzzifier"`
	Variables        []VariableSpec `mapstructure:"variables"`
	Rules            []RuleSpec     `mapstructure:"rules"`
}

// VariableSpec declares one linguistic variable
type VariableSpec struct {
	Name     string       `mapstructure:"name"`
	Role     string       `mapstructure:"role"` // "antecedent" or "consequent"
	Universe UniverseSpec `mapstructure:"universe"`
	Terms    []TermSpec   `mapstructure:"terms"`
}

// UniverseSpec declares a universe either as an evenly sampled range or as
// explicit sample points. Exactly one form must be used.
type UniverseSpec struct {
	Min     float64   `mapstructure:"min"`
	Max     float64   `mapstructure:"max"`
	Step    float64   `mapstructure:"step"`
	Samples []float64 `mapstructure:"samples"`
}

// TermSpec declares one labeled membership function
type TermSpec struct {
	Label  string    `mapstructure:"label"`
	Shape  string    `mapstructure:"shape"` // "triangular" or "trapezoidal"
	Params []float64 `mapstructure:"params"`
}

// RuleSpec declares one rule: a structured antecedent tree, a consequent
// reference, and an optional weight (default 1) and label
type RuleSpec struct {
	Label      string      `mapstructure:"label"`
	Antecedent ExprSpec    `mapstructure:"antecedent"`
	Consequent TermRefSpec `mapstructure:"consequent"`
	Weight     float64     `mapstructure:"weight"`
}

// ExprSpec is one node of an antecedent tree. Exactly one of the fields must
// be set: a leaf term reference, or an and/or/not combinator over child nodes.
type ExprSpec struct {
	Term *TermRefSpec `mapstructure:"term"`
	And  []ExprSpec   `mapstructure:"and"`
	Or   []ExprSpec   `mapstructure:"or"`
	Not  *ExprSpec    `mapstructure:"not"`
}

// TermRefSpec references a labeled term of a named variable
type TermRefSpec struct {
	Variable string `mapstructure:"variable"`
	Label    string `mapstructure:"label"`
}
