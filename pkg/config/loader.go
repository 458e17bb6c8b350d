/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: loader.go
Description: Loads declarative system definitions for Akaylee Fuzzy. Reads YAML/JSON
files through viper, unmarshals them into the schema types, and compiles the schema
into a validated fuzzy.System. Schema-level mistakes surface as fuzzy.ConfigError with
enough context to fix the file.
*/

package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-fuzzy/pkg/fuzzy"
)

// Load reads a system definition file and compiles it into a fuzzy.System
func Load(path string) (*fuzzy.System, error) {
	spec, err := LoadSpec(path)
	if err != nil {
		return nil, err
	}
	return Compile(spec, nil)
}

// LoadSpec reads and unmarshals a system definition file without compiling it
func LoadSpec(path string) (*SystemSpec, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read system definition %s: %w", path, err)
	}

	var spec SystemSpec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, fmt.Errorf("failed to parse system definition %s: %w", path, err)
	}
	return &spec, nil
}

// Compile builds a validated fuzzy.System from a schema. The optional logger
// is attached to the system for compute-time debug logging.
func Compile(spec *SystemSpec, logger *logrus.Logger) (*fuzzy.System, error) {
	var variables []*fuzzy.Variable
	for _, vs := range spec.Variables {
		v, err := compileVariable(vs)
		if err != nil {
			return nil, err
		}
		variables = append(variables, v)
	}

	var rules []*fuzzy.Rule
	for i, rs := range spec.Rules {
		r, err := compileRule(i, rs)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	opts := []fuzzy.Option{}
	if spec.Name != "" {
		opts = append(opts, fuzzy.WithName(spec.Name))
	}
	if spec.ClampInputs {
		opts = append(opts, fuzzy.WithClampedInputs())
	}
	if spec.MidpointFallback {
		opts = append(opts, fuzzy.WithMidpointFallback())
	}
	if spec.Defuzzifier != "" {
		opts = append(opts, fuzzy.WithDefuzzifier(fuzzy.DefuzzMethod(spec.Defuzzifier)))
	}
	if logger != nil {
		opts = append(opts, fuzzy.WithLogger(logger))
	}

	return fuzzy.NewSystem(variables, rules, opts...)
}

// compileVariable builds one linguistic variable from its schema
func compileVariable(vs VariableSpec) (*fuzzy.Variable, error) {
	universe, err := compileUniverse(vs)
	if err != nil {
		return nil, err
	}

	var v *fuzzy.Variable
	switch vs.Role {
	case "antecedent", "input":
		v = fuzzy.NewAntecedent(vs.Name, universe)
	case "consequent", "output":
		v = fuzzy.NewConsequent(vs.Name, universe)
	default:
		return nil, &fuzzy.ConfigError{Issues: []string{
			fmt.Sprintf("variable %q: role must be \"antecedent\" or \"consequent\", got %q", vs.Name, vs.Role),
		}}
	}

	for _, ts := range vs.Terms {
		f, err := compileTerm(vs.Name, ts)
		if err != nil {
			return nil, err
		}
		if err := v.AddTerm(ts.Label, f); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// compileUniverse builds a universe from either the range or the samples form
func compileUniverse(vs VariableSpec) (*fuzzy.Universe, error) {
	us := vs.Universe
	if len(us.Samples) > 0 {
		if us.Step != 0 || us.Min != 0 || us.Max != 0 {
			return nil, &fuzzy.ConfigError{Issues: []string{
				fmt.Sprintf("variable %q: universe declares both samples and a range", vs.Name),
			}}
		}
		return fuzzy.NewUniverse(us.Samples)
	}
	step := us.Step
	if step == 0 {
		step = 1
	}
	u, err := fuzzy.NewRangeUniverse(us.Min, us.Max, step)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", vs.Name, err)
	}
	return u, nil
}

// compileTerm builds one membership function from its schema
func compileTerm(variable string, ts TermSpec) (fuzzy.MembershipFunction, error) {
	switch ts.Shape {
	case "triangular", "tri":
		if len(ts.Params) != 3 {
			return fuzzy.MembershipFunction{}, &fuzzy.ConfigError{Issues: []string{
				fmt.Sprintf("variable %q term %q: triangular shape needs 3 params, got %d", variable, ts.Label, len(ts.Params)),
			}}
		}
		return fuzzy.NewTriangular(ts.Params[0], ts.Params[1], ts.Params[2])
	case "trapezoidal", "trap":
		if len(ts.Params) != 4 {
			return fuzzy.MembershipFunction{}, &fuzzy.ConfigError{Issues: []string{
				fmt.Sprintf("variable %q term %q: trapezoidal shape needs 4 params, got %d", variable, ts.Label, len(ts.Params)),
			}}
		}
		return fuzzy.NewTrapezoidal(ts.Params[0], ts.Params[1], ts.Params[2], ts.Params[3])
	default:
		return fuzzy.MembershipFunction{}, &fuzzy.ConfigError{Issues: []string{
			fmt.Sprintf("variable %q term %q: unknown shape %q", variable, ts.Label, ts.Shape),
		}}
	}
}

// compileRule builds one rule from its schema
func compileRule(index int, rs RuleSpec) (*fuzzy.Rule, error) {
	antecedent, err := compileExpr(index, rs.Antecedent)
	if err != nil {
		return nil, err
	}

	rule := fuzzy.NewRule(antecedent, rs.Consequent.Variable, rs.Consequent.Label)
	if rs.Weight != 0 {
		rule = rule.WithWeight(rs.Weight)
	}
	if rs.Label != "" {
		rule = rule.WithLabel(rs.Label)
	}
	return rule, nil
}

// compileExpr recursively builds an antecedent tree. Each node must set
// exactly one of term/and/or/not.
func compileExpr(ruleIndex int, es ExprSpec) (fuzzy.Expr, error) {
	set := 0
	if es.Term != nil {
		set++
	}
	if len(es.And) > 0 {
		set++
	}
	if len(es.Or) > 0 {
		set++
	}
	if es.Not != nil {
		set++
	}
	if set != 1 {
		return nil, &fuzzy.ConfigError{Issues: []string{
			fmt.Sprintf("rule %d: antecedent node must set exactly one of term/and/or/not", ruleIndex+1),
		}}
	}

	switch {
	case es.Term != nil:
		return fuzzy.Term(es.Term.Variable, es.Term.Label), nil
	case es.Not != nil:
		child, err := compileExpr(ruleIndex, *es.Not)
		if err != nil {
			return nil, err
		}
		return fuzzy.Not(child), nil
	case len(es.And) > 0:
		children, err := compileChildren(ruleIndex, es.And)
		if err != nil {
			return nil, err
		}
		return fuzzy.And(children...), nil
	default:
		children, err := compileChildren(ruleIndex, es.Or)
		if err != nil {
			return nil, err
		}
		return fuzzy.Or(children...), nil
	}
}

func compileChildren(ruleIndex int, specs []ExprSpec) ([]fuzzy.Expr, error) {
	children := make([]fuzzy.Expr, 0, len(specs))
	for _, es := range specs {
		child, err := compileExpr(ruleIndex, es)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return children, nil
}
