/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: variable.go
Description: Linguistic variables for the Akaylee Fuzzy engine. A variable names one
numeric dimension, owns its universe, and maps qualitative labels to membership
functions. Term curves are discretized once so every simulation shares the same
read-only tables.
*/

package fuzzy

// Role distinguishes input variables from output variables
type Role int

const (
	// Antecedent marks an input variable referenced by rule conditions
	Antecedent Role = iota

	// Consequent marks an output variable targeted by rule conclusions
	Consequent
)

// String returns the role name
func (r Role) String() string {
	switch r {
	case Antecedent:
		return "antecedent"
	case Consequent:
		return "consequent"
	default:
		return "unknown"
	}
}

// Variable is a named linguistic variable: a universe plus a mapping from
// label to membership function. Build it with NewAntecedent or NewConsequent,
// add terms, then hand it to NewSystem; after that it must not be modified.
type Variable struct {
	name     string
	role     Role
	universe *Universe
	labels   []string
	terms    map[string]MembershipFunction
	curves   map[string][]float64
}

// NewAntecedent creates an input variable over the given universe
func NewAntecedent(name string, universe *Universe) *Variable {
	return newVariable(name, Antecedent, universe)
}

// NewConsequent creates an output variable over the given universe
func NewConsequent(name string, universe *Universe) *Variable {
	return newVariable(name, Consequent, universe)
}

func newVariable(name string, role Role, universe *Universe) *Variable {
	return &Variable{
		name:     name,
		role:     role,
		universe: universe,
		terms:    make(map[string]MembershipFunction),
		curves:   make(map[string][]float64),
	}
}

// AddTerm attaches a labeled membership function to the variable. Labels must
// be unique within the variable. The term's curve is discretized over the
// variable's universe immediately.
func (v *Variable) AddTerm(label string, f MembershipFunction) error {
	if label == "" {
		return newConfigError("variable %q: term label must not be empty", v.name)
	}
	if _, exists := v.terms[label]; exists {
		return newConfigError("variable %q: duplicate term label %q", v.name, label)
	}
	v.labels = append(v.labels, label)
	v.terms[label] = f
	v.curves[label] = f.Discretize(v.universe)
	return nil
}

// Name returns the variable name
func (v *Variable) Name() string {
	return v.name
}

// Role returns whether the variable is an antecedent or a consequent
func (v *Variable) Role() Role {
	return v.role
}

// Universe returns the variable's universe
func (v *Variable) Universe() *Universe {
	return v.universe
}

// Labels returns the term labels in the order they were added
func (v *Variable) Labels() []string {
	labels := make([]string, len(v.labels))
	copy(labels, v.labels)
	return labels
}

// Term returns the membership function for a label
func (v *Variable) Term(label string) (MembershipFunction, bool) {
	f, ok := v.terms[label]
	return f, ok
}

// TermCurve returns a copy of the discretized curve for a label. This is the
// per-label membership profile a plotting collaborator would render.
func (v *Variable) TermCurve(label string) ([]float64, bool) {
	curve, ok := v.curves[label]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(curve))
	copy(out, curve)
	return out, true
}

// Fuzzify computes the degree of membership of a crisp value in each of the
// variable's terms via interpolation over the discretized curves. The value is
// assumed to be within the universe; domain policy is enforced by the system.
func (v *Variable) Fuzzify(value float64) map[string]float64 {
	degrees := make(map[string]float64, len(v.labels))
	for _, label := range v.labels {
		degrees[label] = v.universe.InterpolatedMembership(v.curves[label], value)
	}
	return degrees
}

// termCurve returns the shared (not copied) curve for internal use
func (v *Variable) termCurve(label string) []float64 {
	return v.curves[label]
}
