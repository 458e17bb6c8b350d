/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: rule.go
Description: Fuzzy rules for the Akaylee Fuzzy engine. An antecedent is an expression
tree over (variable, label) references combined with Zadeh operators (AND = min,
OR = max, NOT = 1-a); a rule pairs one antecedent with a consequent reference and an
optional weight. Rules are built once at configuration time and evaluated by recursive
descent against fuzzified input degrees.
*/

package fuzzy

import (
	"fmt"
	"math"
	"strings"
)

// TermRef references a labeled term of a named variable
type TermRef struct {
	Variable string `json:"variable"`
	Label    string `json:"label"`
}

// String renders the reference as "variable is label"
func (r TermRef) String() string {
	return fmt.Sprintf("%s is %s", r.Variable, r.Label)
}

// degrees holds fuzzified input values: variable name -> label -> degree
type degrees map[string]map[string]float64

// Expr is a node of a rule antecedent expression tree
type Expr interface {
	// evaluate computes the truth degree of the expression
	evaluate(d degrees) float64

	// collect appends every term reference in the subtree
	collect(refs *[]TermRef)

	// String renders the expression for traces and error messages
	String() string
}

type termExpr struct {
	ref TermRef
}

// Term creates a leaf expression referencing a variable's labeled term
func Term(variable, label string) Expr {
	return termExpr{ref: TermRef{Variable: variable, Label: label}}
}

func (t termExpr) evaluate(d degrees) float64 {
	return d[t.ref.Variable][t.ref.Label]
}

func (t termExpr) collect(refs *[]TermRef) {
	*refs = append(*refs, t.ref)
}

func (t termExpr) String() string {
	return t.ref.String()
}

type andExpr struct {
	operands []Expr
}

// And combines expressions with the fuzzy AND (minimum)
func And(operands ...Expr) Expr {
	return andExpr{operands: operands}
}

func (a andExpr) evaluate(d degrees) float64 {
	result := math.Inf(1)
	for _, op := range a.operands {
		result = math.Min(result, op.evaluate(d))
	}
	return result
}

func (a andExpr) collect(refs *[]TermRef) {
	for _, op := range a.operands {
		op.collect(refs)
	}
}

func (a andExpr) String() string {
	return joinOperands(a.operands, "AND")
}

type orExpr struct {
	operands []Expr
}

// Or combines expressions with the fuzzy OR (maximum)
func Or(operands ...Expr) Expr {
	return orExpr{operands: operands}
}

func (o orExpr) evaluate(d degrees) float64 {
	result := math.Inf(-1)
	for _, op := range o.operands {
		result = math.Max(result, op.evaluate(d))
	}
	return result
}

func (o orExpr) collect(refs *[]TermRef) {
	for _, op := range o.operands {
		op.collect(refs)
	}
}

func (o orExpr) String() string {
	return joinOperands(o.operands, "OR")
}

type notExpr struct {
	operand Expr
}

// Not negates an expression with the fuzzy complement (1 - a)
func Not(operand Expr) Expr {
	return notExpr{operand: operand}
}

func (n notExpr) evaluate(d degrees) float64 {
	return 1 - n.operand.evaluate(d)
}

func (n notExpr) collect(refs *[]TermRef) {
	n.operand.collect(refs)
}

func (n notExpr) String() string {
	return fmt.Sprintf("NOT %s", n.operand)
}

func joinOperands(operands []Expr, op string) string {
	parts := make([]string, len(operands))
	for i, o := range operands {
		parts[i] = o.String()
	}
	return "(" + strings.Join(parts, " "+op+" ") + ")"
}

// Rule pairs an antecedent expression with one consequent term and a weight.
// Build rules with NewRule and the With* chain, then hand them to NewSystem;
// after that they must not be modified.
type Rule struct {
	label      string
	antecedent Expr
	consequent TermRef
	weight     float64
}

// NewRule creates a rule "IF antecedent THEN variable is label" with the
// default weight of 1
func NewRule(antecedent Expr, variable, label string) *Rule {
	return &Rule{
		antecedent: antecedent,
		consequent: TermRef{Variable: variable, Label: label},
		weight:     1,
	}
}

// WithWeight scales the rule's firing strength. Weights must lie in (0, 1];
// the range is enforced when the rule joins a system.
func (r *Rule) WithWeight(weight float64) *Rule {
	r.weight = weight
	return r
}

// WithLabel names the rule for traces and logs
func (r *Rule) WithLabel(label string) *Rule {
	r.label = label
	return r
}

// Label returns the rule's name, if one was set
func (r *Rule) Label() string {
	return r.label
}

// Weight returns the rule's weight
func (r *Rule) Weight() float64 {
	return r.weight
}

// Consequent returns the consequent term reference
func (r *Rule) Consequent() TermRef {
	return r.consequent
}

// References returns every (variable, label) pair the antecedent mentions
func (r *Rule) References() []TermRef {
	var refs []TermRef
	r.antecedent.collect(&refs)
	return refs
}

// String renders the rule as "IF ... THEN ..."
func (r *Rule) String() string {
	return fmt.Sprintf("IF %s THEN %s", r.antecedent, r.consequent)
}

// fire computes the firing strength of the rule against fuzzified inputs
func (r *Rule) fire(d degrees) float64 {
	return r.weight * r.antecedent.evaluate(d)
}
