// Package rules is the declarative, per-logic catalog of inference rules
// (spec §4.3): each rule's citation arity and a Validate closure that
// checks its premise/conclusion forms structurally, together with the side
// conditions (freshness, modal accessibility, equality replacement).
//
// A Rule's Validate closure is handed a fully-resolved Input — the
// checker (pkg/checker) is responsible for turning citations into
// concrete cited formulas/subproofs before calling in; this package never
// touches scope or accessibility directly, except through the
// ConstantFreshOutside hook the checker supplies.
package rules

import (
	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// CiteKind distinguishes a line citation from a subproof citation at a
// given position in a rule's citation list.
type CiteKind int

const (
	LineCite CiteKind = iota
	SubproofCite
)

// SubproofForm is a resolved subproof citation: its opening assumption and
// closing conclusion formulas.
type SubproofForm struct {
	Assumption term.Formula
	Conclusion term.Formula
}

// Input is everything a Rule.Validate closure needs to check one
// candidate line against its cited justification.
type Input struct {
	Lines      []term.Formula // resolved line citations, in cited order
	Subproofs  []SubproofForm // resolved subproof citations, in cited order
	Conclusion term.Formula   // the proposed line's formula
	Logic      logic.Logic

	// ConstantFreshOutside reports whether constant c occurs nowhere
	// accessible outside the cited subproof and nowhere in Conclusion
	// (spec §4.3 ∀I/∃E "freshness"). Only set when a rule needs it.
	ConstantFreshOutside func(c *term.FuncTerm) bool
}

// Rule is one named inference rule.
type Rule struct {
	Canonical string
	Alias     string
	CiteKinds []CiteKind
	// Validate reports whether in.Conclusion is justified by in.Lines and
	// in.Subproofs under this rule.
	Validate func(in Input) bool
}

func (r *Rule) NumLineCites() int {
	n := 0
	for _, k := range r.CiteKinds {
		if k == LineCite {
			n++
		}
	}
	return n
}

func (r *Rule) NumSubproofCites() int {
	return len(r.CiteKinds) - r.NumLineCites()
}

// unifies is a small convenience: unify two formulas with a throwaway
// trail, for callers that never inspect the bindings after the fact.
func unifies(pattern, concrete term.Formula) bool {
	return term.UnifyFormula(pattern, concrete, &term.Trail{})
}

func unifiesTerm(pattern, concrete term.Term) bool {
	return term.UnifyTerm(pattern, concrete, &term.Trail{})
}
