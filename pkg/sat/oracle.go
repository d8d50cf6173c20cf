// Package sat provides the truth-functional semantic oracle the prover
// uses to gate and guide proof search (spec §4.6): a propositional
// evaluator over opaque atomic sub-formulas, and a brute-force
// countermodel search. n is expected small (< 12 in practice); no DPLL is
// required.
package sat

import "github.com/nd-prover/ndcheck/pkg/term"

// Assignment maps an atomic sub-formula's canonical key to a truth value.
type Assignment map[string]bool

// PropVars returns the atomic sub-formulas of f, treated as opaque
// booleans: every distinct Pred, Eq, Bot, quantified formula, or modal
// formula is a variable; the truth-functional connectives are not.
func PropVars(f term.Formula) map[string]term.Formula {
	out := map[string]term.Formula{}
	propVars(f, out)
	return out
}

func propVars(f term.Formula, out map[string]term.Formula) {
	switch x := f.(type) {
	case *term.Not:
		propVars(x.Inner, out)
	case *term.And:
		propVars(x.Left, out)
		propVars(x.Right, out)
	case *term.Or:
		propVars(x.Left, out)
		propVars(x.Right, out)
	case *term.Imp:
		propVars(x.Left, out)
		propVars(x.Right, out)
	case *term.Iff:
		propVars(x.Left, out)
		propVars(x.Right, out)
	default:
		out[term.Key(f)] = f
	}
}

// Evaluate performs standard Boolean evaluation of f under assignment.
// Every atomic sub-formula not present in assignment evaluates to false.
func Evaluate(f term.Formula, a Assignment) bool {
	switch x := f.(type) {
	case *term.Not:
		return !Evaluate(x.Inner, a)
	case *term.And:
		return Evaluate(x.Left, a) && Evaluate(x.Right, a)
	case *term.Or:
		return Evaluate(x.Left, a) || Evaluate(x.Right, a)
	case *term.Imp:
		return !Evaluate(x.Left, a) || Evaluate(x.Right, a)
	case *term.Iff:
		return Evaluate(x.Left, a) == Evaluate(x.Right, a)
	default:
		return a[term.Key(f)]
	}
}

// Countermodel enumerates every assignment of the atomic sub-formulas of
// Γ∪{χ} and returns the first one that satisfies every formula in Γ while
// falsifying χ, or nil if none exists.
func Countermodel(gamma []term.Formula, chi term.Formula) Assignment {
	vars := map[string]term.Formula{}
	for _, g := range gamma {
		propVars(g, vars)
	}
	propVars(chi, vars)

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}

	n := len(keys)
	total := 1 << uint(n)
	for bits := 0; bits < total; bits++ {
		a := make(Assignment, n)
		for i, k := range keys {
			a[k] = bits&(1<<uint(i)) != 0
		}
		ok := true
		for _, g := range gamma {
			if !Evaluate(g, a) {
				ok = false
				break
			}
		}
		if ok && !Evaluate(chi, a) {
			return a
		}
	}
	return nil
}

// IsValid reports whether χ is a semantic consequence of Γ: no
// countermodel exists.
func IsValid(gamma []term.Formula, chi term.Formula) bool {
	return Countermodel(gamma, chi) == nil
}
