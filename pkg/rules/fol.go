package rules

import "github.com/nd-prover/ndcheck/pkg/term"

// substitutionWitness reports whether there exists a term w such that
// substituting every free occurrence of bound in body with w yields target
// (used by ∀E, in the w-is-given direction) or, run the other way round,
// whether generalizing every occurrence of w in target produces body (∃I).
// It tries the variable itself (no-op substitution) first, then every
// atomic term mentioned in target or body.
func substitutionWitness(body term.Formula, bound *term.VarTerm, target term.Formula) (term.Term, bool) {
	candidates := []term.Term{bound}
	seen := map[string]bool{bound.String(): true}
	add := func(f term.Formula) {
		for _, t := range term.AtomicTerms(f, false) {
			if k := t.String(); !seen[k] {
				seen[k] = true
				candidates = append(candidates, t)
			}
		}
	}
	add(target)
	add(body)
	for _, w := range candidates {
		got := term.SubTerm(body, bound, func() term.Term { return w }, nil)
		if term.Equal(got, target) {
			return w, true
		}
	}
	return nil, false
}

var forallIntro = &Rule{
	Canonical: "∀I", Alias: "FORALL_I",
	CiteKinds: []CiteKind{SubproofCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Forall)
		if !ok {
			return false
		}
		sp := in.Subproofs[0]
		if _, isMarker := sp.Assumption.(*term.BoxMarker); !isMarker {
			return false
		}
		if _, free := term.FreeVars(c.Inner)[c.Var.String()]; !free {
			// v not free in the quantified body: no constant needed to match.
			return term.Equal(c.Inner, sp.Conclusion)
		}
		w, ok := substitutionWitness(c.Inner, c.Var, sp.Conclusion)
		if !ok {
			return false
		}
		fc, isConst := w.(*term.FuncTerm)
		if !isConst || len(fc.Args) != 0 {
			return false // the assumption must have introduced a bare fresh constant, not a compound term
		}
		return in.ConstantFreshOutside == nil || in.ConstantFreshOutside(fc)
	},
}

var forallElim = &Rule{
	Canonical: "∀E", Alias: "FORALL_E",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Lines[0].(*term.Forall)
		if !ok {
			return false
		}
		_, ok = substitutionWitness(c.Inner, c.Var, in.Conclusion)
		return ok
	},
}

var existsIntro = &Rule{
	Canonical: "∃I", Alias: "EXISTS_I",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Exists)
		if !ok {
			return false
		}
		_, ok = substitutionWitness(c.Inner, c.Var, in.Lines[0])
		return ok
	},
}

var existsElim = &Rule{
	Canonical: "∃E", Alias: "EXISTS_E",
	CiteKinds: []CiteKind{LineCite, SubproofCite},
	Validate: func(in Input) bool {
		ex, ok := in.Lines[0].(*term.Exists)
		if !ok {
			return false
		}
		sp := in.Subproofs[0]
		if !term.Equal(sp.Conclusion, in.Conclusion) {
			return false
		}
		w, ok := substitutionWitness(ex.Inner, ex.Var, sp.Assumption)
		if !ok {
			return false
		}
		fc, isConst := w.(*term.FuncTerm)
		if !isConst || len(fc.Args) != 0 {
			return false
		}
		return in.ConstantFreshOutside == nil || in.ConstantFreshOutside(fc)
	},
}

var eqIntro = &Rule{
	Canonical: "=I", Alias: "EQ_I",
	CiteKinds: nil,
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Eq)
		return ok && term.EqualTerm(c.Left, c.Right)
	},
}

// eqUpToSwap walks a and b in parallel, allowing any atomic term position
// where a has t1 and b has t2 (or vice versa) to still count as a match —
// this is "the conclusion is φ with some subset of t1/t2 occurrences
// swapped" without enumerating the subsets explicitly.
func eqUpToSwap(a, b term.Formula, t1, t2 term.Term) bool {
	switch x := a.(type) {
	case *term.Bot:
		_, ok := b.(*term.Bot)
		return ok
	case *term.Pred:
		y, ok := b.(*term.Pred)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !termEqUpToSwap(x.Args[i], y.Args[i], t1, t2) {
				return false
			}
		}
		return true
	case *term.Eq:
		y, ok := b.(*term.Eq)
		return ok && termEqUpToSwap(x.Left, y.Left, t1, t2) && termEqUpToSwap(x.Right, y.Right, t1, t2)
	case *term.Not:
		y, ok := b.(*term.Not)
		return ok && eqUpToSwap(x.Inner, y.Inner, t1, t2)
	case *term.And:
		y, ok := b.(*term.And)
		return ok && eqUpToSwap(x.Left, y.Left, t1, t2) && eqUpToSwap(x.Right, y.Right, t1, t2)
	case *term.Or:
		y, ok := b.(*term.Or)
		return ok && eqUpToSwap(x.Left, y.Left, t1, t2) && eqUpToSwap(x.Right, y.Right, t1, t2)
	case *term.Imp:
		y, ok := b.(*term.Imp)
		return ok && eqUpToSwap(x.Left, y.Left, t1, t2) && eqUpToSwap(x.Right, y.Right, t1, t2)
	case *term.Iff:
		y, ok := b.(*term.Iff)
		return ok && eqUpToSwap(x.Left, y.Left, t1, t2) && eqUpToSwap(x.Right, y.Right, t1, t2)
	case *term.Forall:
		y, ok := b.(*term.Forall)
		return ok && term.EqualTerm(x.Var, y.Var) && eqUpToSwap(x.Inner, y.Inner, t1, t2)
	case *term.Exists:
		y, ok := b.(*term.Exists)
		return ok && term.EqualTerm(x.Var, y.Var) && eqUpToSwap(x.Inner, y.Inner, t1, t2)
	default:
		return term.Equal(a, b)
	}
}

func termEqUpToSwap(a, b, t1, t2 term.Term) bool {
	if term.EqualTerm(a, b) {
		return true
	}
	if term.EqualTerm(a, t1) && term.EqualTerm(b, t2) {
		return true
	}
	if term.EqualTerm(a, t2) && term.EqualTerm(b, t1) {
		return true
	}
	af, aok := a.(*term.FuncTerm)
	bf, bok := b.(*term.FuncTerm)
	if aok && bok && af.Name == bf.Name && len(af.Args) == len(bf.Args) {
		for i := range af.Args {
			if !termEqUpToSwap(af.Args[i], bf.Args[i], t1, t2) {
				return false
			}
		}
		return true
	}
	return false
}

var eqElim = &Rule{
	Canonical: "=E", Alias: "EQ_E",
	CiteKinds: []CiteKind{LineCite, LineCite},
	Validate: func(in Input) bool {
		eq, ok := in.Lines[0].(*term.Eq)
		phi := in.Lines[1]
		if !ok {
			eq, ok = in.Lines[1].(*term.Eq)
			phi = in.Lines[0]
		}
		if !ok {
			return false
		}
		return eqUpToSwap(phi, in.Conclusion, eq.Left, eq.Right)
	},
}

// FOLRules is the quantifier/equality rule set layered on top of TFLRules
// for full first-order logic (spec §4.3).
func FOLRules() []*Rule {
	return []*Rule{forallIntro, forallElim, existsIntro, existsElim, eqIntro, eqElim}
}
