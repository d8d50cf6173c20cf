package rules

import "github.com/nd-prover/ndcheck/pkg/term"

// premiseRule and assumptionRule (PR, AS) cite nothing: the checker places
// premise and assumption lines itself without calling Validate, and the
// Rule value exists for lookup/printing. An ordinary line justified as PR
// or AS does reach Validate, which rejects it.
var premiseRule = &Rule{
	Canonical: "PR", Alias: "PR",
	CiteKinds: nil,
	Validate:  func(Input) bool { return false },
}

var assumptionRule = &Rule{
	Canonical: "AS", Alias: "AS",
	CiteKinds: nil,
	Validate:  func(Input) bool { return false },
}

// reiterate (R) reproduces a previously derived line verbatim. Reiteration
// that crosses a strict modal subproof boundary follows a different,
// logic-dependent schema; the checker detects that case itself (it alone
// knows the subproof structure) and does not call this Validate for it.
var reiterate = &Rule{
	Canonical: "R", Alias: "R",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		return term.Equal(in.Lines[0], in.Conclusion)
	},
}

// explosion (X, ex falso) derives anything from ⊥.
var explosion = &Rule{
	Canonical: "X", Alias: "X",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		_, ok := in.Lines[0].(*term.Bot)
		return ok
	},
}

var andIntro = &Rule{
	Canonical: "∧I", Alias: "AND_I",
	CiteKinds: []CiteKind{LineCite, LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.And)
		return ok && term.Equal(c.Left, in.Lines[0]) && term.Equal(c.Right, in.Lines[1])
	},
}

var andElim = &Rule{
	Canonical: "∧E", Alias: "AND_E",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Lines[0].(*term.And)
		return ok && (term.Equal(c.Left, in.Conclusion) || term.Equal(c.Right, in.Conclusion))
	},
}

var orIntro = &Rule{
	Canonical: "∨I", Alias: "OR_I",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Or)
		return ok && (term.Equal(c.Left, in.Lines[0]) || term.Equal(c.Right, in.Lines[0]))
	},
}

var orElim = &Rule{
	Canonical: "∨E", Alias: "OR_E",
	CiteKinds: []CiteKind{LineCite, SubproofCite, SubproofCite},
	Validate: func(in Input) bool {
		disj, ok := in.Lines[0].(*term.Or)
		if !ok {
			return false
		}
		sp1, sp2 := in.Subproofs[0], in.Subproofs[1]
		return term.Equal(sp1.Assumption, disj.Left) &&
			term.Equal(sp2.Assumption, disj.Right) &&
			term.Equal(sp1.Conclusion, in.Conclusion) &&
			term.Equal(sp2.Conclusion, in.Conclusion)
	},
}

var impIntro = &Rule{
	Canonical: "→I", Alias: "IMP_I",
	CiteKinds: []CiteKind{SubproofCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Imp)
		sp := in.Subproofs[0]
		return ok && term.Equal(c.Left, sp.Assumption) && term.Equal(c.Right, sp.Conclusion)
	},
}

var impElim = &Rule{
	Canonical: "→E", Alias: "IMP_E",
	CiteKinds: []CiteKind{LineCite, LineCite},
	Validate: func(in Input) bool {
		if imp, ok := in.Lines[0].(*term.Imp); ok && term.Equal(imp.Left, in.Lines[1]) {
			return term.Equal(imp.Right, in.Conclusion)
		}
		if imp, ok := in.Lines[1].(*term.Imp); ok && term.Equal(imp.Left, in.Lines[0]) {
			return term.Equal(imp.Right, in.Conclusion)
		}
		return false
	},
}

var iffIntro = &Rule{
	Canonical: "↔I", Alias: "IFF_I",
	CiteKinds: []CiteKind{SubproofCite, SubproofCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Iff)
		if !ok {
			return false
		}
		sp1, sp2 := in.Subproofs[0], in.Subproofs[1]
		return term.Equal(sp1.Assumption, c.Left) && term.Equal(sp1.Conclusion, c.Right) &&
			term.Equal(sp2.Assumption, c.Right) && term.Equal(sp2.Conclusion, c.Left)
	},
}

var iffElim = &Rule{
	Canonical: "↔E", Alias: "IFF_E",
	CiteKinds: []CiteKind{LineCite, LineCite},
	Validate: func(in Input) bool {
		if iff, ok := in.Lines[0].(*term.Iff); ok {
			if term.Equal(iff.Left, in.Lines[1]) {
				return term.Equal(iff.Right, in.Conclusion)
			}
			if term.Equal(iff.Right, in.Lines[1]) {
				return term.Equal(iff.Left, in.Conclusion)
			}
		}
		if iff, ok := in.Lines[1].(*term.Iff); ok {
			if term.Equal(iff.Left, in.Lines[0]) {
				return term.Equal(iff.Right, in.Conclusion)
			}
			if term.Equal(iff.Right, in.Lines[0]) {
				return term.Equal(iff.Left, in.Conclusion)
			}
		}
		return false
	},
}

var notIntro = &Rule{
	Canonical: "¬I", Alias: "NOT_I",
	CiteKinds: []CiteKind{SubproofCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Not)
		sp := in.Subproofs[0]
		if _, isBot := sp.Conclusion.(*term.Bot); !isBot {
			return false
		}
		return ok && term.Equal(c.Inner, sp.Assumption)
	},
}

var notElim = &Rule{
	Canonical: "¬E", Alias: "NOT_E",
	CiteKinds: []CiteKind{LineCite, LineCite},
	Validate: func(in Input) bool {
		if _, isBot := in.Conclusion.(*term.Bot); !isBot {
			return false
		}
		if n, ok := in.Lines[0].(*term.Not); ok && term.Equal(n.Inner, in.Lines[1]) {
			return true
		}
		if n, ok := in.Lines[1].(*term.Not); ok && term.Equal(n.Inner, in.Lines[0]) {
			return true
		}
		return false
	},
}

// indirectProof (IP, classical reductio) cites a subproof assuming ¬φ and
// reaching ⊥, concluding φ.
var indirectProof = &Rule{
	Canonical: "IP", Alias: "IP",
	CiteKinds: []CiteKind{SubproofCite},
	Validate: func(in Input) bool {
		sp := in.Subproofs[0]
		if _, isBot := sp.Conclusion.(*term.Bot); !isBot {
			return false
		}
		neg, ok := sp.Assumption.(*term.Not)
		return ok && term.Equal(neg.Inner, in.Conclusion)
	},
}

// TFLRules is the full TFL rule set (spec §4.3's propositional core).
func TFLRules() []*Rule {
	return []*Rule{
		premiseRule, assumptionRule, reiterate, explosion,
		andIntro, andElim, orIntro, orElim,
		impIntro, impElim, iffIntro, iffElim,
		notIntro, notElim, indirectProof,
	}
}
