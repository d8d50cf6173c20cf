package rules

import "github.com/nd-prover/ndcheck/pkg/term"

// boxIntro (☐I) cites a strict subproof: assume an arbitrary accessible
// world (marked by BoxMarker) and derive φ there; conclude ☐φ in the
// current world. Mirrors →I's subproof shape with a BoxMarker assumption
// standing in for the hypothetical-world marker (spec §4.3, modal rules).
var boxIntro = &Rule{
	Canonical: "☐I", Alias: "BOX_I",
	CiteKinds: []CiteKind{SubproofCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Box)
		if !ok {
			return false
		}
		sp := in.Subproofs[0]
		if _, isMarker := sp.Assumption.(*term.BoxMarker); !isMarker {
			return false
		}
		return term.Equal(c.Inner, sp.Conclusion)
	},
}

// boxElim (☐E) is the direct, same-world elimination: from ☐φ, derive φ.
// Using a ☐-line derived in an outer world from inside a strict subproof
// is reiteration-across-a-boundary, handled by the checker, not here.
var boxElim = &Rule{
	Canonical: "☐E", Alias: "BOX_E",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Lines[0].(*term.Box)
		return ok && term.Equal(c.Inner, in.Conclusion)
	},
}

// diaIntro (◇I) is the direct dual of ☐E: from φ, derive ◇φ.
var diaIntro = &Rule{
	Canonical: "◇I", Alias: "DIA_I",
	CiteKinds: []CiteKind{LineCite},
	Validate: func(in Input) bool {
		c, ok := in.Conclusion.(*term.Dia)
		return ok && term.Equal(c.Inner, in.Lines[0])
	},
}

// diaElim (◇E) mirrors ∃E: from ◇φ, and a strict subproof that assumes φ
// holds in some accessible world and reaches ψ without depending on which
// world that is, conclude ψ. Propositional modal formulas carry no term
// identity, so there is no analogue of ∃E's fresh-constant side condition.
var diaElim = &Rule{
	Canonical: "◇E", Alias: "DIA_E",
	CiteKinds: []CiteKind{LineCite, SubproofCite},
	Validate: func(in Input) bool {
		c, ok := in.Lines[0].(*term.Dia)
		if !ok {
			return false
		}
		sp := in.Subproofs[0]
		return term.Equal(sp.Assumption, c.Inner) && term.Equal(sp.Conclusion, in.Conclusion)
	},
}

// ModalRules is the rule set layered on top of TFLRules (propositional
// modal) or FOLRules+TFLRules (first-order modal). The ordinary R rule
// (pkg/rules tfl.go) already covers same-world reiteration; cross-boundary
// reiteration is logic-specific and is resolved by the checker via
// logic.Logic.Access, since only the checker has the subproof-nesting
// structure needed to know a citation crosses a strict boundary at all.
func ModalRules() []*Rule {
	return []*Rule{boxIntro, boxElim, diaIntro, diaElim}
}
