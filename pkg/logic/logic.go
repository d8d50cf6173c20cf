// Package logic names the ten supported logics and the formula
// well-formedness predicates each one fixes (spec §3: "A logic is a
// static token that (i) fixes the formula well-formedness predicate... and
// (ii) names the allowed rule set"). The allowed-rule-set half of that
// contract lives in pkg/rules, which imports this package.
package logic

import "github.com/nd-prover/ndcheck/pkg/term"

// Logic is one of the ten supported fragments.
type Logic int

const (
	TFL Logic = iota
	FOL
	MLK
	MLT
	MLS4
	MLS5
	FOMLK
	FOMLT
	FOMLS4
	FOMLS5
)

// names is the canonical, uppercase label used in textual I/O (§6) and in
// cli.py's "select_logic" prompt.
var names = map[Logic]string{
	TFL: "TFL", FOL: "FOL",
	MLK: "MLK", MLT: "MLT", MLS4: "MLS4", MLS5: "MLS5",
	FOMLK: "FOMLK", FOMLT: "FOMLT", FOMLS4: "FOMLS4", FOMLS5: "FOMLS5",
}

func (l Logic) String() string { return names[l] }

// ByName resolves a logic from its canonical label, or reports ok=false.
func ByName(name string) (Logic, bool) {
	for l, n := range names {
		if n == name {
			return l, true
		}
	}
	return 0, false
}

// IsModal reports whether l includes Box/Dia.
func (l Logic) IsModal() bool {
	switch l {
	case MLK, MLT, MLS4, MLS5, FOMLK, FOMLT, FOMLS4, FOMLS5:
		return true
	default:
		return false
	}
}

// IsFirstOrder reports whether l includes quantifiers and equality.
func (l Logic) IsFirstOrder() bool {
	switch l {
	case FOL, FOMLK, FOMLT, FOMLS4, FOMLS5:
		return true
	default:
		return false
	}
}

// ModalAccess is the accessibility relation each modal logic fixes, used
// by the checker to decide whether a reiteration across a strict subproof
// boundary is legal (spec §4.3 "Modal rules").
type ModalAccess int

const (
	AccessK ModalAccess = iota
	AccessT
	AccessS4
	AccessS5
)

// Access returns l's modal accessibility class. Non-modal logics return
// AccessK (unused, since IsModal is false for them).
func (l Logic) Access() ModalAccess {
	switch l {
	case MLT, FOMLT:
		return AccessT
	case MLS4, FOMLS4:
		return AccessS4
	case MLS5, FOMLS5:
		return AccessS5
	default:
		return AccessK
	}
}

// IsWellFormed reports whether φ belongs to l's formula fragment. For
// first-order logics this additionally requires φ to have no free
// variables when requireSentence is true (spec §3: "requires no free
// variables in submitted premises/conclusion").
func (l Logic) IsWellFormed(f term.Formula, requireSentence bool) bool {
	if _, isMarker := f.(*term.BoxMarker); isMarker {
		// BoxMarker only ever heads a ∀I freshness subproof or a ☐I
		// strict subproof (pkg/rules); those rules don't exist under plain TFL.
		return l.IsFirstOrder() || l.IsModal()
	}
	var ok bool
	switch {
	case l == TFL:
		ok = isTFL(f)
	case l == FOL:
		ok = isFOL(f)
	case l.IsModal() && l.IsFirstOrder():
		ok = isFOML(f)
	case l.IsModal():
		ok = isML(f)
	default:
		ok = false
	}
	if ok && requireSentence && l.IsFirstOrder() {
		ok = len(term.FreeVars(f)) == 0
	}
	return ok
}

// isTFL admits only 0-ary predicates and the truth-functional connectives.
func isTFL(f term.Formula) bool {
	switch x := f.(type) {
	case *term.Bot:
		return true
	case *term.Pred:
		return len(x.Args) == 0
	case *term.Not:
		return isTFL(x.Inner)
	case *term.And:
		return isTFL(x.Left) && isTFL(x.Right)
	case *term.Or:
		return isTFL(x.Left) && isTFL(x.Right)
	case *term.Imp:
		return isTFL(x.Left) && isTFL(x.Right)
	case *term.Iff:
		return isTFL(x.Left) && isTFL(x.Right)
	default:
		return false
	}
}

// isFOL admits quantifiers, equality and n-ary predicates.
func isFOL(f term.Formula) bool {
	switch x := f.(type) {
	case *term.Bot, *term.Pred, *term.Eq:
		return true
	case *term.Not:
		return isFOL(x.Inner)
	case *term.Forall:
		return isFOL(x.Inner)
	case *term.Exists:
		return isFOL(x.Inner)
	case *term.And:
		return isFOL(x.Left) && isFOL(x.Right)
	case *term.Or:
		return isFOL(x.Left) && isFOL(x.Right)
	case *term.Imp:
		return isFOL(x.Left) && isFOL(x.Right)
	case *term.Iff:
		return isFOL(x.Left) && isFOL(x.Right)
	default:
		return false
	}
}

// isML admits Box/Dia plus the propositional base (0-ary predicates only).
func isML(f term.Formula) bool {
	switch x := f.(type) {
	case *term.Bot:
		return true
	case *term.Pred:
		return len(x.Args) == 0
	case *term.Not:
		return isML(x.Inner)
	case *term.Box:
		return isML(x.Inner)
	case *term.Dia:
		return isML(x.Inner)
	case *term.And:
		return isML(x.Left) && isML(x.Right)
	case *term.Or:
		return isML(x.Left) && isML(x.Right)
	case *term.Imp:
		return isML(x.Left) && isML(x.Right)
	case *term.Iff:
		return isML(x.Left) && isML(x.Right)
	default:
		return false
	}
}

// isFOML unions quantifiers/equality/n-ary predicates with Box/Dia.
func isFOML(f term.Formula) bool {
	switch x := f.(type) {
	case *term.Bot, *term.Pred, *term.Eq:
		return true
	case *term.Not:
		return isFOML(x.Inner)
	case *term.Forall:
		return isFOML(x.Inner)
	case *term.Exists:
		return isFOML(x.Inner)
	case *term.Box:
		return isFOML(x.Inner)
	case *term.Dia:
		return isFOML(x.Inner)
	case *term.And:
		return isFOML(x.Left) && isFOML(x.Right)
	case *term.Or:
		return isFOML(x.Left) && isFOML(x.Right)
	case *term.Imp:
		return isFOML(x.Left) && isFOML(x.Right)
	case *term.Iff:
		return isFOML(x.Left) && isFOML(x.Right)
	default:
		return false
	}
}
