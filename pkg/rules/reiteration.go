package rules

import (
	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// CrossBoundaryReiterationAllowed decides the R rule's special case: citing,
// from inside a strict subproof, a line that lives strictly outside it
// (spec §4.3's modal reiteration policy). Ordinary same-world reiteration
// (no boundary crossed) is handled by the plain R rule in tfl.go instead;
// the checker calls this only once it has determined a citation crosses
// exactly one strict boundary.
//
//   - K: no reiteration crosses a strict boundary.
//   - T: ☐φ outside may be reiterated as φ inside (the enclosing world is
//     accessible from any world it contains).
//   - S4: T's case, plus ☐φ may be reiterated as ☐φ (accessibility is
//     transitive, so necessity persists).
//   - S5: S4's cases, plus ◇φ may be reiterated as ◇φ (accessibility is
//     symmetric, so possibility persists both ways).
func CrossBoundaryReiterationAllowed(access logic.ModalAccess, cited, concluded term.Formula) bool {
	box, isBox := cited.(*term.Box)
	switch access {
	case logic.AccessT:
		return isBox && term.Equal(box.Inner, concluded)
	case logic.AccessS4:
		if isBox && (term.Equal(box.Inner, concluded) || term.Equal(box, concluded)) {
			return true
		}
		return false
	case logic.AccessS5:
		if isBox && (term.Equal(box.Inner, concluded) || term.Equal(box, concluded)) {
			return true
		}
		if dia, isDia := cited.(*term.Dia); isDia && term.Equal(dia, concluded) {
			return true
		}
		return false
	default: // AccessK
		return false
	}
}
