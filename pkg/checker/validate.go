package checker

import (
	"fmt"

	"github.com/nd-prover/ndcheck/pkg/ndparse"
	"github.com/nd-prover/ndcheck/pkg/rules"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// resolveCitation resolves one parsed citation against idx, reporting the
// object it names and whether it's currently in scope. selfClosingSub, set
// only while validating an end_subproof's own closing line, is the
// subproof being closed by this very edit: its own range is always a
// legal citation for that line, even though it isn't flagged Closed yet.
func (p *Problem) resolveCitation(idx *index, c ndparse.Citation, selfClosingSub *Subproof) (line *Line, sub *Subproof, err error) {
	if c.IsRange {
		sub, ok := idx.subproofRange[[2]int{c.RangeFrom, c.RangeTo}]
		if !ok || (!idx.accessibleSub[sub] && sub != selfClosingSub) {
			return nil, nil, fmt.Errorf("citation %d–%d is out of scope", c.RangeFrom, c.RangeTo)
		}
		return nil, sub, nil
	}
	l, ok := idx.byNum[c.Line]
	if !ok || !idx.accessibleLine[l] {
		return nil, nil, fmt.Errorf("citation %d is out of scope", c.Line)
	}
	return l, nil, nil
}

// validate runs the full per-line pipeline of spec §4.4 on a prospective
// line and returns the error to record on it, or nil if it checks out.
// selfClosingSub is non-nil only when this call validates an
// end_subproof's closing line.
func (p *Problem) validate(formula term.Formula, ruleName string, cites []ndparse.Citation, selfClosingSub *Subproof) ([]int, error) {
	if !p.logic.IsWellFormed(formula, false) {
		return nil, fmt.Errorf("%q is not a well-formed %s formula", term.Print(formula), p.logic)
	}

	catalog := rules.ForLogic(p.logic)
	rule, ok := catalog.Lookup(ruleName)
	if !ok {
		return nil, fmt.Errorf("%q does not justify this conclusion from the cited lines", ruleName)
	}
	if len(cites) != len(rule.CiteKinds) {
		return nil, fmt.Errorf("%s expects %d citation(s), got %d", rule.Canonical, len(rule.CiteKinds), len(cites))
	}

	idx := p.buildIndex()
	var lineIDs []int
	var in rules.Input
	in.Logic = p.logic
	in.Conclusion = formula

	var citedOwnerDepth = -2 // sentinel: only meaningful for rule "R"
	for i, c := range cites {
		wantSub := rule.CiteKinds[i] == rules.SubproofCite
		if c.IsRange != wantSub {
			return nil, fmt.Errorf("%s does not justify this conclusion from the cited lines", rule.Canonical)
		}
		line, sub, err := p.resolveCitation(idx, c, selfClosingSub)
		if err != nil {
			return nil, err
		}
		if wantSub {
			lineIDs = append(lineIDs, sub.ID)
			asLine, _ := sub.lastLine()
			in.Subproofs = append(in.Subproofs, rules.SubproofForm{
				Assumption: sub.assumption().Formula,
				Conclusion: asLine.Formula,
			})
		} else {
			lineIDs = append(lineIDs, line.ID)
			in.Lines = append(in.Lines, line.Formula)
			citedOwnerDepth = line.OwnerDepth
		}
	}

	// R crossing a strict (modal) subproof boundary has a different,
	// logic-dependent schema (spec §4.3's modal reiteration policy); the
	// checker alone has the subproof nesting needed to detect a crossing.
	if rule.Canonical == "R" && citedOwnerDepth > -2 && citedOwnerDepth < p.depth() {
		if p.crossesStrictBoundary(citedOwnerDepth, p.depth()) {
			if !rules.CrossBoundaryReiterationAllowed(p.logic.Access(), in.Lines[0], formula) {
				return nil, fmt.Errorf("reiteration across a strict modal subproof boundary is not permitted here")
			}
			return lineIDs, nil
		}
	}

	in.ConstantFreshOutside = func(c *term.FuncTerm) bool {
		return p.constantFreshOutsideCitedSubproof(idx, cites, c, formula)
	}

	if !rule.Validate(in) {
		return nil, fmt.Errorf("%s does not justify this conclusion from the cited lines", rule.Canonical)
	}
	return lineIDs, nil
}

// crossesStrictBoundary reports whether any open subproof strictly between
// depth `from` (exclusive) and `to` (inclusive) is a strict (modal)
// subproof — headed by a BoxMarker assumption.
func (p *Problem) crossesStrictBoundary(from, to int) bool {
	start := from + 1
	if start < 1 {
		start = 1 // depth 0 is the root; it has no assumption line to test
	}
	for d := start; d <= to; d++ {
		if _, isMarker := p.openStack[d].assumption().Formula.(*term.BoxMarker); isMarker {
			return true
		}
	}
	return false
}

// constantFreshOutsideCitedSubproof implements the ∀I/∃E freshness side
// condition: c must not occur in any line accessible from outside the
// cited subproof, nor in the conclusion itself.
func (p *Problem) constantFreshOutsideCitedSubproof(idx *index, cites []ndparse.Citation, c *term.FuncTerm, conclusion term.Formula) bool {
	if _, ok := term.Constants(conclusion)[c.String()]; ok {
		return false
	}
	var citedSub *Subproof
	for _, cc := range cites {
		if cc.IsRange {
			citedSub = idx.subproofRange[[2]int{cc.RangeFrom, cc.RangeTo}]
		}
	}
	for l := range idx.accessibleLine {
		if citedSub != nil && l.OwnerDepth >= citedSub.Depth {
			continue
		}
		if _, ok := term.Constants(l.Formula)[c.String()]; ok {
			return false
		}
	}
	return true
}
