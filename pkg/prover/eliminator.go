package prover

import "github.com/nd-prover/ndcheck/pkg/term"

// eliminationSweep runs the non-branching, bottom-up saturation of spec
// §4.5 phase 2: R, then X, then repeatedly whichever of ¬E/∧E/→E/↔E makes
// progress, stopping as soon as the goal is reached (prover.py's
// Eliminator.elim).
func eliminationSweep(s *Searcher) bool {
	for {
		if eliminateR(s) {
			return true
		}
		if eliminateX(s) {
			return true
		}
		switch {
		case eliminateNotE(s):
		case eliminateAndE(s):
		case eliminateImpE(s):
		case eliminateIffE(s):
		default:
			return false
		}
	}
}

// eliminateR closes the branch immediately if the goal is already the
// last derived (non-assumption) line, or reiterates any other accessible
// line that already equals the goal.
func eliminateR(s *Searcher) bool {
	p := s.proof
	if len(p.seq) > 0 {
		if l, ok := p.seq[len(p.seq)-1].(*searchLine); ok {
			if term.Equal(l.formula, p.goal) && !l.isAssumption {
				return true
			}
		}
	}
	for _, obj := range p.seq {
		l, ok := obj.(*searchLine)
		if ok && term.Equal(l.formula, p.goal) {
			p.add(&searchLine{id: s.alloc.alloc(), formula: l.formula, rule: "R", citations: []int{l.id}})
			return true
		}
	}
	return false
}

// eliminateX closes the branch via ex falso if ⊥ is already accessible.
func eliminateX(s *Searcher) bool {
	p := s.proof
	for _, obj := range p.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		if _, isBot := l.formula.(*term.Bot); isBot {
			p.add(&searchLine{id: s.alloc.alloc(), formula: p.goal, rule: "X", citations: []int{l.id}})
			return true
		}
	}
	return false
}

func eliminateNotE(s *Searcher) bool {
	p := s.proof
	for _, obj := range p.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		n, ok := l.formula.(*term.Not)
		if !ok {
			continue
		}
		for _, obj2 := range p.seq {
			l2, ok := obj2.(*searchLine)
			if ok && term.Equal(l2.formula, n.Inner) {
				p.add(&searchLine{id: s.alloc.alloc(), formula: &term.Bot{}, rule: "¬E", citations: []int{l.id, l2.id}})
				return true
			}
		}
	}
	return false
}

func eliminateAndE(s *Searcher) bool {
	p := s.proof
	for _, obj := range p.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		and, ok := l.formula.(*term.And)
		if !ok {
			continue
		}
		for _, conjunct := range []term.Formula{and.Left, and.Right} {
			if !p.hasFormula(conjunct) {
				p.add(&searchLine{id: s.alloc.alloc(), formula: conjunct, rule: "∧E", citations: []int{l.id}})
				return true
			}
		}
	}
	return false
}

func eliminateImpE(s *Searcher) bool {
	p := s.proof
	for _, obj := range p.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		imp, ok := l.formula.(*term.Imp)
		if !ok || p.hasFormula(imp.Right) {
			continue
		}
		for _, obj2 := range p.seq {
			l2, ok := obj2.(*searchLine)
			if ok && term.Equal(l2.formula, imp.Left) {
				p.add(&searchLine{id: s.alloc.alloc(), formula: imp.Right, rule: "→E", citations: []int{l.id, l2.id}})
				return true
			}
		}
	}
	return false
}

func eliminateIffE(s *Searcher) bool {
	p := s.proof
	for _, obj := range p.seq {
		l, ok := obj.(*searchLine)
		if !ok {
			continue
		}
		iff, ok := l.formula.(*term.Iff)
		if !ok {
			continue
		}
		haveLeft, haveRight := p.hasFormula(iff.Left), p.hasFormula(iff.Right)
		if haveLeft && !haveRight {
			for _, obj2 := range p.seq {
				l2, ok := obj2.(*searchLine)
				if ok && term.Equal(l2.formula, iff.Left) {
					p.add(&searchLine{id: s.alloc.alloc(), formula: iff.Right, rule: "↔E", citations: []int{l.id, l2.id}})
					return true
				}
			}
		}
		if haveRight && !haveLeft {
			for _, obj2 := range p.seq {
				l2, ok := obj2.(*searchLine)
				if ok && term.Equal(l2.formula, iff.Right) {
					p.add(&searchLine{id: s.alloc.alloc(), formula: iff.Left, rule: "↔E", citations: []int{l.id, l2.id}})
					return true
				}
			}
		}
	}
	return false
}
