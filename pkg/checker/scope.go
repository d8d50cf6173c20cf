package checker

// index is a snapshot of display numbering and accessibility, rebuilt
// whenever a citation needs resolving. Display numbers count every line
// (context premises, then the proof tree depth-first, including closed
// subproofs' interiors) so printed citations stay stable; accessibility is
// a narrower set excluding anything sealed inside a closed subproof (spec
// §3 "Scope invariant").
type index struct {
	byNum          map[int]*Line
	numOf          map[*Line]int
	subproofRange  map[[2]int]*Subproof
	accessibleLine map[*Line]bool
	accessibleSub  map[*Subproof]bool
}

func (p *Problem) buildIndex() *index {
	idx := &index{
		byNum:          map[int]*Line{},
		numOf:          map[*Line]int{},
		subproofRange:  map[[2]int]*Subproof{},
		accessibleLine: map[*Line]bool{},
		accessibleSub:  map[*Subproof]bool{},
	}
	n := 0
	for _, l := range p.context {
		n++
		idx.byNum[n] = l
		idx.numOf[l] = n
		idx.accessibleLine[l] = true
	}
	p.numberSeq(p.proof, idx, &n, true)
	return idx
}

// numberSeq assigns display numbers depth-first. accessible is true while
// walking a chain of currently-open ancestors; once it goes false (a
// closed subproof's interior) it never becomes true again for that
// subtree.
func (p *Problem) numberSeq(sp *Subproof, idx *index, n *int, accessible bool) {
	open := p.isOpen(sp)
	childAccessible := accessible && open
	first := -1
	for _, obj := range sp.Seq {
		switch o := obj.(type) {
		case *Line:
			*n++
			idx.byNum[*n] = o
			idx.numOf[o] = *n
			if first == -1 {
				first = *n
			}
			if childAccessible {
				idx.accessibleLine[o] = true
			}
		case *Subproof:
			before := *n + 1
			p.numberSeq(o, idx, n, childAccessible)
			idx.subproofRange[[2]int{before, *n}] = o
			if childAccessible && !p.isOpen(o) {
				idx.accessibleSub[o] = true
			}
		}
	}
}

// isOpen reports whether sp is currently on the Problem's open-subproof
// stack (the root always is; reaching the conclusion does not remove it).
func (p *Problem) isOpen(sp *Subproof) bool {
	for _, s := range p.openStack {
		if s == sp {
			return true
		}
	}
	return false
}

// current returns the innermost open subproof: new lines are always
// appended to its tail.
func (p *Problem) current() *Subproof {
	return p.openStack[len(p.openStack)-1]
}

func (p *Problem) depth() int { return len(p.openStack) - 1 }
