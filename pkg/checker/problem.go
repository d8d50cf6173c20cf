package checker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/nd-prover/ndcheck/pkg/logic"
	"github.com/nd-prover/ndcheck/pkg/ndparse"
	"github.com/nd-prover/ndcheck/pkg/term"
)

// edit records enough of one mutation to undo it; delete_line pops the
// most recent entry and reverses it (spec §4.4 "edit stack").
type edit struct {
	kind editKind
	// popped/added holds whatever the undo needs to restore or remove.
	line        *Line
	sub         *Subproof
	reopenedSub *Subproof // for endSubproof/endAndBeginSubproof undo
}

type editKind int

const (
	editAddLine editKind = iota
	editBeginSubproof
	editEndSubproof
	editEndAndBeginSubproof
)

// Problem is a Fitch-style proof under construction for one logic and one
// argument (premises ⊢ conclusion). It owns a UUID (spec's external
// interfaces stamp every Problem/session this way) and the mutable root
// Subproof the caller edits one step at a time.
type Problem struct {
	ID         uuid.UUID
	logic      logic.Logic
	context    []*Line
	conclusion term.Formula

	proof     *Subproof
	openStack []*Subproof
	nextID    int
	edits     []edit
}

// NewProblem builds a Problem from already-verified premises and
// conclusion (see pkg/ndparse.ParseAndVerifyPremises/Formula for the
// parse+well-formedness step that should precede this call).
func NewProblem(l logic.Logic, premises []term.Formula, conclusion term.Formula) *Problem {
	p := &Problem{ID: uuid.New(), logic: l, conclusion: conclusion}
	for _, f := range premises {
		p.context = append(p.context, p.newLine(f, "PR", nil, -1))
	}
	p.proof = &Subproof{ID: p.allocID(), Depth: 0}
	p.openStack = []*Subproof{p.proof}
	return p
}

func (p *Problem) allocID() int {
	p.nextID++
	return p.nextID
}

func (p *Problem) newLine(f term.Formula, rule string, cites []int, ownerDepth int) *Line {
	return &Line{ID: p.allocID(), Formula: f, Rule: rule, Citations: cites, OwnerDepth: ownerDepth}
}

func (p *Problem) Logic() logic.Logic      { return p.logic }
func (p *Problem) Conclusion() term.Formula { return p.conclusion }
func (p *Problem) Context() []*Line         { return p.context }
func (p *Problem) Proof() *Subproof          { return p.proof }
func (p *Problem) Depth() int                { return p.depth() }

// ConclusionReached reports whether the root subproof is the only open
// scope and its final line is the (error-free) conclusion.
func (p *Problem) ConclusionReached() bool {
	if p.depth() != 0 {
		return false
	}
	last, ok := p.proof.lastLine()
	return ok && last.Err == nil && term.Equal(last.Formula, p.conclusion)
}

// AddLine appends a justified line to the innermost open subproof,
// validating it immediately; a validation failure is recorded on the
// line's Err rather than rejected, matching the teacher-style edit loop
// where the caller decides whether to DeleteLine a bad edit (spec §4.4,
// cli.py's perform_edit).
func (p *Problem) AddLine(f term.Formula, j *ndparse.Justification) {
	cites, err := p.validate(f, j.RuleName, j.Citations, nil)
	line := p.newLine(f, j.RuleName, cites, p.depth())
	line.Err = err
	p.current().Seq = append(p.current().Seq, line)
	p.edits = append(p.edits, edit{kind: editAddLine, line: line})
}

// BeginSubproof opens a new nested subproof assuming a.
func (p *Problem) BeginSubproof(a term.Formula) {
	sub := &Subproof{ID: p.allocID(), Depth: p.depth() + 1}
	asLine := p.newLine(a, "AS", nil, sub.Depth)
	if !p.logic.IsWellFormed(a, false) {
		asLine.Err = fmt.Errorf("%q is not a well-formed %s formula", term.Print(a), p.logic)
	}
	sub.Seq = append(sub.Seq, asLine)
	p.current().Seq = append(p.current().Seq, sub)
	p.openStack = append(p.openStack, sub)
	p.edits = append(p.edits, edit{kind: editBeginSubproof, sub: sub})
}

// EndSubproof adds the final line to the current subproof and closes it,
// making it citable as a whole in the parent scope. Requires depth ≥ 1.
func (p *Problem) EndSubproof(f term.Formula, j *ndparse.Justification) error {
	if p.depth() < 1 {
		return fmt.Errorf("no open subproof to end")
	}
	sub := p.current()
	ownerDepth := p.depth()

	// sub is still open while its closing line is validated, so its own
	// earlier lines remain ordinarily accessible; selfClosingSub grants its
	// own range as a citation too, for rules like →I that need to name it.
	cites, err := p.validate(f, j.RuleName, j.Citations, sub)
	line := p.newLine(f, j.RuleName, cites, ownerDepth)
	line.Err = err
	sub.Seq = append(sub.Seq, line)
	sub.Closed = true
	p.openStack = p.openStack[:len(p.openStack)-1]
	p.edits = append(p.edits, edit{kind: editEndSubproof, line: line, sub: sub})
	return nil
}

// EndAndBeginSubproof closes the current subproof using whatever its
// existing last line already is (no new justification is supplied) and
// immediately opens a sibling subproof assuming a. Atomic: if the current
// subproof has no line yet to close on, nothing changes (spec §4.4).
func (p *Problem) EndAndBeginSubproof(a term.Formula) error {
	if p.depth() < 1 {
		return fmt.Errorf("no open subproof to end")
	}
	sub := p.current()
	if _, ok := sub.lastLine(); !ok || len(sub.Seq) < 2 {
		return fmt.Errorf("the current subproof has no derived line to close on")
	}
	sub.Closed = true
	p.openStack = p.openStack[:len(p.openStack)-1]

	newSub := &Subproof{ID: p.allocID(), Depth: p.depth() + 1}
	asLine := p.newLine(a, "AS", nil, newSub.Depth)
	if !p.logic.IsWellFormed(a, false) {
		asLine.Err = fmt.Errorf("%q is not a well-formed %s formula", term.Print(a), p.logic)
	}
	newSub.Seq = append(newSub.Seq, asLine)
	p.current().Seq = append(p.current().Seq, newSub)
	p.openStack = append(p.openStack, newSub)

	p.edits = append(p.edits, edit{kind: editEndAndBeginSubproof, sub: newSub, reopenedSub: sub})
	return nil
}

// DeleteLine undoes the most recent edit. Reports false if there is
// nothing left to undo.
func (p *Problem) DeleteLine() bool {
	if len(p.edits) == 0 {
		return false
	}
	last := p.edits[len(p.edits)-1]
	p.edits = p.edits[:len(p.edits)-1]

	switch last.kind {
	case editAddLine:
		cur := p.current()
		cur.Seq = cur.Seq[:len(cur.Seq)-1]
	case editBeginSubproof:
		p.openStack = p.openStack[:len(p.openStack)-1]
		cur := p.current()
		cur.Seq = cur.Seq[:len(cur.Seq)-1]
	case editEndSubproof:
		last.sub.Closed = false
		last.sub.Seq = last.sub.Seq[:len(last.sub.Seq)-1]
		p.openStack = append(p.openStack, last.sub)
	case editEndAndBeginSubproof:
		p.openStack = p.openStack[:len(p.openStack)-1]
		parent := p.current()
		parent.Seq = parent.Seq[:len(parent.Seq)-1]
		last.reopenedSub.Closed = false
		p.openStack = append(p.openStack, last.reopenedSub)
	}
	return true
}
