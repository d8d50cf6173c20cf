package checker

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nd-prover/ndcheck/pkg/term"
)

// String renders the Problem Fitch-style: premises first, then the proof
// tree with one indent level per subproof depth and a rule bar separating
// an assumption from its body — the supplemental pretty-printer spec.md's
// distillation omits but app.py's _serialize_proof and cli.py's bare
// print(problem) both rely on.
func (p *Problem) String() string {
	idx := p.buildIndex()
	var b strings.Builder
	for _, l := range p.context {
		b.WriteString(p.renderLine(idx, l, 0))
		b.WriteByte('\n')
	}
	if len(p.context) > 0 {
		b.WriteString("⊢ " + term.Print(p.conclusion) + "\n")
	}
	p.renderSeq(&b, idx, p.proof, 0)
	return b.String()
}

func (p *Problem) renderSeq(b *strings.Builder, idx *index, sp *Subproof, depth int) {
	for i, obj := range sp.Seq {
		switch o := obj.(type) {
		case *Line:
			b.WriteString(p.renderLine(idx, o, depth))
			b.WriteByte('\n')
			if i == 0 && o.isAssumption() {
				b.WriteString(strings.Repeat("  ", depth+1) + strings.Repeat("─", 12) + "\n")
			}
		case *Subproof:
			p.renderSeq(b, idx, o, depth+1)
		}
	}
}

func (p *Problem) renderLine(idx *index, l *Line, depth int) string {
	num := idx.numOf[l]
	indent := strings.Repeat("  ", depth)
	just := justText(idx, l)
	status := ""
	if l.Err != nil {
		status = fmt.Sprintf("  ✗ %s", l.Err)
	}
	return fmt.Sprintf("%s%d. %s  [%s]%s", indent, num, term.Print(l.Formula), just, status)
}

// justText renders a Line's rule and citations the way app.py's
// str(justification) does, e.g. "→I 1–3".
func justText(idx *index, l *Line) string {
	just := l.Rule
	if len(l.Citations) > 0 {
		just += " " + citationText(idx, l)
	}
	return just
}

// SerializedLine is one entry of the depth-first proof serialization
// spec.md §6 names as the core's "Serialized proof (core → front-end)"
// contract (app.py's _serialize_proof, generalized here into pkg/checker
// itself since it already owns the display-numbering index).
type SerializedLine struct {
	Indent       int
	Text         string
	JustText     string
	IsAssumption bool
	IsPremise    bool
}

// SerializeLines walks the whole proof depth-first (context, then the
// proof tree), producing the line-list spec.md §6 describes.
func (p *Problem) SerializeLines() []SerializedLine {
	idx := p.buildIndex()
	out := make([]SerializedLine, 0, len(p.context))
	for _, l := range p.context {
		out = append(out, SerializedLine{
			Indent: 0, Text: term.Print(l.Formula), JustText: justText(idx, l),
			IsAssumption: l.Rule == "AS", IsPremise: true,
		})
	}
	p.serializeSeq(&out, idx, p.proof, 0)
	return out
}

func (p *Problem) serializeSeq(out *[]SerializedLine, idx *index, sp *Subproof, indent int) {
	for _, obj := range sp.Seq {
		switch o := obj.(type) {
		case *Line:
			*out = append(*out, SerializedLine{
				Indent: indent, Text: term.Print(o.Formula), JustText: justText(idx, o),
				IsAssumption: o.isAssumption(), IsPremise: o.Rule == "PR",
			})
		case *Subproof:
			p.serializeSeq(out, idx, o, indent+1)
		}
	}
}

// citationText renders a Line's citations back as display numbers (and
// subproof ranges), for printing only — Citations itself stores object
// ids, not display numbers.
func citationText(idx *index, l *Line) string {
	parts := make([]string, 0, len(l.Citations))
	for _, id := range l.Citations {
		parts = append(parts, citationNumText(idx, id))
	}
	return strings.Join(parts, ", ")
}

func citationNumText(idx *index, objID int) string {
	for ln, num := range idx.numOf {
		if ln.ID == objID {
			return strconv.Itoa(num)
		}
	}
	for rng, sub := range idx.subproofRange {
		if sub.ID == objID {
			return fmt.Sprintf("%d–%d", rng[0], rng[1])
		}
	}
	return "?"
}
