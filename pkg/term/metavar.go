package term

// Metavar is a schematic hole used only by rule schemas (pkg/rules); it
// never appears in a user-submitted or committed formula. It implements
// both Formula and Term so a schema can place it in either position.
//
// Domain, when non-nil, rejects any candidate whose dynamic value (a
// Formula or Term) doesn't satisfy it — e.g. a ∀E schema's metavariable
// for "any term" has no domain, but a freshness check might restrict a
// metavariable to terms not occurring in a given formula.
type Metavar struct {
	ID     int
	Domain func(any) bool
	Value  any // nil, or the Formula/Term/*Metavar it is bound to
}

func (*Metavar) formula() {}
func (*Metavar) term()    {}

func (m *Metavar) String() string {
	if m.Value != nil {
		if s, ok := m.Value.(interface{ String() string }); ok {
			return s.String()
		}
	}
	return "?m"
}

// NewMetavar allocates a fresh, unbound metavariable. IDs are assigned by
// the caller-owned *Allocator (pkg/rules), not a process-global counter,
// so concurrent searches never share metavariable identity.
func NewMetavar(id int, domain func(any) bool) *Metavar {
	return &Metavar{ID: id, Domain: domain}
}

// Trail records which metavariables were bound during one top-level Unify
// call, so a failing call can roll every one of them back to unbound.
type Trail struct {
	bound []*Metavar
}

func (t *Trail) record(m *Metavar) { t.bound = append(t.bound, m) }

func (t *Trail) rollback() {
	for _, m := range t.bound {
		m.Value = nil
	}
}

// unify binds m to other (recording on trail) if unbound, checks Domain,
// or delegates through an already-bound value. other is a Formula, Term,
// or *Metavar.
func (m *Metavar) unify(other any, trail *Trail) bool {
	if m.Domain != nil && !m.Domain(other) {
		return false
	}
	if m.Value == nil {
		m.Value = other
		trail.record(m)
		return true
	}
	if mv, ok := m.Value.(*Metavar); ok {
		return mv.unify(other, trail)
	}
	if vf, ok := m.Value.(Formula); ok {
		if of, ok2 := other.(Formula); ok2 {
			return unifyFormula(vf, of, trail)
		}
		return false
	}
	if vt, ok := m.Value.(Term); ok {
		if ot, ok2 := other.(Term); ok2 {
			return unifyTerm(vt, ot, trail)
		}
		return false
	}
	return false
}

// UnifyFormula attempts to unify pattern (which may contain metavariables)
// against the ground formula concrete. On success, every metavariable
// bound during the call is appended to trail. On failure, no metavariable
// reachable from pattern is left changed: this is the unification-purity
// invariant (spec §3/§8.1).
func UnifyFormula(pattern, concrete Formula, trail *Trail) bool {
	local := &Trail{}
	if unifyFormula(pattern, concrete, local) {
		trail.bound = append(trail.bound, local.bound...)
		return true
	}
	local.rollback()
	return false
}

// UnifyTerm is UnifyFormula's term-level counterpart.
func UnifyTerm(pattern, concrete Term, trail *Trail) bool {
	local := &Trail{}
	if unifyTerm(pattern, concrete, local) {
		trail.bound = append(trail.bound, local.bound...)
		return true
	}
	local.rollback()
	return false
}

func unifyFormula(pattern, concrete Formula, trail *Trail) bool {
	if mv, ok := pattern.(*Metavar); ok {
		return mv.unify(concrete, trail)
	}
	if mv, ok := concrete.(*Metavar); ok {
		return mv.unify(pattern, trail)
	}
	switch p := pattern.(type) {
	case *Bot:
		_, ok := concrete.(*Bot)
		return ok
	case *Not:
		c, ok := concrete.(*Not)
		return ok && unifyFormula(p.Inner, c.Inner, trail)
	case *And:
		c, ok := concrete.(*And)
		return ok && unifyFormula(p.Left, c.Left, trail) && unifyFormula(p.Right, c.Right, trail)
	case *Or:
		c, ok := concrete.(*Or)
		return ok && unifyFormula(p.Left, c.Left, trail) && unifyFormula(p.Right, c.Right, trail)
	case *Imp:
		c, ok := concrete.(*Imp)
		return ok && unifyFormula(p.Left, c.Left, trail) && unifyFormula(p.Right, c.Right, trail)
	case *Iff:
		c, ok := concrete.(*Iff)
		return ok && unifyFormula(p.Left, c.Left, trail) && unifyFormula(p.Right, c.Right, trail)
	case *Pred:
		c, ok := concrete.(*Pred)
		if !ok || p.Name != c.Name || len(p.Args) != len(c.Args) {
			return false
		}
		for i := range p.Args {
			if !unifyTerm(p.Args[i], c.Args[i], trail) {
				return false
			}
		}
		return true
	case *Eq:
		c, ok := concrete.(*Eq)
		return ok && unifyTerm(p.Left, c.Left, trail) && unifyTerm(p.Right, c.Right, trail)
	case *Forall:
		c, ok := concrete.(*Forall)
		return ok && unifyTerm(p.Var, c.Var, trail) && unifyFormula(p.Inner, c.Inner, trail)
	case *Exists:
		c, ok := concrete.(*Exists)
		return ok && unifyTerm(p.Var, c.Var, trail) && unifyFormula(p.Inner, c.Inner, trail)
	case *Box:
		c, ok := concrete.(*Box)
		return ok && unifyFormula(p.Inner, c.Inner, trail)
	case *Dia:
		c, ok := concrete.(*Dia)
		return ok && unifyFormula(p.Inner, c.Inner, trail)
	case *BoxMarker:
		_, ok := concrete.(*BoxMarker)
		return ok
	default:
		return false
	}
}

func unifyTerm(pattern, concrete Term, trail *Trail) bool {
	if mv, ok := pattern.(*Metavar); ok {
		return mv.unify(concrete, trail)
	}
	if mv, ok := concrete.(*Metavar); ok {
		return mv.unify(pattern, trail)
	}
	switch p := pattern.(type) {
	case *FuncTerm:
		c, ok := concrete.(*FuncTerm)
		if !ok || p.Name != c.Name || len(p.Args) != len(c.Args) {
			return false
		}
		for i := range p.Args {
			if !unifyTerm(p.Args[i], c.Args[i], trail) {
				return false
			}
		}
		return true
	case *VarTerm:
		c, ok := concrete.(*VarTerm)
		return ok && p.Name == c.Name
	default:
		return false
	}
}
