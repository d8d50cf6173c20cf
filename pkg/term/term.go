// Package term implements the formula/term AST shared by the parser, rule
// schemas, checker and prover: constants and variables, the propositional
// and first-order/modal connectives, metavariables, one-way unification,
// and the handful of recursive walks (free variables, constants, capture-
// avoiding substitution) the rule schemas build on.
//
// Every concrete type here is a value object: two structurally equal
// formulas render to the same canonical string and compare equal via Equal.
// Nothing but *Metavar is ever mutated after construction.
package term

// Term is either a zero-or-more-arity function application (a zero-arity
// Func is a constant) or a variable. Constant names are drawn from
// {a..r}, variable names from {s..z}, per the grammar's naming convention;
// nothing in this package enforces that convention, callers (the parser)
// do.
type Term interface {
	term()
	String() string
}

// FuncTerm is Func(name, args); a zero-arity FuncTerm is a constant.
type FuncTerm struct {
	Name string
	Args []Term
}

func (*FuncTerm) term() {}

// NewConst builds a zero-arity FuncTerm, i.e. a constant.
func NewConst(name string) *FuncTerm { return &FuncTerm{Name: name} }

// NewFunc builds an n-ary function application.
func NewFunc(name string, args ...Term) *FuncTerm {
	return &FuncTerm{Name: name, Args: args}
}

func (f *FuncTerm) String() string {
	if len(f.Args) == 0 {
		return f.Name
	}
	s := f.Name + "("
	for i, a := range f.Args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s + ")"
}

// VarTerm is a first-order variable, e.g. a quantifier-bound or free term
// variable. Not to be confused with a rule schema's Metavar.
type VarTerm struct {
	Name string
}

func (*VarTerm) term() {}

func NewVar(name string) *VarTerm { return &VarTerm{Name: name} }

func (v *VarTerm) String() string { return v.Name }

// EqualTerm reports whether two terms are structurally identical.
func EqualTerm(a, b Term) bool {
	switch x := a.(type) {
	case *FuncTerm:
		y, ok := b.(*FuncTerm)
		if !ok || x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !EqualTerm(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *VarTerm:
		y, ok := b.(*VarTerm)
		return ok && x.Name == y.Name
	case *Metavar:
		y, ok := b.(*Metavar)
		return ok && x.ID == y.ID
	default:
		return false
	}
}
