package term

// AtomicTerms returns, as a set keyed by canonical string, every atomic
// term (constant or variable) occurring in φ. When free is true,
// quantifier-bound variables are removed from the result.
func AtomicTerms(f Formula, free bool) map[string]Term {
	out := map[string]Term{}
	atomicTerms(f, free, out)
	return out
}

func atomicTerms(f Formula, free bool, out map[string]Term) {
	switch x := f.(type) {
	case *Bot, *BoxMarker:
		return
	case *Not:
		atomicTerms(x.Inner, free, out)
	case *Box:
		atomicTerms(x.Inner, free, out)
	case *Dia:
		atomicTerms(x.Inner, free, out)
	case *And:
		atomicTerms(x.Left, free, out)
		atomicTerms(x.Right, free, out)
	case *Or:
		atomicTerms(x.Left, free, out)
		atomicTerms(x.Right, free, out)
	case *Imp:
		atomicTerms(x.Left, free, out)
		atomicTerms(x.Right, free, out)
	case *Iff:
		atomicTerms(x.Left, free, out)
		atomicTerms(x.Right, free, out)
	case *Eq:
		atomicTermsInTerm(x.Left, out)
		atomicTermsInTerm(x.Right, out)
	case *Pred:
		for _, a := range x.Args {
			atomicTermsInTerm(a, out)
		}
	case *Forall:
		inner := map[string]Term{}
		atomicTerms(x.Inner, free, inner)
		if free {
			delete(inner, x.Var.String())
		}
		for k, v := range inner {
			out[k] = v
		}
	case *Exists:
		inner := map[string]Term{}
		atomicTerms(x.Inner, free, inner)
		if free {
			delete(inner, x.Var.String())
		}
		for k, v := range inner {
			out[k] = v
		}
	}
}

func atomicTermsInTerm(t Term, out map[string]Term) {
	switch x := t.(type) {
	case *FuncTerm:
		if len(x.Args) == 0 {
			out[x.String()] = x
			return
		}
		for _, a := range x.Args {
			atomicTermsInTerm(a, out)
		}
	case *VarTerm:
		out[x.String()] = x
	}
}

// Constants returns every constant (zero-arity FuncTerm) occurring in φ.
func Constants(f Formula) map[string]*FuncTerm {
	out := map[string]*FuncTerm{}
	for k, t := range AtomicTerms(f, false) {
		if c, ok := t.(*FuncTerm); ok {
			out[k] = c
		}
	}
	return out
}

// FreeVars returns every free variable occurring in φ.
func FreeVars(f Formula) map[string]*VarTerm {
	out := map[string]*VarTerm{}
	for k, t := range AtomicTerms(f, true) {
		if v, ok := t.(*VarTerm); ok {
			out[k] = v
		}
	}
	return out
}

// SubTerm substitutes every free occurrence of target (a *VarTerm or a
// zero-arity *FuncTerm) in φ with the result of calling gen fresh per
// occurrence; bound occurrences are skipped, and any variable matching
// ignore is left alone even where it would otherwise be captured-avoided
// by the caller's choice of gen. A nil ignore leaves no variable alone.
func SubTerm(f Formula, target Term, gen func() Term, ignore func(*VarTerm) bool) Formula {
	if ignore == nil {
		ignore = func(*VarTerm) bool { return false }
	}
	return subTerm(f, target, gen, ignore)
}

func subTerm(f Formula, target Term, gen func() Term, ignore func(*VarTerm) bool) Formula {
	switch x := f.(type) {
	case *Bot:
		return x
	case *BoxMarker:
		return x
	case *Not:
		return &Not{Inner: subTerm(x.Inner, target, gen, ignore)}
	case *Box:
		return &Box{Inner: subTerm(x.Inner, target, gen, ignore)}
	case *Dia:
		return &Dia{Inner: subTerm(x.Inner, target, gen, ignore)}
	case *And:
		return &And{Left: subTerm(x.Left, target, gen, ignore), Right: subTerm(x.Right, target, gen, ignore)}
	case *Or:
		return &Or{Left: subTerm(x.Left, target, gen, ignore), Right: subTerm(x.Right, target, gen, ignore)}
	case *Imp:
		return &Imp{Left: subTerm(x.Left, target, gen, ignore), Right: subTerm(x.Right, target, gen, ignore)}
	case *Iff:
		return &Iff{Left: subTerm(x.Left, target, gen, ignore), Right: subTerm(x.Right, target, gen, ignore)}
	case *Eq:
		return &Eq{Left: subTermInTerm(x.Left, target, gen), Right: subTermInTerm(x.Right, target, gen)}
	case *Pred:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = subTermInTerm(a, target, gen)
		}
		return &Pred{Name: x.Name, Args: args}
	case *Forall:
		inner := x.Inner
		if !(EqualTerm(x.Var, target) || ignore(x.Var)) {
			inner = subTerm(x.Inner, target, gen, ignore)
		}
		return &Forall{Var: x.Var, Inner: inner}
	case *Exists:
		inner := x.Inner
		if !(EqualTerm(x.Var, target) || ignore(x.Var)) {
			inner = subTerm(x.Inner, target, gen, ignore)
		}
		return &Exists{Var: x.Var, Inner: inner}
	default:
		return f
	}
}

func subTermInTerm(t Term, target Term, gen func() Term) Term {
	switch x := t.(type) {
	case *FuncTerm:
		if len(x.Args) == 0 {
			if EqualTerm(x, target) {
				return gen()
			}
			return x
		}
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = subTermInTerm(a, target, gen)
		}
		return &FuncTerm{Name: x.Name, Args: args}
	case *VarTerm:
		if EqualTerm(x, target) {
			return gen()
		}
		return x
	default:
		return t
	}
}
