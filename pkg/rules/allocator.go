package rules

import "github.com/nd-prover/ndcheck/pkg/term"

// Allocator hands out fresh metavariable IDs from its own per-instance
// counter; IDs are never drawn from a process-global counter, so two
// Allocators never alias metavariable identity (spec §5).
type Allocator struct {
	next int
}

// NewAllocator returns an Allocator starting from id 0.
func NewAllocator() *Allocator { return &Allocator{} }

// Formula returns a fresh, unbound metavariable usable in a Formula
// position, optionally restricted by domain.
func (a *Allocator) Formula(domain func(any) bool) *term.Metavar {
	a.next++
	return term.NewMetavar(a.next, domain)
}

// Term is Formula's counterpart for a Term position.
func (a *Allocator) Term(domain func(any) bool) *term.Metavar {
	a.next++
	return term.NewMetavar(a.next, domain)
}
