package rules

import "github.com/nd-prover/ndcheck/pkg/logic"

// Catalog is the set of rules legal in one logic, indexed by both
// canonical name and ASCII alias so a justification can cite either.
type Catalog struct {
	byName map[string]*Rule
	all    []*Rule
}

func newCatalog(rules ...*Rule) *Catalog {
	c := &Catalog{byName: map[string]*Rule{}, all: rules}
	for _, r := range rules {
		c.byName[r.Canonical] = r
		c.byName[r.Alias] = r
	}
	return c
}

// Lookup resolves a rule by its canonical name or ASCII alias.
func (c *Catalog) Lookup(name string) (*Rule, bool) {
	r, ok := c.byName[name]
	return r, ok
}

// All returns every rule in the catalog, canonical order.
func (c *Catalog) All() []*Rule { return c.all }

// ForLogic returns the catalog of rules legal for l (spec §3: a logic
// "names the allowed rule set").
func ForLogic(l logic.Logic) *Catalog {
	rules := TFLRules()
	if l.IsFirstOrder() {
		rules = append(rules, FOLRules()...)
	}
	if l.IsModal() {
		rules = append(rules, ModalRules()...)
	}
	return newCatalog(rules...)
}
