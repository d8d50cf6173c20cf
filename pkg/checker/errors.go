package checker

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Errors walks the whole proof tree and collects every line's recorded
// validation failure, prefixed by its displayed line number (spec §4.4:
// "a list of human-readable messages prefixed by line number").
func (p *Problem) Errors() error {
	idx := p.buildIndex()
	var result *multierror.Error
	p.collectErrors(p.proof, idx, &result)
	return result.ErrorOrNil()
}

func (p *Problem) collectErrors(sp *Subproof, idx *index, result **multierror.Error) {
	for _, obj := range sp.Seq {
		switch o := obj.(type) {
		case *Line:
			if o.Err != nil {
				*result = multierror.Append(*result, fmt.Errorf("Line %d: %w", idx.numOf[o], o.Err))
			}
		case *Subproof:
			p.collectErrors(o, idx, result)
		}
	}
}
