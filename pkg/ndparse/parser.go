package ndparse

import (
	"strconv"
	"strings"

	"github.com/nd-prover/ndcheck/pkg/term"
)

type parser struct {
	toks []token
	pos  int
	src  string
}

func newParser(src string) (*parser, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks, src: src}, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, error) {
	if p.peek().kind != k {
		return token{}, parseErrorf("expected %s in %q, found %q", what, p.src, p.peek().text)
	}
	return p.next(), nil
}

// ParseFormula parses a complete formula from s.
func ParseFormula(s string) (term.Formula, error) {
	p, err := newParser(s)
	if err != nil {
		return nil, err
	}
	f, err := p.parseFormula()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, parseErrorf("unexpected trailing input in %q at %q", s, p.peek().text)
	}
	return f, nil
}

func (p *parser) parseFormula() (term.Formula, error) { return p.parseIff() }

func (p *parser) parseIff() (term.Formula, error) {
	left, err := p.parseImp()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokIff {
		p.next()
		right, err := p.parseImp()
		if err != nil {
			return nil, err
		}
		left = &term.Iff{Left: left, Right: right}
	}
	return left, nil
}

// parseImp is right-associative: A → B → C parses as A → (B → C).
func (p *parser) parseImp() (term.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImp {
		p.next()
		right, err := p.parseImp()
		if err != nil {
			return nil, err
		}
		return &term.Imp{Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *parser) parseOr() (term.Formula, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokOr {
		p.next()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &term.Or{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (term.Formula, error) {
	left, err := p.parseNeg()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokAnd {
		p.next()
		right, err := p.parseNeg()
		if err != nil {
			return nil, err
		}
		left = &term.And{Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseNeg() (term.Formula, error) {
	if p.peek().kind == tokNot {
		p.next()
		inner, err := p.parseNeg()
		if err != nil {
			return nil, err
		}
		return &term.Not{Inner: inner}, nil
	}
	return p.parseAtom()
}

func (p *parser) parseAtom() (term.Formula, error) {
	switch p.peek().kind {
	case tokBot:
		p.next()
		return &term.Bot{}, nil
	case tokLParen:
		p.next()
		f, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen, "')'"); err != nil {
			return nil, err
		}
		return f, nil
	case tokForall, tokExists:
		isForall := p.peek().kind == tokForall
		p.next()
		vTok, err := p.expect(tokIdent, "a bound variable")
		if err != nil {
			return nil, err
		}
		v := term.NewVar(vTok.text)
		inner, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if isForall {
			return &term.Forall{Var: v, Inner: inner}, nil
		}
		return &term.Exists{Var: v, Inner: inner}, nil
	case tokBox, tokDia:
		isBox := p.peek().kind == tokBox
		p.next()
		inner, err := p.parseFormula()
		if err != nil {
			return nil, err
		}
		if isBox {
			return &term.Box{Inner: inner}, nil
		}
		return &term.Dia{Inner: inner}, nil
	case tokIdent:
		return p.parsePredOrEq()
	default:
		return nil, parseErrorf("expected a formula in %q, found %q", p.src, p.peek().text)
	}
}

// parsePredOrEq parses "name", "name(args)", or a bare/applied term
// followed by "= term", disambiguating Pred from Eq by whether "=" follows.
func (p *parser) parsePredOrEq() (term.Formula, error) {
	name := p.next().text
	var args []term.Term
	if p.peek().kind == tokLParen {
		var err error
		args, err = p.parseArgList()
		if err != nil {
			return nil, err
		}
	}
	if p.peek().kind == tokEq {
		p.next()
		lhs := termFromNameArgs(name, args)
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return &term.Eq{Left: lhs, Right: rhs}, nil
	}
	return &term.Pred{Name: name, Args: args}, nil
}

func (p *parser) parseArgList() ([]term.Term, error) {
	if _, err := p.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var args []term.Term
	if p.peek().kind != tokRParen {
		for {
			t, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			args = append(args, t)
			if p.peek().kind == tokComma {
				p.next()
				continue
			}
			break
		}
	}
	if _, err := p.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *parser) parseTerm() (term.Term, error) {
	tok, err := p.expect(tokIdent, "a term")
	if err != nil {
		return nil, err
	}
	var args []term.Term
	if p.peek().kind == tokLParen {
		args, err = p.parseArgList()
		if err != nil {
			return nil, err
		}
	}
	return termFromNameArgs(tok.text, args), nil
}

// termFromNameArgs builds a Term from a parsed name and optional argument
// list. An applied name is always a FuncTerm. A bare name is a *VarTerm
// when it is a single lowercase letter in the variable range {s..z}, and a
// *FuncTerm constant (the convention used for {a..r}) otherwise — this
// extends the letter convention to multi-character and predicate-style
// names, which the original grammar leaves unspecified.
func termFromNameArgs(name string, args []term.Term) term.Term {
	if len(args) > 0 {
		return &term.FuncTerm{Name: name, Args: args}
	}
	if len(name) == 1 && name[0] >= 's' && name[0] <= 'z' {
		return term.NewVar(name)
	}
	return term.NewConst(name)
}

// ParseAndVerifyFormula parses s then rejects it unless it belongs to
// logic's well-formedness fragment (spec §4.2).
func ParseAndVerifyFormula(s string, wellFormed func(term.Formula) bool, logicName string) (term.Formula, error) {
	f, err := ParseFormula(s)
	if err != nil {
		return nil, err
	}
	if !wellFormed(f) {
		return nil, parseErrorf("%q is not a well-formed %s formula.", term.Print(f), logicName)
	}
	return f, nil
}

// ParseAndVerifyPremises splits s on top-level commas/semicolons and
// parses+verifies each part; "NA" (after trimming) denotes the empty list.
func ParseAndVerifyPremises(s string, wellFormed func(term.Formula) bool, logicName string) ([]term.Formula, error) {
	s = strings.TrimSpace(s)
	if s == "NA" {
		return nil, nil
	}
	parts := splitTopLevel(s, ',', ';')
	out := make([]term.Formula, 0, len(parts))
	for _, part := range parts {
		f, err := ParseAndVerifyFormula(part, wellFormed, logicName)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func splitTopLevel(s string, seps ...byte) []string {
	var parts []string
	depth := 0
	start := 0
	isSep := func(b byte) bool {
		for _, sep := range seps {
			if b == sep {
				return true
			}
		}
		return false
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 && isSep(s[i]) {
				if part := strings.TrimSpace(s[start:i]); part != "" {
					parts = append(parts, part)
				}
				start = i + 1
			}
		}
	}
	if tail := strings.TrimSpace(s[start:]); tail != "" {
		parts = append(parts, tail)
	}
	return parts
}

// Citation is either a single line reference or a subproof range m–n.
type Citation struct {
	Line      int
	IsRange   bool
	RangeFrom int
	RangeTo   int
}

// Justification is a parsed rule name plus its citation list.
type Justification struct {
	RuleName  string
	Citations []Citation
}

// ParseCitations parses a comma-separated citation list: integers or
// ranges written n–m (an en dash or a plain hyphen is accepted).
func ParseCitations(s string) ([]Citation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Citation, 0, len(parts))
	for _, raw := range parts {
		part := strings.TrimSpace(raw)
		if part == "" {
			return nil, parseErrorf("empty citation in %q", s)
		}
		sep := "–"
		idx := strings.Index(part, sep)
		if idx < 0 {
			sep = "-"
			idx = strings.Index(part, sep)
		}
		if idx >= 0 {
			fromStr := strings.TrimSpace(part[:idx])
			toStr := strings.TrimSpace(part[idx+len(sep):])
			from, err1 := strconv.Atoi(fromStr)
			to, err2 := strconv.Atoi(toStr)
			if err1 != nil || err2 != nil {
				return nil, parseErrorf("invalid citation range %q", part)
			}
			out = append(out, Citation{IsRange: true, RangeFrom: from, RangeTo: to})
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, parseErrorf("invalid citation %q", part)
		}
		out = append(out, Citation{Line: n})
	}
	return out, nil
}

// ParseJustification parses "rule [citations]": a rule name followed by an
// optional comma-separated citation list.
func ParseJustification(s string) (*Justification, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, parseErrorf("empty justification")
	}
	fields := strings.Fields(s)
	ruleName := fields[0]
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), ruleName))
	citations, err := ParseCitations(rest)
	if err != nil {
		return nil, err
	}
	return &Justification{RuleName: ruleName, Citations: citations}, nil
}

// ParseLine parses "<formula> ; <rule> [<citations>]".
func ParseLine(s string) (term.Formula, *Justification, error) {
	parts := strings.SplitN(s, ";", 2)
	if len(parts) != 2 {
		return nil, nil, parseErrorf("line %q is missing a \";\" separating formula and justification", s)
	}
	f, err := ParseFormula(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, nil, err
	}
	j, err := ParseJustification(parts[1])
	if err != nil {
		return nil, nil, err
	}
	return f, j, nil
}

// ParseAssumption parses a bare formula with no justification, used for
// begin_subproof/end_and_begin_subproof edits.
func ParseAssumption(s string) (term.Formula, error) {
	return ParseFormula(strings.TrimSpace(s))
}
