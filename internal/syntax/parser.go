package syntax

import (
	"github.com/alecthomas/participle/v2"
)

// Grammar, with both binary operators right-associative:
//
//	RegExpr    ::= Catenation ('|' RegExpr)?
//	Catenation ::= Quantified Catenation?
//	Quantified ::= Atom '*'? '+'?
//	Atom       ::= '(' RegExpr ')' | '.' | Char
type parser struct {
	tokens *Tokenizer
	tok    Token
	ok     bool // tok holds a token not yet consumed
}

// Parse reads one RegExpr from tokens and requires the input to end
// there. Errors are participle.Error values positioned at the offending
// token.
func Parse(tokens *Tokenizer) (Node, error) {
	p := &parser{tokens: tokens}
	p.scan()
	expr, err := p.regExpr()
	if err != nil {
		return nil, err
	}
	if p.ok {
		return nil, p.errorf("expected end of input, found %s", p.tok)
	}
	return expr, nil
}

// ParseString parses pattern.
func ParseString(pattern string) (Node, error) {
	return Parse(NewTokenizer(pattern))
}

func (p *parser) scan() { p.tok, p.ok = p.tokens.Next() }

func (p *parser) peek(kind TokenKind) bool { return p.ok && p.tok.Kind == kind }

func (p *parser) found() string {
	if !p.ok {
		return "end of input"
	}
	return p.tok.String()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	pos := p.tokens.Pos()
	if p.ok {
		pos = p.tok.Pos
	}
	return participle.Errorf(pos, format, args...)
}

func (p *parser) regExpr() (Node, error) {
	lhs, err := p.catenation()
	if err != nil {
		return nil, err
	}
	if !p.peek(TokUnionBar) {
		return lhs, nil
	}
	p.scan()
	if !p.ok || !canBeginAtom(p.tok.Kind) {
		return nil, p.errorf("missing expression after UnionBar, found %s", p.found())
	}
	rhs, err := p.regExpr()
	if err != nil {
		return nil, err
	}
	return &Alternation{Lhs: lhs, Rhs: rhs}, nil
}

func (p *parser) catenation() (Node, error) {
	lhs, err := p.quantified()
	if err != nil {
		return nil, err
	}
	if !p.ok || !canBeginAtom(p.tok.Kind) {
		return lhs, nil
	}
	rhs, err := p.catenation()
	if err != nil {
		return nil, err
	}
	return &Catenation{Lhs: lhs, Rhs: rhs}, nil
}

// quantified takes at most one '*' and then at most one '+'. A repeated
// quantifier is left for the caller to trip over.
func (p *parser) quantified() (Node, error) {
	atom, err := p.atom()
	if err != nil {
		return nil, err
	}
	if p.peek(TokKleeneStar) {
		p.scan()
		atom = &Closure{Body: atom}
	}
	if p.peek(TokKleenePlus) {
		p.scan()
		atom = &OneOrMore{Body: atom}
	}
	return atom, nil
}

func (p *parser) atom() (Node, error) {
	if !p.ok {
		return nil, p.errorf("unexpected end of input")
	}
	tok := p.tok
	switch tok.Kind {
	case TokLParen:
		p.scan()
		expr, err := p.regExpr()
		if err != nil {
			return nil, err
		}
		if !p.peek(TokRParen) {
			return nil, p.errorf("missing closing parenthesis: expected RParen, found %s", p.found())
		}
		p.scan()
		return expr, nil
	case TokAnyChar:
		p.scan()
		return AnyChar{}, nil
	case TokChar:
		p.scan()
		return Char{Value: tok.Char}, nil
	}
	return nil, p.errorf("unexpected token %s", tok)
}
