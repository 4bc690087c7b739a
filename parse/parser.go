/*
Package parse implements a recursive-descent parser that turns a lex.Token
sequence into an ast.Node tree, honoring the precedence union < concat <
star and left-associativity, with parentheses overriding:

	regex       := union
	union       := concat ( '|' concat )*
	concat      := star ( star )*            -- juxtaposition; >= 1 factor
	star        := atom ( '*' )*              -- postfix, chainable
	atom        := SYMBOL | '(' union ')'

Concatenation builds a left-leaning spine. Chained stars ("a**") are legal;
each '*' produces its own Star node.
*/
package parse

import (
	"fmt"

	"github.com/npillmayer/rexfa"
	"github.com/npillmayer/rexfa/ast"
	"github.com/npillmayer/rexfa/lex"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexfa.parse'.
func tracer() tracing.Trace {
	return tracing.Select("rexfa.parse")
}

// SyntaxError is raised when the token sequence violates the grammar. It
// carries a human-readable description and the offending token's kind and
// position.
type SyntaxError struct {
	Msg  string
	Kind lex.Kind
	Pos  rexfa.Pos
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s (found %s at %s)", e.Msg, e.Kind, e.Pos)
}

// parser holds the parse cursor over a token sequence. Not exported: the
// caller only ever sees Parse's (ast.Node, error) result.
type parser struct {
	toks []lex.Token
	pos  int
}

// Parse consumes a token sequence terminated by an End token and returns the
// AST rooted at the top-level union (or something simpler, if there is no
// alternation). It fails with a *SyntaxError on a missing atom, unmatched
// parenthesis, a stray operator, or trailing tokens after the top-level
// union.
//
// An input that tokenizes to nothing but End (empty or whitespace-only
// source) fails with SyntaxError("empty expression"): the language of the
// empty regex is not legal input, it is simply not accepted as one.
func Parse(toks []lex.Token) (ast.Node, error) {
	if len(toks) == 0 || (len(toks) == 1 && toks[0].Kind == lex.End) {
		return nil, &SyntaxError{Msg: "empty expression", Kind: lex.End, Pos: 0}
	}
	p := &parser{toks: toks}
	root, err := p.union()
	if err != nil {
		tracer().Errorf("parse error: %v", err)
		return nil, err
	}
	if p.current().Kind != lex.End {
		err := &SyntaxError{Msg: "trailing input after expression", Kind: p.current().Kind, Pos: p.current().Pos}
		tracer().Errorf("parse error: %v", err)
		return nil, err
	}
	tracer().Debugf("parsed AST: %s", root)
	return root, nil
}

func (p *parser) current() lex.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lex.Token {
	tok := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

// union := concat ( '|' concat )*
func (p *parser) union() (ast.Node, error) {
	left, err := p.concat()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == lex.Union {
		p.advance()
		right, err := p.concat()
		if err != nil {
			return nil, err
		}
		left = ast.Union{Left: left, Right: right}
	}
	return left, nil
}

// concat := star ( star )*
func (p *parser) concat() (ast.Node, error) {
	left, err := p.star()
	if err != nil {
		return nil, err
	}
	for p.startsAtom(p.current()) {
		right, err := p.star()
		if err != nil {
			return nil, err
		}
		left = ast.Concat{Left: left, Right: right}
	}
	return left, nil
}

// star := atom ( '*' )*
func (p *parser) star() (ast.Node, error) {
	node, err := p.atom()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == lex.Star {
		p.advance()
		node = ast.Star{Child: node}
	}
	return node, nil
}

// atom := SYMBOL | '(' union ')'
func (p *parser) atom() (ast.Node, error) {
	tok := p.current()
	switch tok.Kind {
	case lex.Symbol:
		p.advance()
		return ast.Symbol{Char: tok.Lexeme[0]}, nil
	case lex.LParen:
		p.advance()
		inner, err := p.union()
		if err != nil {
			return nil, err
		}
		if p.current().Kind != lex.RParen {
			return nil, &SyntaxError{Msg: "expected ')'", Kind: p.current().Kind, Pos: p.current().Pos}
		}
		p.advance()
		return inner, nil
	default:
		return nil, &SyntaxError{Msg: "expected a symbol or '('", Kind: tok.Kind, Pos: tok.Pos}
	}
}

// startsAtom reports whether tok can begin another factor in a concat chain,
// i.e. whether it starts an atom. concat's juxtaposition loop stops as soon
// as it sees '|', ')' or End.
func (p *parser) startsAtom(tok lex.Token) bool {
	return tok.Kind == lex.Symbol || tok.Kind == lex.LParen
}
