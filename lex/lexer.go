package lex

import (
	"fmt"

	"github.com/npillmayer/rexfa"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexfa.lex'.
func tracer() tracing.Trace {
	return tracing.Select("rexfa.lex")
}

// LexicalError is raised when the scanner meets a character outside the
// supported alphabet and metacharacter set. It carries the offending
// character and its zero-based position in the source string. Tokenization
// does not attempt recovery: the first illegal character aborts it.
type LexicalError struct {
	Char byte
	Pos  rexfa.Pos
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("illegal character %q at %s", e.Char, e.Pos)
}

// isWhitespace reports whether b is one of the whitespace characters the
// scanner silently skips between tokens: space, tab, newline, carriage return.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// scanner holds the scan cursor over a source buffer. It is not exported:
// clients only ever see the fully materialized token sequence from Tokenize.
type scanner struct {
	src []byte
	pos int
}

// Tokenize scans src into a token sequence terminated by exactly one End
// token. It returns a LexicalError on the first character that is neither
// whitespace, alphanumeric, nor one of the four metacharacters '|', '*',
// '(', ')'.
func Tokenize(src string) ([]Token, error) {
	s := &scanner{src: []byte(src)}
	toks := make([]Token, 0, len(src)+1)
	for {
		tok, err := s.next()
		if err != nil {
			tracer().Errorf("lex error: %v", err)
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == End {
			break
		}
	}
	tracer().Debugf("tokenized %d token(s) from %d byte(s)", len(toks), len(src))
	return toks, nil
}

// next scans and returns the next token, skipping whitespace first. The
// reported position counts every source byte, including skipped whitespace.
func (s *scanner) next() (Token, error) {
	for s.pos < len(s.src) && isWhitespace(s.src[s.pos]) {
		s.pos++
	}
	start := s.pos
	if s.pos >= len(s.src) {
		return Token{Kind: End, Pos: rexfa.Pos(start)}, nil
	}
	c := s.src[s.pos]
	switch {
	case rexfa.IsAlphanumeric(c):
		s.pos++
		return Token{Kind: Symbol, Lexeme: string(c), Pos: rexfa.Pos(start)}, nil
	case c == '|':
		s.pos++
		return Token{Kind: Union, Lexeme: "|", Pos: rexfa.Pos(start)}, nil
	case c == '*':
		s.pos++
		return Token{Kind: Star, Lexeme: "*", Pos: rexfa.Pos(start)}, nil
	case c == '(':
		s.pos++
		return Token{Kind: LParen, Lexeme: "(", Pos: rexfa.Pos(start)}, nil
	case c == ')':
		s.pos++
		return Token{Kind: RParen, Lexeme: ")", Pos: rexfa.Pos(start)}, nil
	default:
		return Token{}, &LexicalError{Char: c, Pos: rexfa.Pos(start)}
	}
}
