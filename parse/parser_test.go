package parse

import (
	"testing"

	"github.com/npillmayer/rexfa/ast"
	"github.com/npillmayer/rexfa/lex"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustTokenize(t *testing.T, src string) []lex.Token {
	t.Helper()
	toks, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", src, err)
	}
	return toks
}

func TestParseAccepts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.parse")
	defer teardown()
	//
	tests := []struct {
		src  string
		want string
	}{
		{"a", "a"},
		{"ab", "ab"},
		{"a|b", "(a|b)"},
		{"a*", "a*"},
		{"a**", "a**"},
		{"(a|b)*c", "(a|b)*c"},
		{"a|b|c", "((a|b)|c)"}, // union is left-associative in structure
		{"ab|cd", "(ab|cd)"},  // concat binds tighter than union
	}
	for _, tc := range tests {
		toks := mustTokenize(t, tc.src)
		root, err := Parse(toks)
		if err != nil {
			t.Fatalf("Parse(%q): unexpected error: %v", tc.src, err)
		}
		if got := root.String(); got != tc.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tc.src, got, tc.want)
		}
	}
}

func TestConcatIsLeftLeaning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.parse")
	defer teardown()
	//
	root, err := Parse(mustTokenize(t, "abc"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top, ok := root.(ast.Concat)
	if !ok {
		t.Fatalf("expected top-level Concat, got %T", root)
	}
	// ((a.b).c): Left should itself be a Concat, Right a lone Symbol.
	if _, ok := top.Left.(ast.Concat); !ok {
		t.Errorf("expected left-leaning spine, Left is %T", top.Left)
	}
	if s, ok := top.Right.(ast.Symbol); !ok || s.Char != 'c' {
		t.Errorf("expected Right to be Symbol('c'), got %v", top.Right)
	}
}

func TestParseRejects(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.parse")
	defer teardown()
	//
	bad := []string{"", "   ", "|a", "a|", "()", "(a", "a)", "(())", "*", "|", "("}
	for _, src := range bad {
		toks, err := lex.Tokenize(src)
		if err != nil {
			// a lexical failure is not what we're testing here for this set
			t.Fatalf("tokenize(%q): %v", src, err)
		}
		if _, err := Parse(toks); err == nil {
			t.Errorf("Parse(%q): expected SyntaxError, got nil", src)
		} else if _, ok := err.(*SyntaxError); !ok {
			t.Errorf("Parse(%q): expected *SyntaxError, got %T", src, err)
		}
	}
}
