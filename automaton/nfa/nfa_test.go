package nfa

import (
	"testing"

	"github.com/npillmayer/rexfa/ast"
	"github.com/npillmayer/rexfa/lex"
	"github.com/npillmayer/rexfa/parse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	toks, err := lex.Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize(%q): %v", src, err)
	}
	root, err := parse.Parse(toks)
	if err != nil {
		t.Fatalf("parse(%q): %v", src, err)
	}
	return root
}

func TestBuildSingleAcceptNoOutgoing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.nfa")
	defer teardown()
	//
	for _, src := range []string{"a", "ab", "a|b", "a*", "(a|b)*c", "a**"} {
		n := Build(mustParse(t, src))
		if out := n.State(n.Accept()).edges; len(out) != 0 {
			t.Errorf("%q: accepting state has %d outgoing edges, want 0", src, len(out))
		}
	}
}

func TestAlphabetIsExactlySymbolSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.nfa")
	defer teardown()
	//
	n := Build(mustParse(t, "(a|b)*c"))
	got := n.Alphabet().Sorted()
	want := []byte{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("alphabet = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("alphabet[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSimulateScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.nfa")
	defer teardown()
	//
	tests := []struct {
		regex, input string
		accept       bool
	}{
		{"a", "a", true},
		{"a", "b", false},
		{"a|b", "b", true},
		{"ab", "ab", true},
		{"ab", "ba", false},
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"(a|b)*", "abba", true},
		{"(a|b)*c", "aabc", true},
		{"(a|b)*c", "aab", false},
		{"a**", "aaa", true},
	}
	for _, tc := range tests {
		n := Build(mustParse(t, tc.regex))
		if got := n.Simulate(tc.input); got != tc.accept {
			t.Errorf("Simulate(%q, %q) = %v, want %v", tc.regex, tc.input, got, tc.accept)
		}
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.nfa")
	defer teardown()
	//
	n := Build(mustParse(t, "(a|b)*c"))
	once := n.EpsilonClosure([]StateID{n.Start()})
	twice := n.EpsilonClosure(once)
	if len(once) != len(twice) {
		t.Fatalf("closure not idempotent: once=%v twice=%v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("closure not idempotent at %d: %v vs %v", i, once, twice)
		}
	}
}

func TestDeterministicStateCount(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.nfa")
	defer teardown()
	//
	a := Build(mustParse(t, "(a|b)*c"))
	b := Build(mustParse(t, "(a|b)*c"))
	if a.NumStates() != b.NumStates() {
		t.Errorf("expected identical state counts across compilations, got %d vs %d", a.NumStates(), b.NumStates())
	}
}
