package lex

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTokenizeBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.lex")
	defer teardown()
	//
	toks, err := Tokenize("a|b*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantKinds := []Kind{Symbol, Union, Symbol, Star, End}
	if len(toks) != len(wantKinds) {
		t.Fatalf("expected %d tokens, got %d: %v", len(wantKinds), len(toks), toks)
	}
	for i, k := range wantKinds {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected kind %s, got %s", i, k, toks[i].Kind)
		}
	}
	t.Logf("tokens: %v", toks)
}

func TestTokenizeWhitespaceSkippedButCounted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.lex")
	defer teardown()
	//
	toks, err := Tokenize("a  b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 { // 'a', 'b', End
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[1].Pos != 3 {
		t.Errorf("expected second symbol at offset 3 (whitespace counted), got %d", toks[1].Pos)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.lex")
	defer teardown()
	//
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != End {
		t.Fatalf("expected a lone End token, got %v", toks)
	}
}

func TestTokenizeIllegalCharacter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.lex")
	defer teardown()
	//
	_, err := Tokenize("a#b")
	if err == nil {
		t.Fatal("expected a LexicalError, got nil")
	}
	lexErr, ok := err.(*LexicalError)
	if !ok {
		t.Fatalf("expected *LexicalError, got %T", err)
	}
	if lexErr.Char != '#' || lexErr.Pos != 1 {
		t.Errorf("expected ('#', 1), got (%q, %d)", lexErr.Char, lexErr.Pos)
	}
}

func TestTokenizeAllMetacharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexfa.lex")
	defer teardown()
	//
	toks, err := Tokenize("(a|b)*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Kind{LParen, Symbol, Union, Symbol, RParen, Star, End}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}
