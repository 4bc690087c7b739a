package ast

import "testing"

func TestStringerRendersSourceShape(t *testing.T) {
	// (a|b)*c
	tree := Concat{
		Left:  Star{Child: Union{Left: Symbol{'a'}, Right: Symbol{'b'}}},
		Right: Symbol{'c'},
	}
	if got, want := tree.String(), "(a|b)*c"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestNodeIsClosedToFourShapes(t *testing.T) {
	var nodes = []Node{
		Symbol{'a'},
		Concat{Symbol{'a'}, Symbol{'b'}},
		Union{Symbol{'a'}, Symbol{'b'}},
		Star{Symbol{'a'}},
	}
	for _, n := range nodes {
		switch n.(type) {
		case Symbol, Concat, Union, Star:
			// exhaustive by construction
		default:
			t.Errorf("unexpected node shape %T", n)
		}
	}
}
