package nfa

import (
	"fmt"

	"github.com/npillmayer/rexfa/ast"
)

// fragment is a partially built NFA piece: its own start and accept state,
// matching spec §4.3's "s_in"/"s_out" naming.
type fragment struct {
	in, out StateID
}

// Build runs Thompson's construction over root, producing an NFA with
// exactly one start state and one accepting state, where the accepting
// state has no outgoing transitions. State IDs are assigned in post-order
// over the AST (children before parents), per the per-shape construction
// rules in spec §4.3:
//
//   - Symbol(c): s_in --c--> s_out
//   - Concat(L, R): ε from L.out to R.in; fragment is (L.in, R.out)
//   - Union(L, R): fresh s_in/s_out; ε s_in->{L.in,R.in}; ε {L.out,R.out}->s_out
//   - Star(C): fresh s_in/s_out; ε s_in->C.in, s_in->s_out, C.out->C.in, C.out->s_out
func Build(root ast.Node) *NFA {
	b := newBuilder()
	frag := build(b, root)
	n := &NFA{
		states:   b.states,
		start:    frag.in,
		accept:   frag.out,
		alphabet: collectAlphabet(root),
	}
	tracer().Infof("built NFA: %s", n)
	return n
}

func build(b *builder, node ast.Node) fragment {
	switch n := node.(type) {
	case ast.Symbol:
		in := b.newState()
		out := b.newState()
		b.addSymbol(in, n.Char, out)
		return fragment{in: in, out: out}
	case ast.Concat:
		left := build(b, n.Left)
		right := build(b, n.Right)
		b.addEpsilon(left.out, right.in)
		return fragment{in: left.in, out: right.out}
	case ast.Union:
		left := build(b, n.Left)
		right := build(b, n.Right)
		in := b.newState()
		out := b.newState()
		b.addEpsilon(in, left.in)
		b.addEpsilon(in, right.in)
		b.addEpsilon(left.out, out)
		b.addEpsilon(right.out, out)
		return fragment{in: in, out: out}
	case ast.Star:
		child := build(b, n.Child)
		in := b.newState()
		out := b.newState()
		b.addEpsilon(in, child.in)
		b.addEpsilon(in, out)
		b.addEpsilon(child.out, child.in)
		b.addEpsilon(child.out, out)
		return fragment{in: in, out: out}
	default:
		panic(fmt.Sprintf("nfa.Build: unreachable AST shape %T", node))
	}
}

// collectAlphabet walks the AST and collects the set of Symbol characters,
// which is by definition the NFA's alphabet (spec §4.3, last sentence).
func collectAlphabet(node ast.Node) (alphabet map[byte]struct{}) {
	alphabet = make(map[byte]struct{})
	var walk func(ast.Node)
	walk = func(node ast.Node) {
		switch n := node.(type) {
		case ast.Symbol:
			alphabet[n.Char] = struct{}{}
		case ast.Concat:
			walk(n.Left)
			walk(n.Right)
		case ast.Union:
			walk(n.Left)
			walk(n.Right)
		case ast.Star:
			walk(n.Child)
		}
	}
	walk(node)
	return alphabet
}
