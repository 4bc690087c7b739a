/*
Package env implements a scope-stack of named pattern bindings for the
REPL's "let name = pattern" convenience (SPEC_FULL.md §10.1).

This is adapted from the teacher's runtime/symtable.go scope-linked symbol
table (Scope.Parent chain, map-backed lookup that falls through to the
parent scope on a miss) — renamed from "runtime tag bindings" to "named
regex source bindings" and stripped of the tag-tree (Sibling/Children)
machinery the interpreter runtime needed but a flat name->pattern binding
does not.
*/
package env

import "fmt"

// Scope holds name-to-pattern bindings and optionally links back to a
// parent scope, forming a tree — mirroring runtime.Scope's structure.
type Scope struct {
	Name   string
	Parent *Scope
	table  map[string]string
}

// NewScope creates an empty, named scope linked to parent (nil for the
// outermost/global scope).
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{
		Name:   name,
		Parent: parent,
		table:  make(map[string]string),
	}
}

// Bind associates name with a regex source pattern, overwriting any prior
// binding for name in this scope. It returns the previously bound pattern,
// if any.
func (s *Scope) Bind(name, pattern string) (previous string, hadPrevious bool) {
	previous, hadPrevious = s.table[name]
	s.table[name] = pattern
	return previous, hadPrevious
}

// Resolve looks up name in this scope, falling through to ancestor scopes on
// a miss — the same resolution order runtime.SymbolTable.ResolveTag uses
// within a single table, generalized across the scope chain.
func (s *Scope) Resolve(name string) (pattern string, found bool) {
	for sc := s; sc != nil; sc = sc.Parent {
		if p, ok := sc.table[name]; ok {
			return p, true
		}
	}
	return "", false
}

// Size returns the number of bindings in this scope (not counting ancestors).
func (s *Scope) Size() int {
	return len(s.table)
}

func (s *Scope) String() string {
	return fmt.Sprintf("Scope(%s, %d binding(s))", s.Name, len(s.table))
}
