// Package graphviz renders automata in the DOT language.
package graphviz

import (
	"fmt"
	"io"
	"strings"

	"thegrep/internal/nfa"
)

// Graph is the read-only view of an automaton the exporter needs.
type Graph interface {
	Start() nfa.StateID
	Len() int
	State(id nfa.StateID) nfa.State
}

// Write prints g to w as a DOT digraph, states in append order. Unbound
// edges are left out.
func Write(w io.Writer, g Graph) error {
	var b strings.Builder
	b.WriteString("digraph nfa {\n")
	b.WriteString("    rankdir=LR;\n")
	b.WriteString("    node [shape=circle];\n")
	fmt.Fprintf(&b, "    _start [shape=point]; _start -> n%d;\n", int(g.Start()))

	for i := 0; i < g.Len(); i++ {
		id := nfa.StateID(i)
		s := g.State(id)
		switch s.Kind {
		case nfa.Start:
			fmt.Fprintf(&b, "    n%d [label=\"Start\"];\n", i)
			writeEdge(&b, id, s.Next, "")
		case nfa.Match:
			fmt.Fprintf(&b, "    n%d [label=\"Match\"];\n", i)
			writeEdge(&b, id, s.Next, matchLabel(s.Label))
		case nfa.Split:
			fmt.Fprintf(&b, "    n%d [label=\"Split\"];\n", i)
			writeEdge(&b, id, s.Lhs, "ε")
			writeEdge(&b, id, s.Rhs, "ε")
		case nfa.End:
			fmt.Fprintf(&b, "    n%d [label=\"End\", shape=doublecircle];\n", i)
		}
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// String returns the DOT text of g.
func String(g Graph) string {
	var b strings.Builder
	_ = Write(&b, g)
	return b.String()
}

func writeEdge(b *strings.Builder, from, to nfa.StateID, label string) {
	if to == nfa.NoState {
		return
	}
	if label == "" {
		fmt.Fprintf(b, "    n%d -> n%d;\n", int(from), int(to))
		return
	}
	fmt.Fprintf(b, "    n%d -> n%d [label=%q];\n", int(from), int(to), label)
}

func matchLabel(l nfa.Label) string {
	if l.Any {
		return "ANY"
	}
	return string(l.Char)
}
