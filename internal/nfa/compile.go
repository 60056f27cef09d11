package nfa

import (
	"fmt"

	"thegrep/internal/syntax"
)

// fragment is a partially built sub-automaton: its entry state and the
// states whose outgoing edge is still loose.
type fragment struct {
	start StateID
	ends  []StateID
}

func (n *NFA) bindFragment(f fragment, to StateID) {
	for _, end := range f.ends {
		n.bind(end, to)
	}
}

// fragment compiles ast bottom-up (Thompson construction).
func (n *NFA) fragment(ast syntax.Node) fragment {
	switch node := ast.(type) {
	case syntax.AnyChar:
		s := n.addState(matchState(AnyLabel))
		return fragment{start: s, ends: []StateID{s}}
	case syntax.Char:
		s := n.addState(matchState(Literal(node.Value)))
		return fragment{start: s, ends: []StateID{s}}
	case *syntax.Catenation:
		lhs := n.fragment(node.Lhs)
		rhs := n.fragment(node.Rhs)
		n.bindFragment(lhs, rhs.start)
		return fragment{start: lhs.start, ends: rhs.ends}
	case *syntax.Alternation:
		lhs := n.fragment(node.Lhs)
		rhs := n.fragment(node.Rhs)
		s := n.addState(splitState(lhs.start))
		n.bind(s, rhs.start)
		return fragment{start: s, ends: append(lhs.ends, rhs.ends...)}
	case *syntax.Closure:
		body := n.fragment(node.Body)
		s := n.addState(splitState(body.start))
		n.bindFragment(body, s)
		return fragment{start: s, ends: []StateID{s}}
	case *syntax.OneOrMore:
		body := n.fragment(node.Body)
		s := n.addState(splitState(body.start))
		n.bindFragment(body, s)
		return fragment{start: body.start, ends: []StateID{s}}
	}
	panic(fmt.Sprintf("nfa: unknown syntax node %T", ast))
}
