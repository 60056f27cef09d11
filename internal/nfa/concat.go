package nfa

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Concat returns an automaton for the language of lhs followed by that of
// rhs without reparsing either. The End state of lhs is dropped and the
// states of rhs are appended after shifting every edge by the new offset,
// so the edges that pointed at the old End now reach the Start of rhs.
//
// Both operands are consumed and must not be used afterwards. Relocated
// wildcard states of rhs become Literal('.') matches.
func Concat(lhs, rhs *NFA) *NFA {
	if len(lhs.states) == 0 || lhs.states[len(lhs.states)-1].Kind != End {
		panic("nfa: left operand of Concat does not end with its End state")
	}
	states := slices.Clip(lhs.states[:len(lhs.states)-1])
	offset := StateID(len(states))
	states = slices.Grow(states, len(rhs.states))

	for id, s := range rhs.states {
		from := StateID(id)
		switch s.Kind {
		case Start:
			s.Next = rhs.follow(from, s.Next) + offset
		case Match:
			if s.Label.Any {
				s.Label = Literal('.')
			}
			s.Next = rhs.follow(from, s.Next) + offset
		case Split:
			s.Lhs = rhs.follow(from, s.Lhs) + offset
			s.Rhs = rhs.follow(from, s.Rhs) + offset
		case End:
		default:
			panic(fmt.Sprintf("nfa: state %d has unknown kind %s", id, s.Kind))
		}
		states = append(states, s)
	}

	out := &NFA{start: lhs.start, states: states}
	lhs.states, rhs.states = nil, nil
	return out
}
