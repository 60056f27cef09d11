package nfa

import (
	"fmt"

	"thegrep/internal/syntax"
)

// NFA is an arena of states plus the index of its Start state. States
// refer to each other only by StateID. A compiled NFA is never mutated,
// so one value may serve concurrent Accepts calls.
type NFA struct {
	start  StateID
	states []State
}

// Compile parses pattern and builds its automaton.
func Compile(pattern string) (*NFA, error) {
	ast, err := syntax.ParseString(pattern)
	if err != nil {
		return nil, err
	}
	return FromAST(ast), nil
}

// MustCompile is like Compile but panics on a malformed pattern.
func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return n
}

// FromAST builds the automaton of an already parsed pattern: a Start
// state, the states of the body, and a final End state every loose end
// of the body is wired to.
func FromAST(ast syntax.Node) *NFA {
	n := &NFA{}
	n.start = n.addState(startState())

	body := n.fragment(ast)
	n.bind(n.start, body.start)

	end := n.addState(endState())
	n.bindFragment(body, end)
	return n
}

// Start returns the ID of the entry state.
func (n *NFA) Start() StateID { return n.start }

// Len returns the number of states in the arena.
func (n *NFA) Len() int { return len(n.states) }

// State returns a copy of state id. It panics if id is not in the arena.
func (n *NFA) State(id StateID) State {
	return n.states[n.check(id)]
}

// States returns a copy of the arena in append order.
func (n *NFA) States() []State {
	out := make([]State, len(n.states))
	copy(out, n.states)
	return out
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{start: %d, states: %v}", int(n.start), n.states)
}

func (n *NFA) check(id StateID) StateID {
	if id < 0 || int(id) >= len(n.states) {
		panic(fmt.Sprintf("nfa: state %d out of range [0, %d)", int(id), len(n.states)))
	}
	return id
}

// follow returns the target of a bound edge and panics on an unbound one.
func (n *NFA) follow(from StateID, to StateID) StateID {
	if to == NoState {
		panic(fmt.Sprintf("nfa: state %d has an unbound edge", int(from)))
	}
	return n.check(to)
}

func (n *NFA) addState(s State) StateID {
	n.states = append(n.states, s)
	return StateID(len(n.states) - 1)
}

// bind wires the loose edge of from to to. For a Split only the right
// branch is loose; the left one was bound when the state was created.
func (n *NFA) bind(from, to StateID) {
	s := &n.states[n.check(from)]
	switch s.Kind {
	case Start, Match:
		s.Next = to
	case Split:
		s.Rhs = to
	}
}
