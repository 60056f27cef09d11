package nfa

import "fmt"

// StateID indexes the state arena of an NFA. IDs are stable: states are
// only ever appended.
type StateID int

// NoState marks an edge that is not bound yet.
const NoState StateID = -1

// Kind tags a State.
type Kind uint8

const (
	Start Kind = iota // unique entry, one epsilon edge
	Match             // consumes one rune
	Split             // two epsilon edges
	End               // accepting, no edges
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "Start"
	case Match:
		return "Match"
	case Split:
		return "Split"
	case End:
		return "End"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Label is what a Match state consumes: either any rune or one literal.
type Label struct {
	Any  bool
	Char rune
}

// AnyLabel matches every rune.
var AnyLabel = Label{Any: true}

// Literal matches only c.
func Literal(c rune) Label { return Label{Char: c} }

// Matches reports whether r is accepted by the label.
func (l Label) Matches(r rune) bool { return l.Any || l.Char == r }

func (l Label) String() string {
	if l.Any {
		return "Any"
	}
	return fmt.Sprintf("Literal(%q)", l.Char)
}

// State is one node of the automaton. Next is used by Start and Match,
// Lhs and Rhs by Split, Label by Match.
type State struct {
	Kind  Kind
	Label Label
	Next  StateID
	Lhs   StateID
	Rhs   StateID
}

func startState() State { return State{Kind: Start, Next: NoState, Lhs: NoState, Rhs: NoState} }

func matchState(l Label) State {
	return State{Kind: Match, Label: l, Next: NoState, Lhs: NoState, Rhs: NoState}
}

// splitState binds the left branch at creation; the right one is bound later.
func splitState(lhs StateID) State {
	return State{Kind: Split, Next: NoState, Lhs: lhs, Rhs: NoState}
}

func endState() State { return State{Kind: End, Next: NoState, Lhs: NoState, Rhs: NoState} }

func (s State) String() string {
	switch s.Kind {
	case Start:
		return fmt.Sprintf("Start(%s)", edge(s.Next))
	case Match:
		return fmt.Sprintf("Match(%s, %s)", s.Label, edge(s.Next))
	case Split:
		return fmt.Sprintf("Split(%s, %s)", edge(s.Lhs), edge(s.Rhs))
	}
	return s.Kind.String()
}

func edge(id StateID) string {
	if id == NoState {
		return "None"
	}
	return fmt.Sprintf("%d", int(id))
}
