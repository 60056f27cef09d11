package nfa

// Accepts reports whether the whole of input is accepted. The search is a
// depth-first backtracking walk that tries the left branch of every Split
// first. There is no memoization: an epsilon cycle that consumes nothing,
// as in (a*)*, recurses without bound on a rejected input.
func (n *NFA) Accepts(input string) bool {
	return n.walk([]rune(input), n.start, 0)
}

func (n *NFA) walk(input []rune, id StateID, pos int) bool {
	s := n.states[n.check(id)]
	switch s.Kind {
	case Start:
		return n.walk(input, n.follow(id, s.Next), pos)
	case Match:
		if pos >= len(input) || !s.Label.Matches(input[pos]) {
			return false
		}
		return n.walk(input, n.follow(id, s.Next), pos+1)
	case Split:
		if n.walk(input, n.follow(id, s.Lhs), pos) {
			return true
		}
		return n.walk(input, n.follow(id, s.Rhs), pos)
	}
	return pos >= len(input)
}
