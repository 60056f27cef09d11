package nfa

import (
	"math/rand"
	"strings"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Gen walks from Start to End choosing Split branches by a fair coin and
// returns the runes consumed on the way, so n accepts the result. A wildcard
// produces a random alphanumeric rune. Loops end with probability one but
// have no length bound. rng is not shared; give each goroutine its own.
func (n *NFA) Gen(rng *rand.Rand) string {
	var out strings.Builder
	id := n.start
	for {
		s := n.states[n.check(id)]
		switch s.Kind {
		case Start:
			id = n.follow(id, s.Next)
		case Match:
			if s.Label.Any {
				out.WriteByte(alphanumeric[rng.Intn(len(alphanumeric))])
			} else {
				out.WriteRune(s.Label.Char)
			}
			id = n.follow(id, s.Next)
		case Split:
			if rng.Intn(2) == 0 {
				id = n.follow(id, s.Lhs)
			} else {
				id = n.follow(id, s.Rhs)
			}
		case End:
			return out.String()
		}
	}
}
