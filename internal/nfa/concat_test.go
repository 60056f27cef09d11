package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func concat(t *testing.T, lhs, rhs string) *NFA {
	t.Helper()
	return Concat(newNFA(t, lhs), newNFA(t, rhs))
}

func TestConcat(t *testing.T) {
	tests := []struct {
		lhs, rhs string
		accept   []string
		reject   []string
	}{
		{"ab", "cd", []string{"abcd"}, []string{"abcde", "ab", "cd"}},
		{"a*", "c*", []string{"", "a", "c", "ac", "aaccc"}, []string{"ca"}},
		{"ab", "c|d", []string{"abc", "abd"}, []string{"ab", "abcd"}},
		{"(a|b)*", "(c|d)*", []string{"", "abd", "abbbbbba", "ccccddd", "d"}, []string{"ca"}},
		{"a|b|c", "c|d", []string{"ac", "ad", "bc", "bd", "cc", "cd"}, []string{"a", "dd"}},
		{"abcd", "ba+", []string{"abcdba", "abcdbaaa"}, []string{"abcda", "abcdb"}},
		{"a|b|(c|d)*(e|f|g)+", "((h|i)*j+)((k|l|m)|n)", []string{"ejk", "ejn", "ahhhhjl", "bhhhhjjm"}, []string{"jk"}},
		{"abc*", "c|d", []string{"abc", "abccccd", "abd", "abcc"}, []string{"ab"}},
		{"ab+", "d+", []string{"abd", "abbbbd", "abdddd"}, []string{"ad"}},
	}
	for _, tt := range tests {
		t.Run(tt.lhs+" + "+tt.rhs, func(t *testing.T) {
			n := concat(t, tt.lhs, tt.rhs)
			for _, s := range tt.accept {
				assert.True(t, n.Accepts(s), "should accept %q", s)
			}
			for _, s := range tt.reject {
				assert.False(t, n.Accepts(s), "should reject %q", s)
			}
		})
	}
}

func TestConcatLayout(t *testing.T) {
	n := concat(t, "ab", "cd")
	want := []State{
		start(1), match('a', 2), match('b', 3),
		start(4), match('c', 5), match('d', 6), endState(),
	}
	assert.Equal(t, want, n.States())
	assert.Equal(t, StateID(0), n.Start())
}

func TestConcatMatchesCatenatedPattern(t *testing.T) {
	pairs := [][2]string{{"ab", "cd"}, {"a", "b"}, {"x", "yz"}, {"abc", "a"}}
	for _, p := range pairs {
		joined := newNFA(t, p[0]+p[1])
		n := concat(t, p[0], p[1])
		for _, s := range allStrings("abcdxyz", 4) {
			assert.Equal(t, joined.Accepts(s), n.Accepts(s), "%q + %q on %q", p[0], p[1], s)
		}
	}
}

// A wildcard in the right operand turns into a literal '.' on relocation;
// the left operand keeps its wildcards.
func TestConcatRewritesRightWildcardToLiteralDot(t *testing.T) {
	n := concat(t, "a", ".")
	assert.True(t, n.Accepts("a."))
	assert.False(t, n.Accepts("ab"))
	assert.Equal(t, []Label{Literal('a'), Literal('.')}, matchLabels(n))

	n = concat(t, ".", "a")
	assert.True(t, n.Accepts("xa"))
	assert.True(t, n.Accepts(".a"))
	assert.Equal(t, []Label{AnyLabel, Literal('a')}, matchLabels(n))

	n = concat(t, "a|.", "(.b)*")
	assert.True(t, n.Accepts("z.b.b"))
	assert.False(t, n.Accepts("zxb"))
	assert.Equal(t, []Label{Literal('a'), AnyLabel, Literal('.'), Literal('b')}, matchLabels(n))
}

func matchLabels(n *NFA) []Label {
	var labels []Label
	for _, s := range n.States() {
		if s.Kind == Match {
			labels = append(labels, s.Label)
		}
	}
	return labels
}

func TestConcatChains(t *testing.T) {
	n := Concat(concat(t, "a", "b+"), newNFA(t, "c|d"))
	assert.True(t, n.Accepts("abbd"))
	assert.False(t, n.Accepts("abb"))
	assert.Equal(t, End, n.State(StateID(n.Len()-1)).Kind)
}

func TestConcatConsumesOperands(t *testing.T) {
	lhs, rhs := newNFA(t, "a"), newNFA(t, "b")
	n := Concat(lhs, rhs)
	require.True(t, n.Accepts("ab"))
	assert.Panics(t, func() { lhs.Accepts("a") })
	assert.Panics(t, func() { rhs.Accepts("b") })
}

func TestConcatRejectsIncompleteOperands(t *testing.T) {
	assert.Panics(t, func() { Concat(&NFA{}, newNFA(t, "a")) })

	loose := &NFA{}
	loose.start = loose.addState(startState())
	loose.addState(endState())
	assert.Panics(t, func() { Concat(newNFA(t, "a"), loose) })
}
