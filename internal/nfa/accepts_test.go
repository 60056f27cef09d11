package nfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccepts(t *testing.T) {
	tests := []struct {
		pattern string
		accept  []string
		reject  []string
	}{
		{"ab", []string{"ab"}, []string{"abc", "a", "", "ba"}},
		{"a|b|c", []string{"a", "b", "c"}, []string{"", "ab", "d", "abc"}},
		{"a*", []string{"", "a", "aaaa"}, []string{"b", "ab"}},
		{"a+", []string{"a", "aaaa"}, []string{"", "b"}},
		{"a+b+", []string{"ab", "abb", "aaaaab", "aaaaaaaabbbbbb"}, []string{"a", "b", "ba"}},
		{"(a|b)+(c|d)+", []string{"abbc", "adc"}, []string{"ab", "cd"}},
		{"(a|b)+|(c|d)+", []string{"abb", "dc"}, []string{"ac", ""}},
		{"(a*)b+", []string{"b", "ab", "aabb"}, []string{"a", ""}},
		{"(ab)+b+", []string{"abb", "ababb"}, []string{"ababab"}},
		{"(ab)+bc*", []string{"abababb", "abbccc"}, []string{"ab"}},
		{"(abc)|b+|(ab)+", []string{"abc", "b", "ab", "abababab"}, []string{"abcb"}},
		{".*", []string{"", "abccc"}, nil},
		{".*ab.*", []string{"abc", "ab", "xxabyy"}, []string{"a", "ba"}},
		{"ab.*ab.*ab", []string{"abccccccccccccccabcdab"}, []string{"abcccccccccccccbcdab"}},
		{".*a.*", []string{"bab"}, []string{"bbbbbb"}},
		{"hello", []string{"hello"}, []string{"abc"}},
		{"x|y", []string{"x", "y"}, []string{"z"}},
		{"he", nil, []string{"hello"}},
		{"lo", nil, []string{"hello"}},
		{"el", nil, []string{"hello"}},
		{"he*", []string{"h", "heeeeee"}, []string{"hello"}},
		{"he..o", []string{"hello"}, []string{"helo"}},
		{"h.*", []string{"hello", "h"}, []string{"ello"}},
		{"(h|e)e(l|y)lo", []string{"hello", "eeylo"}, []string{"hallo"}},
		{"(h|a)..(l|o).", []string{"hello"}, []string{"jello"}},
		{"(h|a|e)*.(l)(l)(o|a)", []string{"hello", "xlla"}, []string{"hell"}},
		{"a.*c", []string{"aelloc", "ac"}, []string{"aellocx"}},
		{"abd*c", []string{"abc", "abdddc"}, []string{"abbc"}},
		{"é.", []string{"éa", "éé"}, []string{"é"}},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			n := newNFA(t, tt.pattern)
			for _, s := range tt.accept {
				assert.True(t, n.Accepts(s), "%q should accept %q", tt.pattern, s)
			}
			for _, s := range tt.reject {
				assert.False(t, n.Accepts(s), "%q should reject %q", tt.pattern, s)
			}
		})
	}
}

func TestAcceptsAlternationExactly(t *testing.T) {
	n := newNFA(t, "a|b|c")
	for _, s := range allStrings("abcd", 3) {
		want := s == "a" || s == "b" || s == "c"
		assert.Equal(t, want, n.Accepts(s), "%q", s)
	}
}

func TestAcceptsIsReadOnly(t *testing.T) {
	n := newNFA(t, "(a|b)*c")
	before := n.States()
	n.Accepts("ababc")
	n.Accepts("ababx")
	assert.Equal(t, before, n.States())
}

// allStrings returns every string over alphabet of length at most max.
func allStrings(alphabet string, max int) []string {
	out := []string{""}
	layer := []string{""}
	for i := 0; i < max; i++ {
		var next []string
		for _, prefix := range layer {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}
