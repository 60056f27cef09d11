package syntax

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind tags a lexical token of a pattern.
type TokenKind int

const (
	TokLParen     TokenKind = iota // (
	TokRParen                      // )
	TokUnionBar                    // |
	TokKleeneStar                  // *
	TokKleenePlus                  // +
	TokAnyChar                     // .
	TokChar                        // literal rune
)

var kindNames = [...]string{
	TokLParen:     "LParen",
	TokRParen:     "RParen",
	TokUnionBar:   "UnionBar",
	TokKleeneStar: "KleeneStar",
	TokKleenePlus: "KleenePlus",
	TokAnyChar:    "AnyChar",
	TokChar:       "Char",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is one lexeme of a pattern. Char is set only for TokChar.
type Token struct {
	Kind TokenKind
	Char rune
	Pos  lexer.Position
}

func (t Token) String() string {
	if t.Kind == TokChar {
		return fmt.Sprintf("Char(%q)", t.Char)
	}
	return t.Kind.String()
}

// canBeginAtom reports whether a token of kind k may start an Atom.
func canBeginAtom(k TokenKind) bool {
	switch k {
	case TokLParen, TokAnyChar, TokChar:
		return true
	}
	return false
}
