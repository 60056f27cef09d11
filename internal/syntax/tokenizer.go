package syntax

import (
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order, so the punctuation rules shadow Char.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\n]+`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "UnionBar", Pattern: `\|`},
	{Name: "KleeneStar", Pattern: `\*`},
	{Name: "KleenePlus", Pattern: `\+`},
	{Name: "AnyChar", Pattern: `\.`},
	{Name: "Char", Pattern: `[^ \t\n]`},
})

var (
	whitespaceType lexer.TokenType
	tokenKinds     = map[lexer.TokenType]TokenKind{}
)

func init() {
	symbols := patternLexer.Symbols()
	whitespaceType = symbols["Whitespace"]
	for kind, name := range kindNames {
		tokenKinds[symbols[name]] = TokenKind(kind)
	}
}

// Tokenizer lazily turns a pattern into Tokens, skipping whitespace.
// It cannot be rewound; build a new one to start over.
type Tokenizer struct {
	lex  lexer.Lexer
	pos  lexer.Position
	done bool
}

// NewTokenizer returns a Tokenizer over pattern.
func NewTokenizer(pattern string) *Tokenizer {
	lex, err := patternLexer.LexString("", pattern)
	if err != nil {
		panic(fmt.Sprintf("syntax: %v", err))
	}
	return &Tokenizer{lex: lex}
}

// Next returns the next token, or false once the input is exhausted.
func (t *Tokenizer) Next() (Token, bool) {
	for !t.done {
		tok, err := t.lex.Next()
		if err != nil {
			// Every rune matches some rule.
			panic(fmt.Sprintf("syntax: %v", err))
		}
		t.pos = tok.Pos
		if tok.EOF() {
			t.done = true
			break
		}
		if tok.Type == whitespaceType {
			continue
		}
		kind, ok := tokenKinds[tok.Type]
		if !ok {
			panic(fmt.Sprintf("syntax: unknown token type %d", tok.Type))
		}
		if kind == TokChar {
			return lexChar(tok), true
		}
		return Token{Kind: kind, Pos: tok.Pos}, true
	}
	return Token{}, false
}

// Pos is the position of the last token read, or of the end of input
// once Next has returned false.
func (t *Tokenizer) Pos() lexer.Position {
	return t.pos
}

// All drains the tokenizer.
func (t *Tokenizer) All() []Token {
	var out []Token
	for {
		tok, ok := t.Next()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}

func lexChar(tok lexer.Token) Token {
	r, _ := utf8.DecodeRuneInString(tok.Value)
	switch r {
	case '(', ')', '|', '*', '+', '.':
		panic(fmt.Sprintf("syntax: %q exists as a lexeme", r))
	}
	return Token{Kind: TokChar, Char: r, Pos: tok.Pos}
}
