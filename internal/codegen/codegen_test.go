package codegen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thegrep/internal/nfa"
)

func render(t *testing.T, pattern string, cfg Config) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nfa.MustCompile(pattern), cfg))
	return buf.String()
}

func TestRenderTypeChecks(t *testing.T) {
	for _, pattern := range []string{"ab", "a.*b", "(a|b)+c*", `'\x`} {
		t.Run(pattern, func(t *testing.T) {
			src := render(t, pattern, Config{Package: "matchers", Name: "Sample", Pattern: pattern})

			fset := token.NewFileSet()
			file, err := parser.ParseFile(fset, "sample.go", src, parser.ParseComments)
			require.NoError(t, err, src)

			conf := types.Config{}
			_, err = conf.Check("matchers", fset, []*ast.File{file}, nil)
			require.NoError(t, err, src)
		})
	}
}

func TestRenderContents(t *testing.T) {
	src := render(t, "a.", Config{Package: "matchers", Name: "Dotted", Pattern: "a."})
	assert.Contains(t, src, "// Code generated by thegrep from \"a.\". DO NOT EDIT.")
	assert.Contains(t, src, "package matchers")
	assert.Contains(t, src, "func DottedAccepts(input string) bool {")
	assert.Contains(t, src, "return dottedWalk([]rune(input), 0, 0)")
	assert.Contains(t, src, "func dottedWalk(input []rune, id, pos int) bool {")
	assert.Contains(t, src, "char: 'a'")
	assert.Contains(t, src, "wild: true")
	assert.Contains(t, src, "var dottedStates = []dottedState{")
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	n := nfa.MustCompile("a")
	for _, cfg := range []Config{
		{Package: "", Name: "A"},
		{Package: "p q", Name: "A"},
		{Package: "p", Name: "lower"},
		{Package: "p", Name: "1A"},
	} {
		_, err := Generate(n, cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}
