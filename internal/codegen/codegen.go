// Package codegen turns a compiled automaton into standalone Go source: a
// state table and a backtracking Accepts function over it.
package codegen

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"thegrep/internal/nfa"
)

// Config names the generated code.
type Config struct {
	Package string // package clause of the generated file
	Name    string // exported prefix, e.g. "Email" gives EmailAccepts
	Pattern string // recorded in comments only
}

// Graph is the read-only view of an automaton the generator needs.
type Graph interface {
	Start() nfa.StateID
	Len() int
	State(id nfa.StateID) nfa.State
}

func (c Config) validate() error {
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("codegen: invalid package name %q", c.Package)
	}
	if !token.IsIdentifier(c.Name) {
		return fmt.Errorf("codegen: invalid name %q", c.Name)
	}
	if r, _ := utf8.DecodeRuneInString(c.Name); !unicode.IsUpper(r) {
		return errors.New("codegen: name must be exported")
	}
	return nil
}

// Generate builds the Go file for g.
func Generate(g Graph, cfg Config) (*jen.File, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	var (
		prefix    = lowerFirst(cfg.Name)
		stateType = prefix + "State"
		table     = prefix + "States"
		walk      = prefix + "Walk"
	)

	f := jen.NewFile(cfg.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by thegrep from %q. DO NOT EDIT.", cfg.Pattern))

	f.Type().Id(stateType).Struct(
		jen.Id("kind").Uint8(),
		jen.Id("wild").Bool(),
		jen.Id("char").Rune(),
		jen.List(jen.Id("next"), jen.Id("lhs"), jen.Id("rhs")).Int(),
	)

	rows := make([]jen.Code, 0, g.Len())
	for i := 0; i < g.Len(); i++ {
		rows = append(rows, row(g.State(nfa.StateID(i))))
	}
	f.Var().Id(table).Op("=").Index().Id(stateType).Values(rows...)

	f.Commentf("%sAccepts reports whether all of input matches %q.", cfg.Name, cfg.Pattern)
	f.Func().Id(cfg.Name+"Accepts").Params(jen.Id("input").String()).Bool().Block(
		jen.Return(jen.Id(walk).Call(
			jen.Index().Rune().Call(jen.Id("input")),
			jen.Lit(int(g.Start())),
			jen.Lit(0),
		)),
	)

	st := func(field string) *jen.Statement { return jen.Id("st").Dot(field) }
	recurse := func(to jen.Code, pos jen.Code) *jen.Statement {
		return jen.Id(walk).Call(jen.Id("input"), to, pos)
	}
	f.Func().Id(walk).Params(
		jen.Id("input").Index().Rune(),
		jen.List(jen.Id("id"), jen.Id("pos")).Int(),
	).Bool().Block(
		jen.Id("st").Op(":=").Id(table).Index(jen.Id("id")),
		jen.Switch(st("kind")).Block(
			jen.Case(jen.Lit(int(nfa.Start))).Block(
				jen.Return(recurse(st("next"), jen.Id("pos"))),
			),
			jen.Case(jen.Lit(int(nfa.Match))).Block(
				jen.If(
					jen.Id("pos").Op(">=").Len(jen.Id("input")).Op("||").
						Parens(jen.Op("!").Add(st("wild")).Op("&&").Id("input").Index(jen.Id("pos")).Op("!=").Add(st("char"))),
				).Block(jen.Return(jen.False())),
				jen.Return(recurse(st("next"), jen.Id("pos").Op("+").Lit(1))),
			),
			jen.Case(jen.Lit(int(nfa.Split))).Block(
				jen.If(recurse(st("lhs"), jen.Id("pos"))).Block(jen.Return(jen.True())),
				jen.Return(recurse(st("rhs"), jen.Id("pos"))),
			),
		),
		jen.Return(jen.Id("pos").Op(">=").Len(jen.Id("input"))),
	)
	return f, nil
}

// Render writes the generated file for g to w.
func Render(w io.Writer, g Graph, cfg Config) error {
	f, err := Generate(g, cfg)
	if err != nil {
		return err
	}
	return f.Render(w)
}

func row(s nfa.State) jen.Code {
	d := jen.Dict{jen.Id("kind"): jen.Lit(int(s.Kind))}
	switch s.Kind {
	case nfa.Start:
		d[jen.Id("next")] = jen.Lit(int(s.Next))
	case nfa.Match:
		if s.Label.Any {
			d[jen.Id("wild")] = jen.True()
		} else {
			d[jen.Id("char")] = jen.LitRune(s.Label.Char)
		}
		d[jen.Id("next")] = jen.Lit(int(s.Next))
	case nfa.Split:
		d[jen.Id("lhs")] = jen.Lit(int(s.Lhs))
		d[jen.Id("rhs")] = jen.Lit(int(s.Rhs))
	}
	return jen.Values(d)
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
