// Package grep is the command front end: it searches lines, prints
// diagnostics of a pattern, samples strings and emits Go matchers.
package grep

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"thegrep/internal/codegen"
	"thegrep/internal/graphviz"
	"thegrep/internal/nfa"
	"thegrep/internal/syntax"
)

const maxLine = 1 << 20

// Runner executes one set of Options against the given streams.
type Runner struct {
	opts   Options
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	log    *Logger
}

// Run is a shorthand for NewRunner(...).Run().
func Run(opts Options, stdin io.Reader, stdout, stderr io.Writer) error {
	return NewRunner(opts, stdin, stdout, stderr).Run()
}

// NewRunner returns a Runner; verbose traces go to stderr.
func NewRunner(opts Options, stdin io.Reader, stdout, stderr io.Writer) *Runner {
	return &Runner{
		opts:   opts,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		log:    NewLogger(stderr, opts.Verbose),
	}
}

// Run performs the first requested mode in the order tokens, parse, dot,
// emit-go, gen, and falls back to searching files or stdin.
func (r *Runner) Run() error {
	if r.opts.Version {
		fmt.Fprintln(r.stdout, Version)
	}
	if r.opts.Pattern == "" {
		return nil
	}
	switch {
	case r.opts.Tokens:
		return r.showTokens()
	case r.opts.Parse:
		return r.showParse()
	case r.opts.Dot:
		return r.showDot()
	case r.opts.EmitGo != "":
		return r.emitGo()
	case r.opts.Gen > 0:
		return r.generate()
	}
	return r.search()
}

func (r *Runner) showTokens() error {
	tokens := syntax.NewTokenizer(r.opts.Pattern)
	for {
		tok, ok := tokens.Next()
		if !ok {
			return nil
		}
		fmt.Fprintln(r.stdout, tok)
	}
}

func (r *Runner) showParse() error {
	ast, err := syntax.ParseString(r.opts.Pattern)
	if err != nil {
		fmt.Fprintf(r.stderr, "thegrep: %v\n", err)
		return nil
	}
	fmt.Fprintln(r.stdout, ast)
	return nil
}

func (r *Runner) showDot() error {
	n, err := r.compile()
	if err != nil {
		return err
	}
	return graphviz.Write(r.stdout, n)
}

func (r *Runner) emitGo() error {
	n, err := r.compile()
	if err != nil {
		return err
	}
	cfg := codegen.Config{Package: r.opts.Package, Name: r.opts.Name, Pattern: r.opts.Pattern}
	if r.opts.EmitGo == "-" {
		return codegen.Render(r.stdout, n, cfg)
	}

	f, err := os.Create(r.opts.EmitGo)
	if err != nil {
		return err
	}
	if err := codegen.Render(f, n, cfg); err != nil {
		f.Close()
		return fmt.Errorf("emit %s: %w", r.opts.EmitGo, err)
	}
	r.log.Log("wrote %s (package %s, %sAccepts)", r.opts.EmitGo, cfg.Package, cfg.Name)
	return f.Close()
}

func (r *Runner) generate() error {
	n, err := r.compile()
	if err != nil {
		return err
	}
	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.log.Log("generating %d strings, seed %d", r.opts.Gen, seed)
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r.opts.Gen; i++ {
		fmt.Fprintln(r.stdout, n.Gen(rng))
	}
	return nil
}

func (r *Runner) compile() (*nfa.NFA, error) {
	ast, err := syntax.ParseString(r.opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", r.opts.Pattern, err)
	}
	n := nfa.FromAST(ast)
	r.log.Section("compile")
	r.log.Automaton(ast, n)
	return n, nil
}

// searcher compiles .*(PATTERN).* so that a line is accepted when any
// substring of it matches.
func (r *Runner) searcher() (*nfa.NFA, error) {
	ast, err := syntax.ParseString(r.opts.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", r.opts.Pattern, err)
	}
	wrapped := &syntax.Catenation{
		Lhs: anything(),
		Rhs: &syntax.Catenation{Lhs: ast, Rhs: anything()},
	}
	n := nfa.FromAST(wrapped)
	r.log.Section("search")
	r.log.Automaton(wrapped, n)
	return n, nil
}

func anything() syntax.Node { return &syntax.Closure{Body: syntax.AnyChar{}} }

func (r *Runner) search() error {
	n, err := r.searcher()
	if err != nil {
		return err
	}
	if len(r.opts.Paths) == 0 {
		return r.printLines(n, "stdin", r.stdin)
	}
	for _, path := range r.opts.Paths {
		if err := r.searchFile(n, path); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) searchFile(n *nfa.NFA, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.printLines(n, path, f)
}

func (r *Runner) printLines(n *nfa.NFA, name string, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	lines, matched := 0, 0
	for sc.Scan() {
		lines++
		if n.Accepts(sc.Text()) {
			matched++
			fmt.Fprintln(r.stdout, sc.Text())
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	r.log.Log("%s: %d of %d lines matched", name, matched, lines)
	return nil
}
