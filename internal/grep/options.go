package grep

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

// Version is printed by -V.
const Version = "thegrep Version 1.0.0"

// Options configures one run of the front end.
type Options struct {
	Pattern string
	Paths   []string

	Tokens bool // print tokens and stop
	Parse  bool // print the syntax tree and stop
	Dot    bool // print the automaton as DOT and stop
	Gen    int  // print this many accepted strings instead of searching
	Seed   int64

	EmitGo  string // write generated Go source here, "-" for stdout
	Package string
	Name    string

	Verbose bool
	Version bool
}

// ParseArgs reads command-line arguments (without the program name).
func ParseArgs(args []string, stderr io.Writer) (Options, error) {
	var o Options
	fs := flag.NewFlagSet("thegrep", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: thegrep [flags] PATTERN [FILES...]")
		fs.PrintDefaults()
	}

	fs.BoolVar(&o.Tokens, "t", false, "show tokens")
	fs.BoolVar(&o.Tokens, "tokens", false, "show tokens")
	fs.BoolVar(&o.Parse, "p", false, "show parsed AST")
	fs.BoolVar(&o.Parse, "parse", false, "show parsed AST")
	fs.BoolVar(&o.Dot, "d", false, "show DOT graph of the NFA")
	fs.BoolVar(&o.Dot, "dot", false, "show DOT graph of the NFA")
	fs.IntVar(&o.Gen, "g", 0, "generate `N` random strings")
	fs.IntVar(&o.Gen, "gen", 0, "generate `N` random strings")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed for -g (0 seeds from the clock)")
	fs.StringVar(&o.EmitGo, "emit-go", "", "write a Go matcher for PATTERN to `file` (- for stdout)")
	fs.StringVar(&o.Package, "package", "matchers", "package name for -emit-go")
	fs.StringVar(&o.Name, "name", "Pattern", "exported name prefix for -emit-go")
	fs.BoolVar(&o.Verbose, "v", false, "verbose output on stderr")
	fs.BoolVar(&o.Verbose, "verbose", false, "verbose output on stderr")
	fs.BoolVar(&o.Version, "V", false, "print version information")
	fs.BoolVar(&o.Version, "version", false, "print version information")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if o.Gen < 0 {
		return Options{}, fmt.Errorf("-g must not be negative, got %d", o.Gen)
	}
	rest := fs.Args()
	if len(rest) > 0 {
		o.Pattern = rest[0]
		o.Paths = rest[1:]
	}
	if o.Pattern == "" && !o.Version {
		fs.Usage()
		return Options{}, errors.New("missing PATTERN")
	}
	return o, nil
}
