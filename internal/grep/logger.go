package grep

import (
	"io"
	"log"

	"thegrep/internal/nfa"
	"thegrep/internal/syntax"
)

// Logger writes verbose traces. The zero Logger is disabled and discards
// everything.
type Logger struct {
	l *log.Logger
}

// NewLogger returns a Logger writing to w, or a disabled one.
func NewLogger(w io.Writer, enabled bool) *Logger {
	if !enabled {
		return &Logger{}
	}
	return &Logger{l: log.New(w, "[thegrep] ", 0)}
}

// Enabled reports whether traces are written.
func (l *Logger) Enabled() bool {
	return l.l != nil
}

// Log prints one trace line.
func (l *Logger) Log(format string, args ...interface{}) {
	if l.Enabled() {
		l.l.Printf(format, args...)
	}
}

// Section starts a block of traces with a blank line and a header.
func (l *Logger) Section(name string) {
	if !l.Enabled() {
		return
	}
	io.WriteString(l.l.Writer(), "\n")
	l.l.Printf("=== %s ===", name)
}

// Automaton traces the tree a pattern parsed to and the state table
// compiled from it.
func (l *Logger) Automaton(ast syntax.Node, n *nfa.NFA) {
	if !l.Enabled() {
		return
	}
	l.l.Printf("ast: %s", ast)
	l.l.Printf("%d states, start %d", n.Len(), int(n.Start()))
	for id, s := range n.States() {
		l.l.Printf("  %d: %s", id, s)
	}
}
