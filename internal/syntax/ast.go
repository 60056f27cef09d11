package syntax

import "fmt"

// Node is a node of the pattern syntax tree. Every child is owned by
// exactly one parent.
type Node interface {
	fmt.Stringer
	node()
}

type (
	// Alternation matches Lhs or Rhs.
	Alternation struct{ Lhs, Rhs Node }
	// Catenation matches Lhs followed by Rhs.
	Catenation struct{ Lhs, Rhs Node }
	// Closure matches Body zero or more times.
	Closure struct{ Body Node }
	// OneOrMore matches Body at least once.
	OneOrMore struct{ Body Node }
	// Char matches one literal rune.
	Char struct{ Value rune }
	// AnyChar matches any single rune.
	AnyChar struct{}
)

func (*Alternation) node() {}
func (*Catenation) node()  {}
func (*Closure) node()     {}
func (*OneOrMore) node()   {}
func (Char) node()         {}
func (AnyChar) node()      {}

func (n *Alternation) String() string { return fmt.Sprintf("Alternation(%s, %s)", n.Lhs, n.Rhs) }
func (n *Catenation) String() string  { return fmt.Sprintf("Catenation(%s, %s)", n.Lhs, n.Rhs) }
func (n *Closure) String() string     { return fmt.Sprintf("Closure(%s)", n.Body) }
func (n *OneOrMore) String() string   { return fmt.Sprintf("OneOrMore(%s)", n.Body) }
func (n Char) String() string         { return fmt.Sprintf("Char(%q)", n.Value) }
func (AnyChar) String() string        { return "AnyChar" }
