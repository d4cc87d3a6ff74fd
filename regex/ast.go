package regex

import (
	"strconv"
	"strings"
)

// Op is the kind of a syntax tree node.
type Op uint8

// Node kinds. OpEmpty is a placeholder only and never part of a tree
// returned by a successful parse.
const (
	OpEmpty   Op = iota // uninitialized expression
	OpLiteral           // single character or ε
	OpConcat            // Left followed by Right
	OpUnion             // Left or Right
	OpStar              // zero or more times Left
)

var opnames = [...]string{"Empty", "Literal", "Concat", "Union", "Star"}

func (op Op) String() string {
	if int(op) < len(opnames) {
		return opnames[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

// Epsilon is the symbol of a literal which does not consume input.
const Epsilon rune = -1

// Node is a node of a regular expression syntax tree.
//
// Literals hold their character in Sym; a Sym of Epsilon denotes the
// empty expression. Star keeps its operand in Left.
type Node struct {
	Op    Op
	Sym   rune
	Left  *Node
	Right *Node
}

// Empty returns the placeholder expression.
func Empty() *Node {
	return &Node{Op: OpEmpty}
}

// Char returns a literal expression for character c.
func Char(c rune) *Node {
	return &Node{Op: OpLiteral, Sym: c}
}

// Eps returns the empty expression, which matches without consuming input.
func Eps() *Node {
	return &Node{Op: OpLiteral, Sym: Epsilon}
}

// Concat returns n followed by m.
func (n *Node) Concat(m *Node) *Node {
	return &Node{Op: OpConcat, Left: n, Right: m}
}

// Union returns the alternation of n and m.
func (n *Node) Union(m *Node) *Node {
	return &Node{Op: OpUnion, Left: n, Right: m}
}

// Star returns zero-or-more repetitions of n.
func (n *Node) Star() *Node {
	return &Node{Op: OpStar, Left: n}
}

// IsEpsilon is true for the empty expression.
func (n *Node) IsEpsilon() bool {
	return n != nil && n.Op == OpLiteral && n.Sym == Epsilon
}

// Clone returns a deep copy of the subtree rooted at n. The copy does not
// share any node with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Op:    n.Op,
		Sym:   n.Sym,
		Left:  n.Left.Clone(),
		Right: n.Right.Clone(),
	}
}

// Equal reports whether two syntax trees have the same structure.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Op != b.Op {
		return false
	}
	if a.Op == OpLiteral && a.Sym != b.Sym {
		return false
	}
	return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
}

// Leaves returns the literals of a tree from left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	var collect func(*Node)
	collect = func(x *Node) {
		if x == nil {
			return
		}
		if x.Op == OpLiteral {
			leaves = append(leaves, x)
			return
		}
		collect(x.Left)
		collect(x.Right)
	}
	collect(n)
	return leaves
}

// String renders a tree, e.g. Concat('a',Star('a')).
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	switch n.Op {
	case OpEmpty:
		b.WriteString("Empty")
	case OpLiteral:
		if n.Sym == Epsilon {
			b.WriteString("ε")
		} else {
			b.WriteString(strconv.QuoteRune(n.Sym))
		}
	case OpStar:
		b.WriteString("Star(")
		n.Left.write(b)
		b.WriteByte(')')
	default:
		b.WriteString(n.Op.String())
		b.WriteByte('(')
		n.Left.write(b)
		b.WriteByte(',')
		n.Right.write(b)
		b.WriteByte(')')
	}
}
