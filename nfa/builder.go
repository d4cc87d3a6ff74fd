package nfa

import (
	"fmt"

	"github.com/npillmayer/lexnfa/regex"
)

// Fragment is an automaton under construction, described by its single
// start state and its single accept state.
type Fragment struct {
	Start  StateID
	Accept StateID
}

func (f Fragment) String() string {
	return fmt.Sprintf("(%d→%d)", f.Start, f.Accept)
}

// Builder compiles regular expression syntax trees into fragments of an
// NFA, using Thompson's construction.
type Builder[T any] struct {
	nfa *NFA[T]
}

// NewBuilder creates a builder adding states to a. If a is nil, the
// builder creates a new NFA.
func NewBuilder[T any](a *NFA[T]) *Builder[T] {
	if a == nil {
		a = New[T]()
	}
	return &Builder[T]{nfa: a}
}

// NFA returns the automaton the builder adds states to.
func (b *Builder[T]) NFA() *NFA[T] {
	return b.nfa
}

// Build compiles a syntax tree into a fragment whose accept state carries
// label.
//
// Trees must not contain OpEmpty nodes. These are placeholders of the
// parser, and meeting one here is a programming error: Build panics.
func (b *Builder[T]) Build(tree *regex.Node, label T) Fragment {
	return b.build(tree, &label)
}

// BuildUnlabeled compiles a syntax tree into a fragment without any
// accept label.
func (b *Builder[T]) BuildUnlabeled(tree *regex.Node) Fragment {
	return b.build(tree, nil)
}

func (b *Builder[T]) build(tree *regex.Node, label *T) Fragment {
	if tree == nil {
		panic("nfa: nil expression reached automaton construction")
	}
	var f Fragment
	switch tree.Op {
	case regex.OpLiteral:
		sym := Symbol(tree.Sym)
		if tree.Sym == regex.Epsilon {
			sym = Epsilon
		}
		f = b.literal(sym, label)
	case regex.OpConcat:
		f = b.concat(b.build(tree.Left, nil), b.build(tree.Right, label))
	case regex.OpUnion:
		f = b.union(b.build(tree.Left, nil), b.build(tree.Right, label))
	case regex.OpStar:
		f = b.star(b.build(tree.Left, label))
	default:
		panic(fmt.Sprintf("nfa: %v expression reached automaton construction", tree.Op))
	}
	tracer().Debugf("%v fragment %v", tree.Op, f)
	return f
}

func (b *Builder[T]) literal(sym Symbol, label *T) Fragment {
	start, accept := b.nfa.NewState(), b.nfa.NewState()
	b.nfa.AddTransition(start, sym, accept)
	if label != nil {
		b.nfa.SetLabel(accept, *label)
	}
	return Fragment{Start: start, Accept: accept}
}

func (b *Builder[T]) concat(first, second Fragment) Fragment {
	b.nfa.AddTransition(first.Accept, Epsilon, second.Start)
	return Fragment{Start: first.Start, Accept: second.Accept}
}

// union lets the new accept state inherit the label of the second operand.
func (b *Builder[T]) union(first, second Fragment) Fragment {
	start, accept := b.nfa.NewState(), b.nfa.NewState()
	b.nfa.AddTransition(start, Epsilon, first.Start)
	b.nfa.AddTransition(start, Epsilon, second.Start)
	b.nfa.AddTransition(first.Accept, Epsilon, accept)
	b.nfa.AddTransition(second.Accept, Epsilon, accept)
	b.inherit(second.Accept, accept)
	return Fragment{Start: start, Accept: accept}
}

func (b *Builder[T]) star(inner Fragment) Fragment {
	start, accept := b.nfa.NewState(), b.nfa.NewState()
	b.nfa.AddTransition(start, Epsilon, inner.Start)
	b.nfa.AddTransition(start, Epsilon, accept)
	b.nfa.AddTransition(inner.Accept, Epsilon, inner.Start)
	b.nfa.AddTransition(inner.Accept, Epsilon, accept)
	b.inherit(inner.Accept, accept)
	return Fragment{Start: start, Accept: accept}
}

// inherit moves the label of state from to state to.
func (b *Builder[T]) inherit(from, to StateID) {
	if value, ok := b.nfa.Label(from); ok {
		b.nfa.SetLabel(to, value)
		b.nfa.ClearLabel(from)
	}
}
