package regex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCloneIsDeep(t *testing.T) {
	orig := Char('a').Union(Char('b')).Star().Concat(Eps())
	cp := orig.Clone()
	require.True(t, Equal(orig, cp))
	require.NotSame(t, orig, cp)
	require.NotSame(t, orig.Left, cp.Left)
	require.NotSame(t, orig.Left.Left, cp.Left.Left)
	cp.Left.Left.Left.Sym = 'x'
	require.Equal(t, 'a', orig.Left.Left.Left.Sym)
	require.False(t, Equal(orig, cp))
}

func TestEqual(t *testing.T) {
	require.True(t, Equal(nil, nil))
	require.False(t, Equal(Char('a'), nil))
	require.False(t, Equal(Char('a'), Char('b')))
	require.False(t, Equal(Char('a').Union(Char('b')), Char('a').Concat(Char('b'))))
	require.False(t, Equal(Eps(), Char('a')))
	require.True(t, Equal(Empty(), Empty()))
}

func TestNodeString(t *testing.T) {
	require.Equal(t, "Empty", Empty().String())
	require.Equal(t, "ε", Eps().String())
	require.Equal(t, "Star(Union('a',ε))", Char('a').Union(Eps()).Star().String())
	require.Equal(t, "Literal", OpLiteral.String())
	require.Equal(t, "Op(42)", Op(42).String())
}

func TestLeaves(t *testing.T) {
	tree := Char('a').Concat(Char('b').Union(Char('c')).Star())
	leaves := tree.Leaves()
	require.Len(t, leaves, 3)
	require.Equal(t, []rune{'a', 'b', 'c'}, []rune{leaves[0].Sym, leaves[1].Sym, leaves[2].Sym})
}

func TestCharSet(t *testing.T) {
	cs := NewCharSet('c', 'a', 'b', 'a')
	require.Equal(t, 3, cs.Len())
	require.Equal(t, []rune{'a', 'b', 'c'}, cs.Runes())
	require.True(t, cs.Contains('b'))
	require.False(t, cs.Contains('d'))
	require.False(t, cs.Contains(Epsilon))
	require.NotNil(t, cs.Table())
	require.Equal(t, "{a,b,c}", cs.String())
	var none *CharSet
	require.Equal(t, 0, none.Len())
}
