package regex

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, pattern string) *Node {
	t.Helper()
	tree, err := Parse(pattern)
	require.NoError(t, err, "pattern %q", pattern)
	require.NotNil(t, tree)
	return tree
}

func TestParseImplicitAndExplicitConcat(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	implicit := mustParse(t, "ab")
	explicit := mustParse(t, "a.b")
	require.True(t, Equal(implicit, explicit), "%v vs %v", implicit, explicit)
	require.True(t, Equal(Char('a').Concat(Char('b')), implicit))
	//
	abc := mustParse(t, "abc")
	require.Equal(t, "Concat(Concat('a','b'),'c')", abc.String())
}

func TestParseUnion(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := mustParse(t, "a|b")
	require.True(t, Equal(Char('a').Union(Char('b')), tree), "tree = %v", tree)
	//
	tree = mustParse(t, "a|b|c")
	require.Equal(t, "Union(Union('a','b'),'c')", tree.String())
}

func TestParseStarAndPlus(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := mustParse(t, "a*")
	require.True(t, Equal(Char('a').Star(), tree), "tree = %v", tree)
	//
	tree = mustParse(t, "a+")
	require.True(t, Equal(Char('a').Concat(Char('a').Star()), tree), "tree = %v", tree)
	require.Equal(t, OpConcat, tree.Op)
	require.Equal(t, OpStar, tree.Right.Op)
	require.NotSame(t, tree.Left, tree.Right.Left, "'+' must not share its operand")
	//
	tree = mustParse(t, "(ab)+")
	require.NotSame(t, tree.Left, tree.Right.Left)
	require.NotSame(t, tree.Left.Left, tree.Right.Left.Left)
	require.True(t, Equal(tree.Left, tree.Right.Left))
}

func TestParseQuestion(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := mustParse(t, "a?")
	require.True(t, Equal(Char('a').Union(Eps()), tree), "tree = %v", tree)
	require.True(t, tree.Right.IsEpsilon())
	//
	tree = mustParse(t, "a*+?")
	require.Equal(t, "Union(Concat(Star('a'),Star(Star('a'))),ε)", tree.String())
}

func TestParsePrecedence(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := mustParse(t, "a|bc*")
	want := Char('a').Union(Char('b').Concat(Char('c').Star()))
	require.True(t, Equal(want, tree), "tree = %v", tree)
	//
	tree = mustParse(t, "(a|b)c")
	want = Char('a').Union(Char('b')).Concat(Char('c'))
	require.True(t, Equal(want, tree), "tree = %v", tree)
	//
	tree = mustParse(t, "((a))")
	require.True(t, Equal(Char('a'), tree), "tree = %v", tree)
}

func TestParseCharGroups(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tree := mustParse(t, "[a-c]")
	require.Equal(t, OpUnion, tree.Op)
	leaves := map[rune]int{}
	for _, leaf := range tree.Leaves() {
		leaves[leaf.Sym]++
	}
	require.Equal(t, map[rune]int{'a': 1, 'b': 1, 'c': 1}, leaves)
	// left-associated chain
	require.Equal(t, OpLiteral, tree.Right.Op)
	require.Equal(t, OpUnion, tree.Left.Op)
	//
	tree = mustParse(t, `"x"`)
	require.True(t, Equal(Char('x'), tree), "tree = %v", tree)
}

func TestParseFailures(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	cases := []struct {
		pattern string
		err     error
	}{
		{"(a", ErrUnmatchedParen},
		{"a)", ErrUnexpectedToken},
		{"()", ErrUnexpectedToken},
		{"*a", ErrUnexpectedToken},
		{"a**", ErrUnexpectedToken},
		{"a|", ErrUnexpectedEOF},
		{"|a", ErrUnexpectedToken},
		{"a.", ErrUnexpectedEOF},
		{"", ErrEmptyPattern},
		{"   ", ErrEmptyPattern},
	}
	for _, c := range cases {
		tree, err := Parse(c.pattern)
		require.Nil(t, tree, "pattern %q", c.pattern)
		require.True(t, errors.Is(err, c.err), "pattern %q: expected %v, got %v", c.pattern, c.err, err)
		var rerr *Error
		require.True(t, errors.As(err, &rerr))
		require.Equal(t, StageParse, rerr.Stage)
	}
}

func TestParseDepthLimit(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	nested := strings.Repeat("(", 20) + "a" + strings.Repeat(")", 20)
	_, err := Parse(nested, MaxDepth(10))
	require.True(t, errors.Is(err, ErrTooDeep), "err = %v", err)
	tree, err := Parse(nested, MaxDepth(20))
	require.NoError(t, err)
	require.True(t, Equal(Char('a'), tree))
	_, err = Parse(nested, MaxDepth(19))
	require.True(t, errors.Is(err, ErrTooDeep), "err = %v", err)
	//
	tree, err = Parse("(a)", MaxDepth(1))
	require.NoError(t, err)
	require.True(t, Equal(Char('a'), tree))
	_, err = Parse("(a", MaxDepth(1))
	require.True(t, errors.Is(err, ErrUnmatchedParen), "err = %v", err)
	_, err = Parse("(a)|((b))", MaxDepth(1))
	require.True(t, errors.Is(err, ErrTooDeep), "err = %v", err)
	_, err = Parse("a|b*", MaxDepth(1))
	require.NoError(t, err)
	//
	deep := strings.Repeat("(", 10000) + "a" + strings.Repeat(")", 10000)
	_, err = Parse(deep)
	require.True(t, errors.Is(err, ErrTooDeep), "err = %v", err)
}

func TestParserWithoutEOF(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	tokens := []Token{{Type: TokLParen}, {Type: TokLiteral, Char: 'a', Pos: 1}}
	_, err := NewParser(tokens).Parse()
	require.True(t, errors.Is(err, ErrUnmatchedParen), "err = %v", err)
	_, err = NewParser(nil).Parse()
	require.True(t, errors.Is(err, ErrEmptyPattern), "err = %v", err)
}
