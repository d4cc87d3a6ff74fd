package lexdef

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/lexnfa"
	"github.com/npillmayer/lexnfa/nfa"
	"github.com/npillmayer/lexnfa/regex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

const tokens = `
// identifiers and numbers
Ident  = ` + "`[a-z][a-z0-9]*`" + ` ;
Number = "[0-9]+"
/* quoted operators */
Op     = ` + "`\"+\"|\"*\"`" + `
`

func TestParseDefinitions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	rules, err := ParseString("tokens.lex", tokens)
	require.NoError(t, err)
	require.Len(t, rules, 3)
	require.Equal(t, "Ident", rules[0].Name)
	require.Equal(t, "[a-z][a-z0-9]*", rules[0].Pattern)
	require.Equal(t, "Number", rules[1].Name)
	require.Equal(t, "[0-9]+", rules[1].Pattern)
	require.Equal(t, `"+"|"*"`, rules[2].Pattern)
	require.Equal(t, 3, rules[0].Pos.Line)
	require.Equal(t, "tokens.lex", rules[0].Pos.Filename)
	require.Equal(t, `Number = "[0-9]+"`, rules[1].String())
}

func TestParseDuplicateRule(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := ParseString("dup.lex", `A = "a"; B = "b"; A = "c"`)
	require.True(t, errors.Is(err, ErrDuplicateRule), "err = %v", err)
	_, err = ParseString("syntax.lex", `A "a"`)
	require.Error(t, err)
}

func TestCompileNoRules(t *testing.T) {
	_, err := Compile(nil)
	require.True(t, errors.Is(err, ErrNoRules))
	rules, err := ParseString("empty.lex", "// nothing here\n")
	require.NoError(t, err)
	_, err = Compile(rules)
	require.True(t, errors.Is(err, ErrNoRules))
}

func TestCompileMalformedPattern(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	_, err := Load("bad.lex", strings.NewReader(`Good = "ab"; Bad = "(a"`))
	var rerr *RuleError
	require.True(t, errors.As(err, &rerr), "err = %v", err)
	require.Equal(t, "Bad", rerr.Rule.Name)
	require.True(t, errors.Is(err, regex.ErrUnmatchedParen))
	//
	_, err = Load("deep.lex", strings.NewReader(`Deep = "((a))"`), lexnfa.WithMaxDepth(1))
	require.True(t, errors.Is(err, regex.ErrTooDeep), "err = %v", err)
	_, err = Load("deep.lex", strings.NewReader(`Deep = "((a))"`), lexnfa.WithMaxDepth(2))
	require.NoError(t, err)
}

func TestLoadAutomaton(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	a, err := Load("tokens.lex", strings.NewReader(tokens))
	require.NoError(t, err)
	require.Len(t, a.Accepts, 3)
	require.Len(t, a.NFA.Targets(a.Start, nfa.Epsilon), 3)
	require.Equal(t, 3, a.NFA.Degree(a.Start))
	for name, accept := range a.Accepts {
		label, ok := a.NFA.Label(accept)
		require.True(t, ok, "rule %s", name)
		require.Equal(t, name, label)
	}
	labeled := a.NFA.Labeled(a.Start)
	require.Len(t, labeled, 3)
	for _, s := range labeled {
		require.Contains(t, a.Accepts, mustLabel(t, a.NFA, s))
	}
	_, ok := a.NFA.Label(a.Start)
	require.False(t, ok)
}

func mustLabel(t *testing.T, a *nfa.NFA[string], s nfa.StateID) string {
	t.Helper()
	label, ok := a.Label(s)
	require.True(t, ok)
	return label
}
