/*
Package lexdef reads token definitions and compiles them into a single
NFA, suitable for driving a token scanner.

A definition text lists named patterns, one rule per token category:

	// identifiers and numbers
	Ident  = `[a-z][a-z0-9]*` ;
	Number = "[0-9]+"

The semicolon is optional. Patterns are Go string literals, either
interpreted or raw; raw strings spare quoting the pattern language's own
double quotes. Comments follow Go conventions.

Compile builds one automaton from all the rules: a common start state has
epsilon transitions into the fragments of every rule, and each fragment's
accept state is labeled with the rule's name. Unlike lexnfa.Compile,
Compile does not tolerate malformed patterns, as definitions are authored
input and a silent fallback would hide the error.
*/
package lexdef

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/npillmayer/lexnfa"
	"github.com/npillmayer/lexnfa/nfa"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Errors for definitions.
var (
	ErrDuplicateRule = errors.New("duplicate rule")
	ErrNoRules       = errors.New("no rules defined")
)

// Rule is a named token pattern.
type Rule struct {
	Pos     lexer.Position
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@(String | RawString) ';'?"`
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s = %q", r.Name, r.Pattern)
}

type definitions struct {
	Rules []*Rule `parser:"@@*"`
}

var defParser = participle.MustBuild[definitions](
	participle.Unquote("String", "RawString"),
)

// Parse reads token definitions from r. Filename is used for error
// positions only.
func Parse(filename string, r io.Reader) ([]*Rule, error) {
	defs, err := defParser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("lexdef: %w", err)
	}
	seen := make(map[string]*Rule, len(defs.Rules))
	for _, rule := range defs.Rules {
		if prev, ok := seen[rule.Name]; ok {
			return nil, fmt.Errorf("lexdef: %w %s at %s, first defined at %s",
				ErrDuplicateRule, rule.Name, rule.Pos, prev.Pos)
		}
		seen[rule.Name] = rule
	}
	T().Debugf("read %d token definitions from %s", len(defs.Rules), filename)
	return defs.Rules, nil
}

// ParseString reads token definitions from a string.
func ParseString(filename, text string) ([]*Rule, error) {
	return Parse(filename, strings.NewReader(text))
}

// RuleError reports a rule with a malformed pattern.
type RuleError struct {
	Rule *Rule
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("lexdef: rule %s at %s: %v", e.Rule.Name, e.Rule.Pos, e.Err)
}

// Unwrap returns the pattern's error.
func (e *RuleError) Unwrap() error {
	return e.Err
}

// Automaton is the combined NFA of a set of rules. Every rule's accept
// state is labeled with the rule's name.
type Automaton struct {
	NFA     *nfa.NFA[string]
	Start   nfa.StateID
	Accepts map[string]nfa.StateID // accept state per rule name
	Rules   []*Rule
}

// Compile builds the combined automaton for rules.
func Compile(rules []*Rule, opts ...lexnfa.Option) (*Automaton, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexdef: %w", ErrNoRules)
	}
	b := nfa.NewBuilder[string](nil)
	a := &Automaton{
		NFA:     b.NFA(),
		Start:   b.NFA().NewState(),
		Accepts: make(map[string]nfa.StateID, len(rules)),
		Rules:   rules,
	}
	for _, rule := range rules {
		if _, ok := a.Accepts[rule.Name]; ok {
			return nil, fmt.Errorf("lexdef: %w %s at %s", ErrDuplicateRule, rule.Name, rule.Pos)
		}
		frag, err := lexnfa.CompileInto(b, rule.Pattern, rule.Name, opts...)
		if err != nil {
			return nil, &RuleError{Rule: rule, Err: err}
		}
		a.NFA.AddTransition(a.Start, nfa.Epsilon, frag.Start)
		a.Accepts[rule.Name] = frag.Accept
		T().Debugf("rule %s → %v", rule.Name, frag)
	}
	return a, nil
}

// Load reads token definitions from r and compiles them.
func Load(filename string, r io.Reader, opts ...lexnfa.Option) (*Automaton, error) {
	rules, err := Parse(filename, r)
	if err != nil {
		return nil, err
	}
	return Compile(rules, opts...)
}
