package lexnfa

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/lexnfa/nfa"
	"github.com/npillmayer/lexnfa/regex"
)

// Option configures pattern compilation.
type Option func(*config)

type config struct {
	maxDepth int
}

// WithMaxDepth limits the nesting depth of parenthesized sub-expressions
// (see regex.MaxDepth).
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

func configure(opts []Option) *config {
	c := &config{maxDepth: regex.DefaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ParsePattern reads a pattern into a syntax tree.
//
// ParsePattern never returns a nil tree. If the pattern is empty or
// malformed, it returns the empty expression ε together with an error.
// A tokenizing failure is treated as if the pattern had no tokens at all;
// the error returned is then the tokenizer's.
func ParsePattern(pattern string, opts ...Option) (*regex.Node, error) {
	c := configure(opts)
	lx := borrowLexer(pattern)
	tokens, err := lx.Tokens()
	releaseLexer(lx)
	if err != nil {
		CT().Errorf("pattern %q: %v", pattern, err)
		tokens = []regex.Token{{Type: regex.TokEOF}}
	}
	tree, perr := regex.NewParser(tokens, regex.MaxDepth(c.maxDepth)).Parse()
	if perr != nil {
		if err == nil {
			err = perr
			CT().Errorf("pattern %q: %v", pattern, err)
		}
		return regex.Eps(), err
	}
	return tree, nil
}

// Compile compiles a pattern into a new NFA. The accept state of the
// fragment returned carries label.
//
// Malformed patterns are compiled as ε (see ParsePattern); the error tells
// why.
func Compile[T any](pattern string, label T, opts ...Option) (*nfa.NFA[T], nfa.Fragment, error) {
	b := nfa.NewBuilder[T](nil)
	frag, err := CompileInto(b, pattern, label, opts...)
	return b.NFA(), frag, err
}

// CompileUnlabeled compiles a pattern into a new NFA without an accept
// label.
func CompileUnlabeled[T any](pattern string, opts ...Option) (*nfa.NFA[T], nfa.Fragment, error) {
	tree, err := ParsePattern(pattern, opts...)
	b := nfa.NewBuilder[T](nil)
	return b.NFA(), b.BuildUnlabeled(tree), err
}

// CompileInto compiles a pattern with builder b, adding states to b's NFA.
func CompileInto[T any](b *nfa.Builder[T], pattern string, label T, opts ...Option) (nfa.Fragment, error) {
	tree, err := ParsePattern(pattern, opts...)
	frag := b.Build(tree, label)
	CT().Debugf("pattern %q compiled to fragment %v", pattern, frag)
	return frag, err
}

// --- Lexer pool ------------------------------------------------------------

// Lexers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type lexerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalLexerPool *lexerPool

func init() {
	globalLexerPool = &lexerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return regex.NewLexer(""), nil
		})
	globalLexerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalLexerPool.opool = pool.NewObjectPool(globalLexerPool.ctx, factory, config)
}

// borrowLexer returns a pooled lexer, armed for pattern.
func borrowLexer(pattern string) *regex.Lexer {
	o, err := globalLexerPool.opool.BorrowObject(globalLexerPool.ctx)
	if err != nil {
		CT().Errorf("lexer pool: %v", err)
		return regex.NewLexer(pattern)
	}
	lx := o.(*regex.Lexer)
	lx.Reset(pattern)
	return lx
}

// releaseLexer clears a lexer and puts it back into the pool.
func releaseLexer(lx *regex.Lexer) {
	lx.Reset("")
	lx.SetErrorHandler(nil)
	_ = globalLexerPool.opool.ReturnObject(globalLexerPool.ctx, lx)
}
