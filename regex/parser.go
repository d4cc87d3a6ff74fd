package regex

// Parser performs recursive descent over a token sequence. Precedence,
// loosest first:
//
//	union         := concatenation ('|' concatenation)*
//	concatenation := quantified (('.')? quantified)*
//	quantified    := plus ('?')?
//	plus          := starred ('+')?
//	starred       := primary ('*')?
//	primary       := LITERAL | '(' union ')' | GROUP
//
// A Parser is not re-usable; create a new one for every token sequence.
type Parser struct {
	tokens   []Token
	current  int
	depth    int // nesting of parentheses
	maxDepth int
}

// DefaultMaxDepth is the default bound for nested parentheses.
const DefaultMaxDepth = 256

// ParserOption configures a parser.
type ParserOption func(p *Parser)

// MaxDepth limits the nesting depth of parenthesized sub-expressions:
// with MaxDepth(1), "(a)" is accepted and "((a))" is not.
// Values < 1 select DefaultMaxDepth.
func MaxDepth(n int) ParserOption {
	return func(p *Parser) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// NewParser creates a parser for a token sequence as produced by a Lexer.
func NewParser(tokens []Token, opts ...ParserOption) *Parser {
	p := &Parser{tokens: tokens, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads a pattern and returns its syntax tree.
func Parse(pattern string, opts ...ParserOption) (*Node, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens, opts...).Parse()
}

// Parse builds the syntax tree for the complete token sequence. A token
// sequence consisting of nothing but TokEOF yields ErrEmptyPattern.
func (p *Parser) Parse() (*Node, error) {
	if p.peek().Type == TokEOF {
		return nil, parseError(p.peek().Pos, ErrEmptyPattern, "")
	}
	root, err := p.union()
	if err != nil {
		T().Debugf("parse failed: %v", err)
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokEOF {
		return nil, parseError(tok.Pos, ErrUnexpectedToken, tok.String())
	}
	T().Debugf("parsed %v", root)
	return root, nil
}

func (p *Parser) union() (*Node, error) {
	left, err := p.concatenation()
	if err != nil {
		return nil, err
	}
	for p.match(TokUnion) {
		right, err := p.concatenation()
		if err != nil {
			return nil, err
		}
		left = left.Union(right)
	}
	return left, nil
}

func (p *Parser) concatenation() (*Node, error) {
	left, err := p.quantified()
	if err != nil {
		return nil, err
	}
	for {
		switch p.peek().Type {
		case TokUnion, TokRParen, TokEOF:
			return left, nil
		case TokConcat:
			p.current++
		}
		right, err := p.quantified()
		if err != nil {
			return nil, err
		}
		left = left.Concat(right)
	}
}

func (p *Parser) quantified() (*Node, error) {
	x, err := p.plus()
	if err != nil {
		return nil, err
	}
	if p.match(TokQuestion) {
		x = x.Union(Eps())
	}
	return x, nil
}

// X+ is rewritten to X X*, where the repeated X is a copy of its own.
func (p *Parser) plus() (*Node, error) {
	x, err := p.starred()
	if err != nil {
		return nil, err
	}
	if p.match(TokPlus) {
		x = x.Concat(x.Clone().Star())
	}
	return x, nil
}

func (p *Parser) starred() (*Node, error) {
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.match(TokStar) {
		x = x.Star()
	}
	return x, nil
}

func (p *Parser) primary() (*Node, error) {
	tok := p.peek()
	switch tok.Type {
	case TokLiteral:
		p.current++
		return Char(tok.Char), nil
	case TokLParen:
		p.current++
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > p.maxDepth {
			return nil, parseError(tok.Pos, ErrTooDeep, "")
		}
		inner, err := p.union()
		if err != nil {
			return nil, err
		}
		if !p.match(TokRParen) {
			return nil, parseError(tok.Pos, ErrUnmatchedParen, "")
		}
		return inner, nil
	case TokGroup:
		p.current++
		return groupUnion(tok)
	case TokEOF:
		return nil, parseError(tok.Pos, ErrUnexpectedEOF, "")
	}
	return nil, parseError(tok.Pos, ErrUnexpectedToken, tok.String())
}

// groupUnion turns a character group into a left-associated chain of
// unions over its members.
func groupUnion(tok Token) (*Node, error) {
	runes := tok.Group.Runes()
	if len(runes) == 0 {
		return nil, parseError(tok.Pos, ErrUnexpectedToken, "empty group")
	}
	x := Char(runes[0])
	for _, r := range runes[1:] {
		x = x.Union(Char(r))
	}
	return x, nil
}

// peek returns the current token. Past the end of the sequence it returns
// a synthetic TokEOF.
func (p *Parser) peek() Token {
	if p.current < len(p.tokens) {
		return p.tokens[p.current]
	}
	pos := 0
	if len(p.tokens) > 0 {
		pos = p.tokens[len(p.tokens)-1].Pos
	}
	return Token{Type: TokEOF, Pos: pos}
}

// match consumes the current token if it is of type tt.
func (p *Parser) match(tt TokType) bool {
	if p.peek().Type == tt && tt != TokEOF {
		p.current++
		return true
	}
	return false
}
