package regex

import (
	"unicode/utf8"
)

// Lexer breaks a pattern into tokens.
//
// Lexer implements the scanner.Tokenizer interface of package
// github.com/npillmayer/gorgo/lr/scanner. The token value delivered by
// NextToken is of type Token.
//
// A Lexer stops at the first malformed character group. From then on it
// delivers TokEOF only, and Err reports the failure.
type Lexer struct {
	input   string      // the pattern
	pos     int         // byte position of next rune to read
	done    bool        // EOF has been delivered
	err     error       // first failure, if any
	onError func(error) // optional error handler
}

// NewLexer creates a lexer for a pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{input: pattern}
}

// Reset re-arms a lexer for a new pattern. The error handler is kept.
func (lx *Lexer) Reset(pattern string) {
	lx.input = pattern
	lx.pos = 0
	lx.done = false
	lx.err = nil
}

// Err returns the failure which stopped the lexer, or nil.
func (lx *Lexer) Err() error {
	return lx.err
}

// SetErrorHandler sets a function which will be called with the error
// stopping the lexer.
func (lx *Lexer) SetErrorHandler(h func(error)) {
	lx.onError = h
}

// NextToken is part of interface scanner.Tokenizer. It returns the token
// type, the Token, and the position and byte length of the token's lexeme.
// Argument expected is ignored.
func (lx *Lexer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	tok := lx.Next()
	if tok.Type == TokEOF {
		return int(tok.Type), tok, uint64(tok.Pos), 0
	}
	return int(tok.Type), tok, uint64(tok.Pos), uint64(lx.pos - tok.Pos)
}

// Next returns the next token of the pattern. After the end of the
// pattern, or after a failure, Next returns TokEOF.
func (lx *Lexer) Next() Token {
	if lx.err != nil || lx.done {
		return Token{Type: TokEOF, Pos: lx.pos}
	}
	lx.skipWhitespace()
	if lx.pos >= len(lx.input) {
		lx.done = true
		return Token{Type: TokEOF, Pos: lx.pos}
	}
	start := lx.pos
	r := lx.read()
	var tok Token
	switch r {
	case '|':
		tok = Token{Type: TokUnion, Pos: start}
	case '.':
		tok = Token{Type: TokConcat, Pos: start}
	case '*':
		tok = Token{Type: TokStar, Pos: start}
	case '+':
		tok = Token{Type: TokPlus, Pos: start}
	case '?':
		tok = Token{Type: TokQuestion, Pos: start}
	case '(':
		tok = Token{Type: TokLParen, Pos: start}
	case ')':
		tok = Token{Type: TokRParen, Pos: start}
	case '"':
		tok = lx.quoted(start)
	case '[':
		tok = lx.bracketed(start)
	default:
		tok = Token{Type: TokLiteral, Char: r, Pos: start}
	}
	if tok.Type != TokEOF {
		T().Debugf("scanned token %v at %d", tok, tok.Pos)
	}
	return tok
}

// Tokens reads the complete pattern. The result ends with exactly one
// TokEOF. If the pattern is malformed, no tokens are returned.
func (lx *Lexer) Tokens() ([]Token, error) {
	var tokens []Token
	for {
		tok := lx.Next()
		if lx.err != nil {
			return nil, lx.err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

// Tokenize breaks a pattern into tokens, terminated by TokEOF.
func Tokenize(pattern string) ([]Token, error) {
	return NewLexer(pattern).Tokens()
}

// quoted collects the characters of "…". The opening quote has been read.
func (lx *Lexer) quoted(start int) Token {
	var runes []rune
	for lx.pos < len(lx.input) {
		r := lx.read()
		if r == '"' {
			if len(runes) == 0 {
				return lx.fail(tokenizeError(start, ErrEmptyGroup, `""`))
			}
			return Token{Type: TokGroup, Group: NewCharSet(runes...), Pos: start}
		}
		runes = append(runes, r)
	}
	return lx.fail(tokenizeError(start, ErrUnterminated, `missing closing '"'`))
}

// bracketed collects the characters and ranges of […]. The opening bracket
// has been read. A dash in first or last position stands for itself.
func (lx *Lexer) bracketed(start int) Token {
	var runes []rune
	for lx.pos < len(lx.input) {
		r := lx.read()
		if r == ']' {
			if len(runes) == 0 {
				return lx.fail(tokenizeError(start, ErrEmptyGroup, "[]"))
			}
			return Token{Type: TokGroup, Group: NewCharSet(runes...), Pos: start}
		}
		if lx.pos < len(lx.input) && lx.input[lx.pos] == '-' {
			upper := lx.pos + 1
			if upper >= len(lx.input) {
				break // unterminated
			}
			to, sz := utf8.DecodeRuneInString(lx.input[upper:])
			if to != ']' {
				if to < r {
					return lx.fail(tokenizeError(lx.pos, ErrBadRange, string([]rune{r, '-', to})))
				}
				for c := r; c <= to; c++ {
					runes = append(runes, c)
				}
				lx.pos = upper + sz
				continue
			}
		}
		runes = append(runes, r)
	}
	return lx.fail(tokenizeError(start, ErrUnterminated, "missing closing ']'"))
}

func (lx *Lexer) read() rune {
	r, sz := utf8.DecodeRuneInString(lx.input[lx.pos:])
	lx.pos += sz
	return r
}

func (lx *Lexer) skipWhitespace() {
	for lx.pos < len(lx.input) {
		switch lx.input[lx.pos] {
		case ' ', '\t', '\r', '\n':
			lx.pos++
		default:
			return
		}
	}
}

func (lx *Lexer) fail(err *Error) Token {
	lx.err = err
	T().Errorf("%v", err)
	if lx.onError != nil {
		lx.onError(err)
	}
	return Token{Type: TokEOF, Pos: lx.pos}
}
