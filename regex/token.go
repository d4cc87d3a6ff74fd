package regex

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/gorgo/lr/scanner"
)

// TokType is the type of a pattern token.
type TokType int

// TokEOF terminates every token sequence. It has the same value as the
// EOF token of gorgo scanners.
const TokEOF TokType = TokType(scanner.EOF)

// Token types
const (
	TokLiteral  TokType = iota + 1 // single character
	TokLParen                      // (
	TokRParen                      // )
	TokConcat                      // . explicit sequencing
	TokUnion                       // |
	TokStar                        // *
	TokPlus                        // +
	TokQuestion                    // ?
	TokGroup                       // "…" or […]
)

var toknames = [...]string{"?", "Literal", "(", ")", ".", "|", "*", "+", "?", "Group"}

func (tt TokType) String() string {
	if tt == TokEOF {
		return "EOF"
	}
	if tt > 0 && int(tt) < len(toknames) {
		return toknames[tt]
	}
	return "TokType(" + strconv.Itoa(int(tt)) + ")"
}

// Token is a lexical unit of a pattern. Char is set for literals, Group for
// character groups. Pos is the byte offset of the token in the pattern.
type Token struct {
	Type  TokType
	Char  rune
	Group *CharSet
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case TokLiteral:
		return fmt.Sprintf("Literal(%q)", t.Char)
	case TokGroup:
		return "Group" + t.Group.String()
	}
	return t.Type.String()
}
