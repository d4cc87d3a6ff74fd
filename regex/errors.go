package regex

import (
	"errors"
	"fmt"
)

// Stage tells which processing step of a pattern failed.
type Stage int8

// Stages of pattern processing
const (
	StageTokenize Stage = iota // breaking the pattern into tokens
	StageParse                 // building the syntax tree
)

func (s Stage) String() string {
	switch s {
	case StageTokenize:
		return "tokenize"
	case StageParse:
		return "parse"
	}
	return fmt.Sprintf("stage(%d)", int8(s))
}

// Errors reported by the lexer and the parser. They are always wrapped
// into an *Error; test for them with errors.Is.
var (
	ErrEmptyPattern    = errors.New("empty pattern")
	ErrUnterminated    = errors.New("unterminated literal group")
	ErrEmptyGroup      = errors.New("empty literal group")
	ErrBadRange        = errors.New("malformed character range")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrUnmatchedParen  = errors.New("missing ')'")
	ErrUnexpectedEOF   = errors.New("unexpected end of pattern")
	ErrTooDeep         = errors.New("pattern nested too deeply")
)

// Error is a failure while reading a pattern. Pos is the byte offset
// into the pattern where the problem has been detected.
type Error struct {
	Stage Stage
	Pos   int
	Err   error
	Msg   string // optional detail, may be empty
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("regex %s error at %d: %v", e.Stage, e.Pos, e.Err)
	}
	return fmt.Sprintf("regex %s error at %d: %v: %s", e.Stage, e.Pos, e.Err, e.Msg)
}

// Unwrap returns the sentinel error.
func (e *Error) Unwrap() error {
	return e.Err
}

func tokenizeError(pos int, err error, msg string) *Error {
	return &Error{Stage: StageTokenize, Pos: pos, Err: err, Msg: msg}
}

func parseError(pos int, err error, msg string) *Error {
	return &Error{Stage: StageParse, Pos: pos, Err: err, Msg: msg}
}
