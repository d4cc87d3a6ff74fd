package regex

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharSet is an immutable set of characters, as collected from a quoted
// or bracketed character group.
type CharSet struct {
	table *unicode.RangeTable
	size  int
}

// NewCharSet creates a set from runes, which may contain duplicates.
func NewCharSet(runes ...rune) *CharSet {
	cs := &CharSet{table: rangetable.New(runes...)}
	rangetable.Visit(cs.table, func(rune) { cs.size++ })
	return cs
}

// Contains reports whether r is a member of the set.
func (cs *CharSet) Contains(r rune) bool {
	if cs == nil || r < 0 {
		return false
	}
	return unicode.Is(cs.table, r)
}

// Len returns the number of distinct characters in the set.
func (cs *CharSet) Len() int {
	if cs == nil {
		return 0
	}
	return cs.size
}

// Runes returns the members of the set in ascending code-point order.
func (cs *CharSet) Runes() []rune {
	if cs == nil {
		return nil
	}
	runes := make([]rune, 0, cs.size)
	rangetable.Visit(cs.table, func(r rune) {
		runes = append(runes, r)
	})
	return runes
}

// Table returns the set as a Unicode range table.
func (cs *CharSet) Table() *unicode.RangeTable {
	return cs.table
}

func (cs *CharSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range cs.Runes() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('}')
	return b.String()
}
