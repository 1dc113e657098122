package parse

import (
	"fmt"
	"strings"

	"github.com/dhamidi/aoc/ebnf/lex"
)

// Error describes why a token stream does not match a grammar. It refers to
// the furthest token any alternative reached.
type Error struct {
	Pos      lex.Position
	Expected []string // terminals that would have been accepted, sorted
	Found    string   // literal of the offending token, empty at end of input
	AtEOF    bool
}

func (e *Error) Error() string {
	found := "end of input"
	if !e.AtEOF {
		found = fmt.Sprintf("%q", e.Found)
	}
	if len(e.Expected) == 0 {
		return fmt.Sprintf("parse error at %s: unexpected %s", e.Pos, found)
	}
	return fmt.Sprintf("parse error at %s: expected %s, found %s",
		e.Pos, strings.Join(e.Expected, " or "), found)
}
