package cubes

import (
	"errors"
	"fmt"

	"github.com/dhamidi/aoc/ebnf/lex"
)

var (
	// ErrSyntax wraps a *parse.Error when the input does not match the grammar.
	ErrSyntax = errors.New("input does not match the game grammar")

	// ErrNumber marks an id or amount that is not a valid uint32.
	ErrNumber = errors.New("malformed number")

	// ErrZeroID marks a game identifier of 0; identifiers are positive.
	ErrZeroID = errors.New("game id must be positive")

	// ErrUnknownColor marks a color keyword outside red, green and blue.
	ErrUnknownColor = errors.New("unknown color")

	// ErrDuplicateColor marks a set that lists the same color twice.
	ErrDuplicateColor = errors.New("color listed twice in one set")

	// ErrOverflow marks a sum or product that does not fit in a uint64.
	ErrOverflow = errors.New("arithmetic overflow")
)

// NumberError reports a numeric token that could not be converted.
type NumberError struct {
	Field   string // "id" or "amount"
	Literal string
	Pos     lex.Position
	Err     error
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", e.Pos, e.Field, e.Literal, e.Err)
}

func (e *NumberError) Unwrap() []error {
	return []error{ErrNumber, e.Err}
}
