// Package lex provides lexical scanning based on EBNF grammars.
package lex

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/aoc/ebnf/grammar"
)

// Kinds produced by the lexer itself rather than by a grammar production.
const (
	KindEOF   = "EOF"
	KindError = "ERROR"
)

// Position represents a location in source code.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token represents a lexical token with its position.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// noMatch marks a failed match; zero is a valid, empty match.
const noMatch = -1

type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes input based on an EBNF grammar.
type Lexer struct {
	grammar  grammar.Grammar
	input    []byte
	filename string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

// NewLexer creates a lexer for the given grammar and input.
func NewLexer(g grammar.Grammar, input []byte, filename string) *Lexer {
	return &Lexer{
		grammar:  g,
		input:    input,
		filename: filename,
		line:     1,
		column:   1,
		memo:     make(map[memoKey]int),
		visiting: make(map[memoKey]bool),
	}
}

// Position returns the current position in the input.
func (l *Lexer) Position() Position {
	return Position{
		Filename: l.filename,
		Offset:   l.pos,
		Line:     l.line,
		Column:   l.column,
	}
}

func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
}

// NextToken returns the next token from the input.
// Every token production is tried at the current offset and the longest
// match wins; on equal length the production whose name sorts first wins.
// At the end of input it returns an EOF token together with io.EOF.
func (l *Lexer) NextToken() (Token, error) {
	if l.pos >= len(l.input) {
		return Token{Kind: KindEOF, Position: l.Position()}, io.EOF
	}

	startPos := l.Position()
	startOffset := l.pos

	// Memoized lengths are only valid for one token start.
	clear(l.memo)

	var bestKind string
	bestLen := 0
	for _, name := range l.grammar.Tokens() {
		n := l.tryMatchName(name, startOffset)
		if n > bestLen {
			bestLen = n
			bestKind = name
		}
	}

	if bestLen == 0 {
		literal := string(l.input[l.pos : l.pos+1])
		l.advance()
		return Token{
			Kind:     KindError,
			Literal:  literal,
			Position: startPos,
		}, nil
	}

	for i := 0; i < bestLen; i++ {
		l.advance()
	}

	return Token{
		Kind:     bestKind,
		Literal:  string(l.input[startOffset : startOffset+bestLen]),
		Position: startPos,
	}, nil
}

// tryMatch returns the length of the match of expr at offset, or noMatch.
func (l *Lexer) tryMatch(expr grammar.Expression, offset int) int {
	switch e := expr.(type) {
	case nil:
		return 0

	case *grammar.Token:
		return l.tryMatchToken(e.String, offset)

	case *grammar.Range:
		return l.tryMatchRange(e.Begin.String, e.End.String, offset)

	case grammar.Sequence:
		total := 0
		for _, item := range e {
			n := l.tryMatch(item, offset+total)
			if n == noMatch {
				return noMatch
			}
			total += n
		}
		return total

	case grammar.Alternative:
		best := noMatch
		for _, alt := range e {
			if n := l.tryMatch(alt, offset); n > best {
				best = n
			}
		}
		return best

	case *grammar.Repetition:
		total := 0
		for {
			n := l.tryMatch(e.Body, offset+total)
			if n <= 0 {
				break
			}
			total += n
		}
		return total

	case *grammar.Option:
		if n := l.tryMatch(e.Body, offset); n > 0 {
			return n
		}
		return 0

	case *grammar.Group:
		return l.tryMatch(e.Body, offset)

	case *grammar.Name:
		return l.tryMatchName(e.String, offset)

	default:
		return noMatch
	}
}

// tryMatchName matches a named production with memoization and cycle detection.
func (l *Lexer) tryMatchName(name string, offset int) int {
	key := memoKey{name: name, offset: offset}

	if result, ok := l.memo[key]; ok {
		return result
	}

	// Left recursion: fail the inner attempt instead of looping.
	if l.visiting[key] {
		return noMatch
	}

	prod := l.grammar.Get(name)
	if prod == nil || prod.Expr == nil {
		l.memo[key] = noMatch
		return noMatch
	}

	l.visiting[key] = true
	result := l.tryMatch(prod.Expr, offset)
	delete(l.visiting, key)

	l.memo[key] = result
	return result
}

func (l *Lexer) tryMatchToken(token string, offset int) int {
	if offset+len(token) > len(l.input) {
		return noMatch
	}
	if bytes.HasPrefix(l.input[offset:], []byte(token)) {
		return len(token)
	}
	return noMatch
}

// tryMatchRange matches one byte in a character range such as "a" … "z".
func (l *Lexer) tryMatchRange(begin, end string, offset int) int {
	if offset >= len(l.input) || len(begin) != 1 || len(end) != 1 {
		return noMatch
	}
	ch := l.input[offset]
	if ch >= begin[0] && ch <= end[0] {
		return 1
	}
	return noMatch
}

// Tokenize reads all tokens from input. The last token is always EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err == io.EOF {
			tokens = append(tokens, tok)
			break
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}
