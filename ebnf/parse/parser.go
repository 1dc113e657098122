package parse

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/dhamidi/aoc/ebnf/grammar"
	"github.com/dhamidi/aoc/ebnf/lex"
)

// Parser matches a token stream against an EBNF grammar.
//
// Expressions are interpreted with ordered choice: the first alternative
// that matches wins, options and repetitions are greedy, and a sequence that
// fails part way gives back everything it consumed. Uppercase names match
// token kinds, quoted strings match token literals and lowercase names are
// expanded as productions, each becoming an interior node of the tree.
type Parser struct {
	grammar   grammar.Grammar
	tokens    []lex.Token
	skipKinds map[string]bool

	filtered []lex.Token // tokens after filtering trivia, ending in EOF
	pos      int
	visiting map[visitKey]bool

	furthest int
	expected map[string]bool
}

type visitKey struct {
	name string
	pos  int
}

// NewParser creates a parser for tokens produced by lexing with g.
func NewParser(g grammar.Grammar, tokens []lex.Token) *Parser {
	return &Parser{
		grammar:   g,
		tokens:    tokens,
		skipKinds: map[string]bool{"WhiteSpace": true, "Comment": true},
	}
}

// SetSkipKinds sets which token kinds to skip between terminals.
func (p *Parser) SetSkipKinds(kinds ...string) {
	p.skipKinds = make(map[string]bool)
	for _, k := range kinds {
		p.skipKinds[k] = true
	}
}

// Parse parses the whole token stream starting from the given production.
// On mismatch it returns a *Error.
func (p *Parser) Parse(startProduction string) (*Node, error) {
	prod := p.grammar.Get(startProduction)
	if prod == nil || prod.Expr == nil {
		return nil, fmt.Errorf("production %q not found in grammar", startProduction)
	}

	p.filter()
	p.pos = 0
	p.furthest = 0
	p.expected = make(map[string]bool)
	p.visiting = make(map[visitKey]bool)

	root := NewNonTerminal(startProduction)
	if p.match(prod.Expr, root) {
		if p.current().Kind == lex.KindEOF {
			p.finish(root, 0)
			return root, nil
		}
		p.expect(lex.KindEOF)
	}
	return nil, p.syntaxError()
}

func (p *Parser) filter() {
	p.filtered = make([]lex.Token, 0, len(p.tokens)+1)
	for _, tok := range p.tokens {
		if tok.Kind == lex.KindEOF {
			break
		}
		if !p.skipKinds[tok.Kind] {
			p.filtered = append(p.filtered, tok)
		}
	}

	eof := lex.Token{Kind: lex.KindEOF}
	if n := len(p.tokens); n > 0 {
		last := p.tokens[n-1]
		eof.Position = last.Position
		if last.Kind != lex.KindEOF {
			eof.Position.Offset += len(last.Literal)
			eof.Position.Column += len(last.Literal)
		}
	} else {
		eof.Position = lex.Position{Line: 1, Column: 1}
	}
	p.filtered = append(p.filtered, eof)
}

func (p *Parser) current() lex.Token {
	return p.filtered[p.pos]
}

// match matches expr at the current position, appending the resulting nodes
// to parent. On failure neither the position nor parent is changed.
func (p *Parser) match(expr grammar.Expression, parent *Node) bool {
	switch e := expr.(type) {
	case nil:
		return true

	case *grammar.Token:
		return p.matchTerminal(parent, strconv.Quote(e.String), func(tok lex.Token) bool {
			return tok.Literal == e.String
		})

	case *grammar.Range:
		return p.matchTerminal(parent, strconv.Quote(e.Begin.String)+"…"+strconv.Quote(e.End.String), func(tok lex.Token) bool {
			return len(tok.Literal) == 1 && len(e.Begin.String) == 1 && len(e.End.String) == 1 &&
				tok.Literal[0] >= e.Begin.String[0] && tok.Literal[0] <= e.End.String[0]
		})

	case *grammar.Name:
		if grammar.IsToken(e.String) {
			return p.matchTerminal(parent, e.String, func(tok lex.Token) bool {
				return tok.Kind == e.String
			})
		}
		return p.matchProduction(e.String, parent)

	case grammar.Sequence:
		pos, n := p.pos, len(parent.Children)
		for _, item := range e {
			if !p.match(item, parent) {
				p.pos = pos
				parent.Children = parent.Children[:n]
				return false
			}
		}
		return true

	case grammar.Alternative:
		for _, alt := range e {
			if p.match(alt, parent) {
				return true
			}
		}
		return false

	case *grammar.Group:
		return p.match(e.Body, parent)

	case *grammar.Option:
		p.match(e.Body, parent)
		return true

	case *grammar.Repetition:
		for {
			pos := p.pos
			if !p.match(e.Body, parent) || p.pos == pos {
				return true
			}
		}
	}

	return false
}

func (p *Parser) matchTerminal(parent *Node, label string, accept func(lex.Token) bool) bool {
	tok := p.current()
	if tok.Kind != lex.KindEOF && accept(tok) {
		parent.Children = append(parent.Children, NewTerminal(tok))
		p.pos++
		return true
	}
	p.expect(label)
	return false
}

func (p *Parser) matchProduction(name string, parent *Node) bool {
	prod := p.grammar.Get(name)
	if prod == nil || prod.Expr == nil {
		p.expect(name)
		return false
	}

	// Left recursion cannot make progress; fail this branch.
	key := visitKey{name: name, pos: p.pos}
	if p.visiting[key] {
		return false
	}
	p.visiting[key] = true
	defer delete(p.visiting, key)

	start := p.pos
	node := NewNonTerminal(name)
	if !p.match(prod.Expr, node) {
		return false
	}
	p.finish(node, start)
	parent.Children = append(parent.Children, node)
	return true
}

// finish sets the span of an interior node covering tokens [start, p.pos).
func (p *Parser) finish(node *Node, start int) {
	node.Span.Start = p.filtered[start].Position
	node.Span.End = node.Span.Start
	if p.pos > start {
		last := p.filtered[p.pos-1]
		node.Span.End = lex.Position{
			Filename: last.Position.Filename,
			Offset:   last.Position.Offset + len(last.Literal),
			Line:     last.Position.Line,
			Column:   last.Position.Column + len(last.Literal),
		}
	}
}

// expect records that label would have been accepted at the current position.
func (p *Parser) expect(label string) {
	switch {
	case p.pos > p.furthest:
		p.furthest = p.pos
		p.expected = map[string]bool{label: true}
	case p.pos == p.furthest:
		p.expected[label] = true
	}
}

func (p *Parser) syntaxError() *Error {
	tok := p.filtered[p.furthest]
	expected := make([]string, 0, len(p.expected))
	for label := range p.expected {
		expected = append(expected, label)
	}
	sort.Strings(expected)
	return &Error{
		Pos:      tok.Position,
		Expected: expected,
		Found:    tok.Literal,
		AtEOF:    tok.Kind == lex.KindEOF,
	}
}

// ParseTokens is a convenience function to parse tokens with a grammar.
func ParseTokens(g grammar.Grammar, tokens []lex.Token, start string) (*Node, error) {
	return NewParser(g, tokens).Parse(start)
}

// ParseFile tokenizes input with the token productions of g and parses the
// result starting from start.
func ParseFile(g grammar.Grammar, input []byte, filename, start string) (*Node, error) {
	tokens, err := lex.NewLexer(g, input, filename).Tokenize()
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}
	return NewParser(g, tokens).Parse(start)
}
