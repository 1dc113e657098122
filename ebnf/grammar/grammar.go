// Package grammar loads EBNF grammars in the notation of golang.org/x/exp/ebnf
// and answers the questions the lexer and parser ask about them.
//
// A single grammar describes both lexical and syntactic structure. Productions
// whose name starts with an uppercase letter are tokens: the lexer tries each
// of them at every input position. All other productions are either helpers
// for tokens (digit, letter) or syntactic rules the parser expands.
package grammar

import (
	"fmt"
	"io"
	"os"
	"sort"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
)

type (
	Expression  = ebnf.Expression
	Production  = ebnf.Production
	Alternative = ebnf.Alternative
	Sequence    = ebnf.Sequence
	Name        = ebnf.Name
	Token       = ebnf.Token
	Range       = ebnf.Range
	Group       = ebnf.Group
	Option      = ebnf.Option
	Repetition  = ebnf.Repetition
)

// Grammar is a parsed set of productions.
type Grammar struct {
	productions ebnf.Grammar
	tokens      []string
}

// New wraps already parsed productions.
func New(productions ebnf.Grammar) Grammar {
	g := Grammar{productions: productions}
	for name, prod := range productions {
		if IsToken(name) && prod.Expr != nil {
			g.tokens = append(g.tokens, name)
		}
	}
	sort.Strings(g.tokens)
	return g
}

// Parse reads a grammar from r. The filename is only used in error positions.
func Parse(filename string, r io.Reader) (Grammar, error) {
	productions, err := ebnf.Parse(filename, r)
	if err != nil {
		return Grammar{}, err
	}
	return New(productions), nil
}

// Load reads a grammar from a file.
func Load(filename string) (Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Grammar{}, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := Parse(filename, f)
	if err != nil {
		return Grammar{}, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// IsToken reports whether name denotes a token production.
func IsToken(name string) bool {
	ch, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(ch)
}

// Get returns the production with the given name, or nil.
func (g Grammar) Get(name string) *Production {
	return g.productions[name]
}

// Has reports whether the grammar defines name.
func (g Grammar) Has(name string) bool {
	_, ok := g.productions[name]
	return ok
}

// Tokens returns the names of all token productions in sorted order.
func (g Grammar) Tokens() []string {
	return g.tokens
}

// Names returns every production name in sorted order.
func (g Grammar) Names() []string {
	names := make([]string, 0, len(g.productions))
	for name := range g.productions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of productions.
func (g Grammar) Len() int {
	return len(g.productions)
}
