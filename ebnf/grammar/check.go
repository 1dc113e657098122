package grammar

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Check verifies that a combined lexer/parser grammar is well formed.
//
// It reports a missing start production, references to undefined
// productions, malformed character ranges and productions that can be
// reached neither from start nor from any token. Unlike ebnf.Verify it
// allows syntactic productions to refer to tokens, which is how the lexer
// and parser share one grammar.
func Check(g Grammar, start string) error {
	c := &checker{grammar: g, reached: make(map[string]bool)}

	if start != "" {
		if !g.Has(start) {
			return fmt.Errorf("no start production %s", start)
		}
		c.visit(start)
	}
	for _, tok := range g.Tokens() {
		c.visit(tok)
	}

	if start != "" {
		for _, name := range g.Names() {
			if !c.reached[name] {
				prod := g.Get(name)
				c.errorf("%s: %s is unused", prod.Pos(), name)
			}
		}
	}

	return errors.Join(c.errs...)
}

type checker struct {
	grammar Grammar
	reached map[string]bool
	errs    []error
}

func (c *checker) errorf(format string, args ...any) {
	c.errs = append(c.errs, fmt.Errorf(format, args...))
}

func (c *checker) visit(name string) {
	if c.reached[name] {
		return
	}
	c.reached[name] = true
	if prod := c.grammar.Get(name); prod != nil {
		c.expr(prod.Expr)
	}
}

func (c *checker) expr(x Expression) {
	switch e := x.(type) {
	case nil:
	case Alternative:
		for _, alt := range e {
			c.expr(alt)
		}
	case Sequence:
		for _, item := range e {
			c.expr(item)
		}
	case *Name:
		if !c.grammar.Has(e.String) {
			c.errorf("%s: missing production %s", e.Pos(), e.String)
			return
		}
		c.visit(e.String)
	case *Token:
		if e.String == "" {
			c.errorf("%s: empty token", e.Pos())
		}
	case *Range:
		begin, ok1 := char(e.Begin)
		end, ok2 := char(e.End)
		if !ok1 || !ok2 {
			c.errorf("%s: range bounds must be single characters", e.Pos())
			return
		}
		if begin >= end {
			c.errorf("%s: decreasing character range", e.Pos())
		}
	case *Group:
		c.expr(e.Body)
	case *Option:
		c.expr(e.Body)
	case *Repetition:
		c.expr(e.Body)
	default:
		c.errorf("%s: unexpected expression %T", x.Pos(), x)
	}
}

func char(tok *Token) (rune, bool) {
	if utf8.RuneCountInString(tok.String) != 1 {
		return 0, false
	}
	ch, _ := utf8.DecodeRuneInString(tok.String)
	return ch, true
}
