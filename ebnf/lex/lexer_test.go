package lex

import (
	"strings"
	"testing"

	"github.com/dhamidi/aoc/ebnf/grammar"
)

const testGrammar = `
	Number     = digit { digit } .
	Word       = letter { letter } .
	Colon      = ":" .
	Newline    = [ "\r" ] "\n" .
	WhiteSpace = blank { blank } .
	digit      = "0" … "9" .
	letter     = "a" … "z" | "A" … "Z" .
	blank      = " " | "\t" .
`

func newTestLexer(t *testing.T, input string) *Lexer {
	t.Helper()
	g, err := grammar.Parse("test", strings.NewReader(testGrammar))
	if err != nil {
		t.Fatalf("parse grammar: %v", err)
	}
	return NewLexer(g, []byte(input), "")
}

func TestTokenize(t *testing.T) {
	tokens, err := newTestLexer(t, "Game 12:\tred").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	want := []struct {
		kind    string
		literal string
	}{
		{"Word", "Game"},
		{"WhiteSpace", " "},
		{"Number", "12"},
		{"Colon", ":"},
		{"WhiteSpace", "\t"},
		{"Word", "red"},
		{KindEOF, ""},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Literal != w.literal {
			t.Errorf("token %d = %s %q, want %s %q", i, tokens[i].Kind, tokens[i].Literal, w.kind, w.literal)
		}
	}
}

func TestOptionalPrefixMatchesEmpty(t *testing.T) {
	for _, input := range []string{"\n", "\r\n"} {
		tokens, err := newTestLexer(t, input).Tokenize()
		if err != nil {
			t.Fatalf("Tokenize(%q) error: %v", input, err)
		}
		if len(tokens) != 2 || tokens[0].Kind != "Newline" || tokens[0].Literal != input {
			t.Errorf("Tokenize(%q) = %v, want one Newline token", input, tokens)
		}
	}
}

func TestPositionsTrackLines(t *testing.T) {
	tokens, err := newTestLexer(t, "a\nbc 7").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	var number Token
	for _, tok := range tokens {
		if tok.Kind == "Number" {
			number = tok
		}
	}
	if number.Position.Line != 2 || number.Position.Column != 4 || number.Position.Offset != 5 {
		t.Errorf("Number position = %+v, want line 2 column 4 offset 5", number.Position)
	}
}

func TestUnmatchedByteBecomesErrorToken(t *testing.T) {
	tokens, err := newTestLexer(t, "1#2").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(tokens) != 4 {
		t.Fatalf("got %d tokens, want 4: %v", len(tokens), tokens)
	}
	if tokens[1].Kind != KindError || tokens[1].Literal != "#" {
		t.Errorf("token 1 = %v, want ERROR \"#\"", tokens[1])
	}
	if tokens[2].Kind != "Number" || tokens[2].Literal != "2" {
		t.Errorf("token 2 = %v, want Number \"2\"", tokens[2])
	}
}

func TestUnmatchedNonASCIIByteKeepsRawByte(t *testing.T) {
	tokens, err := newTestLexer(t, "1\xc3").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokens)
	}
	if tokens[1].Kind != KindError || tokens[1].Literal != "\xc3" {
		t.Errorf("token 1 = %v, want ERROR \"\\xc3\"", tokens[1])
	}
	if got := tokens[2].Position.Column; got != 3 {
		t.Errorf("EOF column = %d, want 3", got)
	}
}

func TestTokenizeManyLines(t *testing.T) {
	input := strings.Repeat("Game 1: red\n", 500)
	tokens, err := newTestLexer(t, input).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	// Word, WhiteSpace, Number, Colon, WhiteSpace, Word, Newline per line.
	if want := 500*7 + 1; len(tokens) != want {
		t.Fatalf("got %d tokens, want %d", len(tokens), want)
	}
	last := tokens[len(tokens)-2]
	if last.Kind != "Newline" || last.Position.Line != 500 {
		t.Errorf("last token = %v, want Newline on line 500", last)
	}
}

func TestEmptyInputYieldsEOF(t *testing.T) {
	tokens, err := newTestLexer(t, "").Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Kind != KindEOF {
		t.Errorf("Tokenize() = %v, want only EOF", tokens)
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 3, Column: 9}).String(); got != "3:9" {
		t.Errorf("String() = %q, want %q", got, "3:9")
	}
	if got := (Position{Filename: "games.txt", Line: 1, Column: 2}).String(); got != "games.txt:1:2" {
		t.Errorf("String() = %q, want %q", got, "games.txt:1:2")
	}
}
