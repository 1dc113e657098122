package lsp

import (
	"errors"
	"fmt"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/aoc/cubes"
	"github.com/dhamidi/aoc/ebnf/lex"
	"github.com/dhamidi/aoc/ebnf/parse"
)

var diagnosticSource = lsName

// Diagnostics parses text and returns at most one diagnostic: the error that
// stops the whole input. A valid document yields an empty, non-nil slice so
// that publishing it clears earlier diagnostics.
func Diagnostics(filename, text string) []protocol.Diagnostic {
	_, err := cubes.ParseGames([]byte(text), filename)
	if err == nil {
		return []protocol.Diagnostic{}
	}

	start := lex.Position{Line: 1, Column: 1}
	width := 1
	message := err.Error()

	var perr *parse.Error
	var nerr *cubes.NumberError
	switch {
	case errors.As(err, &perr):
		start = perr.Pos
		if !perr.AtEOF && perr.Found != "" {
			width = len(perr.Found)
		}
		message = strings.TrimPrefix(perr.Error(), fmt.Sprintf("parse error at %s: ", perr.Pos))
	case errors.As(err, &nerr):
		start = nerr.Pos
		width = len(nerr.Literal)
	}

	severity := protocol.DiagnosticSeverityError
	return []protocol.Diagnostic{{
		Range: protocol.Range{
			Start: toProtocolPosition(start, 0),
			End:   toProtocolPosition(start, width),
		},
		Severity: &severity,
		Source:   &diagnosticSource,
		Message:  message,
	}}
}

// Hover describes the game on the given zero-based line of text, or returns
// nil if that line is not a valid game.
func Hover(text string, line int, rule cubes.Rule) *protocol.Hover {
	lines := strings.Split(text, "\n")
	if line < 0 || line >= len(lines) {
		return nil
	}
	source := strings.TrimRight(lines[line], "\r")

	games, err := cubes.ParseGames([]byte(source), "")
	if err != nil || len(games) != 1 {
		return nil
	}
	report, err := cubes.Analyze(games, rule)
	if err != nil {
		return nil
	}
	g := report.Games[0]

	verdict := "possible"
	if !g.Feasible {
		verdict = "impossible"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Game %d** is %s with %s\n\n", g.ID, verdict, rule)
	fmt.Fprintf(&sb, "minimum bag: %s\n\n", g.Minimum)
	fmt.Fprintf(&sb, "power: %d", g.Power)

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: sb.String(),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line)},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(len(source))},
		},
	}
}

// toProtocolPosition converts a one-based source position, shifted right by
// offset columns, to a zero-based LSP position.
func toProtocolPosition(pos lex.Position, offset int) protocol.Position {
	line, col := pos.Line-1, pos.Column-1+offset
	if line < 0 {
		line = 0
	}
	if col < 0 {
		col = 0
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(col),
	}
}
