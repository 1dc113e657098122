package cubes

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	_ "embed"

	"github.com/dhamidi/aoc/ebnf/grammar"
	"github.com/dhamidi/aoc/ebnf/parse"
)

// StartProduction is the grammar production matching a whole input.
const StartProduction = "file"

//go:embed cubes.ebnf
var grammarSource string

var loadGrammar = sync.OnceValues(func() (grammar.Grammar, error) {
	g, err := grammar.Parse("cubes.ebnf", strings.NewReader(grammarSource))
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("parse grammar: %w", err)
	}
	if err := grammar.Check(g, StartProduction); err != nil {
		return grammar.Grammar{}, fmt.Errorf("check grammar: %w", err)
	}
	return g, nil
})

// Grammar returns the game grammar.
func Grammar() (grammar.Grammar, error) {
	return loadGrammar()
}

// GrammarSource returns the text of the game grammar.
func GrammarSource() string {
	return grammarSource
}

// ParseTree parses src into a concrete syntax tree rooted at StartProduction.
// A grammar mismatch is reported as ErrSyntax wrapping a *parse.Error.
func ParseTree(src []byte, filename string) (*parse.Node, error) {
	g, err := Grammar()
	if err != nil {
		return nil, err
	}

	root, err := parse.ParseFile(g, src, filename, StartProduction)
	if err != nil {
		var perr *parse.Error
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: %w", ErrSyntax, perr)
		}
		return nil, err
	}
	return root, nil
}

// ParseGames parses src and builds one Game per record, in input order.
func ParseGames(src []byte, filename string) ([]Game, error) {
	root, err := ParseTree(src, filename)
	if err != nil {
		return nil, err
	}
	return BuildGames(root)
}

// BuildGames converts a syntax tree produced by ParseTree into games.
func BuildGames(root *parse.Node) ([]Game, error) {
	if root == nil || root.Kind != StartProduction {
		return nil, fmt.Errorf("build games: root is not a %s node", StartProduction)
	}

	records := root.ChildrenOf("record")
	games := make([]Game, 0, len(records))
	for _, record := range records {
		game, err := buildGame(record)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

func buildGame(record *parse.Node) (Game, error) {
	idNode := record.Child("id")
	if idNode == nil {
		return Game{}, fmt.Errorf("%s: record without id", record.Span.Start)
	}
	id, err := parseNumber("id", idNode)
	if err != nil {
		return Game{}, err
	}
	if id == 0 {
		return Game{}, &NumberError{
			Field:   "id",
			Literal: idNode.Text(),
			Pos:     idNode.Span.Start,
			Err:     ErrZeroID,
		}
	}

	setNodes := record.ChildrenOf("set")
	game := Game{ID: id, Sets: make([]Set, 0, len(setNodes))}
	for _, setNode := range setNodes {
		set, err := buildSet(setNode)
		if err != nil {
			return Game{}, err
		}
		game.Sets = append(game.Sets, set)
	}
	return game, nil
}

func buildSet(node *parse.Node) (Set, error) {
	cubeNodes := node.ChildrenOf("cube")
	cubes := make([]Cube, 0, len(cubeNodes))
	for _, cubeNode := range cubeNodes {
		amountNode, colorNode := cubeNode.Child("amount"), cubeNode.Child("color")
		if amountNode == nil || colorNode == nil {
			return Set{}, fmt.Errorf("%s: cube without amount or color", cubeNode.Span.Start)
		}

		amount, err := parseNumber("amount", amountNode)
		if err != nil {
			return Set{}, err
		}
		color, err := ParseColor(colorNode.Text())
		if err != nil {
			return Set{}, fmt.Errorf("%s: %w", colorNode.Span.Start, err)
		}
		cubes = append(cubes, Cube{Color: color, Amount: amount})
	}

	set, err := NewSet(cubes...)
	if err != nil {
		return Set{}, fmt.Errorf("%s: %w", node.Span.Start, err)
	}
	return set, nil
}

func parseNumber(field string, node *parse.Node) (uint32, error) {
	literal := node.Text()
	n, err := strconv.ParseUint(literal, 10, 32)
	if err != nil {
		return 0, &NumberError{
			Field:   field,
			Literal: literal,
			Pos:     node.Span.Start,
			Err:     err,
		}
	}
	return uint32(n), nil
}
