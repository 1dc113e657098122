// Package cubes solves the cube conundrum: games of cubes drawn from a bag,
// written one per line as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Input is parsed with the grammar in cubes.ebnf, built into Game values
// and analyzed two ways: which games a bag with a fixed Rule could have
// produced, and the smallest bag each game needs.
package cubes

import (
	"fmt"
	"strings"
)

// Game is one record of the input.
type Game struct {
	ID   uint32
	Sets []Set
}

// FeasibleUnder reports whether every set of g fits into rule. A game
// without sets is feasible.
func (g Game) FeasibleUnder(rule Rule) bool {
	for _, s := range g.Sets {
		if !rule.Allows(s) {
			return false
		}
	}
	return true
}

// MinimumCapacity returns the fewest cubes of each color that make every
// set of g possible.
func (g Game) MinimumCapacity() Set {
	var minimum Set
	for _, s := range g.Sets {
		minimum = minimum.Max(s)
	}
	return minimum
}

// Power is the power of the minimum capacity of g.
func (g Game) Power() (uint64, error) {
	power, err := g.MinimumCapacity().Power()
	if err != nil {
		return 0, fmt.Errorf("game %d: %w", g.ID, err)
	}
	return power, nil
}

// String renders g in canonical input syntax.
func (g Game) String() string {
	sets := make([]string, len(g.Sets))
	for i, s := range g.Sets {
		sets[i] = s.String()
	}
	return fmt.Sprintf("Game %d: %s", g.ID, strings.Join(sets, "; "))
}
