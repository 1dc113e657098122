package cubes

import (
	"fmt"
	"math/bits"
)

// SumFeasible returns the sum of the ids of all games feasible under rule.
func SumFeasible(games []Game, rule Rule) (uint64, error) {
	var sum uint64
	for _, g := range games {
		if !g.FeasibleUnder(rule) {
			continue
		}
		var err error
		if sum, err = add(sum, uint64(g.ID)); err != nil {
			return 0, fmt.Errorf("sum of feasible ids: %w", err)
		}
	}
	return sum, nil
}

// SumPower returns the sum of the powers of all games.
func SumPower(games []Game) (uint64, error) {
	var sum uint64
	for _, g := range games {
		power, err := g.Power()
		if err != nil {
			return 0, err
		}
		if sum, err = add(sum, power); err != nil {
			return 0, fmt.Errorf("sum of powers: %w", err)
		}
	}
	return sum, nil
}

// GameReport holds both analyses for a single game.
type GameReport struct {
	ID       uint32 `json:"id"`
	Feasible bool   `json:"feasible"`
	Minimum  Set    `json:"minimum"`
	Power    uint64 `json:"power"`
}

// Report holds both analyses for a whole input.
type Report struct {
	Rule        Rule         `json:"rule"`
	FeasibleSum uint64       `json:"feasible_sum"`
	PowerSum    uint64       `json:"power_sum"`
	Games       []GameReport `json:"games"`
}

// Analyze runs both analyses over games in one pass.
func Analyze(games []Game, rule Rule) (Report, error) {
	report := Report{
		Rule:  rule,
		Games: make([]GameReport, 0, len(games)),
	}

	for _, g := range games {
		power, err := g.Power()
		if err != nil {
			return Report{}, err
		}
		gr := GameReport{
			ID:       g.ID,
			Feasible: g.FeasibleUnder(rule),
			Minimum:  g.MinimumCapacity(),
			Power:    power,
		}
		if gr.Feasible {
			if report.FeasibleSum, err = add(report.FeasibleSum, uint64(g.ID)); err != nil {
				return Report{}, fmt.Errorf("sum of feasible ids: %w", err)
			}
		}
		if report.PowerSum, err = add(report.PowerSum, power); err != nil {
			return Report{}, fmt.Errorf("sum of powers: %w", err)
		}
		report.Games = append(report.Games, gr)
	}

	return report, nil
}

// Solve parses input and analyzes the games in it.
func Solve(input string, rule Rule) (Report, error) {
	games, err := ParseGames([]byte(input), "")
	if err != nil {
		return Report{}, err
	}
	return Analyze(games, rule)
}

func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}
