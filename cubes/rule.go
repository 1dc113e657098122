package cubes

import "fmt"

// Rule is the content of the bag games are checked against.
type Rule struct {
	MaxRed   uint32 `json:"max_red" env:"MAX_RED" envDefault:"12"`
	MaxGreen uint32 `json:"max_green" env:"MAX_GREEN" envDefault:"13"`
	MaxBlue  uint32 `json:"max_blue" env:"MAX_BLUE" envDefault:"14"`
}

// DefaultRule is the bag of the puzzle: 12 red, 13 green and 14 blue cubes.
var DefaultRule = Rule{MaxRed: 12, MaxGreen: 13, MaxBlue: 14}

// Capacity returns the rule as a set.
func (r Rule) Capacity() Set {
	return Set{Red: r.MaxRed, Green: r.MaxGreen, Blue: r.MaxBlue}
}

// Allows reports whether s could be drawn from the bag.
func (r Rule) Allows(s Set) bool {
	capacity := r.Capacity()
	for _, c := range allColors {
		if s.Amount(c) > capacity.Amount(c) {
			return false
		}
	}
	return true
}

func (r Rule) String() string {
	return fmt.Sprintf("%d red, %d green, %d blue", r.MaxRed, r.MaxGreen, r.MaxBlue)
}
