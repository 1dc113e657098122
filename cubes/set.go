package cubes

import (
	"fmt"
	"math/bits"
	"strings"
)

// Cube is a single observation: Amount cubes of one color.
type Cube struct {
	Color  Color
	Amount uint32
}

func (c Cube) String() string {
	return fmt.Sprintf("%d %s", c.Amount, c.Color)
}

// Set holds the cubes revealed at once, one amount per color. Colors that
// were not mentioned are zero.
type Set struct {
	Red   uint32 `json:"red"`
	Green uint32 `json:"green"`
	Blue  uint32 `json:"blue"`
}

// NewSet normalizes observations into a Set.
func NewSet(cubes ...Cube) (Set, error) {
	var s Set
	var seen [len(allColors)]bool
	for _, cube := range cubes {
		i := cube.Color.index()
		if seen[i] {
			return Set{}, fmt.Errorf("%w: %s", ErrDuplicateColor, cube.Color)
		}
		seen[i] = true
		s = s.With(cube.Color, cube.Amount)
	}
	return s, nil
}

// Amount returns the number of cubes of color c.
func (s Set) Amount(c Color) uint32 {
	switch c {
	case Red:
		return s.Red
	case Green:
		return s.Green
	case Blue:
		return s.Blue
	}
	panic(fmt.Sprintf("cubes: invalid color %d", int(c)))
}

// With returns a copy of s with the amount of color c replaced.
func (s Set) With(c Color, amount uint32) Set {
	switch c {
	case Red:
		s.Red = amount
	case Green:
		s.Green = amount
	case Blue:
		s.Blue = amount
	default:
		panic(fmt.Sprintf("cubes: invalid color %d", int(c)))
	}
	return s
}

// Max returns the elementwise maximum of s and other.
func (s Set) Max(other Set) Set {
	return Set{
		Red:   max(s.Red, other.Red),
		Green: max(s.Green, other.Green),
		Blue:  max(s.Blue, other.Blue),
	}
}

// Power is the product of the three amounts.
func (s Set) Power() (uint64, error) {
	power := uint64(1)
	for _, c := range allColors {
		hi, lo := bits.Mul64(power, uint64(s.Amount(c)))
		if hi != 0 {
			return 0, fmt.Errorf("power of %s: %w", s, ErrOverflow)
		}
		power = lo
	}
	return power, nil
}

// Cubes lists the non-zero amounts in canonical color order.
func (s Set) Cubes() []Cube {
	var cubes []Cube
	for _, c := range allColors {
		if n := s.Amount(c); n > 0 {
			cubes = append(cubes, Cube{Color: c, Amount: n})
		}
	}
	return cubes
}

// String renders s in input syntax. An empty set renders as "0 red" so that
// the result still parses.
func (s Set) String() string {
	cubes := s.Cubes()
	if len(cubes) == 0 {
		return Cube{Color: Red}.String()
	}
	parts := make([]string, len(cubes))
	for i, cube := range cubes {
		parts[i] = cube.String()
	}
	return strings.Join(parts, ", ")
}
