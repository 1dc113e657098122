package cubes

import "fmt"

// Color is one of the three cube colors in the bag.
type Color int

const (
	Red Color = iota
	Green
	Blue
)

var allColors = [...]Color{Red, Green, Blue}

// Colors returns every color in canonical order: red, green, blue.
func Colors() []Color {
	colors := allColors
	return colors[:]
}

// ParseColor maps a color keyword to its Color. Keywords are case-sensitive.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownColor, s)
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// index returns the position of c in canonical order. Colors outside the
// enumeration cannot come out of the grammar, so they are a programming error.
func (c Color) index() int {
	switch c {
	case Red:
		return 0
	case Green:
		return 1
	case Blue:
		return 2
	}
	panic(fmt.Sprintf("cubes: invalid color %d", int(c)))
}
