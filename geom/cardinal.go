package geom

import (
	"fmt"

	"github.com/katalvlaran/advent/modular"
)

// Cardinal is one of the four compass directions, ordered clockwise.
type Cardinal int

const (
	North Cardinal = iota
	East
	South
	West
)

var cardinals = [4]Cardinal{North, East, South, West}

// Cardinals returns all directions in clockwise order starting at North.
func Cardinals() [4]Cardinal { return cardinals }

// Turn is a quarter rotation.
type Turn int

const (
	Left Turn = iota
	Right
)

// Turn rotates c a quarter turn in direction t.
func (c Cardinal) Turn(t Turn) Cardinal {
	if t == Right {
		return Cardinal(modular.Mod(int(c)+1, 4))
	}

	return Cardinal(modular.Mod(int(c)-1, 4))
}

// Opposite returns the direction facing away from c.
func (c Cardinal) Opposite() Cardinal { return Cardinal(modular.Mod(int(c)+2, 4)) }

// Delta is the unit step for c with Y growing downward.
func (c Cardinal) Delta() Point2 {
	switch c {
	case North:
		return Point2{0, -1}
	case East:
		return Point2{1, 0}
	case South:
		return Point2{0, 1}
	default:
		return Point2{-1, 0}
	}
}

// Arrow returns the arrow glyph for c: ^ > v <.
func (c Cardinal) Arrow() rune { return [4]rune{'^', '>', 'v', '<'}[c] }

// Char returns the compass letter for c: N E S W.
func (c Cardinal) Char() rune { return [4]rune{'N', 'E', 'S', 'W'}[c] }

func (c Cardinal) String() string {
	return [4]string{"North", "East", "South", "West"}[c]
}

// ParseArrow maps ^ > v < to a direction.
func ParseArrow(r rune) (Cardinal, error) {
	switch r {
	case '^':
		return North, nil
	case '>':
		return East, nil
	case 'v':
		return South, nil
	case '<':
		return West, nil
	}

	return 0, fmt.Errorf("%w: arrow %q", ErrBadDirection, r)
}

// ParseCardinal maps N E S W (either case) to a direction.
func ParseCardinal(r rune) (Cardinal, error) {
	switch r {
	case 'N', 'n':
		return North, nil
	case 'E', 'e':
		return East, nil
	case 'S', 's':
		return South, nil
	case 'W', 'w':
		return West, nil
	}

	return 0, fmt.Errorf("%w: compass letter %q", ErrBadDirection, r)
}

// ParseTurn maps L and R to a turn.
func ParseTurn(r rune) (Turn, error) {
	switch r {
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}

	return 0, fmt.Errorf("%w: turn %q", ErrBadDirection, r)
}

func (t Turn) String() string {
	if t == Right {
		return "R"
	}

	return "L"
}
