package marble

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent/ring"
)

// Sentinel errors for the marble game.
var (
	// ErrBadInput indicates an unusable game description.
	ErrBadInput = errors.New("marble: bad input")
)

// Rule constants.
const (
	// PlaceOffset is where a normal marble is inserted relative to the current one.
	PlaceOffset = 2
	// TakeOffset is where the scored marble is removed relative to the current one.
	TakeOffset = -7
	// ScoringMultiple marks the marbles that are kept rather than placed.
	ScoringMultiple = 23
)

// Config describes one game.
type Config struct {
	Players    int
	LastMarble int
}

// Validate returns ErrBadInput when the game cannot be played.
func (c Config) Validate() error {
	if c.Players < 1 {
		return fmt.Errorf("%w: need at least one player, got %d", ErrBadInput, c.Players)
	}
	if c.LastMarble < 0 {
		return fmt.Errorf("%w: last marble must be non-negative, got %d", ErrBadInput, c.LastMarble)
	}

	return nil
}

// Scaled returns c with the last marble multiplied by k.
func (c Config) Scaled(k int) Config {
	c.LastMarble *= k
	return c
}

// String renders c in puzzle-input form.
func (c Config) String() string {
	return fmt.Sprintf("%d players; last marble is worth %d points", c.Players, c.LastMarble)
}

// Game is the state of one marble game.
type Game struct {
	cfg    Config
	board  *ring.Ring[int]
	scores []int
	player int // whose turn it is
	next   int // next marble to play

	log           zerolog.Logger
	progressEvery int
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for progress and summary events.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithProgressEvery logs a debug event every n marbles. Zero disables it.
func WithProgressEvery(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.progressEvery = n
		}
	}
}
