package marble

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/advent/ring"
)

var inputRegex = regexp.MustCompile(`^\s*(\d+) players; last marble is worth (\d+) points\s*$`)

// Parse reads a game description line.
func Parse(line string) (Config, error) {
	m := inputRegex.FindStringSubmatch(line)
	if m == nil {
		return Config{}, fmt.Errorf("%w: %q does not match %q", ErrBadInput, line, "<n> players; last marble is worth <m> points")
	}
	players, err := strconv.Atoi(m[1])
	if err != nil {
		return Config{}, fmt.Errorf("%w: players: %v", ErrBadInput, err)
	}
	last, err := strconv.Atoi(m[2])
	if err != nil {
		return Config{}, fmt.Errorf("%w: last marble: %v", ErrBadInput, err)
	}
	cfg := Config{Players: players, LastMarble: last}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// NewGame sets up a game with marble 0 on the board.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &Game{
		cfg:    cfg,
		board:  ring.New(0, ring.WithCapacity(cfg.LastMarble+1)),
		scores: make([]int, cfg.Players),
		next:   1,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Place puts marble on the board offset positions from the current marble.
func (g *Game) Place(marble, offset int) {
	g.board.InsertRelative(marble, offset)
}

// Take removes the marble offset positions from the current marble.
func (g *Game) Take(offset int) (int, error) {
	return g.board.RemoveRelative(offset)
}

// Play runs the game to the last marble and returns the high score.
// Calling Play again on a finished game just returns the high score.
func (g *Game) Play() (int, error) {
	start := time.Now()
	for ; g.next <= g.cfg.LastMarble; g.next++ {
		n := g.next
		if n%ScoringMultiple == 0 {
			taken, err := g.Take(TakeOffset)
			if err != nil {
				return 0, fmt.Errorf("marble %d: %w", n, err)
			}
			g.scores[g.player] += n + taken
		} else {
			g.Place(n, PlaceOffset)
		}
		g.player = (g.player + 1) % g.cfg.Players

		if g.progressEvery > 0 && n%g.progressEvery == 0 {
			g.log.Debug().
				Int("marble", n).
				Int("board_size", g.board.Len()).
				Msg("Marble game progress")
		}
	}

	high := g.HighScore()
	g.log.Info().
		Int("players", g.cfg.Players).
		Int("last_marble", g.cfg.LastMarble).
		Int("high_score", high).
		Uint64("steps", g.board.Steps()).
		Dur("elapsed", time.Since(start)).
		Msg("Marble game finished")

	return high, nil
}

// HighScore returns the best score so far.
func (g *Game) HighScore() int {
	return slices.Max(g.scores)
}

// Scores returns a copy of every player's score, indexed by player.
func (g *Game) Scores() []int {
	return slices.Clone(g.scores)
}

// Marbles returns the board clockwise starting from marble 0 (or from its
// successor if 0 has been taken).
func (g *Game) Marbles() []int {
	return g.board.Snapshot()
}

// HighScore parses line, multiplies the last marble by scale and plays.
func HighScore(line string, scale int, opts ...Option) (int, error) {
	if scale < 1 {
		return 0, fmt.Errorf("%w: scale must be positive, got %d", ErrBadInput, scale)
	}
	cfg, err := Parse(line)
	if err != nil {
		return 0, err
	}
	g, err := NewGame(cfg.Scaled(scale), opts...)
	if err != nil {
		return 0, err
	}

	return g.Play()
}
