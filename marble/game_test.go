package marble_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/marble"
)

const sampleInput = "9 players; last marble is worth 25 points"

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse(t *testing.T) {
	cfg, err := marble.Parse("  " + sampleInput + "\n")
	require.NoError(t, err)
	assert.Equal(t, marble.Config{Players: 9, LastMarble: 25}, cfg)
	assert.Equal(t, sampleInput, cfg.String())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"Empty", ""},
		{"Garbage", "hello"},
		{"MissingPoints", "9 players; last marble is worth 25"},
		{"NegativePlayers", "-9 players; last marble is worth 25 points"},
		{"ZeroPlayers", "0 players; last marble is worth 25 points"},
		{"Overflow", "99999999999999999999999 players; last marble is worth 25 points"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := marble.Parse(tc.in)
			assert.ErrorIs(t, err, marble.ErrBadInput)
		})
	}
}

func TestConfig_ValidateAndScale(t *testing.T) {
	assert.ErrorIs(t, marble.Config{Players: 1, LastMarble: -1}.Validate(), marble.ErrBadInput)
	assert.NoError(t, marble.Config{Players: 1, LastMarble: 0}.Validate())
	assert.Equal(t, marble.Config{Players: 9, LastMarble: 2500}, marble.Config{Players: 9, LastMarble: 25}.Scaled(100))

	_, err := marble.NewGame(marble.Config{})
	assert.ErrorIs(t, err, marble.ErrBadInput)
}

//----------------------------------------------------------------------------//
// Placing by hand
//----------------------------------------------------------------------------//

// TestPlace follows the board for the first nine marbles.
func TestPlace(t *testing.T) {
	cfg, err := marble.Parse(sampleInput)
	require.NoError(t, err)
	g, err := marble.NewGame(cfg)
	require.NoError(t, err)

	want := [][]int{
		{0, 1},
		{0, 2, 1},
		{0, 2, 1, 3},
		{0, 4, 2, 1, 3},
		{0, 4, 2, 5, 1, 3},
		{0, 4, 2, 5, 1, 6, 3},
		{0, 4, 2, 5, 1, 6, 3, 7},
		{0, 8, 4, 2, 5, 1, 6, 3, 7},
		{0, 8, 4, 9, 2, 5, 1, 6, 3, 7},
	}
	for i, w := range want {
		g.Place(i+1, marble.PlaceOffset)
		assert.Equal(t, w, g.Marbles(), "after marble %d", i+1)
	}

	taken, err := g.Take(marble.TakeOffset)
	require.NoError(t, err)
	assert.Equal(t, 1, taken, "seven counter-clockwise of 9 is 1")
	assert.Equal(t, []int{0, 8, 4, 9, 2, 5, 6, 3, 7}, g.Marbles())
}

//----------------------------------------------------------------------------//
// Play
//----------------------------------------------------------------------------//

// TestPlay_Sample checks the worked example, including the final board.
func TestPlay_Sample(t *testing.T) {
	cfg, err := marble.Parse(sampleInput)
	require.NoError(t, err)
	g, err := marble.NewGame(cfg)
	require.NoError(t, err)

	high, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, 32, high)
	assert.Equal(t, []int{
		0, 16, 8, 17, 4, 18, 19, 2, 24, 20, 25, 10, 21, 5, 22, 11, 1, 12, 6, 13, 3, 14, 7, 15,
	}, g.Marbles())

	scores := g.Scores()
	assert.Len(t, scores, 9)
	assert.Equal(t, 32, scores[4], "player 5 (index 4) plays marble 23")

	again, err := g.Play()
	require.NoError(t, err)
	assert.Equal(t, high, again, "replaying a finished game must not change it")
}

func TestHighScore_KnownGames(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"10 players; last marble is worth 1618 points", 8317},
		{"13 players; last marble is worth 7999 points", 146373},
		{"17 players; last marble is worth 1104 points", 2764},
		{"21 players; last marble is worth 6111 points", 54718},
		{"30 players; last marble is worth 5807 points", 37305},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := marble.HighScore(tc.in, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHighScore_BadScale(t *testing.T) {
	_, err := marble.HighScore(sampleInput, 0)
	assert.ErrorIs(t, err, marble.ErrBadInput)
}

func TestHighScore_NoMarbles(t *testing.T) {
	got, err := marble.HighScore("3 players; last marble is worth 0 points", 1)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

// TestPlay_Logging verifies progress and summary events reach the logger.
func TestPlay_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	cfg, err := marble.Parse(sampleInput)
	require.NoError(t, err)
	g, err := marble.NewGame(cfg, marble.WithLogger(logger), marble.WithProgressEvery(10))
	require.NoError(t, err)
	_, err = g.Play()
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"marble":10`)
	assert.Contains(t, out, `"marble":20`)
	assert.Contains(t, out, `"high_score":32`)
	assert.Contains(t, out, `"message":"Marble game finished"`)
}
