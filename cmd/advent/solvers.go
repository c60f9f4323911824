package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/marble"
)

func marbleCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "marble",
		Usage: "2018 day 9: highest score of the marble game",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "file holding the game description"},
			&cli.IntFlag{Name: "players", Usage: "number of players (instead of --input)"},
			&cli.IntFlag{Name: "last", Usage: "value of the last marble (instead of --input)"},
			&cli.IntFlag{Name: "scale", Usage: "multiply the last marble (default: 1 for part 1, 100 for part 2)"},
			&cli.IntFlag{Name: "progress", Usage: "log progress every N marbles"},
			partFlag(),
			expectFlag(),
		},
		Action: func(c *cli.Context) error {
			p, err := part(c)
			if err != nil {
				return err
			}
			cfg, err := e.marbleConfig(c)
			if err != nil {
				return err
			}
			scale := 1
			if p == 2 {
				scale = 100
			}
			if c.IsSet("scale") {
				scale = c.Int("scale")
			}
			if scale < 1 {
				return fmt.Errorf("%w: scale must be positive, got %d", marble.ErrBadInput, scale)
			}

			game, err := marble.NewGame(cfg.Scaled(scale),
				marble.WithLogger(e.log),
				marble.WithProgressEvery(c.Int("progress")),
			)
			if err != nil {
				return err
			}
			high, err := game.Play()
			if err != nil {
				return err
			}

			return e.report(c, fmt.Sprintf("2018/09/%d", p), int64(high))
		},
	}
}

func (e *env) marbleConfig(c *cli.Context) (marble.Config, error) {
	if c.IsSet("input") {
		text, err := e.readInput(c.String("input"))
		if err != nil {
			return marble.Config{}, err
		}
		return marble.Parse(firstLine(text))
	}
	if c.IsSet("players") && c.IsSet("last") {
		cfg := marble.Config{Players: c.Int("players"), LastMarble: c.Int("last")}
		return cfg, cfg.Validate()
	}

	return marble.Config{}, errors.New("either --input or both --players and --last are required")
}

func gardenCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "garden",
		Usage: "2024 day 12: total fence price of the garden regions",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "file holding the garden map", Required: true},
			partFlag(),
			expectFlag(),
		},
		Action: func(c *cli.Context) error {
			p, err := part(c)
			if err != nil {
				return err
			}
			text, err := e.readInput(c.String("input"))
			if err != nil {
				return err
			}
			g, err := grid.Parse(text)
			if err != nil {
				return err
			}
			e.log.Debug().Int("width", g.Width).Int("height", g.Height).Msg("Garden parsed")

			return e.report(c, fmt.Sprintf("2024/12/%d", p), int64(g.FencePrice(p == 2)))
		},
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimLeft(s, "\r\n"), "\n")
	return line
}
