package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/internal/logging"
)

// ErrAnswerMismatch is returned when a solver disagrees with a known answer.
var ErrAnswerMismatch = errors.New("answer does not match expected value")

// env carries the process dependencies so tests can swap them out.
type env struct {
	fs     afero.Fs
	stdout io.Writer
	logOut io.Writer // nil means colour-capable stdout

	cfg *config.Config
	log zerolog.Logger
}

func main() {
	e := &env{fs: afero.NewOsFs(), stdout: os.Stdout, log: log.Logger}
	if err := newApp(e).Run(os.Args); err != nil {
		e.log.Fatal().Err(err).Msg("Command failed")
	}
}

func newApp(e *env) *cli.App {
	return &cli.App{
		Name:   "advent",
		Usage:  "run puzzle solvers against their inputs",
		Writer: e.stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path of the TOML config file (default: " + config.DefaultPath + " if present)",
				EnvVars: []string{config.EnvPrefix + "_CONFIG_FILE"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "trace, debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable coloured log output",
			},
		},
		Before: e.setup,
		Commands: []*cli.Command{
			marbleCommand(e),
			gardenCommand(e),
			{
				Name:   "answers",
				Usage:  "list the known answers from the config file",
				Action: e.listAnswers,
			},
		},
	}
}

// setup loads configuration and initialises logging. Flags win over the
// environment, which wins over the config file.
func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load(e.fs, c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("no-color") {
		cfg.NoColor = c.Bool("no-color")
	}
	e.cfg = cfg

	logger, err := logging.Initialize(logging.Options{
		Level:   cfg.LogLevel,
		NoColor: cfg.NoColor,
		Out:     e.logOut,
	})
	if err != nil {
		return err
	}
	e.log = logger
	e.log.Debug().Str("input_dir", cfg.InputDir).Int("answers", len(cfg.Answers)).Msg("Config loaded")

	return nil
}

// readInput loads name relative to the configured input directory.
func (e *env) readInput(name string) (string, error) {
	if !filepath.IsAbs(name) {
		name = filepath.Join(e.cfg.InputDir, name)
	}
	data, err := afero.ReadFile(e.fs, name)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}

	return string(data), nil
}

// report prints answer and checks it against --expect or the config file.
func (e *env) report(c *cli.Context, puzzle string, answer int64) error {
	fmt.Fprintln(c.App.Writer, answer)

	want, ok := e.cfg.Expected(puzzle)
	if c.IsSet("expect") {
		want, ok = c.Int64("expect"), true
	}
	if !ok {
		e.log.Info().Str("puzzle", puzzle).Int64("answer", answer).Msg("Solved")
		return nil
	}
	if want != answer {
		return fmt.Errorf("%w: puzzle %s: got %d, want %d", ErrAnswerMismatch, puzzle, answer, want)
	}
	e.log.Info().Str("puzzle", puzzle).Int64("answer", answer).Msg("Solved, answer verified")

	return nil
}

func (e *env) listAnswers(c *cli.Context) error {
	answers := append([]config.Answer(nil), e.cfg.Answers...)
	sort.Slice(answers, func(i, j int) bool { return answers[i].Puzzle < answers[j].Puzzle })
	for _, a := range answers {
		fmt.Fprintf(c.App.Writer, "%s\t%d\n", a.Puzzle, a.Value)
	}

	return nil
}

func partFlag() cli.Flag {
	return &cli.IntFlag{Name: "part", Aliases: []string{"p"}, Value: 1, Usage: "puzzle part (1 or 2)"}
}

func expectFlag() cli.Flag {
	return &cli.Int64Flag{Name: "expect", Usage: "fail unless the answer equals this value"}
}

func part(c *cli.Context) (int, error) {
	p := c.Int("part")
	if p != 1 && p != 2 {
		return 0, fmt.Errorf("part must be 1 or 2, got %d", p)
	}

	return p, nil
}
