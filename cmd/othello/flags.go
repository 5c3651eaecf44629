// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"
	"strconv"
	"time"

	"github.com/lgbarn/othello-go/internal/config"
	"github.com/lgbarn/othello-go/internal/errors"
)

var (
	// Game options
	interactive  = flag.Bool("interactive", false, "Read the opponent's moves from input instead of playing both sides")
	mInteractive = flag.Bool("m_interactive", false, "Same as -interactive")
	gameTime     = flag.Int("time", int(config.DefaultGameTime/time.Second), "Total thinking time per game in seconds")
	movesPerGame = flag.Int("moves", config.DefaultMovesPerGame, "Number of moves the game time is shared between")
	maxDepth     = flag.Int("depth", config.DefaultMaxDepth, "Deepest search iteration per candidate move")
	startPos     = flag.String("position", "", "Start from this board (8 rows of B, W, - separated by /, optional side to move)")
	weightsFile  = flag.String("weights", "", "Load evaluation weights from this JSON file")

	// Match options
	matchGames    = flag.Int("match", 0, "Play N engine-versus-engine games instead of a refereed game")
	workers       = flag.Int("workers", 0, "Number of match games played in parallel (0 = number of CPUs)")
	randomOpening = flag.Int("random-opening", 4, "Random plies opening each match game")
	recordsFile   = flag.String("records", "", "Write match game records to this file")
	jsonRecords   = flag.Bool("json", false, "Write match game records as JSON")

	// Logging options
	verbosity = flag.Int("v", 1, "Verbosity: -1 silent, 0 warnings, 1 moves and scores, 2 search detail")
	logFile   = flag.String("log", "", "Write log lines to this file instead of output comments")

	// Info
	version = flag.Bool("version", false, "Show version")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed flag values into cfg. args are the
// positional arguments left after flag parsing; the first, if present, is
// the game time in seconds.
func applyFlags(cfg *config.Config, args []string) error {
	applyGameFlags(cfg)
	applyMatchFlags(cfg)
	cfg.Verbosity = *verbosity

	if err := applyPositional(cfg, args); err != nil {
		return err
	}

	if *weightsFile != "" {
		w, err := config.LoadWeights(*weightsFile)
		if err != nil {
			return err
		}
		cfg.Weights = w
	}
	return nil
}

func applyGameFlags(cfg *config.Config) {
	cfg.Interactive = *interactive || *mInteractive
	cfg.GameTime = time.Duration(*gameTime) * time.Second
	cfg.MovesPerGame = *movesPerGame
	cfg.MaxDepth = *maxDepth
	cfg.StartPosition = *startPos
}

func applyMatchFlags(cfg *config.Config) {
	cfg.Match.Games = *matchGames
	if *workers > 0 {
		cfg.Match.Workers = *workers
	}
	cfg.Match.RandomOpening = *randomOpening
	cfg.Match.JSONRecords = *jsonRecords
}

// applyPositional handles the referee's "[-m_interactive] [seconds]"
// command line. Flag parsing stops at the time argument, so the mode word
// may also appear after it.
func applyPositional(cfg *config.Config, args []string) error {
	var rest []string
	for _, arg := range args {
		if arg == "-m_interactive" || arg == "--m_interactive" {
			cfg.Interactive = true
			continue
		}
		rest = append(rest, arg)
	}
	args = rest

	switch len(args) {
	case 0:
		return nil
	case 1:
		secs, err := strconv.Atoi(args[0])
		if err != nil || secs <= 0 {
			return fmt.Errorf("game time %q must be a positive number of seconds: %w", args[0], errors.ErrInvalidConfig)
		}
		cfg.GameTime = time.Duration(secs) * time.Second
		return nil
	}
	return fmt.Errorf("unexpected arguments %q: %w", args[1:], errors.ErrInvalidConfig)
}
