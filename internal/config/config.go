// Package config holds the settings of an agent run.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/eval"
)

// Defaults for a single refereed game.
const (
	DefaultGameTime     = 600 * time.Second
	DefaultMovesPerGame = 30
	DefaultMaxDepth     = 10
)

// Config holds all program configuration.
type Config struct {
	// Interactive makes the agent read the opponent's moves from input.
	// Otherwise the agent plays both sides.
	Interactive bool

	// GameTime is the agent's total thinking time for one game.
	GameTime time.Duration

	// MovesPerGame is the number of moves GameTime is shared between.
	MovesPerGame int

	// MaxDepth is the deepest search iteration per candidate move.
	MaxDepth int

	// StartPosition is a board string to start from instead of the
	// standard opening.
	StartPosition string

	Verbosity int // 0=warnings, 1=moves and scores, 2=search detail

	// Weights parameterise the evaluator.
	Weights eval.Weights

	// Match settings for engine-versus-engine runs.
	Match *MatchConfig

	// Streams
	InputFile  io.Reader
	OutputFile io.Writer
	LogFile    io.Writer // nil sends log lines to OutputFile as comments
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		GameTime:     DefaultGameTime,
		MovesPerGame: DefaultMovesPerGame,
		MaxDepth:     DefaultMaxDepth,
		Verbosity:    1,
		Weights:      eval.DefaultWeights(),
		Match:        NewMatchConfig(),
		InputFile:    os.Stdin,
		OutputFile:   os.Stdout,
	}
}

// MoveBudget returns the thinking time for a single move.
func (c *Config) MoveBudget() time.Duration {
	if c.MovesPerGame <= 0 {
		return c.GameTime
	}
	return c.GameTime / time.Duration(c.MovesPerGame)
}

// Validate checks the configuration for values the agent cannot run with.
func (c *Config) Validate() error {
	if c.GameTime <= 0 {
		return fmt.Errorf("game time %v must be positive: %w", c.GameTime, errors.ErrInvalidConfig)
	}
	if c.MovesPerGame <= 0 {
		return fmt.Errorf("moves per game %d must be positive: %w", c.MovesPerGame, errors.ErrInvalidConfig)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth %d must be at least 1: %w", c.MaxDepth, errors.ErrInvalidConfig)
	}
	if err := c.Weights.Validate(); err != nil {
		return errors.Wrap(err, "weights")
	}
	if c.Match != nil {
		if err := c.Match.Validate(); err != nil {
			return errors.Wrap(err, "match")
		}
	}
	return nil
}
