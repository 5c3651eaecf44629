package config

import (
	"io"
	"time"

	"github.com/lgbarn/othello-go/internal/eval"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithInteractive controls whether the opponent's moves are read from input.
func (b *ConfigBuilder) WithInteractive(enabled bool) *ConfigBuilder {
	b.cfg.Interactive = enabled
	return b
}

// WithGameTime sets the total thinking time per game.
func (b *ConfigBuilder) WithGameTime(d time.Duration) *ConfigBuilder {
	b.cfg.GameTime = d
	return b
}

// WithMovesPerGame sets how many moves the game time is divided between.
func (b *ConfigBuilder) WithMovesPerGame(n int) *ConfigBuilder {
	b.cfg.MovesPerGame = n
	return b
}

// WithMaxDepth sets the deepest search iteration.
func (b *ConfigBuilder) WithMaxDepth(depth int) *ConfigBuilder {
	b.cfg.MaxDepth = depth
	return b
}

// WithStartPosition sets the board string to start from.
func (b *ConfigBuilder) WithStartPosition(board string) *ConfigBuilder {
	b.cfg.StartPosition = board
	return b
}

// WithWeights sets the evaluation weights.
func (b *ConfigBuilder) WithWeights(w eval.Weights) *ConfigBuilder {
	b.cfg.Weights = w
	return b
}

// WithMatch enables match mode with the given number of games and workers.
func (b *ConfigBuilder) WithMatch(games, workers int) *ConfigBuilder {
	b.cfg.Match.Games = games
	b.cfg.Match.Workers = workers
	return b
}

// WithRandomOpening sets the number of random plies opening each match game.
func (b *ConfigBuilder) WithRandomOpening(plies int) *ConfigBuilder {
	b.cfg.Match.RandomOpening = plies
	return b
}

// WithRecords sends match game records to w, as JSON when asJSON is set.
func (b *ConfigBuilder) WithRecords(w io.Writer, asJSON bool) *ConfigBuilder {
	b.cfg.Match.RecordFile = w
	b.cfg.Match.JSONRecords = asJSON
	return b
}

// WithInput sets the referee input stream.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.InputFile = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sends log lines to w instead of the output stream.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
