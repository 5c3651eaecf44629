package config

import (
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/othello-go/internal/errors"
)

// MaxRandomOpening caps the number of random opening plies in a match game.
const MaxRandomOpening = 20

// MatchConfig holds settings for engine-versus-engine matches.
type MatchConfig struct {
	// Games is the number of games to play; 0 disables match mode.
	Games int

	// Workers is the number of games played concurrently.
	Workers int

	// RandomOpening is the number of plies at the start of each game
	// chosen uniformly at random so games diverge.
	RandomOpening int

	// JSONRecords writes game records as JSON instead of text.
	JSONRecords bool

	// RecordFile receives a record of every finished game; nil discards them.
	RecordFile io.Writer
}

// NewMatchConfig creates a MatchConfig with default values.
func NewMatchConfig() *MatchConfig {
	return &MatchConfig{
		Workers:       runtime.NumCPU(),
		RandomOpening: 4,
	}
}

// Enabled reports whether a match was requested.
func (m *MatchConfig) Enabled() bool {
	return m != nil && m.Games > 0
}

// Validate checks the match settings.
func (m *MatchConfig) Validate() error {
	if m.Games < 0 {
		return fmt.Errorf("games %d must not be negative: %w", m.Games, errors.ErrInvalidConfig)
	}
	if m.Games > 0 && m.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", m.Workers, errors.ErrInvalidConfig)
	}
	if m.RandomOpening < 0 || m.RandomOpening > MaxRandomOpening {
		return fmt.Errorf("random opening %d outside 0-%d: %w", m.RandomOpening, MaxRandomOpening, errors.ErrInvalidConfig)
	}
	return nil
}
