// Package eval scores Othello positions from one side's point of view.
package eval

import (
	"fmt"

	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/othello"
)

// Factors are the integer multipliers applied to each normalized feature.
type Factors struct {
	Corners         int `json:"corners"`
	CornerAdjacency int `json:"corner_adjacency"`
	Mobility        int `json:"mobility"`
	Parity          int `json:"parity"`
	Positional      int `json:"positional"`
}

// sum returns the total of all factors.
func (f Factors) sum() int {
	return f.Corners + f.CornerAdjacency + f.Mobility + f.Parity + f.Positional
}

// Phase selects a factor set once the board holds at least MinDisks disks.
type Phase struct {
	MinDisks int     `json:"min_disks"`
	Factors  Factors `json:"factors"`
}

// Weights is the complete, immutable parameter set of an Evaluator.
type Weights struct {
	// Table holds the positional value of every cell, indexed like the disk masks.
	Table [othello.NumCells]int `json:"table"`

	// Phases in ascending MinDisks order; the first must start at 0.
	Phases []Phase `json:"phases"`
}

// weightTable is the hand-tuned positional table: corners high, the cells
// next to corners strongly negative, edges mildly positive.
var weightTable = [othello.NumCells]int{
	50, -20, 11, 8, 8, 11, -20, 50,
	-20, -35, -4, 1, 1, -4, -35, -20,
	11, -4, 2, 2, 2, 2, -4, 11,
	8, 1, 2, 0, 0, 2, 1, 8,
	8, 1, 2, 0, 0, 2, 1, 8,
	11, -4, 2, 2, 2, 2, -4, 11,
	-20, -35, -4, 1, 1, -4, -35, -20,
	50, -20, 11, 8, 8, 11, -20, 50,
}

// Disk counts at which the late and final phases begin.
const (
	LatePhaseDisks  = 50
	FinalPhaseDisks = othello.NumCells - 6
)

// DefaultWeights returns the standard weight table and phase factors.
// Parity gains weight and mobility loses it as the board fills.
func DefaultWeights() Weights {
	return Weights{
		Table: weightTable,
		Phases: []Phase{
			{MinDisks: 0, Factors: Factors{Corners: 200, CornerAdjacency: 20, Mobility: 28, Parity: 8, Positional: 45}},
			{MinDisks: LatePhaseDisks, Factors: Factors{Corners: 200, CornerAdjacency: 20, Mobility: 30, Parity: 35, Positional: 45}},
			{MinDisks: FinalPhaseDisks, Factors: Factors{Corners: 200, CornerAdjacency: 20, Mobility: 10, Parity: 200, Positional: 5}},
		},
	}
}

// FactorsFor returns the factors of the last phase that applies at disks.
func (w Weights) FactorsFor(disks int) Factors {
	var f Factors
	for _, p := range w.Phases {
		if disks < p.MinDisks {
			break
		}
		f = p.Factors
	}
	return f
}

// Validate checks that the weights are usable. Every heuristic score must
// stay strictly below TerminalUnit so a won or lost ending always outranks it.
func (w Weights) Validate() error {
	if len(w.Phases) == 0 {
		return fmt.Errorf("no phases: %w", errors.ErrInvalidWeights)
	}
	if w.Phases[0].MinDisks != 0 {
		return fmt.Errorf("first phase starts at %d disks, want 0: %w", w.Phases[0].MinDisks, errors.ErrInvalidWeights)
	}
	for i, p := range w.Phases {
		if i > 0 && p.MinDisks <= w.Phases[i-1].MinDisks {
			return fmt.Errorf("phase %d: min_disks %d not ascending: %w", i, p.MinDisks, errors.ErrInvalidWeights)
		}
		f := p.Factors
		if f.Corners < 0 || f.CornerAdjacency < 0 || f.Mobility < 0 || f.Parity < 0 || f.Positional < 0 {
			return fmt.Errorf("phase %d: negative factor: %w", i, errors.ErrInvalidWeights)
		}
		if ceiling := RatioScale * f.sum(); ceiling >= TerminalUnit {
			return fmt.Errorf("phase %d: heuristic ceiling %d reaches terminal unit %d: %w",
				i, ceiling, TerminalUnit, errors.ErrInvalidWeights)
		}
	}
	return nil
}
