package eval

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/othello"
)

// RatioScale is the magnitude of a fully one-sided feature.
const RatioScale = 100

// TerminalUnit scales the final disk margin of a finished game. It exceeds
// every heuristic score the default weights can produce.
const TerminalUnit = 100000

// Corner and corner-adjacent cell masks.
const (
	CornerMask         uint64 = 0x8100000000000081
	CornerAdjacentMask uint64 = 0x42C300000000C342
)

// cornerNeighbours maps each corner to the mask of the three cells touching it.
var cornerNeighbours = [4]struct {
	corner     int
	neighbours uint64
}{
	{0, othello.Bit(1) | othello.Bit(8) | othello.Bit(9)},
	{7, othello.Bit(6) | othello.Bit(14) | othello.Bit(15)},
	{56, othello.Bit(57) | othello.Bit(48) | othello.Bit(49)},
	{63, othello.Bit(62) | othello.Bit(55) | othello.Bit(54)},
}

// Normalize maps a pair of feature values onto [-100, 100]:
// 100*(p-o)/(|p|+|o|), or 0 when both are zero. The absolute values keep
// the ratio bounded for signed inputs such as positional weight sums, and
// Normalize(o, p) == -Normalize(p, o) for all inputs.
func Normalize[T constraints.Signed](p, o T) T {
	den := abs(p) + abs(o)
	if den == 0 {
		return 0
	}
	return RatioScale * (p - o) / den
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Features is the per-feature breakdown of a score, each in [-100, 100].
type Features struct {
	Parity          int
	Corners         int
	CornerAdjacency int
	Mobility        int
	Positional      int
	Factors         Factors
}

// Evaluator scores positions with a fixed set of weights.
// It holds no mutable state and is safe for concurrent use.
type Evaluator struct {
	weights Weights
}

// New creates an evaluator using w. Callers should Validate w first.
func New(w Weights) *Evaluator {
	return &Evaluator{weights: w}
}

// Default creates an evaluator with DefaultWeights.
func Default() *Evaluator {
	return New(DefaultWeights())
}

// Weights returns the evaluator's weight set.
func (e *Evaluator) Weights() Weights {
	return e.weights
}

// Weight returns the static table value of a cell.
func (e *Evaluator) Weight(pos int) int {
	return e.weights.Table[pos]
}

// Score returns the value of the position for player. Finished games score
// TerminalUnit per disk of margin; all other positions get the weighted sum
// of the normalized features.
func (e *Evaluator) Score(player, opponent uint64) int {
	score, _ := e.Evaluate(player, opponent)
	return score
}

// Evaluate is Score that also reports whether the position is terminal.
func (e *Evaluator) Evaluate(player, opponent uint64) (score int, terminal bool) {
	pMoves := engine.LegalMoves(player, opponent)
	oMoves := engine.LegalMoves(opponent, player)

	if player|opponent == othello.Full || (pMoves == 0 && oMoves == 0) {
		return TerminalScore(player, opponent), true
	}

	return e.features(player, opponent, pMoves, oMoves).Total(), false
}

// TerminalScore scores a finished game by disk margin.
func TerminalScore(player, opponent uint64) int {
	return TerminalUnit * (othello.Popcount(player) - othello.Popcount(opponent))
}

// IsTerminal reports whether the game is over for the two masks.
func IsTerminal(player, opponent uint64) bool {
	return engine.IsTerminal(player, opponent)
}

// Explain returns the feature breakdown used for a non-terminal position.
func (e *Evaluator) Explain(player, opponent uint64) Features {
	return e.features(player, opponent,
		engine.LegalMoves(player, opponent), engine.LegalMoves(opponent, player))
}

func (e *Evaluator) features(player, opponent, pMoves, oMoves uint64) Features {
	pCount, oCount := othello.Popcount(player), othello.Popcount(opponent)

	return Features{
		Parity:  Normalize(pCount, oCount),
		Corners: Normalize(othello.Popcount(player&CornerMask), othello.Popcount(opponent&CornerMask)),
		CornerAdjacency: -Normalize(
			othello.Popcount(exposedAdjacent(player)),
			othello.Popcount(exposedAdjacent(opponent))),
		Mobility:   Normalize(othello.Popcount(pMoves), othello.Popcount(oMoves)),
		Positional: Normalize(e.positional(player), e.positional(opponent)),
		Factors:    e.weights.FactorsFor(pCount + oCount),
	}
}

// Total returns the weighted sum of the features.
func (f Features) Total() int {
	return f.Factors.Corners*f.Corners +
		f.Factors.CornerAdjacency*f.CornerAdjacency +
		f.Factors.Mobility*f.Mobility +
		f.Factors.Parity*f.Parity +
		f.Factors.Positional*f.Positional
}

// exposedAdjacent returns the corner-adjacent disks of mask whose corner is
// not held by the same side.
func exposedAdjacent(mask uint64) uint64 {
	adj := mask & CornerAdjacentMask
	for _, c := range cornerNeighbours {
		if mask&othello.Bit(c.corner) != 0 {
			adj &^= c.neighbours
		}
	}
	return adj
}

// positional sums the table values of the cells in mask.
func (e *Evaluator) positional(mask uint64) int {
	sum := 0
	for _, pos := range othello.Cells(mask) {
		sum += e.weights.Table[pos]
	}
	return sum
}
