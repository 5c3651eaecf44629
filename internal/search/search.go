// Package search selects moves with a time-bounded alpha-beta search.
//
// Values are always reported from the point of view of the side the search
// was started for (the root side). Maximizing nodes are the root side to
// move, minimizing nodes the opponent. A side without a legal move passes
// without consuming depth; a position where neither side can move is a leaf.
package search

import (
	"context"
	"math"
	"math/bits"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/eval"
	"github.com/lgbarn/othello-go/internal/othello"
)

// DefaultMaxDepth is the deepest iteration tried for a candidate move,
// counting the candidate itself as the first ply.
const DefaultMaxDepth = 10

// Window bounds for a full-width search.
const (
	MinValue = math.MinInt
	MaxValue = math.MaxInt
)

// CandidateStats records how one root candidate was searched.
type CandidateStats struct {
	Move     othello.Move
	Depth    int           // deepest completed iteration
	Resolved bool          // every line reached the end of the game
	Elapsed  time.Duration // wall time spent on the candidate
}

// Stats describes the most recent SelectMove call.
type Stats struct {
	Nodes      uint64
	Cutoffs    uint64
	Candidates []CandidateStats
}

// Searcher runs the move search. A Searcher is not safe for concurrent use;
// give each goroutine its own.
type Searcher struct {
	eval     *eval.Evaluator
	maxDepth int
	now      func() time.Time
	log      zerolog.Logger

	stats   Stats
	horizon bool // set when a leaf was cut off by depth rather than by game end
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMaxDepth sets the deepest iteration per candidate.
func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		if depth >= 1 {
			s.maxDepth = depth
		}
	}
}

// WithClock replaces the wall clock used for time budgets.
func WithClock(now func() time.Time) Option {
	return func(s *Searcher) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger for search progress.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Searcher) {
		s.log = log
	}
}

// New creates a searcher scoring leaves with ev.
func New(ev *eval.Evaluator, opts ...Option) *Searcher {
	s := &Searcher{
		eval:     ev,
		maxDepth: DefaultMaxDepth,
		now:      time.Now,
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MaxDepth returns the configured iteration limit.
func (s *Searcher) MaxDepth() int {
	return s.maxDepth
}

// Stats returns statistics for the most recent SelectMove call.
func (s *Searcher) Stats() Stats {
	return s.stats
}

// AlphaBeta returns the minimax value of the position for the root side,
// searching depth plies. root and other are the root side's and the
// opponent's disks; maximizing is true when the root side is to move.
// Branches are pruned once beta <= alpha.
func (s *Searcher) AlphaBeta(root, other uint64, depth, alpha, beta int, maximizing bool) int {
	s.stats.Nodes++

	if depth <= 0 {
		score, terminal := s.eval.Evaluate(root, other)
		if !terminal {
			s.horizon = true
		}
		return score
	}

	player, opponent := root, other
	if !maximizing {
		player, opponent = other, root
	}

	moves := engine.LegalMoves(player, opponent)
	if moves == 0 {
		if engine.LegalMoves(opponent, player) == 0 {
			return eval.TerminalScore(root, other)
		}
		return s.AlphaBeta(root, other, depth, alpha, beta, !maximizing)
	}

	var buf [othello.NumCells]int
	ordered := orderMoves(buf[:0], moves, s.eval, maximizing)

	if maximizing {
		best := MinValue
		for _, pos := range ordered {
			p, o := engine.Play(player, opponent, pos)
			v := s.AlphaBeta(p, o, depth-1, alpha, beta, false)
			best = max(best, v)
			alpha = max(alpha, v)
			if beta <= alpha {
				s.stats.Cutoffs++
				break
			}
		}
		return best
	}

	best := MaxValue
	for _, pos := range ordered {
		p, o := engine.Play(player, opponent, pos)
		v := s.AlphaBeta(o, p, depth-1, alpha, beta, true)
		best = min(best, v)
		beta = min(beta, v)
		if beta <= alpha {
			s.stats.Cutoffs++
			break
		}
	}
	return best
}

// orderMoves appends the cells of moves to dst by static table weight:
// descending for the maximizer, ascending for the minimizer. Cells of equal
// weight keep ascending index order.
func orderMoves(dst []int, moves uint64, ev *eval.Evaluator, descending bool) []int {
	for moves != 0 {
		pos := bits.TrailingZeros64(moves)
		moves &= moves - 1

		w := ev.Weight(pos)
		i := len(dst)
		dst = append(dst, pos)
		for i > 0 && before(w, ev.Weight(dst[i-1]), descending) {
			dst[i] = dst[i-1]
			i--
		}
		dst[i] = pos
	}
	return dst
}

// before reports whether weight a sorts strictly ahead of weight b.
func before(a, b int, descending bool) bool {
	if descending {
		return a > b
	}
	return a < b
}

// SelectMove chooses a move for side on board within budget.
//
// It passes when side has no move and returns a lone legal move without
// searching. Otherwise every candidate receives an equal share of the budget
// and is searched by iterative deepening from one ply up to MaxDepth. The
// clock and ctx are consulted only between iterations, never inside one, so
// a deep iteration may overrun its share. Every candidate gets at least the
// one-ply iteration. The highest value wins; ties go to the earlier candidate
// in weight order.
func (s *Searcher) SelectMove(ctx context.Context, board *othello.Board, side othello.Colour, budget time.Duration) othello.Move {
	s.stats = Stats{}

	player, opponent := board.Sides(side)
	moves := engine.LegalMoves(player.Mask, opponent.Mask)

	if moves == 0 {
		s.log.Debug().Str("side", side.String()).Msg("no legal move, passing")
		return othello.PassMove()
	}

	var buf [othello.NumCells]int
	candidates := orderMoves(buf[:0], moves, s.eval, true)
	if len(candidates) == 1 {
		m := othello.NewMove(candidates[0])
		s.log.Debug().Str("move", m.String()).Msg("only legal move")
		return m
	}

	slice := budget / time.Duration(len(candidates))
	s.log.Debug().
		Int("candidates", len(candidates)).
		Dur("slice", slice).
		Msg("allotting time per candidate")

	best := othello.Move{Value: MinValue}
	for i, pos := range candidates {
		p, o := engine.Play(player.Mask, opponent.Mask, pos)
		cs := s.deepen(ctx, p, o, slice)
		cs.Move.Pos = pos

		s.stats.Candidates = append(s.stats.Candidates, cs)
		s.log.Debug().
			Str("move", cs.Move.String()).
			Int("n", i+1).
			Int("of", len(candidates)).
			Int("depth", cs.Depth).
			Bool("resolved", cs.Resolved).
			Int("score", cs.Move.Value).
			Msg("evaluated candidate")

		if i == 0 || cs.Move.Value > best.Value {
			best = cs.Move
		}
	}

	s.log.Info().
		Str("side", side.String()).
		Str("move", best.String()).
		Int("score", best.Value).
		Uint64("nodes", s.stats.Nodes).
		Msg("selected move")
	return best
}
