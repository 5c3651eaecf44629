package search

import (
	"context"
	"time"
)

// deepen searches the position after a root candidate, where the opponent
// is to move, one ply deeper per iteration. It stops at MaxDepth, when an
// iteration saw every line through to the end of the game, or, from the
// second iteration on, when ctx is done or slice has elapsed.
// Move.Value of the result is the value of the deepest completed iteration.
func (s *Searcher) deepen(ctx context.Context, root, other uint64, slice time.Duration) CandidateStats {
	start := s.now()
	var cs CandidateStats

	for depth := 1; depth <= s.maxDepth; depth++ {
		if depth > 1 && (ctx.Err() != nil || s.now().Sub(start) >= slice) {
			break
		}

		s.horizon = false
		// The candidate itself is the first ply.
		cs.Move.Value = s.AlphaBeta(root, other, depth-1, MinValue, MaxValue, false)
		cs.Depth = depth
		cs.Resolved = !s.horizon

		if cs.Resolved {
			break
		}
	}

	cs.Elapsed = s.now().Sub(start)
	return cs
}
