package search

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/eval"
	"github.com/lgbarn/othello-go/internal/othello"
	"github.com/lgbarn/othello-go/internal/testutil"
)

// slowMinimax is the unpruned reference for AlphaBeta: the same pass and
// leaf rules, every branch searched.
func slowMinimax(ev *eval.Evaluator, root, other uint64, depth int, maximizing bool) int {
	if depth <= 0 {
		return ev.Score(root, other)
	}
	player, opponent := root, other
	if !maximizing {
		player, opponent = other, root
	}
	moves := othello.Cells(engine.LegalMoves(player, opponent))
	if len(moves) == 0 {
		if !engine.HasLegalMoves(opponent, player) {
			return ev.Score(root, other)
		}
		return slowMinimax(ev, root, other, depth, !maximizing)
	}

	best := MaxValue
	if maximizing {
		best = MinValue
	}
	for _, pos := range moves {
		p, o := engine.Play(player, opponent, pos)
		var v int
		if maximizing {
			v = slowMinimax(ev, p, o, depth-1, false)
			best = max(best, v)
		} else {
			v = slowMinimax(ev, o, p, depth-1, true)
			best = min(best, v)
		}
	}
	return best
}

// samplePositions returns positions from random games, every step-th one.
func samplePositions(games, step int) []*othello.Board {
	rng := rand.New(rand.NewSource(42))
	var boards []*othello.Board
	n := 0
	for g := 0; g < games; g++ {
		board := othello.NewBoard()
		for !engine.IsGameOver(board) {
			if n%step == 0 {
				boards = append(boards, board.Copy())
			}
			n++
			moves := engine.MoveList(engine.LegalMovesFor(board, board.ToMove))
			m := othello.PassMove()
			if len(moves) > 0 {
				m = moves[rng.Intn(len(moves))]
			}
			engine.ApplyMove(board, m)
		}
		boards = append(boards, board.Copy())
	}
	return boards
}

func TestAlphaBeta_MatchesMinimax(t *testing.T) {
	t.Parallel()
	ev := eval.Default()
	s := New(ev)

	for _, board := range samplePositions(6, 3) {
		root, other := board.Sides(board.ToMove)
		for depth := 0; depth <= 3; depth++ {
			for _, maximizing := range []bool{true, false} {
				got := s.AlphaBeta(root.Mask, other.Mask, depth, MinValue, MaxValue, maximizing)
				want := slowMinimax(ev, root.Mask, other.Mask, depth, maximizing)
				if got != want {
					t.Fatalf("AlphaBeta(depth=%d, max=%v) = %d, want %d on %s",
						depth, maximizing, got, want, engine.FormatBoard(board))
				}
			}
		}
	}
}

func TestAlphaBeta_DeepEndgameMatchesMinimax(t *testing.T) {
	t.Parallel()
	ev := eval.Default()
	s := New(ev)

	for _, board := range samplePositions(4, 1) {
		if othello.Popcount(board.Occupied()) < 54 {
			continue
		}
		root, other := board.Sides(board.ToMove)
		got := s.AlphaBeta(root.Mask, other.Mask, 5, MinValue, MaxValue, true)
		want := slowMinimax(ev, root.Mask, other.Mask, 5, true)
		if got != want {
			t.Fatalf("AlphaBeta(depth=5) = %d, want %d on %s", got, want, engine.FormatBoard(board))
		}
	}
}

func TestAlphaBeta_Prunes(t *testing.T) {
	t.Parallel()
	s := New(eval.Default())
	b := othello.NewBoard()
	s.AlphaBeta(b.Black.Mask, b.White.Mask, 5, MinValue, MaxValue, true)
	if s.Stats().Cutoffs == 0 {
		t.Error("expected at least one cutoff at depth 5")
	}
}

func TestAlphaBeta_PassDoesNotConsumeDepth(t *testing.T) {
	t.Parallel()
	ev := eval.Default()
	s := New(ev)
	// Black has no move; White can play d1.
	b := engine.MustParseBoard("WWB-----/--------/--------/--------/" +
		"--------/--------/--------/--------")

	got := s.AlphaBeta(b.Black.Mask, b.White.Mask, 1, MinValue, MaxValue, true)
	p, o := engine.Play(b.White.Mask, b.Black.Mask, mustCell(t, "d1"))
	want := ev.Score(o, p)
	if got != want {
		t.Errorf("AlphaBeta() = %d, want %d (white reply searched at the same depth)", got, want)
	}
}

func TestOrderMoves(t *testing.T) {
	t.Parallel()
	ev := eval.Default()
	mask := othello.Bit(mustCell(t, "a1")) | othello.Bit(mustCell(t, "b1")) |
		othello.Bit(mustCell(t, "c1")) | othello.Bit(mustCell(t, "b2"))

	names := func(cells []int) []string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = othello.CellName(c)
		}
		return out
	}

	testutil.AssertEqual(t, names(orderMoves(nil, mask, ev, true)), []string{"a1", "c1", "b1", "b2"}, "descending")
	testutil.AssertEqual(t, names(orderMoves(nil, mask, ev, false)), []string{"b2", "b1", "c1", "a1"}, "ascending")

	opening := engine.LegalMovesFor(othello.NewBoard(), othello.Black)
	testutil.AssertEqual(t, names(orderMoves(nil, opening, ev, true)), []string{"d3", "c4", "f5", "e6"}, "ties keep index order")
}

func TestSelectMove_Pass(t *testing.T) {
	t.Parallel()
	b := engine.MustParseBoard("WWB-----/--------/--------/--------/" +
		"--------/--------/--------/--------")
	m := New(eval.Default()).SelectMove(context.Background(), b, othello.Black, time.Second)
	if !m.IsPass() {
		t.Errorf("SelectMove() = %s, want pass", m)
	}
}

func TestSelectMove_SingleMove(t *testing.T) {
	t.Parallel()
	b := engine.MustParseBoard("WWB-----/--------/--------/--------/" +
		"--------/--------/--------/--------")
	s := New(eval.Default())
	m := s.SelectMove(context.Background(), b, othello.White, time.Second)
	if m.IsPass() || othello.CellName(m.Pos) != "d1" {
		t.Fatalf("SelectMove() = %s, want d1", m)
	}
	if s.Stats().Nodes != 0 {
		t.Errorf("Nodes = %d, want 0 for a forced move", s.Stats().Nodes)
	}
}

func TestSelectMove_BestOfCandidates(t *testing.T) {
	t.Parallel()
	ev := eval.Default()
	const depth = 3

	for _, board := range samplePositions(3, 7) {
		side := board.ToMove
		player, opponent := board.Sides(side)
		moves := engine.LegalMoves(player.Mask, opponent.Mask)
		if othello.Popcount(moves) < 2 {
			continue
		}

		s := New(ev, WithMaxDepth(depth))
		got := s.SelectMove(context.Background(), board, side, time.Hour)

		wantPos, wantValue := -1, MinValue
		for _, pos := range orderMoves(nil, moves, ev, true) {
			p, o := engine.Play(player.Mask, opponent.Mask, pos)
			v := slowMinimax(ev, p, o, depth-1, false)
			if wantPos < 0 || v > wantValue {
				wantPos, wantValue = pos, v
			}
		}

		if got.Pos != wantPos || got.Value != wantValue {
			t.Fatalf("SelectMove() = %s (%d), want %s (%d) on %s",
				got, got.Value, othello.CellName(wantPos), wantValue, engine.FormatBoard(board))
		}
		if len(s.Stats().Candidates) != othello.Popcount(moves) {
			t.Fatalf("searched %d candidates, want %d", len(s.Stats().Candidates), othello.Popcount(moves))
		}
	}
}

func TestSelectMove_TakesWinningMove(t *testing.T) {
	t.Parallel()
	// After c1 White has no reply and any Black move then captures White's
	// last disk.
	b := engine.MustParseBoard("BW------/-W------/--------/--------/" +
		"--------/--------/--------/-------- B")

	m := New(eval.Default(), WithMaxDepth(4)).SelectMove(context.Background(), b, othello.Black, time.Hour)
	if m.IsPass() {
		t.Fatal("SelectMove() passed")
	}
	if m.Value < eval.TerminalUnit {
		t.Errorf("SelectMove() = %s with value %d, want a won ending", m, m.Value)
	}
}

// stepClock returns a clock that moves forward by step on every reading.
func stepClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestSelectMove_BudgetLimitsDepth(t *testing.T) {
	t.Parallel()
	s := New(eval.Default(), WithMaxDepth(6), WithClock(stepClock(time.Hour)))
	s.SelectMove(context.Background(), othello.NewBoard(), othello.Black, time.Second)

	stats := s.Stats()
	if len(stats.Candidates) != 4 {
		t.Fatalf("searched %d candidates, want 4", len(stats.Candidates))
	}
	for _, c := range stats.Candidates {
		if c.Depth != 1 {
			t.Errorf("candidate %s reached depth %d, want 1 once the budget is spent", c.Move, c.Depth)
		}
	}
}

func TestSelectMove_CancelledContext(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(eval.Default(), WithMaxDepth(6))
	m := s.SelectMove(ctx, othello.NewBoard(), othello.Black, time.Hour)
	if m.IsPass() {
		t.Fatal("SelectMove() passed in the opening")
	}
	for _, c := range s.Stats().Candidates {
		if c.Depth != 1 {
			t.Errorf("candidate %s reached depth %d, want 1 after cancel", c.Move, c.Depth)
		}
	}
}

func TestSelectMove_ResolvedStopsEarly(t *testing.T) {
	t.Parallel()
	// Two empty cells left: every line ends within a few plies.
	b := engine.MustParseBoard("BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB/" +
		"WWWWWWWW/WWWWWWWW/WWWWWWWB/WWWWWB-- W")
	s := New(eval.Default(), WithMaxDepth(10))
	s.SelectMove(context.Background(), b, othello.White, time.Hour)

	for _, c := range s.Stats().Candidates {
		if !c.Resolved {
			t.Errorf("candidate %s not resolved", c.Move)
		}
		if c.Depth >= 10 {
			t.Errorf("candidate %s searched to depth %d, want early stop", c.Move, c.Depth)
		}
	}
}

func TestSelfPlay(t *testing.T) {
	t.Parallel()
	black := New(eval.Default(), WithMaxDepth(2))
	white := New(eval.Default(), WithMaxDepth(3))
	board := othello.NewBoard()

	diskMoves := 0
	for plies := 0; !engine.IsGameOver(board); plies++ {
		if plies > 2*othello.NumCells {
			t.Fatalf("game did not finish after %d plies", plies)
		}
		s := black
		if board.ToMove == othello.White {
			s = white
		}
		m := s.SelectMove(context.Background(), board, board.ToMove, time.Hour)
		if err := engine.PlayMove(board, m); err != nil {
			t.Fatalf("ply %d: %v", plies, err)
		}
		if !m.IsPass() {
			diskMoves++
		}
		if board.Black.Mask&board.White.Mask != 0 {
			t.Fatalf("disk sets overlap after %s", m)
		}
	}

	if diskMoves > othello.NumCells-4 {
		t.Errorf("played %d disk moves, want <= 60", diskMoves)
	}
	if got := othello.Popcount(board.Occupied()); got != 4+diskMoves || got > othello.NumCells {
		t.Errorf("occupied = %d after %d moves", got, diskMoves)
	}
}

func mustCell(t testing.TB, name string) int {
	t.Helper()
	pos, err := othello.ParseCell(name)
	if err != nil {
		t.Fatalf("ParseCell(%q): %v", name, err)
	}
	return pos
}
