package engine

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/othello-go/internal/othello"
)

// forEachRandomPosition plays games random move by random move from the
// opening and calls fn with every position reached. The seed is fixed so
// failures reproduce.
func forEachRandomPosition(t *testing.T, games int, fn func(board *othello.Board)) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))
	for g := 0; g < games; g++ {
		board := othello.NewBoard()
		fn(board)
		for !IsGameOver(board) {
			moves := MoveList(LegalMovesFor(board, board.ToMove))
			m := othello.PassMove()
			if len(moves) > 0 {
				m = moves[rng.Intn(len(moves))]
			}
			if err := PlayMove(board, m); err != nil {
				t.Fatalf("PlayMove(%s) on %s: %v", m, FormatBoard(board), err)
			}
			fn(board)
		}
	}
}

func TestFlips(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		board string
		side  othello.Colour
		cell  string
		want  []string
	}{
		{
			name:  "opening d3",
			board: InitialPosition,
			side:  othello.Black,
			cell:  "d3",
			want:  []string{"d4"},
		},
		{
			name: "all eight directions",
			board: "--------/-B-B-B--/--WWW---/-BW-WB--/" +
				"--WWW---/-B-B-B--/--------/--------",
			side: othello.Black,
			cell: "d4",
			want: []string{"c3", "d3", "e3", "c4", "e4", "c5", "d5", "e5"},
		},
		{
			name: "run ending on empty flips nothing",
			board: "-WW-----/--------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			cell: "a1",
			want: nil,
		},
		{
			name: "run ending at the edge flips nothing",
			board: "-----WWW/--------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			cell: "e1",
			want: nil,
		},
		{
			name: "only flanked rays flip",
			board: "BWW-WWW-/--------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			cell: "d1",
			want: []string{"b1", "c1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := MustParseBoard(tt.board)
			player, opponent := board.Sides(tt.side)

			got := Flips(player.Mask, opponent.Mask, mustCell(t, tt.cell))
			if want := maskOf(t, tt.want...); got != want {
				t.Errorf("Flips(%s) = %#016x, want %#016x", tt.cell, got, want)
			}
		})
	}
}

func TestApplyAndFlip(t *testing.T) {
	t.Parallel()
	black := othello.InitialDiskSet(othello.Black)
	white := othello.InitialDiskSet(othello.White)

	black, white = ApplyAndFlip(black, white, mustCell(t, "d3"))

	if want := maskOf(t, "d3", "d4", "d5", "e4"); black.Mask != want {
		t.Errorf("black = %#016x, want %#016x", black.Mask, want)
	}
	if want := maskOf(t, "e5"); white.Mask != want {
		t.Errorf("white = %#016x, want %#016x", white.Mask, want)
	}
	if black.Side != othello.Black || white.Side != othello.White {
		t.Errorf("sides changed: %v, %v", black.Side, white.Side)
	}
}

func TestApplyAndFlip_Invariants(t *testing.T) {
	t.Parallel()
	forEachRandomPosition(t, 30, func(board *othello.Board) {
		if board.Black.Mask&board.White.Mask != 0 {
			t.Fatalf("disk sets overlap on %s", FormatBoard(board))
		}
		player, opponent := board.Sides(board.ToMove)
		before := othello.Popcount(board.Occupied())

		for _, m := range MoveList(LegalMovesFor(board, board.ToMove)) {
			flips := Flips(player.Mask, opponent.Mask, m.Pos)
			if flips == 0 {
				t.Fatalf("legal move %s flips nothing on %s", m, FormatBoard(board))
			}
			p, o := ApplyAndFlip(player, opponent, m.Pos)
			if p.Mask&o.Mask != 0 {
				t.Fatalf("move %s leaves overlapping disk sets", m)
			}
			if got := othello.Popcount(p.Mask | o.Mask); got != before+1 {
				t.Fatalf("move %s: occupied = %d, want %d", m, got, before+1)
			}
			if got := p.Popcount() - player.Popcount(); got != othello.Popcount(flips)+1 {
				t.Fatalf("move %s: player gained %d disks, want %d", m, got, othello.Popcount(flips)+1)
			}
		}
	})
}

func TestPlay_MatchesApplyAndFlip(t *testing.T) {
	t.Parallel()
	forEachRandomPosition(t, 5, func(board *othello.Board) {
		player, opponent := board.Sides(board.ToMove)
		for _, m := range MoveList(LegalMovesFor(board, board.ToMove)) {
			p, o := ApplyAndFlip(player, opponent, m.Pos)
			pm, om := Play(player.Mask, opponent.Mask, m.Pos)
			if p.Mask != pm || o.Mask != om {
				t.Fatalf("Play(%s) = (%#x, %#x), want (%#x, %#x)", m, pm, om, p.Mask, o.Mask)
			}
		}
	})
}
