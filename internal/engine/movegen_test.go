package engine

import (
	"testing"

	"github.com/lgbarn/othello-go/internal/othello"
)

// maskOf builds a mask from cell names.
func maskOf(t testing.TB, names ...string) uint64 {
	t.Helper()
	var m uint64
	for _, name := range names {
		pos, err := othello.ParseCell(name)
		if err != nil {
			t.Fatalf("ParseCell(%q): %v", name, err)
		}
		m |= othello.Bit(pos)
	}
	return m
}

func TestLegalMoves(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		board string
		side  othello.Colour
		want  []string
	}{
		{
			name:  "opening black",
			board: InitialPosition,
			side:  othello.Black,
			want:  []string{"d3", "c4", "f5", "e6"},
		},
		{
			name:  "opening white",
			board: InitialPosition,
			side:  othello.White,
			want:  []string{"e3", "f4", "c5", "d6"},
		},
		{
			name: "black boxed in on the top edge",
			board: "WWB-----/--------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			want: nil,
		},
		{
			name: "white closes along the top edge",
			board: "WWB-----/--------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.White,
			want: []string{"d1"},
		},
		{
			name: "east ray does not wrap into the next row",
			board: "-------B/W-------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			want: nil,
		},
		{
			name: "west ray does not wrap into the previous row",
			board: "-------W/B-------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			want: nil,
		},
		{
			name: "long diagonal run of six",
			board: "B-------/-W------/--W-----/---W----/" +
				"----W---/-----W--/------W-/--------",
			side: othello.Black,
			want: []string{"h8"},
		},
		{
			name: "run ending on own disk is not a move",
			board: "BWB-----/--------/--------/--------/" +
				"--------/--------/--------/--------",
			side: othello.Black,
			want: nil,
		},
		{
			name:  "empty board",
			board: "--------/--------/--------/--------/--------/--------/--------/--------",
			side:  othello.Black,
			want:  nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := MustParseBoard(tt.board)
			player, opponent := board.Sides(tt.side)

			got := LegalMoves(player.Mask, opponent.Mask)
			want := maskOf(t, tt.want...)
			if got != want {
				t.Errorf("LegalMoves() = %#016x, want %#016x", got, want)
			}
			if HasLegalMoves(player.Mask, opponent.Mask) != (len(tt.want) > 0) {
				t.Errorf("HasLegalMoves() = %v, want %v", !(len(tt.want) > 0), len(tt.want) > 0)
			}
		})
	}
}

func TestLegalMoves_OnlyEmptyCells(t *testing.T) {
	t.Parallel()
	forEachRandomPosition(t, 20, func(board *othello.Board) {
		for _, side := range []othello.Colour{othello.Black, othello.White} {
			moves := LegalMovesFor(board, side)
			if moves&board.Occupied() != 0 {
				t.Fatalf("LegalMoves(%v) overlaps occupied cells on %s", side, FormatBoard(board))
			}
		}
	})
}

func TestOpeningPosition(t *testing.T) {
	t.Parallel()
	board := othello.NewBoard()

	if got := othello.Popcount(board.Occupied()); got != 4 {
		t.Errorf("occupied = %d, want 4", got)
	}
	if got := board.Count(othello.Black); got != 2 {
		t.Errorf("Count(Black) = %d, want 2", got)
	}
	if got := board.Count(othello.White); got != 2 {
		t.Errorf("Count(White) = %d, want 2", got)
	}
	if got := othello.Popcount(LegalMovesFor(board, othello.Black)); got != 4 {
		t.Errorf("black opening moves = %d, want 4", got)
	}
	if FormatBoard(board) != FormatBoard(MustParseBoard(InitialPosition)) {
		t.Errorf("NewBoard() = %s, want %s", FormatBoard(board), InitialPosition)
	}
}

func TestMoveList(t *testing.T) {
	t.Parallel()
	moves := MoveList(maskOf(t, "e6", "d3", "f5", "c4"))

	want := []string{"d3", "c4", "f5", "e6"}
	if len(moves) != len(want) {
		t.Fatalf("MoveList() returned %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m.String() != want[i] {
			t.Errorf("moves[%d] = %s, want %s", i, m, want[i])
		}
		if m.Value != othello.NoValue {
			t.Errorf("moves[%d].Value = %d, want NoValue", i, m.Value)
		}
	}
}

func TestIsLegal(t *testing.T) {
	t.Parallel()
	board := othello.NewBoard()

	tests := []struct {
		name string
		move othello.Move
		want bool
	}{
		{"legal cell", othello.NewMove(mustCell(t, "d3")), true},
		{"empty but not flanking", othello.NewMove(mustCell(t, "a1")), false},
		{"occupied cell", othello.NewMove(mustCell(t, "d4")), false},
		{"out of range", othello.NewMove(64), false},
		{"pass with moves available", othello.PassMove(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegal(board, othello.Black, tt.move); got != tt.want {
				t.Errorf("IsLegal(%s) = %v, want %v", tt.move, got, tt.want)
			}
		})
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
