// Package engine provides Othello move generation, capture and board manipulation
// over 64-bit disk masks.
package engine

import "github.com/lgbarn/othello-go/internal/othello"

// direction is one of the 8 compass rays. A positive step shifts bits left
// (towards higher cell indices), a negative step shifts right. The mask clears
// the bits that would otherwise wrap around a board edge after the shift.
type direction struct {
	name string
	step int
	mask uint64
}

// directions lists the rays with row 0 at the top of the board.
var directions = [8]direction{
	{"S", 8, 0xFFFFFFFFFFFFFF00},
	{"SE", 9, 0xFEFEFEFEFEFEFE00},
	{"E", 1, 0xFEFEFEFEFEFEFEFE},
	{"NE", -7, 0x00FEFEFEFEFEFEFE},
	{"N", -8, 0x00FFFFFFFFFFFFFF},
	{"NW", -9, 0x007F7F7F7F7F7F7F},
	{"W", -1, 0x7F7F7F7F7F7F7F7F},
	{"SW", 7, 0x7F7F7F7F7F7F7F00},
}

// maxRun is the longest run of opponent disks a single ray can flank.
const maxRun = othello.BoardSize - 2

// shift moves every bit of m one cell along the ray.
func (d direction) shift(m uint64) uint64 {
	if d.step > 0 {
		return (m << uint(d.step)) & d.mask
	}
	return (m >> uint(-d.step)) & d.mask
}

// LegalMoves returns the mask of empty cells where player can move: every empty
// cell that closes a line of one or more opponent disks against a player disk.
// A zero result means player must pass.
func LegalMoves(player, opponent uint64) uint64 {
	empty := ^(player | opponent)
	var moves uint64

	for _, d := range directions {
		// Opponent disks directly adjacent to a player disk along d.
		hold := d.shift(player) & opponent

		for i := 0; i < maxRun && hold != 0; i++ {
			hold = d.shift(hold)
			found := hold & empty
			moves |= found
			hold &= ^found & opponent
		}
	}
	return moves
}

// HasLegalMoves returns true if player has at least one legal move.
func HasLegalMoves(player, opponent uint64) bool {
	return LegalMoves(player, opponent) != 0
}

// MoveList expands a move mask into unscored moves in ascending cell order.
func MoveList(mask uint64) []othello.Move {
	cells := othello.Cells(mask)
	moves := make([]othello.Move, len(cells))
	for i, pos := range cells {
		moves[i] = othello.NewMove(pos)
	}
	return moves
}

// LegalMovesFor returns the legal move mask for side on board.
func LegalMovesFor(board *othello.Board, side othello.Colour) uint64 {
	player, opponent := board.Sides(side)
	return LegalMoves(player.Mask, opponent.Mask)
}

// IsLegal reports whether m is legal for side on board. A pass is legal only
// when side has no disk move.
func IsLegal(board *othello.Board, side othello.Colour, m othello.Move) bool {
	legal := LegalMovesFor(board, side)
	if m.IsPass() {
		return legal == 0
	}
	if m.Pos < 0 || m.Pos >= othello.NumCells {
		return false
	}
	return legal&othello.Bit(m.Pos) != 0
}
