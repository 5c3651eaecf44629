package engine

import (
	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/othello"
)

// IsTerminal reports whether the game is over: the board is full, or neither
// side has a legal move.
func IsTerminal(player, opponent uint64) bool {
	if player|opponent == othello.Full {
		return true
	}
	return LegalMoves(player, opponent) == 0 && LegalMoves(opponent, player) == 0
}

// IsGameOver reports whether the game on board is finished.
func IsGameOver(board *othello.Board) bool {
	return IsTerminal(board.Black.Mask, board.White.Mask)
}

// Winner returns the result by disk count. It reports Unfinished while
// either side can still move.
func Winner(board *othello.Board) othello.Result {
	if !IsGameOver(board) {
		return othello.Unfinished
	}
	black, white := board.Count(othello.Black), board.Count(othello.White)
	switch {
	case black > white:
		return othello.BlackWins
	case white > black:
		return othello.WhiteWins
	}
	return othello.Draw
}

// ApplyMove applies m for the side to move and hands the turn over.
// The move is not validated; use PlayMove for untrusted input.
func ApplyMove(board *othello.Board, m othello.Move) {
	if !m.IsPass() {
		player, opponent := board.Sides(board.ToMove)
		player, opponent = ApplyAndFlip(player, opponent, m.Pos)
		board.SetDisks(player)
		board.SetDisks(opponent)
	}
	board.ToMove = board.ToMove.Opposite()
	board.Ply++
}

// PlayMove validates m for the side to move and applies it.
// It returns ErrIllegalMove if m is not legal, leaving board unchanged.
func PlayMove(board *othello.Board, m othello.Move) error {
	if !IsLegal(board, board.ToMove, m) {
		return errors.Wrapf(errors.ErrIllegalMove, "%s %s", board.ToMove, m)
	}
	ApplyMove(board, m)
	return nil
}

// CountFlips returns how many disks m would flip for side, 0 for a pass.
func CountFlips(board *othello.Board, side othello.Colour, m othello.Move) int {
	if m.IsPass() {
		return 0
	}
	player, opponent := board.Sides(side)
	return othello.Popcount(Flips(player.Mask, opponent.Mask, m.Pos))
}
