package game

import (
	"context"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/othello"
)

// Play runs a complete game from start between black and white and returns
// its record. It stops early with ctx's error if ctx is cancelled between
// moves.
func Play(ctx context.Context, start *othello.Board, black, white Player) (*othello.Game, error) {
	board := start.Copy()
	g := othello.NewGame(board)

	for !engine.IsGameOver(board) {
		if err := ctx.Err(); err != nil {
			return g, err
		}

		side := board.ToMove
		p := black
		if side == othello.White {
			p = white
		}

		m, err := p.Next(ctx, board, side)
		if err != nil {
			return g, &errors.GameError{Err: err, PlyNum: board.Ply + 1}
		}
		if err := engine.PlayMove(board, m); err != nil {
			return g, &errors.GameError{Err: err, PlyNum: board.Ply + 1, MoveText: m.String()}
		}
		g.Record(side, m, board)
	}

	g.Result = engine.Winner(board)
	return g, nil
}
