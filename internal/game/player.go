// Package game drives Othello games: against a referee over the line
// protocol, or between two in-process players.
package game

import (
	"context"
	"encoding/binary"
	"time"

	"lukechampine.com/frand"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/othello"
	"github.com/lgbarn/othello-go/internal/search"
)

// Player chooses the next move for side. It must return a legal move, or a
// pass when side has none.
type Player interface {
	Next(ctx context.Context, board *othello.Board, side othello.Colour) (othello.Move, error)
}

// EnginePlayer picks moves with the alpha-beta search.
type EnginePlayer struct {
	searcher *search.Searcher
	budget   time.Duration
}

// NewEnginePlayer creates a player searching each move for up to budget.
func NewEnginePlayer(s *search.Searcher, budget time.Duration) *EnginePlayer {
	return &EnginePlayer{searcher: s, budget: budget}
}

// Next implements Player.
func (p *EnginePlayer) Next(ctx context.Context, board *othello.Board, side othello.Colour) (othello.Move, error) {
	return p.searcher.SelectMove(ctx, board, side, p.budget), nil
}

// Searcher returns the underlying searcher.
func (p *EnginePlayer) Searcher() *search.Searcher {
	return p.searcher
}

// RandomPlayer picks uniformly among the legal moves.
type RandomPlayer struct {
	rng *frand.RNG
}

// NewRandomPlayer creates a randomly seeded RandomPlayer.
func NewRandomPlayer() *RandomPlayer {
	return &RandomPlayer{rng: frand.New()}
}

// NewSeededRandomPlayer creates a RandomPlayer whose choices are fixed by seed.
func NewSeededRandomPlayer(seed uint64) *RandomPlayer {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return &RandomPlayer{rng: frand.NewCustom(key[:], 1024, 12)}
}

// Next implements Player.
func (p *RandomPlayer) Next(_ context.Context, board *othello.Board, side othello.Colour) (othello.Move, error) {
	moves := engine.MoveList(engine.LegalMovesFor(board, side))
	if len(moves) == 0 {
		return othello.PassMove(), nil
	}
	return moves[p.rng.Intn(len(moves))], nil
}

// openingPlayer delegates to opening for the first plies of a game and to
// main afterwards.
type openingPlayer struct {
	opening Player
	main    Player
	plies   int
}

// WithOpening returns a player that uses opening while fewer than plies
// plies have been played and main from then on.
func WithOpening(opening, main Player, plies int) Player {
	if plies <= 0 {
		return main
	}
	return &openingPlayer{opening: opening, main: main, plies: plies}
}

// Next implements Player.
func (p *openingPlayer) Next(ctx context.Context, board *othello.Board, side othello.Colour) (othello.Move, error) {
	if board.Ply < p.plies {
		return p.opening.Next(ctx, board, side)
	}
	return p.main.Next(ctx, board, side)
}
