package hashing

import (
	"encoding/binary"

	"lukechampine.com/frand"

	"github.com/lgbarn/othello-go/internal/othello"
)

// zobristSeed fixes the key table so hashes are stable across runs.
var zobristSeed = [32]byte{'o', 't', 'h', 'e', 'l', 'l', 'o'}

// zobrist holds one random key per (colour, cell) and one for White to move.
var zobrist = newZobristKeys()

type zobristKeys struct {
	cells       [2][othello.NumCells]uint64
	whiteToMove uint64
}

func newZobristKeys() *zobristKeys {
	rng := frand.NewCustom(zobristSeed[:], 1024, 12)
	next := func() uint64 {
		var b [8]byte
		rng.Read(b[:])
		return binary.LittleEndian.Uint64(b[:])
	}

	k := &zobristKeys{}
	for c := range k.cells {
		for pos := range k.cells[c] {
			k.cells[c][pos] = next()
		}
	}
	k.whiteToMove = next()
	return k
}

// GenerateZobristHash returns the Zobrist hash of a position, side to move
// included.
func GenerateZobristHash(board *othello.Board) uint64 {
	var h uint64
	for _, pos := range othello.Cells(board.Black.Mask) {
		h ^= zobrist.cells[othello.Black][pos]
	}
	for _, pos := range othello.Cells(board.White.Mask) {
		h ^= zobrist.cells[othello.White][pos]
	}
	if board.ToMove == othello.White {
		h ^= zobrist.whiteToMove
	}
	return h
}

// UpdateHash returns h after a disk of colour c appears on or leaves pos.
func UpdateHash(h uint64, c othello.Colour, pos int) uint64 {
	return h ^ zobrist.cells[c][pos]
}
