// Package hashing provides duplicate detection for Othello games.
package hashing

import (
	"github.com/lgbarn/othello-go/internal/othello"
)

// DuplicateDetector tracks seen final positions for duplicate game detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	// stored counts signatures in hashTable
	stored int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Black and White are the final disk masks, compared exactly
	Black uint64
	White uint64
	// PlyCount is the number of plies in the game, passes included
	PlyCount int
	// Game is the match number of the game the signature came from
	Game int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a game's final position.
func Signature(game *othello.Game) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(&game.Final),
		Black:    game.Final.Black.Mask,
		White:    game.Final.White.Mask,
		PlyCount: game.PlyCount(),
		Game:     game.Number,
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full new
// games are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(game *othello.Game) bool {
	_, dup := d.Match(game)
	return dup
}

// Match is CheckAndAdd that also returns the stored signature a duplicate
// matched.
func (d *DuplicateDetector) Match(game *othello.Game) (GameSignature, bool) {
	if game == nil {
		return GameSignature{}, false
	}

	sig := Signature(game)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	if d.IsFull() {
		return sig, false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.stored++
	return sig, false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.Black != b.Black || a.White != b.White {
		return false
	}
	if d.useExactMatch && a.PlyCount != b.PlyCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.stored
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.stored >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.stored = 0
	d.duplicateCount = 0
}
