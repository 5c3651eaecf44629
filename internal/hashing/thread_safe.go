package hashing

import (
	"sync"

	"github.com/lgbarn/othello-go/internal/othello"
)

// SharedDetector is a DuplicateDetector that match workers can share.
type SharedDetector struct {
	mu       sync.Mutex
	detector *DuplicateDetector
}

// NewSharedDetector creates a shared detector comparing final positions
// only. maxCapacity of 0 means unlimited capacity.
func NewSharedDetector(maxCapacity int) *SharedDetector {
	return &SharedDetector{detector: NewDuplicateDetector(false, maxCapacity)}
}

// Check records game and reports whether an earlier game ended in the same
// position. For a duplicate, first is the number of that earlier game.
func (d *SharedDetector) Check(game *othello.Game) (first int, dup bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sig, dup := d.detector.Match(game)
	if !dup {
		return 0, false
	}
	return sig.Game, true
}

// Counts returns the number of distinct final positions and of duplicates.
func (d *SharedDetector) Counts() (unique, duplicates int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.UniqueCount(), d.detector.DuplicateCount()
}
