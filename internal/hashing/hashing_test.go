package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/othello"
)

// gameFrom returns a finished-looking game record ending on board.
func gameFrom(board string, plies int) *othello.Game {
	b := engine.MustParseBoard(board)
	g := othello.NewGame(othello.NewBoard())
	for i := 0; i < plies; i++ {
		g.Record(othello.Black, othello.PassMove(), b)
	}
	return g
}

const (
	fullBlack = "BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB"
	fullSplit = "BBBBBBBB/BBBBBBBB/BBBBBBBB/BBBBBBBB/WWWWWWWW/WWWWWWWW/WWWWWWWW/WWWWWWWW"
)

func TestZobristHashConsistency(t *testing.T) {
	if GenerateZobristHash(othello.NewBoard()) != GenerateZobristHash(othello.NewBoard()) {
		t.Error("Identical boards produced different hashes")
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	opening := othello.NewBoard()
	moved := opening.Copy()
	engine.ApplyMove(moved, othello.NewMove(othello.Cell(2, 3)))

	if GenerateZobristHash(opening) == GenerateZobristHash(moved) {
		t.Error("Different positions produced the same hash")
	}

	sideOnly := opening.Copy()
	sideOnly.ToMove = othello.White
	if GenerateZobristHash(opening) == GenerateZobristHash(sideOnly) {
		t.Error("Side to move does not affect the hash")
	}
}

func TestUpdateHash(t *testing.T) {
	before := othello.NewBoard()
	after := before.Copy()
	after.Black = after.Black.Set(0)

	h := UpdateHash(GenerateZobristHash(before), othello.Black, 0)
	if h != GenerateZobristHash(after) {
		t.Error("incremental update disagrees with full hash")
	}
	if UpdateHash(h, othello.Black, 0) != GenerateZobristHash(before) {
		t.Error("update is not its own inverse")
	}
}

func TestDuplicateDetector(t *testing.T) {
	tests := []struct {
		name       string
		exact      bool
		games      []*othello.Game
		wantDups   int
		wantUnique int
	}{
		{
			name:       "distinct positions",
			games:      []*othello.Game{gameFrom(fullBlack, 60), gameFrom(fullSplit, 60)},
			wantUnique: 2,
		},
		{
			name:       "same position",
			games:      []*othello.Game{gameFrom(fullSplit, 60), gameFrom(fullSplit, 61)},
			wantDups:   1,
			wantUnique: 1,
		},
		{
			name:       "exact match needs equal length",
			exact:      true,
			games:      []*othello.Game{gameFrom(fullSplit, 60), gameFrom(fullSplit, 61), gameFrom(fullSplit, 60)},
			wantDups:   1,
			wantUnique: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDuplicateDetector(tt.exact, 0)
			for _, g := range tt.games {
				d.CheckAndAdd(g)
			}
			if d.DuplicateCount() != tt.wantDups {
				t.Errorf("DuplicateCount() = %d, want %d", d.DuplicateCount(), tt.wantDups)
			}
			if d.UniqueCount() != tt.wantUnique {
				t.Errorf("UniqueCount() = %d, want %d", d.UniqueCount(), tt.wantUnique)
			}
		})
	}
}

func TestDuplicateDetector_CapacityAndReset(t *testing.T) {
	d := NewDuplicateDetector(false, 1)
	if d.CheckAndAdd(gameFrom(fullBlack, 60)) {
		t.Fatal("first game reported as duplicate")
	}
	if !d.IsFull() {
		t.Fatal("detector should be full")
	}
	if d.CheckAndAdd(gameFrom(fullSplit, 60)) || d.UniqueCount() != 1 {
		t.Error("full detector stored a new game")
	}
	if !d.CheckAndAdd(gameFrom(fullBlack, 60)) {
		t.Error("full detector missed a stored duplicate")
	}
	if d.CheckAndAdd(nil) {
		t.Error("nil game reported as duplicate")
	}

	d.Reset()
	if d.UniqueCount() != 0 || d.DuplicateCount() != 0 || d.IsFull() {
		t.Error("Reset did not clear the detector")
	}
}

func TestSharedDetector(t *testing.T) {
	d := NewSharedDetector(0)

	first := gameFrom(fullSplit, 60)
	first.Number = 3
	if _, dup := d.Check(first); dup {
		t.Fatal("first game reported as duplicate")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				g := gameFrom(fullSplit, 60)
				g.Number = 10 + j
				if n, dup := d.Check(g); !dup || n != 3 {
					t.Errorf("Check() = %d, %v, want 3, true", n, dup)
				}
			}
		}()
	}
	wg.Wait()

	if unique, dups := d.Counts(); unique != 1 || dups != 80 {
		t.Errorf("Counts() = %d, %d, want 1 and 80", unique, dups)
	}
}

func TestDuplicateDetector_Match(t *testing.T) {
	t.Parallel()
	d := NewDuplicateDetector(false, 0)
	a := gameFrom(fullBlack, 60)
	a.Number = 1
	b := gameFrom(fullBlack, 62)
	b.Number = 2

	if sig, dup := d.Match(a); dup || sig.Game != 1 {
		t.Errorf("Match(a) = %+v, %v", sig, dup)
	}
	if sig, dup := d.Match(b); !dup || sig.Game != 1 || sig.PlyCount != 60 {
		t.Errorf("Match(b) = %+v, %v, want the signature of game 1", sig, dup)
	}
}
