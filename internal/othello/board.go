package othello

// Board represents the persisted game state with all state needed for play.
type Board struct {
	// The two disk sets. Their masks never overlap.
	Black DiskSet
	White DiskSet

	// Who has the next move.
	ToMove Colour

	// Number of plies played so far, passes included.
	Ply int
}

// NewBoard creates a board in the standard opening position with Black to move.
func NewBoard() *Board {
	return &Board{
		Black:  InitialDiskSet(Black),
		White:  InitialDiskSet(White),
		ToMove: Black,
	}
}

// EmptyBoard creates a board with no disks.
func EmptyBoard() *Board {
	return &Board{
		Black:  DiskSet{Side: Black},
		White:  DiskSet{Side: White},
		ToMove: Black,
	}
}

// Copy returns a deep copy of the board.
func (b *Board) Copy() *Board {
	c := *b
	return &c
}

// Disks returns side's disk set.
func (b *Board) Disks(side Colour) DiskSet {
	if side == White {
		return b.White
	}
	return b.Black
}

// Sides returns (side, opponent) disk sets.
func (b *Board) Sides(side Colour) (DiskSet, DiskSet) {
	if side == White {
		return b.White, b.Black
	}
	return b.Black, b.White
}

// SetDisks stores a disk set under its own side.
func (b *Board) SetDisks(d DiskSet) {
	if d.Side == White {
		b.White = d
	} else {
		b.Black = d
	}
}

// Occupied returns the mask of all occupied cells.
func (b *Board) Occupied() uint64 {
	return b.Black.Mask | b.White.Mask
}

// Empty returns the mask of all empty cells.
func (b *Board) Empty() uint64 {
	return ^b.Occupied()
}

// Count returns the number of disks held by side.
func (b *Board) Count(side Colour) int {
	return b.Disks(side).Popcount()
}

// At returns the colour at pos and whether the cell is occupied.
func (b *Board) At(pos int) (Colour, bool) {
	switch {
	case b.Black.Test(pos):
		return Black, true
	case b.White.Test(pos):
		return White, true
	}
	return Black, false
}
