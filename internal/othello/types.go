// Package othello provides core Othello types: colours, disk sets, moves and boards.
package othello

import "math/bits"

// Colour represents the colour of a disk or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the single letter used for the colour on the wire and in diagrams.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// ColourFromLetter converts 'B' or 'W' to a colour.
func ColourFromLetter(letter byte) (Colour, bool) {
	switch letter {
	case 'B':
		return Black, true
	case 'W':
		return White, true
	}
	return Black, false
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	RowBase = '1'
	ColBase = 'a'

	// Full is the mask with every cell occupied.
	Full uint64 = 0xFFFFFFFFFFFFFFFF
)

// Cell returns the linear index of (row, col). Row 0 is the top row, written "1".
func Cell(row, col int) int {
	return row*BoardSize + col
}

// RowOf returns the row of a cell index.
func RowOf(pos int) int {
	return pos / BoardSize
}

// ColOf returns the column of a cell index.
func ColOf(pos int) int {
	return pos % BoardSize
}

// Bit returns the single-bit mask for pos.
func Bit(pos int) uint64 {
	return uint64(1) << uint(pos)
}

// Popcount returns the number of set bits in mask.
func Popcount(mask uint64) int {
	return bits.OnesCount64(mask)
}

// Cells returns the set bits of mask as ascending cell indices.
func Cells(mask uint64) []int {
	cells := make([]int, 0, Popcount(mask))
	for mask != 0 {
		cells = append(cells, bits.TrailingZeros64(mask))
		mask &= mask - 1
	}
	return cells
}
