package othello

import (
	"fmt"
	"math"
)

// NoValue marks a move that has not been scored by the search.
const NoValue = math.MinInt32

// PassString is the text form of a pass.
const PassString = "pass"

// Move is a candidate or applied action: a cell, or a pass when the side
// to move has no legal cell.
type Move struct {
	// Destination cell, 0-63. Meaningless for a pass.
	Pos int

	// Pass is true when the side gives up its turn.
	Pass bool

	// Value is the search score; NoValue until evaluated.
	Value int
}

// NewMove creates an unscored move to pos.
func NewMove(pos int) Move {
	return Move{Pos: pos, Value: NoValue}
}

// PassMove creates an unscored pass.
func PassMove() Move {
	return Move{Pos: -1, Pass: true, Value: NoValue}
}

// IsPass reports whether the move is a pass.
func (m Move) IsPass() bool {
	return m.Pass
}

// String returns the cell name of the move, or "pass".
func (m Move) String() string {
	if m.Pass {
		return PassString
	}
	return CellName(m.Pos)
}

// CellName returns the algebraic name of a cell, e.g. "d3".
func CellName(pos int) string {
	if pos < 0 || pos >= NumCells {
		return "??"
	}
	return string([]byte{byte(ColBase + ColOf(pos)), byte(RowBase + RowOf(pos))})
}

// ParseCell converts an algebraic cell name such as "d3" to its index.
func ParseCell(name string) (int, error) {
	if len(name) != 2 {
		return -1, fmt.Errorf("cell %q: want column a-h and row 1-8", name)
	}
	col := int(name[0]) - ColBase
	row := int(name[1]) - RowBase
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return -1, fmt.Errorf("cell %q: want column a-h and row 1-8", name)
	}
	return Cell(row, col), nil
}
