package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/othello"
)

// Board strings list the 64 cells row by row from a1 to h8, one character per
// cell ('B', 'W' or '-'), optionally followed by the side to move.
// Whitespace and '/' separators are ignored.
const InitialPosition = "--------/--------/--------/---WB---/---BW---/--------/--------/-------- B"

// emptyCell is the character for an empty cell in board strings and diagrams.
const emptyCell = '-'

// ParseBoard creates a board from a board string. The side to move defaults
// to Black when the string does not name one.
func ParseBoard(s string) (*othello.Board, error) {
	board := othello.EmptyBoard()

	cells := 0
	for i, c := range s {
		if unicode.IsSpace(c) || c == '/' {
			continue
		}
		if cells == othello.NumCells {
			if err := parseSideToMove(board, s[i:], i); err != nil {
				return nil, err
			}
			return board, nil
		}
		switch c {
		case 'B', 'b':
			board.Black = board.Black.Set(cells)
		case 'W', 'w':
			board.White = board.White.Set(cells)
		case emptyCell, '.':
		default:
			return nil, &errors.ParseError{
				Err:      errors.ErrInvalidPosition,
				Column:   i + 1,
				Expected: "B, W or -",
				Got:      string(c),
			}
		}
		cells++
	}

	if cells != othello.NumCells {
		return nil, fmt.Errorf("%d cells, want %d: %w", cells, othello.NumCells, errors.ErrInvalidPosition)
	}
	return board, nil
}

// parseSideToMove parses the trailing side-to-move field.
func parseSideToMove(board *othello.Board, rest string, offset int) error {
	field := strings.TrimSpace(rest)
	if len(field) == 1 {
		if side, ok := othello.ColourFromLetter(byte(unicode.ToUpper(rune(field[0])))); ok {
			board.ToMove = side
			return nil
		}
	}
	return &errors.ParseError{
		Err:      errors.ErrInvalidPosition,
		Column:   offset + 1,
		Expected: "side to move B or W",
		Got:      field,
	}
}

// MustParseBoard is like ParseBoard but panics on error.
// It is intended for fixed positions in code and tests.
func MustParseBoard(s string) *othello.Board {
	board, err := ParseBoard(s)
	if err != nil {
		panic(err)
	}
	return board
}

// FormatBoard converts a board to a board string.
func FormatBoard(board *othello.Board) string {
	var sb strings.Builder
	for row := 0; row < othello.BoardSize; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < othello.BoardSize; col++ {
			sb.WriteByte(cellChar(board, othello.Cell(row, col)))
		}
	}
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.Letter())
	return sb.String()
}

// RenderBoard draws the board as text lines, one per row under a column header.
func RenderBoard(board *othello.Board) []string {
	lines := make([]string, 0, othello.BoardSize+2)
	lines = append(lines, "    A B C D E F G H", "    * * * * * * * *")

	for row := 0; row < othello.BoardSize; row++ {
		var sb strings.Builder
		fmt.Fprintf(&sb, "%c *", othello.RowBase+row)
		for col := 0; col < othello.BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(cellChar(board, othello.Cell(row, col)))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// cellChar returns the display character for a cell.
func cellChar(board *othello.Board, pos int) byte {
	if side, ok := board.At(pos); ok {
		return side.Letter()
	}
	return emptyCell
}
