package othello

// Result is the outcome of a finished game.
type Result int

const (
	Unfinished Result = iota
	BlackWins
	WhiteWins
	Draw
)

// String returns the conventional score notation for a result.
func (r Result) String() string {
	switch r {
	case BlackWins:
		return "1-0"
	case WhiteWins:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// PlayedMove is a move together with the side that made it.
type PlayedMove struct {
	Side Colour
	Move Move
}

// Game represents a complete game: its starting position, the moves played
// and the final position.
type Game struct {
	// Number of the game within a match (1-based, 0 if standalone).
	Number int

	// Start is the position the game began from.
	Start Board

	// Moves in play order, passes included.
	Moves []PlayedMove

	// Final is the position after the last move.
	Final Board

	Result Result
}

// NewGame creates a game starting from start.
func NewGame(start *Board) *Game {
	return &Game{Start: *start, Final: *start}
}

// Record appends a played move and the position it produced.
func (g *Game) Record(side Colour, m Move, after *Board) {
	g.Moves = append(g.Moves, PlayedMove{Side: side, Move: m})
	g.Final = *after
}

// PlyCount returns the number of plies played, passes included.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// DiskMoves returns the number of non-pass moves played.
func (g *Game) DiskMoves() int {
	n := 0
	for _, pm := range g.Moves {
		if !pm.Move.IsPass() {
			n++
		}
	}
	return n
}
