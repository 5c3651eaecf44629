package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/othello"
)

// PassText is the move text of a pass.
const PassText = "--"

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// writeTags writes the tag pairs of a game.
func writeTags(w io.Writer, game *othello.Game) {
	tag := func(name, value string) {
		fmt.Fprintf(w, "[%s \"%s\"]\n", name, value)
	}

	if game.Number > 0 {
		tag("Game", strconv.Itoa(game.Number))
	}
	tag("Start", engine.FormatBoard(&game.Start))
	tag("Final", engine.FormatBoard(&game.Final))
	tag("Disks", fmt.Sprintf("%d-%d", game.Final.Count(othello.Black), game.Final.Count(othello.White)))
	tag("Plies", strconv.Itoa(game.PlyCount()))
	tag("Result", game.Result.String())
}

// writeMoves writes the numbered move list followed by the result.
// A move number precedes every Black move; a game whose first move is
// White's opens with "1...".
func writeMoves(ow *OutputWriter, game *othello.Game) {
	number := 1
	for i, pm := range game.Moves {
		switch {
		case pm.Side == othello.Black:
			ow.Write(strconv.Itoa(number) + ".")
		case i == 0:
			ow.Write(strconv.Itoa(number) + "...")
		}
		ow.Write(MoveText(pm.Move))
		if pm.Side == othello.White {
			number++
		}
	}
	ow.Write(game.Result.String())
}

// MoveText returns the text of a move: its cell name, or PassText.
func MoveText(m othello.Move) string {
	if m.IsPass() {
		return PassText
	}
	return othello.CellName(m.Pos)
}
