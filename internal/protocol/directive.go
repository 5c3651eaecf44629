// Package protocol reads and writes the line-oriented referee protocol.
//
// The referee and the agent exchange one directive per line:
//
//	I B | I W     initialise; the agent plays the named colour
//	R B | R W     agent is ready
//	B d 3         Black plays d3
//	B             Black passes
//	C text        comment, ignored by the receiver
//	34            game over; Black finished with 34 disks
//
// Whitespace inside a directive is not significant.
package protocol

import (
	"strconv"
	"strings"

	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/othello"
)

// Kind identifies the type of a directive.
type Kind int

const (
	Invalid Kind = iota
	InitBlack
	InitWhite
	Ready
	MoveDirective
	PassDirective
	Comment
	EndGame
)

// kindNames maps kinds to their string representations.
var kindNames = [...]string{
	Invalid:       "INVALID",
	InitBlack:     "INIT_BLACK",
	InitWhite:     "INIT_WHITE",
	Ready:         "READY",
	MoveDirective: "MOVE",
	PassDirective: "PASS",
	Comment:       "COMMENT",
	EndGame:       "END_GAME",
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Directive is one parsed protocol line.
type Directive struct {
	Kind Kind

	// Side is the colour named by an init, ready, move or pass directive.
	Side othello.Colour

	// Move is the played move for MoveDirective and PassDirective.
	Move othello.Move

	// Text is the body of a comment.
	Text string

	// Count is Black's final disk count for EndGame.
	Count int
}

// IsPlay reports whether the directive is a move or a pass.
func (d Directive) IsPlay() bool {
	return d.Kind == MoveDirective || d.Kind == PassDirective
}

// String formats the directive as it appears on the wire.
func (d Directive) String() string {
	switch d.Kind {
	case InitBlack:
		return "I B"
	case InitWhite:
		return "I W"
	case Ready:
		return FormatReady(d.Side)
	case MoveDirective, PassDirective:
		return FormatMove(d.Side, d.Move)
	case Comment:
		return FormatComment(d.Text)
	case EndGame:
		return strconv.Itoa(d.Count)
	}
	return ""
}

// Parse parses a single protocol line.
// Errors are *errors.ParseError values wrapping errors.ErrInvalidDirective.
func Parse(line string) (Directive, error) {
	trimmed := strings.TrimSpace(line)
	compact := strings.Join(strings.Fields(trimmed), "")

	if compact == "" {
		return Directive{}, invalid("directive", line)
	}

	if compact[0] == 'C' {
		return Directive{Kind: Comment, Text: strings.TrimSpace(trimmed[1:])}, nil
	}

	if n, err := strconv.Atoi(compact); err == nil {
		if n < 0 || n > othello.NumCells {
			return Directive{}, invalid("disk count 0-64", line)
		}
		return Directive{Kind: EndGame, Count: n}, nil
	}

	switch len(compact) {
	case 1:
		if side, ok := othello.ColourFromLetter(compact[0]); ok {
			return Directive{Kind: PassDirective, Side: side, Move: othello.PassMove()}, nil
		}
	case 2:
		if compact == "IB" {
			return Directive{Kind: InitBlack, Side: othello.Black}, nil
		}
		if compact == "IW" {
			return Directive{Kind: InitWhite, Side: othello.White}, nil
		}
		if compact[0] == 'R' {
			if side, ok := othello.ColourFromLetter(compact[1]); ok {
				return Directive{Kind: Ready, Side: side}, nil
			}
		}
	case 3:
		side, ok := othello.ColourFromLetter(compact[0])
		if !ok {
			break
		}
		pos, err := othello.ParseCell(compact[1:])
		if err != nil {
			return Directive{}, invalid("cell a1-h8", line)
		}
		return Directive{Kind: MoveDirective, Side: side, Move: othello.NewMove(pos)}, nil
	}

	return Directive{}, invalid("I, R, B, W, C or a disk count", line)
}

func invalid(expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidDirective,
		Expected: expected,
		Got:      got,
	}
}

// FormatMove formats a move or pass for side, e.g. "B d 3" or "W".
func FormatMove(side othello.Colour, m othello.Move) string {
	if m.IsPass() {
		return string(side.Letter())
	}
	name := othello.CellName(m.Pos)
	return string([]byte{side.Letter(), ' ', name[0], ' ', name[1]})
}

// FormatReady formats the acknowledgement of an init directive.
func FormatReady(side othello.Colour) string {
	return "R " + string(side.Letter())
}

// FormatComment formats text as a comment line.
func FormatComment(text string) string {
	if text == "" {
		return "C"
	}
	return "C " + text
}
