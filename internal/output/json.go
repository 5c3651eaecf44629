package output

import (
	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/othello"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Number     int        `json:"number,omitempty"`
	Start      string     `json:"start"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	Final      string     `json:"final"`
	BlackDisks int        `json:"blackDisks"`
	WhiteDisks int        `json:"whiteDisks"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply   int    `json:"ply"`
	Color string `json:"color"` // "black" or "white"
	Move  string `json:"move"`
	Pass  bool   `json:"pass,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to its JSON form.
func GameToJSON(game *othello.Game) *JSONGame {
	jg := &JSONGame{
		Number:     game.Number,
		Start:      engine.FormatBoard(&game.Start),
		Result:     game.Result.String(),
		PlyCount:   game.PlyCount(),
		Final:      engine.FormatBoard(&game.Final),
		BlackDisks: game.Final.Count(othello.Black),
		WhiteDisks: game.Final.Count(othello.White),
	}

	for i, pm := range game.Moves {
		color := "black"
		if pm.Side == othello.White {
			color = "white"
		}
		jg.Moves = append(jg.Moves, JSONMove{
			Ply:   i + 1,
			Color: color,
			Move:  pm.Move.String(),
			Pass:  pm.Move.IsPass(),
		})
	}
	return jg
}
