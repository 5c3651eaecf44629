package match

import (
	"fmt"
	"time"

	"github.com/lgbarn/othello-go/internal/othello"
	"github.com/lgbarn/othello-go/internal/worker"
)

// Summary aggregates the results of a match.
type Summary struct {
	Games      int // games finished, errors excluded
	BlackWins  int
	WhiteWins  int
	Draws      int
	Duplicates int // games whose final position was already seen
	Errors     int

	TotalPlies int
	BlackDisks int
	WhiteDisks int

	Elapsed time.Duration
}

// Add folds one game result into the summary.
func (s *Summary) Add(r worker.ProcessResult) {
	if r.Error != nil || r.Game == nil {
		s.Errors++
		return
	}
	s.Games++
	switch r.Game.Result {
	case othello.BlackWins:
		s.BlackWins++
	case othello.WhiteWins:
		s.WhiteWins++
	case othello.Draw:
		s.Draws++
	}
	if r.Duplicate {
		s.Duplicates++
	}
	s.TotalPlies += r.Game.PlyCount()
	s.BlackDisks += r.Game.Final.Count(othello.Black)
	s.WhiteDisks += r.Game.Final.Count(othello.White)
}

// AveragePlies returns the mean game length in plies.
func (s *Summary) AveragePlies() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalPlies) / float64(s.Games)
}

// String returns a one-line summary.
func (s *Summary) String() string {
	return fmt.Sprintf("%d games: black %d, white %d, draws %d, duplicates %d, errors %d, average %.1f plies",
		s.Games, s.BlackWins, s.WhiteWins, s.Draws, s.Duplicates, s.Errors, s.AveragePlies())
}
