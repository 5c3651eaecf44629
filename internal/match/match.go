// Package match plays engine-versus-engine games in parallel and
// summarises the results.
package match

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/othello-go/internal/config"
	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/eval"
	"github.com/lgbarn/othello-go/internal/game"
	"github.com/lgbarn/othello-go/internal/hashing"
	"github.com/lgbarn/othello-go/internal/othello"
	"github.com/lgbarn/othello-go/internal/output"
	"github.com/lgbarn/othello-go/internal/search"
	"github.com/lgbarn/othello-go/internal/worker"
)

// Runner plays the games of one match.
type Runner struct {
	cfg     *config.Config
	log     zerolog.Logger
	start   *othello.Board
	eval    *eval.Evaluator
	dups    *hashing.SharedDetector
	records output.GameWriter

	// opening returns the player for the random opening plies of a game.
	opening func() game.Player
}

// NewRunner creates a runner for the match described by cfg.
func NewRunner(cfg *config.Config, log zerolog.Logger) (*Runner, error) {
	start := othello.NewBoard()
	if cfg.StartPosition != "" {
		b, err := engine.ParseBoard(cfg.StartPosition)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
		start = b
	}

	r := &Runner{
		cfg:     cfg,
		log:     log,
		start:   start,
		eval:    eval.New(cfg.Weights),
		dups:    hashing.NewSharedDetector(0),
		opening: func() game.Player { return game.NewRandomPlayer() },
	}
	if w := cfg.Match.RecordFile; w != nil {
		if cfg.Match.JSONRecords {
			r.records = output.NewJSONWriter(w)
		} else {
			r.records = output.NewTextWriter(w, output.DefaultLineLength)
		}
	}
	return r, nil
}

// Run plays cfg.Match.Games games across cfg.Match.Workers workers.
// A cancelled ctx stops the match early; the summary covers the games that
// finished and the error is ctx's.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Summary, error) {
	r, err := NewRunner(cfg, log)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx)
}

// Run plays the match.
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	began := time.Now()
	summary := &Summary{}
	games := r.cfg.Match.Games
	workers := r.cfg.Match.Workers

	r.log.Info().
		Int("games", games).
		Int("workers", workers).
		Int("random_opening", r.cfg.Match.RandomOpening).
		Int("depth", r.cfg.MaxDepth).
		Msg("starting match")

	g, gctx := errgroup.WithContext(ctx)
	pool := worker.NewPool(r.playGame, worker.WithWorkers(workers), worker.WithBufferSize(2*workers))
	pool.Start(gctx)

	g.Go(func() error {
		defer pool.Close()
		for i := 0; i < games; i++ {
			if err := pool.Submit(gctx, worker.WorkItem{Index: i, Start: r.start}); err != nil {
				return err
			}
		}
		return nil
	})

	g.Go(func() error {
		var writeErr error
		for res := range pool.Results() {
			summary.Add(res)
			r.logResult(res)
			if writeErr != nil || r.records == nil || res.Game == nil || res.Error != nil {
				continue
			}
			if err := r.records.WriteGame(res.Game); err != nil {
				writeErr = errors.Wrap(err, "write game record")
				pool.Stop()
			}
		}
		return writeErr
	})

	err := g.Wait()
	if r.records != nil {
		if cerr := r.records.Close(); err == nil {
			err = cerr
		}
	}
	summary.Elapsed = time.Since(began)

	r.log.Info().
		Int("games", summary.Games).
		Int("black_wins", summary.BlackWins).
		Int("white_wins", summary.WhiteWins).
		Int("draws", summary.Draws).
		Int("duplicates", summary.Duplicates).
		Int("errors", summary.Errors).
		Float64("avg_plies", summary.AveragePlies()).
		Dur("elapsed", summary.Elapsed).
		Msg("match finished")

	if err == nil {
		err = ctx.Err()
	}
	return summary, err
}

// playGame is the worker.ProcessFunc of a match. Every game gets its own
// searcher; the evaluator and the duplicate detector are shared.
func (r *Runner) playGame(ctx context.Context, item worker.WorkItem) worker.ProcessResult {
	began := time.Now()

	searcher := search.New(r.eval, search.WithMaxDepth(r.cfg.MaxDepth))
	player := game.WithOpening(r.opening(),
		game.NewEnginePlayer(searcher, r.cfg.MoveBudget()),
		r.cfg.Match.RandomOpening)

	g, err := game.Play(ctx, item.Start, player, player)
	g.Number = item.Index + 1

	res := worker.ProcessResult{
		Index:   item.Index,
		Game:    g,
		Elapsed: time.Since(began),
	}
	if err != nil {
		res.Error = &errors.GameError{Err: err, GameNum: g.Number, PlyNum: g.PlyCount() + 1}
		return res
	}
	res.DuplicateOf, res.Duplicate = r.dups.Check(g)
	return res
}

func (r *Runner) logResult(res worker.ProcessResult) {
	if res.Error != nil {
		r.log.Warn().Err(res.Error).Int("game", res.Index+1).Msg("game failed")
		return
	}
	r.log.Debug().
		Int("game", res.Game.Number).
		Str("result", res.Game.Result.String()).
		Int("black", res.Game.Final.Count(othello.Black)).
		Int("white", res.Game.Final.Count(othello.White)).
		Int("plies", res.Game.PlyCount()).
		Int("duplicate_of", res.DuplicateOf).
		Dur("elapsed", res.Elapsed).
		Msg("game finished")
}
