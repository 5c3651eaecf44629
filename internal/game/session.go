package game

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/lgbarn/othello-go/internal/config"
	"github.com/lgbarn/othello-go/internal/engine"
	"github.com/lgbarn/othello-go/internal/errors"
	"github.com/lgbarn/othello-go/internal/eval"
	"github.com/lgbarn/othello-go/internal/othello"
	"github.com/lgbarn/othello-go/internal/protocol"
	"github.com/lgbarn/othello-go/internal/search"
)

// Session plays one game against a referee. It owns the board for the
// whole game; moves read from the referee are validated against it and
// the agent's moves are searched on it.
type Session struct {
	cfg    *config.Config
	board  *othello.Board
	agent  othello.Colour
	engine Player
	out    *protocol.Writer
	log    zerolog.Logger
	record *othello.Game
}

// NewSession creates a session from cfg. The agent's moves go to out;
// progress is logged to log.
func NewSession(cfg *config.Config, out *protocol.Writer, log zerolog.Logger) (*Session, error) {
	board := othello.NewBoard()
	if cfg.StartPosition != "" {
		b, err := engine.ParseBoard(cfg.StartPosition)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
		board = b
	}

	searcher := search.New(eval.New(cfg.Weights),
		search.WithMaxDepth(cfg.MaxDepth),
		search.WithLogger(log))

	return &Session{
		cfg:    cfg,
		board:  board,
		engine: NewEnginePlayer(searcher, cfg.MoveBudget()),
		out:    out,
		log:    log,
		record: othello.NewGame(board),
	}, nil
}

// SetEngine replaces the player that moves for the agent.
func (s *Session) SetEngine(p Player) {
	s.engine = p
}

// Board returns the current position.
func (s *Session) Board() *othello.Board {
	return s.board
}

// Agent returns the colour the agent was initialised with.
func (s *Session) Agent() othello.Colour {
	return s.agent
}

// Record returns the game played so far.
func (s *Session) Record() *othello.Game {
	return s.record
}

// input is one line delivered by the reader goroutine.
type input struct {
	d   protocol.Directive
	err error
}

// Run performs the initialisation handshake and plays the game to its end,
// finishing with Black's disk count. Directives are read from r.
func (s *Session) Run(ctx context.Context, r io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := readInput(ctx, protocol.NewReader(r, "input"))

	if err := s.handshake(ctx, in); err != nil {
		return err
	}
	return s.play(ctx, in)
}

// readInput scans directives on its own goroutine so the game loop can
// observe ctx while waiting for the referee. The goroutine exits at end of
// input, on a read failure, or once ctx is done and it next has a line to
// deliver.
func readInput(ctx context.Context, r *protocol.Reader) <-chan input {
	ch := make(chan input)
	go func() {
		defer close(ch)
		for {
			d, err := r.Next()
			if err == io.EOF {
				return
			}
			select {
			case ch <- input{d: d, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, errors.ErrInvalidDirective) {
				return
			}
		}
	}()
	return ch
}

// next returns the next directive that is not a comment. Malformed lines
// are returned as errors wrapping errors.ErrInvalidDirective.
func (s *Session) next(ctx context.Context, in <-chan input) (protocol.Directive, error) {
	for {
		select {
		case <-ctx.Done():
			return protocol.Directive{}, ctx.Err()
		case msg, ok := <-in:
			if !ok {
				return protocol.Directive{}, errors.ErrInputClosed
			}
			if msg.err != nil {
				return protocol.Directive{}, msg.err
			}
			if msg.d.Kind == protocol.Comment {
				s.log.Debug().Str("text", msg.d.Text).Msg("referee comment")
				continue
			}
			return msg.d, nil
		}
	}
}

func (s *Session) handshake(ctx context.Context, in <-chan input) error {
	s.comment("Please initialize the agent color [I B] or [I W].")
	for {
		d, err := s.next(ctx, in)
		if err != nil {
			if !errors.Is(err, errors.ErrInvalidDirective) {
				return err
			}
			s.log.Warn().Err(err).Msg("expected I B or I W")
			continue
		}

		if d.Kind == protocol.InitBlack || d.Kind == protocol.InitWhite {
			s.agent = d.Side
			s.log.Info().
				Str("agent", s.agent.String()).
				Str("opponent", s.agent.Opposite().String()).
				Msg("initialized")
			return s.out.Ready(s.agent)
		}
		s.log.Warn().Str("got", d.String()).Msg("expected I B or I W")
	}
}

func (s *Session) play(ctx context.Context, in <-chan input) error {
	s.report()

	for !engine.IsGameOver(s.board) {
		side := s.board.ToMove
		ply := s.board.Ply + 1
		s.log.Debug().Int("ply", ply).Msgf("%s turn", side)

		m, err := s.nextMove(ctx, in, side)
		if err != nil {
			return &errors.GameError{Err: err, PlyNum: ply}
		}
		if err := engine.PlayMove(s.board, m); err != nil {
			return &errors.GameError{Err: err, PlyNum: ply, MoveText: m.String()}
		}
		s.record.Record(side, m, s.board)

		if side == s.agent {
			if err := s.out.Move(side, m); err != nil {
				return err
			}
		} else if !s.cfg.Interactive {
			s.log.Info().Str("side", side.String()).Str("move", m.String()).Msg("opponent played")
		}
		s.report()
	}

	s.record.Result = engine.Winner(s.board)
	black := s.board.Count(othello.Black)
	s.log.Info().
		Int("black", black).
		Int("white", s.board.Count(othello.White)).
		Str("result", s.record.Result.String()).
		Msg("game over")
	return s.out.EndGame(black)
}

// nextMove returns the move for side: searched when the agent is to move
// or the agent plays both sides, read from the referee otherwise.
func (s *Session) nextMove(ctx context.Context, in <-chan input, side othello.Colour) (othello.Move, error) {
	if side == s.agent || !s.cfg.Interactive {
		return s.engine.Next(ctx, s.board, side)
	}
	return s.opponentMove(ctx, in, side)
}

// opponentMove reads directives until one is a legal move or pass for side.
func (s *Session) opponentMove(ctx context.Context, in <-chan input, side othello.Colour) (othello.Move, error) {
	for {
		d, err := s.next(ctx, in)
		switch {
		case errors.Is(err, errors.ErrInvalidDirective):
			s.log.Warn().Err(err).Msg("unreadable move")
		case err != nil:
			return othello.Move{}, err
		case d.Kind == protocol.EndGame:
			return othello.Move{}, errors.Wrapf(errors.ErrUnexpectedDirective, "game ended by referee with %d black disks", d.Count)
		case !d.IsPlay() || d.Side != side:
			s.log.Warn().Str("got", d.String()).Str("want", side.String()).Msg("not a move for the side to play")
		case !engine.IsLegal(s.board, side, d.Move):
			s.log.Warn().Str("move", d.Move.String()).Msg("illegal move")
		default:
			return d.Move, nil
		}
		s.comment("Invalid move, please try again.")
	}
}

// report draws the board and the disk counts as comments.
func (s *Session) report() {
	if s.cfg.Verbosity < 1 {
		return
	}
	for _, line := range engine.RenderBoard(s.board) {
		s.comment(line)
	}
	s.comment(fmt.Sprintf("Score (Black): %d", s.board.Count(othello.Black)))
	s.comment(fmt.Sprintf("Score (White): %d", s.board.Count(othello.White)))
}

func (s *Session) comment(text string) {
	if err := s.out.Comment(text); err != nil {
		s.log.Error().Err(err).Msg("write failed")
	}
}
