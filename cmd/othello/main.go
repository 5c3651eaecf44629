// othello is an Othello playing agent that talks to a referee over
// standard input and output.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/lgbarn/othello-go/internal/config"
	"github.com/lgbarn/othello-go/internal/game"
	"github.com/lgbarn/othello-go/internal/logging"
	"github.com/lgbarn/othello-go/internal/match"
	"github.com/lgbarn/othello-go/internal/protocol"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("othello version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up log and records files
	setupLogFile(cfg)
	closeRecords := setupRecordsFile(cfg)
	defer closeRecords()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeRecords()
		os.Exit(1)
	}
}

// run plays a refereed game, or a match when one is configured.
func run(ctx context.Context, cfg *config.Config) error {
	out := protocol.NewWriter(cfg.OutputFile)
	log, flush := newLogger(cfg, out)
	defer flush()

	if cfg.Match.Enabled() {
		summary, err := match.Run(ctx, cfg, log)
		if err != nil {
			return err
		}
		return out.Comment(summary.String())
	}

	session, err := game.NewSession(cfg, out, log)
	if err != nil {
		return err
	}
	return session.Run(ctx, cfg.InputFile)
}

// newLogger builds the run's logger. Without a log file, log lines travel
// to the referee as comments. The returned func flushes a partial line.
func newLogger(cfg *config.Config, out *protocol.Writer) (zerolog.Logger, func()) {
	if cfg.LogFile != nil {
		return logging.ForVerbosity(cfg.LogFile, cfg.Verbosity), func() {}
	}
	cw := protocol.NewCommentWriter(out)
	return logging.ForVerbosity(cw, cfg.Verbosity), func() { _ = cw.Flush() }
}

func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupRecordsFile opens the match records file. The returned func closes
// it and is safe to call more than once.
func setupRecordsFile(cfg *config.Config) func() {
	if *recordsFile == "" {
		return func() {}
	}
	file, err := os.Create(*recordsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating records file %s: %v\n", *recordsFile, err)
		os.Exit(1)
	}
	cfg.Match.RecordFile = file

	var closed bool
	return func() {
		if !closed {
			closed = true
			closeQuietly(file)
		}
	}
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: othello [options] [-m_interactive] [game-time-seconds]\n\n")
	fmt.Fprintf(os.Stderr, "An Othello agent speaking the referee line protocol on stdin/stdout.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nReferee directives:\n")
	fmt.Fprintf(os.Stderr, "  I B | I W        initialise the agent's colour\n")
	fmt.Fprintf(os.Stderr, "  B d 3 | W e 6    a move\n")
	fmt.Fprintf(os.Stderr, "  B | W            a pass\n")
	fmt.Fprintf(os.Stderr, "  C text           a comment\n")
	fmt.Fprintf(os.Stderr, "  n                end of game with n black disks\n")
}
