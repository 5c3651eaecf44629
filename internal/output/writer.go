// Package output writes records of finished games.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/lgbarn/othello-go/internal/othello"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
// Implementations are safe for concurrent use.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(game *othello.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// DefaultLineLength is the move text width used by NewTextWriter callers
// that have no preference.
const DefaultLineLength = 80

// TextWriter writes games as tag pairs followed by numbered move text.
type TextWriter struct {
	mu            sync.Mutex
	w             io.Writer
	maxLineLength int
}

// NewTextWriter creates a new text writer wrapping move text at maxLineLength.
func NewTextWriter(w io.Writer, maxLineLength int) *TextWriter {
	return &TextWriter{w: w, maxLineLength: maxLineLength}
}

// WriteGame writes a game in text format.
func (tw *TextWriter) WriteGame(game *othello.Game) error {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	writeTags(tw.w, game)
	if _, err := fmt.Fprintln(tw.w); err != nil {
		return err
	}
	ow := NewOutputWriter(tw.w, tw.maxLineLength)
	writeMoves(ow, game)
	ow.NewLine()
	_, err := fmt.Fprintln(tw.w)
	return err
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	mu     sync.Mutex
	w      io.Writer
	games  []*othello.Game
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*othello.Game, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(game *othello.Game) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(GameToJSON(game))
	}

	jw.games = append(jw.games, game)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	if jw.single || len(jw.games) == 0 {
		return nil
	}

	out := &JSONOutput{
		Games: make([]*JSONGame, 0, len(jw.games)),
	}
	for _, game := range jw.games {
		out.Games = append(out.Games, GameToJSON(game))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(out)

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
