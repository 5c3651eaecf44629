package protocol

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/lgbarn/othello-go/internal/othello"
)

// Writer writes whole protocol lines to an underlying stream. It is safe for
// concurrent use; lines from different goroutines never interleave.
type Writer struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriter creates a protocol writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteLine writes line followed by a newline.
func (pw *Writer) WriteLine(line string) error {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	_, err := io.WriteString(pw.w, line+"\n")
	return err
}

// Move announces a move or pass by side.
func (pw *Writer) Move(side othello.Colour, m othello.Move) error {
	return pw.WriteLine(FormatMove(side, m))
}

// Ready acknowledges initialisation as side.
func (pw *Writer) Ready(side othello.Colour) error {
	return pw.WriteLine(FormatReady(side))
}

// Comment writes a comment line.
func (pw *Writer) Comment(text string) error {
	return pw.WriteLine(FormatComment(text))
}

// Commentf writes a formatted comment line.
func (pw *Writer) Commentf(format string, args ...any) error {
	return pw.Comment(fmt.Sprintf(format, args...))
}

// EndGame writes Black's final disk count.
func (pw *Writer) EndGame(blackDisks int) error {
	return pw.WriteLine(strconv.Itoa(blackDisks))
}

// CommentWriter adapts a Writer into an io.Writer that emits every line it
// receives as a comment. Partial lines are held until their newline arrives
// or Flush is called.
type CommentWriter struct {
	mu  sync.Mutex
	out *Writer
	buf bytes.Buffer
}

// NewCommentWriter creates a CommentWriter on out.
func NewCommentWriter(out *Writer) *CommentWriter {
	return &CommentWriter{out: out}
}

// Write implements io.Writer.
func (cw *CommentWriter) Write(p []byte) (int, error) {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	cw.buf.Write(p)
	for {
		i := bytes.IndexByte(cw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := string(bytes.TrimRight(cw.buf.Next(i+1), "\r\n"))
		if err := cw.out.Comment(line); err != nil {
			return len(p), err
		}
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (cw *CommentWriter) Flush() error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if cw.buf.Len() == 0 {
		return nil
	}
	line := cw.buf.String()
	cw.buf.Reset()
	return cw.out.Comment(line)
}
