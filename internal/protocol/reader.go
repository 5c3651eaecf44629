package protocol

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/othello-go/internal/errors"
)

// Reader parses directives from a line stream.
type Reader struct {
	scanner *bufio.Scanner
	source  string
	line    int
}

// NewReader creates a reader on r. source names the stream in errors.
func NewReader(r io.Reader, source string) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), source: source}
}

// Next returns the next non-blank directive. It returns io.EOF once the
// stream is exhausted. A malformed line yields a *errors.ParseError carrying
// the line number; reading may continue after it.
func (r *Reader) Next() (Directive, error) {
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		d, err := Parse(text)
		if err != nil {
			var pe *errors.ParseError
			if errors.As(err, &pe) {
				pe.Source = r.source
				pe.Line = r.line
			}
			return Directive{}, err
		}
		return d, nil
	}
	if err := r.scanner.Err(); err != nil {
		return Directive{}, err
	}
	return Directive{}, io.EOF
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}
