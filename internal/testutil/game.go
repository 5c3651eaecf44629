package testutil

import (
	"strings"
)

// Script joins referee lines into an input stream, one directive per line.
func Script(lines ...string) *strings.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// OutputLines splits agent output into lines without the trailing newline.
func OutputLines(out string) []string {
	out = strings.TrimSuffix(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Directives returns the output lines that are not comments.
func Directives(out string) []string {
	var lines []string
	for _, l := range OutputLines(out) {
		if !isComment(l) {
			lines = append(lines, l)
		}
	}
	return lines
}

// Comments returns the bodies of the comment lines in out.
func Comments(out string) []string {
	var lines []string
	for _, l := range OutputLines(out) {
		if isComment(l) {
			lines = append(lines, strings.TrimSpace(strings.TrimPrefix(l, "C")))
		}
	}
	return lines
}

func isComment(line string) bool {
	return strings.HasPrefix(line, "C")
}
