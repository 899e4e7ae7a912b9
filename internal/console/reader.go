// Package console provides line-oriented input for the interactive menu.
package console

import (
	"bufio"
	"io"
	"strings"
)

// LineReader yields one line of user input at a time. Implementations strip
// the line terminator and nothing else. io.EOF is returned once input is
// exhausted and no partial line remains.
type LineReader interface {
	ReadLine() (string, error)
}

// Reader reads lines from any io.Reader, typically os.Stdin.
type Reader struct {
	r *bufio.Reader
}

// NewReader wraps r in a LineReader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadLine returns the next line without "\n" or "\r\n". A final line with no
// terminator is returned as-is; the following call reports io.EOF.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ScriptedReader replays a fixed list of lines, then reports io.EOF.
type ScriptedReader struct {
	lines []string
	pos   int
}

// NewScriptedReader returns a LineReader over lines.
func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{lines: lines}
}

func (s *ScriptedReader) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// Remaining reports how many scripted lines have not been read yet.
func (s *ScriptedReader) Remaining() int {
	return len(s.lines) - s.pos
}
