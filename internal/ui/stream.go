package ui

import (
	"bufio"
	"io"
	"unicode"

	"github.com/asciicast/asciicast/internal/raycast"
)

const (
	clearHome = "\x1b[2J\x1b[H"
	prompt    = "Command (w/a/s/d - move, q - quit): "
)

// Stream writes frames as plain text with an ANSI clear/home prefix and reads
// one command character at a time from a line-buffered reader.
type Stream struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewStream creates a stream front end over the given reader and writer.
func NewStream(r io.Reader, w io.Writer) *Stream {
	return &Stream{
		in:  bufio.NewReader(r),
		out: bufio.NewWriter(w),
	}
}

// Present clears the terminal, prints every row and the command prompt.
func (s *Stream) Present(fb *raycast.FrameBuffer) error {
	s.out.WriteString(clearHome)
	for y := 0; y < fb.Height(); y++ {
		s.out.WriteString(fb.Row(y))
		s.out.WriteByte('\n')
	}
	s.out.WriteString(prompt)
	return s.out.Flush()
}

// ReadCommand returns the next non-space character, or io.EOF when input ends.
func (s *Stream) ReadCommand() (rune, error) {
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

// Close ends the prompt line.
func (s *Stream) Close() error {
	s.out.WriteByte('\n')
	return s.out.Flush()
}
