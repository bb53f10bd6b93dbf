package raycast

import "strings"

// FrameBuffer is a flat character grid indexed by row*width+col.
type FrameBuffer struct {
	width  int
	height int
	cells  []rune
}

// NewFrameBuffer allocates a blank buffer. Dimensions below 1 are raised to 1.
func NewFrameBuffer(width, height int) *FrameBuffer {
	width = max(width, 1)
	height = max(height, 1)
	fb := &FrameBuffer{
		width:  width,
		height: height,
		cells:  make([]rune, width*height),
	}
	fb.Clear()
	return fb
}

// Width returns the number of columns.
func (fb *FrameBuffer) Width() int { return fb.width }

// Height returns the number of rows.
func (fb *FrameBuffer) Height() int { return fb.height }

// Clear fills the buffer with blanks.
func (fb *FrameBuffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = ' '
	}
}

// Set writes a glyph. Writes outside the buffer are dropped.
func (fb *FrameBuffer) Set(x, y int, r rune) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	fb.cells[y*fb.width+x] = r
}

// At returns the glyph at a cell, or a blank outside the buffer.
func (fb *FrameBuffer) At(x, y int) rune {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return ' '
	}
	return fb.cells[y*fb.width+x]
}

// Overlay writes text from the start of the buffer, dropping runes past the first row.
func (fb *FrameBuffer) Overlay(text string) {
	i := 0
	for _, r := range text {
		if i >= fb.width {
			return
		}
		fb.cells[i] = r
		i++
	}
}

// Row returns one row as a string.
func (fb *FrameBuffer) Row(y int) string {
	if y < 0 || y >= fb.height {
		return ""
	}
	return string(fb.cells[y*fb.width : (y+1)*fb.width])
}

// String returns all rows joined by newlines, with a trailing newline.
func (fb *FrameBuffer) String() string {
	var b strings.Builder
	b.Grow((fb.width + 1) * fb.height)
	for y := 0; y < fb.height; y++ {
		b.WriteString(fb.Row(y))
		b.WriteByte('\n')
	}
	return b.String()
}
