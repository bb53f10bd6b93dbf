// Package ui provides the terminal front ends that show frames and read commands.
package ui

import (
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/asciicast/asciicast/internal/gamedata"
	"github.com/asciicast/asciicast/internal/raycast"
)

// Screen draws frames with tcell and turns key presses into commands.
type Screen struct {
	screen  tcell.Screen
	palette *gamedata.Palette
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(palette *gamedata.Palette) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return wrapScreen(s, palette), nil
}

// wrapScreen adopts an initialized tcell screen.
func wrapScreen(s tcell.Screen, palette *gamedata.Palette) *Screen {
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, palette: palette}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() error {
	s.screen.Fini()
	return nil
}

// Present replaces the screen contents with the frame.
func (s *Screen) Present(fb *raycast.FrameBuffer) error {
	s.screen.Clear()

	statusStyle := tcell.StyleDefault.Foreground(s.palette.Status()).Bold(true)
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			r := fb.At(x, y)
			style := tcell.StyleDefault.Foreground(s.palette.Color(r))
			if y == 0 {
				style = statusStyle
			}
			s.screen.SetContent(x, y, r, nil, style)
		}
	}

	s.screen.Show()
	return nil
}

// ReadCommand blocks until a key maps to a command.
// It returns io.EOF once the screen has been finalized.
func (s *Screen) ReadCommand() (rune, error) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return 0, io.EOF
		case *tcell.EventKey:
			if cmd, ok := commandForKey(ev); ok {
				return cmd, nil
			}
		case *tcell.EventResize:
			s.screen.Sync()
		}
	}
}

// commandForKey maps arrows and control keys onto the single-letter commands.
func commandForKey(ev *tcell.EventKey) (rune, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 'q', true
	case tcell.KeyUp:
		return 'w', true
	case tcell.KeyDown:
		return 's', true
	case tcell.KeyLeft:
		return 'a', true
	case tcell.KeyRight:
		return 'd', true
	case tcell.KeyRune:
		return ev.Rune(), true
	default:
		return 0, false
	}
}
