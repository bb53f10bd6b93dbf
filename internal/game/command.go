// Package game provides the main loop and the command interpreter.
package game

import (
	"github.com/asciicast/asciicast/internal/entity"
)

const (
	// MoveSpeed is the distance covered by one forward or backward step.
	MoveSpeed = 0.25
	// RotSpeed is the angle in radians turned by one left or right command.
	RotSpeed = 0.15
)

// Command is a single player action.
type Command int

const (
	// CmdNone is any character that is not a known command.
	CmdNone Command = iota
	CmdForward
	CmdBackward
	CmdTurnLeft
	CmdTurnRight
	CmdQuit
)

// ParseCommand maps an input character to a command.
// Movement letters are case-sensitive, quit is not.
func ParseCommand(r rune) Command {
	switch r {
	case 'w':
		return CmdForward
	case 's':
		return CmdBackward
	case 'a':
		return CmdTurnLeft
	case 'd':
		return CmdTurnRight
	case 'q', 'Q':
		return CmdQuit
	default:
		return CmdNone
	}
}

// String returns a human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdForward:
		return "forward"
	case CmdBackward:
		return "backward"
	case CmdTurnLeft:
		return "turn_left"
	case CmdTurnRight:
		return "turn_right"
	case CmdQuit:
		return "quit"
	default:
		return "none"
	}
}

// Apply mutates the player for one command. Blocked moves are silently dropped.
func Apply(c Command, p *entity.Player, b entity.Blocker) {
	switch c {
	case CmdForward:
		p.MoveForward(b, MoveSpeed)
	case CmdBackward:
		p.MoveBackward(b, MoveSpeed)
	case CmdTurnLeft:
		p.Rotate(RotSpeed)
	case CmdTurnRight:
		p.Rotate(-RotSpeed)
	}
}
