// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements the pointer event model consumed by the
// gesture recognizers. Raw input decoding belongs to the windowing
// collaborator; events arriving here already carry positions in the
// global coordinate frame.
package pointer

import (
	"strings"

	"sashui.org/geom"
)

// Event is a pointer event.
type Event struct {
	Kind Kind
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the current pointer position in the global
	// coordinate frame.
	Position geom.Point
	// Start is the position at which the pressed button went down.
	// It is reported unchanged on every drag event of a gesture.
	Start geom.Point
	// Motion is the incremental movement since the previous event of
	// the same gesture.
	Motion geom.Point
}

// Kind of an Event.
type Kind uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Press of a button.
	Press Kind = iota
	// Release of a button.
	Release
	// Move of the pointer with no button held.
	Move
	// Drag is a move with at least one button held.
	Drag
	// Drop ends a drag gesture.
	Drop
)

const (
	ButtonLeft Buttons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Contain reports whether the set b contains all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonLeft) {
		strs = append(strs, "ButtonLeft")
	}
	if b.Contain(ButtonRight) {
		strs = append(strs, "ButtonRight")
	}
	if b.Contain(ButtonMiddle) {
		strs = append(strs, "ButtonMiddle")
	}
	return strings.Join(strs, "|")
}

func (k Kind) String() string {
	switch k {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Drag:
		return "Drag"
	case Drop:
		return "Drop"
	default:
		panic("unreachable")
	}
}
