// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture turns low level pointer Events into the higher level
actions the widgets react to, such as clicks and drag-to-pan
movements.
*/
package gesture

import (
	"sashui.org/geom"
	"sashui.org/io/pointer"
)

// Drag detects drag-to-pan gestures performed with a designated
// mouse button. The anchor, the content point under the pointer when
// the gesture started, is recorded once per press and reused for the
// whole gesture; movement is reported as the incremental motion since
// the previous event so that repeated drag reports of the same anchor
// do not compound.
type Drag struct {
	// Button triggers the gesture. The zero value selects the
	// middle button.
	Button pointer.Buttons

	anchored bool
	anchor   geom.Point
}

// Pan is a drag movement.
type Pan struct {
	// Anchor is the local point recorded at the start of the
	// gesture.
	Anchor geom.Point
	// Delta is the motion since the previous event.
	Delta geom.Point
}

// Click detects click gestures.
type Click struct {
	pressed bool
}

// ClickEvent reports a completed click.
type ClickEvent struct {
	Position geom.Point
}

func (d *Drag) button() pointer.Buttons {
	if d.Button == 0 {
		return pointer.ButtonMiddle
	}
	return d.Button
}

// Dragging reports whether an anchor is currently held.
func (d *Drag) Dragging() bool {
	return d.anchored
}

// Update feeds a pointer event, expressed in the local frame of the
// receiving widget, to the recognizer. bounds is the local rectangle
// inside which gestures may start: drag events whose press origin
// lies outside of it are ignored so that gestures started on another
// widget never pan this one. The returned Pan is valid only when the
// second return value is true.
func (d *Drag) Update(bounds geom.Box, e pointer.Event) (Pan, bool) {
	switch e.Kind {
	case pointer.Press:
		if !e.Buttons.Contain(d.button()) {
			break
		}
		// A new press always resets the anchor, even when one is
		// left over from an abandoned gesture.
		d.anchor = e.Position
		d.anchored = true
	case pointer.Drag:
		if !e.Buttons.Contain(d.button()) {
			break
		}
		if !bounds.ContainsPoint(e.Start) {
			break
		}
		if !d.anchored {
			d.anchor = e.Start
			d.anchored = true
		}
		return Pan{Anchor: d.anchor, Delta: e.Motion}, true
	case pointer.Release, pointer.Drop:
		d.anchored = false
	}
	return Pan{}, false
}

// Update feeds a local pointer event to the recognizer and reports a
// click when a press is followed by a release.
func (c *Click) Update(bounds geom.Box, e pointer.Event) (ClickEvent, bool) {
	switch e.Kind {
	case pointer.Press:
		if !e.Buttons.Contain(pointer.ButtonLeft) || !bounds.ContainsPoint(e.Position) {
			break
		}
		c.pressed = true
	case pointer.Release, pointer.Drop:
		wasPressed := c.pressed
		c.pressed = false
		if wasPressed && bounds.ContainsPoint(e.Position) {
			return ClickEvent{Position: e.Position}, true
		}
	}
	return ClickEvent{}, false
}

// Pressed reports whether a press is in progress.
func (c *Click) Pressed() bool {
	return c.pressed
}
