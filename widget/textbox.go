// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"golang.org/x/image/font"

	"sashui.org/geom"
	"sashui.org/io/event"
)

// CursorMotion is the direction of a cursor movement in a TextBox.
type CursorMotion uint8

const (
	CursorLeft CursorMotion = iota
	CursorRight
)

// TextBox is a single line text editor. The text is held as runes so
// that the cursor index always sits on a character boundary.
//
// The cursor becomes visible when the box grabs the keyboard and
// hides when it releases it. An active selection spans the interval
// between the selection start and the cursor, in either order; the
// displayed text decomposes into the left, selected and right parts.
type TextBox struct {
	Core
	face font.Face

	text        []rune
	cursorIndex int

	cursorVisible bool

	selectionActive bool
	selectionStart  int

	textChanged   bool
	cursorChanged bool
}

// NewTextBox returns a text box editing text with the default font.
func NewTextBox(name, text string, q *event.Queue) (*TextBox, error) {
	face, err := newFace(DefaultFontSize)
	if err != nil {
		return nil, err
	}
	t := &TextBox{
		face:        face,
		text:        []rune(text),
		textChanged: true,
	}
	t.init(t, name, q)
	t.SetSizeHint(measureText(face, text))
	return t, nil
}

// Text returns the edited text.
func (t *TextBox) Text() string {
	defer t.geo.scope()()
	return string(t.text)
}

// CursorIndex returns the rune index of the cursor, between 0 and
// the text length inclusive.
func (t *TextBox) CursorIndex() int {
	defer t.geo.scope()()
	return t.cursorIndex
}

// CursorVisible reports whether the cursor is displayed.
func (t *TextBox) CursorVisible() bool {
	defer t.geo.scope()()
	return t.cursorVisible
}

// GrabKeyboard marks the box as the keyboard focus target and shows
// the cursor.
func (t *TextBox) GrabKeyboard() {
	t.updateCursorState(true)
}

// ReleaseKeyboard relinquishes the keyboard focus and hides the
// cursor.
func (t *TextBox) ReleaseKeyboard() {
	t.updateCursorState(false)
}

func (t *TextBox) updateCursorState(visible bool) {
	func() {
		defer t.geo.scope()()
		t.cursorVisible = visible
	}()
	t.RequestRepaint()
}

// MoveCursor moves the cursor one character in the given direction,
// or to the corresponding end of the text when fastForward is set.
func (t *TextBox) MoveCursor(motion CursorMotion, fastForward bool) {
	moved := func() bool {
		defer t.geo.scope()()
		if len(t.text) == 0 {
			return t.moveCursorTo(0)
		}
		switch motion {
		case CursorLeft:
			if fastForward {
				return t.moveCursorTo(0)
			}
			return t.moveCursorTo(t.cursorIndex - 1)
		case CursorRight:
			if fastForward {
				return t.moveCursorTo(len(t.text))
			}
			return t.moveCursorTo(t.cursorIndex + 1)
		}
		return false
	}()
	if moved {
		t.RequestRepaint()
	}
}

// moveCursorTo clamps pos to the text bounds and assigns it to the
// cursor, raising the dirty flags on an effective move. Callers hold
// the geometry lock.
func (t *TextBox) moveCursorTo(pos int) bool {
	if pos < 0 {
		pos = 0
	}
	if pos > len(t.text) {
		pos = len(t.text)
	}
	if pos == t.cursorIndex {
		return false
	}
	t.cursorIndex = pos
	t.textChanged = true
	t.cursorChanged = true
	return true
}

// InsertRune inserts r at the cursor. The cursor moves past the
// inserted character.
func (t *TextBox) InsertRune(r rune) {
	func() {
		defer t.geo.scope()()
		t.text = append(t.text[:t.cursorIndex], append([]rune{r}, t.text[t.cursorIndex:]...)...)
		t.cursorIndex++
		t.textChanged = true
	}()
	t.SetSizeHint(measureText(t.face, t.Text()))
	t.RequestRepaint()
}

// Backspace removes the character before the cursor, if any.
func (t *TextBox) Backspace() {
	changed := func() bool {
		defer t.geo.scope()()
		if t.cursorIndex == 0 {
			return false
		}
		t.text = append(t.text[:t.cursorIndex-1], t.text[t.cursorIndex:]...)
		t.cursorIndex--
		t.textChanged = true
		t.cursorChanged = true
		return true
	}()
	if changed {
		t.SetSizeHint(measureText(t.face, t.Text()))
		t.RequestRepaint()
	}
}

// Delete removes the character at the cursor, if any.
func (t *TextBox) Delete() {
	changed := func() bool {
		defer t.geo.scope()()
		if t.cursorIndex >= len(t.text) {
			return false
		}
		t.text = append(t.text[:t.cursorIndex], t.text[t.cursorIndex+1:]...)
		t.textChanged = true
		return true
	}()
	if changed {
		t.SetSizeHint(measureText(t.face, t.Text()))
		t.RequestRepaint()
	}
}

// StartSelection anchors a selection at the current cursor position.
func (t *TextBox) StartSelection() {
	defer t.geo.scope()()
	t.selectionActive = true
	t.selectionStart = t.cursorIndex
}

// StopSelection ends the active selection. Stopping a selection that
// was never started is reported and ignored.
func (t *TextBox) StopSelection() {
	changed := func() bool {
		defer t.geo.scope()()
		if !t.selectionActive {
			t.logger.Warn("stopping selection while none has been started")
			return false
		}
		t.selectionActive = false
		if t.selectionStart == t.cursorIndex {
			return false
		}
		t.textChanged = true
		t.cursorChanged = true
		return true
	}()
	if changed {
		t.RequestRepaint()
	}
}

// SelectionActive reports whether a selection is in progress.
func (t *TextBox) SelectionActive() bool {
	defer t.geo.scope()()
	return t.selectionActive
}

// selectionBounds returns the interval of the text covered by the
// cursor and the selection anchor. Callers hold the geometry lock.
func (t *TextBox) selectionBounds() (lo, hi int) {
	lo, hi = t.cursorIndex, t.cursorIndex
	if t.selectionActive {
		if t.selectionStart < lo {
			lo = t.selectionStart
		}
		if t.selectionStart > hi {
			hi = t.selectionStart
		}
	}
	return lo, hi
}

// LeftText returns the part of the text before both the cursor and
// the selection anchor.
func (t *TextBox) LeftText() string {
	defer t.geo.scope()()
	lo, _ := t.selectionBounds()
	return string(t.text[:lo])
}

// SelectedText returns the part of the text covered by the active
// selection, empty when no selection is in progress.
func (t *TextBox) SelectedText() string {
	defer t.geo.scope()()
	if !t.selectionActive {
		return ""
	}
	lo, hi := t.selectionBounds()
	return string(t.text[lo:hi])
}

// RightText returns the part of the text after both the cursor and
// the selection anchor.
func (t *TextBox) RightText() string {
	defer t.geo.scope()()
	_, hi := t.selectionBounds()
	return string(t.text[hi:])
}

// TextChanged reports whether the text must be re-rendered.
func (t *TextBox) TextChanged() bool {
	defer t.geo.scope()()
	return t.textChanged
}

// CursorChanged reports whether the cursor must be re-rendered.
func (t *TextBox) CursorChanged() bool {
	defer t.geo.scope()()
	return t.cursorChanged
}

// ClearDirty resets the dirty flags once the box has been rendered.
func (t *TextBox) ClearDirty() {
	defer t.geo.scope()()
	t.textChanged = false
	t.cursorChanged = false
}

// CursorBox returns the rectangle at which the cursor is blitted,
// local to the box's area of size env: right after the text
// preceding it, aligned on the left edge.
func (t *TextBox) CursorBox(env geom.Size) geom.Box {
	left := measureText(t.face, t.LeftText())
	sel := measureText(t.face, t.SelectedText())
	cursor := measureText(t.face, "|")
	height := cursor.H
	if height == 0 {
		height = env.H
	}
	return geom.Box{
		X: -env.W/2 + left.W + sel.W + cursor.W/2,
		Y: 0,
		W: cursor.W,
		H: height,
	}
}
