// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"

	"sashui.org/geom"
	"sashui.org/io/event"
)

// HorizontalAlignment positions a label's text along the horizontal
// axis of its area.
type HorizontalAlignment uint8

// VerticalAlignment positions a label's text along the vertical axis
// of its area.
type VerticalAlignment uint8

const (
	AlignLeft HorizontalAlignment = iota
	AlignHCenter
	AlignRight
)

const (
	AlignTop VerticalAlignment = iota
	AlignVCenter
	AlignBottom
)

// Label displays a single line of static text.
type Label struct {
	Core
	face   font.Face
	color  color.RGBA
	hAlign HorizontalAlignment
	vAlign VerticalAlignment

	text      string
	textDirty bool
}

// NewLabel returns a label displaying text with the default font.
func NewLabel(name, text string, hAlign HorizontalAlignment, vAlign VerticalAlignment, q *event.Queue) (*Label, error) {
	face, err := newFace(DefaultFontSize)
	if err != nil {
		return nil, err
	}
	l := &Label{
		face:      face,
		color:     colornames.Black,
		hAlign:    hAlign,
		vAlign:    vAlign,
		text:      text,
		textDirty: true,
	}
	l.init(l, name, q)
	l.SetSizeHint(measureText(face, text))
	return l, nil
}

// Color returns the text color.
func (l *Label) Color() color.RGBA {
	return l.color
}

// Text returns the displayed text.
func (l *Label) Text() string {
	defer l.geo.scope()()
	return l.text
}

// SetText replaces the displayed text. Setting the current text is a
// no-op: no repaint is requested.
func (l *Label) SetText(text string) {
	changed := func() bool {
		defer l.geo.scope()()
		if l.text == text {
			return false
		}
		l.text = text
		l.textDirty = true
		return true
	}()
	if !changed {
		return
	}
	l.SetSizeHint(measureText(l.face, text))
	l.RequestRepaint()
}

// TextBox returns the rectangle, local to the label's area of size
// env, at which the text is blitted according to the alignments.
func (l *Label) TextBox(env geom.Size) geom.Box {
	size := measureText(l.face, l.Text())
	box := geom.Box{W: size.W, H: size.H}
	switch l.hAlign {
	case AlignLeft:
		box.X = -env.W/2 + size.W/2
	case AlignRight:
		box.X = env.W/2 - size.W/2
	case AlignHCenter:
		box.X = 0
	}
	switch l.vAlign {
	case AlignTop:
		box.Y = -env.H/2 + size.H/2
	case AlignBottom:
		box.Y = env.H/2 - size.H/2
	case AlignVCenter:
		box.Y = 0
	}
	return box
}
