// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sashui.org/geom"
	"sashui.org/io/event"
)

// PictureMode describes how a picture fills the widget's area.
type PictureMode uint8

const (
	// Crop blits the picture at its natural size, centered in the
	// area; parts extending past the area are cut off.
	Crop PictureMode = iota
	// Fit stretches the picture to the area.
	Fit
)

func (m PictureMode) String() string {
	switch m {
	case Crop:
		return "Crop"
	case Fit:
		return "Fit"
	default:
		panic("unreachable")
	}
}

// Picture displays an image file. The widget's size hint doubles as
// the natural size of the picture; the rendering collaborator loads
// the file when the dirty flag is set.
type Picture struct {
	Core
	mode PictureMode

	file       string
	picChanged bool
}

// NewPicture returns a picture widget displaying file.
func NewPicture(name, file string, mode PictureMode, q *event.Queue) *Picture {
	p := &Picture{
		mode:       mode,
		file:       file,
		picChanged: true,
	}
	p.init(p, name, q)
	return p
}

// File returns the path of the displayed picture.
func (p *Picture) File() string {
	defer p.geo.scope()()
	return p.file
}

// SetFile replaces the displayed picture. Setting the current file
// is a no-op.
func (p *Picture) SetFile(file string) {
	changed := func() bool {
		defer p.geo.scope()()
		if p.file == file {
			return false
		}
		p.file = file
		p.picChanged = true
		return true
	}()
	if changed {
		p.RequestRepaint()
	}
}

// Mode returns the display mode.
func (p *Picture) Mode() PictureMode {
	return p.mode
}

// BlitBox returns the rectangle, local to the picture's area of size
// env, at which the picture is blitted. In Fit mode the picture
// covers the whole area; in Crop mode it keeps its natural size and
// is centered, cut to the area when larger than it.
func (p *Picture) BlitBox(env geom.Size) geom.Box {
	if p.mode == Fit {
		return geom.FromSize(env)
	}
	natural := geom.FromSize(p.SizeHint())
	return geom.FromSize(env).Intersect(natural)
}
