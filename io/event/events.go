// SPDX-License-Identifier: Unlicense OR MIT

package event

import "sashui.org/geom"

// ResizeEvent requests a new rendering area for Target. The request
// is deferred: the container applies it when draining the queue, so
// a single gesture may enqueue several requests without recursing
// into layout computation.
type ResizeEvent struct {
	Target Tag
	// Old is the rendering area of Target at the time the request
	// was posted.
	Old geom.Box
	// New is the requested rendering area.
	New geom.Box
}

// Frame identifies the coordinate frame a paint region is expressed
// in.
type Frame uint8

const (
	// Global regions are expressed relative to the root of the
	// widget tree.
	Global Frame = iota
	// Local regions are expressed relative to the center of the
	// widget that emitted them.
	Local
)

// Region is an area to repaint together with its coordinate frame.
type Region struct {
	Frame Frame
	Area  geom.Box
}

// PaintEvent asks Target to redraw the carried regions. Emitter is
// the widget at the origin of the request and is preserved when the
// event is rewritten while bubbling up the tree.
type PaintEvent struct {
	Target  Tag
	Emitter Tag
	Regions []Region
}

func (ResizeEvent) ImplementsEvent() {}
func (PaintEvent) ImplementsEvent()  {}

func (f Frame) String() string {
	switch f {
	case Global:
		return "Global"
	case Local:
		return "Local"
	default:
		panic("unreachable")
	}
}
