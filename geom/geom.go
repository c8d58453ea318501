// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom is the float32 geometry shared by the layout strategies
and the widget tree.

The coordinate space has the axes extending right and down. Widget
rendering areas are stored as a center point plus a size, expressed
relative to the center of the parent's area; the local frame of a
widget has its origin at the widget's own center.
*/
package geom

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Size is a width and a height.
type Size struct {
	W, H float32
}

// A Box is an axis aligned rectangle described by its center and
// its size.
type Box struct {
	// X, Y is the center of the box.
	X, Y float32
	// W, H are the full extents of the box.
	W, H float32
}

// Pt returns the point (x, y).
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz returns the size (w, h).
func Sz(w, h float32) Size {
	return Size{W: w, H: h}
}

// Add return the point p+p2.
func (p Point) Add(p2 Point) Point {
	return Point{X: p.X + p2.X, Y: p.Y + p2.Y}
}

// Sub returns the vector p-p2.
func (p Point) Sub(p2 Point) Point {
	return Point{X: p.X - p2.X, Y: p.Y - p2.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Valid reports whether s describes a non-empty area.
func (s Size) Valid() bool {
	return s.W > 0 && s.H > 0
}

// Sub returns the size s shrunk by s2, clamped at zero.
func (s Size) Sub(s2 Size) Size {
	r := Size{W: s.W - s2.W, H: s.H - s2.H}
	if r.W < 0 {
		r.W = 0
	}
	if r.H < 0 {
		r.H = 0
	}
	return r
}

// FromSize returns the box of size s centered on the origin.
func FromSize(s Size) Box {
	return Box{W: s.W, H: s.H}
}

// Center returns the center of the box.
func (b Box) Center() Point {
	return Point{X: b.X, Y: b.Y}
}

// ToSize returns b's extents.
func (b Box) ToSize() Size {
	return Size{W: b.W, H: b.H}
}

// ToOrigin returns b recentered on the origin.
func (b Box) ToOrigin() Box {
	return Box{W: b.W, H: b.H}
}

// Translate returns b offset by the vector p.
func (b Box) Translate(p Point) Box {
	return Box{X: b.X + p.X, Y: b.Y + p.Y, W: b.W, H: b.H}
}

// Left returns the left bound of the box.
func (b Box) Left() float32 {
	return b.X - b.W/2
}

// Right returns the right bound of the box.
func (b Box) Right() float32 {
	return b.X + b.W/2
}

// Top returns the top bound of the box.
func (b Box) Top() float32 {
	return b.Y - b.H/2
}

// Bottom returns the bottom bound of the box.
func (b Box) Bottom() float32 {
	return b.Y + b.H/2
}

// Valid reports whether b describes a non-empty area.
func (b Box) Valid() bool {
	return b.W > 0 && b.H > 0
}

// ContainsPoint reports whether p lies inside b, bounds included.
func (b Box) ContainsPoint(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() && p.Y >= b.Top() && p.Y <= b.Bottom()
}

// Contains reports whether b2 lies entirely inside b.
func (b Box) Contains(b2 Box) bool {
	return b2.Left() >= b.Left() && b2.Right() <= b.Right() &&
		b2.Top() >= b.Top() && b2.Bottom() <= b.Bottom()
}

// Intersect returns the intersection of b and b2. The zero Box is
// returned when the two boxes do not overlap.
func (b Box) Intersect(b2 Box) Box {
	left := b.Left()
	if l := b2.Left(); l > left {
		left = l
	}
	right := b.Right()
	if r := b2.Right(); r < right {
		right = r
	}
	top := b.Top()
	if t := b2.Top(); t > top {
		top = t
	}
	bottom := b.Bottom()
	if bt := b2.Bottom(); bt < bottom {
		bottom = bt
	}
	if right <= left || bottom <= top {
		return Box{}
	}
	return Box{
		X: (left + right) / 2,
		Y: (top + bottom) / 2,
		W: right - left,
		H: bottom - top,
	}
}
