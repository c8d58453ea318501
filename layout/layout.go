// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the geometry allocation strategies of the
widget toolkit.

A container selects one Strategy at construction time and keeps it
for its whole life. On every resize the strategy recomputes the
target rectangle of each registered item and posts the corresponding
resize requests; requests are deferred, never applied in place, so a
layout pass never recurses into itself.

Items are owned by the container. A strategy stores only physical
indices, assigned in registration order and compacted downward on
removal, plus per-item geometry metadata.
*/
package layout

import (
	"sashui.org/geom"
	"sashui.org/io/event"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Item is a child occupying a slot in a layout.
type Item interface {
	// Name identifies the item in logs and consistency warnings.
	Name() string
	// SizeHint is the preferred size of the item.
	SizeHint() geom.Size
	// RenderingArea is the current rectangle of the item, relative
	// to the center of its container.
	RenderingArea() geom.Box
}

// Strategy is the layout capability a container selects at
// construction time.
type Strategy interface {
	// AddItem registers item and returns its physical index, or a
	// negative value when registration fails.
	AddItem(item Item) int
	// RemoveItem unregisters item and returns the physical index it
	// occupied, or a negative value when the item is unknown.
	RemoveItem(item Item) int
	// Count returns the number of registered items.
	Count() int
	// Update recomputes the target rectangle of every item for the
	// given container area and posts the resize requests to q.
	Update(window geom.Box, q *event.Queue)
}

var (
	_ Strategy = (*Linear)(nil)
	_ Strategy = (*Grid)(nil)
	_ Strategy = (*Selector)(nil)
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func axisExtent(a Axis, s geom.Size) float32 {
	if a == Horizontal {
		return s.W
	}
	return s.H
}

func axisSize(a Axis, main, cross float32) geom.Size {
	if a == Horizontal {
		return geom.Size{W: main, H: cross}
	}
	return geom.Size{W: cross, H: main}
}

func clampIndex(index, min, max int) int {
	if index < min {
		return min
	}
	if index > max {
		return max
	}
	return index
}
