// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"sashui.org/geom"
	"sashui.org/io/event"
)

// Linear arranges items along a single axis, separated by a margin.
//
// Items have two orders: the physical order, in which they were
// registered, and the logical order, in which they appear along the
// axis. Decoupling the two lets consumers insert or remove an item at
// an arbitrary visual position without relabeling the storage slots
// assigned by the container. The positions table maps each logical
// slot to a physical index and is a bijection onto [0, count) at all
// times.
type Linear struct {
	base
	axis   Axis
	margin float32
	// positions holds the physical index of the item occupying each
	// logical slot.
	positions []int
}

// NewLinear returns a layout arranging its items along axis, with
// margin pixels between consecutive items.
func NewLinear(axis Axis, margin float32) *Linear {
	return &Linear{
		base:   newBase("linear"),
		axis:   axis,
		margin: margin,
	}
}

// Axis returns the layout axis.
func (l *Linear) Axis() Axis {
	return l.axis
}

// Margin returns the space between consecutive items.
func (l *Linear) Margin() float32 {
	return l.margin
}

// AddItem registers item at the end of the logical order and returns
// its physical index, or a negative value when registration fails.
func (l *Linear) AddItem(item Item) int {
	return l.AddItemAt(item, l.Count())
}

// AddItemAt registers item and inserts it at logical position index,
// clamped to the valid range. Items at or after the insertion point
// move one logical position up. The physical index is returned; on
// failure a negative value is returned and the logical table is left
// untouched.
func (l *Linear) AddItemAt(item Item, index int) int {
	id := l.addItem(item)
	if id < 0 {
		return id
	}
	// The item count already includes the new item.
	normalized := clampIndex(index, 0, l.Count()-1)
	l.positions = slices.Insert(l.positions, normalized, id)
	return id
}

// RemoveItem unregisters item and returns the physical index it
// occupied, or a negative value when the item is unknown. The
// physical indices recorded in the logical table are compacted the
// same way the registry compacts its own.
func (l *Linear) RemoveItem(item Item) int {
	id := l.removeItem(item)
	if id < 0 {
		return id
	}
	// Locate the logical slot before compacting the recorded
	// indices: a decremented entry may land on the removed index and
	// must not be mistaken for it.
	slot := slices.Index(l.positions, id)
	for i, pos := range l.positions {
		if pos > id {
			l.positions[i] = pos - 1
		}
	}
	if slot < 0 {
		l.logger.Warnf("no logical position recorded for removed item %q", item.Name())
		return id
	}
	l.positions = slices.Delete(l.positions, slot, slot+1)
	return id
}

// ItemAtPosition returns the item at the given logical position, or
// nil when the position is out of range.
func (l *Linear) ItemAtPosition(pos int) Item {
	if pos < 0 || pos >= len(l.positions) {
		return nil
	}
	return l.ItemAt(l.positions[pos])
}

// AvailableSize returns the space left for items in totalArea once
// the inter-item margins are accounted for along the layout axis.
func (l *Linear) AvailableSize(totalArea geom.Box) geom.Size {
	size := totalArea.ToSize()
	count := l.Count()
	if count == 0 {
		return size
	}
	margins := float32(count-1) * l.margin
	if l.axis == Horizontal {
		return size.Sub(geom.Size{W: margins})
	}
	return size.Sub(geom.Size{H: margins})
}

// DefaultItemBox splits area evenly across count items along the
// layout axis, keeping the cross extent unchanged.
func (l *Linear) DefaultItemBox(area geom.Size, count int) (geom.Size, error) {
	switch l.axis {
	case Horizontal:
		return geom.Size{W: allocateFairly(area.W, count), H: area.H}, nil
	case Vertical:
		return geom.Size{W: area.W, H: allocateFairly(area.H, count)}, nil
	default:
		return geom.Size{}, errors.Errorf("unknown layout axis %d", l.axis)
	}
}

// Update assigns every item its default box at its logical position
// and posts the resize requests in logical order.
func (l *Linear) Update(window geom.Box, q *event.Queue) {
	count := l.Count()
	if count == 0 {
		return
	}
	available := l.AvailableSize(window)
	box, err := l.DefaultItemBox(available, count)
	if err != nil {
		l.logger.Errorf("cannot compute item boxes: %v", err)
		return
	}
	extent := axisExtent(l.axis, box)
	total := float32(count)*extent + float32(count-1)*l.margin
	for pos, id := range l.positions {
		item := l.ItemAt(id)
		main := -total/2 + float32(pos)*(extent+l.margin) + extent/2
		var center geom.Point
		if l.axis == Horizontal {
			center = geom.Pt(main, 0)
		} else {
			center = geom.Pt(0, main)
		}
		q.Post(event.ResizeEvent{
			Target: item,
			Old:    item.RenderingArea(),
			New:    geom.Box{X: center.X, Y: center.Y, W: box.W, H: box.H},
		})
	}
}
