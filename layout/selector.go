// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/pkg/errors"

	"sashui.org/geom"
	"sashui.org/io/event"
)

// Selector shows exactly one of its items at a time; the active item
// receives the whole container area.
type Selector struct {
	base
	active int
}

// NewSelector returns an empty selector layout with no active item.
func NewSelector() *Selector {
	return &Selector{
		base:   newBase("selector"),
		active: -1,
	}
}

// AddItem registers item and returns its physical index. The first
// registered item becomes active.
func (s *Selector) AddItem(item Item) int {
	id := s.addItem(item)
	if id < 0 {
		return id
	}
	if s.active < 0 {
		s.active = id
	}
	return id
}

// RemoveItem unregisters item and returns the physical index it
// occupied. When the active item is removed the first remaining item
// becomes active.
func (s *Selector) RemoveItem(item Item) int {
	id := s.removeItem(item)
	if id < 0 {
		return id
	}
	switch {
	case s.Count() == 0:
		s.active = -1
	case s.active == id:
		s.active = 0
	case s.active > id:
		s.active--
	}
	return id
}

// ActiveItem returns the physical index of the active item, negative
// when the selector is empty.
func (s *Selector) ActiveItem() int {
	return s.active
}

// SetActiveItem makes the item with physical index id the active
// one. Selecting the already active item is a no-op: no resize is
// requested and no notification emitted. An out-of-range id is a
// contract violation and fails the call.
func (s *Selector) SetActiveItem(id int) error {
	if id < 0 || id >= s.Count() {
		return errors.Errorf("cannot activate item %d in %d item(s) selector", id, s.Count())
	}
	s.active = id
	return nil
}

// SetActiveItemByName makes the item named name the active one. An
// unknown name is a contract violation and fails the call.
func (s *Selector) SetActiveItemByName(name string) error {
	for id, item := range s.items {
		if item.Name() == name {
			s.active = id
			return nil
		}
	}
	return errors.Errorf("cannot activate unknown item %q", name)
}

// Update posts a resize request assigning the whole window to the
// active item. Inactive items are not resized.
func (s *Selector) Update(window geom.Box, q *event.Queue) {
	item := s.ItemAt(s.active)
	if item == nil {
		return
	}
	newArea := window.ToOrigin()
	if item.RenderingArea() == newArea {
		// Geometry is already up to date.
		return
	}
	q.Post(event.ResizeEvent{
		Target: item,
		Old:    item.RenderingArea(),
		New:    newArea,
	})
}
