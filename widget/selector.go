// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/layout"
)

// Selector is a container showing exactly one of its children at a
// time. The active child gets the whole area; the others keep their
// last geometry and are simply not painted.
type Selector struct {
	Core
	strategy *layout.Selector
}

// NewSelector returns an empty selector posting its events to q.
func NewSelector(name string, q *event.Queue) *Selector {
	s := &Selector{strategy: layout.NewSelector()}
	s.init(s, name, q)
	return s
}

// AddWidget reparents w under the selector. The first added widget
// becomes active.
func (s *Selector) AddWidget(w Node) int {
	id := s.strategy.AddItem(w.Widget())
	if id < 0 {
		return id
	}
	w.Widget().SetParent(s)
	return id
}

// RemoveWidget detaches w from the selector.
func (s *Selector) RemoveWidget(w Node) int {
	id := s.strategy.RemoveItem(w.Widget())
	if id < 0 {
		return id
	}
	s.RemoveChild(w)
	return id
}

// ActiveWidget returns the index of the active widget, negative when
// the selector is empty.
func (s *Selector) ActiveWidget() int {
	return s.strategy.ActiveItem()
}

// SetActiveWidget makes the widget with index id the active one and
// lays it out over the selector's area.
func (s *Selector) SetActiveWidget(id int) error {
	if err := s.strategy.SetActiveItem(id); err != nil {
		return err
	}
	s.update()
	return nil
}

// SetActiveWidgetByName makes the widget named name the active one
// and lays it out over the selector's area.
func (s *Selector) SetActiveWidgetByName(name string) error {
	if err := s.strategy.SetActiveItemByName(name); err != nil {
		return err
	}
	s.update()
	return nil
}

// Resize assigns the selector its new rectangle and lays out the
// active widget.
func (s *Selector) Resize(window geom.Box) {
	s.SetRenderingArea(window)
	s.strategy.Update(window.ToOrigin(), s.queue)
}

func (s *Selector) update() {
	if window := s.RenderingArea(); window.Valid() {
		s.strategy.Update(window.ToOrigin(), s.queue)
		s.RequestRepaint()
	}
}
