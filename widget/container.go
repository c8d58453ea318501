// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/layout"
)

// Base is a plain widget with no behavior of its own, used as a
// leaf, a background or the support of a Scrollable.
type Base struct {
	Core
}

// NewBase returns a plain widget posting its events to q.
func NewBase(name string, q *event.Queue) *Base {
	b := &Base{}
	b.init(b, name, q)
	return b
}

// Container is a widget delegating the geometry of its children to a
// layout strategy chosen at construction time.
type Container struct {
	Core
	strategy layout.Strategy
}

// NewContainer returns a container arranging its children with
// strategy.
func NewContainer(name string, strategy layout.Strategy, q *event.Queue) *Container {
	c := &Container{strategy: strategy}
	c.init(c, name, q)
	return c
}

// Strategy returns the layout strategy of the container.
func (c *Container) Strategy() layout.Strategy {
	return c.strategy
}

// AddWidget reparents w under the container and registers it with
// the layout strategy. The physical index is returned, negative on
// failure; a rejected widget is not reparented.
func (c *Container) AddWidget(w Node) int {
	id := c.strategy.AddItem(w.Widget())
	if id < 0 {
		return id
	}
	w.Widget().SetParent(c)
	return id
}

// RemoveWidget detaches w from the container and unregisters it from
// the layout strategy.
func (c *Container) RemoveWidget(w Node) int {
	id := c.strategy.RemoveItem(w.Widget())
	if id < 0 {
		return id
	}
	c.RemoveChild(w)
	return id
}

// Resize assigns the container its new rectangle and recomputes the
// geometry of every child, posting the resize requests to the shared
// queue.
func (c *Container) Resize(window geom.Box) {
	c.SetRenderingArea(window)
	c.strategy.Update(window.ToOrigin(), c.queue)
}
