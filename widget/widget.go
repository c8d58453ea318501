// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the widgets of the toolkit on top of the
layout strategies.

Widgets form a retained tree. Each widget owns a Core holding its
name, its place in the tree and its geometry. A single logical event
thread drives layout and gestures, but the paint path may read
geometry concurrently, so every mutation of geometric state happens
under the Core's scoped geometry lock.

Geometry is never mutated from within a layout pass: widgets post
resize and paint requests to the shared event queue and the owning
container applies them in FIFO order with Dispatch.
*/
package widget

import (
	"sync"

	log "github.com/sirupsen/logrus"

	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/layout"
)

// Node is the interface implemented by every widget in the tree.
// The method cannot be called Core: widgets embed their Core as a
// field of that name, which would shadow it.
type Node interface {
	Widget() *Core
}

// geomLock serializes mutations of a widget's geometric and visual
// state against the concurrent paint path. The scope method returns
// the release function so that a single deferred call covers every
// exit path.
type geomLock struct {
	mu sync.Mutex
}

func (l *geomLock) scope() func() {
	l.mu.Lock()
	return l.mu.Unlock
}

// Core is the state shared by every widget.
type Core struct {
	name   string
	queue  *event.Queue
	logger *log.Entry
	self   Node

	geo      geomLock
	parent   Node
	children []Node
	// area is the rendering area, relative to the center of the
	// parent's area.
	area geom.Box
	hint geom.Size
}

var _ layout.Item = (*Core)(nil)

func (c *Core) init(self Node, name string, q *event.Queue) {
	c.self = self
	c.name = name
	c.queue = q
	c.logger = log.WithField("widget", name)
}

// Widget returns c. It makes every widget embedding a Core a Node.
func (c *Core) Widget() *Core {
	return c
}

// Name returns the widget name.
func (c *Core) Name() string {
	return c.name
}

// SizeHint returns the preferred size of the widget.
func (c *Core) SizeHint() geom.Size {
	defer c.geo.scope()()
	return c.hint
}

// SetSizeHint sets the preferred size of the widget.
func (c *Core) SetSizeHint(hint geom.Size) {
	defer c.geo.scope()()
	c.hint = hint
}

// RenderingArea returns the widget's rectangle, relative to the
// center of its parent's area.
func (c *Core) RenderingArea() geom.Box {
	defer c.geo.scope()()
	return c.area
}

// SetRenderingArea assigns the widget's rectangle. It is normally
// called by Dispatch when a posted resize request is applied.
func (c *Core) SetRenderingArea(area geom.Box) {
	defer c.geo.scope()()
	c.area = area
}

// Parent returns the widget's parent, nil for a root.
func (c *Core) Parent() Node {
	defer c.geo.scope()()
	return c.parent
}

// SetParent reparents the widget under parent, detaching it from its
// previous parent first.
func (c *Core) SetParent(parent Node) {
	if old := c.Parent(); old != nil {
		old.Widget().RemoveChild(c.self)
	}
	func() {
		defer c.geo.scope()()
		c.parent = parent
	}()
	if parent != nil {
		parent.Widget().addChild(c.self)
	}
}

func (c *Core) addChild(child Node) {
	defer c.geo.scope()()
	c.children = append(c.children, child)
}

// RemoveChild detaches child from the widget. Unknown children are
// ignored.
func (c *Core) RemoveChild(child Node) {
	defer c.geo.scope()()
	for i, ch := range c.children {
		if ch == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			ch.Widget().clearParent()
			return
		}
	}
}

func (c *Core) clearParent() {
	defer c.geo.scope()()
	c.parent = nil
}

// ChildByName returns the direct child named name, or nil.
func (c *Core) ChildByName(name string) Node {
	defer c.geo.scope()()
	for _, ch := range c.children {
		if ch.Widget().name == name {
			return ch
		}
	}
	return nil
}

// Children returns the widget's direct children.
func (c *Core) Children() []Node {
	defer c.geo.scope()()
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

// MapToGlobal converts p from the widget's local frame to the global
// frame.
func (c *Core) MapToGlobal(p geom.Point) geom.Point {
	for w := c; w != nil; {
		area := w.RenderingArea()
		p = p.Add(area.Center())
		parent := w.Parent()
		if parent == nil {
			break
		}
		w = parent.Widget()
	}
	return p
}

// MapFromGlobal converts p from the global frame to the widget's
// local frame.
func (c *Core) MapFromGlobal(p geom.Point) geom.Point {
	return p.Sub(c.MapToGlobal(geom.Point{}))
}

// MapBoxToGlobal converts a local box to the global frame.
func (c *Core) MapBoxToGlobal(b geom.Box) geom.Box {
	center := c.MapToGlobal(b.Center())
	return geom.Box{X: center.X, Y: center.Y, W: b.W, H: b.H}
}

// MapBoxFromGlobal converts a global box to the local frame.
func (c *Core) MapBoxFromGlobal(b geom.Box) geom.Box {
	center := c.MapFromGlobal(b.Center())
	return geom.Box{X: center.X, Y: center.Y, W: b.W, H: b.H}
}

// PostEvent posts e to the shared event queue. Widgets detached from
// any queue drop the event with a warning.
func (c *Core) PostEvent(e event.Event) {
	if c.queue == nil {
		c.logger.Warn("dropping event posted by a widget without a queue")
		return
	}
	c.queue.Post(e)
}

// RequestRepaint posts a paint request covering the widget's whole
// area. Regions travel in the global frame so that every widget on
// the way up can interpret them regardless of the emitter.
func (c *Core) RequestRepaint() {
	c.PostEvent(event.PaintEvent{
		Target:  c.self,
		Emitter: c.self,
		Regions: []event.Region{{
			Frame: event.Global,
			Area:  c.MapBoxToGlobal(c.RenderingArea().ToOrigin()),
		}},
	})
}

// PaintFilter is implemented by widgets that rewrite paint events
// before they propagate to their parent.
type PaintFilter interface {
	FilterPaint(event.PaintEvent) event.PaintEvent
}

// Dispatch drains q, applying resize requests to their target in
// FIFO order and bubbling paint events toward the root, letting each
// widget on the way rewrite them. It returns the paint events that
// reached a root, ready for the rendering collaborator.
func Dispatch(q *event.Queue) []event.PaintEvent {
	var rootPaints []event.PaintEvent
	q.Drain(func(e event.Event) {
		switch e := e.(type) {
		case event.ResizeEvent:
			if target, ok := e.Target.(Node); ok {
				target.Widget().SetRenderingArea(e.New)
			}
		case event.PaintEvent:
			target, ok := e.Target.(Node)
			if !ok {
				return
			}
			if f, ok := target.(PaintFilter); ok {
				e = f.FilterPaint(e)
			}
			parent := target.Widget().Parent()
			if parent == nil {
				rootPaints = append(rootPaints, e)
				return
			}
			e.Target = parent
			q.Post(e)
		}
	})
	return rootPaints
}
