// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"sashui.org/geom"
	"sashui.org/gesture"
	"sashui.org/io/event"
	"sashui.org/io/pointer"
)

// VisibleArea describes the portion of the support content shown by
// a Scrollable, as fractions of the content's full extent: X, Y
// locate the top-left corner of the visible window (0 is the
// left/top edge of the content, 1 the right/bottom edge) and W, H
// are the relative extents of the window.
type VisibleArea struct {
	X, Y float32
	W, H float32
}

// Scrollable is a viewport onto a single support widget, usually
// larger than the viewport itself. Dragging with the scroll button
// pans the support, clamped so that no space outside the support is
// ever revealed; paint requests emitted by the support are cropped to
// the visible rectangle before they propagate upward.
type Scrollable struct {
	Core
	drag gesture.Drag

	supportName string

	// OnVisibleAreaChanged, when set, is invoked after every
	// effective pan with the normalized visible area.
	OnVisibleAreaChanged func(VisibleArea)
}

var _ PaintFilter = (*Scrollable)(nil)

// NewScrollable returns an empty viewport posting its events to q.
func NewScrollable(name string, q *event.Queue) *Scrollable {
	s := &Scrollable{}
	s.init(s, name, q)
	return s
}

// SetSupport installs w as the content of the viewport, detaching
// the previous support if any. A nil w leaves the viewport empty.
func (s *Scrollable) SetSupport(w Node) {
	if old := s.Support(); old != nil {
		s.RemoveChild(old)
	}
	s.supportName = ""
	if w == nil {
		return
	}
	w.Widget().SetParent(s)
	s.supportName = w.Widget().Name()

	// Adopt the support's preferred size so that enclosing layouts
	// size the viewport sensibly.
	s.SetSizeHint(w.Widget().SizeHint())
	if window := s.RenderingArea(); window.Valid() {
		s.PostEvent(event.ResizeEvent{
			Target: w,
			Old:    w.Widget().RenderingArea(),
			New:    s.onResize(window.ToOrigin(), w),
		})
	}
}

// Support returns the current support widget, nil when none is
// bound.
func (s *Scrollable) Support() Node {
	if s.supportName == "" {
		return nil
	}
	return s.ChildByName(s.supportName)
}

// Resize assigns the viewport its new rectangle and posts the resize
// request keeping the support consistent with it.
func (s *Scrollable) Resize(window geom.Box) {
	s.SetRenderingArea(window)
	support := s.Support()
	if support == nil {
		return
	}
	s.PostEvent(event.ResizeEvent{
		Target: support,
		Old:    support.Widget().RenderingArea(),
		New:    s.onResize(window.ToOrigin(), support),
	})
}

// onResize computes the target rectangle of the support for the
// given viewport window, expressed in the viewport's local frame.
// The rectangle keeps the support's preferred size and its current
// center when one is set; on first layout the support's top-left
// corner is pinned to the window's. The result is clamped so that
// the window never extends past the support's preferred-size
// bounding box. The left and top bounds are adjusted before the
// right and bottom ones so that a support smaller than the window
// ends up pinned to the top-left corner.
func (s *Scrollable) onResize(window geom.Box, support Node) geom.Box {
	if support == nil {
		return geom.Box{}
	}
	old := support.Widget().RenderingArea()
	hint := support.Widget().SizeHint()

	center := old.Center()
	if !old.Valid() {
		center = geom.Pt(-window.W/2+hint.W/2, -window.H/2+hint.H/2)
	}

	expected := geom.Box{X: center.X, Y: center.Y, W: window.W, H: window.H}
	bounds := geom.FromSize(hint)

	if expected.Left() < bounds.Left() {
		expected.X += bounds.Left() - expected.Left()
	}
	if expected.Top() < bounds.Top() {
		expected.Y += bounds.Top() - expected.Top()
	}
	if expected.Right() > bounds.Right() {
		expected.X -= expected.Right() - bounds.Right()
	}
	if expected.Bottom() > bounds.Bottom() {
		expected.Y -= expected.Bottom() - bounds.Bottom()
	}

	return geom.Box{X: expected.X, Y: expected.Y, W: hint.W, H: hint.H}
}

// HandlePointer feeds a pointer event, in the global frame, to the
// viewport. It reports whether the event triggered a pan.
func (s *Scrollable) HandlePointer(e pointer.Event) bool {
	local := e
	local.Position = s.MapFromGlobal(e.Position)
	local.Start = s.MapFromGlobal(e.Start)

	pan, ok := s.drag.Update(s.RenderingArea().ToOrigin(), local)
	if !ok {
		return false
	}
	if s.handleContentScrolling(pan.Anchor, local.Position, pan.Delta) {
		s.RequestRepaint()
		return true
	}
	return false
}

// handleContentScrolling translates the support by delta so that the
// anchor point keeps following the pointer. Only the incremental
// motion is applied: the anchor is reported unchanged on every drag
// event of a gesture, so compounding the total displacement would
// run away. Each axis moves only while the viewport stays within the
// support's bounds. It reports whether any axis actually moved.
func (s *Scrollable) handleContentScrolling(anchor, whereTo geom.Point, delta geom.Point) bool {
	support := s.Support()
	if support == nil {
		return false
	}

	area := support.Widget().RenderingArea()
	supportDims := area.ToSize()
	window := s.RenderingArea().ToSize()
	max := support.Widget().SizeHint()

	// The window seen from the content: panning moves the content by
	// delta, the window over the content by -delta.
	winLeft := -area.X - window.W/2
	winRight := -area.X + window.W/2
	winTop := -area.Y - window.H/2
	winBottom := -area.Y + window.H/2

	updated := false
	if delta.X > 0 && winLeft-delta.X >= -max.W/2 {
		area.X += delta.X
		updated = true
	}
	if delta.X < 0 && winRight-delta.X <= max.W/2 {
		area.X += delta.X
		updated = true
	}
	if delta.Y > 0 && winTop-delta.Y >= -max.H/2 {
		area.Y += delta.Y
		updated = true
	}
	if delta.Y < 0 && winBottom-delta.Y <= max.H/2 {
		area.Y += delta.Y
		updated = true
	}
	if !updated {
		return false
	}

	s.PostEvent(event.ResizeEvent{
		Target: support,
		Old:    support.Widget().RenderingArea(),
		New:    area,
	})

	// The notification describes what fraction of the content is
	// visible, not how far the content moved, hence the sign flip on
	// the support's center.
	visible := VisibleArea{
		X: (supportDims.W/2 - area.X - window.W/2) / supportDims.W,
		Y: (supportDims.H/2 - area.Y - window.H/2) / supportDims.H,
		W: window.W / supportDims.W,
		H: window.H / supportDims.H,
	}
	s.logger.Debugf("visible area changed to %+v (support: %+v)", visible, supportDims)
	if s.OnVisibleAreaChanged != nil {
		s.OnVisibleAreaChanged(visible)
	}
	return true
}

// FilterPaint crops paint regions emitted by the support to the
// viewport rectangle: the support is larger than the viewport, so
// without cropping the container would be asked to redraw parts of
// the content that are not visible. Events emitted by other widgets
// pass through unchanged.
func (s *Scrollable) FilterPaint(e event.PaintEvent) event.PaintEvent {
	support := s.Support()
	if support == nil || e.Emitter != support {
		return e
	}

	window := s.RenderingArea().ToOrigin()
	supportCenter := support.Widget().RenderingArea().Center()
	cropped := make([]event.Region, 0, len(e.Regions))
	for _, region := range e.Regions {
		local := region.Area
		switch region.Frame {
		case event.Global:
			local = s.MapBoxFromGlobal(local)
		case event.Local:
			// Local regions are relative to the emitter's center:
			// offset by the support's center to reach the
			// viewport's frame.
			local = local.Translate(supportCenter)
		}
		if !window.Contains(local) {
			local = window.Intersect(local)
		}
		cropped = append(cropped, event.Region{
			Frame: event.Global,
			Area:  s.MapBoxToGlobal(local),
		})
	}

	return event.PaintEvent{
		Target:  e.Target,
		Emitter: e.Emitter,
		Regions: cropped,
	}
}
