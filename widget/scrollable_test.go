// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/io/pointer"
)

// newScrollableFixture builds a 50x50 viewport over a 200x100
// support and settles the initial layout: the support's top-left
// corner pinned to the window's, so its center sits at (75, 25).
func newScrollableFixture(t *testing.T) (*Scrollable, *Base, *event.Queue) {
	t.Helper()
	q := new(event.Queue)
	scroll := NewScrollable("scroll", q)
	support := NewBase("support", q)
	support.SetSizeHint(geom.Sz(200, 100))
	scroll.SetSupport(support)
	scroll.Resize(geom.Box{W: 50, H: 50})
	Dispatch(q)

	want := geom.Box{X: 75, Y: 25, W: 200, H: 100}
	if got := support.RenderingArea(); got != want {
		t.Fatalf("support area after first layout = %v, want %v", got, want)
	}
	return scroll, support, q
}

func TestScrollableFirstLayoutPinsTopLeft(t *testing.T) {
	newScrollableFixture(t)
}

func TestScrollablePanClamping(t *testing.T) {
	scroll, support, q := newScrollableFixture(t)

	press := pointer.Event{
		Kind:    pointer.Press,
		Buttons: pointer.ButtonMiddle,
	}
	scroll.HandlePointer(press)

	// The window's left edge already coincides with the support's:
	// panning the content rightward would reveal space past it.
	blocked := pointer.Event{
		Kind:     pointer.Drag,
		Buttons:  pointer.ButtonMiddle,
		Position: geom.Pt(10, 0),
		Motion:   geom.Pt(10, 0),
	}
	if scroll.HandlePointer(blocked) {
		t.Fatal("pan past the support's left edge was not blocked")
	}
	Dispatch(q)
	if got := support.RenderingArea().X; got != 75 {
		t.Fatalf("support moved on a blocked pan: X = %v", got)
	}

	// Panning leftward stays within bounds and moves exactly by the
	// motion.
	allowed := pointer.Event{
		Kind:     pointer.Drag,
		Buttons:  pointer.ButtonMiddle,
		Position: geom.Pt(0, 0),
		Motion:   geom.Pt(-10, 0),
	}
	if !scroll.HandlePointer(allowed) {
		t.Fatal("in-bounds pan was rejected")
	}
	Dispatch(q)
	want := geom.Box{X: 65, Y: 25, W: 200, H: 100}
	if got := support.RenderingArea(); got != want {
		t.Fatalf("support area after pan = %v, want %v", got, want)
	}
}

func TestScrollableVisibleAreaNotification(t *testing.T) {
	scroll, _, q := newScrollableFixture(t)

	var got []VisibleArea
	scroll.OnVisibleAreaChanged = func(v VisibleArea) {
		got = append(got, v)
	}

	scroll.HandlePointer(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonMiddle})
	scroll.HandlePointer(pointer.Event{
		Kind:    pointer.Drag,
		Buttons: pointer.ButtonMiddle,
		Motion:  geom.Pt(-10, 0),
	})
	Dispatch(q)

	want := []VisibleArea{{X: 0.05, Y: 0, W: 0.25, H: 0.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("visible area mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollableResizeKeepsCenterClamped(t *testing.T) {
	scroll, support, q := newScrollableFixture(t)

	// Pan so the support center is no longer at its initial spot.
	scroll.HandlePointer(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonMiddle})
	scroll.HandlePointer(pointer.Event{
		Kind:    pointer.Drag,
		Buttons: pointer.ButtonMiddle,
		Motion:  geom.Pt(-10, 0),
	})
	Dispatch(q)

	// Growing the window pushes its bottom edge past the support;
	// the support is nudged just enough to cover it again.
	scroll.Resize(geom.Box{W: 60, H: 60})
	Dispatch(q)
	want := geom.Box{X: 65, Y: 20, W: 200, H: 100}
	if got := support.RenderingArea(); got != want {
		t.Fatalf("support area after window growth = %v, want %v", got, want)
	}
}

func TestScrollableUndersizedSupportPinnedTopLeft(t *testing.T) {
	q := new(event.Queue)
	scroll := NewScrollable("scroll", q)
	support := NewBase("support", q)
	support.SetSizeHint(geom.Sz(30, 20))
	scroll.SetSupport(support)
	scroll.Resize(geom.Box{W: 50, H: 50})
	Dispatch(q)

	// A support smaller than the window keeps its preferred size,
	// aligned on the window's top-left corner.
	want := geom.Box{X: -10, Y: -15, W: 30, H: 20}
	if got := support.RenderingArea(); got != want {
		t.Fatalf("undersized support area = %v, want %v", got, want)
	}
}

func TestScrollableCropsSupportRepaint(t *testing.T) {
	_, support, q := newScrollableFixture(t)

	// A full repaint of the support is cut down to the window.
	support.RequestRepaint()
	paints := Dispatch(q)
	if len(paints) != 1 {
		t.Fatalf("root paints = %d, want 1", len(paints))
	}
	want := []event.Region{{Frame: event.Global, Area: geom.Box{W: 50, H: 50}}}
	if diff := cmp.Diff(want, paints[0].Regions); diff != "" {
		t.Fatalf("cropped regions mismatch (-want +got):\n%s", diff)
	}
}

func TestScrollableFilterPaintRegions(t *testing.T) {
	scroll, support, _ := newScrollableFixture(t)

	e := scroll.FilterPaint(event.PaintEvent{
		Target:  scroll,
		Emitter: support,
		Regions: []event.Region{
			// Fully outside the window.
			{Frame: event.Global, Area: geom.Box{X: 100, W: 10, H: 10}},
			// Straddling the window's right edge.
			{Frame: event.Global, Area: geom.Box{X: 20, W: 20, H: 20}},
		},
	})
	if len(e.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(e.Regions))
	}
	if out := e.Regions[0].Area; out.Valid() {
		t.Errorf("out-of-window region not emptied: %v", out)
	}
	wantStraddle := geom.Box{X: 17.5, W: 15, H: 20}
	if got := e.Regions[1].Area; got != wantStraddle {
		t.Errorf("straddling region = %v, want %v", got, wantStraddle)
	}
}

func TestScrollableFilterPaintLocalRegions(t *testing.T) {
	scroll, support, _ := newScrollableFixture(t)

	// Local regions are relative to the support's center (75, 25):
	// its center lies outside the 50x50 window, its top-left corner
	// inside.
	e := scroll.FilterPaint(event.PaintEvent{
		Target:  scroll,
		Emitter: support,
		Regions: []event.Region{
			{Frame: event.Local, Area: geom.Box{W: 10, H: 10}},
			{Frame: event.Local, Area: geom.Box{X: -75, Y: -25, W: 10, H: 10}},
		},
	})
	if len(e.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(e.Regions))
	}
	if out := e.Regions[0].Area; out.Valid() {
		t.Errorf("out-of-window local region not emptied: %v", out)
	}
	want := event.Region{Frame: event.Global, Area: geom.Box{W: 10, H: 10}}
	if got := e.Regions[1]; got != want {
		t.Errorf("in-window local region = %v, want %v", got, want)
	}
}

func TestScrollableIgnoresOtherEmitters(t *testing.T) {
	scroll, _, _ := newScrollableFixture(t)
	other := NewBase("other", nil)

	in := event.PaintEvent{
		Target:  scroll,
		Emitter: other,
		Regions: []event.Region{{Frame: event.Global, Area: geom.Box{X: 100, W: 10, H: 10}}},
	}
	out := scroll.FilterPaint(in)
	if diff := cmp.Diff(in.Regions, out.Regions); diff != "" {
		t.Fatalf("regions rewritten for foreign emitter (-want +got):\n%s", diff)
	}
}
