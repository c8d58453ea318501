// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/layout"
)

func TestContainerLayout(t *testing.T) {
	q := new(event.Queue)
	c := NewContainer("row", layout.NewLinear(layout.Horizontal, 10), q)
	left := NewBase("left", q)
	right := NewBase("right", q)

	if id := c.AddWidget(left); id < 0 {
		t.Fatalf("AddWidget(left) = %d", id)
	}
	if id := c.AddWidget(right); id < 0 {
		t.Fatalf("AddWidget(right) = %d", id)
	}
	if got := left.Parent(); got != Node(c) {
		t.Fatalf("left parent = %v, want container", got)
	}

	c.Resize(geom.Box{W: 110, H: 50})
	Dispatch(q)

	wantLeft := geom.Box{X: -30, W: 50, H: 50}
	wantRight := geom.Box{X: 30, W: 50, H: 50}
	if got := left.RenderingArea(); got != wantLeft {
		t.Errorf("left area = %v, want %v", got, wantLeft)
	}
	if got := right.RenderingArea(); got != wantRight {
		t.Errorf("right area = %v, want %v", got, wantRight)
	}
}

func TestContainerRejectsDuplicate(t *testing.T) {
	q := new(event.Queue)
	c := NewContainer("row", layout.NewLinear(layout.Horizontal, 0), q)
	w := NewBase("w", q)

	if id := c.AddWidget(w); id < 0 {
		t.Fatalf("AddWidget = %d", id)
	}
	if id := c.AddWidget(w); id >= 0 {
		t.Fatalf("duplicate AddWidget = %d, want negative", id)
	}
	if got := len(c.Children()); got != 1 {
		t.Fatalf("children count = %d, want 1", got)
	}
}

func TestSelectorWidget(t *testing.T) {
	q := new(event.Queue)
	s := NewSelector("pages", q)
	home := NewBase("home", q)
	settings := NewBase("settings", q)

	s.AddWidget(home)
	s.AddWidget(settings)
	if got := s.ActiveWidget(); got != 0 {
		t.Fatalf("active widget = %d, want 0", got)
	}

	s.Resize(geom.Box{W: 100, H: 80})
	Dispatch(q)
	want := geom.Box{W: 100, H: 80}
	if got := home.RenderingArea(); got != want {
		t.Fatalf("active area = %v, want %v", got, want)
	}

	if err := s.SetActiveWidgetByName("settings"); err != nil {
		t.Fatalf("SetActiveWidgetByName: %v", err)
	}
	Dispatch(q)
	if got := settings.RenderingArea(); got != want {
		t.Fatalf("new active area = %v, want %v", got, want)
	}

	if err := s.SetActiveWidget(5); err == nil {
		t.Fatal("SetActiveWidget accepted an out-of-range index")
	}
	if err := s.SetActiveWidgetByName("missing"); err == nil {
		t.Fatal("SetActiveWidgetByName accepted an unknown name")
	}
}
