// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"golang.org/x/image/colornames"

	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/io/pointer"
)

func TestButtonDefaults(t *testing.T) {
	b, _ := newButtonFixture(t, RegularButton)
	if got := b.Color(); got != colornames.Silver {
		t.Errorf("color = %v, want silver", got)
	}
	if got := b.Borders().Size; got != float32(DefaultBorderSize) {
		t.Errorf("border size = %v, want %v", got, DefaultBorderSize)
	}
}

func newButtonFixture(t *testing.T, kind ButtonKind) (*Button, *event.Queue) {
	t.Helper()
	q := new(event.Queue)
	b, err := NewButton("ok", "OK", "", kind, q)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	b.SetRenderingArea(geom.Box{W: 100, H: 40})
	return b, q
}

func press(pos geom.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonLeft, Position: pos}
}

func release(pos geom.Point) pointer.Event {
	return pointer.Event{Kind: pointer.Release, Buttons: pointer.ButtonLeft, Position: pos}
}

func TestButtonClick(t *testing.T) {
	b, _ := newButtonFixture(t, RegularButton)

	var clicks []string
	b.OnClicked = func(name string) { clicks = append(clicks, name) }

	b.HandlePointer(press(geom.Pt(0, 0)))
	if got := b.State(); got != ButtonPressed {
		t.Fatalf("state after press = %v, want Pressed", got)
	}
	if !b.Borders().Pressed {
		t.Fatal("borders not pressed after press")
	}

	b.HandlePointer(release(geom.Pt(0, 0)))
	if got := b.State(); got != ButtonReleased {
		t.Fatalf("state after release = %v, want Released", got)
	}
	if b.Borders().Pressed {
		t.Fatal("borders still pressed after release")
	}
	if len(clicks) != 1 || clicks[0] != "ok" {
		t.Fatalf("clicks = %v, want [ok]", clicks)
	}
}

func TestButtonPressOutsideIgnored(t *testing.T) {
	b, _ := newButtonFixture(t, RegularButton)

	if b.HandlePointer(press(geom.Pt(200, 0))) {
		t.Fatal("press outside the button was handled")
	}
	if got := b.State(); got != ButtonReleased {
		t.Fatalf("state after outside press = %v, want Released", got)
	}
}

func TestButtonReleaseOutsideAborts(t *testing.T) {
	b, _ := newButtonFixture(t, RegularButton)

	var clicks int
	b.OnClicked = func(string) { clicks++ }

	b.HandlePointer(press(geom.Pt(0, 0)))
	b.HandlePointer(release(geom.Pt(200, 0)))
	if got := b.State(); got != ButtonReleased {
		t.Fatalf("state after outside release = %v, want Released", got)
	}
	if clicks != 0 {
		t.Fatalf("clicks = %d, want 0", clicks)
	}
}

func TestButtonDropAborts(t *testing.T) {
	b, _ := newButtonFixture(t, RegularButton)

	b.HandlePointer(press(geom.Pt(0, 0)))
	b.HandlePointer(pointer.Event{Kind: pointer.Drop, Position: geom.Pt(200, 0)})
	if got := b.State(); got != ButtonReleased {
		t.Fatalf("state after drop = %v, want Released", got)
	}
}

func TestToggleButtonClickCycle(t *testing.T) {
	b, _ := newButtonFixture(t, ToggleButton)

	var toggles []bool
	b.OnToggled = func(name string, toggled bool) {
		if name != "ok" {
			t.Errorf("toggled name = %q, want ok", name)
		}
		toggles = append(toggles, toggled)
	}

	b.HandlePointer(press(geom.Pt(0, 0)))
	b.HandlePointer(release(geom.Pt(0, 0)))
	if !b.Toggled() {
		t.Fatal("button not toggled after first click")
	}
	if !b.Borders().Pressed {
		t.Fatal("borders released on a toggled button")
	}

	b.HandlePointer(press(geom.Pt(0, 0)))
	if got := b.State(); got != ButtonToggled {
		t.Fatalf("state while pressing a toggled button = %v, want Toggled", got)
	}
	b.HandlePointer(release(geom.Pt(0, 0)))
	if b.Toggled() {
		t.Fatal("button still toggled after second click")
	}

	want := []bool{true, false}
	if len(toggles) != 2 || toggles[0] != want[0] || toggles[1] != want[1] {
		t.Fatalf("toggles = %v, want %v", toggles, want)
	}
}

func TestToggleAssignsStateSilently(t *testing.T) {
	b, q := newButtonFixture(t, ToggleButton)

	var toggles int
	b.OnToggled = func(string, bool) { toggles++ }

	b.Toggle(true)
	if !b.Toggled() {
		t.Fatal("button not toggled")
	}
	if toggles != 0 {
		t.Fatalf("toggles = %d, want 0", toggles)
	}
	Dispatch(q)

	// Assigning the current state changes nothing.
	b.Toggle(true)
	if got := q.Len(); got != 0 {
		t.Fatalf("events posted by a redundant toggle: %d", got)
	}

	b.Toggle(false)
	if b.Toggled() {
		t.Fatal("button still toggled")
	}
}

func TestToggleIgnoredOnRegularButton(t *testing.T) {
	b, _ := newButtonFixture(t, RegularButton)

	b.Toggle(true)
	if b.Toggled() {
		t.Fatal("regular button reports toggled")
	}
}
