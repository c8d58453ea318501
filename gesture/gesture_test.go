// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"testing"

	"sashui.org/geom"
	"sashui.org/io/pointer"
)

var bounds = geom.FromSize(geom.Sz(100, 100))

func TestDragAnchorLifecycle(t *testing.T) {
	var d Drag
	press := pointer.Event{
		Kind:     pointer.Press,
		Buttons:  pointer.ButtonMiddle,
		Position: geom.Pt(10, 10),
		Start:    geom.Pt(10, 10),
	}
	if _, ok := d.Update(bounds, press); ok {
		t.Error("press reported a pan")
	}
	if !d.Dragging() {
		t.Fatal("anchor not recorded on press")
	}
	drag := press
	drag.Kind = pointer.Drag
	drag.Position = geom.Pt(15, 12)
	drag.Motion = geom.Pt(5, 2)
	pan, ok := d.Update(bounds, drag)
	if !ok {
		t.Fatal("drag not recognized")
	}
	if pan.Anchor != press.Position {
		t.Errorf("got anchor %+v, expected the press position %+v", pan.Anchor, press.Position)
	}
	if pan.Delta != drag.Motion {
		t.Errorf("got delta %+v, expected %+v", pan.Delta, drag.Motion)
	}

	// Further drag events reuse the same anchor but report only the
	// incremental motion.
	drag.Position = geom.Pt(25, 20)
	drag.Motion = geom.Pt(10, 8)
	pan, ok = d.Update(bounds, drag)
	if !ok {
		t.Fatal("second drag not recognized")
	}
	if pan.Anchor != press.Position {
		t.Errorf("anchor moved to %+v during gesture", pan.Anchor)
	}
	if pan.Delta != drag.Motion {
		t.Errorf("got delta %+v, expected the incremental motion %+v", pan.Delta, drag.Motion)
	}

	drop := drag
	drop.Kind = pointer.Drop
	d.Update(bounds, drop)
	if d.Dragging() {
		t.Error("anchor survived the drop")
	}
}

func TestDragLazyAnchor(t *testing.T) {
	// A drag arriving without a prior press creates the anchor from
	// the press origin carried by the event.
	var d Drag
	drag := pointer.Event{
		Kind:     pointer.Drag,
		Buttons:  pointer.ButtonMiddle,
		Position: geom.Pt(30, 30),
		Start:    geom.Pt(20, 20),
		Motion:   geom.Pt(10, 10),
	}
	pan, ok := d.Update(bounds, drag)
	if !ok {
		t.Fatal("drag not recognized")
	}
	if pan.Anchor != drag.Start {
		t.Errorf("got anchor %+v, expected the press origin %+v", pan.Anchor, drag.Start)
	}
}

func TestDragOutsideOrigin(t *testing.T) {
	var d Drag
	drag := pointer.Event{
		Kind:     pointer.Drag,
		Buttons:  pointer.ButtonMiddle,
		Position: geom.Pt(10, 10),
		Start:    geom.Pt(200, 200),
		Motion:   geom.Pt(5, 5),
	}
	if _, ok := d.Update(bounds, drag); ok {
		t.Error("drag originating outside the bounds was recognized")
	}
}

func TestDragWrongButton(t *testing.T) {
	var d Drag
	drag := pointer.Event{
		Kind:     pointer.Drag,
		Buttons:  pointer.ButtonLeft,
		Position: geom.Pt(10, 10),
		Start:    geom.Pt(10, 10),
		Motion:   geom.Pt(5, 5),
	}
	if _, ok := d.Update(bounds, drag); ok {
		t.Error("drag with the wrong button was recognized")
	}
}

func TestClick(t *testing.T) {
	var c Click
	press := pointer.Event{
		Kind:     pointer.Press,
		Buttons:  pointer.ButtonLeft,
		Position: geom.Pt(0, 0),
	}
	if _, ok := c.Update(bounds, press); ok {
		t.Error("press alone reported a click")
	}
	if !c.Pressed() {
		t.Fatal("press not registered")
	}
	release := press
	release.Kind = pointer.Release
	if _, ok := c.Update(bounds, release); !ok {
		t.Error("press and release did not report a click")
	}
	// A release outside the bounds abandons the click.
	c.Update(bounds, press)
	release.Position = geom.Pt(500, 0)
	if _, ok := c.Update(bounds, release); ok {
		t.Error("release outside the bounds reported a click")
	}
}
