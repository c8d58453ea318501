// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"golang.org/x/image/colornames"

	"sashui.org/geom"
	"sashui.org/io/event"
)

func TestLabelSizeHint(t *testing.T) {
	q := new(event.Queue)
	l, err := NewLabel("title", "hello", AlignLeft, AlignTop, q)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	if hint := l.SizeHint(); !hint.Valid() {
		t.Fatalf("size hint = %v, want a non-empty size", hint)
	}

	empty, err := NewLabel("empty", "", AlignLeft, AlignTop, q)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}
	if hint := empty.SizeHint(); hint.Valid() {
		t.Fatalf("size hint of empty label = %v, want zero", hint)
	}
	if got := l.Color(); got != colornames.Black {
		t.Errorf("color = %v, want black", got)
	}
}

func TestLabelSetTextIdempotent(t *testing.T) {
	q := new(event.Queue)
	l, err := NewLabel("title", "hello", AlignLeft, AlignTop, q)
	if err != nil {
		t.Fatalf("NewLabel: %v", err)
	}

	l.SetText("hello")
	if got := q.Len(); got != 0 {
		t.Fatalf("events posted by a redundant SetText: %d", got)
	}

	l.SetText("world")
	if got := l.Text(); got != "world" {
		t.Fatalf("text = %q, want world", got)
	}
	if got := q.Len(); got == 0 {
		t.Fatal("no repaint requested by an effective SetText")
	}
}

func TestLabelTextBoxAlignment(t *testing.T) {
	q := new(event.Queue)
	env := geom.Sz(100, 50)

	tests := []struct {
		name   string
		hAlign HorizontalAlignment
		vAlign VerticalAlignment
	}{
		{"top left", AlignLeft, AlignTop},
		{"center", AlignHCenter, AlignVCenter},
		{"bottom right", AlignRight, AlignBottom},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewLabel("title", "hello", tc.hAlign, tc.vAlign, q)
			if err != nil {
				t.Fatalf("NewLabel: %v", err)
			}
			size := l.SizeHint()
			box := l.TextBox(env)

			if got := box.ToSize(); got != size {
				t.Fatalf("text box size = %v, want %v", got, size)
			}
			switch tc.hAlign {
			case AlignLeft:
				if box.Left() != -env.W/2 {
					t.Errorf("left bound = %v, want %v", box.Left(), -env.W/2)
				}
			case AlignRight:
				if box.Right() != env.W/2 {
					t.Errorf("right bound = %v, want %v", box.Right(), env.W/2)
				}
			case AlignHCenter:
				if box.X != 0 {
					t.Errorf("center X = %v, want 0", box.X)
				}
			}
			switch tc.vAlign {
			case AlignTop:
				if box.Top() != -env.H/2 {
					t.Errorf("top bound = %v, want %v", box.Top(), -env.H/2)
				}
			case AlignBottom:
				if box.Bottom() != env.H/2 {
					t.Errorf("bottom bound = %v, want %v", box.Bottom(), env.H/2)
				}
			case AlignVCenter:
				if box.Y != 0 {
					t.Errorf("center Y = %v, want 0", box.Y)
				}
			}
		})
	}
}
