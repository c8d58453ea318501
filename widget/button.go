// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/colornames"

	"sashui.org/gesture"
	"sashui.org/geom"
	"sashui.org/io/event"
	"sashui.org/io/pointer"
	"sashui.org/layout"
)

// ButtonKind selects the behavior of a button when it is clicked.
type ButtonKind uint8

const (
	// RegularButton returns to its released state as soon as the
	// click completes.
	RegularButton ButtonKind = iota
	// ToggleButton stays pushed until the user clicks it again.
	ToggleButton
)

// ButtonState is the appearance of a button.
type ButtonState uint8

const (
	ButtonReleased ButtonState = iota
	ButtonPressed
	ButtonToggled
)

func (s ButtonState) String() string {
	switch s {
	case ButtonReleased:
		return "Released"
	case ButtonPressed:
		return "Pressed"
	case ButtonToggled:
		return "Toggled"
	default:
		panic("unreachable")
	}
}

// Borders is the visual frame of a button. The rendering
// collaborator draws the light edges on the top-left and the dark
// ones on the bottom-right, swapping the two when Pressed is set.
type Borders struct {
	Size    float32
	Pressed bool
}

// DefaultBorderSize is the border thickness of buttons created
// without an explicit one.
const DefaultBorderSize = 10

// iconMaxDims bounds the size of a button icon.
var iconMaxDims = geom.Sz(100, 100)

// Button is a clickable widget displaying a text and an optional
// icon side by side.
type Button struct {
	Core
	kind    ButtonKind
	color   color.RGBA
	click   gesture.Click
	content *layout.Linear

	state          ButtonState
	borders        Borders
	bordersChanged bool

	// OnClicked, when set, is invoked at the end of every completed
	// click.
	OnClicked func(name string)
	// OnToggled, when set, is invoked when a click flips the state
	// of a toggle button. It never fires for a regular button, nor
	// when the state is assigned through Toggle.
	OnToggled func(name string, toggled bool)
}

// NewButton returns a button labelled text. A non-empty icon names a
// picture file displayed left of the text.
func NewButton(name, text, icon string, kind ButtonKind, q *event.Queue) (*Button, error) {
	content := layout.NewLinear(layout.Horizontal, DefaultBorderSize)
	b := &Button{
		kind:    kind,
		color:   colornames.Silver,
		content: content,
		borders: Borders{Size: DefaultBorderSize},
	}
	b.init(b, name, q)

	if icon != "" {
		pic := NewPicture(name+"_icon", icon, Fit, q)
		pic.SetSizeHint(iconMaxDims)
		content.AddItem(pic.Widget())
		pic.SetParent(b)
	}
	label, err := NewLabel(name+"_label", text, AlignHCenter, AlignVCenter, q)
	if err != nil {
		return nil, err
	}
	content.AddItem(label.Widget())
	label.SetParent(b)
	return b, nil
}

// Color returns the background color of the button.
func (b *Button) Color() color.RGBA {
	return b.color
}

// State returns the current state of the button.
func (b *Button) State() ButtonState {
	defer b.geo.scope()()
	return b.state
}

// Toggled reports whether the button is currently toggled. It is
// always false for a regular button.
func (b *Button) Toggled() bool {
	return b.State() == ButtonToggled
}

// Borders returns the current border description.
func (b *Button) Borders() Borders {
	defer b.geo.scope()()
	return b.borders
}

// Toggle forces the toggled state of the button. It has no effect on
// a regular button and does not invoke OnToggled: the caller decided
// the state, it does not need to hear about it.
func (b *Button) Toggle(toggled bool) {
	if b.kind != ToggleButton {
		return
	}
	changed := func() bool {
		defer b.geo.scope()()
		state := ButtonReleased
		if toggled {
			state = ButtonToggled
		}
		if b.state == state {
			return false
		}
		b.state = state
		b.borders.Pressed = toggled
		b.bordersChanged = true
		return true
	}()
	if changed {
		b.RequestRepaint()
	}
}

// Resize assigns the button its new rectangle and lays out the icon
// and the label inside the borders.
func (b *Button) Resize(window geom.Box) {
	b.SetRenderingArea(window)
	inner := window.ToOrigin()
	inner.W -= 2 * b.Borders().Size
	inner.H -= 2 * b.Borders().Size
	if inner.W < 0 {
		inner.W = 0
	}
	if inner.H < 0 {
		inner.H = 0
	}
	b.content.Update(inner, b.queue)
}

// HandlePointer feeds a pointer event, in the global frame, to the
// button. It reports whether the event changed the button's state.
func (b *Button) HandlePointer(e pointer.Event) bool {
	local := e
	local.Position = b.MapFromGlobal(e.Position)
	local.Start = b.MapFromGlobal(e.Start)
	bounds := b.RenderingArea().ToOrigin()

	switch local.Kind {
	case pointer.Press:
		if _, _ = b.click.Update(bounds, local); !b.click.Pressed() {
			return false
		}
		// A press on a toggled button keeps the pushed appearance;
		// the release decides whether it untoggles.
		if b.State() == ButtonReleased {
			b.setPressed()
		}
		return true
	case pointer.Release:
		if _, ok := b.click.Update(bounds, local); !ok {
			// The press never completed inside the button.
			b.resetState()
			return false
		}
		b.completeClick()
		return true
	case pointer.Drop:
		// The pointer was dragged onto another widget: the release
		// will never reach the button, reset it.
		b.click.Update(bounds, local)
		b.resetState()
		return true
	}
	return false
}

// completeClick updates the state at the end of a click and fires
// the relevant callbacks. A completed click flips a toggle button
// between Toggled and Released and always releases a regular one.
func (b *Button) completeClick() {
	toggled := func() bool {
		defer b.geo.scope()()
		if b.kind == ToggleButton && b.state == ButtonPressed {
			b.state = ButtonToggled
			b.borders.Pressed = true
		} else {
			b.state = ButtonReleased
			b.borders.Pressed = false
		}
		b.bordersChanged = true
		return b.state == ButtonToggled
	}()
	b.RequestRepaint()
	if b.OnClicked != nil {
		b.OnClicked(b.Name())
	}
	if b.kind == ToggleButton && b.OnToggled != nil {
		b.OnToggled(b.Name(), toggled)
	}
}

// resetState puts an aborted press back to released. A toggled
// button is left alone.
func (b *Button) resetState() {
	changed := func() bool {
		defer b.geo.scope()()
		if b.state != ButtonPressed {
			return false
		}
		b.state = ButtonReleased
		b.borders.Pressed = false
		b.bordersChanged = true
		return true
	}()
	if changed {
		b.RequestRepaint()
	}
}

func (b *Button) setPressed() {
	func() {
		defer b.geo.scope()()
		b.state = ButtonPressed
		b.borders.Pressed = true
		b.bordersChanged = true
	}()
	b.RequestRepaint()
}
