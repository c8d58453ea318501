// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"sashui.org/geom"
	"sashui.org/io/event"
)

// InsertPolicy decides where a combo box inserts a new item.
type InsertPolicy uint8

const (
	// NoInsert forbids insertion.
	NoInsert InsertPolicy = iota
	// InsertAtTop inserts before the first item.
	InsertAtTop
	// InsertAtCurrent replaces the active item.
	InsertAtCurrent
	// InsertAtBottom inserts after the last item.
	InsertAtBottom
	// InsertAfterCurrent inserts after the active item.
	InsertAfterCurrent
	// InsertBeforeCurrent inserts before the active item.
	InsertBeforeCurrent
	// InsertAlphabetically inserts at the item's alphabetical rank.
	InsertAlphabetically
)

func (p InsertPolicy) String() string {
	switch p {
	case NoInsert:
		return "NoInsert"
	case InsertAtTop:
		return "InsertAtTop"
	case InsertAtCurrent:
		return "InsertAtCurrent"
	case InsertAtBottom:
		return "InsertAtBottom"
	case InsertAfterCurrent:
		return "InsertAfterCurrent"
	case InsertBeforeCurrent:
		return "InsertBeforeCurrent"
	case InsertAlphabetically:
		return "InsertAlphabetically"
	default:
		panic("unreachable")
	}
}

// ComboState tells whether a combo box displays only its active item
// or the whole option list.
type ComboState uint8

const (
	ComboClosed ComboState = iota
	ComboDropped
)

func (s ComboState) String() string {
	switch s {
	case ComboClosed:
		return "Closed"
	case ComboDropped:
		return "Dropped"
	default:
		panic("unreachable")
	}
}

// ComboItem is an option of a combo box: a text and the path of an
// optional icon displayed next to it.
type ComboItem struct {
	Text string
	Icon string
}

// DefaultMaxVisibleItems bounds the option list of combo boxes
// created without an explicit limit.
const DefaultMaxVisibleItems = 5

// ComboBox lets the user pick one item among a list. When closed
// only the active item shows; dropping the box extends it downward
// over the option list.
type ComboBox struct {
	Core
	policy          InsertPolicy
	maxVisibleItems int
	color           color.RGBA

	state ComboState
	// closedBox remembers the rectangle assigned by the enclosing
	// layout so that closing the list restores it without another
	// layout round.
	closedBox geom.Box

	activeItem int
	items      []ComboItem
}

// NewComboBox returns an empty combo box inserting items according
// to policy. A maxVisibleItems of zero or less selects the default.
func NewComboBox(name string, policy InsertPolicy, maxVisibleItems int, q *event.Queue) *ComboBox {
	if maxVisibleItems <= 0 {
		maxVisibleItems = DefaultMaxVisibleItems
	}
	c := &ComboBox{
		policy:          policy,
		maxVisibleItems: maxVisibleItems,
		color:           colornames.White,
		activeItem:      -1,
	}
	c.init(c, name, q)
	return c
}

// Color returns the background color of the box.
func (c *ComboBox) Color() color.RGBA {
	return c.color
}

// ItemsCount returns the number of registered items.
func (c *ComboBox) ItemsCount() int {
	defer c.geo.scope()()
	return len(c.items)
}

// HasActiveItem reports whether an item is selected.
func (c *ComboBox) HasActiveItem() bool {
	return c.ActiveItem() >= 0
}

// ActiveItem returns the index of the selected item, negative when
// none is.
func (c *ComboBox) ActiveItem() int {
	defer c.geo.scope()()
	return c.activeItem
}

// ActiveItemText returns the text of the selected item.
func (c *ComboBox) ActiveItemText() (string, error) {
	defer c.geo.scope()()
	if c.activeItem < 0 || c.activeItem >= len(c.items) {
		return "", errors.Errorf("no active item in combobox %q", c.name)
	}
	return c.items[c.activeItem].Text, nil
}

// ItemAt returns the item at index.
func (c *ComboBox) ItemAt(index int) (ComboItem, error) {
	defer c.geo.scope()()
	if index < 0 || index >= len(c.items) {
		return ComboItem{}, errors.Errorf("no item %d in combobox %q", index, c.name)
	}
	return c.items[index], nil
}

// AddItem registers item at the position mandated by the insert
// policy. An error is returned when the policy forbids insertion.
func (c *ComboBox) AddItem(item ComboItem) error {
	index, replace, err := c.insertIndexFromPolicy(item.Text)
	if err != nil {
		return err
	}
	if replace && index >= 0 && index < c.ItemsCount() {
		func() {
			defer c.geo.scope()()
			c.items[index] = item
		}()
		c.RequestRepaint()
		return nil
	}
	c.InsertItemAt(index, item)
	return nil
}

// InsertItemAt registers item at index, bypassing the insert policy.
// An index before the start inserts at the front, one past the end
// appends.
func (c *ComboBox) InsertItemAt(index int, item ComboItem) {
	repaint := func() bool {
		defer c.geo.scope()()
		switch {
		case index < 0:
			c.items = append([]ComboItem{item}, c.items...)
		case index >= len(c.items):
			c.items = append(c.items, item)
		default:
			c.items = append(c.items[:index], append([]ComboItem{item}, c.items[index:]...)...)
		}
		// The selection follows the item it pointed to.
		if c.activeItem >= 0 && c.activeItem >= index {
			c.activeItem++
		}
		// The display only changes when the new item is visible in
		// the closed state: the very first item, or the second one
		// when the first is selected.
		return len(c.items) == 1 || (len(c.items) == 2 && c.activeItem >= 0)
	}()
	if repaint {
		c.RequestRepaint()
	}
}

// RemoveItem unregisters the item at index.
func (c *ComboBox) RemoveItem(index int) error {
	err := func() error {
		defer c.geo.scope()()
		if index < 0 || index >= len(c.items) {
			return errors.Errorf("cannot remove item %d from combobox %q: no such item", index, c.name)
		}
		c.items = append(c.items[:index], c.items[index+1:]...)
		if c.activeItem == index && c.activeItem >= len(c.items) {
			c.activeItem = len(c.items) - 1
		}
		return nil
	}()
	if err != nil {
		return err
	}
	c.RequestRepaint()
	return nil
}

// SetActiveItem selects the item at index.
func (c *ComboBox) SetActiveItem(index int) error {
	changed, err := func() (bool, error) {
		defer c.geo.scope()()
		if index < 0 || index >= len(c.items) {
			return false, errors.Errorf("cannot select item %d in combobox %q: no such item", index, c.name)
		}
		if c.activeItem == index {
			return false, nil
		}
		c.activeItem = index
		return true, nil
	}()
	if err != nil {
		return err
	}
	if changed {
		c.RequestRepaint()
	}
	return nil
}

// State returns the current drop state.
func (c *ComboBox) State() ComboState {
	defer c.geo.scope()()
	return c.state
}

// IsDropped reports whether the option list is displayed.
func (c *ComboBox) IsDropped() bool {
	return c.State() == ComboDropped
}

// Drop extends the box downward over the option list.
func (c *ComboBox) Drop() {
	c.setState(ComboDropped)
}

// Close collapses the box back to its active item.
func (c *ComboBox) Close() {
	c.setState(ComboClosed)
}

// setState assigns the drop state. Assigning the current state does
// nothing; otherwise the box posts the resize switching between the
// closed rectangle and the dropped one.
func (c *ComboBox) setState(state ComboState) {
	changed, old, target := func() (bool, geom.Box, geom.Box) {
		defer c.geo.scope()()
		if c.state == state {
			return false, geom.Box{}, geom.Box{}
		}
		c.state = state
		if state == ComboDropped {
			c.closedBox = c.area
			return true, c.area, c.droppedBox()
		}
		return true, c.area, c.closedBox
	}()
	if !changed {
		return
	}
	if old != target {
		c.PostEvent(event.ResizeEvent{Target: c.self, Old: old, New: target})
	}
	c.RequestRepaint()
}

// droppedBox returns the rectangle of the box when dropped: the
// closed rectangle extended downward to hold the visible items, top
// edges aligned. Callers hold the geometry lock.
func (c *ComboBox) droppedBox() geom.Box {
	h := c.closedBox.H * float32(c.visibleItemsCount())
	return geom.Box{
		X: c.closedBox.X,
		Y: c.closedBox.Top() + h/2,
		W: c.closedBox.W,
		H: h,
	}
}

// VisibleItemsCount returns the number of items shown when dropped:
// the items count bounded by the maximum, at least one.
func (c *ComboBox) VisibleItemsCount() int {
	defer c.geo.scope()()
	return c.visibleItemsCount()
}

func (c *ComboBox) visibleItemsCount() int {
	count := len(c.items)
	if count > c.maxVisibleItems {
		count = c.maxVisibleItems
	}
	if count < 1 {
		count = 1
	}
	return count
}

// insertIndexFromPolicy returns the index at which an item holding
// text lands, and whether the item currently at that index is
// replaced.
func (c *ComboBox) insertIndexFromPolicy(text string) (int, bool, error) {
	defer c.geo.scope()()

	// The alphabetical rank is worked out by comparing the new text
	// against every registered item rather than sorting a copy.
	rank := len(c.items)
	for i, item := range c.items {
		if item.Text < text {
			rank = i - 1
		}
	}
	// A text smaller than every item ends up with a rank of -1,
	// which means the front of the list.
	if rank < 0 {
		rank = 0
	}

	switch c.policy {
	case InsertAtTop:
		return 0, false, nil
	case InsertAtCurrent:
		return c.activeItem, true, nil
	case InsertAtBottom:
		return len(c.items), false, nil
	case InsertAfterCurrent:
		return c.activeItem + 1, false, nil
	case InsertBeforeCurrent:
		return c.activeItem, false, nil
	case InsertAlphabetically:
		return rank, false, nil
	default:
		return 0, false, errors.Errorf("cannot insert %q in combobox %q: policy %v forbids insertion", text, c.name, c.policy)
	}
}
