// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// base is the item registry shared by the strategies. Physical
// indices are assigned in registration order; removing an item
// decrements the index of every item registered after it so that
// indices always cover [0, count).
type base struct {
	items  []Item
	logger *log.Entry
}

func newBase(strategy string) base {
	return base{
		logger: log.WithField("layout", strategy),
	}
}

// addItem registers item and returns its physical index. A nil or
// already registered item is rejected with a negative index.
func (b *base) addItem(item Item) int {
	if item == nil {
		return -1
	}
	if b.indexOf(item) >= 0 {
		b.logger.Warnf("item %q is already registered", item.Name())
		return -1
	}
	b.items = append(b.items, item)
	return len(b.items) - 1
}

// removeItem unregisters item, compacts the physical indices and
// returns the index the item occupied, or a negative value when the
// item is unknown.
func (b *base) removeItem(item Item) int {
	id := b.indexOf(item)
	if id < 0 {
		return id
	}
	b.items = slices.Delete(b.items, id, id+1)
	return id
}

func (b *base) indexOf(item Item) int {
	for i, it := range b.items {
		if it == item {
			return i
		}
	}
	return -1
}

// Count returns the number of registered items.
func (b *base) Count() int {
	return len(b.items)
}

// ItemAt returns the item with physical index id, or nil when id is
// out of range.
func (b *base) ItemAt(id int) Item {
	if id < 0 || id >= len(b.items) {
		return nil
	}
	return b.items[id]
}
