// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for deferred event handling.
//
// Geometry changes are never applied in place: widgets and layout
// strategies post resize and paint requests to a Queue which the
// owning container drains later, outside of any layout pass.
package event

import "sync"

// Tag is the stable identifier for an event target. For a widget w,
// the tag is typically w.
type Tag interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

// Queue collects posted events until the owning container drains
// them. Events are delivered in the order they were posted.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// Post appends e to the queue.
func (q *Queue) Post(e Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain delivers every pending event to apply in FIFO order. Events
// posted while apply runs are delivered in the same drain.
func (q *Queue) Drain(apply func(Event)) {
	for {
		q.mu.Lock()
		if len(q.events) == 0 {
			q.mu.Unlock()
			return
		}
		e := q.events[0]
		q.events = q.events[1:]
		q.mu.Unlock()
		apply(e)
	}
}
