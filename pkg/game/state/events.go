package state

import (
	"iter"

	"github.com/gookit/color"
)

// Event is one narrated line with its display color
type Event struct {
	Text  string
	Color color.Color
}

// EventLog is an append-and-cap feed of narrations.
// Once full, posting drops the oldest event.
type EventLog struct {
	events   []Event
	capacity int
}

// NewEventLog creates an event log keeping at most capacity events.
// A non-positive capacity falls back to DefaultEventCapacity.
func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = DefaultEventCapacity
	}
	return &EventLog{
		events:   make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// PostEvent appends a narration
func (l *EventLog) PostEvent(text string, c color.Color) {
	if len(l.events) < l.capacity {
		l.events = append(l.events, Event{Text: text, Color: c})
		return
	}
	copy(l.events, l.events[1:])
	l.events[len(l.events)-1] = Event{Text: text, Color: c}
}

// Len returns the number of events currently kept
func (l *EventLog) Len() int {
	return len(l.events)
}

// Cap returns the maximum number of events kept
func (l *EventLog) Cap() int {
	return l.capacity
}

// Events yields every kept event, oldest first
func (l *EventLog) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, e := range l.events {
			if !yield(e) {
				return
			}
		}
	}
}

// Last returns the most recent event
func (l *EventLog) Last() (Event, bool) {
	if len(l.events) == 0 {
		return Event{}, false
	}
	return l.events[len(l.events)-1], true
}
