package event

import (
	"github.com/lixenwraith/minotaur/parameter"
)

// EventQueue is a fixed-size ring buffer of game events.
// Single producer (the tick) and single consumer (the shell), same goroutine.
//
// Overflow: Oldest events overwritten when full
type EventQueue struct {
	events [parameter.EventQueueSize]GameEvent
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, dropping the oldest when full
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events[eq.tail&parameter.EventBufferMask] = ev
	eq.tail++
	if eq.tail-eq.head > parameter.EventQueueSize {
		eq.head = eq.tail - parameter.EventQueueSize
	}
}

// Emit pushes an event without payload
func (eq *EventQueue) Emit(t EventType) {
	eq.Push(GameEvent{Type: t})
}

// Len returns the number of unread events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	out := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		out = append(out, eq.events[i&parameter.EventBufferMask])
	}
	eq.head = eq.tail
	return out
}
