package input

import (
	"sync"

	"github.com/zyedidia/generic/queue"

	"pacpong/pkg/engine/world"
)

// TouchTracker turns pointer samples into touch events. Each pointer (a
// finger or the mouse) is tracked by id; moves are only reported while the
// pointer is down and its position actually changed.
type TouchTracker struct {
	down map[int]world.Vec2
}

// NewTouchTracker creates an empty tracker
func NewTouchTracker() *TouchTracker {
	return &TouchTracker{down: make(map[int]world.Vec2)}
}

// Press records a pointer going down
func (t *TouchTracker) Press(id int, p world.Vec2) Event {
	t.down[id] = p
	return Touch(TouchStarted, p.X, p.Y)
}

// Move reports a held pointer's new position
func (t *TouchTracker) Move(id int, p world.Vec2) (Event, bool) {
	last, ok := t.down[id]
	if !ok || last == p {
		return Event{}, false
	}
	t.down[id] = p
	return Touch(TouchMoved, p.X, p.Y), true
}

// Release ends a pointer at its last known position
func (t *TouchTracker) Release(id int) (Event, bool) {
	last, ok := t.down[id]
	if !ok {
		return Event{}, false
	}
	delete(t.down, id)
	return Touch(TouchEnded, last.X, last.Y), true
}

// Held reports whether the pointer is down
func (t *TouchTracker) Held(id int) bool {
	_, ok := t.down[id]
	return ok
}

// Queue buffers events between the host's input poll and the scene. It is
// safe for a reader goroutine to push while the game loop drains.
type Queue struct {
	mu     sync.Mutex
	events *queue.Queue[Event]
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{events: queue.New[Event]()}
}

// Push appends an event
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	q.events.Enqueue(ev)
	q.mu.Unlock()
}

// Drain hands every buffered event to fn in arrival order
func (q *Queue) Drain(fn func(Event)) {
	q.mu.Lock()
	var pending []Event
	for !q.events.Empty() {
		pending = append(pending, q.events.Dequeue())
	}
	q.mu.Unlock()

	for _, ev := range pending {
		fn(ev)
	}
}
