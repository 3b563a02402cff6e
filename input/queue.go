package input

import "sync"

// Queue buffers events pushed from any goroutine until the frame loop
// drains them.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drain hands every buffered event to fn in arrival order.
func (q *Queue) Drain(fn func(Event)) {
	q.mu.Lock()
	events := q.events
	q.events = nil
	q.mu.Unlock()

	for _, e := range events {
		fn(e)
	}
}
