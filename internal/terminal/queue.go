package terminal

import "sync"

// Queue collects lines produced by asynchronous effects until a renderer
// drains them. Push may be called from any goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []Line
	ready   chan struct{}
}

func NewQueue() *Queue {
	return &Queue{ready: make(chan struct{}, 1)}
}

func (q *Queue) Push(lines ...Line) {
	if len(lines) == 0 {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, lines...)
	q.mu.Unlock()

	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// Drain returns and forgets everything pushed so far, in push order.
func (q *Queue) Drain() []Line {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.pending
	q.pending = nil
	return out
}

// Ready fires after at least one Push since the last receive.
func (q *Queue) Ready() <-chan struct{} {
	return q.ready
}
