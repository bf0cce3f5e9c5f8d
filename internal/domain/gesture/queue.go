package gesture

import (
	"sync/atomic"
	"time"
)

// EdgeKind is the direction of a raw button transition
type EdgeKind int

const (
	EdgeDown EdgeKind = iota + 1
	EdgeUp
)

// Edge is a raw button transition stamped with the capture time.
type Edge struct {
	At   time.Duration
	Kind EdgeKind
}

// EdgeQueue hands edges from one capture goroutine to the tick loop.
//
// Push is called only by the writer and Drain only by the reader. Each queued edge
// is consumed exactly once and becomes its own classifier tick, so a press and a
// release captured inside one frame are never merged into a single tick.
type EdgeQueue struct {
	ch      chan Edge
	dropped atomic.Int64

	// reader side
	down bool
	last time.Duration
}

// NewEdgeQueue creates a queue holding up to capacity undrained edges.
func NewEdgeQueue(capacity int) *EdgeQueue {
	if capacity < 1 {
		capacity = 1
	}
	return &EdgeQueue{ch: make(chan Edge, capacity)}
}

// Push queues an edge without blocking. It returns false when the queue is full
// and the edge was dropped.
func (q *EdgeQueue) Push(e Edge) bool {
	select {
	case q.ch <- e:
		return true
	default:
		q.dropped.Add(1)
		return false
	}
}

// Dropped returns how many edges Push has discarded
func (q *EdgeQueue) Dropped() int64 {
	return q.dropped.Load()
}

// Drain feeds every queued edge to c as a separate tick, then runs one level tick
// at now. It returns the events produced, in order.
//
// Edge times are clamped into [previous drain, now] so ticks never go backwards,
// even when an edge captured before the last drain is pushed after it.
func (q *EdgeQueue) Drain(c *Classifier, now time.Duration) []Event {
	var events []Event
	for {
		select {
		case e := <-q.ch:
			at := min(max(e.At, q.last), now)
			var in Input
			switch e.Kind {
			case EdgeDown:
				in.Pressed = true
				q.down = true
			case EdgeUp:
				in.Released = true
				q.down = false
			default:
				continue
			}
			q.last = at
			if ev := c.Tick(at, in); ev != None {
				events = append(events, ev)
			}
		default:
			q.last = max(q.last, now)
			if ev := c.Tick(now, Input{Held: q.down}); ev != None {
				events = append(events, ev)
			}
			return events
		}
	}
}
