// Package frame provides the per-refresh primitives the particle field runs
// on: a frame request queue, resize notifications and frame timing.
package frame

import (
	"slices"

	"github.com/iburimskiy/particle-field/internal/field"
)

// Queue collects frame requests and runs them on the next Flush. Callbacks
// requested during a Flush wait for the following one.
type Queue struct {
	next    field.FrameID
	pending map[field.FrameID]func()
}

func NewQueue() *Queue {
	return &Queue{pending: map[field.FrameID]func(){}}
}

func (q *Queue) RequestFrame(fn func()) field.FrameID {
	q.next++
	q.pending[q.next] = fn
	return q.next
}

func (q *Queue) CancelFrame(id field.FrameID) {
	delete(q.pending, id)
}

func (q *Queue) Len() int { return len(q.pending) }

// Flush runs every callback pending at call time, oldest first, and returns
// how many ran. A callback cancelled by an earlier one in the same flush is
// skipped.
func (q *Queue) Flush() int {
	if len(q.pending) == 0 {
		return 0
	}
	ids := make([]field.FrameID, 0, len(q.pending))
	for id := range q.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	ran := 0
	for _, id := range ids {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn()
		ran++
	}
	return ran
}
