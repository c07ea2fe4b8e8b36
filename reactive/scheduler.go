package reactive

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// maxUpdateCount is how many times one watcher may re-enqueue itself within
// a single flush before the flush is aborted as a likely infinite loop.
const maxUpdateCount = 100

// InfiniteUpdateError reports a watcher that kept re-triggering itself past
// the update threshold within one flush.
type InfiniteUpdateError struct {
	Expression string
	User       bool
}

func (e *InfiniteUpdateError) Error() string {
	if e.User {
		return "possible infinite update loop in watcher with expression " + e.Expression
	}
	return "possible infinite update loop in a component render function"
}

// Scheduler batches watcher runs: all watchers dirtied within one
// synchronous turn flush together at the turn boundary, deduplicated by id
// and ordered ascending so parents run before children and user watchers
// before their component's render watcher.
type Scheduler struct {
	rt *Runtime

	queue     []*Watcher
	activated []func()
	has       mapset.Set[uint64]
	circular  map[uint64]int

	waiting  bool
	flushing bool
	index    int
}

func newScheduler(rt *Runtime) *Scheduler {
	return &Scheduler{
		rt:       rt,
		has:      mapset.NewThreadUnsafeSet[uint64](),
		circular: make(map[uint64]int),
	}
}

// enqueue adds a watcher to the pending queue unless its id is already
// there. Mid-flush enqueues are spliced in after the flush cursor at their
// id-sorted position, so a watcher with a smaller id than the remaining
// entries still runs in the current flush.
func (s *Scheduler) enqueue(w *Watcher) {
	id := w.id
	if s.has.Contains(id) {
		return
	}
	s.has.Add(id)
	if !s.flushing {
		s.queue = append(s.queue, w)
	} else {
		i := len(s.queue) - 1
		for i > s.index && s.queue[i].id > id {
			i--
		}
		s.queue = append(s.queue, nil)
		copy(s.queue[i+2:], s.queue[i+1:])
		s.queue[i+1] = w
	}
	if !s.waiting {
		s.waiting = true
		if !s.rt.async {
			s.flush()
			return
		}
		s.rt.NextTick(s.flush)
	}
}

func (s *Scheduler) queueActivated(fn func()) {
	s.activated = append(s.activated, fn)
}

// flush runs the queue in ascending id order with a live cursor, so
// watchers enqueued by earlier runs in the same flush are still attended
// to. All batch state resets before any post-flush hook fires: a hook that
// writes reactive state starts a fresh batch instead of growing this one.
func (s *Scheduler) flush() {
	s.flushing = true

	sort.Slice(s.queue, func(i, j int) bool { return s.queue[i].id < s.queue[j].id })

	for s.index = 0; s.index < len(s.queue); s.index++ {
		w := s.queue[s.index]
		if w.before != nil {
			w.before()
		}
		id := w.id
		// cleared before the run so the watcher can legally re-enqueue
		// itself when the value it watches keeps changing
		s.has.Remove(id)
		w.Run()
		if s.has.Contains(id) {
			s.circular[id]++
			if s.circular[id] > maxUpdateCount {
				s.rt.HandleError(
					&InfiniteUpdateError{Expression: w.expression, User: w.user},
					w.ownerRef(), "scheduler flush")
				break
			}
		}
	}

	activated := make([]func(), len(s.activated))
	copy(activated, s.activated)
	updated := make([]*Watcher, len(s.queue))
	copy(updated, s.queue)

	s.reset()

	for _, fn := range activated {
		fn()
	}
	// children report updated before their parents
	for i := len(updated) - 1; i >= 0; i-- {
		if updated[i].onUpdated != nil {
			updated[i].onUpdated()
		}
	}
}

func (s *Scheduler) reset() {
	s.queue = s.queue[:0]
	s.activated = s.activated[:0]
	s.has.Clear()
	s.circular = make(map[uint64]int)
	s.index = 0
	s.waiting = false
	s.flushing = false
}
