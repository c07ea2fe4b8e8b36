package reactive

import "sort"

// Array is a reactive list container. Index-based access cannot be
// intercepted per element, so only the length-changing mutators notify, and
// they notify through the single container-level dep. Reads register that
// same dep so list-shaped watchers re-run on any tracked mutation.
type Array struct {
	rt    *Runtime
	ob    *Observer
	items []any
}

// NewArray builds a reactive list from the given elements and observes it,
// unless observing is toggled off.
func NewArray(rt *Runtime, items ...any) *Array {
	if rt.shouldObserve {
		for i, v := range items {
			items[i] = convert(rt, v)
		}
	}
	a := &Array{rt: rt, items: items}
	Observe(a)
	return a
}

// convertItems rewrites plain nested containers about to enter an observed
// array into their reactive forms.
func (a *Array) convertItems(items []any) {
	if a.ob == nil || !a.rt.shouldObserve {
		return
	}
	for i, v := range items {
		items[i] = convert(a.rt, v)
	}
}

func (a *Array) Runtime() *Runtime { return a.rt }

func (a *Array) Observer() *Observer { return a.ob }

func (a *Array) Len() int {
	a.depend()
	return len(a.items)
}

// Get reads the element at i, registering the container dep when inside a
// watcher evaluation. Panics when i is out of range, like a plain slice.
func (a *Array) Get(i int) any {
	a.depend()
	return a.items[i]
}

// Put stores at an existing index without any notification. Direct index
// assignment is not a tracked mutation; use SetIndex for the reactive path.
func (a *Array) Put(i int, value any) {
	a.items[i] = value
}

// SetIndex reactively replaces the element at i, growing the list with nil
// elements when i is past the end.
func (a *Array) SetIndex(i int, value any) {
	if i < 0 {
		a.rt.Warn("reactive: negative array index ignored", nil)
		return
	}
	for len(a.items) < i {
		a.items = append(a.items, nil)
	}
	a.Splice(i, 1, value)
}

// Push appends and returns the new length.
func (a *Array) Push(items ...any) int {
	a.convertItems(items)
	a.items = append(a.items, items...)
	a.mutated(items)
	return len(a.items)
}

// Pop removes and returns the last element, nil when empty.
func (a *Array) Pop() any {
	var out any
	if n := len(a.items); n > 0 {
		out = a.items[n-1]
		a.items[n-1] = nil
		a.items = a.items[:n-1]
	}
	a.mutated(nil)
	return out
}

// Shift removes and returns the first element, nil when empty.
func (a *Array) Shift() any {
	var out any
	if len(a.items) > 0 {
		out = a.items[0]
		a.items = append(a.items[:0], a.items[1:]...)
	}
	a.mutated(nil)
	return out
}

// Unshift prepends and returns the new length.
func (a *Array) Unshift(items ...any) int {
	a.convertItems(items)
	a.items = append(append(make([]any, 0, len(items)+len(a.items)), items...), a.items...)
	a.mutated(items)
	return len(a.items)
}

// Splice removes deleteCount elements at start, inserts items in their
// place, and returns the removed elements. Negative start counts from the
// end; out-of-range values are clamped.
func (a *Array) Splice(start, deleteCount int, items ...any) []any {
	n := len(a.items)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-start {
		deleteCount = n - start
	}
	removed := make([]any, deleteCount)
	copy(removed, a.items[start:start+deleteCount])

	a.convertItems(items)
	next := make([]any, 0, n-deleteCount+len(items))
	next = append(next, a.items[:start]...)
	next = append(next, items...)
	next = append(next, a.items[start+deleteCount:]...)
	a.items = next

	a.mutated(items)
	return removed
}

// Sort orders elements by less and counts as a tracked mutation.
func (a *Array) Sort(less func(x, y any) bool) {
	sort.SliceStable(a.items, func(i, j int) bool { return less(a.items[i], a.items[j]) })
	a.mutated(nil)
}

// Reverse reverses in place and counts as a tracked mutation.
func (a *Array) Reverse() {
	for i, j := 0, len(a.items)-1; i < j; i, j = i+1, j-1 {
		a.items[i], a.items[j] = a.items[j], a.items[i]
	}
	a.mutated(nil)
}

func (a *Array) depend() {
	if a.ob != nil && a.rt.target != nil {
		a.ob.dep.Depend()
	}
}

// mutated observes any inserted elements and fires the container dep. An
// unobserved array is plain storage and stays silent.
func (a *Array) mutated(inserted []any) {
	if a.ob == nil {
		return
	}
	for _, v := range inserted {
		Observe(v)
	}
	a.ob.dep.Notify()
}
