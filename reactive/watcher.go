package reactive

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// Callback receives the re-evaluated value and the one it replaced.
type Callback func(newValue, oldValue any)

// Owner is the component-side contract a watcher keeps with whoever owns
// it: registration for teardown, and a destroyed check so teardown during
// owner destruction skips the redundant removal.
type Owner interface {
	AddWatcher(w *Watcher)
	RemoveWatcher(w *Watcher)
	BeingDestroyed() bool
}

type WatcherOptions struct {
	Deep bool
	User bool
	Lazy bool
	Sync bool

	// Before runs right before a scheduled run, while the flush still holds
	// the queue; render watchers hang their before-update hook here.
	Before func()
	// OnUpdated runs after the flush fully resets, children before parents.
	OnUpdated func()
	// Expression names the watcher in error reports.
	Expression string
}

// Watcher evaluates a getter, records exactly the deps the evaluation read,
// and re-evaluates when any of them notify: immediately when synchronous,
// through the scheduler otherwise, or lazily on next read when used as a
// computed value.
type Watcher struct {
	rt    *Runtime
	id    uint64
	owner Owner

	getter     func() any
	cb         Callback
	expression string

	deep bool
	user bool
	lazy bool
	sync bool

	active bool
	dirty  bool

	deps      []*Dep
	newDeps   []*Dep
	depIDs    mapset.Set[uint64]
	newDepIDs mapset.Set[uint64]

	value any

	before    func()
	onUpdated func()
}

// NewWatcher registers the watcher with its owner and, unless lazy,
// evaluates once to establish the initial value and dependency set.
func NewWatcher(rt *Runtime, owner Owner, getter func() any, cb Callback, opts WatcherOptions) *Watcher {
	w := &Watcher{
		rt:         rt,
		id:         rt.nextWatcherID(),
		owner:      owner,
		getter:     getter,
		cb:         cb,
		expression: opts.Expression,
		deep:       opts.Deep,
		user:       opts.User,
		lazy:       opts.Lazy,
		sync:       opts.Sync,
		active:     true,
		dirty:      opts.Lazy,
		depIDs:     mapset.NewThreadUnsafeSet[uint64](),
		newDepIDs:  mapset.NewThreadUnsafeSet[uint64](),
		before:     opts.Before,
		onUpdated:  opts.OnUpdated,
	}
	if owner != nil {
		owner.AddWatcher(w)
	}
	if !w.lazy {
		w.value = w.Get()
	}
	return w
}

func (w *Watcher) ID() uint64 { return w.id }

func (w *Watcher) Value() any { return w.value }

func (w *Watcher) Dirty() bool { return w.dirty }

func (w *Watcher) Active() bool { return w.active }

func (w *Watcher) Expression() string { return w.expression }

// Get evaluates the getter with this watcher installed as the collection
// target. The pop and the dependency-generation swap run on every exit
// path, including panics, so the collection stack can never end up
// unbalanced. Getter panics are recovered and reported for user watchers;
// for render and other internal watchers they propagate after the stack is
// repaired.
func (w *Watcher) Get() any {
	w.rt.PushTarget(w)
	var value any
	defer func() {
		// a deep watcher touches every nested container while it is still
		// the target, so the deps collect here
		if w.deep {
			Traverse(value)
		}
		w.rt.PopTarget()
		w.cleanupDeps()
	}()
	if w.user {
		func() {
			defer func() {
				if r := recover(); r != nil {
					w.rt.HandleError(asError(r), w.ownerRef(),
						fmt.Sprintf("getter for watcher %q", w.expression))
				}
			}()
			value = w.getter()
		}()
	} else {
		value = w.getter()
	}
	return value
}

// AddDep records a dep read during the current evaluation and subscribes to
// it unless the previous generation already did.
func (w *Watcher) AddDep(dep *Dep) {
	id := dep.ID()
	if w.newDepIDs.Contains(id) {
		return
	}
	w.newDepIDs.Add(id)
	w.newDeps = append(w.newDeps, dep)
	if !w.depIDs.Contains(id) {
		dep.AddSub(w)
	}
}

// cleanupDeps unsubscribes from deps the last evaluation no longer read and
// swaps the dependency generations.
func (w *Watcher) cleanupDeps() {
	for _, dep := range w.deps {
		if !w.newDepIDs.Contains(dep.ID()) {
			dep.RemoveSub(w)
		}
	}
	w.depIDs, w.newDepIDs = w.newDepIDs, w.depIDs
	w.newDepIDs.Clear()
	w.deps, w.newDeps = w.newDeps, w.deps[:0]
}

// Update is called synchronously by a notifying dep. Lazy watchers only
// mark dirty, synchronous watchers run inline, everything else is enqueued
// for the batched flush.
func (w *Watcher) Update() {
	if w.lazy {
		w.dirty = true
	} else if w.sync {
		w.Run()
	} else {
		w.rt.scheduler.enqueue(w)
	}
}

// Run re-evaluates and fires the callback when the value changed, is a
// container (containers can mutate without changing identity), or the
// watcher is deep. Callback panics are recovered and reported for user
// watchers so one bad callback cannot abort a flush.
func (w *Watcher) Run() {
	if !w.active {
		return
	}
	value := w.Get()
	if !sameValue(value, w.value) || isContainer(value) || w.deep {
		oldValue := w.value
		w.value = value
		if w.cb == nil {
			return
		}
		if w.user {
			func() {
				defer func() {
					if r := recover(); r != nil {
						w.rt.HandleError(asError(r), w.ownerRef(),
							fmt.Sprintf("callback for watcher %q", w.expression))
					}
				}()
				w.cb(value, oldValue)
			}()
		} else {
			w.cb(value, oldValue)
		}
	}
}

// Evaluate runs the getter and clears the dirty flag. Only lazy watchers
// call this, on first read after a dependency changed.
func (w *Watcher) Evaluate() {
	w.value = w.Get()
	w.dirty = false
}

// Depend re-registers every dep of this watcher with the current target, so
// a computed read from inside another evaluation links the outer watcher to
// the computed's inputs.
func (w *Watcher) Depend() {
	for i := len(w.deps) - 1; i >= 0; i-- {
		w.deps[i].Depend()
	}
}

// Teardown unsubscribes from every dep and detaches from the owner.
// Idempotent; an enqueued watcher that was torn down is skipped by Run.
func (w *Watcher) Teardown() {
	if !w.active {
		return
	}
	if w.owner != nil && !w.owner.BeingDestroyed() {
		w.owner.RemoveWatcher(w)
	}
	for i := len(w.deps) - 1; i >= 0; i-- {
		w.deps[i].RemoveSub(w)
	}
	w.active = false
}

func (w *Watcher) ownerRef() any {
	if w.owner == nil {
		return nil
	}
	return w.owner
}
