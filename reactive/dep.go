package reactive

import "sort"

// Dep is a change-notification publisher for one reactive value or
// container. Reads register the currently collecting watcher through Depend,
// writes fan out through Notify.
type Dep struct {
	rt   *Runtime
	id   uint64
	subs []*Watcher
}

func NewDep(rt *Runtime) *Dep {
	return &Dep{rt: rt, id: rt.nextDepID()}
}

func (d *Dep) ID() uint64 { return d.id }

func (d *Dep) AddSub(w *Watcher) {
	d.subs = append(d.subs, w)
}

func (d *Dep) RemoveSub(w *Watcher) {
	for i, sub := range d.subs {
		if sub == w {
			d.subs = append(d.subs[:i], d.subs[i+1:]...)
			return
		}
	}
}

// Depend links this dep to the watcher currently being evaluated, if any.
// The watcher does the bookkeeping so re-reads within one evaluation stay
// idempotent.
func (d *Dep) Depend() {
	if d.rt.target != nil {
		d.rt.target.AddDep(d)
	}
}

// Notify synchronously invokes Update on every current subscriber. The list
// is copied first so subscriptions changed by an update do not disturb the
// iteration.
func (d *Dep) Notify() {
	d.rt.checkAffinity()
	subs := make([]*Watcher, len(d.subs))
	copy(subs, d.subs)
	if !d.rt.async {
		// subscribers never go through the sorting flush in synchronous
		// mode, so order them here to keep the id ordering guarantee
		sort.Slice(subs, func(i, j int) bool { return subs[i].id < subs[j].id })
	}
	for _, sub := range subs {
		sub.Update()
	}
}
