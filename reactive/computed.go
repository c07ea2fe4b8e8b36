package reactive

// Computed is a lazily cached value over a tracked getter. Reads evaluate
// only when a dependency changed since the last read, then link the
// computed's own deps to whatever watcher is currently collecting.
type Computed struct {
	w *Watcher
}

func NewComputed(rt *Runtime, getter func() any) *Computed {
	return &Computed{
		w: NewWatcher(rt, nil, getter, nil, WatcherOptions{
			Lazy:       true,
			Expression: "computed",
		}),
	}
}

func (c *Computed) Value() any {
	if c.w.dirty {
		c.w.Evaluate()
	}
	if c.w.rt.target != nil {
		c.w.Depend()
	}
	return c.w.value
}

func (c *Computed) Teardown() {
	c.w.Teardown()
}
