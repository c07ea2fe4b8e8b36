package vdom

// invoker is the stable handler registered with the host for one event
// name. Updates swap fn in place so the host registration survives
// re-renders.
type invoker struct {
	fn     func(payload any)
	once   bool
	remove func()
}

func (iv *invoker) call(payload any) {
	iv.fn(payload)
	if iv.once && iv.remove != nil {
		iv.remove()
	}
}

func dataOn(vnode *VNode) map[string]*Listener {
	if vnode.Data == nil {
		return nil
	}
	return vnode.Data.On
}

func listenersModule(ops Ops) Module {
	eo, ok := ops.(EventOps)
	if !ok {
		return Module{Name: "listeners"}
	}
	update := func(old, vnode *VNode) {
		oldOn := dataOn(old)
		on := dataOn(vnode)
		if oldOn == nil && on == nil {
			return
		}
		elm := vnode.Elm
		for name, listener := range on {
			prev, seen := oldOn[name]
			if !seen || prev.inv == nil {
				inv := &invoker{fn: listener.Fn, once: listener.Once}
				if listener.Once {
					inv.remove = func() { eo.RemoveEventListener(elm, name) }
				}
				listener.inv = inv
				eo.AddEventListener(elm, name, inv.call)
				continue
			}
			prev.inv.fn = listener.Fn
			listener.inv = prev.inv
		}
		for name := range oldOn {
			if _, keep := on[name]; !keep {
				eo.RemoveEventListener(elm, name)
			}
		}
	}
	return Module{Name: "listeners", Create: update, Update: update}
}
