package vdom

// attrsModule syncs the Attrs map onto hosts that expose string
// attributes. Keys absent from the new data are removed.
func attrsModule(ops Ops) Module {
	ao, ok := ops.(AttrOps)
	if !ok {
		return Module{Name: "attrs"}
	}
	update := func(old, vnode *VNode) {
		if dataAttrs(old) == nil && dataAttrs(vnode) == nil {
			return
		}
		oldAttrs := dataAttrs(old)
		attrs := dataAttrs(vnode)
		elm := vnode.Elm
		for key, value := range attrs {
			if prev, seen := oldAttrs[key]; !seen || prev != value {
				ao.SetAttribute(elm, key, value)
			}
		}
		for key := range oldAttrs {
			if _, keep := attrs[key]; !keep {
				ao.RemoveAttribute(elm, key)
			}
		}
	}
	return Module{Name: "attrs", Create: update, Update: update}
}

func dataAttrs(vnode *VNode) map[string]string {
	if vnode.Data == nil {
		return nil
	}
	return vnode.Data.Attrs
}
