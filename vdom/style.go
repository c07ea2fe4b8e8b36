package vdom

func hasStyleData(data *Data) bool {
	return data != nil && (len(data.StaticStyle) > 0 || len(data.Style) > 0)
}

// StyleForVNode resolves the effective style map for a vnode. Within one
// data block dynamic style wins over static; across the chain, later
// contributors (the vnode's callers) win.
func StyleForVNode(vnode *VNode) map[string]string {
	merged := map[string]string{}
	for _, data := range dataChain(vnode) {
		for name, value := range data.StaticStyle {
			merged[name] = value
		}
		for name, value := range data.Style {
			merged[name] = value
		}
	}
	return merged
}

func styleModule(ops Ops) Module {
	so, ok := ops.(StyleOps)
	if !ok {
		return Module{Name: "style"}
	}
	update := func(old, vnode *VNode) {
		if !hasStyleData(vnode.Data) && !hasStyleData(old.Data) {
			return
		}
		elm := vnode.Elm
		oldStyle := StyleForVNode(old)
		newStyle := StyleForVNode(vnode)
		for name := range oldStyle {
			if _, keep := newStyle[name]; !keep {
				so.SetStyle(elm, name, "")
			}
		}
		for name, value := range newStyle {
			if oldStyle[name] != value {
				so.SetStyle(elm, name, value)
			}
		}
	}
	return Module{Name: "style", Create: update, Update: update}
}
