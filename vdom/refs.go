package vdom

// refsModule keeps named registrations on the owning RefRegistry in sync
// with the vnodes that declare them.
func refsModule() Module {
	return Module{
		Name: "refs",
		Create: func(_, vnode *VNode) {
			registerRef(vnode)
		},
		Update: func(old, vnode *VNode) {
			oldRef := refName(old)
			newRef := refName(vnode)
			if oldRef == newRef {
				return
			}
			unregisterRef(old)
			registerRef(vnode)
		},
		Destroy: func(vnode *VNode) {
			unregisterRef(vnode)
		},
	}
}

func refName(vnode *VNode) string {
	if vnode.Data == nil {
		return ""
	}
	return vnode.Data.Ref
}

func refValue(vnode *VNode) any {
	if vnode.Component != nil {
		return vnode.Component
	}
	return vnode.Elm
}

func registerRef(vnode *VNode) {
	data := vnode.Data
	if data == nil || data.Ref == "" || data.RefOwner == nil {
		return
	}
	data.RefOwner.RegisterRef(data.Ref, refValue(vnode), data.RefInFor)
}

func unregisterRef(vnode *VNode) {
	data := vnode.Data
	if data == nil || data.Ref == "" || data.RefOwner == nil {
		return
	}
	data.RefOwner.UnregisterRef(data.Ref, refValue(vnode))
}
