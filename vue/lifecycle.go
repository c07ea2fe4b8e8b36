package vue

import (
	"github.com/delaneyj/vueparty/reactive"
	"github.com/delaneyj/vueparty/vdom"
)

// Mount performs the initial render. The render watcher's first evaluation
// is the mount; every later run is an update. Children mount detached and
// report mounted through their placeholder's insert hook; a root has no
// placeholder, attaches to its container and reports mounted here.
func (vm *Instance) Mount() vdom.Node {
	vm.callHook("beforeMount", vm.opts.BeforeMount)

	vm.renderWatcher = reactive.NewWatcher(vm.rt, vm, func() any {
		vm.update(vm.renderSafe())
		return nil
	}, nil, reactive.WatcherOptions{
		Expression: "render of " + vm.Name(),
		Before: func() {
			if vm.mounted && !vm.destroyed {
				vm.callHook("beforeUpdate", vm.opts.BeforeUpdate)
			}
		},
		OnUpdated: func() {
			if vm.mounted && !vm.destroyed {
				vm.callHook("updated", vm.opts.Updated)
			}
		},
	})

	if vm.vnode == nil {
		if vm.container != nil && vm.el != nil {
			vm.app.ops.AppendChild(vm.container, vm.el)
		}
		vm.mounted = true
		vm.callHook("mounted", vm.opts.Mounted)
	}
	return vm.el
}

// renderSafe produces the next vnode tree. A panic inside render reports
// through the funnel and the previous tree is returned, so the last good
// tree stays up and the flush moves on to other watchers.
func (vm *Instance) renderSafe() (vnode *vdom.VNode) {
	defer func() {
		if r := recover(); r != nil {
			vm.rt.HandleError(recoveredError(r), vm, "render")
			vnode = vm.renderedVnode
		}
	}()
	if vm.opts.Render == nil {
		if vm.rt.DevMode() {
			vm.rt.Warn("vue: component "+vm.Name()+" has no render function", vm)
		}
		empty := vdom.Empty()
		empty.Parent = vm.vnode
		return empty
	}
	vnode = vm.opts.Render(vm)
	if vnode == nil {
		vnode = vdom.Empty()
	}
	vnode.Parent = vm.vnode
	return vnode
}

// update patches the freshly rendered tree against the previous one.
func (vm *Instance) update(vnode *vdom.VNode) {
	prev := vm.renderedVnode
	prevActive := vm.app.setActiveInstance(vm)
	vm.renderedVnode = vnode
	vm.el = vm.app.patcher.Patch(prev, vnode)
	vm.app.setActiveInstance(prevActive)

	// keep the placeholder's host handle in step with the rendered root
	if vm.vnode != nil {
		vm.vnode.Elm = vm.el
	}
	// when this instance is the whole render of its parent, the parent's
	// root host handle follows too
	if vm.vnode != nil && vm.parent != nil && vm.vnode == vm.parent.renderedVnode {
		vm.parent.el = vm.el
	}
}

// updateFromParent reconciles what the parent passed on its re-render:
// props re-validate behind the observing toggle with the equality
// short-circuit deciding whether this instance re-renders, listeners swap
// wholesale, and changed slot children force a re-render since reactivity
// cannot see them.
func (vm *Instance) updateFromParent(parentVnode *vdom.VNode, meta *componentMeta) {
	hadChildren := len(vm.slotChildren) > 0 || len(meta.children) > 0

	vm.vnode = parentVnode
	if vm.renderedVnode != nil {
		vm.renderedVnode.Parent = parentVnode
	}
	vm.parentListeners = meta.listeners

	if vm.props != nil {
		prev := vm.rt.ToggleObserving(false)
		vm.updatingFromParent = true
		for _, key := range sortedKeys(vm.opts.Props) {
			vm.props.Set(key, vm.validateProp(key, vm.opts.Props[key], meta.propsData))
		}
		vm.updatingFromParent = false
		vm.rt.ToggleObserving(prev)
		vm.propsData = meta.propsData
	}

	vm.slotChildren = meta.children
	if hadChildren {
		vm.ForceUpdate()
	}
}

// activateChildComponent wakes a kept-alive subtree, children first having
// their flags cleared on the way down and hooks firing on the way up per
// node. The direct flag marks the subtree root so nested deactivations are
// remembered independently.
func activateChildComponent(vm *Instance, direct bool) {
	if direct {
		vm.directInactive = false
		if vm.inInactiveTree() {
			return
		}
	} else if vm.directInactive {
		return
	}
	if vm.inactive || vm.neverActivated {
		vm.inactive = false
		vm.neverActivated = false
		for _, child := range vm.children {
			activateChildComponent(child, false)
		}
		vm.callHook("activated", vm.opts.Activated)
	}
}

// deactivateChildComponent puts a kept-alive subtree to sleep instead of
// destroying it.
func deactivateChildComponent(vm *Instance, direct bool) {
	if direct {
		vm.directInactive = true
		if vm.inInactiveTree() {
			return
		}
	}
	if !vm.inactive {
		vm.inactive = true
		for _, child := range vm.children {
			deactivateChildComponent(child, false)
		}
		vm.callHook("deactivated", vm.opts.Deactivated)
	}
}

func (vm *Instance) inInactiveTree() bool {
	for p := vm.parent; p != nil; p = p.parent {
		if p.inactive {
			return true
		}
	}
	return false
}

// Active reports whether the instance is awake: mounted and not sleeping
// inside a deactivated keep-alive subtree.
func (vm *Instance) Active() bool {
	return vm.mounted && !vm.destroyed && !vm.inactive
}
