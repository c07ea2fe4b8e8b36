package vue

import (
	"fmt"

	"github.com/delaneyj/vueparty/vdom"
)

// componentMeta rides on a component placeholder vnode: everything the
// child instance needs from its parent for one render.
type componentMeta struct {
	app       *App
	opts      *Options
	propsData map[string]any
	listeners map[string]*vdom.Listener
	children  []*vdom.VNode

	// context is the instance whose render created the placeholder. The
	// instance that ends up parenting the child is whichever one patches
	// it in; with slots the two differ.
	context *Instance
}

// H builds an element vnode in this instance's render context, so a ref on
// it lands on this instance.
func (vm *Instance) H(tag string, data *vdom.Data, children ...*vdom.VNode) *vdom.VNode {
	if data != nil && data.Ref != "" && data.RefOwner == nil {
		data.RefOwner = vm
	}
	return vdom.H(tag, data, children...)
}

// Component builds a placeholder vnode for the child component registered
// under name, resolved against this instance's registry then the app's.
func (vm *Instance) Component(name string, data *vdom.Data, children ...*vdom.VNode) *vdom.VNode {
	opts := vm.resolveComponent(name)
	if opts == nil {
		vm.rt.Warn(fmt.Sprintf("vue: unknown component %q", name), vm)
		return vdom.Empty()
	}
	return vm.app.componentVNode(opts, vm, data, children...)
}

// ComponentWith builds a placeholder vnode directly from options.
func (vm *Instance) ComponentWith(opts *Options, data *vdom.Data, children ...*vdom.VNode) *vdom.VNode {
	return vm.app.componentVNode(opts, vm, data, children...)
}

func (vm *Instance) resolveComponent(name string) *Options {
	if opts, ok := vm.opts.Components[name]; ok {
		return opts
	}
	if opts, ok := vm.app.components[name]; ok {
		return opts
	}
	return nil
}

// Directive resolves a registered directive definition by name, for use in
// vnode data.
func (vm *Instance) Directive(name string) *vdom.DirectiveDef {
	if def, ok := vm.opts.Directives[name]; ok {
		return def
	}
	if def, ok := vm.app.directives[name]; ok {
		return def
	}
	vm.rt.Warn(fmt.Sprintf("vue: unknown directive %q", name), vm)
	return nil
}

// componentVNode builds a component placeholder: declared props split out
// of the data, listeners move off the host-event map onto the meta (a
// component tag's events are emits, not host events), and the lifecycle
// hooks that drive the child instance install onto the data.
func (app *App) componentVNode(opts *Options, context *Instance, data *vdom.Data, children ...*vdom.VNode) *vdom.VNode {
	resolved := app.resolveOptions(opts)
	if data == nil {
		data = &vdom.Data{}
	}

	propsData := extractProps(resolved, data)
	listeners := data.On
	data.On = nil
	if data.Ref != "" && data.RefOwner == nil {
		data.RefOwner = context
	}
	app.installComponentHooks(data)

	tag := fmt.Sprintf("vue-component-%d", app.cidFor(resolved))
	if resolved.Name != "" {
		tag += "-" + resolved.Name
	}

	kept := make([]*vdom.VNode, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}

	return &vdom.VNode{
		Tag:  tag,
		Data: data,
		Key:  data.Key,
		ComponentMeta: &componentMeta{
			app:       app,
			opts:      resolved,
			propsData: propsData,
			listeners: listeners,
			children:  kept,
			context:   context,
		},
	}
}

// extractProps pulls the values for declared props out of the vnode data,
// preferring Props entries and falling back to same-named attr strings.
// Matched attrs are removed so they are not also written onto the child's
// root element.
func extractProps(opts *Options, data *vdom.Data) map[string]any {
	if len(opts.Props) == 0 {
		return nil
	}
	out := make(map[string]any, len(opts.Props))
	for key := range opts.Props {
		if data.Props != nil {
			if v, ok := data.Props[key]; ok {
				out[key] = v
				continue
			}
		}
		if data.Attrs != nil {
			if v, ok := data.Attrs[key]; ok {
				out[key] = v
				delete(data.Attrs, key)
			}
		}
	}
	return out
}

// installComponentHooks puts the component lifecycle management onto the
// placeholder's data, chaining any hooks already there behind it.
func (app *App) installComponentHooks(data *vdom.Data) {
	prev := data.Hook
	hooks := &vdom.Hooks{
		Init:     app.componentInit,
		Prepatch: app.componentPrepatch,
		Insert:   app.componentInsert,
		Destroy:  app.componentDestroy,
	}
	if prev != nil {
		if fn := prev.Init; fn != nil {
			hooks.Init = func(vnode *vdom.VNode) { app.componentInit(vnode); fn(vnode) }
		}
		if fn := prev.Prepatch; fn != nil {
			hooks.Prepatch = func(old, vnode *vdom.VNode) { app.componentPrepatch(old, vnode); fn(old, vnode) }
		}
		if fn := prev.Insert; fn != nil {
			hooks.Insert = func(vnode *vdom.VNode) { app.componentInsert(vnode); fn(vnode) }
		}
		if fn := prev.Destroy; fn != nil {
			hooks.Destroy = func(vnode *vdom.VNode) { app.componentDestroy(vnode); fn(vnode) }
		}
		if fn := prev.Postpatch; fn != nil {
			hooks.Postpatch = fn
		}
	}
	data.Hook = hooks
}

// componentInit creates and mounts the child instance for a placeholder.
// A kept-alive placeholder arriving with its cached instance already
// attached is treated as a patch instead.
func (app *App) componentInit(vnode *vdom.VNode) {
	meta, ok := vnode.ComponentMeta.(*componentMeta)
	if !ok {
		return
	}
	if inst, alive := vnode.Component.(*Instance); alive && !inst.destroyed && vnode.Data.KeepAlive {
		app.componentPrepatch(vnode, vnode)
		return
	}
	child := app.newInstance(meta.opts, app.activeInstance, meta)
	child.vnode = vnode
	vnode.Component = child
	child.Mount()
	vnode.Elm = child.el
}

func (app *App) componentPrepatch(old, vnode *vdom.VNode) {
	meta, ok := vnode.ComponentMeta.(*componentMeta)
	if !ok {
		return
	}
	child, _ := old.Component.(*Instance)
	vnode.Component = child
	if child != nil {
		child.updateFromParent(vnode, meta)
	}
}

// componentInsert marks the child mounted once its subtree is actually in
// the host tree. Kept-alive children also activate here: immediately when
// the surrounding tree is still mounting, deferred past the current flush
// when a patch is already underway so activation never runs against a
// half-patched tree.
func (app *App) componentInsert(vnode *vdom.VNode) {
	child, _ := vnode.Component.(*Instance)
	if child == nil {
		return
	}
	if !child.mounted {
		child.mounted = true
		child.callHook("mounted", child.opts.Mounted)
	}
	if vnode.Data.KeepAlive {
		meta, _ := vnode.ComponentMeta.(*componentMeta)
		if meta != nil && meta.context != nil && meta.context.mounted {
			child.inactive = false
			app.rt.QueueActivated(func() {
				child.inactive = true
				activateChildComponent(child, true)
			})
		} else {
			activateChildComponent(child, true)
		}
	}
}

func (app *App) componentDestroy(vnode *vdom.VNode) {
	child, _ := vnode.Component.(*Instance)
	if child == nil || child.destroyed {
		return
	}
	if vnode.Data.KeepAlive {
		deactivateChildComponent(child, true)
	} else {
		child.Destroy()
	}
}
