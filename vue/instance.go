package vue

import (
	"fmt"
	"sort"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/delaneyj/vueparty/vdom"
)

// Instance is one live component: flattened options, observed state, a
// render watcher, and the parent/child and event wiring around it.
type Instance struct {
	uid  uint64
	app  *App
	rt   *reactive.Runtime
	opts *Options

	parent   *Instance
	children []*Instance

	// propsData is the raw input the parent passed on the most recent
	// render; props holds the validated reactive cells over it.
	propsData map[string]any
	props     *reactive.Map
	data      *reactive.Map
	computed  map[string]*reactive.Computed
	methods   map[string]func(vm *Instance, args ...any) any

	events          map[string][]*eventEntry
	parentListeners map[string]*vdom.Listener

	watchers      []*reactive.Watcher
	renderWatcher *reactive.Watcher

	refs map[string]any

	container     vdom.Node
	el            vdom.Node
	vnode         *vdom.VNode
	renderedVnode *vdom.VNode
	slotChildren  []*vdom.VNode

	keepAlive *keepAliveState

	updatingFromParent bool

	mounted        bool
	beingDestroyed bool
	destroyed      bool
	inactive       bool
	directInactive bool
	neverActivated bool
}

var (
	_ reactive.Owner         = (*Instance)(nil)
	_ reactive.Scope         = (*Instance)(nil)
	_ reactive.ErrorCapturer = (*Instance)(nil)
	_ vdom.ComponentRef      = (*Instance)(nil)
	_ vdom.RefRegistry       = (*Instance)(nil)
)

// newInstance runs the construction sequence: parent linkage, parent
// payload, beforeCreate, state (props, methods, data, computed, watch),
// created. Mounting is a separate step.
func (app *App) newInstance(opts *Options, parent *Instance, meta *componentMeta) *Instance {
	vm := &Instance{
		uid:            app.nextUID(),
		app:            app,
		rt:             app.rt,
		opts:           opts,
		events:         make(map[string][]*eventEntry),
		refs:           make(map[string]any),
		computed:       make(map[string]*reactive.Computed),
		neverActivated: true,
	}
	if meta != nil {
		vm.propsData = meta.propsData
		vm.parentListeners = meta.listeners
		vm.slotChildren = meta.children
	}
	vm.linkParent(parent)
	vm.callHook("beforeCreate", opts.BeforeCreate)
	vm.initState()
	vm.callHook("created", opts.Created)
	return vm
}

// linkParent attaches vm under the nearest non-abstract ancestor, so
// abstract wrappers like keep-alive stay out of the child lists.
func (vm *Instance) linkParent(parent *Instance) {
	if parent != nil && !vm.opts.Abstract {
		for parent.opts.Abstract && parent.parent != nil {
			parent = parent.parent
		}
		parent.children = append(parent.children, vm)
	}
	vm.parent = parent
}

func (vm *Instance) initState() {
	if len(vm.opts.Props) > 0 {
		vm.initProps()
	}
	if len(vm.opts.Methods) > 0 {
		vm.initMethods()
	}
	vm.initData()
	if len(vm.opts.Computed) > 0 {
		vm.initComputed()
	}
	if len(vm.opts.Watch) > 0 {
		vm.initWatch()
	}
}

func (vm *Instance) initMethods() {
	vm.methods = make(map[string]func(*Instance, ...any) any, len(vm.opts.Methods))
	for name, fn := range vm.opts.Methods {
		if fn == nil {
			if vm.rt.DevMode() {
				vm.rt.Warn(fmt.Sprintf("vue: method %q has no implementation", name), vm)
			}
			continue
		}
		if vm.rt.DevMode() {
			if _, clash := vm.opts.Props[name]; clash {
				vm.rt.Warn(fmt.Sprintf("vue: method %q is already declared as a prop", name), vm)
			}
		}
		vm.methods[name] = fn
	}
}

func (vm *Instance) initData() {
	var raw map[string]any
	if vm.opts.Data != nil {
		raw = vm.dataFor()
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if vm.rt.DevMode() {
		for key := range raw {
			if _, clash := vm.opts.Props[key]; clash {
				vm.rt.Warn(fmt.Sprintf("vue: data key %q is already declared as a prop; use the prop value instead", key), vm)
			}
			if _, clash := vm.methods[key]; clash {
				vm.rt.Warn(fmt.Sprintf("vue: data key %q shadows a method of the same name", key), vm)
			}
		}
	}
	vm.data = reactive.NewMap(vm.rt, raw)
	if ob := vm.data.Observer(); ob != nil {
		ob.MarkRoot()
	}
}

// dataFor calls the data factory with dependency collection disabled, so
// state reads inside it are never tracked by an outer watcher.
func (vm *Instance) dataFor() (raw map[string]any) {
	vm.rt.PushTarget(nil)
	defer vm.rt.PopTarget()
	defer func() {
		if r := recover(); r != nil {
			raw = nil
			vm.rt.HandleError(recoveredError(r), vm, "data()")
		}
	}()
	return vm.opts.Data(vm)
}

func (vm *Instance) initComputed() {
	for _, key := range sortedKeys(vm.opts.Computed) {
		if vm.rt.DevMode() {
			if vm.data.Has(key) {
				vm.rt.Warn(fmt.Sprintf("vue: computed key %q is already defined in data", key), vm)
			} else if _, clash := vm.opts.Props[key]; clash {
				vm.rt.Warn(fmt.Sprintf("vue: computed key %q is already declared as a prop", key), vm)
			}
		}
		getter := vm.opts.Computed[key]
		vm.computed[key] = reactive.NewComputed(vm.rt, func() any { return getter(vm) })
	}
}

func (vm *Instance) initWatch() {
	for _, path := range sortedKeys(vm.opts.Watch) {
		for _, handler := range vm.opts.Watch[path] {
			h := handler
			vm.Watch(path, func(newValue, oldValue any) {
				h.Handler(vm, newValue, oldValue)
			}, WatchOptions{Deep: h.Deep, Immediate: h.Immediate, Sync: h.Sync})
		}
	}
}

func (vm *Instance) UID() uint64 { return vm.uid }

func (vm *Instance) App() *App { return vm.app }

func (vm *Instance) Runtime() *reactive.Runtime { return vm.rt }

func (vm *Instance) Parent() *Instance { return vm.parent }

func (vm *Instance) Options() *Options { return vm.opts }

// El is the root host node of the instance's rendered tree.
func (vm *Instance) El() vdom.Node { return vm.el }

func (vm *Instance) Mounted() bool { return vm.mounted }

func (vm *Instance) Destroyed() bool { return vm.destroyed }

// Name is the declared component name, or a uid-based fallback.
func (vm *Instance) Name() string {
	if vm.opts.Name != "" {
		return vm.opts.Name
	}
	return fmt.Sprintf("component #%d", vm.uid)
}

// Data exposes the instance's root state container.
func (vm *Instance) Data() *reactive.Map { return vm.data }

// Props exposes the validated prop container, nil when no props declared.
func (vm *Instance) Props() *reactive.Map { return vm.props }

// Lookup resolves a top-level state identifier: props, then data, then
// computed, then methods. On a prop/data collision the prop wins, matching
// the init-time warning. It implements the scope contract path watchers
// resolve against.
func (vm *Instance) Lookup(key string) (any, bool) {
	if vm.props != nil && vm.props.Has(key) {
		return vm.props.Get(key), true
	}
	if vm.data != nil && vm.data.Has(key) {
		return vm.data.Get(key), true
	}
	if c, ok := vm.computed[key]; ok {
		return c.Value(), true
	}
	if m, ok := vm.methods[key]; ok {
		return m, true
	}
	return nil, false
}

// Get reads a state key through the lookup chain. Inside a watcher
// evaluation the read is tracked.
func (vm *Instance) Get(key string) any {
	v, _ := vm.Lookup(key)
	return v
}

// Set writes a declared state key. Prop writes go to the prop cell, which
// warns in dev mode; everything else writes into data.
func (vm *Instance) Set(key string, value any) {
	if vm.props != nil && vm.props.Has(key) {
		vm.props.Set(key, value)
		return
	}
	vm.data.Set(key, value)
}

// Del removes a key from the instance's data. Root state objects reject
// dynamic deletes with a warning.
func (vm *Instance) Del(key string) {
	reactive.Del(vm.data, key)
}

// Call invokes a declared method by name.
func (vm *Instance) Call(name string, args ...any) any {
	m, ok := vm.methods[name]
	if !ok {
		vm.rt.Warn(fmt.Sprintf("vue: unknown method %q", name), vm)
		return nil
	}
	return m(vm, args...)
}

// Slot returns the children the parent placed inside this component's tag.
func (vm *Instance) Slot() []*vdom.VNode { return vm.slotChildren }

// Ref returns the element or child instance registered under name, or a
// []any of them when the ref was collected inside repetition.
func (vm *Instance) Ref(name string) any { return vm.refs[name] }

// NextTick defers fn until after the current batch flushes.
func (vm *Instance) NextTick(fn func()) { vm.rt.NextTick(fn) }

// ForceUpdate schedules a re-render without a state change.
func (vm *Instance) ForceUpdate() {
	if vm.renderWatcher != nil {
		vm.renderWatcher.Update()
	}
}

// RenderedVNode is the root vnode of the instance's own rendered tree. The
// patcher uses it to see through component placeholders.
func (vm *Instance) RenderedVNode() *vdom.VNode { return vm.renderedVnode }

func (vm *Instance) AddWatcher(w *reactive.Watcher) {
	vm.watchers = append(vm.watchers, w)
}

func (vm *Instance) RemoveWatcher(w *reactive.Watcher) {
	for i, own := range vm.watchers {
		if own == w {
			vm.watchers = append(vm.watchers[:i], vm.watchers[i+1:]...)
			return
		}
	}
}

func (vm *Instance) BeingDestroyed() bool { return vm.beingDestroyed }

// RegisterRef records a named element or child component. Refs collected
// inside repetition accumulate into a []any.
func (vm *Instance) RegisterRef(name string, value any, inFor bool) {
	if !inFor {
		vm.refs[name] = value
		return
	}
	if list, ok := vm.refs[name].([]any); ok {
		for _, v := range list {
			if v == value {
				return
			}
		}
		vm.refs[name] = append(list, value)
		return
	}
	vm.refs[name] = []any{value}
}

func (vm *Instance) UnregisterRef(name string, value any) {
	current, ok := vm.refs[name]
	if !ok {
		return
	}
	if list, isList := current.([]any); isList {
		for i, v := range list {
			if v == value {
				vm.refs[name] = append(list[:i], list[i+1:]...)
				return
			}
		}
		return
	}
	if current == value {
		delete(vm.refs, name)
	}
}

// CaptureError walks the parent chain giving every errorCaptured handler a
// chance to swallow the error. A handler that panics is reported with a nil
// owner so the chain cannot re-enter itself.
func (vm *Instance) CaptureError(err error, src any, context string) bool {
	for cur := vm.parent; cur != nil; cur = cur.parent {
		for _, hook := range cur.opts.ErrorCaptured {
			if vm.invokeErrorCaptured(cur, hook, err, src, context) {
				return true
			}
		}
	}
	return false
}

func (vm *Instance) invokeErrorCaptured(cur *Instance, hook ErrorCapturedHook, err error, src any, context string) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			handled = false
			vm.rt.HandleError(recoveredError(r), nil, "errorCaptured hook")
		}
	}()
	return hook(cur, err, src, context)
}

// callHook runs every handler registered for one lifecycle point with
// dependency collection disabled, so state reads inside hooks are never
// tracked. Handler panics are recovered and reported.
func (vm *Instance) callHook(name string, hooks []LifecycleHook) {
	if len(hooks) == 0 {
		return
	}
	vm.rt.PushTarget(nil)
	defer vm.rt.PopTarget()
	for _, hook := range hooks {
		vm.invokeHook(name, hook)
	}
}

func (vm *Instance) invokeHook(name string, hook LifecycleHook) {
	defer func() {
		if r := recover(); r != nil {
			vm.rt.HandleError(recoveredError(r), vm, name+" hook")
		}
	}()
	hook(vm)
}

// Destroy tears the instance down: beforeDestroy, watcher teardown, parent
// detach, subtree patch-out with destroy hooks, destroyed, then every event
// handler dropped. One-shot.
func (vm *Instance) Destroy() {
	if vm.beingDestroyed {
		return
	}
	vm.callHook("beforeDestroy", vm.opts.BeforeDestroy)
	vm.beingDestroyed = true

	if vm.parent != nil && !vm.parent.beingDestroyed && !vm.opts.Abstract {
		vm.parent.removeChild(vm)
	}

	if vm.renderWatcher != nil {
		vm.renderWatcher.Teardown()
	}
	for i := len(vm.watchers) - 1; i >= 0; i-- {
		vm.watchers[i].Teardown()
	}
	vm.watchers = nil
	for _, c := range vm.computed {
		c.Teardown()
	}
	if vm.data != nil {
		if ob := vm.data.Observer(); ob != nil {
			ob.ReleaseRoot()
		}
	}

	vm.destroyed = true
	vm.app.patcher.Patch(vm.renderedVnode, nil)
	vm.callHook("destroyed", vm.opts.Destroyed)
	vm.Off("")

	vm.el = nil
	if vm.vnode != nil {
		vm.vnode.Parent = nil
	}
}

func (vm *Instance) removeChild(child *Instance) {
	for i, c := range vm.children {
		if c == child {
			vm.children = append(vm.children[:i], vm.children[i+1:]...)
			return
		}
	}
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
