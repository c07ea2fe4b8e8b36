// Package vue ties the reactive runtime to the vdom patcher with a
// component model: declared options become instances with observed state,
// one render watcher each, lifecycle hooks and parent/child wiring.
package vue

import (
	"github.com/delaneyj/vueparty/internal/logging"
	"github.com/delaneyj/vueparty/reactive"
	"github.com/delaneyj/vueparty/vdom"
)

// App ties one runtime, one patcher and one host backend together and
// owns the cross-instance registries. Everything in an app shares the
// runtime's single-goroutine model.
type App struct {
	rt      *reactive.Runtime
	ops     vdom.Ops
	patcher *vdom.Patcher
	logger  logging.Log

	components map[string]*Options
	directives map[string]*vdom.DirectiveDef

	// resolved caches the flattened form of each Options value; cids give
	// every distinct component a stable id for placeholder tags.
	resolved map[*Options]*Options
	cids     map[*Options]uint64
	cidSeq   uint64
	uidSeq   uint64

	// activeInstance is the instance whose patch is currently running; a
	// child created mid-patch parents under it, which with slots is not
	// the instance that created the vnode.
	activeInstance *Instance
}

type AppOption func(*App)

// WithRuntime shares an existing reactive runtime instead of creating one.
func WithRuntime(rt *reactive.Runtime) AppOption {
	return func(app *App) { app.rt = rt }
}

func WithAppLogger(l logging.Log) AppOption {
	return func(app *App) { app.logger = l }
}

// WithPatcher installs a preconfigured patcher, for extra modules or a
// different hook error policy.
func WithPatcher(p *vdom.Patcher) AppOption {
	return func(app *App) { app.patcher = p }
}

func NewApp(ops vdom.Ops, opts ...AppOption) *App {
	app := &App{
		ops:        ops,
		components: make(map[string]*Options),
		directives: make(map[string]*vdom.DirectiveDef),
		resolved:   make(map[*Options]*Options),
		cids:       make(map[*Options]uint64),
	}
	for _, opt := range opts {
		opt(app)
	}
	if app.logger == nil {
		app.logger = logging.New(logging.LevelWarn)
	}
	if app.rt == nil {
		app.rt = reactive.NewRuntime(reactive.WithLogger(app.logger))
	}
	if app.patcher == nil {
		app.patcher = vdom.NewPatcher(ops,
			vdom.WithPatchLogger(app.logger),
			vdom.WithDevChecks(app.rt.DevMode()),
			vdom.WithHookErrorHandler(func(err error, vnode *vdom.VNode, context string) {
				app.rt.HandleError(err, componentFor(vnode), context)
			}))
	}
	return app
}

func (app *App) Runtime() *reactive.Runtime { return app.rt }

func (app *App) Patcher() *vdom.Patcher { return app.patcher }

// NextTick defers fn until after the current batch flushes.
func (app *App) NextTick(fn func()) { app.rt.NextTick(fn) }

// Component registers opts under name for every instance in the app.
func (app *App) Component(name string, opts *Options) {
	app.components[name] = opts
}

// Directive registers a directive definition under name for every
// instance in the app.
func (app *App) Directive(name string, def *vdom.DirectiveDef) {
	app.directives[name] = def
}

// Mount builds the root instance from opts, renders it and appends its
// tree to container. Passing a nil container mounts detached.
func (app *App) Mount(opts *Options, container vdom.Node) *Instance {
	vm := app.newInstance(app.resolveOptions(opts), nil, nil)
	vm.container = container
	vm.Mount()
	return vm
}

// resolveOptions flattens Extends and Mixins once per options value and
// caches the result, so every instance of a component shares one resolved
// set and one component id.
func (app *App) resolveOptions(opts *Options) *Options {
	if opts == nil {
		return &Options{}
	}
	if r, ok := app.resolved[opts]; ok {
		return r
	}
	r := MergeOptions(nil, opts)
	app.resolved[opts] = r
	app.resolved[r] = r
	return r
}

func (app *App) cidFor(opts *Options) uint64 {
	if id, ok := app.cids[opts]; ok {
		return id
	}
	app.cidSeq++
	app.cids[opts] = app.cidSeq
	return app.cidSeq
}

func (app *App) nextUID() uint64 {
	app.uidSeq++
	return app.uidSeq
}

func (app *App) setActiveInstance(vm *Instance) *Instance {
	prev := app.activeInstance
	app.activeInstance = vm
	return prev
}

// componentFor climbs to the nearest instance a vnode belongs to, for
// error attribution.
func componentFor(vnode *vdom.VNode) any {
	for n := vnode; n != nil; n = n.Parent {
		if inst, ok := n.Component.(*Instance); ok {
			return inst
		}
	}
	return nil
}
