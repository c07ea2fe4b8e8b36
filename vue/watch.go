package vue

import (
	"fmt"

	"github.com/delaneyj/vueparty/reactive"
)

// WatchOptions carries the flags a registered watcher accepts.
type WatchOptions struct {
	// Deep traverses the watched value so mutations anywhere inside nested
	// containers fire the callback.
	Deep bool
	// Immediate fires the callback once right away with the current value.
	Immediate bool
	// Sync runs the callback inline on change instead of batching.
	Sync bool
}

// WatchSource is what a watcher can evaluate: a dotted path string
// resolved against the instance's state, a func() any, or a
// func(*Instance) any.
type WatchSource any

// Watch registers cb against source and returns the unwatch function.
// An unusable source warns through the funnel and yields a watcher that
// never fires.
func (vm *Instance) Watch(source WatchSource, cb func(newValue, oldValue any), opts WatchOptions) func() {
	w := reactive.NewWatcher(vm.rt, vm, vm.watchGetter(source), func(newValue, oldValue any) {
		cb(newValue, oldValue)
	}, reactive.WatcherOptions{
		Deep:       opts.Deep,
		User:       true,
		Sync:       opts.Sync,
		Expression: watchExpression(source),
	})
	if opts.Immediate {
		// the immediate call reads the value already collected; nothing
		// new may be tracked during it
		vm.rt.PushTarget(nil)
		vm.invokeImmediateWatch(w, cb)
		vm.rt.PopTarget()
	}
	return w.Teardown
}

func (vm *Instance) invokeImmediateWatch(w *reactive.Watcher, cb func(newValue, oldValue any)) {
	defer func() {
		if r := recover(); r != nil {
			vm.rt.HandleError(recoveredError(r), vm,
				fmt.Sprintf("callback for immediate watcher %q", w.Expression()))
		}
	}()
	cb(w.Value(), nil)
}

func (vm *Instance) watchGetter(source WatchSource) func() any {
	switch src := source.(type) {
	case string:
		if getter, ok := reactive.ParsePath(src); ok {
			return func() any { return getter(vm) }
		}
		vm.rt.Warn(fmt.Sprintf("vue: watch path %q is not a dotted path; pass a getter func instead", src), vm)
	case func() any:
		return src
	case func(vm *Instance) any:
		return func() any { return src(vm) }
	default:
		vm.rt.Warn(fmt.Sprintf("vue: unsupported watch source %T", source), vm)
	}
	return func() any { return nil }
}

func watchExpression(source WatchSource) string {
	if s, ok := source.(string); ok {
		return s
	}
	return "func watcher"
}
