package vue

import (
	"fmt"

	"github.com/delaneyj/vueparty/reactive"
)

// initProps validates every declared prop against what the parent passed
// and defines the results as guarded reactive cells. Child props stay
// shallow behind the observing toggle; the parent owns their depth. Root
// props have no parent and observe like ordinary state.
func (vm *Instance) initProps() {
	isRoot := vm.parent == nil
	prevObserve := true
	if !isRoot {
		prevObserve = vm.rt.ToggleObserving(false)
	}

	keys := sortedKeys(vm.opts.Props)
	values := make(map[string]any, len(keys))
	for _, key := range keys {
		values[key] = vm.validateProp(key, vm.opts.Props[key], vm.propsData)
	}

	vm.props = reactive.NewMap(vm.rt, nil)
	for _, key := range keys {
		k := key
		vm.props.DefineGuarded(k, values[k], func() {
			if !vm.updatingFromParent {
				vm.rt.Warn(fmt.Sprintf(
					"vue: avoid mutating prop %q directly; the parent overwrites it on re-render. Use a data value or computed derived from it", k), vm)
			}
		})
	}

	if !isRoot {
		vm.rt.ToggleObserving(prevObserve)
	}
}

// validateProp resolves the value passed for key, applying the declared
// default when absent. Required, type and validator violations report as
// warnings; execution continues with the best value found.
func (vm *Instance) validateProp(key string, def PropOptions, propsData map[string]any) any {
	value, present := propsData[key]
	if !present {
		value = vm.propDefault(key, def)
		// the default is created on this instance's behalf, so it observes
		// fully even while props stay shallow
		prev := vm.rt.ToggleObserving(true)
		value = reactive.Observed(vm.rt, value)
		vm.rt.ToggleObserving(prev)
	}
	vm.assertProp(key, def, value, !present)
	return value
}

func (vm *Instance) propDefault(key string, def PropOptions) any {
	if def.Default == nil {
		return nil
	}
	// a parent re-render that still omits the prop keeps the previous
	// default, so a fresh container does not force a child update
	if vm.props != nil && vm.props.Has(key) {
		if _, passedBefore := vm.propsData[key]; !passedBefore {
			if prev := vm.props.Get(key); prev != nil {
				return prev
			}
		}
	}
	if factory, ok := def.Default.(func() any); ok {
		return factory()
	}
	if vm.rt.DevMode() {
		switch def.Default.(type) {
		case map[string]any, []any:
			vm.rt.Warn(fmt.Sprintf(
				"vue: prop %q needs a factory func as its default so instances do not share one container", key), vm)
		}
	}
	return def.Default
}

func (vm *Instance) assertProp(key string, def PropOptions, value any, absent bool) {
	if def.Required && absent {
		vm.rt.Warn(fmt.Sprintf("vue: missing required prop %q", key), vm)
		return
	}
	if value == nil {
		return
	}
	if !matchesPropType(value, def.Type) {
		vm.rt.Warn(fmt.Sprintf("vue: invalid prop %q: expected %s, got %T", key, def.Type, value), vm)
		return
	}
	if def.Validator != nil && !def.Validator(value) {
		vm.rt.Warn(fmt.Sprintf("vue: custom validator failed for prop %q", key), vm)
	}
}
