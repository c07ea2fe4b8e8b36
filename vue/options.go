package vue

import (
	"reflect"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/delaneyj/vueparty/vdom"
)

// LifecycleHook runs at one defined point of an instance's life.
type LifecycleHook func(vm *Instance)

// Hooks collects hook funcs into the slice the Options fields want, so a
// single handler reads as Created: vue.Hooks(fn).
func Hooks(fns ...LifecycleHook) []LifecycleHook { return fns }

// ErrorCapturedHook intercepts an error reported against a descendant.
// Returning true swallows the error; false passes it further up the chain
// and finally to the runtime's handler.
type ErrorCapturedHook func(vm *Instance, err error, src any, context string) bool

// WatchHandler is one declared watcher for a state path.
type WatchHandler struct {
	Handler   func(vm *Instance, newValue, oldValue any)
	Deep      bool
	Immediate bool
	Sync      bool
}

// PropType names the value kinds a declared prop accepts.
type PropType int

const (
	PropAny PropType = iota
	PropBool
	PropInt
	PropFloat
	PropString
	PropList
	PropMap
	PropFunc
)

func (t PropType) String() string {
	switch t {
	case PropBool:
		return "bool"
	case PropInt:
		return "int"
	case PropFloat:
		return "float"
	case PropString:
		return "string"
	case PropList:
		return "list"
	case PropMap:
		return "map"
	case PropFunc:
		return "func"
	}
	return "any"
}

func matchesPropType(value any, t PropType) bool {
	switch t {
	case PropAny:
		return true
	case PropBool:
		_, ok := value.(bool)
		return ok
	case PropInt:
		switch value.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			return true
		}
		return false
	case PropFloat:
		switch value.(type) {
		case float32, float64:
			return true
		}
		return false
	case PropString:
		_, ok := value.(string)
		return ok
	case PropList:
		switch value.(type) {
		case *reactive.Array, []any:
			return true
		}
		return false
	case PropMap:
		switch value.(type) {
		case *reactive.Map, map[string]any:
			return true
		}
		return false
	case PropFunc:
		return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
	}
	return true
}

// PropOptions declares one prop: the kind it accepts, whether the parent
// must pass it, the value used when absent (a value, or a func() any
// factory for containers) and an optional custom validator.
type PropOptions struct {
	Type      PropType
	Required  bool
	Default   any
	Validator func(value any) bool
}

// Options declares a component. An Options value is a template; each
// instance gets the flattened result of merging it over its Extends chain
// and Mixins.
type Options struct {
	Name string

	// Data builds the instance's root state object. It must return a fresh
	// map per instance so instances do not share containers.
	Data func(vm *Instance) map[string]any

	Props    map[string]PropOptions
	Computed map[string]func(vm *Instance) any
	Methods  map[string]func(vm *Instance, args ...any) any
	Watch    map[string][]WatchHandler

	// Render produces the vnode tree for one update. A nil Render renders
	// an empty placeholder.
	Render func(vm *Instance) *vdom.VNode

	BeforeCreate  []LifecycleHook
	Created       []LifecycleHook
	BeforeMount   []LifecycleHook
	Mounted       []LifecycleHook
	BeforeUpdate  []LifecycleHook
	Updated       []LifecycleHook
	Activated     []LifecycleHook
	Deactivated   []LifecycleHook
	BeforeDestroy []LifecycleHook
	Destroyed     []LifecycleHook

	ErrorCaptured []ErrorCapturedHook

	Components map[string]*Options
	Directives map[string]*vdom.DirectiveDef

	Mixins  []*Options
	Extends *Options

	// Abstract components own no element and stay out of the parent chain;
	// the keep-alive wrapper is one.
	Abstract bool
}

// MergeOptions flattens parent and child into one Options value: hooks
// concatenate parent-first, data merges with the child winning per key,
// watch handlers accumulate, and the registries extend with the child
// overriding. Extends and Mixins fold into the parent before the merge.
func MergeOptions(parent, child *Options) *Options {
	if parent == nil {
		parent = &Options{}
	}
	if child == nil {
		child = &Options{}
	}
	if child.Extends != nil {
		parent = MergeOptions(parent, child.Extends)
	}
	for _, mixin := range child.Mixins {
		parent = MergeOptions(parent, mixin)
	}

	merged := &Options{
		Name:       child.Name,
		Data:       mergedDataFns(parent.Data, child.Data),
		Props:      mergedMap(parent.Props, child.Props),
		Computed:   mergedMap(parent.Computed, child.Computed),
		Methods:    mergedMap(parent.Methods, child.Methods),
		Watch:      mergedWatch(parent.Watch, child.Watch),
		Render:     child.Render,
		Components: mergedMap(parent.Components, child.Components),
		Directives: mergedMap(parent.Directives, child.Directives),
		Abstract:   child.Abstract || parent.Abstract,
	}
	if merged.Name == "" {
		merged.Name = parent.Name
	}
	if merged.Render == nil {
		merged.Render = parent.Render
	}

	merged.BeforeCreate = mergedHooks(parent.BeforeCreate, child.BeforeCreate)
	merged.Created = mergedHooks(parent.Created, child.Created)
	merged.BeforeMount = mergedHooks(parent.BeforeMount, child.BeforeMount)
	merged.Mounted = mergedHooks(parent.Mounted, child.Mounted)
	merged.BeforeUpdate = mergedHooks(parent.BeforeUpdate, child.BeforeUpdate)
	merged.Updated = mergedHooks(parent.Updated, child.Updated)
	merged.Activated = mergedHooks(parent.Activated, child.Activated)
	merged.Deactivated = mergedHooks(parent.Deactivated, child.Deactivated)
	merged.BeforeDestroy = mergedHooks(parent.BeforeDestroy, child.BeforeDestroy)
	merged.Destroyed = mergedHooks(parent.Destroyed, child.Destroyed)
	merged.ErrorCaptured = mergedHooks(parent.ErrorCaptured, child.ErrorCaptured)

	return merged
}

func mergedHooks[H any](parent, child []H) []H {
	if len(parent) == 0 && len(child) == 0 {
		return nil
	}
	out := make([]H, 0, len(parent)+len(child))
	out = append(out, parent...)
	return append(out, child...)
}

func mergedMap[V any](parent, child map[string]V) map[string]V {
	if parent == nil && child == nil {
		return nil
	}
	out := make(map[string]V, len(parent)+len(child))
	for k, v := range parent {
		out[k] = v
	}
	for k, v := range child {
		out[k] = v
	}
	return out
}

func mergedWatch(parent, child map[string][]WatchHandler) map[string][]WatchHandler {
	if parent == nil && child == nil {
		return nil
	}
	out := make(map[string][]WatchHandler, len(parent)+len(child))
	for k, v := range parent {
		out[k] = append([]WatchHandler(nil), v...)
	}
	for k, v := range child {
		out[k] = append(out[k], v...)
	}
	return out
}

func mergedDataFns(parent, child func(vm *Instance) map[string]any) func(vm *Instance) map[string]any {
	if parent == nil {
		return child
	}
	if child == nil {
		return parent
	}
	return func(vm *Instance) map[string]any {
		return mergeData(child(vm), parent(vm))
	}
}

// mergeData fills to with the keys of from that to does not define,
// recursing into plain maps present on both sides.
func mergeData(to, from map[string]any) map[string]any {
	if to == nil {
		return from
	}
	for key, fromValue := range from {
		toValue, ok := to[key]
		if !ok {
			to[key] = fromValue
			continue
		}
		toMap, toIsMap := toValue.(map[string]any)
		fromMap, fromIsMap := fromValue.(map[string]any)
		if toIsMap && fromIsMap {
			mergeData(toMap, fromMap)
		}
	}
	return to
}
