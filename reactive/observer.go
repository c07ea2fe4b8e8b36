package reactive

import "fmt"

// Observer marks a container as observed. It owns the container-level dep,
// which fires when the container's shape changes: a key added or removed
// through Set/Del, or any length-changing array mutation.
type Observer struct {
	dep     *Dep
	vmCount int
}

func (ob *Observer) Dep() *Dep { return ob.dep }

// MarkRoot counts the container as some owner's root state object. Dynamic
// key adds and deletes are rejected on root objects because nothing else
// ever reads them through a tracked parent property.
func (ob *Observer) MarkRoot() { ob.vmCount++ }

// ReleaseRoot undoes one MarkRoot. Owners call it on teardown so a shared
// container stops being treated as root state once its last owner is gone.
func (ob *Observer) ReleaseRoot() {
	if ob.vmCount > 0 {
		ob.vmCount--
	}
}

func (ob *Observer) IsRoot() bool { return ob.vmCount > 0 }

// Observe attaches an Observer to a container, recursively and eagerly
// observing every nested container. It is idempotent; re-observing returns
// the cached Observer. Non-container values, and any value while observing
// is toggled off, are left untouched and return nil.
func Observe(value any) *Observer {
	switch v := value.(type) {
	case *Map:
		if v.ob != nil {
			return v.ob
		}
		if !v.rt.shouldObserve {
			return nil
		}
		// attach before walking so self-referencing structures terminate
		v.ob = &Observer{dep: NewDep(v.rt)}
		for _, k := range v.order {
			Observe(v.cells[k].value)
		}
		return v.ob
	case *Array:
		if v.ob != nil {
			return v.ob
		}
		if !v.rt.shouldObserve {
			return nil
		}
		v.ob = &Observer{dep: NewDep(v.rt)}
		for _, e := range v.items {
			Observe(e)
		}
		return v.ob
	}
	return nil
}

// convert turns plain Go containers into reactive ones so nested literals
// inside declared state behave like declared state themselves. Anything
// already reactive, and every non-container value, passes through unchanged.
func convert(rt *Runtime, value any) any {
	switch v := value.(type) {
	case map[string]any:
		return NewMap(rt, v)
	case []any:
		return NewArray(rt, v...)
	}
	return value
}

// Observed converts a plain container to a reactive one, observes the
// result and returns the value to use in place of the input. It honors the
// observing toggle like everything else; callers that own the value
// (component prop defaults) flip the toggle on around the call.
func Observed(rt *Runtime, value any) any {
	value = convert(rt, value)
	Observe(value)
	return value
}

func observerOf(value any) *Observer {
	switch v := value.(type) {
	case *Map:
		return v.ob
	case *Array:
		return v.ob
	}
	return nil
}

// dependArray registers the current watcher with every observed container
// reachable through nested arrays. Array elements are read without
// interception, so touching an array from a tracked getter has to collect
// their container deps explicitly.
func dependArray(a *Array) {
	for _, e := range a.items {
		if ob := observerOf(e); ob != nil {
			ob.dep.Depend()
		}
		if nested, ok := e.(*Array); ok {
			dependArray(nested)
		}
	}
}

// Set assigns key on a reactive container and, for keys the container did
// not have when it was observed, installs reactivity and fires the
// container-level dep. This is the only way a dynamically added key becomes
// reactive.
func Set(target, key, value any) any {
	switch t := target.(type) {
	case *Array:
		i, ok := key.(int)
		if !ok || i < 0 {
			t.rt.Warn(fmt.Sprintf("reactive: invalid array index %v", key), nil)
			return value
		}
		t.SetIndex(i, value)
		return value
	case *Map:
		k, ok := key.(string)
		if !ok {
			t.rt.Warn(fmt.Sprintf("reactive: map keys must be strings, got %T", key), nil)
			return value
		}
		if t.Has(k) {
			t.Set(k, value)
			return value
		}
		ob := t.ob
		if ob != nil && ob.IsRoot() {
			t.rt.Warn(fmt.Sprintf(
				"reactive: avoid adding key %q to a root state object at runtime; declare it up front instead", k), nil)
			return value
		}
		if ob == nil {
			t.Set(k, value)
			return value
		}
		t.Define(k, value)
		ob.dep.Notify()
		return value
	}
	panic(fmt.Sprintf("reactive: cannot set key on non-container value %T", target))
}

// Del removes key from a reactive container and fires the container-level
// dep if the key existed.
func Del(target, key any) {
	switch t := target.(type) {
	case *Array:
		i, ok := key.(int)
		if !ok || i < 0 || i >= t.Len() {
			return
		}
		t.Splice(i, 1)
		return
	case *Map:
		k, ok := key.(string)
		if !ok {
			return
		}
		ob := t.ob
		if ob != nil && ob.IsRoot() {
			t.rt.Warn(fmt.Sprintf(
				"reactive: avoid deleting key %q from a root state object at runtime", k), nil)
			return
		}
		if !t.Has(k) {
			return
		}
		t.deleteKey(k)
		if ob == nil {
			return
		}
		ob.dep.Notify()
		return
	}
	panic(fmt.Sprintf("reactive: cannot delete key on non-container value %T", target))
}
